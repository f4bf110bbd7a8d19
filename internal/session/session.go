// Package session reads per-request session state from Redis.
// Sessions are created by the sign-in flow; this package only loads them,
// slides their idle timeout and exposes them to the access gate.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/startickets/webtier/internal/config"
	"github.com/startickets/webtier/internal/database"
)

// ErrNotFound is returned when the session does not exist or has expired
var ErrNotFound = errors.New("session not found")

// Session is a loaded, read-only snapshot of a session
type Session struct {
	ID     string
	values map[string]string
}

// Get returns a session value
func (s *Session) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.values[key]
	return v, ok
}

// RedisStore keeps sessions as Redis hashes with an idle timeout
type RedisStore struct {
	rdb         *database.Redis
	prefix      string
	idleTimeout time.Duration
}

// NewRedisStore creates a RedisStore
func NewRedisStore(rdb *database.Redis, cfg config.SessionConfig) *RedisStore {
	idle := cfg.IdleTimeout
	if idle == 0 {
		idle = 30 * time.Minute
	}
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "session:"
	}
	return &RedisStore{rdb: rdb, prefix: prefix, idleTimeout: idle}
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

// Load fetches a session and extends its idle timeout
func (s *RedisStore) Load(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	key := s.key(id)
	values, err := s.rdb.HashGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if len(values) == 0 {
		return nil, ErrNotFound
	}
	if err := s.rdb.Expire(ctx, key, s.idleTimeout); err != nil {
		return nil, fmt.Errorf("failed to refresh session: %w", err)
	}
	return &Session{ID: id, values: values}, nil
}

// Save stores values under a new session ID and returns it
func (s *RedisStore) Save(ctx context.Context, values map[string]string) (string, error) {
	id := uuid.New().String()
	if err := s.rdb.HashSetWithTTL(ctx, s.key(id), values, s.idleTimeout); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}
	return id, nil
}

// Destroy removes a session
func (s *RedisStore) Destroy(ctx context.Context, id string) error {
	if err := s.rdb.Delete(ctx, s.key(id)); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

type contextKey struct{}

// NewContext returns a context carrying s
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session loaded for the request, or nil
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(contextKey{}).(*Session)
	return s
}
