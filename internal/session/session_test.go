package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/startickets/webtier/internal/access"
	"github.com/startickets/webtier/internal/config"
	"github.com/startickets/webtier/internal/database"
)

func newStore(t *testing.T, cfg config.SessionConfig) (*miniredis.Miniredis, *RedisStore) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, NewRedisStore(database.NewRedisFromClient(client), cfg)
}

func TestSaveLoadDestroy(t *testing.T) {
	mr, store := newStore(t, config.SessionConfig{})
	ctx := context.Background()

	id, err := store.Save(ctx, map[string]string{access.RoleKey: "Organizer", "UserId": "42"})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.True(t, mr.Exists("session:"+id))
	assert.Equal(t, 30*time.Minute, mr.TTL("session:"+id))

	s, err := store.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, s.ID)
	role, ok := s.Get(access.RoleKey)
	assert.True(t, ok)
	assert.Equal(t, "Organizer", role)
	assert.Equal(t, access.Allowed, access.Evaluate("Organizer", s))

	require.NoError(t, store.Destroy(ctx, id))
	_, err = store.Load(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadSlidesIdleTimeout(t *testing.T) {
	mr, store := newStore(t, config.SessionConfig{IdleTimeout: 10 * time.Minute, KeyPrefix: "sess:"})
	ctx := context.Background()

	id, err := store.Save(ctx, map[string]string{access.RoleKey: "Customer"})
	require.NoError(t, err)

	mr.FastForward(8 * time.Minute)
	assert.Equal(t, 2*time.Minute, mr.TTL("sess:"+id))

	_, err = store.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, mr.TTL("sess:"+id))
}

func TestLoadExpiredSession(t *testing.T) {
	mr, store := newStore(t, config.SessionConfig{IdleTimeout: time.Minute})
	ctx := context.Background()

	id, err := store.Save(ctx, map[string]string{access.RoleKey: "Customer"})
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)
	_, err = store.Load(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Load(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContextRoundTrip(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))

	s := &Session{ID: "x", values: map[string]string{access.RoleKey: "Customer"}}
	got := FromContext(NewContext(context.Background(), s))
	assert.Same(t, s, got)

	var nilSession *Session
	_, ok := nilSession.Get(access.RoleKey)
	assert.False(t, ok)
}
