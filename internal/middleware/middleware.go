package middleware

import (
	"github.com/startickets/webtier/internal/config"
	"github.com/startickets/webtier/internal/database"
	"github.com/startickets/webtier/internal/logger"
	"github.com/startickets/webtier/internal/session"
)

// Middleware holds all HTTP middleware
type Middleware struct {
	rdb      *database.Redis
	sessions *session.RedisStore
	log      *logger.Logger
	cfg      *config.Config
}

// New creates a new Middleware instance
func New(rdb *database.Redis, sessions *session.RedisStore, log *logger.Logger, cfg *config.Config) *Middleware {
	return &Middleware{
		rdb:      rdb,
		sessions: sessions,
		log:      log.WithComponent("http"),
		cfg:      cfg,
	}
}
