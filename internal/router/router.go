package router

import (
	"net/http"

	"github.com/startickets/webtier/internal/access"
	"github.com/startickets/webtier/internal/handler"
	"github.com/startickets/webtier/internal/metrics"
	"github.com/startickets/webtier/internal/middleware"
)

// New creates and configures the HTTP router. requiredRole gates the
// notification trigger endpoints.
func New(h *handler.Handler, mw *middleware.Middleware, requiredRole string) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoints (no auth required)
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ready", h.Ready)
	mux.Handle("GET /metrics", metrics.Handler())

	// Where the access gate redirects
	mux.HandleFunc("GET "+access.LoginRoute.Path(), h.Login)

	// Notification triggers: session, role gate, then rate limit
	gated := func(next http.HandlerFunc) http.Handler {
		return mw.Session(mw.RequireRole(requiredRole)(mw.RateLimit("notifications")(next)))
	}
	mux.Handle("POST /api/v1/notifications/welcome", gated(h.SendWelcome))
	mux.Handle("POST /api/v1/notifications/password-reset/request", gated(h.SendResetRequest))
	mux.Handle("POST /api/v1/notifications/password-reset/confirmation", gated(h.SendResetConfirmation))

	// Apply middleware stack
	var handler http.Handler = mux

	// Request logging
	handler = mw.Logger(handler)

	// Request ID
	handler = mw.RequestID(handler)

	// Panic recovery (outermost)
	handler = mw.Recover(handler)

	return handler
}
