package middleware

import (
	"errors"
	"net/http"

	"github.com/startickets/webtier/internal/session"
)

// Session loads the session named by the session cookie and puts it in the
// request context. Missing, expired or unreadable sessions leave the context
// without one; the role gate treats that as signed out.
func (m *Middleware) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.cfg.Session.CookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		s, err := m.sessions.Load(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				m.log.Error().Err(err).Str("request_id", GetRequestID(r.Context())).Msg("failed to load session")
			}
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), s)))
	})
}
