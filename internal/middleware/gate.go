package middleware

import (
	"net/http"

	"github.com/startickets/webtier/internal/access"
	"github.com/startickets/webtier/internal/metrics"
	"github.com/startickets/webtier/internal/session"
)

// RequireRole lets the request through only when the session role equals
// role. Otherwise it redirects to the login route and the handler never runs.
func (m *Middleware) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := session.FromContext(r.Context())
			decision := access.Evaluate(role, s)
			metrics.AccessDecisions.WithLabelValues(role, decision.String()).Inc()

			if decision == access.Denied {
				_, hadRole := s.Get(access.RoleKey)
				m.log.AccessDenied(r.URL.Path, role, hadRole)
				http.Redirect(w, r, access.LoginRoute.Path(), http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
