package handler

import (
	"net/http"
)

// Login is where the access gate sends callers without the required role.
// Sign-in itself is served by the account UI; this endpoint only tells API
// clients that a session is needed.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusUnauthorized, "unauthenticated", "sign in with an account holding the required role")
}
