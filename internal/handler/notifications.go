package handler

import (
	"net/http"
	"strings"

	"github.com/startickets/webtier/internal/email"
	"github.com/startickets/webtier/internal/model"
)

// NotificationRequest is the body of the notification trigger endpoints.
// ResetURL is only read by the reset request endpoint.
type NotificationRequest struct {
	model.User
	ResetURL string `json:"resetUrl,omitempty"`
}

// NotificationResponse reports the outcome of one dispatch
type NotificationResponse struct {
	Kind      model.NotificationKind `json:"kind"`
	Recipient string                 `json:"recipient"`
	Delivered bool                   `json:"delivered"`
	Error     string                 `json:"error,omitempty"`
}

// SendWelcome composes and sends the welcome email
func (h *Handler) SendWelcome(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeNotification(w, r)
	if !ok {
		return
	}
	h.writeResult(w, h.dispatcher.SendWelcome(r.Context(), &req.User))
}

// SendResetRequest composes and sends the password reset link
func (h *Handler) SendResetRequest(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeNotification(w, r)
	if !ok {
		return
	}
	if strings.TrimSpace(req.ResetURL) == "" {
		writeError(w, http.StatusBadRequest, "validation_error", "resetUrl is required")
		return
	}
	h.writeResult(w, h.dispatcher.SendResetRequest(r.Context(), &req.User, req.ResetURL))
}

// SendResetConfirmation composes and sends the password changed notice
func (h *Handler) SendResetConfirmation(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeNotification(w, r)
	if !ok {
		return
	}
	h.writeResult(w, h.dispatcher.SendResetConfirmation(r.Context(), &req.User))
}

func (h *Handler) decodeNotification(w http.ResponseWriter, r *http.Request) (*NotificationRequest, bool) {
	var req NotificationRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return nil, false
	}
	if strings.TrimSpace(req.Email) == "" {
		writeError(w, http.StatusBadRequest, "validation_error", "email is required")
		return nil, false
	}
	return &req, true
}

// writeResult answers 202 whether or not the mail went out. Delivery
// failures were already logged by the dispatcher.
func (h *Handler) writeResult(w http.ResponseWriter, res email.Result) {
	resp := NotificationResponse{
		Kind:      res.Kind,
		Recipient: res.Recipient,
		Delivered: res.Delivered,
	}
	if res.Err != nil {
		resp.Error = res.Err.Error()
	}
	writeJSON(w, http.StatusAccepted, resp)
}
