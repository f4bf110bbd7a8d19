package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/startickets/webtier/internal/config"
	"github.com/startickets/webtier/internal/database"
	"github.com/startickets/webtier/internal/email"
	"github.com/startickets/webtier/internal/logger"
	"github.com/startickets/webtier/internal/model"
)

type stubSender struct {
	mu   sync.Mutex
	sent []email.Message
	err  error
}

func (s *stubSender) Send(ctx context.Context, msg email.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return s.err
}

func newTestHandler(t *testing.T, sender email.Sender) (*Handler, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := logger.Nop()
	d := email.NewDispatcher(sender, nil, "handler-test", log)
	return New(database.NewRedisFromClient(client), log, &config.Config{}, d), mr
}

func post(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) NotificationResponse {
	t.Helper()
	var resp NotificationResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestSendWelcome(t *testing.T) {
	sender := &stubSender{}
	h, _ := newTestHandler(t, sender)

	rec := post(h.SendWelcome, `{"firstName":"Ann","lastName":"Lee","email":"ann@example.com","role":2}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Delivered)
	assert.Equal(t, model.NotificationWelcome, resp.Kind)
	assert.Equal(t, "ann@example.com", resp.Recipient)
	assert.Empty(t, resp.Error)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, email.WelcomeSubject, sender.sent[0].Subject)
	assert.Contains(t, sender.sent[0].HTMLBody, email.OrganizerHighlights[0])
}

func TestSendWelcomeReportsFailureWithoutServerError(t *testing.T) {
	h, _ := newTestHandler(t, &stubSender{err: errors.New("smtp: connection refused")})

	rec := post(h.SendWelcome, `{"firstName":"Ann","email":"ann@example.com","role":3}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Delivered)
	assert.Equal(t, "smtp: connection refused", resp.Error)
}

func TestSendResetRequest(t *testing.T) {
	sender := &stubSender{}
	h, _ := newTestHandler(t, sender)
	resetURL := "https://startickets.example/Auth/ResetPassword?token=t0k"

	rec := post(h.SendResetRequest, `{"firstName":"Ann","email":"ann@example.com","resetUrl":"`+resetURL+`"}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, model.NotificationResetRequest, decodeResponse(t, rec).Kind)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, email.ResetRequestSubject, sender.sent[0].Subject)
	assert.Contains(t, sender.sent[0].HTMLBody, resetURL)
}

func TestSendResetConfirmation(t *testing.T) {
	sender := &stubSender{}
	h, _ := newTestHandler(t, sender)

	rec := post(h.SendResetConfirmation, `{"firstName":"Ann","email":"ann@example.com"}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, model.NotificationResetConfirmation, decodeResponse(t, rec).Kind)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, email.ResetConfirmationSubject, sender.sent[0].Subject)
}

func TestNotificationValidation(t *testing.T) {
	sender := &stubSender{}
	h, _ := newTestHandler(t, sender)

	tests := []struct {
		name    string
		handler http.HandlerFunc
		body    string
		code    string
	}{
		{name: "malformed json", handler: h.SendWelcome, body: `{"email":`, code: "invalid_request"},
		{name: "unknown field", handler: h.SendWelcome, body: `{"email":"a@x.com","password":"x"}`, code: "invalid_request"},
		{name: "missing email", handler: h.SendWelcome, body: `{"firstName":"Ann"}`, code: "validation_error"},
		{name: "blank email", handler: h.SendResetConfirmation, body: `{"email":"  "}`, code: "validation_error"},
		{name: "missing reset url", handler: h.SendResetRequest, body: `{"email":"a@x.com"}`, code: "validation_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(tt.handler, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.code)
		})
	}
	assert.Empty(t, sender.sent)
}

func TestLogin(t *testing.T) {
	h, _ := newTestHandler(t, &stubSender{})
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodGet, "/Auth/Login", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "unauthenticated")
}

func TestHealthAndReady(t *testing.T) {
	h, mr := newTestHandler(t, &stubSender{})

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	var health HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&health))
	assert.Equal(t, "healthy", health.Status)

	rec = httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	mr.Close()

	rec = httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.True(t, bytes.Contains(rec.Body.Bytes(), []byte(`"redis":"unhealthy"`)))

	rec = httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
