package startickets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL + "/", SessionID: "sess-1"})
}

func TestSendWelcome(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/notifications/welcome", r.URL.Path)
		cookie, err := r.Cookie("startickets_session")
		require.NoError(t, err)
		assert.Equal(t, "sess-1", cookie.Value)

		var got Recipient
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "ann@example.com", got.Email)
		assert.Equal(t, RoleOrganizer, got.Role)

		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"kind":"welcome","recipient":"ann@example.com","delivered":true}`))
	})

	res, err := c.SendWelcome(context.Background(), Recipient{FirstName: "Ann", Email: "ann@example.com", Role: RoleOrganizer})
	require.NoError(t, err)
	assert.True(t, res.Delivered)
	assert.Equal(t, "welcome", res.Kind)
}

func TestSendResetRequestCarriesURL(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/notifications/password-reset/request", r.URL.Path)
		var got map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "https://startickets.example/reset?t=1", got["resetUrl"])
		assert.Equal(t, "ann@example.com", got["email"])

		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"kind":"password_reset_request","recipient":"ann@example.com","delivered":false,"error":"smtp: dial failed"}`))
	})

	res, err := c.SendResetRequest(context.Background(), Recipient{Email: "ann@example.com"}, "https://startickets.example/reset?t=1")
	require.NoError(t, err, "undelivered mail is a result, not an error")
	assert.False(t, res.Delivered)
	assert.Equal(t, "smtp: dial failed", res.Error)
}

func TestRedirectMeansLoginRequired(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/Auth/Login" {
			t.Error("redirect must not be followed")
			return
		}
		http.Redirect(w, r, "/Auth/Login", http.StatusFound)
	})

	_, err := c.SendResetConfirmation(context.Background(), Recipient{Email: "ann@example.com"})
	assert.ErrorIs(t, err, ErrLoginRequired)
}

func TestAPIErrorEnvelope(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":"rate_limit_exceeded","message":"Too many requests"}}`))
	})

	_, err := c.SendWelcome(context.Background(), Recipient{Email: "ann@example.com"})
	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, "rate_limit_exceeded", apiErr.Code)
}

func TestNonJSONErrorBody(t *testing.T) {
	err := parseAPIError(http.StatusBadGateway, []byte("bad gateway"))
	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "unknown", apiErr.Code)
	assert.Equal(t, "bad gateway", apiErr.Message)
}
