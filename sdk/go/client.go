// Package startickets is a client for the StarTickets notification API.
package startickets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Config holds the configuration for the StarTickets client.
type Config struct {
	// BaseURL is the root URL of the web tier.
	// The "/api/v1" suffix is appended automatically if missing.
	BaseURL string

	// CookieName is the session cookie name.
	// Default: "startickets_session"
	CookieName string

	// SessionID is the ID of a session whose role may trigger notifications.
	SessionID string

	// HTTPClient is an optional custom HTTP client. Redirects are never
	// followed regardless of its settings.
	// If nil, a default client with 30s timeout is used.
	HTTPClient *http.Client
}

func (c *Config) defaults() {
	if c.CookieName == "" {
		c.CookieName = "startickets_session"
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	if !strings.HasSuffix(c.BaseURL, "/api/v1") {
		c.BaseURL = c.BaseURL + "/api/v1"
	}
}

// Client calls the notification trigger endpoints.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a new client with the given configuration.
func NewClient(cfg Config) *Client {
	cfg.defaults()
	hc := *cfg.HTTPClient
	hc.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &Client{cfg: cfg, http: &hc}
}

// SendWelcome asks the web tier to send the welcome email.
func (c *Client) SendWelcome(ctx context.Context, to Recipient) (*NotificationResult, error) {
	return c.notify(ctx, "/notifications/welcome", to)
}

// SendResetRequest asks the web tier to send a password reset link.
func (c *Client) SendResetRequest(ctx context.Context, to Recipient, resetURL string) (*NotificationResult, error) {
	return c.notify(ctx, "/notifications/password-reset/request", resetRequest{Recipient: to, ResetURL: resetURL})
}

// SendResetConfirmation asks the web tier to confirm a password change.
func (c *Client) SendResetConfirmation(ctx context.Context, to Recipient) (*NotificationResult, error) {
	return c.notify(ctx, "/notifications/password-reset/confirmation", to)
}

func (c *Client) notify(ctx context.Context, path string, payload interface{}) (*NotificationResult, error) {
	body, err := c.post(ctx, path, payload)
	if err != nil {
		return nil, err
	}

	var res NotificationResult
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("startickets: failed to parse response: %w", err)
	}
	return &res, nil
}

// post sends a POST request to the API.
func (c *Client) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("startickets: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("startickets: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.cfg.SessionID != "" {
		req.AddCookie(&http.Cookie{Name: c.cfg.CookieName, Value: c.cfg.SessionID})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("startickets: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("startickets: failed to read response: %w", err)
	}

	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		return nil, ErrLoginRequired
	}
	if resp.StatusCode >= 400 {
		return nil, parseAPIError(resp.StatusCode, body)
	}

	return body, nil
}
