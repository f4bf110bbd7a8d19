package email

import "context"

// Sender is the interface that all email providers must implement.
// This abstraction allows swapping email providers (SMTP, Gmail, ...)
// without changing the dispatch logic.
type Sender interface {
	// Send delivers msg in a single attempt.
	Send(ctx context.Context, msg Message) error
}

// Message represents an email message to be sent.
type Message struct {
	To       string // recipient email address
	ToName   string // recipient display name, optional
	Subject  string // email subject
	HTMLBody string // HTML email body
}
