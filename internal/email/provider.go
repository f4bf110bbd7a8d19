package email

import (
	"context"
	"fmt"

	"github.com/startickets/webtier/internal/config"
	"github.com/startickets/webtier/internal/logger"
)

// Email providers selectable with email.provider
const (
	ProviderSMTP  = "smtp"
	ProviderGmail = "gmail"
	ProviderLog   = "log"
)

// LogSender writes messages to the log instead of sending them.
// Meant for local development.
type LogSender struct {
	log *logger.Logger
}

// NewLogSender creates a LogSender
func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log.WithComponent("log_sender")}
}

// Send logs the message envelope and body size.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Int("body_bytes", len(msg.HTMLBody)).
		Msg("email not sent (log provider)")
	return nil
}

// NewSender builds the Sender named by cfg.Provider.
func NewSender(ctx context.Context, cfg config.EmailConfig, log *logger.Logger) (Sender, error) {
	switch cfg.Provider {
	case "", ProviderSMTP:
		if err := cfg.SMTP.Validate(); err != nil {
			// Not fatal: every send reports it as a delivery failure
			log.Warn().Err(err).Msg("SMTP settings are incomplete, notifications will not be delivered")
		}
		return NewSMTPSender(cfg.SMTP), nil
	case ProviderGmail:
		return NewGmailSender(ctx, cfg.Gmail)
	case ProviderLog:
		return NewLogSender(log), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
