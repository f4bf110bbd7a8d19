package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/startickets/webtier/internal/config"
	"gopkg.in/mail.v2"
)

// SMTPSender implements Sender over SMTP. Every Send dials, authenticates,
// transmits one message and closes the connection.
type SMTPSender struct {
	settings config.EmailSettings
	valid    error
}

// NewSMTPSender creates an SMTPSender from settings. Incomplete settings are
// accepted here and reported by every Send.
func NewSMTPSender(settings config.EmailSettings) *SMTPSender {
	return &SMTPSender{
		settings: settings,
		valid:    settings.Validate(),
	}
}

// Send sends msg as an HTML email.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if s.valid != nil {
		return fmt.Errorf("smtp: %w", s.valid)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("smtp: %w", err)
	}

	m := mail.NewMessage()
	m.SetAddressHeader("From", s.settings.FromAddress, s.settings.FromName)
	if msg.ToName != "" {
		m.SetAddressHeader("To", msg.To, msg.ToName)
	} else {
		m.SetHeader("To", msg.To)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	d := s.dialer()
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < d.Timeout {
			d.Timeout = left
		}
	}

	// DialAndSend closes the connection on every path
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp: failed to send email via %s:%d: %w", s.settings.Host, s.settings.Port, err)
	}
	return nil
}

// dialer applies the TLS flag strictly. With TLS on, port 465 is implicit
// TLS and every other port must offer STARTTLS or nothing is sent. With TLS
// off the session stays plaintext even when STARTTLS is offered.
func (s *SMTPSender) dialer() *mail.Dialer {
	d := mail.NewDialer(s.settings.Host, s.settings.Port, s.settings.Username, s.settings.Password)
	d.TLSConfig = &tls.Config{ServerName: s.settings.Host}
	d.SSL = s.settings.EnableTLS && s.settings.Port == 465
	if s.settings.EnableTLS {
		d.StartTLSPolicy = mail.MandatoryStartTLS
	} else {
		d.StartTLSPolicy = mail.NoStartTLS
	}
	return d
}
