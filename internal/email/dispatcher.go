package email

import (
	"context"
	"errors"
	"strings"

	"github.com/startickets/webtier/internal/logger"
	"github.com/startickets/webtier/internal/metrics"
	"github.com/startickets/webtier/internal/model"
)

// ErrNoRecipient is reported when a notification has no recipient address.
var ErrNoRecipient = errors.New("notification has no recipient")

// Result is the outcome of a single dispatch attempt.
type Result struct {
	Kind      model.NotificationKind
	Recipient string
	Delivered bool
	Err       error
}

// Failed reports whether the notification was not delivered
func (r Result) Failed() bool {
	return !r.Delivered
}

// Dispatcher composes notifications and delivers them through a Sender.
// It makes exactly one attempt per notification and never returns an error:
// the outcome comes back as a Result for the caller to act on.
type Dispatcher struct {
	sender   Sender
	composer *Composer
	provider string
	log      *logger.Logger
}

// NewDispatcher creates a Dispatcher. provider labels metrics and logs.
func NewDispatcher(sender Sender, composer *Composer, provider string, log *logger.Logger) *Dispatcher {
	if composer == nil {
		composer = NewComposer()
	}
	if provider == "" {
		provider = ProviderSMTP
	}
	return &Dispatcher{
		sender:   sender,
		composer: composer,
		provider: provider,
		log:      log.WithComponent("mail_dispatcher"),
	}
}

// Send delivers one HTML message to to.
func (d *Dispatcher) Send(ctx context.Context, to, subject, body string) Result {
	return d.dispatch(ctx, model.Notification{
		Kind:    model.NotificationAdHoc,
		To:      to,
		Subject: subject,
		Body:    body,
	})
}

// SendWelcome composes and sends the welcome email to user.
func (d *Dispatcher) SendWelcome(ctx context.Context, user *model.User) Result {
	subject, body := d.composer.ComposeWelcome(user)
	return d.dispatch(ctx, model.Notification{
		Kind:    model.NotificationWelcome,
		To:      user.Email,
		ToName:  user.FullName(),
		Subject: subject,
		Body:    body,
	})
}

// SendResetRequest composes and sends the password reset link to user.
func (d *Dispatcher) SendResetRequest(ctx context.Context, user *model.User, resetURL string) Result {
	subject, body := d.composer.ComposeResetRequest(user, resetURL)
	return d.dispatch(ctx, model.Notification{
		Kind:    model.NotificationResetRequest,
		To:      user.Email,
		ToName:  user.FullName(),
		Subject: subject,
		Body:    body,
	})
}

// SendResetConfirmation composes and sends the reset confirmation to user.
func (d *Dispatcher) SendResetConfirmation(ctx context.Context, user *model.User) Result {
	subject, body := d.composer.ComposeResetConfirmation(user)
	return d.dispatch(ctx, model.Notification{
		Kind:    model.NotificationResetConfirmation,
		To:      user.Email,
		ToName:  user.FullName(),
		Subject: subject,
		Body:    body,
	})
}

func (d *Dispatcher) dispatch(ctx context.Context, n model.Notification) Result {
	res := Result{Kind: n.Kind, Recipient: n.To}

	if strings.TrimSpace(n.To) == "" {
		res.Err = ErrNoRecipient
		d.fail(res)
		return res
	}

	msg := Message{To: n.To, ToName: n.ToName, Subject: n.Subject, HTMLBody: n.Body}
	if err := d.sender.Send(ctx, msg); err != nil {
		res.Err = err
		d.fail(res)
		return res
	}

	res.Delivered = true
	metrics.NotificationsSent.WithLabelValues(string(n.Kind), d.provider).Inc()
	d.log.Info().
		Str("kind", string(n.Kind)).
		Str("recipient", n.To).
		Str("subject", n.Subject).
		Msg("email sent")
	return res
}

func (d *Dispatcher) fail(res Result) {
	metrics.NotificationsFailed.WithLabelValues(string(res.Kind), d.provider).Inc()
	d.log.Error().
		Err(res.Err).
		Str("kind", string(res.Kind)).
		Str("recipient", res.Recipient).
		Msg("failed to send email")
}
