package email

import (
	"html"
	"time"

	"github.com/startickets/webtier/internal/model"
)

// Subjects of the notifications
const (
	WelcomeSubject           = "Welcome to StarTickets!"
	ResetRequestSubject      = "Reset Your StarTickets Password"
	ResetConfirmationSubject = "Your StarTickets Password Has Been Reset"
)

const (
	registrationDateLayout = "January 2, 2006"
	utcTimestampLayout     = "January 2, 2006 15:04 UTC"
)

// Composer builds notification subjects and bodies. It performs no I/O.
type Composer struct {
	now func() time.Time
}

// NewComposer creates a Composer using the wall clock.
func NewComposer() *Composer {
	return &Composer{now: time.Now}
}

// NewComposerWithClock creates a Composer reading time from now.
func NewComposerWithClock(now func() time.Time) *Composer {
	return &Composer{now: now}
}

// ComposeWelcome builds the welcome email.
//
// The greeting maps Organizer, Customer and anything else ("User"), but the
// highlight list only distinguishes Organizer from everyone else, so a
// generic account gets the customer list under a "User" greeting.
func (c *Composer) ComposeWelcome(user *model.User) (subject, body string) {
	highlights := CustomerHighlights
	if user.Role == model.RoleOrganizer {
		highlights = OrganizerHighlights
	}

	registeredOn := c.now().Local().Format(registrationDateLayout)
	body = WelcomeEmailHTML(html.EscapeString(user.FirstName), user.Role.Title(), highlights, registeredOn)
	return WelcomeSubject, body
}

// ComposeResetRequest builds the password reset email carrying resetURL.
// The 10 minute expiry is only stated; the token issuer enforces it.
func (c *Composer) ComposeResetRequest(user *model.User, resetURL string) (subject, body string) {
	requestedAt := c.now().UTC().Format(utcTimestampLayout)
	body = ResetRequestEmailHTML(html.EscapeString(user.FirstName), resetURL, requestedAt)
	return ResetRequestSubject, body
}

// ComposeResetConfirmation builds the email sent after a successful reset.
func (c *Composer) ComposeResetConfirmation(user *model.User) (subject, body string) {
	changedAt := c.now().UTC().Format(utcTimestampLayout)
	body = ResetConfirmationEmailHTML(html.EscapeString(user.FirstName), changedAt)
	return ResetConfirmationSubject, body
}

var defaultComposer = NewComposer()

// ComposeWelcome builds the welcome email using the wall clock.
func ComposeWelcome(user *model.User) (string, string) {
	return defaultComposer.ComposeWelcome(user)
}

// ComposeResetRequest builds the reset request email using the wall clock.
func ComposeResetRequest(user *model.User, resetURL string) (string, string) {
	return defaultComposer.ComposeResetRequest(user, resetURL)
}

// ComposeResetConfirmation builds the reset confirmation email using the wall clock.
func ComposeResetConfirmation(user *model.User) (string, string) {
	return defaultComposer.ComposeResetConfirmation(user)
}
