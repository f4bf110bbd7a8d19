package email

import (
	"fmt"
	"strings"
)

const (
	brandName       = "StarTickets"
	resetLinkExpiry = 10 // minutes, stated in the reset email only
)

// OrganizerHighlights is the bullet list shown to newly registered organizers.
var OrganizerHighlights = []string{
	"Create and publish your own events",
	"Set up ticket types, prices and capacity",
	"Track ticket sales and attendance in real time",
	"Communicate with your attendees",
}

// CustomerHighlights is the bullet list shown to every other new account.
var CustomerHighlights = []string{
	"Browse and discover upcoming events",
	"Purchase tickets securely in a few clicks",
	"Keep all your tickets in one place",
	"Get reminders before your events start",
}

var securityTips = []string{
	"Use a unique password that you don't use on other sites",
	"Never share your password or reset links with anyone",
	"StarTickets staff will never ask for your password",
	"Sign out of shared or public computers when you are done",
}

func bulletList(items []string) string {
	var b strings.Builder
	b.WriteString(`<ul style="margin:0 0 24px;padding-left:20px;font-size:15px;color:#4a4a68;line-height:1.8;">`)
	for _, item := range items {
		b.WriteString("\n      <li>")
		b.WriteString(item)
		b.WriteString("</li>")
	}
	b.WriteString("\n    </ul>")
	return b.String()
}

// layout wraps content rows in the shared email shell.
func layout(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
</head>
<body style="margin:0;padding:0;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;background-color:#f4f5f7;">
<table width="100%%" cellpadding="0" cellspacing="0" style="background-color:#f4f5f7;padding:40px 0;">
<tr><td align="center">
<table width="560" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;overflow:hidden;box-shadow:0 2px 8px rgba(0,0,0,0.08);">
  <tr><td style="background-color:#1a1a2e;padding:24px 40px;text-align:center;">
    <span style="font-size:24px;font-weight:bold;color:#ffffff;letter-spacing:1px;">&#9733; %s</span>
  </td></tr>
%s
  <tr><td style="padding:16px 40px;background-color:#f9f9fc;border-top:1px solid #eeeef2;">
    <p style="margin:0;font-size:12px;color:#aaaabc;text-align:center;">
      &copy; %s &mdash; This is an automated message, please do not reply.
    </p>
  </td></tr>
</table>
</td></tr>
</table>
</body>
</html>`, title, brandName, content, brandName)
}

// WelcomeEmailHTML returns the HTML body for the registration welcome email.
func WelcomeEmailHTML(firstName, roleTitle string, highlights []string, registeredOn string) string {
	content := fmt.Sprintf(`  <tr><td style="padding:32px 40px 8px;">
    <h1 style="margin:0 0 16px;font-size:22px;color:#1a1a2e;">Welcome, %s!</h1>
    <p style="margin:0 0 16px;font-size:15px;color:#4a4a68;line-height:1.6;">
      Your %s account has been created. You are registered as a <strong>%s</strong>.
    </p>
    <p style="margin:0 0 8px;font-size:15px;color:#4a4a68;line-height:1.6;">Here is what you can do now:</p>
    %s
  </td></tr>
  <tr><td style="padding:0 40px 32px;">
    <p style="margin:0;font-size:13px;color:#8888a0;line-height:1.5;">
      Registration date: <strong>%s</strong>
    </p>
  </td></tr>`, firstName, brandName, roleTitle, bulletList(highlights), registeredOn)

	return layout("Welcome to "+brandName, content)
}

// ResetRequestEmailHTML returns the HTML body for a password reset request.
// resetURL is inserted as is and must come from a trusted generator.
func ResetRequestEmailHTML(firstName, resetURL, requestedAt string) string {
	content := fmt.Sprintf(`  <tr><td style="padding:32px 40px 8px;">
    <h1 style="margin:0 0 16px;font-size:22px;color:#1a1a2e;">Reset your password</h1>
    <p style="margin:0 0 24px;font-size:15px;color:#4a4a68;line-height:1.6;">
      Hi %s, we received a request to reset the password of your %s account on <strong>%s</strong>.
      Click the button below to choose a new password.
    </p>
  </td></tr>
  <tr><td style="padding:0 40px;text-align:center;">
    <a href="%s" style="display:inline-block;background-color:#6c63ff;color:#ffffff;text-decoration:none;font-size:15px;font-weight:bold;padding:14px 32px;border-radius:6px;margin:0 0 24px;">Reset Password</a>
  </td></tr>
  <tr><td style="padding:0 40px;">
    <p style="margin:0 0 8px;font-size:13px;color:#8888a0;line-height:1.5;">
      If the button doesn't work, copy and paste this link into your browser:
    </p>
    <p style="margin:0 0 24px;font-size:13px;line-height:1.5;word-break:break-all;">
      <a href="%s" style="color:#6c63ff;">%s</a>
    </p>
  </td></tr>
  <tr><td style="padding:0 40px 32px;">
    <p style="margin:0;font-size:13px;color:#8888a0;line-height:1.5;">
      This link expires in <strong>%d minutes</strong>. If you didn't request a password reset, you can safely ignore this email; your password will not change.
    </p>
  </td></tr>`, firstName, brandName, requestedAt, resetURL, resetURL, resetURL, resetLinkExpiry)

	return layout("Reset your password", content)
}

// ResetConfirmationEmailHTML returns the HTML body sent after a password change.
func ResetConfirmationEmailHTML(firstName, changedAt string) string {
	content := fmt.Sprintf(`  <tr><td style="padding:32px 40px 8px;">
    <h1 style="margin:0 0 16px;font-size:22px;color:#1a1a2e;">Your password has been reset</h1>
    <p style="margin:0 0 16px;font-size:15px;color:#4a4a68;line-height:1.6;">
      Hi %s, the password of your %s account was changed on <strong>%s</strong>.
    </p>
    <p style="margin:0 0 16px;font-size:15px;color:#4a4a68;line-height:1.6;">
      If you made this change, no further action is needed. If you did not, contact our support team immediately.
    </p>
  </td></tr>
  <tr><td style="padding:0 40px 32px;">
    <div style="background-color:#f0f0ff;border-left:4px solid #6c63ff;border-radius:4px;padding:16px 20px;">
      <p style="margin:0 0 8px;font-size:14px;font-weight:bold;color:#1a1a2e;">Security tips</p>
      %s
    </div>
  </td></tr>`, firstName, brandName, changedAt, bulletList(securityTips))

	return layout("Password reset confirmation", content)
}
