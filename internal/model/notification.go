package model

// NotificationKind names a notification template
type NotificationKind string

const (
	NotificationWelcome           NotificationKind = "welcome"
	NotificationResetRequest      NotificationKind = "password_reset_request"
	NotificationResetConfirmation NotificationKind = "password_reset_confirmation"
	NotificationAdHoc             NotificationKind = "ad_hoc"
)

// Notification is a composed message ready for dispatch. It is never persisted.
type Notification struct {
	Kind    NotificationKind
	To      string
	ToName  string
	Subject string
	Body    string
}
