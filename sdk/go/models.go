package startickets

// Account roles understood by the welcome email.
const (
	RoleGeneric   = 1
	RoleOrganizer = 2
	RoleCustomer  = 3
)

// Recipient is the account a notification is addressed to.
type Recipient struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email"`
	Role      int    `json:"role,omitempty"`
}

type resetRequest struct {
	Recipient
	ResetURL string `json:"resetUrl"`
}

// NotificationResult reports what happened to one notification. A failed
// delivery is not an error: Delivered is false and Error holds the reason.
type NotificationResult struct {
	Kind      string `json:"kind"`
	Recipient string `json:"recipient"`
	Delivered bool   `json:"delivered"`
	Error     string `json:"error,omitempty"`
}
