package model

// Role identifies what kind of account a user holds
type Role int

const (
	RoleGeneric   Role = 1
	RoleOrganizer Role = 2
	RoleCustomer  Role = 3
)

// Title returns the human-readable label used in greetings.
// Unknown roles fall back to "User".
func (r Role) Title() string {
	switch r {
	case RoleOrganizer:
		return "Organizer"
	case RoleCustomer:
		return "Customer"
	default:
		return "User"
	}
}

// String implements fmt.Stringer
func (r Role) String() string {
	return r.Title()
}

// User is the account record notifications are addressed to.
// It is owned and persisted by the account service.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

// FullName joins first and last name
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
