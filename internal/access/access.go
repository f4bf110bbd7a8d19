// Package access decides whether a request may reach a role-protected handler.
package access

// RoleKey is the session entry holding the signed-in user's role.
const RoleKey = "Role"

// Session is the per-request view of the session store.
type Session interface {
	Get(key string) (string, bool)
}

// Decision is the outcome of a role check
type Decision int

const (
	Denied Decision = iota
	Allowed
)

func (d Decision) String() string {
	if d == Allowed {
		return "allowed"
	}
	return "denied"
}

// Route names a controller action
type Route struct {
	Controller string
	Action     string
}

// Path returns the URL path of the route
func (r Route) Path() string {
	return "/" + r.Controller + "/" + r.Action
}

// LoginRoute is where denied requests are redirected.
var LoginRoute = Route{Controller: "Auth", Action: "Login"}

// Evaluate allows the request only when the session role equals required
// exactly. A nil session, a missing key and an empty value all deny.
func Evaluate(required string, s Session) Decision {
	if s == nil {
		return Denied
	}
	role, ok := s.Get(RoleKey)
	if !ok || role == "" || role != required {
		return Denied
	}
	return Allowed
}

// Values is a Session backed by a plain map.
type Values map[string]string

// Get implements Session
func (v Values) Get(key string) (string, bool) {
	val, ok := v[key]
	return val, ok
}
