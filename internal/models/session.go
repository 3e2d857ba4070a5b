package models

// RoleAdmin is the only role with mutation rights in the console.
const RoleAdmin = "admin"

// Session is the identity returned by a successful login exchange. It lives
// only in process memory; there is nothing durable to invalidate on logout.
type Session struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the session may use data-mutating controls.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
