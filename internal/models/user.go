package models

// Identity captures the authenticated user as returned by the auth endpoints.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token,omitempty"`
}

// IsAdmin reports whether the identity carries the elevated role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
