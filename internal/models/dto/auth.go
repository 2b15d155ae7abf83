package dto

// LoginRequest carries credentials for the login endpoint. Transient: held only
// for the duration of the submit call, never persisted.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries credentials for the registration endpoint. Role is
// optional and defaults server-side.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}
