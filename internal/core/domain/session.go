package domain

import "errors"

// Role gates access to the administrative views. Roles are assigned by the
// backend at registration/login time and are never derived client-side.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Profile is the identity the backend returns alongside a token.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Session pairs the bearer token with the profile it authenticates.
// A session is all-or-nothing: a *Session is either nil or carries both
// fields. No partial state is representable or persisted.
type Session struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}

var ErrIncompleteSession = errors.New("session requires both token and profile")

// Valid reports whether the session carries the full token/profile pair.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.Profile.ID != ""
}
