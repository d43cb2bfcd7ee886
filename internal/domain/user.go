package domain

import (
	"time"
)

// Role is the application role carried by an authenticated requester.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleVolunteer Role = "VOLUNTEER"
)

// Requester is the authenticated identity on whose behalf an operation runs.
// It is produced by the auth layer; services never look it up themselves.
type Requester struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the requester holds the administrator role.
func (r *Requester) IsAdmin() bool {
	return r != nil && r.Role == RoleAdmin
}

// TokenIssuer issues tokens (e.g. JWT) for a requester.
type TokenIssuer interface {
	Issue(requester *Requester, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the requester it was issued for.
type TokenVerifier interface {
	Verify(token string) (*Requester, error)
}
