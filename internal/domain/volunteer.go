package domain

import (
	"context"
	"time"
)

// Volunteer is a volunteer profile owned by a user.
// swagger:model Volunteer
type Volunteer struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Skills    []string  `json:"skills"`
	Location  string    `json:"location"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnedBy reports whether the profile belongs to the requester.
func (v *Volunteer) OwnedBy(r *Requester) bool {
	return r != nil && v.UserID == r.ID
}

// VolunteerRepository is the read-side volunteer directory used by matching.
type VolunteerRepository interface {
	GetByID(ctx context.Context, id string) (*Volunteer, error)
	GetByUserID(ctx context.Context, userID string) (*Volunteer, error)
	// ListBySkills returns volunteers sharing at least one skill with skills
	// (case-insensitive), ordered by profile creation.
	ListBySkills(ctx context.Context, skills []string) ([]*Volunteer, error)
}

// VolunteerService resolves volunteer profiles for a requester.
type VolunteerService interface {
	GetCurrentProfile(ctx context.Context, requester *Requester) (*Volunteer, error)
	GetByID(ctx context.Context, requester *Requester, id string) (*Volunteer, error)
}
