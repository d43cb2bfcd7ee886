package domain

import (
	"context"
	"time"
)

// MatchStatus is the state of a match. PENDING is the only entry state;
// ACCEPTED and DECLINED are terminal.
type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "PENDING"
	MatchStatusAccepted MatchStatus = "ACCEPTED"
	MatchStatusDeclined MatchStatus = "DECLINED"
)

// ResponseAction is a volunteer's answer to an invitation.
type ResponseAction string

const (
	ResponseAccept  ResponseAction = "accept"
	ResponseDecline ResponseAction = "decline"
)

// Valid reports whether a is a known action.
func (a ResponseAction) Valid() bool {
	return a == ResponseAccept || a == ResponseDecline
}

// Status returns the match status the action transitions to.
func (a ResponseAction) Status() MatchStatus {
	if a == ResponseAccept {
		return MatchStatusAccepted
	}
	return MatchStatusDeclined
}

// Match pairs a volunteer with an event. At most one exists per event/volunteer pair.
// swagger:model Match
type Match struct {
	ID          string      `json:"id"`
	EventID     string      `json:"event_id"`
	VolunteerID string      `json:"volunteer_id"`
	Score       int         `json:"score"`
	Status      MatchStatus `json:"status"`
	Notified    bool        `json:"notified"`
	NotifiedAt  *time.Time  `json:"notified_at"`
	MatchedAt   time.Time   `json:"matched_at"`
}

// NewMatch returns a PENDING, not yet notified match. ID is set by the repository on create.
func NewMatch(eventID, volunteerID string, score int, matchedAt time.Time) *Match {
	return &Match{
		EventID:     eventID,
		VolunteerID: volunteerID,
		Score:       score,
		Status:      MatchStatusPending,
		Notified:    false,
		NotifiedAt:  nil,
		MatchedAt:   matchedAt,
	}
}

// MatchUpdate holds the mutable match fields; nil fields are left unchanged.
type MatchUpdate struct {
	Status     *MatchStatus
	Notified   *bool
	NotifiedAt *time.Time
}

// MatchWithEvent bundles a match with its related event.
type MatchWithEvent struct {
	Match *Match `json:"match"`
	Event *Event `json:"event"`
}

// RecommendedEvent is an event scored against a volunteer's skills.
type RecommendedEvent struct {
	Event      *Event `json:"event"`
	MatchScore int    `json:"match_score"`
}

// RecommendedVolunteer is a volunteer scored against an event's required skills.
// Status is always PENDING and means "not yet matched"; it is not read from a stored match.
type RecommendedVolunteer struct {
	Volunteer  *Volunteer  `json:"volunteer"`
	MatchScore int         `json:"match_score"`
	Status     MatchStatus `json:"status"`
}

// MatchCalculation is the outcome of scanning an event for new matches.
// MatchesFound counts every skill-prefiltered candidate, including those
// scored 0 or already matched; MatchesCreated counts rows actually inserted.
type MatchCalculation struct {
	MatchesFound   int `json:"matches_found"`
	MatchesCreated int `json:"matches_created"`
}

// RecalculationResult is the outcome of scanning all upcoming events.
type RecalculationResult struct {
	EventsProcessed int `json:"events_processed"`
	MatchesCreated  int `json:"matches_created"`
}

// MatchRepository defines storage for matches.
type MatchRepository interface {
	GetByID(ctx context.Context, id string) (*Match, error)
	GetByEventAndVolunteer(ctx context.Context, eventID, volunteerID string) (*Match, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Match, error)
	ListByVolunteerID(ctx context.Context, volunteerID string) ([]*MatchWithEvent, error)
	ListByVolunteerIDAndStatus(ctx context.Context, volunteerID string, status MatchStatus) ([]*MatchWithEvent, error)
	ListAll(ctx context.Context) ([]*MatchWithEvent, error)
	// Create inserts a single match. Returns ErrDuplicateMatch if the pair already exists.
	Create(ctx context.Context, match *Match) error
	// CreateMany inserts matches, silently skipping pairs that already exist,
	// and returns the number of rows inserted.
	CreateMany(ctx context.Context, matches []*Match) (int, error)
	Update(ctx context.Context, id string, update MatchUpdate) (*Match, error)
}

// MatchingService scores volunteers against events and manages match records.
type MatchingService interface {
	GetRecommendedEvents(ctx context.Context, requester *Requester, volunteerID string) ([]*RecommendedEvent, error)
	GetRecommendedVolunteers(ctx context.Context, requester *Requester, eventID string) ([]*RecommendedVolunteer, error)
	// CreateMatch persists a single PENDING match. A nil score is stored as 0.
	CreateMatch(ctx context.Context, requester *Requester, eventID, volunteerID string, score *int) (*Match, error)
	CalculateAndSaveMatches(ctx context.Context, requester *Requester, eventID string) (*MatchCalculation, error)
	RecalculateUpcoming(ctx context.Context, requester *Requester) (*RecalculationResult, error)
	RespondToMatch(ctx context.Context, requester *Requester, matchID string, action ResponseAction) (*Match, error)
	GetVolunteerMatches(ctx context.Context, requester *Requester, volunteerID string) ([]*MatchWithEvent, error)
	GetAllMatches(ctx context.Context, requester *Requester) ([]*MatchWithEvent, error)
}

// InvitationService drives the invitation side of a match.
type InvitationService interface {
	SendInvitation(ctx context.Context, requester *Requester, eventID, matchID string) error
	GetPendingInvitations(ctx context.Context, requester *Requester) ([]*MatchWithEvent, error)
	GetAcceptedMatches(ctx context.Context, requester *Requester) ([]*MatchWithEvent, error)
	RespondToInvitation(ctx context.Context, requester *Requester, matchID string, action ResponseAction) (*Match, error)
}
