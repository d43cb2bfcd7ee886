package domain

import (
	"context"
	"time"
)

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "DRAFT"
	EventStatusPublished EventStatus = "PUBLISHED"
	EventStatusCancelled EventStatus = "CANCELLED"
	EventStatusCompleted EventStatus = "COMPLETED"
)

// EventType tells whether an event happens on site or online.
type EventType string

const (
	EventTypeInPerson EventType = "IN_PERSON"
	EventTypeVirtual  EventType = "VIRTUAL"
)

// Event represents a volunteering opportunity created by an administrator.
// swagger:model Event
type Event struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Location        string      `json:"location"`
	EventType       EventType   `json:"event_type"`
	RequiredSkills  []string    `json:"required_skills"`
	StartTime       time.Time   `json:"start_time"`
	DurationMinutes int         `json:"duration_minutes"`
	Status          EventStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// StartsAfter reports whether the event starts strictly after t.
func (e *Event) StartsAfter(t time.Time) bool {
	return e.StartTime.After(t)
}

// EventRepository is the read-side event directory used by matching.
type EventRepository interface {
	GetByID(ctx context.Context, id string) (*Event, error)
	// ListBySkills returns events whose required skills share at least one
	// entry with skills (case-insensitive), ordered by start time.
	ListBySkills(ctx context.Context, skills []string) ([]*Event, error)
	// ListUpcomingPublished returns published events starting after now.
	ListUpcomingPublished(ctx context.Context, now time.Time) ([]*Event, error)
}
