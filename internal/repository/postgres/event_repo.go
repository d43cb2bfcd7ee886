package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"

	"volunteermatch/internal/domain"
)

const eventColumns = `id, title, description, location, event_type, required_skills, start_time, duration_minutes, status, created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var descNull, locNull sql.NullString
	var eventType, status string
	if err := row.Scan(
		&e.ID, &e.Title, &descNull, &locNull, &eventType, pq.Array(&e.RequiredSkills),
		&e.StartTime, &e.DurationMinutes, &status, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	e.Description = descNull.String
	e.Location = locNull.String
	e.EventType = domain.EventType(eventType)
	e.Status = domain.EventStatus(status)
	if e.RequiredSkills == nil {
		e.RequiredSkills = []string{}
	}
	return e, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ListBySkills(ctx context.Context, skills []string) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE EXISTS (
			SELECT 1 FROM unnest(required_skills) AS s WHERE lower(s) = ANY($1)
		)
		ORDER BY start_time ASC, id
	`
	return r.list(ctx, query, pq.Array(lowerSkills(skills)))
}

func (r *eventRepository) ListUpcomingPublished(ctx context.Context, now time.Time) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE status = $1 AND start_time > $2
		ORDER BY start_time ASC, id
	`
	return r.list(ctx, query, string(domain.EventStatusPublished), now)
}

func (r *eventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// lowerSkills lower-cases skills for case-insensitive array matching.
func lowerSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, strings.ToLower(s))
	}
	return out
}
