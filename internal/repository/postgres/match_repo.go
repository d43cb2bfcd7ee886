package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"volunteermatch/internal/domain"
)

const uniqueViolation = "23505"

const matchColumns = `m.id, m.event_id, m.volunteer_id, m.score, m.status, m.notified, m.notified_at, m.matched_at`

const matchWithEventSelect = `
	SELECT ` + matchColumns + `,
		e.id, e.title, e.description, e.location, e.event_type, e.required_skills,
		e.start_time, e.duration_minutes, e.status, e.created_at, e.updated_at
	FROM event_matches m
	JOIN events e ON e.id = m.event_id
`

type matchRepository struct {
	DB *sql.DB
}

func NewMatchRepository(db *sql.DB) domain.MatchRepository {
	return &matchRepository{
		DB: db,
	}
}

func scanMatch(row rowScanner, extra ...any) (*domain.Match, error) {
	m := &domain.Match{}
	var status string
	var notifiedAt sql.NullTime
	dest := append([]any{
		&m.ID, &m.EventID, &m.VolunteerID, &m.Score, &status, &m.Notified, &notifiedAt, &m.MatchedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	m.Status = domain.MatchStatus(status)
	if notifiedAt.Valid {
		m.NotifiedAt = &notifiedAt.Time
	}
	return m, nil
}

func scanMatchWithEvent(row rowScanner) (*domain.MatchWithEvent, error) {
	e := &domain.Event{}
	var descNull, locNull sql.NullString
	var eventType, eventStatus string
	m, err := scanMatch(row,
		&e.ID, &e.Title, &descNull, &locNull, &eventType, pq.Array(&e.RequiredSkills),
		&e.StartTime, &e.DurationMinutes, &eventStatus, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Description = descNull.String
	e.Location = locNull.String
	e.EventType = domain.EventType(eventType)
	e.Status = domain.EventStatus(eventStatus)
	if e.RequiredSkills == nil {
		e.RequiredSkills = []string{}
	}
	return &domain.MatchWithEvent{Match: m, Event: e}, nil
}

func (r *matchRepository) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM event_matches m WHERE m.id = $1`
	return r.getOne(ctx, query, id)
}

func (r *matchRepository) GetByEventAndVolunteer(ctx context.Context, eventID, volunteerID string) (*domain.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM event_matches m WHERE m.event_id = $1 AND m.volunteer_id = $2`
	return r.getOne(ctx, query, eventID, volunteerID)
}

func (r *matchRepository) getOne(ctx context.Context, query string, args ...any) (*domain.Match, error) {
	m, err := scanMatch(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *matchRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM event_matches m WHERE m.event_id = $1 ORDER BY m.score DESC, m.matched_at`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	matches := make([]*domain.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (r *matchRepository) ListByVolunteerID(ctx context.Context, volunteerID string) ([]*domain.MatchWithEvent, error) {
	return r.listWithEvent(ctx, matchWithEventSelect+`WHERE m.volunteer_id = $1 ORDER BY m.matched_at DESC`, volunteerID)
}

func (r *matchRepository) ListByVolunteerIDAndStatus(ctx context.Context, volunteerID string, status domain.MatchStatus) ([]*domain.MatchWithEvent, error) {
	query := matchWithEventSelect + `WHERE m.volunteer_id = $1 AND m.status = $2 ORDER BY m.matched_at DESC`
	return r.listWithEvent(ctx, query, volunteerID, string(status))
}

func (r *matchRepository) ListAll(ctx context.Context) ([]*domain.MatchWithEvent, error) {
	return r.listWithEvent(ctx, matchWithEventSelect+`ORDER BY m.matched_at DESC`)
}

func (r *matchRepository) listWithEvent(ctx context.Context, query string, args ...any) ([]*domain.MatchWithEvent, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*domain.MatchWithEvent, 0)
	for rows.Next() {
		mw, err := scanMatchWithEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, mw)
	}
	return out, rows.Err()
}

func (r *matchRepository) Create(ctx context.Context, match *domain.Match) error {
	query := `
		INSERT INTO event_matches (event_id, volunteer_id, score, status, notified, notified_at, matched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		match.EventID, match.VolunteerID, match.Score, string(match.Status),
		match.Notified, match.NotifiedAt, match.MatchedAt,
	).Scan(&match.ID)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == uniqueViolation {
			return domain.ErrDuplicateMatch
		}
		return err
	}
	return nil
}

// CreateMany inserts all matches in one statement. Pairs that already exist
// are skipped; the returned count is the number of rows actually inserted.
func (r *matchRepository) CreateMany(ctx context.Context, matches []*domain.Match) (int, error) {
	if len(matches) == 0 {
		return 0, nil
	}
	eventIDs := make([]string, 0, len(matches))
	volunteerIDs := make([]string, 0, len(matches))
	scores := make([]int64, 0, len(matches))
	for _, m := range matches {
		eventIDs = append(eventIDs, m.EventID)
		volunteerIDs = append(volunteerIDs, m.VolunteerID)
		scores = append(scores, int64(m.Score))
	}
	query := `
		INSERT INTO event_matches (event_id, volunteer_id, score, status, notified, matched_at)
		SELECT unnest($1::uuid[]), unnest($2::uuid[]), unnest($3::int[]), $4, false, $5
		ON CONFLICT (event_id, volunteer_id) DO NOTHING
	`
	result, err := r.DB.ExecContext(ctx, query,
		pq.Array(eventIDs), pq.Array(volunteerIDs), pq.Array(scores),
		string(domain.MatchStatusPending), matches[0].MatchedAt,
	)
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *matchRepository) Update(ctx context.Context, id string, update domain.MatchUpdate) (*domain.Match, error) {
	setClauses := []string{}
	args := []any{}
	n := 1
	if update.Status != nil {
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", n))
		args = append(args, string(*update.Status))
		n++
	}
	if update.Notified != nil {
		setClauses = append(setClauses, fmt.Sprintf("notified = $%d", n))
		args = append(args, *update.Notified)
		n++
	}
	if update.NotifiedAt != nil {
		setClauses = append(setClauses, fmt.Sprintf("notified_at = $%d", n))
		args = append(args, *update.NotifiedAt)
		n++
	}
	if n == 1 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE event_matches m SET %s
		WHERE m.id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, matchColumns)
	return r.getOne(ctx, query, args...)
}
