package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"volunteermatch/internal/domain"
)

const volunteerSelect = `
	SELECT v.id, v.user_id, u.name, u.email, v.skills, v.location, v.bio, v.created_at, v.updated_at
	FROM volunteers v
	JOIN users u ON u.id = v.user_id
`

type volunteerRepository struct {
	DB *sql.DB
}

func NewVolunteerRepository(db *sql.DB) domain.VolunteerRepository {
	return &volunteerRepository{
		DB: db,
	}
}

func scanVolunteer(row rowScanner) (*domain.Volunteer, error) {
	v := &domain.Volunteer{}
	var name, location, bio sql.NullString
	if err := row.Scan(
		&v.ID, &v.UserID, &name, &v.Email, pq.Array(&v.Skills), &location, &bio, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	v.Name = name.String
	v.Location = location.String
	v.Bio = bio.String
	if v.Skills == nil {
		v.Skills = []string{}
	}
	return v, nil
}

func (r *volunteerRepository) GetByID(ctx context.Context, id string) (*domain.Volunteer, error) {
	return r.getOne(ctx, volunteerSelect+`WHERE v.id = $1`, id)
}

func (r *volunteerRepository) GetByUserID(ctx context.Context, userID string) (*domain.Volunteer, error) {
	return r.getOne(ctx, volunteerSelect+`WHERE v.user_id = $1`, userID)
}

func (r *volunteerRepository) getOne(ctx context.Context, query string, arg string) (*domain.Volunteer, error) {
	v, err := scanVolunteer(r.DB.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *volunteerRepository) ListBySkills(ctx context.Context, skills []string) ([]*domain.Volunteer, error) {
	query := volunteerSelect + `
		WHERE EXISTS (
			SELECT 1 FROM unnest(v.skills) AS s WHERE lower(s) = ANY($1)
		)
		ORDER BY v.created_at ASC, v.id
	`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(lowerSkills(skills)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	volunteers := make([]*domain.Volunteer, 0)
	for rows.Next() {
		v, err := scanVolunteer(rows)
		if err != nil {
			return nil, err
		}
		volunteers = append(volunteers, v)
	}
	return volunteers, rows.Err()
}
