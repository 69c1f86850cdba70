package postgres

import (
	"context"
	"errors"
	"time"

	"go-portfolio-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type educationRepo struct {
	db *pgxpool.Pool
}

func NewEducationRepository(db *pgxpool.Pool) domain.EducationRepository {
	return &educationRepo{db: db}
}

const educationColumns = `id, user_id, institution, degree, field_of_study, start_date, end_date,
       is_completed, description, created_at, updated_at`

func scanEducation(row pgx.Row) (*domain.Education, error) {
	var e domain.Education
	err := row.Scan(
		&e.ID, &e.UserID, &e.Institution, &e.Degree, &e.FieldOfStudy, &e.StartDate, &e.EndDate,
		&e.IsCompleted, &e.Description, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *educationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM educations WHERE user_id = $1 ORDER BY start_date DESC`
	return r.list(ctx, query, userID)
}

func (r *educationRepo) ListByDegree(ctx context.Context, userID uuid.UUID, degree string) ([]domain.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM educations
              WHERE user_id = $1 AND degree = $2 ORDER BY start_date DESC`
	return r.list(ctx, query, userID, degree)
}

func (r *educationRepo) list(ctx context.Context, query string, args ...any) ([]domain.Education, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var educations []domain.Education
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		educations = append(educations, *e)
	}
	return educations, rows.Err()
}

func (r *educationRepo) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM educations WHERE id = $1 AND user_id = $2`
	e, err := scanEducation(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *educationRepo) Create(ctx context.Context, e *domain.Education) error {
	query := `INSERT INTO educations (id, user_id, institution, degree, field_of_study, start_date, end_date,
                  is_completed, description, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.UserID, e.Institution, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate,
		e.IsCompleted, e.Description, e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *educationRepo) Update(ctx context.Context, e *domain.Education) error {
	query := `UPDATE educations
              SET institution = $1, degree = $2, field_of_study = $3, start_date = $4, end_date = $5,
                  is_completed = $6, description = $7, updated_at = $8
              WHERE id = $9 AND user_id = $10`
	tag, err := r.db.Exec(ctx, query,
		e.Institution, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate,
		e.IsCompleted, e.Description, time.Now(), e.ID, e.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *educationRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM educations WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
