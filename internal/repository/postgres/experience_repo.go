package postgres

import (
	"context"
	"errors"
	"time"

	"go-portfolio-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type experienceRepo struct {
	db *pgxpool.Pool
}

func NewExperienceRepository(db *pgxpool.Pool) domain.ExperienceRepository {
	return &experienceRepo{db: db}
}

const experienceColumns = `id, user_id, company, position, employment_type,
       start_date, end_date, is_current, description, skill_ids, created_at, updated_at`

func scanExperience(row pgx.Row) (*domain.Experience, error) {
	var e domain.Experience
	var skillIDs []string
	err := row.Scan(
		&e.ID, &e.UserID, &e.Company, &e.Position, &e.EmploymentType,
		&e.StartDate, &e.EndDate, &e.IsCurrent, &e.Description, pq.Array(&skillIDs),
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.SkillIDs = parseUUIDs(skillIDs)
	return &e, nil
}

// parseUUIDs silently drops malformed entries; the skills usecase already
// tolerates references to rows that no longer exist.
func parseUUIDs(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func formatUUIDs(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func (r *experienceRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences
              WHERE user_id = $1 ORDER BY start_date DESC`
	return r.list(ctx, query, userID)
}

func (r *experienceRepo) ListCurrentByUser(ctx context.Context, userID uuid.UUID) ([]domain.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences
              WHERE user_id = $1 AND is_current = true ORDER BY start_date DESC`
	return r.list(ctx, query, userID)
}

func (r *experienceRepo) list(ctx context.Context, query string, args ...any) ([]domain.Experience, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var experiences []domain.Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, *e)
	}
	return experiences, rows.Err()
}

func (r *experienceRepo) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE id = $1 AND user_id = $2`
	e, err := scanExperience(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *experienceRepo) Create(ctx context.Context, e *domain.Experience) error {
	query := `INSERT INTO experiences (id, user_id, company, position, employment_type,
                  start_date, end_date, is_current, description, skill_ids, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.UserID, e.Company, e.Position, e.EmploymentType,
		e.StartDate, e.EndDate, e.IsCurrent, e.Description, pq.Array(formatUUIDs(e.SkillIDs)),
		e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *experienceRepo) Update(ctx context.Context, e *domain.Experience) error {
	query := `UPDATE experiences
              SET company = $1, position = $2, employment_type = $3,
                  start_date = $4, end_date = $5, is_current = $6, description = $7,
                  skill_ids = $8, updated_at = $9
              WHERE id = $10 AND user_id = $11`
	tag, err := r.db.Exec(ctx, query,
		e.Company, e.Position, e.EmploymentType,
		e.StartDate, e.EndDate, e.IsCurrent, e.Description,
		pq.Array(formatUUIDs(e.SkillIDs)), time.Now(),
		e.ID, e.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *experienceRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
