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

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

const skillColumns = `id, user_id, name, category, level, years_of_experience, created_at, updated_at`

func scanSkill(row pgx.Row) (*domain.Skill, error) {
	var s domain.Skill
	err := row.Scan(
		&s.ID, &s.UserID, &s.Name, &s.Category, &s.Level, &s.YearsOfExperience,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *skillRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE user_id = $1 ORDER BY name`
	return r.list(ctx, query, userID)
}

func (r *skillRepo) ListByCategory(ctx context.Context, userID uuid.UUID, category string) ([]domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE user_id = $1 AND category = $2 ORDER BY name`
	return r.list(ctx, query, userID, category)
}

func (r *skillRepo) ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Skill, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + skillColumns + ` FROM skills
              WHERE user_id = $1 AND id = ANY($2) ORDER BY name`
	return r.list(ctx, query, userID, pq.Array(formatUUIDs(ids)))
}

func (r *skillRepo) list(ctx context.Context, query string, args ...any) ([]domain.Skill, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, *s)
	}
	return skills, rows.Err()
}

func (r *skillRepo) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = $1 AND user_id = $2`
	s, err := scanSkill(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *skillRepo) Create(ctx context.Context, s *domain.Skill) error {
	query := `INSERT INTO skills (id, user_id, name, category, level, years_of_experience, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.UserID, s.Name, s.Category, s.Level, s.YearsOfExperience,
		s.CreatedAt, s.UpdatedAt,
	)
	return err
}

func (r *skillRepo) Update(ctx context.Context, s *domain.Skill) error {
	query := `UPDATE skills
              SET name = $1, category = $2, level = $3, years_of_experience = $4, updated_at = $5
              WHERE id = $6 AND user_id = $7`
	tag, err := r.db.Exec(ctx, query,
		s.Name, s.Category, s.Level, s.YearsOfExperience, time.Now(), s.ID, s.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *skillRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
