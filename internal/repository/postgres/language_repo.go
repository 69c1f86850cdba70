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

type languageRepo struct {
	db *pgxpool.Pool
}

func NewLanguageRepository(db *pgxpool.Pool) domain.LanguageRepository {
	return &languageRepo{db: db}
}

const languageColumns = `id, user_id, name, proficiency, created_at, updated_at`

func scanLanguage(row pgx.Row) (*domain.Language, error) {
	var l domain.Language
	err := row.Scan(&l.ID, &l.UserID, &l.Name, &l.Proficiency, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *languageRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Language, error) {
	query := `SELECT ` + languageColumns + ` FROM languages WHERE user_id = $1 ORDER BY name`
	return r.list(ctx, query, userID)
}

func (r *languageRepo) ListByProficiency(ctx context.Context, userID uuid.UUID, proficiency string) ([]domain.Language, error) {
	query := `SELECT ` + languageColumns + ` FROM languages
              WHERE user_id = $1 AND proficiency = $2 ORDER BY name`
	return r.list(ctx, query, userID, proficiency)
}

func (r *languageRepo) list(ctx context.Context, query string, args ...any) ([]domain.Language, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var languages []domain.Language
	for rows.Next() {
		l, err := scanLanguage(rows)
		if err != nil {
			return nil, err
		}
		languages = append(languages, *l)
	}
	return languages, rows.Err()
}

func (r *languageRepo) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Language, error) {
	query := `SELECT ` + languageColumns + ` FROM languages WHERE id = $1 AND user_id = $2`
	l, err := scanLanguage(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func (r *languageRepo) Create(ctx context.Context, l *domain.Language) error {
	query := `INSERT INTO languages (id, user_id, name, proficiency, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, l.ID, l.UserID, l.Name, l.Proficiency, l.CreatedAt, l.UpdatedAt)
	return err
}

func (r *languageRepo) Update(ctx context.Context, l *domain.Language) error {
	query := `UPDATE languages SET name = $1, proficiency = $2, updated_at = $3
              WHERE id = $4 AND user_id = $5`
	tag, err := r.db.Exec(ctx, query, l.Name, l.Proficiency, time.Now(), l.ID, l.UserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *languageRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM languages WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
