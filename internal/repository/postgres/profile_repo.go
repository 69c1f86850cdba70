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

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Create(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (id, user_id, full_name, email, phone, location, professional_summary, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.UserID, p.FullName, p.Email, p.Phone, p.Location, p.ProfessionalSummary,
		p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query := `SELECT id, user_id, full_name, email, phone, location, professional_summary, created_at, updated_at
              FROM profiles WHERE user_id = $1`
	var p domain.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Email, &p.Phone, &p.Location, &p.ProfessionalSummary,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Update never touches email: it stays as copied from the user account.
func (r *profileRepo) Update(ctx context.Context, p *domain.Profile) error {
	query := `UPDATE profiles
              SET full_name = $1, phone = $2, location = $3, professional_summary = $4, updated_at = $5
              WHERE user_id = $6`
	tag, err := r.db.Exec(ctx, query,
		p.FullName, p.Phone, p.Location, p.ProfessionalSummary, time.Now(), p.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
