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

type socialLinkRepo struct {
	db *pgxpool.Pool
}

func NewSocialLinkRepository(db *pgxpool.Pool) domain.SocialLinkRepository {
	return &socialLinkRepo{db: db}
}

const socialLinkColumns = `id, user_id, platform, url, username, created_at, updated_at`

func scanSocialLink(row pgx.Row) (*domain.SocialLink, error) {
	var s domain.SocialLink
	err := row.Scan(&s.ID, &s.UserID, &s.Platform, &s.URL, &s.Username, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *socialLinkRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SocialLink, error) {
	query := `SELECT ` + socialLinkColumns + ` FROM social_links WHERE user_id = $1 ORDER BY platform`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []domain.SocialLink
	for rows.Next() {
		s, err := scanSocialLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, *s)
	}
	return links, rows.Err()
}

func (r *socialLinkRepo) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.SocialLink, error) {
	query := `SELECT ` + socialLinkColumns + ` FROM social_links WHERE id = $1 AND user_id = $2`
	s, err := scanSocialLink(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *socialLinkRepo) Create(ctx context.Context, s *domain.SocialLink) error {
	query := `INSERT INTO social_links (id, user_id, platform, url, username, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, s.ID, s.UserID, s.Platform, s.URL, s.Username, s.CreatedAt, s.UpdatedAt)
	return err
}

func (r *socialLinkRepo) Update(ctx context.Context, s *domain.SocialLink) error {
	query := `UPDATE social_links SET platform = $1, url = $2, username = $3, updated_at = $4
              WHERE id = $5 AND user_id = $6`
	tag, err := r.db.Exec(ctx, query, s.Platform, s.URL, s.Username, time.Now(), s.ID, s.UserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *socialLinkRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM social_links WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
