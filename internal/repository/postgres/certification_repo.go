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

type certificationRepo struct {
	db *pgxpool.Pool
}

func NewCertificationRepository(db *pgxpool.Pool) domain.CertificationRepository {
	return &certificationRepo{db: db}
}

const certificationColumns = `id, user_id, name, issuing_organization, issue_date, expiration_date,
       credential_id, credential_url, created_at, updated_at`

func scanCertification(row pgx.Row) (*domain.Certification, error) {
	var c domain.Certification
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.IssuingOrganization, &c.IssueDate, &c.ExpirationDate,
		&c.CredentialID, &c.CredentialURL, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *certificationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Certification, error) {
	query := `SELECT ` + certificationColumns + ` FROM certifications
              WHERE user_id = $1 ORDER BY issue_date DESC`
	return r.list(ctx, query, userID)
}

func (r *certificationRepo) ListExpired(ctx context.Context, userID uuid.UUID) ([]domain.Certification, error) {
	query := `SELECT ` + certificationColumns + ` FROM certifications
              WHERE user_id = $1 AND expiration_date IS NOT NULL AND expiration_date <= $2
              ORDER BY expiration_date DESC`
	return r.list(ctx, query, userID, time.Now())
}

func (r *certificationRepo) list(ctx context.Context, query string, args ...any) ([]domain.Certification, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certifications []domain.Certification
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, err
		}
		certifications = append(certifications, *c)
	}
	return certifications, rows.Err()
}

func (r *certificationRepo) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Certification, error) {
	query := `SELECT ` + certificationColumns + ` FROM certifications WHERE id = $1 AND user_id = $2`
	c, err := scanCertification(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *certificationRepo) Create(ctx context.Context, c *domain.Certification) error {
	query := `INSERT INTO certifications (id, user_id, name, issuing_organization, issue_date, expiration_date,
                  credential_id, credential_url, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.UserID, c.Name, c.IssuingOrganization, c.IssueDate, c.ExpirationDate,
		c.CredentialID, c.CredentialURL, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *certificationRepo) Update(ctx context.Context, c *domain.Certification) error {
	query := `UPDATE certifications
              SET name = $1, issuing_organization = $2, issue_date = $3, expiration_date = $4,
                  credential_id = $5, credential_url = $6, updated_at = $7
              WHERE id = $8 AND user_id = $9`
	tag, err := r.db.Exec(ctx, query,
		c.Name, c.IssuingOrganization, c.IssueDate, c.ExpirationDate,
		c.CredentialID, c.CredentialURL, time.Now(), c.ID, c.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *certificationRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM certifications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
