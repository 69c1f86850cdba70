package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Certification status values used by the status filter and the
// dashboard.
const (
	CertStatusActive       = "active"
	CertStatusExpired      = "expired"
	CertStatusNoExpiration = "no_expiration"
)

type Certification struct {
	ID                  uuid.UUID  `json:"id"`
	UserID              uuid.UUID  `json:"userId"`
	Name                string     `json:"name"`
	IssuingOrganization string     `json:"issuingOrganization"`
	IssueDate           time.Time  `json:"issueDate"`
	ExpirationDate      *time.Time `json:"expirationDate,omitempty"`
	CredentialID        *string    `json:"credentialId,omitempty"`
	CredentialURL       *string    `json:"credentialUrl,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// StatusAt classifies the certification at the given instant. A
// certification without an expiration never expires; one expiring
// exactly at the instant is already expired (active requires a strictly
// future expiration).
func (c Certification) StatusAt(now time.Time) string {
	if c.ExpirationDate == nil {
		return CertStatusNoExpiration
	}
	if c.ExpirationDate.After(now) {
		return CertStatusActive
	}
	return CertStatusExpired
}

// Status classifies the certification against the current clock.
func (c Certification) Status() string {
	return c.StatusAt(time.Now())
}

type CertificationRequest struct {
	Name                string     `json:"name" binding:"required,min=2"`
	IssuingOrganization string     `json:"issuingOrganization" binding:"required,min=2"`
	IssueDate           time.Time  `json:"issueDate" binding:"required"`
	ExpirationDate      *time.Time `json:"expirationDate,omitempty"`
	CredentialID        *string    `json:"credentialId,omitempty"`
	CredentialURL       *string    `json:"credentialUrl,omitempty" binding:"omitempty,link_url"`
}

type CertificationRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Certification, error)
	ListExpired(ctx context.Context, userID uuid.UUID) ([]Certification, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*Certification, error)
	Create(ctx context.Context, cert *Certification) error
	Update(ctx context.Context, cert *Certification) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type CertificationUsecase interface {
	List(ctx context.Context, q ListQuery) (*PaginatedResult[Certification], error)
	ListExpired(ctx context.Context) ([]Certification, error)
	Create(ctx context.Context, req CertificationRequest) (*Certification, error)
	Update(ctx context.Context, id uuid.UUID, req CertificationRequest) (*Certification, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
