package usecase

import (
	"context"
	"errors"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/listview"

	"github.com/google/uuid"
)

type certificationUsecase struct {
	certifications domain.CertificationRepository
}

func NewCertificationUsecase(certifications domain.CertificationRepository) domain.CertificationUsecase {
	return &certificationUsecase{certifications: certifications}
}

// The status filter categorizes by the computed status, not a stored
// column, so an expiring certification moves between filter buckets
// without any write.
func certificationListOptions() listview.Options[domain.Certification] {
	return listview.Options[domain.Certification]{
		SearchFields: func(c domain.Certification) []string {
			fields := []string{c.Name, c.IssuingOrganization}
			if c.CredentialID != nil {
				fields = append(fields, *c.CredentialID)
			}
			return fields
		},
		CategoryOf: func(c domain.Certification) string {
			return c.Status()
		},
	}
}

func (u *certificationUsecase) List(ctx context.Context, q domain.ListQuery) (*domain.PaginatedResult[domain.Certification], error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	records, err := u.certifications.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return paginate(records, q, certificationListOptions()), nil
}

func (u *certificationUsecase) ListExpired(ctx context.Context) ([]domain.Certification, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	records, err := u.certifications.ListExpired(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return records, nil
}

func (u *certificationUsecase) Create(ctx context.Context, req domain.CertificationRequest) (*domain.Certification, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	if err := validateCertification(req); err != nil {
		return nil, err
	}

	now := time.Now()
	cert := &domain.Certification{
		ID:                  uuid.New(),
		UserID:              userID,
		Name:                req.Name,
		IssuingOrganization: req.IssuingOrganization,
		IssueDate:           req.IssueDate,
		ExpirationDate:      req.ExpirationDate,
		CredentialID:        req.CredentialID,
		CredentialURL:       req.CredentialURL,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := u.certifications.Create(ctx, cert); err != nil {
		return nil, apperror.Internal(err)
	}
	return cert, nil
}

func (u *certificationUsecase) Update(ctx context.Context, id uuid.UUID, req domain.CertificationRequest) (*domain.Certification, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	if err := validateCertification(req); err != nil {
		return nil, err
	}

	cert, err := u.certifications.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Certificação não encontrada")
		}
		return nil, apperror.Internal(err)
	}

	cert.Name = req.Name
	cert.IssuingOrganization = req.IssuingOrganization
	cert.IssueDate = req.IssueDate
	cert.ExpirationDate = req.ExpirationDate
	cert.CredentialID = req.CredentialID
	cert.CredentialURL = req.CredentialURL

	if err := u.certifications.Update(ctx, cert); err != nil {
		return nil, apperror.Internal(err)
	}
	return cert, nil
}

func (u *certificationUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return apperror.Unauthorized("Usuário não autenticado")
	}
	if err := u.certifications.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Certificação não encontrada")
		}
		return apperror.Internal(err)
	}
	return nil
}

func validateCertification(req domain.CertificationRequest) error {
	if req.ExpirationDate != nil && req.ExpirationDate.Before(req.IssueDate) {
		return apperror.BadRequest("Data de expiração deve ser posterior à data de emissão")
	}
	return nil
}
