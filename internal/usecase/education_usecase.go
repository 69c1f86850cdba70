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

type educationUsecase struct {
	educations domain.EducationRepository
}

func NewEducationUsecase(educations domain.EducationRepository) domain.EducationUsecase {
	return &educationUsecase{educations: educations}
}

func educationListOptions() listview.Options[domain.Education] {
	return listview.Options[domain.Education]{
		SearchFields: func(e domain.Education) []string {
			return []string{e.Institution, e.FieldOfStudy}
		},
		CategoryOf: func(e domain.Education) string {
			return e.Degree
		},
	}
}

func (u *educationUsecase) List(ctx context.Context, q domain.ListQuery) (*domain.PaginatedResult[domain.Education], error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	records, err := u.educations.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return paginate(records, q, educationListOptions()), nil
}

func (u *educationUsecase) ListByDegree(ctx context.Context, degree string) ([]domain.Education, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	if !domain.Degree(degree).Valid() {
		return nil, apperror.BadRequest("Grau inválido")
	}
	records, err := u.educations.ListByDegree(ctx, userID, degree)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return records, nil
}

func (u *educationUsecase) Create(ctx context.Context, req domain.EducationRequest) (*domain.Education, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	if err := validateEducation(&req); err != nil {
		return nil, err
	}

	now := time.Now()
	edu := &domain.Education{
		ID:           uuid.New(),
		UserID:       userID,
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsCompleted:  req.IsCompleted,
		Description:  req.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.educations.Create(ctx, edu); err != nil {
		return nil, apperror.Internal(err)
	}
	return edu, nil
}

func (u *educationUsecase) Update(ctx context.Context, id uuid.UUID, req domain.EducationRequest) (*domain.Education, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	if err := validateEducation(&req); err != nil {
		return nil, err
	}

	edu, err := u.educations.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Formação não encontrada")
		}
		return nil, apperror.Internal(err)
	}

	edu.Institution = req.Institution
	edu.Degree = req.Degree
	edu.FieldOfStudy = req.FieldOfStudy
	edu.StartDate = req.StartDate
	edu.EndDate = req.EndDate
	edu.IsCompleted = req.IsCompleted
	edu.Description = req.Description

	if err := u.educations.Update(ctx, edu); err != nil {
		return nil, apperror.Internal(err)
	}
	return edu, nil
}

func (u *educationUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return apperror.Unauthorized("Usuário não autenticado")
	}
	if err := u.educations.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Formação não encontrada")
		}
		return apperror.Internal(err)
	}
	return nil
}

func validateEducation(req *domain.EducationRequest) error {
	if !domain.Degree(req.Degree).Valid() {
		return apperror.BadRequest("Grau inválido")
	}
	if !req.IsCompleted {
		// An in-progress education carries no end date.
		req.EndDate = nil
	}
	if req.IsCompleted && req.EndDate == nil {
		return apperror.BadRequest("Data de término é obrigatória para formação concluída")
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return apperror.BadRequest("Data de término deve ser posterior à data de início")
	}
	return nil
}
