package usecase

import (
	"context"
	"errors"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/listview"
	"go-portfolio-backend/pkg/logger"

	"github.com/google/uuid"
)

type experienceUsecase struct {
	experiences domain.ExperienceRepository
	skills      domain.SkillRepository
}

func NewExperienceUsecase(experiences domain.ExperienceRepository, skills domain.SkillRepository) domain.ExperienceUsecase {
	return &experienceUsecase{experiences: experiences, skills: skills}
}

func experienceListOptions() listview.Options[domain.Experience] {
	return listview.Options[domain.Experience]{
		SearchFields: func(e domain.Experience) []string {
			return []string{e.Company, e.Position, e.Description}
		},
		CategoryOf: func(e domain.Experience) string {
			return e.EmploymentType
		},
	}
}

func (u *experienceUsecase) List(ctx context.Context, q domain.ListQuery) (*domain.PaginatedResult[domain.Experience], error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	records, err := u.experiences.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	u.resolveSkills(ctx, userID, records)
	return paginate(records, q, experienceListOptions()), nil
}

func (u *experienceUsecase) ListCurrent(ctx context.Context) ([]domain.Experience, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	records, err := u.experiences.ListCurrentByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	u.resolveSkills(ctx, userID, records)
	return records, nil
}

func (u *experienceUsecase) Get(ctx context.Context, id uuid.UUID) (*domain.Experience, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	exp, err := u.experiences.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Experiência não encontrada")
		}
		return nil, apperror.Internal(err)
	}
	single := []domain.Experience{*exp}
	u.resolveSkills(ctx, userID, single)
	return &single[0], nil
}

func (u *experienceUsecase) Create(ctx context.Context, req domain.ExperienceRequest) (*domain.Experience, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	if err := validateExperience(&req); err != nil {
		return nil, err
	}

	now := time.Now()
	exp := &domain.Experience{
		ID:             uuid.New(),
		UserID:         userID,
		Company:        req.Company,
		Position:       req.Position,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		IsCurrent:      req.IsCurrent,
		Description:    req.Description,
		EmploymentType: req.EmploymentType,
		SkillIDs:       req.SkillIDs,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := u.experiences.Create(ctx, exp); err != nil {
		return nil, apperror.Internal(err)
	}
	return exp, nil
}

func (u *experienceUsecase) Update(ctx context.Context, id uuid.UUID, req domain.ExperienceRequest) (*domain.Experience, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	if err := validateExperience(&req); err != nil {
		return nil, err
	}

	exp, err := u.experiences.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Experiência não encontrada")
		}
		return nil, apperror.Internal(err)
	}

	exp.Company = req.Company
	exp.Position = req.Position
	exp.StartDate = req.StartDate
	exp.EndDate = req.EndDate
	exp.IsCurrent = req.IsCurrent
	exp.Description = req.Description
	exp.EmploymentType = req.EmploymentType
	exp.SkillIDs = req.SkillIDs

	if err := u.experiences.Update(ctx, exp); err != nil {
		return nil, apperror.Internal(err)
	}
	return exp, nil
}

func (u *experienceUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return apperror.Unauthorized("Usuário não autenticado")
	}
	if err := u.experiences.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Experiência não encontrada")
		}
		return apperror.Internal(err)
	}
	return nil
}

// validateExperience enforces the rules the forms enforce: a current
// position carries no end date, a closed one must end after it started.
func validateExperience(req *domain.ExperienceRequest) error {
	if !domain.EmploymentType(req.EmploymentType).Valid() {
		return apperror.BadRequest("Tipo de contratação inválido")
	}
	if req.IsCurrent {
		req.EndDate = nil
		return nil
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return apperror.BadRequest("Data de término deve ser posterior à data de início")
	}
	return nil
}

func (u *experienceUsecase) resolveSkills(ctx context.Context, userID uuid.UUID, experiences []domain.Experience) {
	ids := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]bool)
	for _, e := range experiences {
		for _, id := range e.SkillIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		return
	}
	skills, err := u.skills.ListByIDs(ctx, userID, ids)
	if err != nil {
		logger.Log.Warn("failed to resolve experience skills", "user_id", userID, "error", err)
		return
	}
	resolveExperienceSkills(experiences, skills)
}
