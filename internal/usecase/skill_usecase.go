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

type skillUsecase struct {
	skills domain.SkillRepository
}

func NewSkillUsecase(skills domain.SkillRepository) domain.SkillUsecase {
	return &skillUsecase{skills: skills}
}

func skillListOptions() listview.Options[domain.Skill] {
	return listview.Options[domain.Skill]{
		SearchFields: func(s domain.Skill) []string {
			return []string{s.Name, s.Category}
		},
		CategoryOf: func(s domain.Skill) string {
			return s.Category
		},
	}
}

func (u *skillUsecase) List(ctx context.Context, q domain.ListQuery) (*domain.PaginatedResult[domain.Skill], error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	records, err := u.skills.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return paginate(records, q, skillListOptions()), nil
}

func (u *skillUsecase) ListByCategory(ctx context.Context, category string) ([]domain.Skill, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	if !domain.SkillCategory(category).Valid() {
		return nil, apperror.BadRequest("Categoria inválida")
	}
	records, err := u.skills.ListByCategory(ctx, userID, category)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return records, nil
}

func (u *skillUsecase) Create(ctx context.Context, req domain.SkillRequest) (*domain.Skill, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	if err := validateSkill(req); err != nil {
		return nil, err
	}

	now := time.Now()
	skill := &domain.Skill{
		ID:                uuid.New(),
		UserID:            userID,
		Name:              req.Name,
		Category:          req.Category,
		Level:             req.Level,
		YearsOfExperience: req.YearsOfExperience,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := u.skills.Create(ctx, skill); err != nil {
		return nil, apperror.Internal(err)
	}
	return skill, nil
}

func (u *skillUsecase) Update(ctx context.Context, id uuid.UUID, req domain.SkillRequest) (*domain.Skill, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	if err := validateSkill(req); err != nil {
		return nil, err
	}

	skill, err := u.skills.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Habilidade não encontrada")
		}
		return nil, apperror.Internal(err)
	}

	skill.Name = req.Name
	skill.Category = req.Category
	skill.Level = req.Level
	skill.YearsOfExperience = req.YearsOfExperience

	if err := u.skills.Update(ctx, skill); err != nil {
		return nil, apperror.Internal(err)
	}
	return skill, nil
}

func (u *skillUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return apperror.Unauthorized("Usuário não autenticado")
	}
	if err := u.skills.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Habilidade não encontrada")
		}
		return apperror.Internal(err)
	}
	return nil
}

func validateSkill(req domain.SkillRequest) error {
	if !domain.SkillCategory(req.Category).Valid() {
		return apperror.BadRequest("Categoria inválida")
	}
	if !domain.SkillLevel(req.Level).Valid() {
		return apperror.BadRequest("Nível inválido")
	}
	return nil
}
