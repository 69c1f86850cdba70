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

type languageUsecase struct {
	languages domain.LanguageRepository
}

func NewLanguageUsecase(languages domain.LanguageRepository) domain.LanguageUsecase {
	return &languageUsecase{languages: languages}
}

func languageListOptions() listview.Options[domain.Language] {
	return listview.Options[domain.Language]{
		SearchFields: func(l domain.Language) []string {
			return []string{l.Name}
		},
		CategoryOf: func(l domain.Language) string {
			return l.Proficiency
		},
	}
}

func (u *languageUsecase) List(ctx context.Context, q domain.ListQuery) (*domain.PaginatedResult[domain.Language], error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	records, err := u.languages.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return paginate(records, q, languageListOptions()), nil
}

func (u *languageUsecase) ListByProficiency(ctx context.Context, proficiency string) ([]domain.Language, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	if !domain.Proficiency(proficiency).Valid() {
		return nil, apperror.BadRequest("Proficiência inválida")
	}
	records, err := u.languages.ListByProficiency(ctx, userID, proficiency)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return records, nil
}

func (u *languageUsecase) Create(ctx context.Context, req domain.LanguageRequest) (*domain.Language, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	if !domain.Proficiency(req.Proficiency).Valid() {
		return nil, apperror.BadRequest("Proficiência inválida")
	}

	now := time.Now()
	lang := &domain.Language{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        req.Name,
		Proficiency: req.Proficiency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.languages.Create(ctx, lang); err != nil {
		return nil, apperror.Internal(err)
	}
	return lang, nil
}

func (u *languageUsecase) Update(ctx context.Context, id uuid.UUID, req domain.LanguageRequest) (*domain.Language, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	if !domain.Proficiency(req.Proficiency).Valid() {
		return nil, apperror.BadRequest("Proficiência inválida")
	}

	lang, err := u.languages.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Idioma não encontrado")
		}
		return nil, apperror.Internal(err)
	}

	lang.Name = req.Name
	lang.Proficiency = req.Proficiency

	if err := u.languages.Update(ctx, lang); err != nil {
		return nil, apperror.Internal(err)
	}
	return lang, nil
}

func (u *languageUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return apperror.Unauthorized("Usuário não autenticado")
	}
	if err := u.languages.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Idioma não encontrado")
		}
		return apperror.Internal(err)
	}
	return nil
}
