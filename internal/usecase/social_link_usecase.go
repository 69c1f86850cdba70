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

type socialLinkUsecase struct {
	links domain.SocialLinkRepository
}

func NewSocialLinkUsecase(links domain.SocialLinkRepository) domain.SocialLinkUsecase {
	return &socialLinkUsecase{links: links}
}

func socialLinkListOptions() listview.Options[domain.SocialLink] {
	return listview.Options[domain.SocialLink]{
		SearchFields: func(l domain.SocialLink) []string {
			username := ""
			if l.Username != nil {
				username = *l.Username
			}
			return []string{l.Platform, l.URL, username}
		},
		CategoryOf: func(l domain.SocialLink) string {
			return l.Platform
		},
	}
}

func (u *socialLinkUsecase) List(ctx context.Context, q domain.ListQuery) (*domain.PaginatedResult[domain.SocialLink], error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	records, err := u.links.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return paginate(records, q, socialLinkListOptions()), nil
}

func (u *socialLinkUsecase) Create(ctx context.Context, req domain.SocialLinkRequest) (*domain.SocialLink, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	if err := validatePlatform(req.Platform); err != nil {
		return nil, err
	}

	now := time.Now()
	link := &domain.SocialLink{
		ID:        uuid.New(),
		UserID:    userID,
		Platform:  req.Platform,
		URL:       req.URL,
		Username:  req.Username,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.links.Create(ctx, link); err != nil {
		return nil, apperror.Internal(err)
	}
	return link, nil
}

func (u *socialLinkUsecase) Update(ctx context.Context, id uuid.UUID, req domain.SocialLinkRequest) (*domain.SocialLink, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	if err := validatePlatform(req.Platform); err != nil {
		return nil, err
	}

	link, err := u.links.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Link não encontrado")
		}
		return nil, apperror.Internal(err)
	}

	link.Platform = req.Platform
	link.URL = req.URL
	link.Username = req.Username

	if err := u.links.Update(ctx, link); err != nil {
		return nil, apperror.Internal(err)
	}
	return link, nil
}

func (u *socialLinkUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return apperror.Unauthorized("Usuário não autenticado")
	}
	if err := u.links.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Link não encontrado")
		}
		return apperror.Internal(err)
	}
	return nil
}

func validatePlatform(platform string) error {
	for _, p := range domain.KnownPlatforms {
		if p == platform {
			return nil
		}
	}
	return apperror.BadRequest("Plataforma inválida")
}
