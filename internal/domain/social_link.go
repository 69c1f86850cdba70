package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// KnownPlatforms is the accepted platform vocabulary; creating or
// updating a link with a platform outside it is rejected. Only a
// handful of these are exported to the resume header.
var KnownPlatforms = []string{
	"GitHub",
	"LinkedIn",
	"Twitter",
	"Instagram",
	"Facebook",
	"YouTube",
	"Twitch",
	"Discord",
	"Stack Overflow",
	"GitLab",
	"Bitbucket",
	"Dribbble",
	"Behance",
	"Medium",
	"Dev.to",
	"Portfolio",
	"Site Pessoal",
	"Blog",
}

type SocialLink struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Platform  string    `json:"platform"`
	URL       string    `json:"url"`
	Username  *string   `json:"username,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SocialLinkRequest struct {
	Platform string  `json:"platform" binding:"required"`
	URL      string  `json:"url" binding:"required,link_url"`
	Username *string `json:"username,omitempty"`
}

type SocialLinkRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]SocialLink, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*SocialLink, error)
	Create(ctx context.Context, link *SocialLink) error
	Update(ctx context.Context, link *SocialLink) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type SocialLinkUsecase interface {
	List(ctx context.Context, q ListQuery) (*PaginatedResult[SocialLink], error)
	Create(ctx context.Context, req SocialLinkRequest) (*SocialLink, error)
	Update(ctx context.Context, id uuid.UUID, req SocialLinkRequest) (*SocialLink, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
