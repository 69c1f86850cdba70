package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID                  uuid.UUID `json:"id"`
	UserID              uuid.UUID `json:"userId"`
	FullName            string    `json:"fullName"`
	Email               string    `json:"email"` // copied from the user account, never editable
	Phone               string    `json:"phone"`
	Location            string    `json:"location"`
	ProfessionalSummary string    `json:"professionalSummary"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// FullProfile aggregates the profile with every related collection, the
// shape the profile screen and the resume export consume.
type FullProfile struct {
	Profile
	SocialLinks    []SocialLink    `json:"socialLinks"`
	Experiences    []Experience    `json:"experiences"`
	Skills         []Skill         `json:"skills"`
	Educations     []Education     `json:"educations"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`
}

// ProfileRequest deliberately omits email: it is immutable after
// registration.
type ProfileRequest struct {
	FullName            string `json:"fullName" binding:"required,min=3"`
	Phone               string `json:"phone" binding:"required,min=10,valid_phone"`
	Location            string `json:"location" binding:"required,min=3"`
	ProfessionalSummary string `json:"professionalSummary" binding:"required,min=50"`
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
}

type ProfileUsecase interface {
	Get(ctx context.Context) (*FullProfile, error)
	Update(ctx context.Context, req ProfileRequest) (*Profile, error)
}
