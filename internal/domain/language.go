package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Proficiency is the ordered language-proficiency ladder.
type Proficiency string

const (
	ProficiencyBasico        Proficiency = "Básico"
	ProficiencyIntermediario Proficiency = "Intermediário"
	ProficiencyAvancado      Proficiency = "Avançado"
	ProficiencyFluente       Proficiency = "Fluente"
	ProficiencyNativo        Proficiency = "Nativo"
)

func (p Proficiency) Valid() bool {
	switch p {
	case ProficiencyBasico, ProficiencyIntermediario, ProficiencyAvancado,
		ProficiencyFluente, ProficiencyNativo:
		return true
	}
	return false
}

// Score maps the ladder onto the fixed 0-100 scale shown by progress
// bars. Unknown values score 0.
func (p Proficiency) Score() int {
	switch p {
	case ProficiencyBasico:
		return 25
	case ProficiencyIntermediario:
		return 50
	case ProficiencyAvancado:
		return 75
	case ProficiencyFluente:
		return 90
	case ProficiencyNativo:
		return 100
	}
	return 0
}

type Language struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Proficiency string    `json:"proficiency"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type LanguageRequest struct {
	Name        string `json:"name" binding:"required,min=2"`
	Proficiency string `json:"proficiency" binding:"required"`
}

type LanguageRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Language, error)
	ListByProficiency(ctx context.Context, userID uuid.UUID, proficiency string) ([]Language, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*Language, error)
	Create(ctx context.Context, lang *Language) error
	Update(ctx context.Context, lang *Language) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type LanguageUsecase interface {
	List(ctx context.Context, q ListQuery) (*PaginatedResult[Language], error)
	ListByProficiency(ctx context.Context, proficiency string) ([]Language, error)
	Create(ctx context.Context, req LanguageRequest) (*Language, error)
	Update(ctx context.Context, id uuid.UUID, req LanguageRequest) (*Language, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
