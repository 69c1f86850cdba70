package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EmploymentType is the fixed contract-type vocabulary.
type EmploymentType string

const (
	EmploymentCLT        EmploymentType = "CLT"
	EmploymentPJ         EmploymentType = "PJ"
	EmploymentFreelancer EmploymentType = "Freelancer"
	EmploymentEstagio    EmploymentType = "Estágio"
	EmploymentTrainee    EmploymentType = "Trainee"
	EmploymentVoluntario EmploymentType = "Voluntário"
)

// Valid reports whether t is one of the closed vocabulary values.
func (t EmploymentType) Valid() bool {
	switch t {
	case EmploymentCLT, EmploymentPJ, EmploymentFreelancer,
		EmploymentEstagio, EmploymentTrainee, EmploymentVoluntario:
		return true
	}
	return false
}

type Experience struct {
	ID             uuid.UUID   `json:"id"`
	UserID         uuid.UUID   `json:"userId"`
	Company        string      `json:"company"`
	Position       string      `json:"position"`
	StartDate      time.Time   `json:"startDate"`
	EndDate        *time.Time  `json:"endDate,omitempty"`
	IsCurrent      bool        `json:"isCurrent"`
	Description    string      `json:"description"`
	EmploymentType string      `json:"employmentType"`
	SkillIDs       []uuid.UUID `json:"skillIds"`
	// Skills carries the resolved skill records; ids with no surviving
	// skill are silently dropped at read time.
	Skills    []Skill   `json:"skills,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Period renders the display period, dd/mm/yyyy pt-BR style, with
// "Presente" while the position is current.
func (e Experience) Period() string {
	start := e.StartDate.Format("02/01/2006")
	if e.IsCurrent || e.EndDate == nil {
		return start + " - Presente"
	}
	return start + " - " + e.EndDate.Format("02/01/2006")
}

type ExperienceRequest struct {
	Company        string      `json:"company" binding:"required,min=2"`
	Position       string      `json:"position" binding:"required,min=2"`
	StartDate      time.Time   `json:"startDate" binding:"required"`
	EndDate        *time.Time  `json:"endDate,omitempty"`
	IsCurrent      bool        `json:"isCurrent"`
	Description    string      `json:"description" binding:"required,min=10"`
	EmploymentType string      `json:"employmentType" binding:"required"`
	SkillIDs       []uuid.UUID `json:"skillIds"`
}

type ExperienceRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Experience, error)
	ListCurrentByUser(ctx context.Context, userID uuid.UUID) ([]Experience, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*Experience, error)
	Create(ctx context.Context, exp *Experience) error
	Update(ctx context.Context, exp *Experience) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type ExperienceUsecase interface {
	List(ctx context.Context, q ListQuery) (*PaginatedResult[Experience], error)
	ListCurrent(ctx context.Context) ([]Experience, error)
	Get(ctx context.Context, id uuid.UUID) (*Experience, error)
	Create(ctx context.Context, req ExperienceRequest) (*Experience, error)
	Update(ctx context.Context, id uuid.UUID, req ExperienceRequest) (*Experience, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
