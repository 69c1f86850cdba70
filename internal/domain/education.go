package domain

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Degree is the fixed degree vocabulary.
type Degree string

const (
	DegreeEnsinoMedio  Degree = "Ensino Médio"
	DegreeTecnico      Degree = "Técnico"
	DegreeTecnologo    Degree = "Tecnólogo"
	DegreeBacharelado  Degree = "Bacharelado"
	DegreeLicenciatura Degree = "Licenciatura"
	DegreePosGraduacao Degree = "Pós-Graduação"
	DegreeMestrado     Degree = "Mestrado"
	DegreeDoutorado    Degree = "Doutorado"
	DegreeMBA          Degree = "MBA"
	DegreeCursoLivre   Degree = "Curso Livre"
	DegreeCertificacao Degree = "Certificação"
)

func (d Degree) Valid() bool {
	switch d {
	case DegreeEnsinoMedio, DegreeTecnico, DegreeTecnologo,
		DegreeBacharelado, DegreeLicenciatura, DegreePosGraduacao,
		DegreeMestrado, DegreeDoutorado, DegreeMBA,
		DegreeCursoLivre, DegreeCertificacao:
		return true
	}
	return false
}

type Education struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"userId"`
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldOfStudy"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	IsCompleted  bool       `json:"isCompleted"`
	Description  *string    `json:"description,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// PeriodLabel renders the display period in years. An education still
// in progress with no end date reads "{startYear} - Presente".
func (e Education) PeriodLabel() string {
	start := strconv.Itoa(e.StartDate.Year())
	if e.EndDate != nil {
		return start + " - " + strconv.Itoa(e.EndDate.Year())
	}
	if e.IsCompleted {
		return start
	}
	return start + " - Presente"
}

type EducationRequest struct {
	Institution  string     `json:"institution" binding:"required,min=2"`
	Degree       string     `json:"degree" binding:"required"`
	FieldOfStudy string     `json:"fieldOfStudy" binding:"required,min=2"`
	StartDate    time.Time  `json:"startDate" binding:"required"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	IsCompleted  bool       `json:"isCompleted"`
	Description  *string    `json:"description,omitempty"`
}

type EducationRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Education, error)
	ListByDegree(ctx context.Context, userID uuid.UUID, degree string) ([]Education, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*Education, error)
	Create(ctx context.Context, edu *Education) error
	Update(ctx context.Context, edu *Education) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type EducationUsecase interface {
	List(ctx context.Context, q ListQuery) (*PaginatedResult[Education], error)
	ListByDegree(ctx context.Context, degree string) ([]Education, error)
	Create(ctx context.Context, req EducationRequest) (*Education, error)
	Update(ctx context.Context, id uuid.UUID, req EducationRequest) (*Education, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
