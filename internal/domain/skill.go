package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SkillCategory is the fixed category vocabulary shown in the UI.
type SkillCategory string

const (
	CategoryBackend      SkillCategory = "Backend"
	CategoryFrontend     SkillCategory = "Frontend"
	CategoryDatabase     SkillCategory = "Banco de Dados"
	CategoryCloudDevOps  SkillCategory = "Cloud & DevOps"
	CategoryArchitecture SkillCategory = "Arquitetura & Padrões"
	CategoryTools        SkillCategory = "Ferramentas & Outras Tecnologias"
	CategoryMobile       SkillCategory = "Mobile"
	CategoryTesting      SkillCategory = "Testes & QA"
	CategorySecurity     SkillCategory = "Segurança"
	CategorySoftSkills   SkillCategory = "Business & Soft Skills"
	CategoryLegacy       SkillCategory = "Sistemas Legados Desktop & Client-Server"
)

func (c SkillCategory) Valid() bool {
	switch c {
	case CategoryBackend, CategoryFrontend, CategoryDatabase,
		CategoryCloudDevOps, CategoryArchitecture, CategoryTools,
		CategoryMobile, CategoryTesting, CategorySecurity,
		CategorySoftSkills, CategoryLegacy:
		return true
	}
	return false
}

// SkillLevel is the fixed proficiency ladder for skills.
type SkillLevel string

const (
	LevelIniciante     SkillLevel = "Iniciante"
	LevelIntermediario SkillLevel = "Intermediário"
	LevelAvancado      SkillLevel = "Avançado"
	LevelEspecialista  SkillLevel = "Especialista"
)

func (l SkillLevel) Valid() bool {
	switch l {
	case LevelIniciante, LevelIntermediario, LevelAvancado, LevelEspecialista:
		return true
	}
	return false
}

type Skill struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"userId"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Level             string    `json:"level"`
	YearsOfExperience int       `json:"yearsOfExperience"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// SkillRequest mirrors the creation form, which defaults to
// level=Intermediário and yearsOfExperience=0.
type SkillRequest struct {
	Name              string `json:"name" binding:"required,min=2"`
	Category          string `json:"category" binding:"required"`
	Level             string `json:"level" binding:"required"`
	YearsOfExperience int    `json:"yearsOfExperience" binding:"min=0,max=50"`
}

type SkillRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Skill, error)
	ListByCategory(ctx context.Context, userID uuid.UUID, category string) ([]Skill, error)
	ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]Skill, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*Skill, error)
	Create(ctx context.Context, skill *Skill) error
	Update(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type SkillUsecase interface {
	List(ctx context.Context, q ListQuery) (*PaginatedResult[Skill], error)
	ListByCategory(ctx context.Context, category string) ([]Skill, error)
	Create(ctx context.Context, req SkillRequest) (*Skill, error)
	Update(ctx context.Context, id uuid.UUID, req SkillRequest) (*Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
