package domain_test

import (
	"testing"
	"time"

	"go-portfolio-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestCertificationStatus(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("no expiration date never expires", func(t *testing.T) {
		c := domain.Certification{}
		assert.Equal(t, domain.CertStatusNoExpiration, c.StatusAt(now))
	})

	t.Run("future expiration is active", func(t *testing.T) {
		c := domain.Certification{ExpirationDate: datePtr(now.Add(time.Hour))}
		assert.Equal(t, domain.CertStatusActive, c.StatusAt(now))
	})

	t.Run("past expiration is expired", func(t *testing.T) {
		c := domain.Certification{ExpirationDate: datePtr(now.Add(-time.Hour))}
		assert.Equal(t, domain.CertStatusExpired, c.StatusAt(now))
	})

	t.Run("expiring exactly now is already expired", func(t *testing.T) {
		c := domain.Certification{ExpirationDate: datePtr(now)}
		assert.Equal(t, domain.CertStatusExpired, c.StatusAt(now))
	})
}

func TestEducationPeriodLabel(t *testing.T) {
	start := time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("in progress without end date reads Presente", func(t *testing.T) {
		e := domain.Education{StartDate: start, IsCompleted: false}
		assert.Equal(t, "2020 - Presente", e.PeriodLabel())
	})

	t.Run("with end date shows both years", func(t *testing.T) {
		e := domain.Education{StartDate: start, EndDate: datePtr(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC))}
		assert.Equal(t, "2020 - 2024", e.PeriodLabel())
	})

	t.Run("completed without end date shows the start year only", func(t *testing.T) {
		e := domain.Education{StartDate: start, IsCompleted: true}
		assert.Equal(t, "2020", e.PeriodLabel())
	})
}

func TestExperiencePeriod(t *testing.T) {
	start := time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("current position reads Presente", func(t *testing.T) {
		e := domain.Experience{StartDate: start, IsCurrent: true}
		assert.Equal(t, "10/03/2023 - Presente", e.Period())
	})

	t.Run("closed position shows both dates", func(t *testing.T) {
		e := domain.Experience{StartDate: start, EndDate: datePtr(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))}
		assert.Equal(t, "10/03/2023 - 31/01/2024", e.Period())
	})
}

func TestProficiencyScore(t *testing.T) {
	cases := map[domain.Proficiency]int{
		domain.ProficiencyBasico:        25,
		domain.ProficiencyIntermediario: 50,
		domain.ProficiencyAvancado:      75,
		domain.ProficiencyFluente:       90,
		domain.ProficiencyNativo:        100,
		domain.Proficiency("Klingon"):   0,
	}
	for p, want := range cases {
		assert.Equal(t, want, p.Score(), string(p))
	}
}

func TestTierColor(t *testing.T) {
	assert.Equal(t, domain.ColorGreen, domain.TierColor(100))
	assert.Equal(t, domain.ColorGreen, domain.TierColor(80))
	assert.Equal(t, domain.ColorOrange, domain.TierColor(79))
	assert.Equal(t, domain.ColorOrange, domain.TierColor(60))
	assert.Equal(t, domain.ColorRed, domain.TierColor(59))
	assert.Equal(t, domain.ColorRed, domain.TierColor(0))
}

func TestVocabularies(t *testing.T) {
	t.Run("employment types", func(t *testing.T) {
		assert.True(t, domain.EmploymentType("CLT").Valid())
		assert.True(t, domain.EmploymentType("Estágio").Valid())
		assert.False(t, domain.EmploymentType("CLT ").Valid())
		assert.False(t, domain.EmploymentType("contractor").Valid())
	})

	t.Run("skill categories", func(t *testing.T) {
		assert.True(t, domain.SkillCategory("Backend").Valid())
		assert.True(t, domain.SkillCategory("Banco de Dados").Valid())
		assert.False(t, domain.SkillCategory("backend").Valid())
	})

	t.Run("degrees", func(t *testing.T) {
		assert.True(t, domain.Degree("Pós-Graduação").Valid())
		assert.False(t, domain.Degree("PhD").Valid())
	})
}
