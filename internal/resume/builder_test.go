package resume_test

import (
	"testing"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/resume"

	"github.com/stretchr/testify/assert"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}

func TestContactLine(t *testing.T) {
	t.Run("joins all fields with pipes", func(t *testing.T) {
		line := resume.ContactLine(&domain.Profile{
			Email: "ana@example.com", Phone: "+55 11 91234-5678", Location: "São Paulo, SP",
		})
		assert.Equal(t, "ana@example.com | +55 11 91234-5678 | São Paulo, SP", line)
	})

	t.Run("skips empty fields without dangling separators", func(t *testing.T) {
		line := resume.ContactLine(&domain.Profile{Email: "ana@example.com", Location: "São Paulo, SP"})
		assert.Equal(t, "ana@example.com | São Paulo, SP", line)
	})

	t.Run("nil profile renders nothing", func(t *testing.T) {
		assert.Equal(t, "", resume.ContactLine(nil))
	})
}

func TestSocialLine(t *testing.T) {
	links := []domain.SocialLink{
		{Platform: "Twitter", URL: "https://twitter.com/ana"},
		{Platform: "GitHub", URL: "https://github.com/ana"},
		{Platform: "LinkedIn", URL: "https://linkedin.com/in/ana"},
	}

	// Allow-list order wins over input order, unlisted platforms are
	// dropped, and every entry carries its platform label.
	line := resume.SocialLine(links)
	assert.Equal(t, "LinkedIn: https://linkedin.com/in/ana | GitHub: https://github.com/ana", line)

	assert.Equal(t, "", resume.SocialLine(nil))
}

func TestGroupSkills(t *testing.T) {
	skills := []domain.Skill{
		{Name: "Go", Category: "Backend"},
		{Name: "PostgreSQL", Category: "Banco de Dados"},
		{Name: "Gin", Category: "Backend"},
		{Name: "Blender", Category: "3d-modeling"},
	}

	groups := resume.GroupSkills(skills)
	if assert.Len(t, groups, 3) {
		assert.Equal(t, "Backend", groups[0].Category)
		assert.Equal(t, []string{"Go", "Gin"}, groups[0].Names)
		assert.Equal(t, "Banco de Dados", groups[1].Category)
		assert.Equal(t, "Outras", groups[2].Category)
		assert.Equal(t, []string{"Blender"}, groups[2].Names)
	}

	assert.Empty(t, resume.GroupSkills(nil))
}

func TestTechnologiesLine(t *testing.T) {
	line := resume.TechnologiesLine([]domain.Skill{{Name: "Go"}, {Name: "Redis"}})
	assert.Equal(t, "Tecnologias: Go, Redis", line)
	assert.Equal(t, "", resume.TechnologiesLine(nil))
}

func TestCertificationDates(t *testing.T) {
	issued := date(2023, 5, 10)
	expires := date(2026, 5, 10)

	withExpiry := domain.Certification{IssueDate: issued, ExpirationDate: &expires}
	assert.Equal(t, "Emitida em: 10/05/2023 | Válida até: 10/05/2026", resume.CertificationDates(withExpiry))

	open := domain.Certification{IssueDate: issued}
	assert.Equal(t, "Emitida em: 10/05/2023 | Sem expiração", resume.CertificationDates(open))
}

func TestLanguagesLine(t *testing.T) {
	line := resume.LanguagesLine([]domain.Language{
		{Name: "Inglês", Proficiency: "Fluente"},
		{Name: "Espanhol", Proficiency: "Intermediário"},
	})
	assert.Equal(t, "Inglês - Fluente | Espanhol - Intermediário", line)
}

func TestBuildATS(t *testing.T) {
	t.Run("full snapshot renders a PDF", func(t *testing.T) {
		end := date(2023, 1, 31)
		snap := domain.ResumeSnapshot{
			Profile: &domain.Profile{
				FullName: "Ana Silva", Email: "ana@example.com",
				Phone: "+55 11 91234-5678", Location: "São Paulo, SP",
				ProfessionalSummary: "Engenheira de software focada em sistemas distribuídos.",
			},
			SocialLinks: []domain.SocialLink{{Platform: "LinkedIn", URL: "https://linkedin.com/in/ana"}},
			Experiences: []domain.Experience{
				{Company: "ACME", Position: "Engenheira Sênior", EmploymentType: "CLT",
					StartDate: date(2021, 3, 1), IsCurrent: true,
					Description: "Desenho e operação de serviços críticos.",
					Skills:      []domain.Skill{{Name: "Go"}, {Name: "PostgreSQL"}}},
				{Company: "Beta", Position: "Desenvolvedora", EmploymentType: "PJ",
					StartDate: date(2019, 1, 15), EndDate: &end,
					Description: "APIs REST e integrações."},
			},
			Skills: []domain.Skill{
				{Name: "Go", Category: "Backend"},
				{Name: "Angular", Category: "Frontend"},
			},
			Educations: []domain.Education{
				{Institution: "USP", Degree: "Bacharelado", FieldOfStudy: "Ciência da Computação",
					StartDate: date(2015, 2, 1), IsCompleted: true,
					Description: strPtr("Ênfase em sistemas distribuídos e engenharia de software.")},
			},
			Certifications: []domain.Certification{
				{Name: "AWS SAA", IssuingOrganization: "Amazon", IssueDate: date(2023, 5, 10)},
			},
			Languages: []domain.Language{{Name: "Inglês", Proficiency: "Fluente"}},
		}

		pdf, err := resume.BuildATS(snap)
		assert.NoError(t, err)
		assert.True(t, len(pdf) > 4)
		assert.Equal(t, "%PDF", string(pdf[:4]))
	})

	t.Run("education description adds content to the document", func(t *testing.T) {
		edu := domain.Education{
			Institution: "USP", Degree: "Bacharelado", FieldOfStudy: "Ciência da Computação",
			StartDate: date(2015, 2, 1), IsCompleted: true,
		}
		bare, err := resume.BuildATS(domain.ResumeSnapshot{Educations: []domain.Education{edu}})
		assert.NoError(t, err)

		edu.Description = strPtr("Trabalho de conclusão sobre consenso distribuído, monitoria de algoritmos e iniciação científica em bancos de dados.")
		described, err := resume.BuildATS(domain.ResumeSnapshot{Educations: []domain.Education{edu}})
		assert.NoError(t, err)
		assert.Greater(t, len(described), len(bare))
	})

	t.Run("empty snapshot still renders with the placeholder header", func(t *testing.T) {
		pdf, err := resume.BuildATS(domain.ResumeSnapshot{})
		assert.NoError(t, err)
		assert.Equal(t, "%PDF", string(pdf[:4]))
	})

	t.Run("long content spills onto extra pages without error", func(t *testing.T) {
		snap := domain.ResumeSnapshot{Profile: &domain.Profile{FullName: "Ana Silva"}}
		for i := 0; i < 40; i++ {
			snap.Experiences = append(snap.Experiences, domain.Experience{
				Company: "ACME", Position: "Engenheira", EmploymentType: "CLT",
				StartDate:   date(2020, 1, 1),
				Description: "Atuação em projetos de longa duração com times distribuídos e entregas contínuas.",
			})
		}
		pdf, err := resume.BuildATS(snap)
		assert.NoError(t, err)
		assert.Equal(t, "%PDF", string(pdf[:4]))
	})
}
