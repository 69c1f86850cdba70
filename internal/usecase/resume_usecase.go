package usecase

import (
	"context"
	"sync"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/resume"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/listview"
	"go-portfolio-backend/pkg/logger"

	"github.com/google/uuid"
)

const resumeFilename = "curriculo_ats.pdf"

type resumeUsecase struct {
	profiles       domain.ProfileRepository
	socialLinks    domain.SocialLinkRepository
	experiences    domain.ExperienceRepository
	skills         domain.SkillRepository
	educations     domain.EducationRepository
	certifications domain.CertificationRepository
	languages      domain.LanguageRepository
}

func NewResumeUsecase(
	profiles domain.ProfileRepository,
	socialLinks domain.SocialLinkRepository,
	experiences domain.ExperienceRepository,
	skills domain.SkillRepository,
	educations domain.EducationRepository,
	certifications domain.CertificationRepository,
	languages domain.LanguageRepository,
) domain.ResumeUsecase {
	return &resumeUsecase{
		profiles:       profiles,
		socialLinks:    socialLinks,
		experiences:    experiences,
		skills:         skills,
		educations:     educations,
		certifications: certifications,
		languages:      languages,
	}
}

// GenerateATS joins every collection concurrently and renders the PDF.
// A failed fetch empties that section only; even a missing profile
// renders with placeholder contact data.
func (u *resumeUsecase) GenerateATS(ctx context.Context) ([]byte, string, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, "", apperror.Unauthorized("Usuário não autenticado")
	}

	var snap domain.ResumeSnapshot
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		profile, err := u.profiles.GetByUserID(ctx, userID)
		if err != nil {
			logger.Log.Warn("resume: profile unavailable", "user_id", userID, "error", err)
			return
		}
		snap.Profile = profile
	}()

	loadInto(ctx, &wg, userID, "social links", &snap.SocialLinks, u.socialLinks.ListByUser)
	loadInto(ctx, &wg, userID, "experiences", &snap.Experiences, u.experiences.ListByUser)
	loadInto(ctx, &wg, userID, "skills", &snap.Skills, u.skills.ListByUser)
	loadInto(ctx, &wg, userID, "educations", &snap.Educations, u.educations.ListByUser)
	loadInto(ctx, &wg, userID, "certifications", &snap.Certifications, u.certifications.ListByUser)
	loadInto(ctx, &wg, userID, "languages", &snap.Languages, u.languages.ListByUser)

	wg.Wait()

	resolveExperienceSkills(snap.Experiences, snap.Skills)

	pdf, err := resume.BuildATS(snap)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return pdf, resumeFilename, nil
}

// loadInto fetches one collection through a fenced store so that the
// commit semantics match the list endpoints: an error lands as an empty
// list, never a partial one.
func loadInto[T any](
	ctx context.Context,
	wg *sync.WaitGroup,
	userID uuid.UUID,
	name string,
	dst *[]T,
	fetch func(context.Context, uuid.UUID) ([]T, error),
) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		store := listview.NewStore(listview.Options[T]{})
		err := store.Load(ctx, func(ctx context.Context) ([]T, error) {
			return fetch(ctx, userID)
		})
		if err != nil {
			logger.Log.Warn("resume: collection unavailable", "collection", name, "user_id", userID, "error", err)
		}
		*dst = store.Snapshot()
	}()
}
