package usecase

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"
)

type profileUsecase struct {
	profiles       domain.ProfileRepository
	socialLinks    domain.SocialLinkRepository
	experiences    domain.ExperienceRepository
	skills         domain.SkillRepository
	educations     domain.EducationRepository
	certifications domain.CertificationRepository
	languages      domain.LanguageRepository
}

func NewProfileUsecase(
	profiles domain.ProfileRepository,
	socialLinks domain.SocialLinkRepository,
	experiences domain.ExperienceRepository,
	skills domain.SkillRepository,
	educations domain.EducationRepository,
	certifications domain.CertificationRepository,
	languages domain.LanguageRepository,
) domain.ProfileUsecase {
	return &profileUsecase{
		profiles:       profiles,
		socialLinks:    socialLinks,
		experiences:    experiences,
		skills:         skills,
		educations:     educations,
		certifications: certifications,
		languages:      languages,
	}
}

// Get aggregates the profile with every related collection. A failed
// related fetch degrades to an empty collection instead of failing the
// whole profile screen.
func (u *profileUsecase) Get(ctx context.Context) (*domain.FullProfile, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}

	profile, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Perfil não encontrado")
		}
		return nil, apperror.Internal(err)
	}

	full := &domain.FullProfile{Profile: *profile}

	if full.SocialLinks, err = u.socialLinks.ListByUser(ctx, userID); err != nil {
		logger.Log.Warn("failed to load social links", "user_id", userID, "error", err)
		full.SocialLinks = nil
	}
	if full.Experiences, err = u.experiences.ListByUser(ctx, userID); err != nil {
		logger.Log.Warn("failed to load experiences", "user_id", userID, "error", err)
		full.Experiences = nil
	}
	if full.Skills, err = u.skills.ListByUser(ctx, userID); err != nil {
		logger.Log.Warn("failed to load skills", "user_id", userID, "error", err)
		full.Skills = nil
	}
	if full.Educations, err = u.educations.ListByUser(ctx, userID); err != nil {
		logger.Log.Warn("failed to load educations", "user_id", userID, "error", err)
		full.Educations = nil
	}
	if full.Certifications, err = u.certifications.ListByUser(ctx, userID); err != nil {
		logger.Log.Warn("failed to load certifications", "user_id", userID, "error", err)
		full.Certifications = nil
	}
	if full.Languages, err = u.languages.ListByUser(ctx, userID); err != nil {
		logger.Log.Warn("failed to load languages", "user_id", userID, "error", err)
		full.Languages = nil
	}

	resolveExperienceSkills(full.Experiences, full.Skills)
	return full, nil
}

func (u *profileUsecase) Update(ctx context.Context, req domain.ProfileRequest) (*domain.Profile, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}

	profile, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Perfil não encontrado")
		}
		return nil, apperror.Internal(err)
	}

	profile.FullName = req.FullName
	profile.Phone = req.Phone
	profile.Location = req.Location
	profile.ProfessionalSummary = req.ProfessionalSummary

	if err := u.profiles.Update(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// resolveExperienceSkills fills each experience's Skills slice from the
// already loaded skill list. Skill ids with no surviving skill are
// dropped; the stored id list is left untouched.
func resolveExperienceSkills(experiences []domain.Experience, skills []domain.Skill) {
	if len(experiences) == 0 || len(skills) == 0 {
		return
	}
	byID := make(map[string]domain.Skill, len(skills))
	for _, s := range skills {
		byID[s.ID.String()] = s
	}
	for i := range experiences {
		resolved := make([]domain.Skill, 0, len(experiences[i].SkillIDs))
		for _, id := range experiences[i].SkillIDs {
			if s, ok := byID[id.String()]; ok {
				resolved = append(resolved, s)
			}
		}
		experiences[i].Skills = resolved
	}
}
