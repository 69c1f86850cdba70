package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/redis"

	"github.com/google/uuid"
)

// Profile completion weights. They sum to 100; each related collection
// contributes its full weight once it has at least one record (three
// for skills, where a single entry says little about the profile).
const (
	weightProfileBasics  = 30
	weightExperiences    = 15
	weightSkills         = 15
	weightEducations     = 10
	weightCertifications = 10
	weightLanguages      = 10
	weightSocialLinks    = 10

	minSkillsForWeight = 3
)

type dashboardUsecase struct {
	profiles       domain.ProfileRepository
	experiences    domain.ExperienceRepository
	skills         domain.SkillRepository
	educations     domain.EducationRepository
	certifications domain.CertificationRepository
	languages      domain.LanguageRepository
	socialLinks    domain.SocialLinkRepository
	cacheTTL       time.Duration
}

func NewDashboardUsecase(
	profiles domain.ProfileRepository,
	experiences domain.ExperienceRepository,
	skills domain.SkillRepository,
	educations domain.EducationRepository,
	certifications domain.CertificationRepository,
	languages domain.LanguageRepository,
	socialLinks domain.SocialLinkRepository,
	cacheTTL time.Duration,
) domain.DashboardUsecase {
	return &dashboardUsecase{
		profiles:       profiles,
		experiences:    experiences,
		skills:         skills,
		educations:     educations,
		certifications: certifications,
		languages:      languages,
		socialLinks:    socialLinks,
		cacheTTL:       cacheTTL,
	}
}

func (u *dashboardUsecase) GetDashboard(ctx context.Context) (*domain.Dashboard, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}

	if cached := u.fromCache(ctx, userID); cached != nil {
		return cached, nil
	}

	snap, err := u.collect(ctx, userID)
	if err != nil {
		return nil, err
	}

	completion := completionScore(snap)
	ats := atsScore(snap)

	dashboard := &domain.Dashboard{
		ProfileSummary: domain.ProfileSummary{
			FullName:            snap.profile.FullName,
			Location:            snap.profile.Location,
			Email:               snap.profile.Email,
			Phone:               snap.profile.Phone,
			ProfessionalSummary: snap.profile.ProfessionalSummary,
			ProfessionalTitle:   currentTitle(snap.experiences),
			ProfileCompletion:   completion,
			CompletionColor:     domain.TierColor(completion),
		},
		Statistics:     statistics(snap),
		QuickActions:   quickActions(snap),
		RecentActivity: recentActivity(snap),
		AtsScore:       *ats,
	}

	u.toCache(ctx, userID, dashboard)
	return dashboard, nil
}

func (u *dashboardUsecase) GetProfileCompletion(ctx context.Context) (int, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return 0, apperror.Unauthorized("Usuário não autenticado")
	}
	snap, err := u.collect(ctx, userID)
	if err != nil {
		return 0, err
	}
	return completionScore(snap), nil
}

func (u *dashboardUsecase) GetAtsScore(ctx context.Context) (*domain.AtsScore, error) {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Usuário não autenticado")
	}
	snap, err := u.collect(ctx, userID)
	if err != nil {
		return nil, err
	}
	return atsScore(snap), nil
}

// dashboardData is the joined input of every dashboard computation.
type dashboardData struct {
	profile        *domain.Profile
	experiences    []domain.Experience
	skills         []domain.Skill
	educations     []domain.Education
	certifications []domain.Certification
	languages      []domain.Language
	socialLinks    []domain.SocialLink
}

// collect loads everything the dashboard needs. Only a missing profile
// is fatal; any other failed collection degrades to empty.
func (u *dashboardUsecase) collect(ctx context.Context, userID uuid.UUID) (*dashboardData, error) {
	profile, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Perfil não encontrado")
		}
		return nil, apperror.Internal(err)
	}

	snap := &dashboardData{profile: profile}

	if snap.experiences, err = u.experiences.ListByUser(ctx, userID); err != nil {
		logger.Log.Warn("dashboard: experiences unavailable", "user_id", userID, "error", err)
	}
	if snap.skills, err = u.skills.ListByUser(ctx, userID); err != nil {
		logger.Log.Warn("dashboard: skills unavailable", "user_id", userID, "error", err)
	}
	if snap.educations, err = u.educations.ListByUser(ctx, userID); err != nil {
		logger.Log.Warn("dashboard: educations unavailable", "user_id", userID, "error", err)
	}
	if snap.certifications, err = u.certifications.ListByUser(ctx, userID); err != nil {
		logger.Log.Warn("dashboard: certifications unavailable", "user_id", userID, "error", err)
	}
	if snap.languages, err = u.languages.ListByUser(ctx, userID); err != nil {
		logger.Log.Warn("dashboard: languages unavailable", "user_id", userID, "error", err)
	}
	if snap.socialLinks, err = u.socialLinks.ListByUser(ctx, userID); err != nil {
		logger.Log.Warn("dashboard: social links unavailable", "user_id", userID, "error", err)
	}
	return snap, nil
}

func completionScore(snap *dashboardData) int {
	score := 0
	p := snap.profile
	if p.FullName != "" && p.Phone != "" && p.Location != "" && p.ProfessionalSummary != "" {
		score += weightProfileBasics
	}
	if len(snap.experiences) > 0 {
		score += weightExperiences
	}
	if len(snap.skills) >= minSkillsForWeight {
		score += weightSkills
	}
	if len(snap.educations) > 0 {
		score += weightEducations
	}
	if len(snap.certifications) > 0 {
		score += weightCertifications
	}
	if len(snap.languages) > 0 {
		score += weightLanguages
	}
	if len(snap.socialLinks) > 0 {
		score += weightSocialLinks
	}
	return score
}

// atsScore grades the profile the way recruiter tracking systems parse
// it, and pairs each missing area with an actionable suggestion.
func atsScore(snap *dashboardData) *domain.AtsScore {
	score := 0
	var suggestions []string

	if len(snap.profile.ProfessionalSummary) >= 50 {
		score += 20
	} else {
		suggestions = append(suggestions, "Adicione um resumo profissional com pelo menos 50 caracteres")
	}

	if len(snap.experiences) > 0 {
		score += 20
		detailed := true
		for _, e := range snap.experiences {
			if len(e.Description) < 50 {
				detailed = false
				break
			}
		}
		if detailed {
			score += 10
		} else {
			suggestions = append(suggestions, "Detalhe as descrições das suas experiências profissionais")
		}
	} else {
		suggestions = append(suggestions, "Cadastre suas experiências profissionais")
	}

	if len(snap.skills) >= 5 {
		score += 15
	} else {
		suggestions = append(suggestions, "Cadastre pelo menos 5 habilidades")
	}

	if len(snap.educations) > 0 {
		score += 10
	} else {
		suggestions = append(suggestions, "Cadastre sua formação acadêmica")
	}

	if len(snap.certifications) > 0 {
		score += 10
	} else {
		suggestions = append(suggestions, "Adicione certificações para fortalecer o currículo")
	}

	if len(snap.languages) > 0 {
		score += 10
	} else {
		suggestions = append(suggestions, "Informe os idiomas que você domina")
	}

	if snap.profile.Phone != "" && snap.profile.Location != "" {
		score += 5
	} else {
		suggestions = append(suggestions, "Complete telefone e localização para contato")
	}

	hasProfileLink := false
	for _, l := range snap.socialLinks {
		if l.Platform == "LinkedIn" || l.Platform == "GitHub" {
			hasProfileLink = true
			break
		}
	}
	if hasProfileLink {
		score += 10
	} else {
		suggestions = append(suggestions, "Adicione seu LinkedIn ou GitHub")
	}

	return &domain.AtsScore{
		Score:       score,
		Level:       atsLevel(score),
		Color:       domain.TierColor(score),
		Suggestions: suggestions,
	}
}

func atsLevel(score int) string {
	switch {
	case score >= 80:
		return "Excelente"
	case score >= 60:
		return "Bom"
	default:
		return "Precisa melhorar"
	}
}

func statistics(snap *dashboardData) domain.Statistics {
	current := 0
	for _, e := range snap.experiences {
		if e.IsCurrent {
			current++
		}
	}
	categories := make(map[string]bool)
	for _, s := range snap.skills {
		categories[s.Category] = true
	}
	return domain.Statistics{
		TotalExperiences:    len(snap.experiences),
		TotalSkills:         len(snap.skills),
		TotalEducations:     len(snap.educations),
		TotalCertifications: len(snap.certifications),
		TotalLanguages:      len(snap.languages),
		CurrentExperiences:  current,
		SkillsByCategory:    len(categories),
	}
}

// currentTitle picks the position of the most recent current
// experience, falling back to the most recent one overall.
func currentTitle(experiences []domain.Experience) string {
	var best *domain.Experience
	for i := range experiences {
		e := &experiences[i]
		switch {
		case best == nil:
			best = e
		case e.IsCurrent && !best.IsCurrent:
			best = e
		case e.IsCurrent == best.IsCurrent && e.StartDate.After(best.StartDate):
			best = e
		}
	}
	if best == nil {
		return ""
	}
	return best.Position
}

func quickActions(snap *dashboardData) []domain.QuickAction {
	var actions []domain.QuickAction
	if snap.profile.ProfessionalSummary == "" {
		actions = append(actions, domain.QuickAction{
			Title:       "Complete seu perfil",
			Description: "Escreva um resumo profissional",
			Action:      "/profile",
			Icon:        "person",
			Priority:    1,
		})
	}
	if len(snap.experiences) == 0 {
		actions = append(actions, domain.QuickAction{
			Title:       "Adicione experiências",
			Description: "Cadastre sua trajetória profissional",
			Action:      "/experiences",
			Icon:        "work",
			Priority:    2,
		})
	}
	if len(snap.skills) < 5 {
		actions = append(actions, domain.QuickAction{
			Title:       "Adicione habilidades",
			Description: "Liste as tecnologias que você domina",
			Action:      "/skills",
			Icon:        "build",
			Priority:    3,
		})
	}
	if len(snap.educations) == 0 {
		actions = append(actions, domain.QuickAction{
			Title:       "Adicione formação",
			Description: "Cadastre sua formação acadêmica",
			Action:      "/educations",
			Icon:        "school",
			Priority:    4,
		})
	}
	if len(snap.certifications) == 0 {
		actions = append(actions, domain.QuickAction{
			Title:       "Adicione certificações",
			Description: "Certificações fortalecem seu currículo",
			Action:      "/certifications",
			Icon:        "verified",
			Priority:    5,
		})
	}
	return actions
}

const maxRecentActivities = 5

func recentActivity(snap *dashboardData) domain.RecentActivity {
	type dated struct {
		activity domain.Activity
		at       time.Time
	}
	var all []dated
	add := func(kind, description, id string, at time.Time) {
		all = append(all, dated{
			activity: domain.Activity{
				Type:        kind,
				Description: description,
				Date:        at.Format("02/01/2006"),
				EntityID:    id,
			},
			at: at,
		})
	}

	for _, e := range snap.experiences {
		add("experience", fmt.Sprintf("Experiência em %s", e.Company), e.ID.String(), e.UpdatedAt)
	}
	for _, s := range snap.skills {
		add("skill", fmt.Sprintf("Habilidade %s", s.Name), s.ID.String(), s.UpdatedAt)
	}
	for _, e := range snap.educations {
		add("education", fmt.Sprintf("Formação em %s", e.Institution), e.ID.String(), e.UpdatedAt)
	}
	for _, c := range snap.certifications {
		add("certification", fmt.Sprintf("Certificação %s", c.Name), c.ID.String(), c.UpdatedAt)
	}
	for _, l := range snap.languages {
		add("language", fmt.Sprintf("Idioma %s", l.Name), l.ID.String(), l.UpdatedAt)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].at.After(all[j].at)
	})
	if len(all) > maxRecentActivities {
		all = all[:maxRecentActivities]
	}
	activities := make([]domain.Activity, len(all))
	for i, d := range all {
		activities[i] = d.activity
	}
	return domain.RecentActivity{Activities: activities}
}

func dashboardCacheKey(userID uuid.UUID) string {
	return "dashboard:" + userID.String()
}

func (u *dashboardUsecase) fromCache(ctx context.Context, userID uuid.UUID) *domain.Dashboard {
	client := redis.Client()
	if client == nil || u.cacheTTL <= 0 {
		return nil
	}
	raw, err := client.Get(ctx, dashboardCacheKey(userID)).Bytes()
	if err != nil {
		return nil
	}
	var d domain.Dashboard
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil
	}
	return &d
}

func (u *dashboardUsecase) toCache(ctx context.Context, userID uuid.UUID, d *domain.Dashboard) {
	client := redis.Client()
	if client == nil || u.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return
	}
	if err := client.Set(ctx, dashboardCacheKey(userID), raw, u.cacheTTL).Err(); err != nil {
		logger.Log.Warn("dashboard: cache write failed", "error", err)
	}
}
