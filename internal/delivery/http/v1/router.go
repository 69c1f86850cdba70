package v1

import (
	"net/http"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/auth"
	"go-portfolio-backend/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC          domain.AuthUsecase
	ProfileUC       domain.ProfileUsecase
	ExperienceUC    domain.ExperienceUsecase
	SkillUC         domain.SkillUsecase
	EducationUC     domain.EducationUsecase
	CertificationUC domain.CertificationUsecase
	LanguageUC      domain.LanguageUsecase
	SocialLinkUC    domain.SocialLinkUsecase
	DashboardUC     domain.DashboardUsecase
	ResumeUC        domain.ResumeUsecase
	Tokens          *auth.TokenService
	SecurityLog     *security.Logger
	Config          *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// CORS must run before anything that can abort the request.
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")
	v1.Use(middleware.RateLimitMiddleware(
		middleware.DefaultRateLimitConfig(deps.Config.RateLimitWindowSeconds),
		deps.SecurityLog,
	))

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth endpoints get the strict per-IP budget on top; once the
	// threshold is hit the IP stays blocked for the configured minutes.
	public := v1.Group("")
	public.Use(middleware.RateLimitMiddleware(
		middleware.AuthRateLimitConfig(deps.Config.RateLimitAuthThreshold, deps.Config.FailedLoginBlockMinutes*60),
		deps.SecurityLog,
	))

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC, deps.SecurityLog))
	{
		NewAuthHandler(public, protected, deps.AuthUC)
		NewProfileHandler(protected, deps.ProfileUC)
		NewExperienceHandler(protected, deps.ExperienceUC)
		NewSkillHandler(protected, deps.SkillUC)
		NewEducationHandler(protected, deps.EducationUC)
		NewCertificationHandler(protected, deps.CertificationUC)
		NewLanguageHandler(protected, deps.LanguageUC)
		NewSocialLinkHandler(protected, deps.SocialLinkUC)
		NewDashboardHandler(protected, deps.DashboardUC)
		NewResumeHandler(protected, deps.ResumeUC)
	}

	return r
}
