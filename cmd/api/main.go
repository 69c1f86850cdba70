package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-portfolio-backend/config"
	_ "go-portfolio-backend/docs" // Important for Swagger
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/repository/postgres"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/auth"
	"go-portfolio-backend/pkg/database"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/redis"
	"go-portfolio-backend/pkg/security"
	"go-portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Backend for the career portfolio application using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting + dashboard cache; degraded without it)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory fallbacks", "error", err)
	}

	// 5. Custom binding validators
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	experienceRepo := postgres.NewExperienceRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	educationRepo := postgres.NewEducationRepository(dbPool)
	certificationRepo := postgres.NewCertificationRepository(dbPool)
	languageRepo := postgres.NewLanguageRepository(dbPool)
	socialLinkRepo := postgres.NewSocialLinkRepository(dbPool)

	// 7. Token service + security event log
	tokens, err := auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		logger.Log.Error("Failed to build token service", "error", err)
		os.Exit(1)
	}
	secLog := security.NewLogger("portfolio-backend")

	// 8. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, profileRepo, tokens, secLog)
	profileUC := usecase.NewProfileUsecase(profileRepo, socialLinkRepo, experienceRepo, skillRepo, educationRepo, certificationRepo, languageRepo)
	experienceUC := usecase.NewExperienceUsecase(experienceRepo, skillRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	educationUC := usecase.NewEducationUsecase(educationRepo)
	certificationUC := usecase.NewCertificationUsecase(certificationRepo)
	languageUC := usecase.NewLanguageUsecase(languageRepo)
	socialLinkUC := usecase.NewSocialLinkUsecase(socialLinkRepo)
	dashboardUC := usecase.NewDashboardUsecase(
		profileRepo, experienceRepo, skillRepo, educationRepo,
		certificationRepo, languageRepo, socialLinkRepo,
		time.Duration(cfg.DashboardCacheSeconds)*time.Second,
	)
	resumeUC := usecase.NewResumeUsecase(
		profileRepo, socialLinkRepo, experienceRepo, skillRepo,
		educationRepo, certificationRepo, languageRepo,
	)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:          authUC,
		ProfileUC:       profileUC,
		ExperienceUC:    experienceUC,
		SkillUC:         skillUC,
		EducationUC:     educationUC,
		CertificationUC: certificationUC,
		LanguageUC:      languageUC,
		SocialLinkUC:    socialLinkUC,
		DashboardUC:     dashboardUC,
		ResumeUC:        resumeUC,
		Tokens:          tokens,
		SecurityLog:     secLog,
		Config:          cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
