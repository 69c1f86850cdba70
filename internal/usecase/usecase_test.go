package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/auth"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/security"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

// Mock Repositories

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

type MockProfileRepo struct{ mock.Mock }

func (m *MockProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) Update(ctx context.Context, p *domain.Profile) error {
	return m.Called(ctx, p).Error(0)
}

type MockExperienceRepo struct{ mock.Mock }

func (m *MockExperienceRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Experience, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Experience), args.Error(1)
}
func (m *MockExperienceRepo) ListCurrentByUser(ctx context.Context, userID uuid.UUID) ([]domain.Experience, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Experience), args.Error(1)
}
func (m *MockExperienceRepo) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Experience, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Experience), args.Error(1)
}
func (m *MockExperienceRepo) Create(ctx context.Context, exp *domain.Experience) error {
	return m.Called(ctx, exp).Error(0)
}
func (m *MockExperienceRepo) Update(ctx context.Context, exp *domain.Experience) error {
	return m.Called(ctx, exp).Error(0)
}
func (m *MockExperienceRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return m.Called(ctx, id, userID).Error(0)
}

type MockSkillRepo struct{ mock.Mock }

func (m *MockSkillRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Skill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) ListByCategory(ctx context.Context, userID uuid.UUID, category string) ([]domain.Skill, error) {
	args := m.Called(ctx, userID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Skill, error) {
	args := m.Called(ctx, userID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Skill, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) Create(ctx context.Context, s *domain.Skill) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockSkillRepo) Update(ctx context.Context, s *domain.Skill) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockSkillRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return m.Called(ctx, id, userID).Error(0)
}

type MockEducationRepo struct{ mock.Mock }

func (m *MockEducationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Education, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Education), args.Error(1)
}
func (m *MockEducationRepo) ListByDegree(ctx context.Context, userID uuid.UUID, degree string) ([]domain.Education, error) {
	args := m.Called(ctx, userID, degree)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Education), args.Error(1)
}
func (m *MockEducationRepo) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Education, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Education), args.Error(1)
}
func (m *MockEducationRepo) Create(ctx context.Context, e *domain.Education) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockEducationRepo) Update(ctx context.Context, e *domain.Education) error {
	return m.Called(ctx, e).Error(0)
}
func (m *MockEducationRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return m.Called(ctx, id, userID).Error(0)
}

type MockCertificationRepo struct{ mock.Mock }

func (m *MockCertificationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Certification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certification), args.Error(1)
}
func (m *MockCertificationRepo) ListExpired(ctx context.Context, userID uuid.UUID) ([]domain.Certification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certification), args.Error(1)
}
func (m *MockCertificationRepo) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Certification, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certification), args.Error(1)
}
func (m *MockCertificationRepo) Create(ctx context.Context, c *domain.Certification) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCertificationRepo) Update(ctx context.Context, c *domain.Certification) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCertificationRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return m.Called(ctx, id, userID).Error(0)
}

type MockLanguageRepo struct{ mock.Mock }

func (m *MockLanguageRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Language, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Language), args.Error(1)
}
func (m *MockLanguageRepo) ListByProficiency(ctx context.Context, userID uuid.UUID, proficiency string) ([]domain.Language, error) {
	args := m.Called(ctx, userID, proficiency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Language), args.Error(1)
}
func (m *MockLanguageRepo) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Language, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Language), args.Error(1)
}
func (m *MockLanguageRepo) Create(ctx context.Context, l *domain.Language) error {
	return m.Called(ctx, l).Error(0)
}
func (m *MockLanguageRepo) Update(ctx context.Context, l *domain.Language) error {
	return m.Called(ctx, l).Error(0)
}
func (m *MockLanguageRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return m.Called(ctx, id, userID).Error(0)
}

type MockSocialLinkRepo struct{ mock.Mock }

func (m *MockSocialLinkRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SocialLink, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SocialLink), args.Error(1)
}
func (m *MockSocialLinkRepo) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.SocialLink, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SocialLink), args.Error(1)
}
func (m *MockSocialLinkRepo) Create(ctx context.Context, l *domain.SocialLink) error {
	return m.Called(ctx, l).Error(0)
}
func (m *MockSocialLinkRepo) Update(ctx context.Context, l *domain.SocialLink) error {
	return m.Called(ctx, l).Error(0)
}
func (m *MockSocialLinkRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return m.Called(ctx, id, userID).Error(0)
}

// Helpers

func authedCtx(userID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserID, userID)
}

func newTokens(t *testing.T) *auth.TokenService {
	t.Helper()
	tokens, err := auth.NewTokenService("test-secret", time.Hour)
	assert.NoError(t, err)
	return tokens
}

func appErrCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	return appErr.Code
}

// Auth

func TestAuthRegister(t *testing.T) {
	secLog := security.NewLogger("test")

	t.Run("duplicate email conflicts", func(t *testing.T) {
		users := new(MockUserRepo)
		profiles := new(MockProfileRepo)
		uc := usecase.NewAuthUsecase(users, profiles, newTokens(t), secLog)

		users.On("GetByEmail", mock.Anything, "ana@example.com").
			Return(&domain.User{Email: "ana@example.com"}, nil)

		_, err := uc.Register(context.Background(), domain.RegisterRequest{
			Email: "ana@example.com", Password: "secret1", ConfirmPassword: "secret1", FullName: "Ana Silva",
		})
		assert.Equal(t, 409, appErrCode(t, err))
	})

	t.Run("success returns token, expiration and user, and seeds a profile", func(t *testing.T) {
		users := new(MockUserRepo)
		profiles := new(MockProfileRepo)
		uc := usecase.NewAuthUsecase(users, profiles, newTokens(t), secLog)

		users.On("GetByEmail", mock.Anything, "ana@example.com").Return(nil, domain.ErrNotFound)
		users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
		profiles.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Profile) bool {
			return p.Email == "ana@example.com" && p.FullName == "Ana Silva"
		})).Return(nil)

		res, err := uc.Register(context.Background(), domain.RegisterRequest{
			Email: "ana@example.com", Password: "secret1", ConfirmPassword: "secret1", FullName: "Ana Silva",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.True(t, res.Expiration.After(time.Now()))
		assert.Equal(t, "ana@example.com", res.User.Email)
		profiles.AssertExpectations(t)
	})
}

func TestAuthLogin(t *testing.T) {
	secLog := security.NewLogger("test")
	hash, _ := auth.HashPassword("correct-horse")

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(users, new(MockProfileRepo), newTokens(t), secLog)

		users.On("GetByEmail", mock.Anything, "ana@example.com").
			Return(&domain.User{Email: "ana@example.com", PasswordHash: hash}, nil)

		_, err := uc.Login(context.Background(), domain.LoginRequest{Email: "ana@example.com", Password: "nope"})
		assert.Equal(t, 401, appErrCode(t, err))
	})

	t.Run("unknown email is unauthorized, not not-found", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(users, new(MockProfileRepo), newTokens(t), secLog)

		users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

		_, err := uc.Login(context.Background(), domain.LoginRequest{Email: "ghost@example.com", Password: "x"})
		assert.Equal(t, 401, appErrCode(t, err))
	})

	t.Run("valid credentials issue a token", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(users, new(MockProfileRepo), newTokens(t), secLog)

		users.On("GetByEmail", mock.Anything, "ana@example.com").
			Return(&domain.User{ID: uuid.New(), Email: "ana@example.com", PasswordHash: hash}, nil)

		res, err := uc.Login(context.Background(), domain.LoginRequest{Email: "ana@example.com", Password: "correct-horse"})
		assert.NoError(t, err)
		assert.NotEmpty(t, res.Token)
	})
}

func TestAuthChangePassword(t *testing.T) {
	secLog := security.NewLogger("test")
	userID := uuid.New()
	hash, _ := auth.HashPassword("old-pass")

	t.Run("wrong current password is rejected", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(users, new(MockProfileRepo), newTokens(t), secLog)

		users.On("GetByID", mock.Anything, userID).
			Return(&domain.User{ID: userID, PasswordHash: hash}, nil)

		err := uc.ChangePassword(authedCtx(userID), domain.ChangePasswordRequest{
			CurrentPassword: "wrong", NewPassword: "new-pass", ConfirmNewPassword: "new-pass",
		})
		assert.Equal(t, 401, appErrCode(t, err))
		users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("correct current password rotates the hash", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(users, new(MockProfileRepo), newTokens(t), secLog)

		users.On("GetByID", mock.Anything, userID).
			Return(&domain.User{ID: userID, PasswordHash: hash}, nil)
		users.On("UpdatePassword", mock.Anything, userID, mock.AnythingOfType("string")).Return(nil)

		err := uc.ChangePassword(authedCtx(userID), domain.ChangePasswordRequest{
			CurrentPassword: "old-pass", NewPassword: "new-pass", ConfirmNewPassword: "new-pass",
		})
		assert.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("fails safe without authentication", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo), new(MockProfileRepo), newTokens(t), secLog)
		err := uc.ChangePassword(context.Background(), domain.ChangePasswordRequest{})
		assert.Equal(t, 401, appErrCode(t, err))
	})
}

// Experiences

func TestExperienceCreate(t *testing.T) {
	userID := uuid.New()

	t.Run("invalid employment type is rejected", func(t *testing.T) {
		uc := usecase.NewExperienceUsecase(new(MockExperienceRepo), new(MockSkillRepo))
		_, err := uc.Create(authedCtx(userID), domain.ExperienceRequest{
			Company: "ACME", Position: "Dev", StartDate: time.Now(),
			Description: "building things", EmploymentType: "contractor",
		})
		assert.Equal(t, 400, appErrCode(t, err))
	})

	t.Run("current position drops any end date", func(t *testing.T) {
		repo := new(MockExperienceRepo)
		uc := usecase.NewExperienceUsecase(repo, new(MockSkillRepo))

		end := time.Now()
		repo.On("Create", mock.Anything, mock.MatchedBy(func(e *domain.Experience) bool {
			return e.IsCurrent && e.EndDate == nil
		})).Return(nil)

		exp, err := uc.Create(authedCtx(userID), domain.ExperienceRequest{
			Company: "ACME", Position: "Dev", StartDate: end.AddDate(-1, 0, 0), EndDate: &end,
			IsCurrent: true, Description: "building things", EmploymentType: "CLT",
		})
		assert.NoError(t, err)
		assert.Nil(t, exp.EndDate)
		repo.AssertExpectations(t)
	})

	t.Run("end date before start date is rejected", func(t *testing.T) {
		uc := usecase.NewExperienceUsecase(new(MockExperienceRepo), new(MockSkillRepo))
		start := time.Now()
		end := start.AddDate(-1, 0, 0)
		_, err := uc.Create(authedCtx(userID), domain.ExperienceRequest{
			Company: "ACME", Position: "Dev", StartDate: start, EndDate: &end,
			Description: "building things", EmploymentType: "PJ",
		})
		assert.Equal(t, 400, appErrCode(t, err))
	})
}

func TestExperienceListResolvesSkills(t *testing.T) {
	userID := uuid.New()
	skillID := uuid.New()
	danglingID := uuid.New()

	expRepo := new(MockExperienceRepo)
	skillRepo := new(MockSkillRepo)
	uc := usecase.NewExperienceUsecase(expRepo, skillRepo)

	expRepo.On("ListByUser", mock.Anything, userID).Return([]domain.Experience{
		{ID: uuid.New(), Company: "ACME", SkillIDs: []uuid.UUID{skillID, danglingID}},
	}, nil)
	skillRepo.On("ListByIDs", mock.Anything, userID, mock.Anything).Return([]domain.Skill{
		{ID: skillID, Name: "Go"},
	}, nil)

	result, err := uc.List(authedCtx(userID), domain.ListQuery{Page: 1, PageSize: 10})
	assert.NoError(t, err)
	if assert.Len(t, result.Data, 1) {
		// The dangling id resolves to nothing; the stored list is untouched.
		assert.Len(t, result.Data[0].Skills, 1)
		assert.Len(t, result.Data[0].SkillIDs, 2)
	}
}

// Skills

func TestSkillValidation(t *testing.T) {
	userID := uuid.New()
	uc := usecase.NewSkillUsecase(new(MockSkillRepo))

	t.Run("unknown category is rejected", func(t *testing.T) {
		_, err := uc.Create(authedCtx(userID), domain.SkillRequest{
			Name: "Go", Category: "backend", Level: "Avançado",
		})
		assert.Equal(t, 400, appErrCode(t, err))
	})

	t.Run("unknown level is rejected", func(t *testing.T) {
		_, err := uc.Create(authedCtx(userID), domain.SkillRequest{
			Name: "Go", Category: "Backend", Level: "guru",
		})
		assert.Equal(t, 400, appErrCode(t, err))
	})

	t.Run("ListByCategory validates the vocabulary", func(t *testing.T) {
		_, err := uc.ListByCategory(authedCtx(userID), "devops")
		assert.Equal(t, 400, appErrCode(t, err))
	})
}

func TestSkillListPagination(t *testing.T) {
	userID := uuid.New()
	repo := new(MockSkillRepo)
	uc := usecase.NewSkillUsecase(repo)

	skills := make([]domain.Skill, 12)
	for i := range skills {
		skills[i] = domain.Skill{ID: uuid.New(), Name: "Skill", Category: "Backend"}
	}
	repo.On("ListByUser", mock.Anything, userID).Return(skills, nil)

	result, err := uc.List(authedCtx(userID), domain.ListQuery{Page: 2, PageSize: 10, Category: "all"})
	assert.NoError(t, err)
	assert.Len(t, result.Data, 2)
	assert.Equal(t, int64(12), result.Total)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 2, result.TotalPages)
}

// Educations

func TestEducationCreate(t *testing.T) {
	userID := uuid.New()

	t.Run("completed education requires an end date", func(t *testing.T) {
		repo := new(MockEducationRepo)
		uc := usecase.NewEducationUsecase(repo)

		_, err := uc.Create(authedCtx(userID), domain.EducationRequest{
			Institution: "USP", Degree: "Bacharelado", FieldOfStudy: "Ciência da Computação",
			StartDate: time.Now().AddDate(-4, 0, 0), IsCompleted: true,
		})
		assert.Equal(t, 400, appErrCode(t, err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("in-progress education drops any end date", func(t *testing.T) {
		repo := new(MockEducationRepo)
		uc := usecase.NewEducationUsecase(repo)

		repo.On("Create", mock.Anything, mock.MatchedBy(func(e *domain.Education) bool {
			return !e.IsCompleted && e.EndDate == nil
		})).Return(nil)

		end := time.Now()
		edu, err := uc.Create(authedCtx(userID), domain.EducationRequest{
			Institution: "USP", Degree: "Bacharelado", FieldOfStudy: "Ciência da Computação",
			StartDate: end.AddDate(-2, 0, 0), EndDate: &end,
		})
		assert.NoError(t, err)
		assert.Nil(t, edu.EndDate)
		repo.AssertExpectations(t)
	})

	t.Run("completed education with an end date is stored", func(t *testing.T) {
		repo := new(MockEducationRepo)
		uc := usecase.NewEducationUsecase(repo)

		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Education")).Return(nil)

		end := time.Now()
		edu, err := uc.Create(authedCtx(userID), domain.EducationRequest{
			Institution: "USP", Degree: "Bacharelado", FieldOfStudy: "Ciência da Computação",
			StartDate: end.AddDate(-4, 0, 0), EndDate: &end, IsCompleted: true,
		})
		assert.NoError(t, err)
		assert.NotNil(t, edu.EndDate)
	})
}

// Certifications

func TestCertificationStatusFilter(t *testing.T) {
	userID := uuid.New()
	repo := new(MockCertificationRepo)
	uc := usecase.NewCertificationUsecase(repo)

	past := time.Now().AddDate(-1, 0, 0)
	future := time.Now().AddDate(1, 0, 0)
	repo.On("ListByUser", mock.Anything, userID).Return([]domain.Certification{
		{ID: uuid.New(), Name: "AWS SAA", ExpirationDate: &future},
		{ID: uuid.New(), Name: "Scrum Master", ExpirationDate: &past},
		{ID: uuid.New(), Name: "Bacharelado"},
	}, nil)

	result, err := uc.List(authedCtx(userID), domain.ListQuery{Page: 1, PageSize: 10, Category: "expired"})
	assert.NoError(t, err)
	if assert.Len(t, result.Data, 1) {
		assert.Equal(t, "Scrum Master", result.Data[0].Name)
	}
}

func TestCertificationSearchByCredentialID(t *testing.T) {
	userID := uuid.New()
	repo := new(MockCertificationRepo)
	uc := usecase.NewCertificationUsecase(repo)

	credential := "SAA-C03-998877"
	repo.On("ListByUser", mock.Anything, userID).Return([]domain.Certification{
		{ID: uuid.New(), Name: "AWS SAA", IssuingOrganization: "Amazon", CredentialID: &credential},
		{ID: uuid.New(), Name: "Scrum Master", IssuingOrganization: "Scrum.org"},
	}, nil)

	result, err := uc.List(authedCtx(userID), domain.ListQuery{Page: 1, PageSize: 10, Category: "all", Search: "998877"})
	assert.NoError(t, err)
	if assert.Len(t, result.Data, 1) {
		assert.Equal(t, "AWS SAA", result.Data[0].Name)
	}
}

// Languages

func TestLanguageProficiencyValidation(t *testing.T) {
	userID := uuid.New()
	uc := usecase.NewLanguageUsecase(new(MockLanguageRepo))

	_, err := uc.Create(authedCtx(userID), domain.LanguageRequest{Name: "Inglês", Proficiency: "ok"})
	assert.Equal(t, 400, appErrCode(t, err))

	_, err = uc.ListByProficiency(authedCtx(userID), "heroico")
	assert.Equal(t, 400, appErrCode(t, err))
}

// Social links

func TestSocialLinkPlatformValidation(t *testing.T) {
	userID := uuid.New()
	uc := usecase.NewSocialLinkUsecase(new(MockSocialLinkRepo))

	_, err := uc.Create(authedCtx(userID), domain.SocialLinkRequest{
		Platform: "MySpace", URL: "https://myspace.com/ana",
	})
	assert.Equal(t, 400, appErrCode(t, err))
}

// Dashboard

func fullDashboardRepos(userID uuid.UUID) (*MockProfileRepo, *MockExperienceRepo, *MockSkillRepo, *MockEducationRepo, *MockCertificationRepo, *MockLanguageRepo, *MockSocialLinkRepo) {
	profiles := new(MockProfileRepo)
	experiences := new(MockExperienceRepo)
	skills := new(MockSkillRepo)
	educations := new(MockEducationRepo)
	certifications := new(MockCertificationRepo)
	languages := new(MockLanguageRepo)
	socialLinks := new(MockSocialLinkRepo)

	profiles.On("GetByUserID", mock.Anything, userID).Return(&domain.Profile{
		UserID: userID, FullName: "Ana Silva", Email: "ana@example.com",
		Phone: "+55 11 91234-5678", Location: "São Paulo, SP",
		ProfessionalSummary: "Engenheira de software com dez anos de experiência em sistemas distribuídos e APIs.",
	}, nil)
	experiences.On("ListByUser", mock.Anything, userID).Return([]domain.Experience{
		{ID: uuid.New(), Company: "ACME", Position: "Engenheira Sênior", IsCurrent: true,
			Description: "Liderança técnica do time de plataformas, desenhando e operando serviços críticos."},
	}, nil)
	skills.On("ListByUser", mock.Anything, userID).Return([]domain.Skill{
		{Name: "Go", Category: "Backend"},
		{Name: "PostgreSQL", Category: "Banco de Dados"},
		{Name: "Docker", Category: "Cloud & DevOps"},
		{Name: "Angular", Category: "Frontend"},
		{Name: "Redis", Category: "Banco de Dados"},
	}, nil)
	educations.On("ListByUser", mock.Anything, userID).Return([]domain.Education{
		{Institution: "USP", Degree: "Bacharelado"},
	}, nil)
	certifications.On("ListByUser", mock.Anything, userID).Return([]domain.Certification{
		{Name: "AWS SAA"},
	}, nil)
	languages.On("ListByUser", mock.Anything, userID).Return([]domain.Language{
		{Name: "Inglês", Proficiency: "Fluente"},
	}, nil)
	socialLinks.On("ListByUser", mock.Anything, userID).Return([]domain.SocialLink{
		{Platform: "LinkedIn", URL: "https://linkedin.com/in/ana"},
	}, nil)

	return profiles, experiences, skills, educations, certifications, languages, socialLinks
}

func TestDashboard(t *testing.T) {
	userID := uuid.New()

	t.Run("complete profile scores 100 and is green", func(t *testing.T) {
		p, e, s, ed, c, l, sl := fullDashboardRepos(userID)
		uc := usecase.NewDashboardUsecase(p, e, s, ed, c, l, sl, 0)

		d, err := uc.GetDashboard(authedCtx(userID))
		assert.NoError(t, err)
		assert.Equal(t, 100, d.ProfileSummary.ProfileCompletion)
		assert.Equal(t, domain.ColorGreen, d.ProfileSummary.CompletionColor)
		assert.Equal(t, "Engenheira Sênior", d.ProfileSummary.ProfessionalTitle)
		assert.Equal(t, 1, d.Statistics.CurrentExperiences)
		assert.Equal(t, 4, d.Statistics.SkillsByCategory)
		assert.Empty(t, d.AtsScore.Suggestions)
		assert.Equal(t, 100, d.AtsScore.Score)
		assert.Equal(t, "Excelente", d.AtsScore.Level)
	})

	t.Run("sparse profile collects suggestions", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		profiles.On("GetByUserID", mock.Anything, userID).Return(&domain.Profile{
			UserID: userID, FullName: "Ana Silva", Email: "ana@example.com",
		}, nil)
		empty := func(m *mock.Mock, method string, out interface{}) {
			m.On(method, mock.Anything, userID).Return(out, nil)
		}
		experiences := new(MockExperienceRepo)
		empty(&experiences.Mock, "ListByUser", []domain.Experience{})
		skills := new(MockSkillRepo)
		empty(&skills.Mock, "ListByUser", []domain.Skill{})
		educations := new(MockEducationRepo)
		empty(&educations.Mock, "ListByUser", []domain.Education{})
		certifications := new(MockCertificationRepo)
		empty(&certifications.Mock, "ListByUser", []domain.Certification{})
		languages := new(MockLanguageRepo)
		empty(&languages.Mock, "ListByUser", []domain.Language{})
		socialLinks := new(MockSocialLinkRepo)
		empty(&socialLinks.Mock, "ListByUser", []domain.SocialLink{})

		uc := usecase.NewDashboardUsecase(profiles, experiences, skills, educations, certifications, languages, socialLinks, 0)

		score, err := uc.GetAtsScore(authedCtx(userID))
		assert.NoError(t, err)
		assert.Equal(t, 0, score.Score)
		assert.Equal(t, "Precisa melhorar", score.Level)
		assert.Equal(t, domain.ColorRed, score.Color)
		assert.NotEmpty(t, score.Suggestions)
	})

	t.Run("unauthenticated context fails safe", func(t *testing.T) {
		p, e, s, ed, c, l, sl := fullDashboardRepos(userID)
		uc := usecase.NewDashboardUsecase(p, e, s, ed, c, l, sl, 0)
		_, err := uc.GetDashboard(context.Background())
		assert.Equal(t, 401, appErrCode(t, err))
	})
}

// Resume

func TestResumeGenerateATS(t *testing.T) {
	userID := uuid.New()

	t.Run("renders a PDF with the fixed filename", func(t *testing.T) {
		p, e, s, ed, c, l, _ := fullDashboardRepos(userID)
		socialLinks := new(MockSocialLinkRepo)
		socialLinks.On("ListByUser", mock.Anything, userID).Return([]domain.SocialLink{
			{Platform: "GitHub", URL: "https://github.com/ana"},
		}, nil)

		uc := usecase.NewResumeUsecase(p, socialLinks, e, s, ed, c, l)
		pdf, filename, err := uc.GenerateATS(authedCtx(userID))
		assert.NoError(t, err)
		assert.Equal(t, "curriculo_ats.pdf", filename)
		assert.True(t, len(pdf) > 4)
		assert.Equal(t, "%PDF", string(pdf[:4]))
	})

	t.Run("a failed collection degrades, the export still renders", func(t *testing.T) {
		p, _, s, ed, c, l, sl := fullDashboardRepos(userID)
		experiences := new(MockExperienceRepo)
		experiences.On("ListByUser", mock.Anything, userID).
			Return(nil, errors.New("db down"))

		uc := usecase.NewResumeUsecase(p, sl, experiences, s, ed, c, l)
		pdf, _, err := uc.GenerateATS(authedCtx(userID))
		assert.NoError(t, err)
		assert.Equal(t, "%PDF", string(pdf[:4]))
	})

	t.Run("missing profile falls back to the placeholder name", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		profiles.On("GetByUserID", mock.Anything, userID).Return(nil, domain.ErrNotFound)
		_, e, s, ed, c, l, sl := fullDashboardRepos(userID)

		uc := usecase.NewResumeUsecase(profiles, sl, e, s, ed, c, l)
		pdf, _, err := uc.GenerateATS(authedCtx(userID))
		assert.NoError(t, err)
		assert.Equal(t, "%PDF", string(pdf[:4]))
	})
}
