package usecase

import (
	"context"
	"errors"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/auth"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/security"

	"github.com/google/uuid"
)

type authUsecase struct {
	users    domain.UserRepository
	profiles domain.ProfileRepository
	tokens   *auth.TokenService
	secLog   *security.Logger
}

func NewAuthUsecase(users domain.UserRepository, profiles domain.ProfileRepository, tokens *auth.TokenService, secLog *security.Logger) domain.AuthUsecase {
	return &authUsecase{
		users:    users,
		profiles: profiles,
		tokens:   tokens,
		secLog:   secLog,
	}
}

// Register creates the account and an initial profile carrying the
// account's name and email. Email stays immutable from here on.
func (u *authUsecase) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	existing, err := u.users.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		u.secLog.LogEvent(security.Event{
			Event:        security.EventRegisterFailed,
			SubjectType:  "email",
			SubjectValue: req.Email,
		})
		return nil, apperror.Conflict("Este email já está cadastrado")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         "user",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}

	profile := &domain.Profile{
		ID:        uuid.New(),
		UserID:    user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.profiles.Create(ctx, profile); err != nil {
		logger.Log.Error("failed to create initial profile", "user_id", user.ID, "error", err)
	}

	return u.respond(user)
}

func (u *authUsecase) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	user, err := u.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			u.logLoginFailed(req.Email)
			return nil, apperror.Unauthorized("Email ou senha inválidos")
		}
		return nil, apperror.Internal(err)
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		u.logLoginFailed(req.Email)
		return nil, apperror.Unauthorized("Email ou senha inválidos")
	}

	u.secLog.LogEvent(security.Event{
		Event:        security.EventLoginSuccess,
		SubjectType:  "email",
		SubjectValue: user.Email,
	})
	return u.respond(user)
}

func (u *authUsecase) ChangePassword(ctx context.Context, req domain.ChangePasswordRequest) error {
	userID, ok := domain.UserIDFromContext(ctx)
	if !ok {
		return apperror.Unauthorized("Usuário não autenticado")
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.Unauthorized("Usuário não autenticado")
		}
		return apperror.Internal(err)
	}

	if !auth.CheckPassword(req.CurrentPassword, user.PasswordHash) {
		return apperror.Unauthorized("Senha atual incorreta")
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperror.Internal(err)
	}
	if err := u.users.UpdatePassword(ctx, userID, hash); err != nil {
		return apperror.Internal(err)
	}

	u.secLog.LogEvent(security.Event{
		Event:        security.EventPasswordChanged,
		SubjectType:  "user_id",
		SubjectValue: userID.String(),
	})
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Usuário não autenticado")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *authUsecase) respond(user *domain.User) (*domain.AuthResponse, error) {
	token, expiration, err := u.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthResponse{
		Token:      token,
		Expiration: expiration,
		User:       *user,
	}, nil
}

func (u *authUsecase) logLoginFailed(email string) {
	u.secLog.LogEvent(security.Event{
		Event:        security.EventLoginFailed,
		SubjectType:  "email",
		SubjectValue: email,
	})
}
