// Package auth holds the token and password primitives used by the
// authentication usecase and the HTTP middleware.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and parses the HS256 bearer tokens attached to
// every authenticated request.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Generate issues a signed token for the user. The returned expiration
// is echoed to clients alongside the token.
func (s *TokenService) Generate(userID uuid.UUID, email, role string) (token string, expiration time.Time, err error) {
	expiration = time.Now().Add(s.ttl)

	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"role":  role,
		"iat":   time.Now().Unix(),
		"exp":   expiration.Unix(),
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiration, nil
}

// Parse validates the signature and expiry and returns the subject id.
func (s *TokenService) Parse(tokenString string) (userID uuid.UUID, email string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, "", ErrInvalidToken
	}
	email, _ = claims["email"].(string)
	return id, email, nil
}
