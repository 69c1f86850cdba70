package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/auth"
	"go-portfolio-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and loads the user from the
// database, so a deleted account is rejected even with a live token.
func AuthMiddleware(tokens *auth.TokenService, authUC domain.AuthUsecase, secLog *security.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if tokenString == "" || tokenString == authHeader {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		userID, email, err := tokens.Parse(tokenString)
		if err != nil {
			secLog.LogEvent(security.Event{
				Event:       security.EventInvalidToken,
				SubjectType: "ip",
				IP:          c.ClientIP(),
				UserAgent:   c.GetHeader("User-Agent"),
				RequestID:   c.GetString("RequestID"),
			})
			response.Error(c, http.StatusUnauthorized, "Token inválido ou expirado", nil)
			c.Abort()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Usuário não autenticado", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), email)
		c.Set(string(domain.KeyUserRole), user.Role)

		// Usecases read identity from the request context, not gin's map.
		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, user.ID)
		ctx = context.WithValue(ctx, domain.KeyUserEmail, email)
		ctx = context.WithValue(ctx, domain.KeyUserRole, user.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
