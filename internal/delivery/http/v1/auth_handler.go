package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", handler.Register)
		publicAuth.POST("/login", handler.Login)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.POST("/change-password", handler.ChangePassword)
		protectedAuth.GET("/me", handler.Me)
	}
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new account. The response carries the token, its expiration and the user.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      domain.RegisterRequest  true  "Registration Details"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	res, err := h.authUC.Register(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Conta criada com sucesso", res)
}

// Login godoc
// @Summary      User Login
// @Description  Authenticate with email and password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      domain.LoginRequest  true  "Credentials"
// @Success      200    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	res, err := h.authUC.Login(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Login realizado com sucesso", res)
}

// ChangePassword godoc
// @Summary      Change Password
// @Description  Change the authenticated user's password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ChangePasswordRequest  true  "Passwords"
// @Success      200    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Security     BearerAuth
// @Router       /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req domain.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	if err := h.authUC.ChangePassword(c.Request.Context(), req); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Senha alterada com sucesso", nil)
}

// Me godoc
// @Summary      Current User
// @Tags         auth
// @Produce      json
// @Success      200    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Security     BearerAuth
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := domain.UserIDFromContext(c.Request.Context())
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Usuário não autenticado", nil)
		return
	}
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", user)
}
