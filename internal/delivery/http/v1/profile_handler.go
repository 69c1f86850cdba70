package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profile := protected.Group("/profile")
	{
		profile.GET("", handler.Get)
		profile.PUT("", handler.Update)
	}
}

// Get godoc
// @Summary      Full Profile
// @Description  The profile with every related collection embedded.
// @Tags         profile
// @Produce      json
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Security     BearerAuth
// @Router       /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	full, err := h.profileUC.Get(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", full)
}

// Update godoc
// @Summary      Update Profile
// @Description  Updates the editable profile fields. Email never changes.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ProfileRequest  true  "Profile fields"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Security     BearerAuth
// @Router       /profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	var req domain.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	profile, err := h.profileUC.Update(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Perfil atualizado com sucesso", profile)
}
