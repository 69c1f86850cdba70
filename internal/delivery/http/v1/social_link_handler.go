package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SocialLinkHandler struct {
	socialLinkUC domain.SocialLinkUsecase
}

func NewSocialLinkHandler(protected *gin.RouterGroup, socialLinkUC domain.SocialLinkUsecase) {
	handler := &SocialLinkHandler{socialLinkUC: socialLinkUC}

	links := protected.Group("/social-links")
	{
		links.GET("", handler.List)
		links.POST("", handler.Create)
		links.PUT("/:id", handler.Update)
		links.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List Social Links
// @Description  Paginated list with search and platform filter.
// @Tags         social-links
// @Produce      json
// @Param        search    query  string  false  "Free-text search"
// @Param        category  query  string  false  "Platform filter, 'all' disables"
// @Param        page      query  int     false  "1-based page"
// @Param        page_size  query  int     false  "Page size"
// @Success      200    {object}  response.Response
// @Security     BearerAuth
// @Router       /social-links [get]
func (h *SocialLinkHandler) List(c *gin.Context) {
	result, err := h.socialLinkUC.List(c.Request.Context(), parseListQuery(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", result)
}

// Create godoc
// @Summary      Create Social Link
// @Tags         social-links
// @Accept       json
// @Produce      json
// @Param        body  body      domain.SocialLinkRequest  true  "Social link"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Security     BearerAuth
// @Router       /social-links [post]
func (h *SocialLinkHandler) Create(c *gin.Context) {
	var req domain.SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	link, err := h.socialLinkUC.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Link criado com sucesso", link)
}

// Update godoc
// @Summary      Update Social Link
// @Tags         social-links
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Social link ID"
// @Param        body  body      domain.SocialLinkRequest  true  "Social link"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Security     BearerAuth
// @Router       /social-links/{id} [put]
func (h *SocialLinkHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req domain.SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	link, err := h.socialLinkUC.Update(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Link atualizado com sucesso", link)
}

// Delete godoc
// @Summary      Delete Social Link
// @Tags         social-links
// @Produce      json
// @Param        id  path  string  true  "Social link ID"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Security     BearerAuth
// @Router       /social-links/{id} [delete]
func (h *SocialLinkHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.socialLinkUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Link removido com sucesso", nil)
}
