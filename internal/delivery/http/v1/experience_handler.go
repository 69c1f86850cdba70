package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	experienceUC domain.ExperienceUsecase
}

func NewExperienceHandler(protected *gin.RouterGroup, experienceUC domain.ExperienceUsecase) {
	handler := &ExperienceHandler{experienceUC: experienceUC}

	experiences := protected.Group("/experiences")
	{
		experiences.GET("", handler.List)
		experiences.GET("/current", handler.Current)
		experiences.GET("/:id", handler.Get)
		experiences.POST("", handler.Create)
		experiences.PUT("/:id", handler.Update)
		experiences.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List Experiences
// @Description  Paginated list with search and employment-type filter.
// @Tags         experiences
// @Produce      json
// @Param        search    query  string  false  "Free-text search"
// @Param        category  query  string  false  "Employment type filter, 'all' disables"
// @Param        page      query  int     false  "1-based page"
// @Param        page_size  query  int     false  "Page size"
// @Success      200    {object}  response.Response
// @Security     BearerAuth
// @Router       /experiences [get]
func (h *ExperienceHandler) List(c *gin.Context) {
	result, err := h.experienceUC.List(c.Request.Context(), parseListQuery(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", result)
}

// Current godoc
// @Summary      Current Experiences
// @Tags         experiences
// @Produce      json
// @Success      200    {object}  response.Response
// @Security     BearerAuth
// @Router       /experiences/current [get]
func (h *ExperienceHandler) Current(c *gin.Context) {
	records, err := h.experienceUC.ListCurrent(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", records)
}

// Get godoc
// @Summary      Experience by ID
// @Tags         experiences
// @Produce      json
// @Param        id  path  string  true  "Experience ID"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Security     BearerAuth
// @Router       /experiences/{id} [get]
func (h *ExperienceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	exp, err := h.experienceUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", exp)
}

// Create godoc
// @Summary      Create Experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ExperienceRequest  true  "Experience"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Security     BearerAuth
// @Router       /experiences [post]
func (h *ExperienceHandler) Create(c *gin.Context) {
	var req domain.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	exp, err := h.experienceUC.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Experiência criada com sucesso", exp)
}

// Update godoc
// @Summary      Update Experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Experience ID"
// @Param        body  body      domain.ExperienceRequest  true  "Experience"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Security     BearerAuth
// @Router       /experiences/{id} [put]
func (h *ExperienceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req domain.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	exp, err := h.experienceUC.Update(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experiência atualizada com sucesso", exp)
}

// Delete godoc
// @Summary      Delete Experience
// @Tags         experiences
// @Produce      json
// @Param        id  path  string  true  "Experience ID"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Security     BearerAuth
// @Router       /experiences/{id} [delete]
func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.experienceUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experiência removida com sucesso", nil)
}
