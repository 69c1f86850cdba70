package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type EducationHandler struct {
	educationUC domain.EducationUsecase
}

func NewEducationHandler(protected *gin.RouterGroup, educationUC domain.EducationUsecase) {
	handler := &EducationHandler{educationUC: educationUC}

	educations := protected.Group("/educations")
	{
		educations.GET("", handler.List)
		educations.GET("/degree/:degree", handler.ListByDegree)
		educations.POST("", handler.Create)
		educations.PUT("/:id", handler.Update)
		educations.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List Educations
// @Description  Paginated list with search and degree filter.
// @Tags         educations
// @Produce      json
// @Param        search    query  string  false  "Free-text search"
// @Param        category  query  string  false  "Degree filter, 'all' disables"
// @Param        page      query  int     false  "1-based page"
// @Param        page_size  query  int     false  "Page size"
// @Success      200    {object}  response.Response
// @Security     BearerAuth
// @Router       /educations [get]
func (h *EducationHandler) List(c *gin.Context) {
	result, err := h.educationUC.List(c.Request.Context(), parseListQuery(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", result)
}

// ListByDegree godoc
// @Summary      Educations by Degree
// @Tags         educations
// @Produce      json
// @Param        degree  path  string  true  "Degree"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Security     BearerAuth
// @Router       /educations/degree/{degree} [get]
func (h *EducationHandler) ListByDegree(c *gin.Context) {
	records, err := h.educationUC.ListByDegree(c.Request.Context(), c.Param("degree"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", records)
}

// Create godoc
// @Summary      Create Education
// @Tags         educations
// @Accept       json
// @Produce      json
// @Param        body  body      domain.EducationRequest  true  "Education"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Security     BearerAuth
// @Router       /educations [post]
func (h *EducationHandler) Create(c *gin.Context) {
	var req domain.EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	edu, err := h.educationUC.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Formação criada com sucesso", edu)
}

// Update godoc
// @Summary      Update Education
// @Tags         educations
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Education ID"
// @Param        body  body      domain.EducationRequest  true  "Education"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Security     BearerAuth
// @Router       /educations/{id} [put]
func (h *EducationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req domain.EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	edu, err := h.educationUC.Update(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Formação atualizada com sucesso", edu)
}

// Delete godoc
// @Summary      Delete Education
// @Tags         educations
// @Produce      json
// @Param        id  path  string  true  "Education ID"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Security     BearerAuth
// @Router       /educations/{id} [delete]
func (h *EducationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.educationUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Formação removida com sucesso", nil)
}
