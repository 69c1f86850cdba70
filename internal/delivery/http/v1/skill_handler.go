package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(protected *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	skills := protected.Group("/skills")
	{
		skills.GET("", handler.List)
		skills.GET("/category/:category", handler.ListByCategory)
		skills.POST("", handler.Create)
		skills.PUT("/:id", handler.Update)
		skills.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List Skills
// @Description  Paginated list with search and category filter.
// @Tags         skills
// @Produce      json
// @Param        search    query  string  false  "Free-text search"
// @Param        category  query  string  false  "Category filter, 'all' disables"
// @Param        page      query  int     false  "1-based page"
// @Param        page_size  query  int     false  "Page size"
// @Success      200    {object}  response.Response
// @Security     BearerAuth
// @Router       /skills [get]
func (h *SkillHandler) List(c *gin.Context) {
	result, err := h.skillUC.List(c.Request.Context(), parseListQuery(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", result)
}

// ListByCategory godoc
// @Summary      Skills by Category
// @Tags         skills
// @Produce      json
// @Param        category  path  string  true  "Skill category"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Security     BearerAuth
// @Router       /skills/category/{category} [get]
func (h *SkillHandler) ListByCategory(c *gin.Context) {
	records, err := h.skillUC.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", records)
}

// Create godoc
// @Summary      Create Skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        body  body      domain.SkillRequest  true  "Skill"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Security     BearerAuth
// @Router       /skills [post]
func (h *SkillHandler) Create(c *gin.Context) {
	var req domain.SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	skill, err := h.skillUC.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Habilidade criada com sucesso", skill)
}

// Update godoc
// @Summary      Update Skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Skill ID"
// @Param        body  body      domain.SkillRequest  true  "Skill"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Security     BearerAuth
// @Router       /skills/{id} [put]
func (h *SkillHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req domain.SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	skill, err := h.skillUC.Update(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Habilidade atualizada com sucesso", skill)
}

// Delete godoc
// @Summary      Delete Skill
// @Tags         skills
// @Produce      json
// @Param        id  path  string  true  "Skill ID"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Security     BearerAuth
// @Router       /skills/{id} [delete]
func (h *SkillHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.skillUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Habilidade removida com sucesso", nil)
}
