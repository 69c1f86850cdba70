package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type LanguageHandler struct {
	languageUC domain.LanguageUsecase
}

func NewLanguageHandler(protected *gin.RouterGroup, languageUC domain.LanguageUsecase) {
	handler := &LanguageHandler{languageUC: languageUC}

	languages := protected.Group("/languages")
	{
		languages.GET("", handler.List)
		languages.GET("/proficiency/:proficiency", handler.ListByProficiency)
		languages.POST("", handler.Create)
		languages.PUT("/:id", handler.Update)
		languages.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List Languages
// @Description  Paginated list with search and proficiency filter.
// @Tags         languages
// @Produce      json
// @Param        search    query  string  false  "Free-text search"
// @Param        category  query  string  false  "Proficiency filter, 'all' disables"
// @Param        page      query  int     false  "1-based page"
// @Param        page_size  query  int     false  "Page size"
// @Success      200    {object}  response.Response
// @Security     BearerAuth
// @Router       /languages [get]
func (h *LanguageHandler) List(c *gin.Context) {
	result, err := h.languageUC.List(c.Request.Context(), parseListQuery(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", result)
}

// ListByProficiency godoc
// @Summary      Languages by Proficiency
// @Tags         languages
// @Produce      json
// @Param        proficiency  path  string  true  "Proficiency"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Security     BearerAuth
// @Router       /languages/proficiency/{proficiency} [get]
func (h *LanguageHandler) ListByProficiency(c *gin.Context) {
	records, err := h.languageUC.ListByProficiency(c.Request.Context(), c.Param("proficiency"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", records)
}

// Create godoc
// @Summary      Create Language
// @Tags         languages
// @Accept       json
// @Produce      json
// @Param        body  body      domain.LanguageRequest  true  "Language"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Security     BearerAuth
// @Router       /languages [post]
func (h *LanguageHandler) Create(c *gin.Context) {
	var req domain.LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	lang, err := h.languageUC.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Idioma criado com sucesso", lang)
}

// Update godoc
// @Summary      Update Language
// @Tags         languages
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Language ID"
// @Param        body  body      domain.LanguageRequest  true  "Language"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Security     BearerAuth
// @Router       /languages/{id} [put]
func (h *LanguageHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req domain.LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	lang, err := h.languageUC.Update(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Idioma atualizado com sucesso", lang)
}

// Delete godoc
// @Summary      Delete Language
// @Tags         languages
// @Produce      json
// @Param        id  path  string  true  "Language ID"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Security     BearerAuth
// @Router       /languages/{id} [delete]
func (h *LanguageHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.languageUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Idioma removido com sucesso", nil)
}
