package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CertificationHandler struct {
	certificationUC domain.CertificationUsecase
}

func NewCertificationHandler(protected *gin.RouterGroup, certificationUC domain.CertificationUsecase) {
	handler := &CertificationHandler{certificationUC: certificationUC}

	certifications := protected.Group("/certifications")
	{
		certifications.GET("", handler.List)
		certifications.GET("/expired", handler.ListExpired)
		certifications.POST("", handler.Create)
		certifications.PUT("/:id", handler.Update)
		certifications.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List Certifications
// @Description  Paginated list. The category filter matches the computed status: active, expired or no_expiration.
// @Tags         certifications
// @Produce      json
// @Param        search    query  string  false  "Free-text search"
// @Param        category  query  string  false  "Status filter, 'all' disables"
// @Param        page      query  int     false  "1-based page"
// @Param        page_size  query  int     false  "Page size"
// @Success      200    {object}  response.Response
// @Security     BearerAuth
// @Router       /certifications [get]
func (h *CertificationHandler) List(c *gin.Context) {
	result, err := h.certificationUC.List(c.Request.Context(), parseListQuery(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", result)
}

// ListExpired godoc
// @Summary      Expired Certifications
// @Tags         certifications
// @Produce      json
// @Success      200    {object}  response.Response
// @Security     BearerAuth
// @Router       /certifications/expired [get]
func (h *CertificationHandler) ListExpired(c *gin.Context) {
	records, err := h.certificationUC.ListExpired(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", records)
}

// Create godoc
// @Summary      Create Certification
// @Tags         certifications
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CertificationRequest  true  "Certification"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Security     BearerAuth
// @Router       /certifications [post]
func (h *CertificationHandler) Create(c *gin.Context) {
	var req domain.CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	cert, err := h.certificationUC.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Certificação criada com sucesso", cert)
}

// Update godoc
// @Summary      Update Certification
// @Tags         certifications
// @Accept       json
// @Produce      json
// @Param        id    path      string                       true  "Certification ID"
// @Param        body  body      domain.CertificationRequest  true  "Certification"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Security     BearerAuth
// @Router       /certifications/{id} [put]
func (h *CertificationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req domain.CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	cert, err := h.certificationUC.Update(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Certificação atualizada com sucesso", cert)
}

// Delete godoc
// @Summary      Delete Certification
// @Tags         certifications
// @Produce      json
// @Param        id  path  string  true  "Certification ID"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Security     BearerAuth
// @Router       /certifications/{id} [delete]
func (h *CertificationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.certificationUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Certificação removida com sucesso", nil)
}
