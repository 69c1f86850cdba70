package v1

import (
	"fmt"
	"net/http"

	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(protected *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	resume := protected.Group("/resume")
	{
		resume.GET("/ats", handler.GenerateATS)
	}
}

// GenerateATS godoc
// @Summary      ATS Resume PDF
// @Description  Renders the ATS-friendly resume and returns it as a download.
// @Tags         resume
// @Produce      application/pdf
// @Success      200  {file}  file
// @Failure      401  {object}  response.Response
// @Security     BearerAuth
// @Router       /resume/ats [get]
func (h *ResumeHandler) GenerateATS(c *gin.Context) {
	pdf, filename, err := h.resumeUC.GenerateATS(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
