package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(protected *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}

	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("", handler.Get)
		dashboard.GET("/completion", handler.Completion)
		dashboard.GET("/ats-score", handler.AtsScore)
	}
}

// Get godoc
// @Summary      Dashboard
// @Description  Profile summary, statistics, quick actions, recent activity and the ATS score in one payload.
// @Tags         dashboard
// @Produce      json
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Security     BearerAuth
// @Router       /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	dashboard, err := h.dashboardUC.GetDashboard(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", dashboard)
}

// Completion godoc
// @Summary      Profile Completion
// @Tags         dashboard
// @Produce      json
// @Success      200    {object}  response.Response
// @Security     BearerAuth
// @Router       /dashboard/completion [get]
func (h *DashboardHandler) Completion(c *gin.Context) {
	completion, err := h.dashboardUC.GetProfileCompletion(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", gin.H{
		"profileCompletion": completion,
		"completionColor":   domain.TierColor(completion),
	})
}

// AtsScore godoc
// @Summary      ATS Score
// @Tags         dashboard
// @Produce      json
// @Success      200    {object}  response.Response
// @Security     BearerAuth
// @Router       /dashboard/ats-score [get]
func (h *DashboardHandler) AtsScore(c *gin.Context) {
	score, err := h.dashboardUC.GetAtsScore(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "OK", score)
}
