package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/internal/middleware"
	"blog-platform/internal/service"
)

// DashboardHandler handles the admin dashboard aggregate.
type DashboardHandler struct {
	dashboardService service.DashboardServiceInterface
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Summary handles GET /api/v1/dashboard
func (h *DashboardHandler) Summary(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	summary, err := h.dashboardService.Summary(c.Request.Context(), identity)
	if err != nil {
		respondServiceError(c, err, "dashboard summary")
		return
	}

	respond(c, http.StatusOK, "dashboard retrieved", summary)
}
