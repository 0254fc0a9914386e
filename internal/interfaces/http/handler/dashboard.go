package handler

import (
	"github.com/gin-gonic/gin"

	reportapp "github.com/lanzy-lanzy/tailoring/internal/application/report"
	"github.com/lanzy-lanzy/tailoring/internal/interfaces/http/middleware"
)

// DashboardHandler serves the admin and tailor dashboards
type DashboardHandler struct {
	BaseHandler
	dashboardService *reportapp.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *reportapp.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Admin returns the shop-wide overview
func (h *DashboardHandler) Admin(c *gin.Context) {
	resp, err := h.dashboardService.AdminDashboard(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Tailor returns the authenticated tailor's personal overview
func (h *DashboardHandler) Tailor(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.dashboardService.TailorDashboard(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RegisterRoutes registers dashboard routes
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	dashboard.GET("/admin", middleware.RequireAdmin(), h.Admin)
	dashboard.GET("/tailor", h.Tailor)
}
