package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	workshopapp "github.com/lanzy-lanzy/tailoring/internal/application/workshop"
	"github.com/lanzy-lanzy/tailoring/internal/interfaces/http/middleware"
)

// CommissionHandler handles tailor commission endpoints
type CommissionHandler struct {
	BaseHandler
	commissionService *workshopapp.CommissionService
}

// NewCommissionHandler creates a new CommissionHandler
func NewCommissionHandler(commissionService *workshopapp.CommissionService) *CommissionHandler {
	return &CommissionHandler{commissionService: commissionService}
}

// List lists credited commissions across tailors
func (h *CommissionHandler) List(c *gin.Context) {
	var filter workshopapp.CommissionListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	commissions, total, err := h.commissionService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, commissions, total, filter.Page, filter.PageSize)
}

// ListMine lists the authenticated tailor's own commissions
func (h *CommissionHandler) ListMine(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter workshopapp.CommissionListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	commissions, total, err := h.commissionService.ListMine(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, commissions, total, filter.Page, filter.PageSize)
}

// MarkPaid records that a commission has been paid out
func (h *CommissionHandler) MarkPaid(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid commission ID")
		return
	}

	resp, err := h.commissionService.MarkPaid(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Summary aggregates a tailor's earnings for a weekly or monthly period
func (h *CommissionHandler) Summary(c *gin.Context) {
	tailorID, err := uuid.Parse(c.Query("tailor_id"))
	if err != nil {
		h.BadRequest(c, "Query parameter 'tailor_id' must be a valid UUID")
		return
	}
	h.summarize(c, tailorID)
}

// MySummary aggregates the authenticated tailor's own earnings
func (h *CommissionHandler) MySummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	h.summarize(c, userID)
}

func (h *CommissionHandler) summarize(c *gin.Context, tailorID uuid.UUID) {
	period := c.DefaultQuery("period", "weekly")

	ref := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			h.BadRequest(c, "Query parameter 'date' must be formatted YYYY-MM-DD")
			return
		}
		ref = parsed
	}

	resp, err := h.commissionService.Summary(c.Request.Context(), tailorID, period, ref)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RegisterRoutes registers commission routes
func (h *CommissionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	commissions := rg.Group("/commissions")
	commissions.GET("/mine", h.ListMine)
	commissions.GET("/mine/summary", h.MySummary)

	admin := commissions.Group("", middleware.RequireAdmin())
	admin.GET("", h.List)
	admin.GET("/summary", h.Summary)
	admin.POST("/:id/mark-paid", h.MarkPaid)
}
