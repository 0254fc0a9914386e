package handler

import (
	"github.com/gin-gonic/gin"

	inventoryapp "github.com/lanzy-lanzy/tailoring/internal/application/inventory"
	"github.com/lanzy-lanzy/tailoring/internal/interfaces/http/middleware"
)

// InventoryLogHandler exposes the stock movement audit trail
type InventoryLogHandler struct {
	BaseHandler
	logService *inventoryapp.LogService
}

// NewInventoryLogHandler creates a new InventoryLogHandler
func NewInventoryLogHandler(logService *inventoryapp.LogService) *InventoryLogHandler {
	return &InventoryLogHandler{logService: logService}
}

// List lists stock movements, filterable by item and action
func (h *InventoryLogHandler) List(c *gin.Context) {
	var filter inventoryapp.LogListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	logs, total, err := h.logService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, logs, total, filter.Page, filter.PageSize)
}

// ListByOrder lists the stock movements an order caused
func (h *InventoryLogHandler) ListByOrder(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	logs, err := h.logService.ListByOrder(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, logs)
}

// RegisterRoutes registers inventory log routes
func (h *InventoryLogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	logs := rg.Group("/inventory-logs", middleware.RequireAdmin())
	logs.GET("", h.List)

	rg.GET("/orders/:id/inventory-logs", middleware.RequireAdmin(), h.ListByOrder)
}
