package handler

import (
	"github.com/gin-gonic/gin"

	inventoryapp "github.com/lanzy-lanzy/tailoring/internal/application/inventory"
	"github.com/lanzy-lanzy/tailoring/internal/interfaces/http/middleware"
)

// FabricHandler handles fabric stock endpoints
type FabricHandler struct {
	BaseHandler
	fabricService *inventoryapp.FabricService
}

// NewFabricHandler creates a new FabricHandler
func NewFabricHandler(fabricService *inventoryapp.FabricService) *FabricHandler {
	return &FabricHandler{fabricService: fabricService}
}

// Create registers a new fabric
func (h *FabricHandler) Create(c *gin.Context) {
	var req inventoryapp.CreateFabricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.fabricService.Create(c.Request.Context(), req, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List lists fabrics
func (h *FabricHandler) List(c *gin.Context) {
	var filter inventoryapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	fabrics, total, err := h.fabricService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, fabrics, total, filter.Page, filter.PageSize)
}

// ListLowStock lists fabrics at or below the restock level
func (h *FabricHandler) ListLowStock(c *gin.Context) {
	fabrics, err := h.fabricService.ListLowStock(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, fabrics)
}

// Get returns one fabric
func (h *FabricHandler) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid fabric ID")
		return
	}

	resp, err := h.fabricService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update edits a fabric's details
func (h *FabricHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid fabric ID")
		return
	}

	var req inventoryapp.UpdateFabricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.fabricService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ApplyMovement applies a manual stock movement to a fabric
func (h *FabricHandler) ApplyMovement(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid fabric ID")
		return
	}
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req inventoryapp.StockMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.fabricService.ApplyMovement(c.Request.Context(), id, req, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RegisterRoutes registers fabric routes
func (h *FabricHandler) RegisterRoutes(rg *gin.RouterGroup) {
	fabrics := rg.Group("/fabrics")
	fabrics.GET("", h.List)
	fabrics.GET("/low-stock", h.ListLowStock)
	fabrics.GET("/:id", h.Get)

	admin := fabrics.Group("", middleware.RequireAdmin())
	admin.POST("", h.Create)
	admin.PUT("/:id", h.Update)
	admin.POST("/:id/movements", h.ApplyMovement)
}
