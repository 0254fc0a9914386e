package handler

import (
	"github.com/gin-gonic/gin"

	inventoryapp "github.com/lanzy-lanzy/tailoring/internal/application/inventory"
	"github.com/lanzy-lanzy/tailoring/internal/interfaces/http/middleware"
)

// AccessoryHandler handles accessory stock endpoints
type AccessoryHandler struct {
	BaseHandler
	accessoryService *inventoryapp.AccessoryService
}

// NewAccessoryHandler creates a new AccessoryHandler
func NewAccessoryHandler(accessoryService *inventoryapp.AccessoryService) *AccessoryHandler {
	return &AccessoryHandler{accessoryService: accessoryService}
}

// Create registers a new accessory
func (h *AccessoryHandler) Create(c *gin.Context) {
	var req inventoryapp.CreateAccessoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.accessoryService.Create(c.Request.Context(), req, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List lists accessories
func (h *AccessoryHandler) List(c *gin.Context) {
	var filter inventoryapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	accessories, total, err := h.accessoryService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, accessories, total, filter.Page, filter.PageSize)
}

// ListLowStock lists accessories at or below the restock level
func (h *AccessoryHandler) ListLowStock(c *gin.Context) {
	accessories, err := h.accessoryService.ListLowStock(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, accessories)
}

// Get returns one accessory
func (h *AccessoryHandler) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid accessory ID")
		return
	}

	resp, err := h.accessoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update edits an accessory's details
func (h *AccessoryHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid accessory ID")
		return
	}

	var req inventoryapp.UpdateAccessoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.accessoryService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ApplyMovement applies a manual stock movement to an accessory
func (h *AccessoryHandler) ApplyMovement(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid accessory ID")
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

	resp, err := h.accessoryService.ApplyMovement(c.Request.Context(), id, req, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RegisterRoutes registers accessory routes
func (h *AccessoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	accessories := rg.Group("/accessories")
	accessories.GET("", h.List)
	accessories.GET("/low-stock", h.ListLowStock)
	accessories.GET("/:id", h.Get)

	admin := accessories.Group("", middleware.RequireAdmin())
	admin.POST("", h.Create)
	admin.PUT("/:id", h.Update)
	admin.POST("/:id/movements", h.ApplyMovement)
}
