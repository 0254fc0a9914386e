package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/lanzy-lanzy/tailoring/internal/application/catalog"
	"github.com/lanzy-lanzy/tailoring/internal/interfaces/http/middleware"
)

// GarmentTypeHandler handles the garment catalog endpoints
type GarmentTypeHandler struct {
	BaseHandler
	garmentTypeService *catalogapp.GarmentTypeService
}

// NewGarmentTypeHandler creates a new GarmentTypeHandler
func NewGarmentTypeHandler(garmentTypeService *catalogapp.GarmentTypeService) *GarmentTypeHandler {
	return &GarmentTypeHandler{garmentTypeService: garmentTypeService}
}

// Create adds a garment type to the catalog
func (h *GarmentTypeHandler) Create(c *gin.Context) {
	var req catalogapp.CreateGarmentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.garmentTypeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List lists garment types
func (h *GarmentTypeHandler) List(c *gin.Context) {
	var filter catalogapp.GarmentTypeListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	garmentTypes, total, err := h.garmentTypeService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, garmentTypes, total, filter.Page, filter.PageSize)
}

// ListActive lists orderable garment types for the intake form
func (h *GarmentTypeHandler) ListActive(c *gin.Context) {
	garmentTypes, err := h.garmentTypeService.ListActive(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, garmentTypes)
}

// Get returns one garment type
func (h *GarmentTypeHandler) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid garment type ID")
		return
	}

	resp, err := h.garmentTypeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update edits a garment type
func (h *GarmentTypeHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid garment type ID")
		return
	}

	var req catalogapp.UpdateGarmentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.garmentTypeService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetAccessoryRequirement adds or replaces a per-unit accessory requirement
func (h *GarmentTypeHandler) SetAccessoryRequirement(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid garment type ID")
		return
	}

	var req catalogapp.AccessoryRequirementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.garmentTypeService.SetAccessoryRequirement(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RemoveAccessoryRequirement drops an accessory requirement
func (h *GarmentTypeHandler) RemoveAccessoryRequirement(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid garment type ID")
		return
	}
	accessoryID, err := uuid.Parse(c.Param("accessoryId"))
	if err != nil {
		h.BadRequest(c, "Invalid accessory ID")
		return
	}

	resp, err := h.garmentTypeService.RemoveAccessoryRequirement(c.Request.Context(), id, accessoryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete retires a garment type from the catalog
func (h *GarmentTypeHandler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid garment type ID")
		return
	}

	if err := h.garmentTypeService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers garment catalog routes
func (h *GarmentTypeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	garmentTypes := rg.Group("/garment-types")
	garmentTypes.GET("", h.List)
	garmentTypes.GET("/active", h.ListActive)
	garmentTypes.GET("/:id", h.Get)

	admin := garmentTypes.Group("", middleware.RequireAdmin())
	admin.POST("", h.Create)
	admin.PUT("/:id", h.Update)
	admin.DELETE("/:id", h.Delete)
	admin.PUT("/:id/accessories", h.SetAccessoryRequirement)
	admin.DELETE("/:id/accessories/:accessoryId", h.RemoveAccessoryRequirement)
}
