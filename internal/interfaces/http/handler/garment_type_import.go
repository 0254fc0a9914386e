package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/lanzy-lanzy/tailoring/internal/application/catalog"
	"github.com/lanzy-lanzy/tailoring/internal/interfaces/http/middleware"
)

// GarmentTypeImportHandler handles bulk garment catalog CSV uploads
type GarmentTypeImportHandler struct {
	BaseHandler
	importService *catalogapp.GarmentTypeImportService
}

// NewGarmentTypeImportHandler creates a new GarmentTypeImportHandler
func NewGarmentTypeImportHandler(importService *catalogapp.GarmentTypeImportService) *GarmentTypeImportHandler {
	return &GarmentTypeImportHandler{importService: importService}
}

// Validate dry-runs an uploaded CSV and reports row errors without importing
func (h *GarmentTypeImportHandler) Validate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "A CSV file is required in the 'file' form field")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Failed to read the uploaded file")
		return
	}
	defer file.Close()

	result, err := h.importService.Validate(c.Request.Context(), userID, fileHeader.Filename, file)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Import validates and persists an uploaded garment type CSV
func (h *GarmentTypeImportHandler) Import(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "A CSV file is required in the 'file' form field")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Failed to read the uploaded file")
		return
	}
	defer file.Close()

	result, err := h.importService.Import(c.Request.Context(), userID, fileHeader.Filename, file)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// RegisterRoutes registers garment type import routes
func (h *GarmentTypeImportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	garmentTypes := rg.Group("/garment-types", middleware.RequireAdmin())
	garmentTypes.POST("/import/validate", h.Validate)
	garmentTypes.POST("/import", h.Import)
}
