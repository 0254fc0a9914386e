package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/lanzy-lanzy/tailoring/internal/application/partner"
)

// CustomerImportHandler handles bulk customer CSV uploads
type CustomerImportHandler struct {
	BaseHandler
	importService *partnerapp.CustomerImportService
}

// NewCustomerImportHandler creates a new CustomerImportHandler
func NewCustomerImportHandler(importService *partnerapp.CustomerImportService) *CustomerImportHandler {
	return &CustomerImportHandler{importService: importService}
}

// Validate dry-runs an uploaded CSV and reports row errors without importing
func (h *CustomerImportHandler) Validate(c *gin.Context) {
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

// Import validates and persists an uploaded customer CSV
func (h *CustomerImportHandler) Import(c *gin.Context) {
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

// RegisterRoutes registers customer import routes
func (h *CustomerImportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	customers.POST("/import/validate", h.Validate)
	customers.POST("/import", h.Import)
}
