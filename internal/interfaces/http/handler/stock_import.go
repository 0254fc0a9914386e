package handler

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	inventoryapp "github.com/lanzy-lanzy/tailoring/internal/application/inventory"
	"github.com/lanzy-lanzy/tailoring/internal/interfaces/http/middleware"
)

// StockImportHandler handles bulk fabric and accessory CSV uploads
type StockImportHandler struct {
	BaseHandler
	importService *inventoryapp.StockImportService
}

// NewStockImportHandler creates a new StockImportHandler
func NewStockImportHandler(importService *inventoryapp.StockImportService) *StockImportHandler {
	return &StockImportHandler{importService: importService}
}

type stockImportFunc func(ctx *gin.Context, userID uuid.UUID, fileName string, reader io.Reader) (*inventoryapp.ImportStockResult, error)

func (h *StockImportHandler) handleUpload(c *gin.Context, run stockImportFunc) {
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

	result, err := run(c, userID, fileHeader.Filename, file)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ValidateFabrics dry-runs an uploaded fabric CSV without importing
func (h *StockImportHandler) ValidateFabrics(c *gin.Context) {
	h.handleUpload(c, func(ctx *gin.Context, userID uuid.UUID, fileName string, reader io.Reader) (*inventoryapp.ImportStockResult, error) {
		return h.importService.ValidateFabrics(ctx.Request.Context(), userID, fileName, reader)
	})
}

// ImportFabrics validates and persists an uploaded fabric CSV
func (h *StockImportHandler) ImportFabrics(c *gin.Context) {
	h.handleUpload(c, func(ctx *gin.Context, userID uuid.UUID, fileName string, reader io.Reader) (*inventoryapp.ImportStockResult, error) {
		return h.importService.ImportFabrics(ctx.Request.Context(), userID, fileName, reader)
	})
}

// ValidateAccessories dry-runs an uploaded accessory CSV without importing
func (h *StockImportHandler) ValidateAccessories(c *gin.Context) {
	h.handleUpload(c, func(ctx *gin.Context, userID uuid.UUID, fileName string, reader io.Reader) (*inventoryapp.ImportStockResult, error) {
		return h.importService.ValidateAccessories(ctx.Request.Context(), userID, fileName, reader)
	})
}

// ImportAccessories validates and persists an uploaded accessory CSV
func (h *StockImportHandler) ImportAccessories(c *gin.Context) {
	h.handleUpload(c, func(ctx *gin.Context, userID uuid.UUID, fileName string, reader io.Reader) (*inventoryapp.ImportStockResult, error) {
		return h.importService.ImportAccessories(ctx.Request.Context(), userID, fileName, reader)
	})
}

// RegisterRoutes registers stock import routes
func (h *StockImportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	fabrics := rg.Group("/fabrics", middleware.RequireAdmin())
	fabrics.POST("/import/validate", h.ValidateFabrics)
	fabrics.POST("/import", h.ImportFabrics)

	accessories := rg.Group("/accessories", middleware.RequireAdmin())
	accessories.POST("/import/validate", h.ValidateAccessories)
	accessories.POST("/import", h.ImportAccessories)
}
