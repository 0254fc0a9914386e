package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanzy-lanzy/tailoring/internal/domain/catalog"
)

// CreateGarmentTypeRequest is the request to add a catalog entry
type CreateGarmentTypeRequest struct {
	Name                  string          `json:"name" binding:"required"`
	Description           string          `json:"description"`
	Category              string          `json:"category" binding:"required"`
	EstimatedFabricMeters decimal.Decimal `json:"estimated_fabric_meters" binding:"required"`
	BasePrice             decimal.Decimal `json:"base_price" binding:"required"`
	DefaultTailorID       *uuid.UUID      `json:"default_tailor_id"`
}

// UpdateGarmentTypeRequest is the request to update a catalog entry
// Nil fields are left unchanged
type UpdateGarmentTypeRequest struct {
	Name                  *string          `json:"name"`
	Description           *string          `json:"description"`
	Category              *string          `json:"category"`
	EstimatedFabricMeters *decimal.Decimal `json:"estimated_fabric_meters"`
	BasePrice             *decimal.Decimal `json:"base_price"`
	DefaultTailorID       *uuid.UUID       `json:"default_tailor_id"`
	Active                *bool            `json:"active"`
}

// AccessoryRequirementRequest adds or replaces a per-unit accessory requirement
type AccessoryRequirementRequest struct {
	AccessoryID      uuid.UUID       `json:"accessory_id" binding:"required"`
	QuantityRequired decimal.Decimal `json:"quantity_required" binding:"required"`
}

// GarmentTypeListFilter carries list query parameters
type GarmentTypeListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
	Active   *bool  `form:"active"`
}

// AccessoryRequirementResponse is the API representation of a requirement
type AccessoryRequirementResponse struct {
	AccessoryID      uuid.UUID       `json:"accessory_id"`
	QuantityRequired decimal.Decimal `json:"quantity_required"`
}

// GarmentTypeResponse is the API representation of a garment type
type GarmentTypeResponse struct {
	ID                    uuid.UUID                      `json:"id"`
	Name                  string                         `json:"name"`
	Description           string                         `json:"description"`
	Category              string                         `json:"category"`
	EstimatedFabricMeters decimal.Decimal                `json:"estimated_fabric_meters"`
	BasePrice             decimal.Decimal                `json:"base_price"`
	DefaultTailorID       *uuid.UUID                     `json:"default_tailor_id"`
	Active                bool                           `json:"active"`
	RequiredMeasurements  []string                       `json:"required_measurements"`
	AccessoryRequirements []AccessoryRequirementResponse `json:"accessory_requirements"`
	CreatedAt             time.Time                      `json:"created_at"`
	UpdatedAt             time.Time                      `json:"updated_at"`
}

// ToGarmentTypeResponse converts a domain garment type to its API representation
func ToGarmentTypeResponse(g *catalog.GarmentType) GarmentTypeResponse {
	requirements := make([]AccessoryRequirementResponse, len(g.AccessoryRequirements))
	for i, req := range g.AccessoryRequirements {
		requirements[i] = AccessoryRequirementResponse{
			AccessoryID:      req.AccessoryID,
			QuantityRequired: req.QuantityRequired,
		}
	}

	return GarmentTypeResponse{
		ID:                    g.ID,
		Name:                  g.Name,
		Description:           g.Description,
		Category:              g.Category.String(),
		EstimatedFabricMeters: g.EstimatedFabricMeters,
		BasePrice:             g.BasePrice,
		DefaultTailorID:       g.DefaultTailorID,
		Active:                g.Active,
		RequiredMeasurements:  g.RequiredMeasurements(),
		AccessoryRequirements: requirements,
		CreatedAt:             g.CreatedAt,
		UpdatedAt:             g.UpdatedAt,
	}
}

// ToGarmentTypeResponses converts a slice of domain garment types
func ToGarmentTypeResponses(garmentTypes []catalog.GarmentType) []GarmentTypeResponse {
	responses := make([]GarmentTypeResponse, len(garmentTypes))
	for i := range garmentTypes {
		responses[i] = ToGarmentTypeResponse(&garmentTypes[i])
	}
	return responses
}
