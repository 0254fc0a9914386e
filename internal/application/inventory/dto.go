package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanzy-lanzy/tailoring/internal/domain/inventory"
)

// CreateFabricRequest is the request to register a fabric
type CreateFabricRequest struct {
	Name          string          `json:"name" binding:"required"`
	Color         string          `json:"color" binding:"required"`
	StockMeters   decimal.Decimal `json:"stock_meters"`
	PricePerMeter decimal.Decimal `json:"price_per_meter" binding:"required"`
}

// UpdateFabricRequest is the request to update a fabric's details
// Stock is changed through stock movement operations, not here
type UpdateFabricRequest struct {
	Name          *string          `json:"name"`
	Color         *string          `json:"color"`
	PricePerMeter *decimal.Decimal `json:"price_per_meter"`
}

// CreateAccessoryRequest is the request to register an accessory
type CreateAccessoryRequest struct {
	Name          string          `json:"name" binding:"required"`
	Unit          string          `json:"unit" binding:"required"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	PricePerUnit  decimal.Decimal `json:"price_per_unit" binding:"required"`
}

// UpdateAccessoryRequest is the request to update an accessory's details
type UpdateAccessoryRequest struct {
	Name         *string          `json:"name"`
	Unit         *string          `json:"unit"`
	PricePerUnit *decimal.Decimal `json:"price_per_unit"`
}

// StockMovementRequest applies a manual stock movement to an item
type StockMovementRequest struct {
	Action   string          `json:"action" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	Notes    string          `json:"notes"`
}

// ListFilter carries list query parameters for stock items
type ListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
}

// LogListFilter carries list query parameters for inventory logs
type LogListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	ItemType string `form:"item_type"`
	ItemID   string `form:"item_id"`
	Action   string `form:"action"`
}

// FabricResponse is the API representation of a fabric
type FabricResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Color         string          `json:"color"`
	StockMeters   decimal.Decimal `json:"stock_meters"`
	PricePerMeter decimal.Decimal `json:"price_per_meter"`
	LowStock      bool            `json:"low_stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// AccessoryResponse is the API representation of an accessory
type AccessoryResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	PricePerUnit  decimal.Decimal `json:"price_per_unit"`
	LowStock      bool            `json:"low_stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// InventoryLogResponse is the API representation of a stock movement
type InventoryLogResponse struct {
	ID            uuid.UUID       `json:"id"`
	ItemType      string          `json:"item_type"`
	ItemID        uuid.UUID       `json:"item_id"`
	ItemName      string          `json:"item_name"`
	Action        string          `json:"action"`
	Quantity      decimal.Decimal `json:"quantity"`
	PreviousStock decimal.Decimal `json:"previous_stock"`
	NewStock      decimal.Decimal `json:"new_stock"`
	OrderID       *uuid.UUID      `json:"order_id,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	PerformedBy   *uuid.UUID      `json:"performed_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToFabricResponse converts a domain fabric to its API representation
func ToFabricResponse(f *inventory.Fabric) FabricResponse {
	return FabricResponse{
		ID:            f.ID,
		Name:          f.Name,
		Color:         f.Color,
		StockMeters:   f.StockMeters,
		PricePerMeter: f.PricePerMeter,
		LowStock:      f.IsLowStock(),
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

// ToFabricResponses converts a slice of domain fabrics
func ToFabricResponses(fabrics []inventory.Fabric) []FabricResponse {
	responses := make([]FabricResponse, len(fabrics))
	for i := range fabrics {
		responses[i] = ToFabricResponse(&fabrics[i])
	}
	return responses
}

// ToAccessoryResponse converts a domain accessory to its API representation
func ToAccessoryResponse(a *inventory.Accessory) AccessoryResponse {
	return AccessoryResponse{
		ID:            a.ID,
		Name:          a.Name,
		Unit:          a.Unit.String(),
		StockQuantity: a.StockQuantity,
		PricePerUnit:  a.PricePerUnit,
		LowStock:      a.IsLowStock(),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// ToAccessoryResponses converts a slice of domain accessories
func ToAccessoryResponses(accessories []inventory.Accessory) []AccessoryResponse {
	responses := make([]AccessoryResponse, len(accessories))
	for i := range accessories {
		responses[i] = ToAccessoryResponse(&accessories[i])
	}
	return responses
}

// ToInventoryLogResponse converts a domain log to its API representation
func ToInventoryLogResponse(l *inventory.InventoryLog) InventoryLogResponse {
	return InventoryLogResponse{
		ID:            l.ID,
		ItemType:      string(l.ItemType),
		ItemID:        l.ItemID,
		ItemName:      l.ItemName,
		Action:        string(l.Action),
		Quantity:      l.Quantity,
		PreviousStock: l.PreviousStock,
		NewStock:      l.NewStock,
		OrderID:       l.OrderID,
		Notes:         l.Notes,
		PerformedBy:   l.PerformedBy,
		CreatedAt:     l.CreatedAt,
	}
}

// ToInventoryLogResponses converts a slice of domain logs
func ToInventoryLogResponses(logs []inventory.InventoryLog) []InventoryLogResponse {
	responses := make([]InventoryLogResponse, len(logs))
	for i := range logs {
		responses[i] = ToInventoryLogResponse(&logs[i])
	}
	return responses
}
