package inventory

import (
	"strings"
	"time"

	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AccessoryUnit is the unit an accessory is stocked and sold in
type AccessoryUnit string

const (
	AccessoryUnitPieces AccessoryUnit = "pcs"
	AccessoryUnitMeters AccessoryUnit = "meters"
	AccessoryUnitYards  AccessoryUnit = "yards"
	AccessoryUnitRolls  AccessoryUnit = "rolls"
	AccessoryUnitPacks  AccessoryUnit = "packs"
)

// IsValid checks if the unit is a valid AccessoryUnit
func (u AccessoryUnit) IsValid() bool {
	switch u {
	case AccessoryUnitPieces, AccessoryUnitMeters, AccessoryUnitYards, AccessoryUnitRolls, AccessoryUnitPacks:
		return true
	}
	return false
}

// String returns the string representation of AccessoryUnit
func (u AccessoryUnit) String() string {
	return string(u)
}

// LowAccessoryStockQuantity is the threshold below which an accessory is flagged as low stock
var LowAccessoryStockQuantity = decimal.NewFromInt(10)

// Accessory represents a sewing accessory (buttons, zippers, thread, ...)
type Accessory struct {
	shared.BaseAggregateRoot
	Name          string          `gorm:"type:varchar(100);not null;index"`
	Unit          AccessoryUnit   `gorm:"type:varchar(10);not null;default:'pcs'"`
	StockQuantity decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	PricePerUnit  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName returns the table name for GORM
func (Accessory) TableName() string {
	return "accessories"
}

// NewAccessory creates a new accessory item
func NewAccessory(name string, unit AccessoryUnit, stockQuantity, pricePerUnit decimal.Decimal) (*Accessory, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Accessory name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Accessory name cannot exceed 100 characters")
	}
	if !unit.IsValid() {
		return nil, shared.NewDomainError("INVALID_UNIT", "Invalid accessory unit")
	}
	if stockQuantity.IsNegative() {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}
	if pricePerUnit.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price per unit cannot be negative")
	}

	return &Accessory{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Unit:              unit,
		StockQuantity:     stockQuantity,
		PricePerUnit:      pricePerUnit,
	}, nil
}

// Update updates the accessory's descriptive fields and price
func (a *Accessory) Update(name string, unit AccessoryUnit, pricePerUnit decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Accessory name cannot be empty")
	}
	if !unit.IsValid() {
		return shared.NewDomainError("INVALID_UNIT", "Invalid accessory unit")
	}
	if pricePerUnit.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price per unit cannot be negative")
	}

	a.Name = strings.TrimSpace(name)
	a.Unit = unit
	a.PricePerUnit = pricePerUnit
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

// HasSufficientStock returns true if at least the given quantity is on hand
func (a *Accessory) HasSufficientStock(quantity decimal.Decimal) bool {
	return a.StockQuantity.GreaterThanOrEqual(quantity)
}

// Deduct removes the given quantity from stock
func (a *Accessory) Deduct(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Deduction must be positive")
	}
	if !a.HasSufficientStock(quantity) {
		return shared.NewDomainError("INSUFFICIENT_STOCK", "Insufficient accessory stock")
	}

	a.StockQuantity = a.StockQuantity.Sub(quantity)
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

// Restore returns the given quantity to stock (order edit or cancellation)
func (a *Accessory) Restore(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Restored quantity must be positive")
	}

	a.StockQuantity = a.StockQuantity.Add(quantity)
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

// Adjust sets the stock to an absolute value (manual correction)
func (a *Accessory) Adjust(quantity decimal.Decimal) error {
	if quantity.IsNegative() {
		return shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}

	a.StockQuantity = quantity
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

// IsLowStock returns true when the accessory is below the low-stock threshold
func (a *Accessory) IsLowStock() bool {
	return a.StockQuantity.LessThan(LowAccessoryStockQuantity)
}
