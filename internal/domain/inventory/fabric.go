package inventory

import (
	"strings"
	"time"

	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Fabric represents a fabric roll tracked in meters
type Fabric struct {
	shared.BaseAggregateRoot
	Name          string          `gorm:"type:varchar(100);not null;index"`
	Color         string          `gorm:"type:varchar(50);not null"`
	StockMeters   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	PricePerMeter decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName returns the table name for GORM
func (Fabric) TableName() string {
	return "fabrics"
}

// LowFabricStockMeters is the threshold below which a fabric is flagged as low stock
var LowFabricStockMeters = decimal.NewFromInt(5)

// NewFabric creates a new fabric item
func NewFabric(name, color string, stockMeters, pricePerMeter decimal.Decimal) (*Fabric, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Fabric name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Fabric name cannot exceed 100 characters")
	}
	if strings.TrimSpace(color) == "" {
		return nil, shared.NewDomainError("INVALID_COLOR", "Fabric color cannot be empty")
	}
	if stockMeters.IsNegative() {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock meters cannot be negative")
	}
	if pricePerMeter.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price per meter cannot be negative")
	}

	return &Fabric{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Color:             strings.TrimSpace(color),
		StockMeters:       stockMeters,
		PricePerMeter:     pricePerMeter,
	}, nil
}

// Update updates the fabric's descriptive fields and price
func (f *Fabric) Update(name, color string, pricePerMeter decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Fabric name cannot be empty")
	}
	if strings.TrimSpace(color) == "" {
		return shared.NewDomainError("INVALID_COLOR", "Fabric color cannot be empty")
	}
	if pricePerMeter.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price per meter cannot be negative")
	}

	f.Name = strings.TrimSpace(name)
	f.Color = strings.TrimSpace(color)
	f.PricePerMeter = pricePerMeter
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	return nil
}

// HasSufficientStock returns true if at least the given meters are on hand
func (f *Fabric) HasSufficientStock(meters decimal.Decimal) bool {
	return f.StockMeters.GreaterThanOrEqual(meters)
}

// Deduct removes the given meters from stock
func (f *Fabric) Deduct(meters decimal.Decimal) error {
	if meters.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Deduction must be positive")
	}
	if !f.HasSufficientStock(meters) {
		return shared.NewDomainError("INSUFFICIENT_STOCK", "Insufficient fabric stock")
	}

	f.StockMeters = f.StockMeters.Sub(meters)
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	return nil
}

// Restore returns the given meters to stock (order edit or cancellation)
func (f *Fabric) Restore(meters decimal.Decimal) error {
	if meters.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Restored quantity must be positive")
	}

	f.StockMeters = f.StockMeters.Add(meters)
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	return nil
}

// Adjust sets the stock to an absolute value (manual correction)
func (f *Fabric) Adjust(meters decimal.Decimal) error {
	if meters.IsNegative() {
		return shared.NewDomainError("INVALID_STOCK", "Stock meters cannot be negative")
	}

	f.StockMeters = meters
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	return nil
}

// IsLowStock returns true when the fabric is below the low-stock threshold
func (f *Fabric) IsLowStock() bool {
	return f.StockMeters.LessThan(LowFabricStockMeters)
}
