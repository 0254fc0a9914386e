package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// GarmentCategory determines which body measurements an order must capture
type GarmentCategory string

const (
	GarmentCategoryUpper GarmentCategory = "upper"
	GarmentCategoryLower GarmentCategory = "lower"
	GarmentCategoryBoth  GarmentCategory = "both"
)

// IsValid checks if the category is a valid GarmentCategory
func (c GarmentCategory) IsValid() bool {
	switch c {
	case GarmentCategoryUpper, GarmentCategoryLower, GarmentCategoryBoth:
		return true
	}
	return false
}

// String returns the string representation of GarmentCategory
func (c GarmentCategory) String() string {
	return string(c)
}

// Measurement field sets per garment category
var (
	upperMeasurements = []string{"chest", "shoulder", "sleeve_length", "arm_hole", "cuff", "neck"}
	lowerMeasurements = []string{"waist", "hips", "thigh", "knee", "hem", "inseam", "outseam", "rise"}
)

// AccessoryRequirement links a garment type to an accessory it consumes per unit
type AccessoryRequirement struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GarmentTypeID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_garment_accessory,priority:1"`
	AccessoryID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_garment_accessory,priority:2"`
	QuantityRequired decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName returns the table name for GORM
func (AccessoryRequirement) TableName() string {
	return "garment_type_accessories"
}

// NewAccessoryRequirement creates a new per-unit accessory requirement
func NewAccessoryRequirement(garmentTypeID, accessoryID uuid.UUID, quantity decimal.Decimal) (*AccessoryRequirement, error) {
	if accessoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACCESSORY", "Accessory ID cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Required quantity must be positive")
	}

	now := time.Now()
	return &AccessoryRequirement{
		ID:               uuid.New(),
		GarmentTypeID:    garmentTypeID,
		AccessoryID:      accessoryID,
		QuantityRequired: quantity,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// GarmentType is a catalog entry defining the fabric and accessory
// quantities consumed per unit ordered, plus the base selling price
type GarmentType struct {
	shared.BaseAggregateRoot
	Name                  string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description           string          `gorm:"type:text"`
	Category              GarmentCategory `gorm:"type:varchar(10);not null;default:'upper'"`
	EstimatedFabricMeters decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	BasePrice             decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DefaultTailorID       *uuid.UUID      `gorm:"type:uuid;index"`
	Active                bool            `gorm:"not null;default:true"`
	AccessoryRequirements []AccessoryRequirement `gorm:"foreignKey:GarmentTypeID"`
}

// TableName returns the table name for GORM
func (GarmentType) TableName() string {
	return "garment_types"
}

// NewGarmentType creates a new garment type
func NewGarmentType(name, description string, category GarmentCategory, fabricMeters, basePrice decimal.Decimal) (*GarmentType, error) {
	if err := validateGarmentTypeName(name); err != nil {
		return nil, err
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Garment category must be 'upper', 'lower', or 'both'")
	}
	if fabricMeters.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_FABRIC_METERS", "Estimated fabric meters must be positive")
	}
	if basePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Base price cannot be negative")
	}

	return &GarmentType{
		BaseAggregateRoot:     shared.NewBaseAggregateRoot(),
		Name:                  strings.TrimSpace(name),
		Description:           description,
		Category:              category,
		EstimatedFabricMeters: fabricMeters,
		BasePrice:             basePrice,
		Active:                true,
		AccessoryRequirements: make([]AccessoryRequirement, 0),
	}, nil
}

// Update updates the garment type's catalog details
func (g *GarmentType) Update(name, description string, category GarmentCategory, fabricMeters, basePrice decimal.Decimal) error {
	if err := validateGarmentTypeName(name); err != nil {
		return err
	}
	if !category.IsValid() {
		return shared.NewDomainError("INVALID_CATEGORY", "Garment category must be 'upper', 'lower', or 'both'")
	}
	if fabricMeters.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_FABRIC_METERS", "Estimated fabric meters must be positive")
	}
	if basePrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Base price cannot be negative")
	}

	g.Name = strings.TrimSpace(name)
	g.Description = description
	g.Category = category
	g.EstimatedFabricMeters = fabricMeters
	g.BasePrice = basePrice
	g.UpdatedAt = time.Now()
	g.IncrementVersion()

	return nil
}

// SetDefaultTailor sets the tailor that new orders of this type are assigned to
func (g *GarmentType) SetDefaultTailor(tailorID *uuid.UUID) {
	g.DefaultTailorID = tailorID
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
}

// AddAccessoryRequirement adds a per-unit accessory requirement
// At most one requirement is allowed per accessory
func (g *GarmentType) AddAccessoryRequirement(accessoryID uuid.UUID, quantity decimal.Decimal) (*AccessoryRequirement, error) {
	for _, req := range g.AccessoryRequirements {
		if req.AccessoryID == accessoryID {
			return nil, shared.NewDomainError("DUPLICATE_ACCESSORY", "Accessory requirement already exists for this garment type")
		}
	}

	req, err := NewAccessoryRequirement(g.ID, accessoryID, quantity)
	if err != nil {
		return nil, err
	}

	g.AccessoryRequirements = append(g.AccessoryRequirements, *req)
	g.UpdatedAt = time.Now()
	g.IncrementVersion()

	return req, nil
}

// RemoveAccessoryRequirement removes the requirement for the given accessory
func (g *GarmentType) RemoveAccessoryRequirement(accessoryID uuid.UUID) error {
	for i, req := range g.AccessoryRequirements {
		if req.AccessoryID == accessoryID {
			g.AccessoryRequirements = append(g.AccessoryRequirements[:i], g.AccessoryRequirements[i+1:]...)
			g.UpdatedAt = time.Now()
			g.IncrementVersion()
			return nil
		}
	}
	return shared.NewDomainError("NOT_FOUND", "Accessory requirement not found")
}

// Activate makes the garment type orderable
func (g *GarmentType) Activate() {
	g.Active = true
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
}

// Deactivate removes the garment type from the orderable catalog
func (g *GarmentType) Deactivate() {
	g.Active = false
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
}

// RequiredMeasurements returns the measurement fields an order of this
// garment type must capture, derived from the category
func (g *GarmentType) RequiredMeasurements() []string {
	switch g.Category {
	case GarmentCategoryUpper:
		return append([]string(nil), upperMeasurements...)
	case GarmentCategoryLower:
		return append([]string(nil), lowerMeasurements...)
	case GarmentCategoryBoth:
		fields := append([]string(nil), upperMeasurements...)
		return append(fields, lowerMeasurements...)
	}
	return nil
}

// FabricRequiredFor returns the fabric meters consumed by the given order quantity
func (g *GarmentType) FabricRequiredFor(quantity int) decimal.Decimal {
	return g.EstimatedFabricMeters.Mul(decimal.NewFromInt(int64(quantity)))
}

func validateGarmentTypeName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Garment type name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Garment type name cannot exceed 100 characters")
	}
	return nil
}
