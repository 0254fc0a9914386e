package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

func newBarong(t *testing.T) *GarmentType {
	t.Helper()
	garmentType, err := NewGarmentType("Barong Tagalog", "Formal embroidered shirt",
		GarmentCategoryUpper, decimal.NewFromFloat(2.5), decimal.NewFromInt(1500))
	require.NoError(t, err)
	return garmentType
}

func TestNewGarmentType(t *testing.T) {
	t.Run("creates an active catalog entry", func(t *testing.T) {
		garmentType := newBarong(t)

		assert.Equal(t, "Barong Tagalog", garmentType.Name)
		assert.Equal(t, GarmentCategoryUpper, garmentType.Category)
		assert.True(t, garmentType.Active)
		assert.Empty(t, garmentType.AccessoryRequirements)
	})

	t.Run("rejects non-positive fabric meters", func(t *testing.T) {
		_, err := NewGarmentType("Barong", "", GarmentCategoryUpper, decimal.Zero, decimal.NewFromInt(1500))
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_FABRIC_METERS", domainErr.Code)
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		_, err := NewGarmentType("Barong", "", GarmentCategory("outer"), decimal.NewFromInt(2), decimal.NewFromInt(1500))
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CATEGORY", domainErr.Code)
	})

	t.Run("rejects a negative base price", func(t *testing.T) {
		_, err := NewGarmentType("Barong", "", GarmentCategoryUpper, decimal.NewFromInt(2), decimal.NewFromInt(-1))
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PRICE", domainErr.Code)
	})
}

func TestGarmentTypeAccessoryRequirements(t *testing.T) {
	t.Run("adds a per-unit requirement", func(t *testing.T) {
		garmentType := newBarong(t)
		accessoryID := uuid.New()

		req, err := garmentType.AddAccessoryRequirement(accessoryID, decimal.NewFromInt(8))
		require.NoError(t, err)
		assert.Equal(t, accessoryID, req.AccessoryID)
		assert.True(t, req.QuantityRequired.Equal(decimal.NewFromInt(8)))
		assert.Len(t, garmentType.AccessoryRequirements, 1)
	})

	t.Run("allows at most one requirement per accessory", func(t *testing.T) {
		garmentType := newBarong(t)
		accessoryID := uuid.New()

		_, err := garmentType.AddAccessoryRequirement(accessoryID, decimal.NewFromInt(8))
		require.NoError(t, err)

		_, err = garmentType.AddAccessoryRequirement(accessoryID, decimal.NewFromInt(2))
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DUPLICATE_ACCESSORY", domainErr.Code)
		assert.Len(t, garmentType.AccessoryRequirements, 1)
	})

	t.Run("rejects a non-positive per-unit quantity", func(t *testing.T) {
		garmentType := newBarong(t)

		_, err := garmentType.AddAccessoryRequirement(uuid.New(), decimal.Zero)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_QUANTITY", domainErr.Code)
	})

	t.Run("removes a requirement by accessory", func(t *testing.T) {
		garmentType := newBarong(t)
		keep := uuid.New()
		drop := uuid.New()
		_, err := garmentType.AddAccessoryRequirement(keep, decimal.NewFromInt(8))
		require.NoError(t, err)
		_, err = garmentType.AddAccessoryRequirement(drop, decimal.NewFromInt(1))
		require.NoError(t, err)

		require.NoError(t, garmentType.RemoveAccessoryRequirement(drop))
		require.Len(t, garmentType.AccessoryRequirements, 1)
		assert.Equal(t, keep, garmentType.AccessoryRequirements[0].AccessoryID)

		err = garmentType.RemoveAccessoryRequirement(drop)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}

func TestGarmentTypeRequiredMeasurements(t *testing.T) {
	upper, err := NewGarmentType("Barong", "", GarmentCategoryUpper, decimal.NewFromInt(2), decimal.NewFromInt(1500))
	require.NoError(t, err)
	lower, err := NewGarmentType("Slacks", "", GarmentCategoryLower, decimal.NewFromFloat(1.5), decimal.NewFromInt(800))
	require.NoError(t, err)
	both, err := NewGarmentType("Terno", "", GarmentCategoryBoth, decimal.NewFromInt(4), decimal.NewFromInt(3500))
	require.NoError(t, err)

	assert.Contains(t, upper.RequiredMeasurements(), "chest")
	assert.NotContains(t, upper.RequiredMeasurements(), "waist")

	assert.Contains(t, lower.RequiredMeasurements(), "inseam")
	assert.NotContains(t, lower.RequiredMeasurements(), "shoulder")

	fields := both.RequiredMeasurements()
	assert.Contains(t, fields, "chest")
	assert.Contains(t, fields, "inseam")
	assert.Len(t, fields, len(upper.RequiredMeasurements())+len(lower.RequiredMeasurements()))
}

func TestGarmentTypeFabricRequiredFor(t *testing.T) {
	garmentType := newBarong(t)

	assert.True(t, garmentType.FabricRequiredFor(1).Equal(decimal.NewFromFloat(2.5)))
	assert.True(t, garmentType.FabricRequiredFor(4).Equal(decimal.NewFromInt(10)))
}

func TestGarmentTypeActivation(t *testing.T) {
	garmentType := newBarong(t)

	garmentType.Deactivate()
	assert.False(t, garmentType.Active)

	garmentType.Activate()
	assert.True(t, garmentType.Active)
}

func TestGarmentTypeDefaultTailor(t *testing.T) {
	garmentType := newBarong(t)
	tailorID := uuid.New()

	garmentType.SetDefaultTailor(&tailorID)
	require.NotNil(t, garmentType.DefaultTailorID)
	assert.Equal(t, tailorID, *garmentType.DefaultTailorID)

	garmentType.SetDefaultTailor(nil)
	assert.Nil(t, garmentType.DefaultTailorID)
}
