package inventory

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lanzy-lanzy/tailoring/internal/domain/inventory"
)

const (
	fabricCSVHeader    = "name,color,stock_meters,price_per_meter\n"
	accessoryCSVHeader = "name,unit,stock_quantity,price_per_unit\n"
)

func newStockImportService() (*StockImportService, *MockFabricRepository, *MockAccessoryRepository, *MockInventoryLogRepository) {
	fabrics := new(MockFabricRepository)
	accessories := new(MockAccessoryRepository)
	logs := new(MockInventoryLogRepository)
	return NewStockImportService(fabrics, accessories, logs, zap.NewNop()), fabrics, accessories, logs
}

func TestStockImportService_ValidateFabrics(t *testing.T) {
	t.Run("reports a clean file as validated without writing", func(t *testing.T) {
		service, fabrics, _, logs := newStockImportService()

		csv := fabricCSVHeader +
			"Piña Cotton,Ivory,30,450\n" +
			"Linen,White,12.5,250\n"

		result, err := service.ValidateFabrics(context.Background(), uuid.New(), "fabrics.csv", strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, "validated", result.State)
		assert.Equal(t, 2, result.ValidRows)
		assert.Equal(t, 0, result.ErrorRows)
		fabrics.AssertNotCalled(t, "Save")
		logs.AssertNotCalled(t, "Save")
	})

	t.Run("collects row errors for bad fields", func(t *testing.T) {
		service, _, _, _ := newStockImportService()

		csv := fabricCSVHeader +
			",White,10,250\n" +
			"Linen,White,-3,250\n"

		result, err := service.ValidateFabrics(context.Background(), uuid.New(), "fabrics.csv", strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, "failed", result.State)
		assert.Equal(t, 2, result.ErrorRows)
		assert.NotEmpty(t, result.Errors)
	})
}

func TestStockImportService_ImportFabrics(t *testing.T) {
	t.Run("persists every row and logs opening stock", func(t *testing.T) {
		service, fabrics, _, logs := newStockImportService()
		fabrics.On("Save", mock.Anything, mock.AnythingOfType("*inventory.Fabric")).Return(nil)
		logs.On("Save", mock.Anything, mock.AnythingOfType("*inventory.InventoryLog")).Return(nil)

		csv := fabricCSVHeader +
			"Piña Cotton,Ivory,30,450\n" +
			"Linen,White,12.5,250\n"

		result, err := service.ImportFabrics(context.Background(), uuid.New(), "fabrics.csv", strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, "completed", result.State)
		assert.Equal(t, 2, result.Imported)
		fabrics.AssertNumberOfCalls(t, "Save", 2)
		logs.AssertNumberOfCalls(t, "Save", 2)

		saved := fabrics.Calls[0].Arguments.Get(1).(*inventory.Fabric)
		assert.Equal(t, "Piña Cotton", saved.Name)
		assert.Equal(t, "Ivory", saved.Color)
		assert.True(t, saved.StockMeters.Equal(decimal.NewFromInt(30)))

		log := logs.Calls[0].Arguments.Get(1).(*inventory.InventoryLog)
		assert.Equal(t, inventory.LogActionAdd, log.Action)
		assert.True(t, log.PreviousStock.IsZero())
		assert.True(t, log.NewStock.Equal(decimal.NewFromInt(30)))
		assert.Contains(t, log.Notes, "fabrics.csv")
	})

	t.Run("writes no log for a row with zero opening stock", func(t *testing.T) {
		service, fabrics, _, logs := newStockImportService()
		fabrics.On("Save", mock.Anything, mock.Anything).Return(nil)

		csv := fabricCSVHeader + "Linen,White,,250\n"

		result, err := service.ImportFabrics(context.Background(), uuid.New(), "fabrics.csv", strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, 1, result.Imported)
		logs.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects the whole file when any row is invalid", func(t *testing.T) {
		service, fabrics, _, _ := newStockImportService()

		csv := fabricCSVHeader +
			"Piña Cotton,Ivory,30,450\n" +
			"Linen,White,10,\n"

		result, err := service.ImportFabrics(context.Background(), uuid.New(), "fabrics.csv", strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, "failed", result.State)
		assert.Equal(t, 0, result.Imported)
		assert.Equal(t, 1, result.ErrorRows)
		fabrics.AssertNotCalled(t, "Save")
	})
}

func TestStockImportService_ImportAccessories(t *testing.T) {
	t.Run("persists every row and logs opening stock", func(t *testing.T) {
		service, _, accessories, logs := newStockImportService()
		accessories.On("Save", mock.Anything, mock.AnythingOfType("*inventory.Accessory")).Return(nil)
		logs.On("Save", mock.Anything, mock.AnythingOfType("*inventory.InventoryLog")).Return(nil)

		csv := accessoryCSVHeader +
			"Shell buttons,pcs,200,5\n" +
			"Cotton thread,rolls,40,35\n"

		result, err := service.ImportAccessories(context.Background(), uuid.New(), "accessories.csv", strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, "completed", result.State)
		assert.Equal(t, 2, result.Imported)
		accessories.AssertNumberOfCalls(t, "Save", 2)

		saved := accessories.Calls[0].Arguments.Get(1).(*inventory.Accessory)
		assert.Equal(t, "Shell buttons", saved.Name)
		assert.Equal(t, inventory.AccessoryUnitPieces, saved.Unit)
		assert.True(t, saved.StockQuantity.Equal(decimal.NewFromInt(200)))
	})

	t.Run("rejects a row with an unknown unit", func(t *testing.T) {
		service, _, accessories, _ := newStockImportService()

		csv := accessoryCSVHeader + "Thread,spools,40,35\n"

		result, err := service.ImportAccessories(context.Background(), uuid.New(), "accessories.csv", strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, "failed", result.State)
		assert.Equal(t, 1, result.ErrorRows)
		accessories.AssertNotCalled(t, "Save")
	})
}
