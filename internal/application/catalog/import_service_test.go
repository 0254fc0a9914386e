package catalog

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

	"github.com/lanzy-lanzy/tailoring/internal/domain/catalog"
)

const garmentTypeCSVHeader = "name,description,category,estimated_fabric_meters,base_price\n"

func newGarmentTypeImportService(repo *MockGarmentTypeRepository) *GarmentTypeImportService {
	return NewGarmentTypeImportService(repo, zap.NewNop())
}

func TestGarmentTypeImportService_Validate(t *testing.T) {
	t.Run("reports a clean file as validated without writing", func(t *testing.T) {
		repo := new(MockGarmentTypeRepository)
		repo.On("ExistsByName", mock.Anything, mock.Anything).Return(false, nil)
		service := newGarmentTypeImportService(repo)

		csv := garmentTypeCSVHeader +
			"Barong Tagalog,Formal embroidered shirt,upper,2.5,1500\n" +
			"Slacks,,lower,1.5,800\n"

		result, err := service.Validate(context.Background(), uuid.New(), "catalog.csv", strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, "validated", result.State)
		assert.Equal(t, 2, result.ValidRows)
		assert.Equal(t, 0, result.ErrorRows)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("collects a row error for an unknown category", func(t *testing.T) {
		repo := new(MockGarmentTypeRepository)
		repo.On("ExistsByName", mock.Anything, mock.Anything).Return(false, nil)
		service := newGarmentTypeImportService(repo)

		csv := garmentTypeCSVHeader + "Cape,,outer,2,1000\n"

		result, err := service.Validate(context.Background(), uuid.New(), "catalog.csv", strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, "failed", result.State)
		assert.Equal(t, 1, result.ErrorRows)
		assert.NotEmpty(t, result.Errors)
	})
}

func TestGarmentTypeImportService_Import(t *testing.T) {
	t.Run("persists every row of a valid file", func(t *testing.T) {
		repo := new(MockGarmentTypeRepository)
		repo.On("ExistsByName", mock.Anything, mock.Anything).Return(false, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.GarmentType")).Return(nil)
		service := newGarmentTypeImportService(repo)

		csv := garmentTypeCSVHeader +
			"Barong Tagalog,Formal embroidered shirt,upper,2.5,1500\n" +
			"Terno,Matching two-piece,both,4,3500\n"

		result, err := service.Import(context.Background(), uuid.New(), "catalog.csv", strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, "completed", result.State)
		assert.Equal(t, 2, result.Imported)
		repo.AssertNumberOfCalls(t, "Save", 2)

		saved := repo.Calls[len(repo.Calls)-1].Arguments.Get(1).(*catalog.GarmentType)
		assert.Equal(t, "Terno", saved.Name)
		assert.Equal(t, catalog.GarmentCategoryBoth, saved.Category)
		assert.True(t, saved.EstimatedFabricMeters.Equal(decimal.NewFromInt(4)))
		assert.True(t, saved.BasePrice.Equal(decimal.NewFromInt(3500)))
	})

	t.Run("rejects the whole file when any row is invalid", func(t *testing.T) {
		repo := new(MockGarmentTypeRepository)
		repo.On("ExistsByName", mock.Anything, mock.Anything).Return(false, nil)
		service := newGarmentTypeImportService(repo)

		csv := garmentTypeCSVHeader +
			"Barong Tagalog,,upper,2.5,1500\n" +
			",,upper,2,1000\n"

		result, err := service.Import(context.Background(), uuid.New(), "catalog.csv", strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, "failed", result.State)
		assert.Equal(t, 0, result.Imported)
		assert.Equal(t, 1, result.ErrorRows)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects names that already exist in the catalog", func(t *testing.T) {
		repo := new(MockGarmentTypeRepository)
		repo.On("ExistsByName", mock.Anything, "Barong Tagalog").Return(true, nil)
		service := newGarmentTypeImportService(repo)

		csv := garmentTypeCSVHeader + "Barong Tagalog,,upper,2.5,1500\n"

		result, err := service.Import(context.Background(), uuid.New(), "catalog.csv", strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, 0, result.Imported)
		assert.Equal(t, 1, result.ErrorRows)
		repo.AssertNotCalled(t, "Save")
	})
}
