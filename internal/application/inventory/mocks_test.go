package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/lanzy-lanzy/tailoring/internal/domain/inventory"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

// MockFabricRepository is a mock implementation of FabricRepository

type MockFabricRepository struct {
	mock.Mock
}

func (m *MockFabricRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Fabric, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Fabric), args.Error(1)
}

func (m *MockFabricRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Fabric, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.Fabric), args.Error(1)
}

func (m *MockFabricRepository) FindLowStock(ctx context.Context) ([]inventory.Fabric, error) {
	args := m.Called(ctx)
	return args.Get(0).([]inventory.Fabric), args.Error(1)
}

func (m *MockFabricRepository) Save(ctx context.Context, fabric *inventory.Fabric) error {
	args := m.Called(ctx, fabric)
	return args.Error(0)
}

func (m *MockFabricRepository) SaveWithLock(ctx context.Context, fabric *inventory.Fabric) error {
	args := m.Called(ctx, fabric)
	return args.Error(0)
}

func (m *MockFabricRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFabricRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockAccessoryRepository is a mock implementation of AccessoryRepository

type MockAccessoryRepository struct {
	mock.Mock
}

func (m *MockAccessoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Accessory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Accessory), args.Error(1)
}

func (m *MockAccessoryRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]inventory.Accessory, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]inventory.Accessory), args.Error(1)
}

func (m *MockAccessoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Accessory, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.Accessory), args.Error(1)
}

func (m *MockAccessoryRepository) FindLowStock(ctx context.Context) ([]inventory.Accessory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]inventory.Accessory), args.Error(1)
}

func (m *MockAccessoryRepository) Save(ctx context.Context, accessory *inventory.Accessory) error {
	args := m.Called(ctx, accessory)
	return args.Error(0)
}

func (m *MockAccessoryRepository) SaveWithLock(ctx context.Context, accessory *inventory.Accessory) error {
	args := m.Called(ctx, accessory)
	return args.Error(0)
}

func (m *MockAccessoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAccessoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockInventoryLogRepository is a mock implementation of InventoryLogRepository

type MockInventoryLogRepository struct {
	mock.Mock
}

func (m *MockInventoryLogRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.InventoryLog, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.InventoryLog), args.Error(1)
}

func (m *MockInventoryLogRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]inventory.InventoryLog, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]inventory.InventoryLog), args.Error(1)
}

func (m *MockInventoryLogRepository) Save(ctx context.Context, log *inventory.InventoryLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockInventoryLogRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}
