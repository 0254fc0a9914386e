package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/lanzy-lanzy/tailoring/internal/domain/catalog"
	"github.com/lanzy-lanzy/tailoring/internal/domain/identity"
	"github.com/lanzy-lanzy/tailoring/internal/domain/inventory"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

// MockGarmentTypeRepository is a mock implementation of GarmentTypeRepository

type MockGarmentTypeRepository struct {
	mock.Mock
}

func (m *MockGarmentTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.GarmentType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.GarmentType), args.Error(1)
}

func (m *MockGarmentTypeRepository) FindByName(ctx context.Context, name string) (*catalog.GarmentType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.GarmentType), args.Error(1)
}

func (m *MockGarmentTypeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.GarmentType, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.GarmentType), args.Error(1)
}

func (m *MockGarmentTypeRepository) FindActive(ctx context.Context) ([]catalog.GarmentType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.GarmentType), args.Error(1)
}

func (m *MockGarmentTypeRepository) Save(ctx context.Context, garmentType *catalog.GarmentType) error {
	args := m.Called(ctx, garmentType)
	return args.Error(0)
}

func (m *MockGarmentTypeRepository) SaveWithLock(ctx context.Context, garmentType *catalog.GarmentType) error {
	args := m.Called(ctx, garmentType)
	return args.Error(0)
}

func (m *MockGarmentTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGarmentTypeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGarmentTypeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
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

// MockUserRepository is a mock implementation of UserRepository

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) FindActiveByRole(ctx context.Context, role identity.Role) ([]identity.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SaveWithLock(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
