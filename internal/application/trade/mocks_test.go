package trade

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/lanzy-lanzy/tailoring/internal/domain/catalog"
	"github.com/lanzy-lanzy/tailoring/internal/domain/finance"
	"github.com/lanzy-lanzy/tailoring/internal/domain/identity"
	"github.com/lanzy-lanzy/tailoring/internal/domain/inventory"
	"github.com/lanzy-lanzy/tailoring/internal/domain/notification"
	"github.com/lanzy-lanzy/tailoring/internal/domain/partner"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
	"github.com/lanzy-lanzy/tailoring/internal/domain/trade"
	"github.com/lanzy-lanzy/tailoring/internal/domain/workshop"
)

// MockOrderRepository is a mock implementation of OrderRepository

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*trade.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]trade.Order, error) {
	args := m.Called(ctx, customerID, filter)
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByStatus(ctx context.Context, status trade.OrderStatus, filter shared.Filter) ([]trade.Order, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) SaveWithLock(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context, status trade.OrderStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

// MockCustomerRepository is a mock implementation of CustomerRepository

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Search(ctx context.Context, query string, limit int) ([]partner.Customer, error) {
	args := m.Called(ctx, query, limit)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) SaveWithLock(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByContactNumber(ctx context.Context, contactNumber string) (bool, error) {
	args := m.Called(ctx, contactNumber)
	return args.Bool(0), args.Error(1)
}

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

// MockTaskRepository is a mock implementation of TaskRepository

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*workshop.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workshop.Task), args.Error(1)
}

func (m *MockTaskRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) (*workshop.Task, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workshop.Task), args.Error(1)
}

func (m *MockTaskRepository) FindAll(ctx context.Context, filter shared.Filter) ([]workshop.Task, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]workshop.Task), args.Error(1)
}

func (m *MockTaskRepository) FindByTailor(ctx context.Context, tailorID uuid.UUID, filter shared.Filter) ([]workshop.Task, error) {
	args := m.Called(ctx, tailorID, filter)
	return args.Get(0).([]workshop.Task), args.Error(1)
}

func (m *MockTaskRepository) Save(ctx context.Context, task *workshop.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) SaveWithLock(ctx context.Context, task *workshop.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskRepository) CountOpenByTailor(ctx context.Context, tailorID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tailorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskRepository) CountByTailorAndStatus(ctx context.Context, tailorID uuid.UUID, status workshop.TaskStatus) (int64, error) {
	args := m.Called(ctx, tailorID, status)
	return args.Get(0).(int64), args.Error(1)
}

// MockCommissionRepository is a mock implementation of CommissionRepository

type MockCommissionRepository struct {
	mock.Mock
}

func (m *MockCommissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*workshop.Commission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workshop.Commission), args.Error(1)
}

func (m *MockCommissionRepository) FindByTask(ctx context.Context, taskID uuid.UUID) (*workshop.Commission, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workshop.Commission), args.Error(1)
}

func (m *MockCommissionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]workshop.Commission, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]workshop.Commission), args.Error(1)
}

func (m *MockCommissionRepository) FindByTailorInRange(ctx context.Context, tailorID uuid.UUID, from, to time.Time) ([]workshop.Commission, error) {
	args := m.Called(ctx, tailorID, from, to)
	return args.Get(0).([]workshop.Commission), args.Error(1)
}

func (m *MockCommissionRepository) FindInRange(ctx context.Context, from, to time.Time) ([]workshop.Commission, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]workshop.Commission), args.Error(1)
}

func (m *MockCommissionRepository) Save(ctx context.Context, commission *workshop.Commission) error {
	args := m.Called(ctx, commission)
	return args.Error(0)
}

func (m *MockCommissionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockPaymentRepository is a mock implementation of PaymentRepository

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByPaymentNumber(ctx context.Context, paymentNumber string) (*finance.Payment, error) {
	args := m.Called(ctx, paymentNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.Payment, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]finance.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]finance.Payment, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]finance.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Save(ctx context.Context, payment *finance.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) TotalCompletedByOrder(ctx context.Context, orderID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) TotalCompletedInRange(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
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

// mockTxRepos hands a fixed set of repository mocks to code running
// inside a transaction scope
type mockTxRepos struct {
	orders      trade.OrderRepository
	fabrics     inventory.FabricRepository
	accessories inventory.AccessoryRepository
	logs        inventory.InventoryLogRepository
	tasks       workshop.TaskRepository
	payments    finance.PaymentRepository
}

func (r *mockTxRepos) Orders() trade.OrderRepository                { return r.orders }
func (r *mockTxRepos) Fabrics() inventory.FabricRepository          { return r.fabrics }
func (r *mockTxRepos) Accessories() inventory.AccessoryRepository   { return r.accessories }
func (r *mockTxRepos) InventoryLogs() inventory.InventoryLogRepository { return r.logs }
func (r *mockTxRepos) Tasks() workshop.TaskRepository               { return r.tasks }
func (r *mockTxRepos) Payments() finance.PaymentRepository          { return r.payments }

// recordingScope satisfies TransactionScope without a database. It counts
// executions and treats an error from the unit of work as a rollback.
type recordingScope struct {
	repos      TransactionalRepositories
	executions int
	rollbacks  int
}

func (s *recordingScope) Execute(ctx context.Context, fn func(TransactionalRepositories) error) error {
	s.executions++
	if err := fn(s.repos); err != nil {
		s.rollbacks++
		return err
	}
	return nil
}

// MockNotifier is a mock implementation of Notifier

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyUser(ctx context.Context, recipientID uuid.UUID, notifType notification.Type, title, message string, referenceID uuid.UUID) {
	m.Called(ctx, recipientID, notifType, title, message, referenceID)
}

func (m *MockNotifier) NotifyAdmins(ctx context.Context, notifType notification.Type, title, message string, referenceID uuid.UUID) {
	m.Called(ctx, notifType, title, message, referenceID)
}

// Test fixtures

func newTestCustomer(t *testing.T) *partner.Customer {
	t.Helper()
	customer, err := partner.NewCustomer("Ana Reyes", "09171234567", "Poblacion, Dipolog City", "")
	if err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}
	return customer
}

func newTestGarmentType(t *testing.T) *catalog.GarmentType {
	t.Helper()
	garmentType, err := catalog.NewGarmentType("Barong Tagalog", "Formal wear", catalog.GarmentCategoryUpper,
		decimal.NewFromInt(2), decimal.NewFromInt(500))
	if err != nil {
		t.Fatalf("failed to create test garment type: %v", err)
	}
	return garmentType
}

func newTestFabric(t *testing.T, stockMeters int64) *inventory.Fabric {
	t.Helper()
	fabric, err := inventory.NewFabric("Piña Cotton", "Cream", decimal.NewFromInt(stockMeters), decimal.NewFromInt(150))
	if err != nil {
		t.Fatalf("failed to create test fabric: %v", err)
	}
	return fabric
}

func newTestAccessory(t *testing.T, stock int64) *inventory.Accessory {
	t.Helper()
	accessory, err := inventory.NewAccessory("Shell Button", inventory.AccessoryUnitPieces, decimal.NewFromInt(stock), decimal.NewFromInt(5))
	if err != nil {
		t.Fatalf("failed to create test accessory: %v", err)
	}
	return accessory
}

func newTestTailor(t *testing.T, username string) *identity.User {
	t.Helper()
	user, err := identity.NewUser(username, username+"@tailoring.local", "password123", "Test Tailor", identity.RoleTailor)
	if err != nil {
		t.Fatalf("failed to create test tailor: %v", err)
	}
	return user
}

// newTestOrder builds a pending order priced from the garment type's base price
func newTestOrder(t *testing.T, garmentType *catalog.GarmentType, fabric *inventory.Fabric, quantity int) *trade.Order {
	t.Helper()
	order, err := trade.NewOrder(uuid.New(), garmentType.ID, fabric.ID, quantity, garmentType.BasePrice, nil)
	if err != nil {
		t.Fatalf("failed to create test order: %v", err)
	}
	return order
}
