package workshop

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/lanzy-lanzy/tailoring/internal/domain/catalog"
	"github.com/lanzy-lanzy/tailoring/internal/domain/finance"
	"github.com/lanzy-lanzy/tailoring/internal/domain/notification"
	"github.com/lanzy-lanzy/tailoring/internal/domain/partner"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
	"github.com/lanzy-lanzy/tailoring/internal/domain/trade"
	"github.com/lanzy-lanzy/tailoring/internal/domain/workshop"
)

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

// MockReadySMSSender is a mock implementation of ReadySMSSender

type MockReadySMSSender struct {
	mock.Mock
}

func (m *MockReadySMSSender) SendOrderReady(ctx context.Context, orderID uuid.UUID, phone, customerName, orderNumber, garmentTypeName string, balance decimal.Decimal) {
	m.Called(ctx, orderID, phone, customerName, orderNumber, garmentTypeName, balance)
}

// Test fixtures

func newTestOrder(t *testing.T) *trade.Order {
	t.Helper()
	order, err := trade.NewOrder(uuid.New(), uuid.New(), uuid.New(), 2, decimal.NewFromInt(500), nil)
	if err != nil {
		t.Fatalf("failed to create test order: %v", err)
	}
	return order
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

func newTestCustomer(t *testing.T) *partner.Customer {
	t.Helper()
	customer, err := partner.NewCustomer("Ana Reyes", "09171234567", "Poblacion, Dipolog City", "")
	if err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}
	return customer
}
