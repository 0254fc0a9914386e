package trade

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of a tailoring order
type OrderStatus string

const (
	OrderStatusPending         OrderStatus = "pending"
	OrderStatusInProgress      OrderStatus = "in_progress"
	OrderStatusCompleted       OrderStatus = "completed"
	OrderStatusDelivered       OrderStatus = "delivered"
	OrderStatusForAdjustment   OrderStatus = "for_adjustment"
	OrderStatusReadyForReclaim OrderStatus = "ready_for_reclaim"
	OrderStatusCancelled       OrderStatus = "cancelled"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted,
		OrderStatusDelivered, OrderStatusForAdjustment, OrderStatusReadyForReclaim,
		OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusInProgress || target == OrderStatusCancelled
	case OrderStatusInProgress:
		return target == OrderStatusCompleted || target == OrderStatusCancelled
	case OrderStatusCompleted:
		return target == OrderStatusDelivered || target == OrderStatusForAdjustment
	case OrderStatusForAdjustment:
		return target == OrderStatusReadyForReclaim || target == OrderStatusCancelled
	case OrderStatusReadyForReclaim:
		return target == OrderStatusDelivered
	case OrderStatusDelivered, OrderStatusCancelled:
		return false // Terminal states
	}
	return false
}

// PaymentStatus summarizes how much of the order total has been collected
type PaymentStatus string

const (
	PaymentStatusUnpaid    PaymentStatus = "unpaid"
	PaymentStatusPartial   PaymentStatus = "partial"
	PaymentStatusFullyPaid PaymentStatus = "fully_paid"
)

// DepositRate is the fraction of the order total required up front
var DepositRate = decimal.NewFromFloat(0.5)

// NewOrderNumber generates an order number of the form ORD-XXXXXXXX
func NewOrderNumber() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand is not expected to fail; fall back to the UUID space
		return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
	}
	return "ORD-" + strings.ToUpper(hex.EncodeToString(buf))
}

// OrderAccessory snapshots an accessory deduction made for an order
type OrderAccessory struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccessoryID   uuid.UUID       `gorm:"type:uuid;not null"`
	AccessoryName string          `gorm:"type:varchar(100);not null"`
	QuantityUsed  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt     time.Time
}

// TableName returns the table name for GORM
func (OrderAccessory) TableName() string {
	return "order_accessories"
}

// Order is the aggregate root for a tailoring order
// It carries the garment selection, measurements, pricing, and lifecycle status
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber   string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	GarmentTypeID uuid.UUID       `gorm:"type:uuid;not null;index"`
	FabricID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity      int             `gorm:"not null;default:1"`
	Measurements  string          `gorm:"type:jsonb;not null;default:'{}'"`
	Status        OrderStatus     `gorm:"type:varchar(20);not null;default:'pending';index"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DepositAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	BalanceAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	DueDate       *time.Time
	Notes         string     `gorm:"type:text"`
	CompletedDate *time.Time `gorm:"index"`
	Accessories   []OrderAccessory `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new pending order
// The total is unitPrice * quantity; deposit and balance start at the 50% split
func NewOrder(customerID, garmentTypeID, fabricID uuid.UUID, quantity int, unitPrice decimal.Decimal, measurements map[string]string) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if garmentTypeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_GARMENT_TYPE", "Garment type ID cannot be empty")
	}
	if fabricID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FABRIC", "Fabric ID cannot be empty")
	}
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	if unitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price must be positive")
	}

	encoded, err := encodeMeasurements(measurements)
	if err != nil {
		return nil, err
	}

	total := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	deposit := total.Mul(DepositRate).Round(2)

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       NewOrderNumber(),
		CustomerID:        customerID,
		GarmentTypeID:     garmentTypeID,
		FabricID:          fabricID,
		Quantity:          quantity,
		Measurements:      encoded,
		Status:            OrderStatusPending,
		TotalAmount:       total,
		DepositAmount:     deposit,
		BalanceAmount:     total.Sub(deposit),
		Accessories:       make([]OrderAccessory, 0),
	}

	order.AddDomainEvent(NewOrderCreatedEvent(order))

	return order, nil
}

// AddAccessoryUsage snapshots an accessory deduction against the order
func (o *Order) AddAccessoryUsage(accessoryID uuid.UUID, accessoryName string, quantityUsed decimal.Decimal) error {
	if accessoryID == uuid.Nil {
		return shared.NewDomainError("INVALID_ACCESSORY", "Accessory ID cannot be empty")
	}
	if quantityUsed.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity used must be positive")
	}

	o.Accessories = append(o.Accessories, OrderAccessory{
		ID:            uuid.New(),
		OrderID:       o.ID,
		AccessoryID:   accessoryID,
		AccessoryName: accessoryName,
		QuantityUsed:  quantityUsed,
		CreatedAt:     time.Now(),
	})
	o.UpdatedAt = time.Now()

	return nil
}

// ClearAccessoryUsage removes all accessory snapshots (stock was restored)
func (o *Order) ClearAccessoryUsage() {
	o.Accessories = make([]OrderAccessory, 0)
	o.UpdatedAt = time.Now()
}

// Revise replaces the garment selection and repricing after an edit
// The caller is responsible for restoring and re-deducting stock
func (o *Order) Revise(garmentTypeID, fabricID uuid.UUID, quantity int, unitPrice decimal.Decimal, measurements map[string]string) error {
	if !o.IsEditable() {
		return shared.NewDomainError("INVALID_STATE", "Order can no longer be edited")
	}
	if garmentTypeID == uuid.Nil {
		return shared.NewDomainError("INVALID_GARMENT_TYPE", "Garment type ID cannot be empty")
	}
	if fabricID == uuid.Nil {
		return shared.NewDomainError("INVALID_FABRIC", "Fabric ID cannot be empty")
	}
	if quantity < 1 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	if unitPrice.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_PRICE", "Unit price must be positive")
	}

	encoded, err := encodeMeasurements(measurements)
	if err != nil {
		return err
	}

	total := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	deposit := total.Mul(DepositRate).Round(2)

	o.GarmentTypeID = garmentTypeID
	o.FabricID = fabricID
	o.Quantity = quantity
	o.Measurements = encoded
	o.TotalAmount = total
	o.DepositAmount = deposit
	o.BalanceAmount = total.Sub(deposit)
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// SetDueDate sets the promised completion date
func (o *Order) SetDueDate(due *time.Time) {
	o.DueDate = due
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// SetNotes sets free-form order notes
func (o *Order) SetNotes(notes string) {
	o.Notes = notes
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// TransitionTo moves the order to the target status
func (o *Order) TransitionTo(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Invalid order status")
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot transition order from '"+o.Status.String()+"' to '"+target.String()+"'")
	}

	oldStatus := o.Status
	o.Status = target
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, oldStatus, target))

	return nil
}

// Start moves the order into production
func (o *Order) Start() error {
	return o.TransitionTo(OrderStatusInProgress)
}

// Complete marks the order as finished and records the completion date
func (o *Order) Complete() error {
	if err := o.TransitionTo(OrderStatusCompleted); err != nil {
		return err
	}
	now := time.Now()
	o.CompletedDate = &now
	return nil
}

// Deliver marks the order as picked up by the customer
func (o *Order) Deliver() error {
	return o.TransitionTo(OrderStatusDelivered)
}

// Cancel cancels the order
// Completed and delivered orders cannot be cancelled
func (o *Order) Cancel() error {
	if o.Status == OrderStatusCompleted || o.Status == OrderStatusDelivered {
		return shared.NewDomainError("INVALID_STATE", "Completed or delivered orders cannot be cancelled")
	}
	if o.Status == OrderStatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Order is already cancelled")
	}

	oldStatus := o.Status
	o.Status = OrderStatusCancelled
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, oldStatus, OrderStatusCancelled))

	return nil
}

// IsEditable returns true while the garment selection may still change
func (o *Order) IsEditable() bool {
	switch o.Status {
	case OrderStatusCompleted, OrderStatusDelivered, OrderStatusCancelled:
		return false
	}
	return true
}

// IsCancelled returns true if the order is cancelled
func (o *Order) IsCancelled() bool {
	return o.Status == OrderStatusCancelled
}

// PaymentStatusFor computes the payment status from the collected total
func (o *Order) PaymentStatusFor(totalPaid decimal.Decimal) PaymentStatus {
	if totalPaid.GreaterThanOrEqual(o.TotalAmount) {
		return PaymentStatusFullyPaid
	}
	if totalPaid.GreaterThan(decimal.Zero) {
		return PaymentStatusPartial
	}
	return PaymentStatusUnpaid
}

// RemainingBalanceFor computes the outstanding amount given the collected total
func (o *Order) RemainingBalanceFor(totalPaid decimal.Decimal) decimal.Decimal {
	remaining := o.TotalAmount.Sub(totalPaid)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// RequiredDeposit returns the deposit due before work begins
func (o *Order) RequiredDeposit() decimal.Decimal {
	return o.TotalAmount.Mul(DepositRate).Round(2)
}

// MeasurementsMap decodes the stored measurement JSON
func (o *Order) MeasurementsMap() (map[string]string, error) {
	if o.Measurements == "" {
		return map[string]string{}, nil
	}
	var m map[string]string
	if err := json.Unmarshal([]byte(o.Measurements), &m); err != nil {
		return nil, shared.NewDomainError("INVALID_MEASUREMENTS", "Stored measurements are not valid JSON")
	}
	return m, nil
}

func encodeMeasurements(measurements map[string]string) (string, error) {
	if measurements == nil {
		measurements = map[string]string{}
	}
	encoded, err := json.Marshal(measurements)
	if err != nil {
		return "", shared.NewDomainError("INVALID_MEASUREMENTS", "Measurements must be JSON-encodable")
	}
	return string(encoded), nil
}
