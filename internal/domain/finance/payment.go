package finance

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentType classifies what part of the order total a payment covers
type PaymentType string

const (
	PaymentTypeDeposit PaymentType = "deposit"
	PaymentTypeBalance PaymentType = "balance"
	PaymentTypeFull    PaymentType = "full"
)

// IsValid checks if the type is a valid PaymentType
func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentTypeDeposit, PaymentTypeBalance, PaymentTypeFull:
		return true
	}
	return false
}

// PaymentMethod is how the payment was made
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
)

// PaymentStatus tracks the lifecycle of a payment record
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// NewPaymentNumber generates a payment number of the form PAY-XXXXXXXX
func NewPaymentNumber() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "PAY-" + strings.ToUpper(uuid.New().String()[:8])
	}
	return "PAY-" + strings.ToUpper(hex.EncodeToString(buf))
}

// Payment records money collected against an order
type Payment struct {
	shared.BaseAggregateRoot
	PaymentNumber string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type          PaymentType     `gorm:"type:varchar(10);not null"`
	Method        PaymentMethod   `gorm:"type:varchar(10);not null;default:'cash'"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status        PaymentStatus   `gorm:"type:varchar(10);not null;default:'completed';index"`
	ReceivedBy    *uuid.UUID      `gorm:"type:uuid"`
	Notes         string          `gorm:"type:text"`
	PaidAt        time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment records a completed payment against an order
func NewPayment(orderID uuid.UUID, paymentType PaymentType, amount decimal.Decimal) (*Payment, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if !paymentType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Payment type must be 'deposit', 'balance', or 'full'")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}

	return &Payment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PaymentNumber:     NewPaymentNumber(),
		OrderID:           orderID,
		Type:              paymentType,
		Method:            PaymentMethodCash,
		Amount:            amount,
		Status:            PaymentStatusCompleted,
		PaidAt:            time.Now(),
	}, nil
}

// ReceivedByUser records who collected the payment
func (p *Payment) ReceivedByUser(userID uuid.UUID) {
	p.ReceivedBy = &userID
	p.UpdatedAt = time.Now()
}

// SetNotes sets free-form payment notes
func (p *Payment) SetNotes(notes string) {
	p.Notes = notes
	p.UpdatedAt = time.Now()
}

// Cancel voids the payment record
func (p *Payment) Cancel() error {
	if p.Status == PaymentStatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Payment is already cancelled")
	}

	p.Status = PaymentStatusCancelled
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// IsCompleted returns true if the payment counts toward the order total
func (p *Payment) IsCompleted() bool {
	return p.Status == PaymentStatusCompleted
}
