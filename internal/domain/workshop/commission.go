package workshop

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CommissionStatus tracks the lifecycle of a tailor's earned commission
type CommissionStatus string

const (
	CommissionStatusPending  CommissionStatus = "pending"
	CommissionStatusCredited CommissionStatus = "credited"
	CommissionStatusPaid     CommissionStatus = "paid"
)

// IsValid checks if the status is a valid CommissionStatus
func (s CommissionStatus) IsValid() bool {
	switch s {
	case CommissionStatusPending, CommissionStatusCredited, CommissionStatusPaid:
		return true
	}
	return false
}

// NewCommissionNumber generates a commission number of the form COM-XXXXXXXX
func NewCommissionNumber() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "COM-" + strings.ToUpper(uuid.New().String()[:8])
	}
	return "COM-" + strings.ToUpper(hex.EncodeToString(buf))
}

// Commission records the amount earned by a tailor for an approved order
// Garment and customer details are snapshotted so reports survive catalog edits
type Commission struct {
	shared.BaseAggregateRoot
	CommissionNumber string           `gorm:"type:varchar(20);not null;uniqueIndex"`
	TaskID           uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex"`
	OrderID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	TailorID         uuid.UUID        `gorm:"type:uuid;not null;index"`
	GarmentTypeName  string           `gorm:"type:varchar(100);not null"`
	Quantity         int              `gorm:"not null"`
	CustomerName     string           `gorm:"type:varchar(200);not null"`
	Amount           decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	Status           CommissionStatus `gorm:"type:varchar(10);not null;default:'pending';index"`
	CreditedDate     *time.Time
	PaidDate         *time.Time
}

// TableName returns the table name for GORM
func (Commission) TableName() string {
	return "tailor_commissions"
}

// NewCommissionFromTask credits a commission for an approved task at claim time
// The task must not have had its commission credited before
func NewCommissionFromTask(task *Task, garmentTypeName string, quantity int, customerName string) (*Commission, error) {
	if task == nil {
		return nil, shared.NewDomainError("INVALID_TASK", "Task cannot be nil")
	}
	if task.CommissionPaid {
		return nil, shared.NewDomainError("INVALID_STATE", "Commission for this task has already been credited")
	}
	if task.Status != TaskStatusApproved {
		return nil, shared.NewDomainError("INVALID_STATE", "Commission can only be credited for approved tasks")
	}

	now := time.Now()
	return &Commission{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CommissionNumber:  NewCommissionNumber(),
		TaskID:            task.ID,
		OrderID:           task.OrderID,
		TailorID:          task.TailorID,
		GarmentTypeName:   garmentTypeName,
		Quantity:          quantity,
		CustomerName:      customerName,
		Amount:            task.CommissionAmount,
		Status:            CommissionStatusCredited,
		CreditedDate:      &now,
	}, nil
}

// MarkPaid records the payout of a credited commission
func (c *Commission) MarkPaid() error {
	if c.Status != CommissionStatusCredited {
		return shared.NewDomainError("INVALID_STATE", "Only credited commissions can be marked paid")
	}

	now := time.Now()
	c.Status = CommissionStatusPaid
	c.PaidDate = &now
	c.UpdatedAt = now
	c.IncrementVersion()

	return nil
}
