package workshop

import (
	"time"

	"github.com/google/uuid"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TaskStatus represents the status of a tailoring task
type TaskStatus string

const (
	TaskStatusAssigned   TaskStatus = "assigned"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusApproved   TaskStatus = "approved"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// IsValid checks if the status is a valid TaskStatus
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusAssigned, TaskStatusInProgress, TaskStatusCompleted, TaskStatusApproved,
		TaskStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of TaskStatus
func (s TaskStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s TaskStatus) CanTransitionTo(target TaskStatus) bool {
	switch s {
	case TaskStatusAssigned:
		return target == TaskStatusInProgress || target == TaskStatusCancelled
	case TaskStatusInProgress:
		return target == TaskStatusCompleted || target == TaskStatusCancelled
	case TaskStatusCompleted:
		return target == TaskStatusApproved
	case TaskStatusApproved, TaskStatusCancelled:
		return false // Terminal states
	}
	return false
}

// DefaultCommissionRate is the tailor's share of the order total, in percent
var DefaultCommissionRate = decimal.NewFromInt(10)

// Task is the aggregate root for a tailoring work assignment
// Exactly one task exists per order
type Task struct {
	shared.BaseAggregateRoot
	OrderID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	TailorID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status           TaskStatus      `gorm:"type:varchar(20);not null;default:'assigned';index"`
	CommissionRate   decimal.Decimal `gorm:"type:decimal(5,2);not null;default:10"`
	CommissionAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CommissionPaid   bool            `gorm:"not null;default:false"`
	AssignedDate     time.Time       `gorm:"not null"`
	StartedDate      *time.Time
	CompletedDate    *time.Time
	ApprovedDate     *time.Time
	ApprovedBy       *uuid.UUID `gorm:"type:uuid"`
	Notes            string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Task) TableName() string {
	return "tailoring_tasks"
}

// NewTask assigns an order to a tailor
// The commission amount is locked in from the order total at assignment time
func NewTask(orderID, tailorID uuid.UUID, orderTotal decimal.Decimal) (*Task, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if tailorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TAILOR", "Tailor ID cannot be empty")
	}
	if orderTotal.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Order total must be positive")
	}

	task := &Task{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderID:           orderID,
		TailorID:          tailorID,
		Status:            TaskStatusAssigned,
		CommissionRate:    DefaultCommissionRate,
		CommissionAmount:  commissionFor(orderTotal, DefaultCommissionRate),
		AssignedDate:      time.Now(),
	}

	task.AddDomainEvent(NewTaskAssignedEvent(task))

	return task, nil
}

// Start moves the task into progress and records the start date
func (t *Task) Start() error {
	if !t.Status.CanTransitionTo(TaskStatusInProgress) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot start task from status '"+t.Status.String()+"'")
	}

	now := time.Now()
	t.Status = TaskStatusInProgress
	t.StartedDate = &now
	t.UpdatedAt = now
	t.IncrementVersion()

	t.AddDomainEvent(NewTaskStatusChangedEvent(t, TaskStatusAssigned, TaskStatusInProgress))

	return nil
}

// Complete marks the work as done and records the completion date
func (t *Task) Complete() error {
	if !t.Status.CanTransitionTo(TaskStatusCompleted) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot complete task from status '"+t.Status.String()+"'")
	}

	now := time.Now()
	t.Status = TaskStatusCompleted
	t.CompletedDate = &now
	t.UpdatedAt = now
	t.IncrementVersion()

	t.AddDomainEvent(NewTaskStatusChangedEvent(t, TaskStatusInProgress, TaskStatusCompleted))

	return nil
}

// Approve accepts the completed work
// Only completed tasks can be approved
func (t *Task) Approve(approverID uuid.UUID) error {
	if approverID == uuid.Nil {
		return shared.NewDomainError("INVALID_APPROVER", "Approver ID cannot be empty")
	}
	if !t.Status.CanTransitionTo(TaskStatusApproved) {
		return shared.NewDomainError("INVALID_STATE",
			"Only completed tasks can be approved (current status: '"+t.Status.String()+"')")
	}

	now := time.Now()
	t.Status = TaskStatusApproved
	t.ApprovedDate = &now
	t.ApprovedBy = &approverID
	t.UpdatedAt = now
	t.IncrementVersion()

	t.AddDomainEvent(NewTaskApprovedEvent(t))

	return nil
}

// Cancel releases the task when its order is cancelled
// Completed and approved work keeps its record
func (t *Task) Cancel() error {
	if !t.Status.CanTransitionTo(TaskStatusCancelled) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot cancel task from status '"+t.Status.String()+"'")
	}

	oldStatus := t.Status
	t.Status = TaskStatusCancelled
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	t.AddDomainEvent(NewTaskStatusChangedEvent(t, oldStatus, TaskStatusCancelled))

	return nil
}

// SetCommissionRate overrides the commission rate and recomputes the amount
func (t *Task) SetCommissionRate(rate, orderTotal decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_RATE", "Commission rate must be between 0 and 100")
	}

	t.CommissionRate = rate
	t.CommissionAmount = commissionFor(orderTotal, rate)
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// MarkCommissionPaid flags the commission as credited to the tailor
func (t *Task) MarkCommissionPaid() error {
	if t.CommissionPaid {
		return shared.NewDomainError("INVALID_STATE", "Commission is already paid")
	}

	t.CommissionPaid = true
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// SetNotes sets free-form task notes
func (t *Task) SetNotes(notes string) {
	t.Notes = notes
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
}

// IsOpen returns true while the task still occupies the tailor
func (t *Task) IsOpen() bool {
	return t.Status == TaskStatusAssigned || t.Status == TaskStatusInProgress
}

// BelongsTo returns true if the task is assigned to the given tailor
func (t *Task) BelongsTo(tailorID uuid.UUID) bool {
	return t.TailorID == tailorID
}

func commissionFor(orderTotal, rate decimal.Decimal) decimal.Decimal {
	return orderTotal.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)
}
