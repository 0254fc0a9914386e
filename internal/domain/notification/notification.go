package notification

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

// Type classifies what a notification is about
type Type string

const (
	TypeTaskAssigned       Type = "task_assigned"
	TypeTaskStarted        Type = "task_started"
	TypeTaskCompleted      Type = "task_completed"
	TypeTaskApproved       Type = "task_approved"
	TypeOrderCompleted     Type = "order_completed"
	TypeOrderClaimed       Type = "order_claimed"
	TypePaymentReceived    Type = "payment_received"
	TypeStockLow           Type = "stock_low"
	TypeCommissionCredited Type = "commission_credited"
	TypeGeneral            Type = "general"
)

// IsValid checks if the type is a known notification Type
func (t Type) IsValid() bool {
	switch t {
	case TypeTaskAssigned, TypeTaskStarted, TypeTaskCompleted, TypeTaskApproved,
		TypeOrderCompleted, TypeOrderClaimed, TypePaymentReceived, TypeStockLow,
		TypeCommissionCredited, TypeGeneral:
		return true
	}
	return false
}

// Priority controls how prominently a notification is shown
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// IsValid checks if the priority is a valid Priority
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Notification is an in-app message for a single user
type Notification struct {
	shared.BaseAggregateRoot
	RecipientID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type        Type       `gorm:"type:varchar(25);not null;default:'general'"`
	Title       string     `gorm:"type:varchar(200);not null"`
	Message     string     `gorm:"type:text;not null"`
	Priority    Priority   `gorm:"type:varchar(10);not null;default:'normal'"`
	Read        bool       `gorm:"not null;default:false;index"`
	ReadAt      *time.Time
	ReferenceID *uuid.UUID `gorm:"type:uuid"`
	ActionURL   string     `gorm:"type:varchar(300)"`
}

// TableName returns the table name for GORM
func (Notification) TableName() string {
	return "notifications"
}

// New creates a notification for a single recipient
func New(recipientID uuid.UUID, notifType Type, title, message string, priority Priority) (*Notification, error) {
	if recipientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_RECIPIENT", "Recipient ID cannot be empty")
	}
	if !notifType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Invalid notification type")
	}
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Notification title cannot be empty")
	}
	if strings.TrimSpace(message) == "" {
		return nil, shared.NewDomainError("INVALID_MESSAGE", "Notification message cannot be empty")
	}
	if !priority.IsValid() {
		priority = PriorityNormal
	}

	return &Notification{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RecipientID:       recipientID,
		Type:              notifType,
		Title:             title,
		Message:           message,
		Priority:          priority,
	}, nil
}

// WithReference links the notification to an order or task
func (n *Notification) WithReference(id uuid.UUID) *Notification {
	n.ReferenceID = &id
	return n
}

// WithActionURL attaches a frontend deep link
func (n *Notification) WithActionURL(url string) *Notification {
	n.ActionURL = url
	return n
}

// MarkRead marks the notification as read
func (n *Notification) MarkRead() {
	if n.Read {
		return
	}
	now := time.Now()
	n.Read = true
	n.ReadAt = &now
	n.UpdatedAt = now
}
