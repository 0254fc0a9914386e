package notification

import (
	"time"

	"github.com/google/uuid"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

// SMSStatus tracks the delivery state of an outbound SMS
type SMSStatus string

const (
	SMSStatusPending SMSStatus = "pending"
	SMSStatusSent    SMSStatus = "sent"
	SMSStatusFailed  SMSStatus = "failed"
)

// SMSLog records every outbound SMS attempt with the provider's response
type SMSLog struct {
	shared.BaseEntity
	PhoneNumber string     `gorm:"type:varchar(20);not null;index"`
	Message     string     `gorm:"type:text;not null"`
	OrderID     *uuid.UUID `gorm:"type:uuid;index"`
	Status      SMSStatus  `gorm:"type:varchar(10);not null;default:'pending'"`
	Response    string     `gorm:"type:text"`
	SentAt      *time.Time
}

// TableName returns the table name for GORM
func (SMSLog) TableName() string {
	return "sms_logs"
}

// NewSMSLog creates a pending SMS log entry
func NewSMSLog(phoneNumber, message string) (*SMSLog, error) {
	if phoneNumber == "" {
		return nil, shared.NewDomainError("INVALID_PHONE", "Phone number cannot be empty")
	}
	if message == "" {
		return nil, shared.NewDomainError("INVALID_MESSAGE", "SMS message cannot be empty")
	}

	return &SMSLog{
		BaseEntity:  shared.NewBaseEntity(),
		PhoneNumber: phoneNumber,
		Message:     message,
		Status:      SMSStatusPending,
	}, nil
}

// ForOrder links the SMS to the order it concerns
func (l *SMSLog) ForOrder(orderID uuid.UUID) *SMSLog {
	l.OrderID = &orderID
	return l
}

// MarkSent records a successful provider response
func (l *SMSLog) MarkSent(response string) {
	now := time.Now()
	l.Status = SMSStatusSent
	l.Response = response
	l.SentAt = &now
	l.UpdatedAt = now
}

// MarkFailed records a failed delivery attempt
func (l *SMSLog) MarkFailed(response string) {
	l.Status = SMSStatusFailed
	l.Response = response
	l.UpdatedAt = time.Now()
}
