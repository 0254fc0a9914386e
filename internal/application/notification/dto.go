package notification

import (
	"time"

	"github.com/google/uuid"

	"github.com/lanzy-lanzy/tailoring/internal/domain/notification"
)

// NotificationListFilter carries list query parameters
type NotificationListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Type     string `form:"type"`
	Read     *bool  `form:"read"`
	Priority string `form:"priority"`
}

// NotificationResponse is the API representation of a notification
type NotificationResponse struct {
	ID          uuid.UUID  `json:"id"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	Priority    string     `json:"priority"`
	Read        bool       `json:"read"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	ReferenceID *uuid.UUID `json:"reference_id,omitempty"`
	ActionURL   string     `json:"action_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToNotificationResponse converts a domain notification
func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		Type:        string(n.Type),
		Title:       n.Title,
		Message:     n.Message,
		Priority:    string(n.Priority),
		Read:        n.Read,
		ReadAt:      n.ReadAt,
		ReferenceID: n.ReferenceID,
		ActionURL:   n.ActionURL,
		CreatedAt:   n.CreatedAt,
	}
}

// ToNotificationResponses converts a slice of domain notifications
func ToNotificationResponses(notifications []notification.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = ToNotificationResponse(&notifications[i])
	}
	return responses
}

// SMSLogListFilter carries list query parameters
type SMSLogListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Status   string `form:"status"`
}

// SMSLogResponse is the API representation of an SMS log entry
type SMSLogResponse struct {
	ID          uuid.UUID  `json:"id"`
	PhoneNumber string     `json:"phone_number"`
	Message     string     `json:"message"`
	OrderID     *uuid.UUID `json:"order_id,omitempty"`
	Status      string     `json:"status"`
	Response    string     `json:"response,omitempty"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToSMSLogResponse converts a domain SMS log
func ToSMSLogResponse(l *notification.SMSLog) SMSLogResponse {
	return SMSLogResponse{
		ID:          l.ID,
		PhoneNumber: l.PhoneNumber,
		Message:     l.Message,
		OrderID:     l.OrderID,
		Status:      string(l.Status),
		Response:    l.Response,
		SentAt:      l.SentAt,
		CreatedAt:   l.CreatedAt,
	}
}

// ToSMSLogResponses converts a slice of domain SMS logs
func ToSMSLogResponses(logs []notification.SMSLog) []SMSLogResponse {
	responses := make([]SMSLogResponse, len(logs))
	for i := range logs {
		responses[i] = ToSMSLogResponse(&logs[i])
	}
	return responses
}
