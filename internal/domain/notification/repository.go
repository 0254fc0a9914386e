package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

// Repository defines the persistence contract for notifications
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Notification, error)
	FindByRecipient(ctx context.Context, recipientID uuid.UUID, filter shared.Filter) ([]Notification, error)
	FindRecentByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]Notification, error)
	Save(ctx context.Context, notification *Notification) error
	SaveBatch(ctx context.Context, notifications []*Notification) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByRecipient(ctx context.Context, recipientID uuid.UUID) error
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) error
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// SMSLogRepository defines the persistence contract for SMS logs
type SMSLogRepository interface {
	FindAll(ctx context.Context, filter shared.Filter) ([]SMSLog, error)
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]SMSLog, error)
	Save(ctx context.Context, log *SMSLog) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
