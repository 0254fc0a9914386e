// Package notification contains the in-app notification service and
// the SMS delivery service.
package notification

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lanzy-lanzy/tailoring/internal/domain/identity"
	"github.com/lanzy-lanzy/tailoring/internal/domain/notification"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

const recentNotificationLimit = 5

// NotificationService stores and fans out in-app notifications.
// Its NotifyUser and NotifyAdmins methods satisfy the notifier
// interfaces the order, task, payment, and claim services declare.
type NotificationService struct {
	notificationRepo notification.Repository
	userRepo         identity.UserRepository
	logger           *zap.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	notificationRepo notification.Repository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		logger:           logger.Named("notification"),
	}
}

// NotifyUser stores a notification for a single recipient.
// Notification failures never propagate to the calling operation.
func (s *NotificationService) NotifyUser(ctx context.Context, recipientID uuid.UUID, notifType notification.Type, title, message string, referenceID uuid.UUID) {
	n, err := notification.New(recipientID, notifType, title, message, priorityFor(notifType))
	if err != nil {
		s.logger.Warn("Dropping invalid notification", zap.Error(err))
		return
	}
	if referenceID != uuid.Nil {
		n.WithReference(referenceID)
	}

	if err := s.notificationRepo.Save(ctx, n); err != nil {
		s.logger.Error("Failed to save notification",
			zap.String("recipient_id", recipientID.String()),
			zap.String("type", string(notifType)),
			zap.Error(err))
	}
}

// NotifyAdmins stores the same notification for every active admin
func (s *NotificationService) NotifyAdmins(ctx context.Context, notifType notification.Type, title, message string, referenceID uuid.UUID) {
	admins, err := s.userRepo.FindActiveByRole(ctx, identity.RoleAdmin)
	if err != nil {
		s.logger.Error("Failed to look up admins for notification", zap.Error(err))
		return
	}

	batch := make([]*notification.Notification, 0, len(admins))
	for i := range admins {
		n, err := notification.New(admins[i].ID, notifType, title, message, priorityFor(notifType))
		if err != nil {
			continue
		}
		if referenceID != uuid.Nil {
			n.WithReference(referenceID)
		}
		batch = append(batch, n)
	}
	if len(batch) == 0 {
		return
	}

	if err := s.notificationRepo.SaveBatch(ctx, batch); err != nil {
		s.logger.Error("Failed to save admin notifications",
			zap.String("type", string(notifType)),
			zap.Int("count", len(batch)),
			zap.Error(err))
	}
}

// List retrieves a user's notifications with filtering and pagination
func (s *NotificationService) List(ctx context.Context, recipientID uuid.UUID, filter NotificationListFilter) ([]NotificationResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  map[string]any{"recipient_id": recipientID},
	}
	if filter.Type != "" {
		domainFilter.Filters["type"] = notification.Type(filter.Type)
	}
	if filter.Read != nil {
		domainFilter.Filters["read"] = *filter.Read
	}
	if filter.Priority != "" {
		domainFilter.Filters["priority"] = notification.Priority(filter.Priority)
	}

	notifications, err := s.notificationRepo.FindByRecipient(ctx, recipientID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.notificationRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToNotificationResponses(notifications), total, nil
}

// Recent returns the newest notifications for the header dropdown
func (s *NotificationService) Recent(ctx context.Context, recipientID uuid.UUID) ([]NotificationResponse, error) {
	notifications, err := s.notificationRepo.FindRecentByRecipient(ctx, recipientID, recentNotificationLimit)
	if err != nil {
		return nil, err
	}
	return ToNotificationResponses(notifications), nil
}

// UnreadCount returns the number of unread notifications for a user
func (s *NotificationService) UnreadCount(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, recipientID)
}

// MarkRead marks one of the caller's notifications as read
func (s *NotificationService) MarkRead(ctx context.Context, notificationID, recipientID uuid.UUID) error {
	n, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.RecipientID != recipientID {
		return shared.ErrForbidden
	}
	if n.Read {
		return nil
	}

	n.MarkRead()
	return s.notificationRepo.Save(ctx, n)
}

// MarkAllRead marks every notification of the caller as read
func (s *NotificationService) MarkAllRead(ctx context.Context, recipientID uuid.UUID) error {
	return s.notificationRepo.MarkAllRead(ctx, recipientID)
}

// Delete removes one of the caller's notifications
func (s *NotificationService) Delete(ctx context.Context, notificationID, recipientID uuid.UUID) error {
	n, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.RecipientID != recipientID {
		return shared.ErrForbidden
	}

	return s.notificationRepo.Delete(ctx, notificationID)
}

// ClearAll removes every notification of the caller
func (s *NotificationService) ClearAll(ctx context.Context, recipientID uuid.UUID) error {
	return s.notificationRepo.DeleteByRecipient(ctx, recipientID)
}

// priorityFor maps a notification type to its display priority
func priorityFor(notifType notification.Type) notification.Priority {
	switch notifType {
	case notification.TypeStockLow:
		return notification.PriorityUrgent
	case notification.TypeTaskAssigned, notification.TypeOrderCompleted, notification.TypeCommissionCredited:
		return notification.PriorityHigh
	default:
		return notification.PriorityNormal
	}
}
