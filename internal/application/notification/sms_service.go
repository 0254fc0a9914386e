package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/lanzy-lanzy/tailoring/internal/domain/notification"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

// SMSClient delivers a message and returns the provider's raw response
type SMSClient interface {
	Configured() bool
	Send(ctx context.Context, phoneNumber, message string) (string, error)
}

// SMSService sends customer-facing text messages and keeps a delivery
// log of every attempt
type SMSService struct {
	smsLogRepo notification.SMSLogRepository
	client     SMSClient
	logger     *zap.Logger
}

// NewSMSService creates a new SMSService
func NewSMSService(smsLogRepo notification.SMSLogRepository, client SMSClient, logger *zap.Logger) *SMSService {
	return &SMSService{
		smsLogRepo: smsLogRepo,
		client:     client,
		logger:     logger.Named("sms"),
	}
}

// SendOrderReady texts the customer that their garment can be picked up.
// Delivery problems are recorded in the SMS log and never surface to the
// operation that triggered the message.
func (s *SMSService) SendOrderReady(ctx context.Context, orderID uuid.UUID, phone, customerName, orderNumber, garmentTypeName string, balance decimal.Decimal) {
	message := fmt.Sprintf("Hi %s! Your %s (order %s) is ready for pickup.",
		customerName, garmentTypeName, orderNumber)
	if balance.IsPositive() {
		message += fmt.Sprintf(" Remaining balance: P%s, payable upon claiming.", balance.StringFixed(2))
	}
	message += " Thank you!"

	s.send(ctx, orderID, phone, message)
}

// send logs the attempt, delivers when a provider is configured, and
// records the outcome
func (s *SMSService) send(ctx context.Context, orderID uuid.UUID, phone, message string) {
	log, err := notification.NewSMSLog(phone, message)
	if err != nil {
		s.logger.Warn("Dropping SMS with invalid input", zap.Error(err))
		return
	}
	if orderID != uuid.Nil {
		log.ForOrder(orderID)
	}

	if !s.client.Configured() {
		log.MarkFailed("sms provider not configured")
		s.logger.Warn("SMS not sent: provider not configured",
			zap.String("order_id", orderID.String()))
	} else if response, err := s.client.Send(ctx, phone, message); err != nil {
		log.MarkFailed(err.Error())
		s.logger.Error("SMS delivery failed",
			zap.String("order_id", orderID.String()),
			zap.Error(err))
	} else {
		log.MarkSent(response)
	}

	if err := s.smsLogRepo.Save(ctx, log); err != nil {
		s.logger.Error("Failed to save SMS log", zap.Error(err))
	}
}

// ListLogs retrieves SMS delivery logs with filtering and pagination
func (s *SMSService) ListLogs(ctx context.Context, filter SMSLogListFilter) ([]SMSLogResponse, int64, error) {
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
		Filters:  make(map[string]any),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = notification.SMSStatus(filter.Status)
	}

	logs, err := s.smsLogRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.smsLogRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToSMSLogResponses(logs), total, nil
}

// ListByOrder retrieves every SMS sent about an order
func (s *SMSService) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]SMSLogResponse, error) {
	logs, err := s.smsLogRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return ToSMSLogResponses(logs), nil
}
