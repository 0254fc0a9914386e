// Package finance contains application services for payments and receipts.
package finance

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanzy-lanzy/tailoring/internal/domain/finance"
	"github.com/lanzy-lanzy/tailoring/internal/domain/notification"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
	"github.com/lanzy-lanzy/tailoring/internal/domain/trade"
	"github.com/lanzy-lanzy/tailoring/internal/infrastructure/telemetry"
)

// Notifier fans out in-app notifications
type Notifier interface {
	NotifyAdmins(ctx context.Context, notifType notification.Type, title, message string, referenceID uuid.UUID)
}

// PaymentService records money collected against orders
type PaymentService struct {
	paymentRepo finance.PaymentRepository
	orderRepo   trade.OrderRepository
	notifier    Notifier
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(paymentRepo finance.PaymentRepository, orderRepo trade.OrderRepository, notifier Notifier) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		notifier:    notifier,
	}
}

// Record collects a payment against an order
// Fully paid orders reject further payments; an overpayment is clamped
// to the remaining balance
func (s *PaymentService) Record(ctx context.Context, req RecordPaymentRequest, receivedBy uuid.UUID) (*RecordPaymentResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "payment", "record")
	defer span.End()

	order, err := s.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if order.IsCancelled() {
		return nil, shared.NewDomainError("INVALID_STATE", "Cancelled orders cannot accept payments")
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}

	totalPaid, err := s.paymentRepo.TotalCompletedByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	remaining := order.RemainingBalanceFor(totalPaid)
	if remaining.IsZero() {
		return nil, shared.NewDomainError("ALREADY_PAID", "Order is already fully paid")
	}

	amount := req.Amount
	if amount.GreaterThan(remaining) {
		amount = remaining
	}

	payment, err := finance.NewPayment(order.ID, paymentTypeFor(order, totalPaid, amount), amount)
	if err != nil {
		return nil, err
	}
	if receivedBy != uuid.Nil {
		payment.ReceivedByUser(receivedBy)
	}
	if req.Notes != "" {
		payment.SetNotes(req.Notes)
	}

	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrPaymentNumber, payment.PaymentNumber,
		telemetry.SpanAttrOrderNumber, order.OrderNumber,
		telemetry.SpanAttrAmount, amount.String(),
	)

	totalPaid = totalPaid.Add(amount)
	s.notifier.NotifyAdmins(ctx, notification.TypePaymentReceived,
		"Payment received",
		fmt.Sprintf("Payment %s of %s recorded for order %s",
			payment.PaymentNumber, amount.StringFixed(2), order.OrderNumber),
		order.ID)

	return &RecordPaymentResponse{
		Payment:          ToPaymentResponse(payment),
		TotalPaid:        totalPaid,
		RemainingBalance: order.RemainingBalanceFor(totalPaid),
		PaymentStatus:    string(order.PaymentStatusFor(totalPaid)),
	}, nil
}

// GetByID retrieves a payment by ID
func (s *PaymentService) GetByID(ctx context.Context, paymentID uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// List retrieves payments with filtering and pagination
func (s *PaymentService) List(ctx context.Context, filter PaymentListFilter) ([]PaymentResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "paid_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Filters:  make(map[string]any),
	}
	if filter.Type != "" {
		domainFilter.Filters["type"] = finance.PaymentType(filter.Type)
	}
	if filter.OrderID != "" {
		orderID, err := uuid.Parse(filter.OrderID)
		if err != nil {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "Invalid order ID")
		}
		domainFilter.Filters["order_id"] = orderID
	}

	payments, err := s.paymentRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.paymentRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPaymentResponses(payments), total, nil
}

// ListByOrder retrieves an order's payment history
func (s *PaymentService) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]PaymentResponse, error) {
	payments, err := s.paymentRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return ToPaymentResponses(payments), nil
}

// paymentTypeFor classifies a payment from the order's payment state
func paymentTypeFor(order *trade.Order, totalPaid, amount decimal.Decimal) finance.PaymentType {
	if totalPaid.IsZero() {
		if amount.GreaterThanOrEqual(order.TotalAmount) {
			return finance.PaymentTypeFull
		}
		return finance.PaymentTypeDeposit
	}
	return finance.PaymentTypeBalance
}
