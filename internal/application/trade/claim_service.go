package trade

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanzy-lanzy/tailoring/internal/domain/catalog"
	"github.com/lanzy-lanzy/tailoring/internal/domain/finance"
	"github.com/lanzy-lanzy/tailoring/internal/domain/notification"
	"github.com/lanzy-lanzy/tailoring/internal/domain/partner"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
	"github.com/lanzy-lanzy/tailoring/internal/domain/trade"
	"github.com/lanzy-lanzy/tailoring/internal/domain/workshop"
	"github.com/lanzy-lanzy/tailoring/internal/infrastructure/telemetry"
)

// ClaimService handles the pickup counter: listing finished orders
// awaiting claim and releasing them to the customer
type ClaimService struct {
	orderRepo       trade.OrderRepository
	customerRepo    partner.CustomerRepository
	garmentTypeRepo catalog.GarmentTypeRepository
	taskRepo        workshop.TaskRepository
	commissionRepo  workshop.CommissionRepository
	paymentRepo     finance.PaymentRepository
	notifier        Notifier
}

// NewClaimService creates a new ClaimService
func NewClaimService(
	orderRepo trade.OrderRepository,
	customerRepo partner.CustomerRepository,
	garmentTypeRepo catalog.GarmentTypeRepository,
	taskRepo workshop.TaskRepository,
	commissionRepo workshop.CommissionRepository,
	paymentRepo finance.PaymentRepository,
	notifier Notifier,
) *ClaimService {
	return &ClaimService{
		orderRepo:       orderRepo,
		customerRepo:    customerRepo,
		garmentTypeRepo: garmentTypeRepo,
		taskRepo:        taskRepo,
		commissionRepo:  commissionRepo,
		paymentRepo:     paymentRepo,
		notifier:        notifier,
	}
}

// claimableStatuses are the order states a customer may pick up from
var claimableStatuses = []trade.OrderStatus{
	trade.OrderStatusCompleted,
	trade.OrderStatusReadyForReclaim,
}

// List retrieves the claims board: every finished order that has not
// been picked up, with its payment state and the aggregate pickup stats
func (s *ClaimService) List(ctx context.Context) (*ClaimsListResponse, error) {
	filter := shared.Filter{
		OrderBy:  "completed_date",
		OrderDir: "asc",
		Filters:  make(map[string]any),
	}

	var claimable []trade.Order
	for _, status := range claimableStatuses {
		orders, err := s.orderRepo.FindByStatus(ctx, status, filter)
		if err != nil {
			return nil, err
		}
		claimable = append(claimable, orders...)
	}

	response := &ClaimsListResponse{
		Orders: make([]ClaimOrderResponse, 0, len(claimable)),
		Summary: ClaimsSummary{
			TotalPendingBalance: decimal.Zero,
		},
	}

	for i := range claimable {
		order := &claimable[i]

		totalPaid, err := s.paymentRepo.TotalCompletedByOrder(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		remaining := order.RemainingBalanceFor(totalPaid)

		row := ClaimOrderResponse{
			Order:            ToOrderResponse(order, totalPaid),
			GarmentTypeName:  s.garmentTypeName(ctx, order.GarmentTypeID),
			TotalPaid:        totalPaid,
			RemainingBalance: remaining,
			FullyPaid:        remaining.IsZero(),
		}
		if customer, err := s.customerRepo.FindByID(ctx, order.CustomerID); err == nil {
			row.CustomerName = customer.Name
			row.ContactNumber = customer.ContactNumber
		}
		response.Orders = append(response.Orders, row)

		response.Summary.ReadyCount++
		if remaining.IsPositive() {
			response.Summary.WithBalanceCount++
			response.Summary.TotalPendingBalance = response.Summary.TotalPendingBalance.Add(remaining)
		} else {
			response.Summary.FullyPaidCount++
		}
	}

	return response, nil
}

// Process releases a finished order to the customer
// Any outstanding balance must be collected at the counter, the tailor's
// commission is credited, and the order is marked delivered
func (s *ClaimService) Process(ctx context.Context, orderID uuid.UUID, req ProcessClaimRequest, processedBy uuid.UUID) (*OrderResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "claim", "process")
	defer span.End()

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !isClaimable(order.Status) {
		return nil, shared.NewDomainError("INVALID_STATE", "Only completed orders can be claimed")
	}

	telemetry.SetAttributes(span, telemetry.SpanAttrOrderNumber, order.OrderNumber)

	totalPaid, err := s.paymentRepo.TotalCompletedByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	remaining := order.RemainingBalanceFor(totalPaid)
	if remaining.IsPositive() {
		if !req.CollectBalance {
			return nil, shared.NewDomainError("BALANCE_DUE",
				fmt.Sprintf("Outstanding balance of %s must be collected before release", remaining.StringFixed(2)))
		}

		payment, err := finance.NewPayment(order.ID, finance.PaymentTypeBalance, remaining)
		if err != nil {
			return nil, err
		}
		if processedBy != uuid.Nil {
			payment.ReceivedByUser(processedBy)
		}
		if req.Notes != "" {
			payment.SetNotes(req.Notes)
		}
		if err := s.paymentRepo.Save(ctx, payment); err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
		totalPaid = totalPaid.Add(remaining)
	}

	if err := s.creditCommission(ctx, order); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := order.Deliver(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.notifier.NotifyAdmins(ctx, notification.TypeOrderClaimed,
		"Order claimed",
		fmt.Sprintf("Order %s has been picked up by the customer", order.OrderNumber),
		order.ID)

	response := ToOrderResponse(order, totalPaid)
	return &response, nil
}

// creditCommission credits the tailor's commission once, at pickup
func (s *ClaimService) creditCommission(ctx context.Context, order *trade.Order) error {
	task, err := s.taskRepo.FindByOrder(ctx, order.ID)
	if err != nil {
		// Legacy orders without a task still get released
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	if task.Status != workshop.TaskStatusApproved || task.CommissionPaid {
		return nil
	}

	garmentTypeName := s.garmentTypeName(ctx, order.GarmentTypeID)
	customerName := ""
	if customer, err := s.customerRepo.FindByID(ctx, order.CustomerID); err == nil {
		customerName = customer.Name
	}

	commission, err := workshop.NewCommissionFromTask(task, garmentTypeName, order.Quantity, customerName)
	if err != nil {
		return err
	}
	if err := s.commissionRepo.Save(ctx, commission); err != nil {
		return err
	}

	if err := task.MarkCommissionPaid(); err != nil {
		return err
	}
	if err := s.taskRepo.SaveWithLock(ctx, task); err != nil {
		return err
	}

	s.notifier.NotifyUser(ctx, task.TailorID, notification.TypeCommissionCredited,
		"Commission credited",
		fmt.Sprintf("Your commission of %s for order %s has been credited",
			commission.Amount.StringFixed(2), order.OrderNumber),
		order.ID)

	return nil
}

func (s *ClaimService) garmentTypeName(ctx context.Context, garmentTypeID uuid.UUID) string {
	garmentType, err := s.garmentTypeRepo.FindByID(ctx, garmentTypeID)
	if err != nil {
		return ""
	}
	return garmentType.Name
}

func isClaimable(status trade.OrderStatus) bool {
	for _, s := range claimableStatuses {
		if status == s {
			return true
		}
	}
	return false
}
