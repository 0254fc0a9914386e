// Package workshop contains application services for tailoring tasks
// and commissions.
package workshop

import (
	"context"
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

// Notifier fans out in-app notifications
// Notification failures must never abort a task operation
type Notifier interface {
	NotifyUser(ctx context.Context, recipientID uuid.UUID, notifType notification.Type, title, message string, referenceID uuid.UUID)
	NotifyAdmins(ctx context.Context, notifType notification.Type, title, message string, referenceID uuid.UUID)
}

// ReadySMSSender texts the customer that their order is ready for pickup
type ReadySMSSender interface {
	SendOrderReady(ctx context.Context, orderID uuid.UUID, phone, customerName, orderNumber, garmentTypeName string, balance decimal.Decimal)
}

// TaskService handles the tailor's work queue and the approval flow
type TaskService struct {
	taskRepo        workshop.TaskRepository
	orderRepo       trade.OrderRepository
	customerRepo    partner.CustomerRepository
	garmentTypeRepo catalog.GarmentTypeRepository
	paymentRepo     finance.PaymentRepository
	notifier        Notifier
	sms             ReadySMSSender
}

// NewTaskService creates a new TaskService
func NewTaskService(
	taskRepo workshop.TaskRepository,
	orderRepo trade.OrderRepository,
	customerRepo partner.CustomerRepository,
	garmentTypeRepo catalog.GarmentTypeRepository,
	paymentRepo finance.PaymentRepository,
	notifier Notifier,
	sms ReadySMSSender,
) *TaskService {
	return &TaskService{
		taskRepo:        taskRepo,
		orderRepo:       orderRepo,
		customerRepo:    customerRepo,
		garmentTypeRepo: garmentTypeRepo,
		paymentRepo:     paymentRepo,
		notifier:        notifier,
		sms:             sms,
	}
}

// GetByID retrieves a task. Tailors can only see their own assignments.
func (s *TaskService) GetByID(ctx context.Context, taskID, requesterID uuid.UUID, isAdmin bool) (*TaskResponse, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && !task.BelongsTo(requesterID) {
		return nil, shared.ErrForbidden
	}

	response := s.enrich(ctx, task)
	return &response, nil
}

// ListMine retrieves the tasks assigned to a tailor
func (s *TaskService) ListMine(ctx context.Context, tailorID uuid.UUID, filter TaskListFilter) ([]TaskResponse, int64, error) {
	domainFilter := buildTaskFilter(filter)

	tasks, err := s.taskRepo.FindByTailor(ctx, tailorID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	countFilter := domainFilter
	countFilter.Filters = map[string]any{"tailor_id": tailorID}
	if filter.Status != "" {
		countFilter.Filters["status"] = workshop.TaskStatus(filter.Status)
	}
	total, err := s.taskRepo.Count(ctx, countFilter)
	if err != nil {
		return nil, 0, err
	}

	return s.enrichAll(ctx, tasks), total, nil
}

// List retrieves all tasks for the admin's workboard
func (s *TaskService) List(ctx context.Context, filter TaskListFilter) ([]TaskResponse, int64, error) {
	domainFilter := buildTaskFilter(filter)
	if filter.TailorID != "" {
		tailorID, err := uuid.Parse(filter.TailorID)
		if err != nil {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "Invalid tailor ID")
		}
		domainFilter.Filters["tailor_id"] = tailorID
	}

	tasks, err := s.taskRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.taskRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return s.enrichAll(ctx, tasks), total, nil
}

// Start begins work on an assignment
// The order follows the task into production
func (s *TaskService) Start(ctx context.Context, taskID, tailorID uuid.UUID) (*TaskResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "task", "start")
	defer span.End()

	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !task.BelongsTo(tailorID) {
		return nil, shared.ErrForbidden
	}

	if err := task.Start(); err != nil {
		return nil, err
	}
	if err := s.taskRepo.SaveWithLock(ctx, task); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	order, err := s.orderRepo.FindByID(ctx, task.OrderID)
	if err != nil {
		return nil, err
	}
	if err := order.Start(); err == nil {
		if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
	}

	s.notifier.NotifyAdmins(ctx, notification.TypeTaskStarted,
		"Task started",
		fmt.Sprintf("Work on order %s has started", order.OrderNumber),
		order.ID)

	response := s.enrich(ctx, task)
	return &response, nil
}

// Complete marks the assignment's work as done, pending admin approval
func (s *TaskService) Complete(ctx context.Context, taskID, tailorID uuid.UUID) (*TaskResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "task", "complete")
	defer span.End()

	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !task.BelongsTo(tailorID) {
		return nil, shared.ErrForbidden
	}

	if err := task.Complete(); err != nil {
		return nil, err
	}
	if err := s.taskRepo.SaveWithLock(ctx, task); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	orderNumber := ""
	if order, err := s.orderRepo.FindByID(ctx, task.OrderID); err == nil {
		orderNumber = order.OrderNumber
	}
	s.notifier.NotifyAdmins(ctx, notification.TypeTaskCompleted,
		"Task completed",
		fmt.Sprintf("Order %s is finished and awaits approval", orderNumber),
		task.OrderID)

	response := s.enrich(ctx, task)
	return &response, nil
}

// Approve accepts the completed work
// The order is marked completed, the tailor is notified, and the
// customer receives the ready-for-pickup SMS
func (s *TaskService) Approve(ctx context.Context, taskID, approverID uuid.UUID) (*TaskResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "task", "approve")
	defer span.End()

	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := task.Approve(approverID); err != nil {
		return nil, err
	}
	if err := s.taskRepo.SaveWithLock(ctx, task); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	order, err := s.orderRepo.FindByID(ctx, task.OrderID)
	if err != nil {
		return nil, err
	}
	if err := order.Complete(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.notifier.NotifyUser(ctx, task.TailorID, notification.TypeTaskApproved,
		"Work approved",
		fmt.Sprintf("Your work on order %s has been approved", order.OrderNumber),
		order.ID)

	s.sendReadySMS(ctx, order)

	response := s.enrich(ctx, task)
	return &response, nil
}

// sendReadySMS texts the customer that the order can be picked up
func (s *TaskService) sendReadySMS(ctx context.Context, order *trade.Order) {
	customer, err := s.customerRepo.FindByID(ctx, order.CustomerID)
	if err != nil {
		return
	}

	garmentTypeName := ""
	if garmentType, err := s.garmentTypeRepo.FindByID(ctx, order.GarmentTypeID); err == nil {
		garmentTypeName = garmentType.Name
	}

	balance := order.BalanceAmount
	if totalPaid, err := s.paymentRepo.TotalCompletedByOrder(ctx, order.ID); err == nil {
		balance = order.RemainingBalanceFor(totalPaid)
	}

	s.sms.SendOrderReady(ctx, order.ID, customer.ContactNumber, customer.Name,
		order.OrderNumber, garmentTypeName, balance)
}

// enrich attaches order context to a task row
func (s *TaskService) enrich(ctx context.Context, task *workshop.Task) TaskResponse {
	response := ToTaskResponse(task)

	order, err := s.orderRepo.FindByID(ctx, task.OrderID)
	if err != nil {
		return response
	}
	response.OrderNumber = order.OrderNumber
	response.Quantity = order.Quantity
	response.DueDate = order.DueDate

	if garmentType, err := s.garmentTypeRepo.FindByID(ctx, order.GarmentTypeID); err == nil {
		response.GarmentTypeName = garmentType.Name
	}
	if customer, err := s.customerRepo.FindByID(ctx, order.CustomerID); err == nil {
		response.CustomerName = customer.Name
	}
	return response
}

func (s *TaskService) enrichAll(ctx context.Context, tasks []workshop.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = s.enrich(ctx, &tasks[i])
	}
	return responses
}

func buildTaskFilter(filter TaskListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "assigned_date"
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
	if filter.Status != "" {
		domainFilter.Filters["status"] = workshop.TaskStatus(filter.Status)
	}
	return domainFilter
}
