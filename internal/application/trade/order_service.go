// Package trade contains application services for order intake and claims.
package trade

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanzy-lanzy/tailoring/internal/domain/catalog"
	"github.com/lanzy-lanzy/tailoring/internal/domain/finance"
	"github.com/lanzy-lanzy/tailoring/internal/domain/identity"
	"github.com/lanzy-lanzy/tailoring/internal/domain/inventory"
	"github.com/lanzy-lanzy/tailoring/internal/domain/notification"
	"github.com/lanzy-lanzy/tailoring/internal/domain/partner"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
	"github.com/lanzy-lanzy/tailoring/internal/domain/trade"
	"github.com/lanzy-lanzy/tailoring/internal/domain/workshop"
	"github.com/lanzy-lanzy/tailoring/internal/infrastructure/telemetry"
)

// Notifier fans out in-app notifications
// Notification failures must never abort an order operation
type Notifier interface {
	NotifyUser(ctx context.Context, recipientID uuid.UUID, notifType notification.Type, title, message string, referenceID uuid.UUID)
	NotifyAdmins(ctx context.Context, notifType notification.Type, title, message string, referenceID uuid.UUID)
}

// OrderService orchestrates order intake: stock checks and deductions,
// tailor assignment, task creation, and the deposit payment
type OrderService struct {
	orderRepo       trade.OrderRepository
	customerRepo    partner.CustomerRepository
	garmentTypeRepo catalog.GarmentTypeRepository
	fabricRepo      inventory.FabricRepository
	accessoryRepo   inventory.AccessoryRepository
	logRepo         inventory.InventoryLogRepository
	taskRepo        workshop.TaskRepository
	paymentRepo     finance.PaymentRepository
	userRepo        identity.UserRepository
	scope           TransactionScope
	notifier        Notifier
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo trade.OrderRepository,
	customerRepo partner.CustomerRepository,
	garmentTypeRepo catalog.GarmentTypeRepository,
	fabricRepo inventory.FabricRepository,
	accessoryRepo inventory.AccessoryRepository,
	logRepo inventory.InventoryLogRepository,
	taskRepo workshop.TaskRepository,
	paymentRepo finance.PaymentRepository,
	userRepo identity.UserRepository,
	scope TransactionScope,
	notifier Notifier,
) *OrderService {
	return &OrderService{
		orderRepo:       orderRepo,
		customerRepo:    customerRepo,
		garmentTypeRepo: garmentTypeRepo,
		fabricRepo:      fabricRepo,
		accessoryRepo:   accessoryRepo,
		logRepo:         logRepo,
		taskRepo:        taskRepo,
		paymentRepo:     paymentRepo,
		userRepo:        userRepo,
		scope:           scope,
		notifier:        notifier,
	}
}

// accessoryNeed pairs an accessory with the quantity an order consumes
type accessoryNeed struct {
	accessory *inventory.Accessory
	required  decimal.Decimal
}

// Create places a new order
// Stock is validated before anything is written, then fabric and
// accessories are deducted, a tailor is assigned, and the deposit
// (or full amount) is recorded as the first payment
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest, createdBy uuid.UUID) (*OrderResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "order", "create")
	defer span.End()

	customer, err := s.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	garmentType, err := s.garmentTypeRepo.FindByID(ctx, req.GarmentTypeID)
	if err != nil {
		return nil, err
	}
	if !garmentType.Active {
		return nil, shared.NewDomainError("INACTIVE_GARMENT_TYPE", "Garment type is not orderable")
	}

	fabric, err := s.fabricRepo.FindByID(ctx, req.FabricID)
	if err != nil {
		return nil, err
	}

	// Validate everything before the first write
	requiredFabric := garmentType.FabricRequiredFor(req.Quantity)
	if !fabric.HasSufficientStock(requiredFabric) {
		return nil, shared.NewDomainError("INSUFFICIENT_STOCK",
			fmt.Sprintf("Insufficient fabric stock. Need %sm, available %sm",
				requiredFabric.String(), fabric.StockMeters.String()))
	}

	needs, err := resolveAccessoryNeeds(ctx, s.accessoryRepo, garmentType, req.Quantity)
	if err != nil {
		return nil, err
	}

	order, err := trade.NewOrder(customer.ID, garmentType.ID, fabric.ID, req.Quantity, garmentType.BasePrice, req.Measurements)
	if err != nil {
		return nil, err
	}
	if req.DueDate != nil {
		order.SetDueDate(req.DueDate)
	}
	if req.Notes != "" {
		order.SetNotes(req.Notes)
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrOrderNumber, order.OrderNumber,
		telemetry.SpanAttrCustomerID, customer.ID.String(),
		telemetry.SpanAttrGarmentType, garmentType.Name,
	)

	tailor, err := s.pickTailor(ctx, garmentType)
	if err != nil {
		return nil, err
	}

	// Stock movements, the order row, the task, and the deposit payment
	// commit or roll back as one unit
	note := "Order " + order.OrderNumber
	var payment *finance.Payment
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := deductFabric(ctx, repos, fabric, requiredFabric, order.ID, note, createdBy); err != nil {
			return err
		}
		if err := deductAccessories(ctx, repos, order, needs, note, createdBy); err != nil {
			return err
		}
		if err := repos.Orders().Save(ctx, order); err != nil {
			return err
		}

		task, err := workshop.NewTask(order.ID, tailor.ID, order.TotalAmount)
		if err != nil {
			return err
		}
		if err := repos.Tasks().Save(ctx, task); err != nil {
			return err
		}

		payment, err = recordInitialPayment(ctx, repos.Payments(), order, req.FullPayment, createdBy)
		return err
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.notifier.NotifyUser(ctx, tailor.ID, notification.TypeTaskAssigned,
		"New task assigned",
		fmt.Sprintf("Order %s (%s x%d) for %s has been assigned to you",
			order.OrderNumber, garmentType.Name, order.Quantity, customer.Name),
		order.ID)

	response := ToOrderResponse(order, payment.Amount)
	return &response, nil
}

// GetByID retrieves an order with its computed payment summary
func (s *OrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	totalPaid, err := s.paymentRepo.TotalCompletedByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order, totalPaid)
	return &response, nil
}

// List retrieves orders with filtering and pagination
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) ([]OrderResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}
	if filter.Status != "" {
		status := trade.OrderStatus(filter.Status)
		if !status.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_STATUS", "Invalid order status")
		}
		domainFilter.Filters["status"] = status
	}
	if filter.CustomerID != "" {
		customerID, err := uuid.Parse(filter.CustomerID)
		if err != nil {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "Invalid customer ID")
		}
		domainFilter.Filters["customer_id"] = customerID
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToOrderListResponses(orders), total, nil
}

// CheckStock reports whether stock covers an order of the given shape
// without placing it. Used by the intake form before submission.
func (s *OrderService) CheckStock(ctx context.Context, req StockCheckRequest) (*StockCheckResponse, error) {
	garmentType, err := s.garmentTypeRepo.FindByID(ctx, req.GarmentTypeID)
	if err != nil {
		return nil, err
	}

	fabric, err := s.fabricRepo.FindByID(ctx, req.FabricID)
	if err != nil {
		return nil, err
	}

	requiredFabric := garmentType.FabricRequiredFor(req.Quantity)
	result := &StockCheckResponse{
		Sufficient: true,
		Items: []StockCheckItem{{
			ItemType:  string(inventory.ItemTypeFabric),
			ItemID:    fabric.ID,
			ItemName:  fabric.Name + " (" + fabric.Color + ")",
			Required:  requiredFabric,
			Available: fabric.StockMeters,
			Short:     !fabric.HasSufficientStock(requiredFabric),
		}},
	}

	for _, req2 := range garmentType.AccessoryRequirements {
		accessory, err := s.accessoryRepo.FindByID(ctx, req2.AccessoryID)
		if err != nil {
			return nil, err
		}
		required := req2.QuantityRequired.Mul(decimal.NewFromInt(int64(req.Quantity)))
		result.Items = append(result.Items, StockCheckItem{
			ItemType:  string(inventory.ItemTypeAccessory),
			ItemID:    accessory.ID,
			ItemName:  accessory.Name,
			Required:  required,
			Available: accessory.StockQuantity,
			Short:     !accessory.HasSufficientStock(required),
		})
	}

	for _, item := range result.Items {
		if item.Short {
			result.Sufficient = false
			break
		}
	}
	return result, nil
}

// Revise edits an order's garment selection while it is still editable
// Previously deducted stock is restored, then the new requirements are
// validated and deducted, and the order is repriced
func (s *OrderService) Revise(ctx context.Context, orderID uuid.UUID, req ReviseOrderRequest, revisedBy uuid.UUID) (*OrderResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "order", "revise")
	defer span.End()

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.IsEditable() {
		return nil, shared.NewDomainError("INVALID_STATE", "Order can no longer be edited")
	}

	telemetry.SetAttributes(span, telemetry.SpanAttrOrderNumber, order.OrderNumber)

	garmentType, err := s.garmentTypeRepo.FindByID(ctx, req.GarmentTypeID)
	if err != nil {
		return nil, err
	}
	if !garmentType.Active {
		return nil, shared.NewDomainError("INACTIVE_GARMENT_TYPE", "Garment type is not orderable")
	}

	// The restore, the re-check, and the new deductions share one
	// transaction: a revise that fails the re-check must not leave the
	// restored stock behind
	reason := "Order " + order.OrderNumber + " revised"
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := s.restoreOrderStock(ctx, repos, order, reason, revisedBy); err != nil {
			return err
		}
		order.ClearAccessoryUsage()

		// Read through the transaction so the restored stock is visible
		fabric, err := repos.Fabrics().FindByID(ctx, req.FabricID)
		if err != nil {
			return err
		}

		requiredFabric := garmentType.FabricRequiredFor(req.Quantity)
		if !fabric.HasSufficientStock(requiredFabric) {
			return shared.NewDomainError("INSUFFICIENT_STOCK",
				fmt.Sprintf("Insufficient fabric stock. Need %sm, available %sm",
					requiredFabric.String(), fabric.StockMeters.String()))
		}

		needs, err := resolveAccessoryNeeds(ctx, repos.Accessories(), garmentType, req.Quantity)
		if err != nil {
			return err
		}

		if err := order.Revise(garmentType.ID, fabric.ID, req.Quantity, garmentType.BasePrice, req.Measurements); err != nil {
			return err
		}
		if req.DueDate != nil {
			order.SetDueDate(req.DueDate)
		}
		if req.Notes != nil {
			order.SetNotes(*req.Notes)
		}

		if err := deductFabric(ctx, repos, fabric, requiredFabric, order.ID, reason, revisedBy); err != nil {
			return err
		}
		if err := deductAccessories(ctx, repos, order, needs, reason, revisedBy); err != nil {
			return err
		}

		if err := repos.Orders().Save(ctx, order); err != nil {
			return err
		}

		// The task's locked-in commission follows the new order total
		if task, err := repos.Tasks().FindByOrder(ctx, orderID); err == nil && task.IsOpen() {
			if err := task.SetCommissionRate(task.CommissionRate, order.TotalAmount); err == nil {
				_ = repos.Tasks().SaveWithLock(ctx, task)
			}
		}
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	totalPaid, err := s.paymentRepo.TotalCompletedByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order, totalPaid)
	return &response, nil
}

// UpdateStatus transitions the order through its lifecycle
// Used for the adjustment flow (completed -> for_adjustment -> ready_for_reclaim)
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, target string) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.TransitionTo(trade.OrderStatus(target)); err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, err
	}

	totalPaid, err := s.paymentRepo.TotalCompletedByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order, totalPaid)
	return &response, nil
}

// Cancel cancels an order, restores its stock, and releases the task
func (s *OrderService) Cancel(ctx context.Context, orderID uuid.UUID, cancelledBy uuid.UUID) (*OrderResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "order", "cancel")
	defer span.End()

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Cancel(); err != nil {
		return nil, err
	}

	// The restore, the status change, and the task release roll back
	// together if any of them fails
	reason := "Order " + order.OrderNumber + " cancelled"
	var released *workshop.Task
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := s.restoreOrderStock(ctx, repos, order, reason, cancelledBy); err != nil {
			return err
		}

		if err := repos.Orders().SaveWithLock(ctx, order); err != nil {
			return err
		}

		// Release the tailor if work has not finished
		if task, err := repos.Tasks().FindByOrder(ctx, orderID); err == nil && task.IsOpen() {
			if err := task.Cancel(); err == nil {
				if err := repos.Tasks().SaveWithLock(ctx, task); err == nil {
					released = task
				}
			}
		}
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if released != nil {
		s.notifier.NotifyUser(ctx, released.TailorID, notification.TypeGeneral,
			"Order cancelled",
			fmt.Sprintf("Order %s has been cancelled; the task is no longer assigned to you", order.OrderNumber),
			order.ID)
	}

	totalPaid, err := s.paymentRepo.TotalCompletedByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order, totalPaid)
	return &response, nil
}

// resolveAccessoryNeeds loads the garment type's accessory requirements
// and verifies stock covers the ordered quantity
func resolveAccessoryNeeds(ctx context.Context, accessoryRepo inventory.AccessoryRepository, garmentType *catalog.GarmentType, quantity int) ([]accessoryNeed, error) {
	if len(garmentType.AccessoryRequirements) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(garmentType.AccessoryRequirements))
	for i, req := range garmentType.AccessoryRequirements {
		ids[i] = req.AccessoryID
	}

	accessories, err := accessoryRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*inventory.Accessory, len(accessories))
	for i := range accessories {
		byID[accessories[i].ID] = &accessories[i]
	}

	needs := make([]accessoryNeed, 0, len(garmentType.AccessoryRequirements))
	for _, req := range garmentType.AccessoryRequirements {
		accessory, ok := byID[req.AccessoryID]
		if !ok {
			return nil, shared.NewDomainError("NOT_FOUND", "Required accessory no longer exists")
		}

		required := req.QuantityRequired.Mul(decimal.NewFromInt(int64(quantity)))
		if !accessory.HasSufficientStock(required) {
			return nil, shared.NewDomainError("INSUFFICIENT_STOCK",
				fmt.Sprintf("Insufficient stock for accessory '%s'. Need %s, available %s",
					accessory.Name, required.String(), accessory.StockQuantity.String()))
		}

		needs = append(needs, accessoryNeed{accessory: accessory, required: required})
	}
	return needs, nil
}

// deductFabric deducts fabric stock and writes the audit log entry
func deductFabric(ctx context.Context, repos TransactionalRepositories, fabric *inventory.Fabric, meters decimal.Decimal, orderID uuid.UUID, notes string, performedBy uuid.UUID) error {
	previous := fabric.StockMeters
	if err := fabric.Deduct(meters); err != nil {
		return err
	}
	if err := repos.Fabrics().SaveWithLock(ctx, fabric); err != nil {
		return err
	}

	writeStockLog(ctx, repos.InventoryLogs(), inventory.ItemTypeFabric, fabric.ID, fabric.Name+" ("+fabric.Color+")",
		inventory.LogActionDeduct, meters, previous, fabric.StockMeters, orderID, notes, performedBy)
	return nil
}

// deductAccessories deducts each accessory, snapshots the usage on the
// order, and writes the audit log entries
func deductAccessories(ctx context.Context, repos TransactionalRepositories, order *trade.Order, needs []accessoryNeed, notes string, performedBy uuid.UUID) error {
	for _, need := range needs {
		previous := need.accessory.StockQuantity
		if err := need.accessory.Deduct(need.required); err != nil {
			return err
		}
		if err := repos.Accessories().SaveWithLock(ctx, need.accessory); err != nil {
			return err
		}
		if err := order.AddAccessoryUsage(need.accessory.ID, need.accessory.Name, need.required); err != nil {
			return err
		}

		writeStockLog(ctx, repos.InventoryLogs(), inventory.ItemTypeAccessory, need.accessory.ID, need.accessory.Name,
			inventory.LogActionDeduct, need.required, previous, need.accessory.StockQuantity,
			order.ID, notes, performedBy)
	}
	return nil
}

// restoreOrderStock returns the order's fabric and accessory deductions
// to stock. Fabric is recomputed from the order's garment type; accessory
// amounts come from the usage snapshots.
func (s *OrderService) restoreOrderStock(ctx context.Context, repos TransactionalRepositories, order *trade.Order, notes string, performedBy uuid.UUID) error {
	garmentType, err := s.garmentTypeRepo.FindByID(ctx, order.GarmentTypeID)
	if err != nil {
		return err
	}
	fabric, err := repos.Fabrics().FindByID(ctx, order.FabricID)
	if err != nil {
		return err
	}

	meters := garmentType.FabricRequiredFor(order.Quantity)
	previous := fabric.StockMeters
	if err := fabric.Restore(meters); err != nil {
		return err
	}
	if err := repos.Fabrics().SaveWithLock(ctx, fabric); err != nil {
		return err
	}
	writeStockLog(ctx, repos.InventoryLogs(), inventory.ItemTypeFabric, fabric.ID, fabric.Name+" ("+fabric.Color+")",
		inventory.LogActionAdd, meters, previous, fabric.StockMeters, order.ID, notes, performedBy)

	for _, usage := range order.Accessories {
		accessory, err := repos.Accessories().FindByID(ctx, usage.AccessoryID)
		if err != nil {
			return err
		}
		prevQty := accessory.StockQuantity
		if err := accessory.Restore(usage.QuantityUsed); err != nil {
			return err
		}
		if err := repos.Accessories().SaveWithLock(ctx, accessory); err != nil {
			return err
		}
		writeStockLog(ctx, repos.InventoryLogs(), inventory.ItemTypeAccessory, accessory.ID, accessory.Name,
			inventory.LogActionAdd, usage.QuantityUsed, prevQty, accessory.StockQuantity,
			order.ID, notes, performedBy)
	}
	return nil
}

// pickTailor chooses who the order's task is assigned to
// The garment type's default tailor wins when set and active; otherwise
// the active tailor with the fewest open tasks takes it
func (s *OrderService) pickTailor(ctx context.Context, garmentType *catalog.GarmentType) (*identity.User, error) {
	if garmentType.DefaultTailorID != nil {
		user, err := s.userRepo.FindByID(ctx, *garmentType.DefaultTailorID)
		if err == nil && user.IsTailor() && user.Active {
			return user, nil
		}
	}

	tailors, err := s.userRepo.FindActiveByRole(ctx, identity.RoleTailor)
	if err != nil {
		return nil, err
	}
	if len(tailors) == 0 {
		return nil, shared.NewDomainError("NO_TAILOR_AVAILABLE", "No active tailor is available for assignment")
	}

	var picked *identity.User
	var fewest int64
	for i := range tailors {
		open, err := s.taskRepo.CountOpenByTailor(ctx, tailors[i].ID)
		if err != nil {
			return nil, err
		}
		if picked == nil || open < fewest {
			picked = &tailors[i]
			fewest = open
		}
	}
	return picked, nil
}

// recordInitialPayment records the deposit (or the full amount) that is
// collected when the order is placed
func recordInitialPayment(ctx context.Context, paymentRepo finance.PaymentRepository, order *trade.Order, fullPayment bool, receivedBy uuid.UUID) (*finance.Payment, error) {
	paymentType := finance.PaymentTypeDeposit
	amount := order.RequiredDeposit()
	if fullPayment {
		paymentType = finance.PaymentTypeFull
		amount = order.TotalAmount
	}

	payment, err := finance.NewPayment(order.ID, paymentType, amount)
	if err != nil {
		return nil, err
	}
	if receivedBy != uuid.Nil {
		payment.ReceivedByUser(receivedBy)
	}

	if err := paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func writeStockLog(ctx context.Context, logRepo inventory.InventoryLogRepository, itemType inventory.ItemType, itemID uuid.UUID, itemName string, action inventory.LogAction, quantity, previous, current decimal.Decimal, orderID uuid.UUID, notes string, performedBy uuid.UUID) {
	log, err := inventory.NewInventoryLog(itemType, itemID, itemName, action, quantity, previous, current)
	if err != nil {
		return
	}
	log.ForOrder(orderID)
	if notes != "" {
		log.WithNotes(notes)
	}
	if performedBy != uuid.Nil {
		log.By(performedBy)
	}
	// The audit trail must not fail the stock operation itself
	_ = logRepo.Save(ctx, log)
}
