// Package report contains the dashboard aggregation services.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanzy-lanzy/tailoring/internal/domain/catalog"
	"github.com/lanzy-lanzy/tailoring/internal/domain/finance"
	"github.com/lanzy-lanzy/tailoring/internal/domain/identity"
	"github.com/lanzy-lanzy/tailoring/internal/domain/inventory"
	"github.com/lanzy-lanzy/tailoring/internal/domain/partner"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
	"github.com/lanzy-lanzy/tailoring/internal/domain/trade"
	"github.com/lanzy-lanzy/tailoring/internal/domain/workshop"
	"github.com/lanzy-lanzy/tailoring/internal/infrastructure/telemetry"
)

const (
	recentOrderLimit = 5
	// outstanding balances are summed over finished-but-unclaimed orders;
	// a small shop never has more than a page of those
	balancePageSize = 200
)

// orderStatuses drives the by-status breakdown on the admin dashboard
var orderStatuses = []trade.OrderStatus{
	trade.OrderStatusPending,
	trade.OrderStatusInProgress,
	trade.OrderStatusCompleted,
	trade.OrderStatusForAdjustment,
	trade.OrderStatusReadyForReclaim,
	trade.OrderStatusDelivered,
	trade.OrderStatusCancelled,
}

// taskStatuses drives the by-status breakdown on the tailor dashboard
var taskStatuses = []workshop.TaskStatus{
	workshop.TaskStatusAssigned,
	workshop.TaskStatusInProgress,
	workshop.TaskStatusCompleted,
	workshop.TaskStatusApproved,
}

// DashboardService aggregates the admin and tailor dashboards
type DashboardService struct {
	orderRepo       trade.OrderRepository
	paymentRepo     finance.PaymentRepository
	fabricRepo      inventory.FabricRepository
	accessoryRepo   inventory.AccessoryRepository
	taskRepo        workshop.TaskRepository
	userRepo        identity.UserRepository
	customerRepo    partner.CustomerRepository
	garmentTypeRepo catalog.GarmentTypeRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	orderRepo trade.OrderRepository,
	paymentRepo finance.PaymentRepository,
	fabricRepo inventory.FabricRepository,
	accessoryRepo inventory.AccessoryRepository,
	taskRepo workshop.TaskRepository,
	userRepo identity.UserRepository,
	customerRepo partner.CustomerRepository,
	garmentTypeRepo catalog.GarmentTypeRepository,
) *DashboardService {
	return &DashboardService{
		orderRepo:       orderRepo,
		paymentRepo:     paymentRepo,
		fabricRepo:      fabricRepo,
		accessoryRepo:   accessoryRepo,
		taskRepo:        taskRepo,
		userRepo:        userRepo,
		customerRepo:    customerRepo,
		garmentTypeRepo: garmentTypeRepo,
	}
}

// AdminDashboard builds the shop-wide overview
func (s *DashboardService) AdminDashboard(ctx context.Context) (*AdminDashboardResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "dashboard", "admin")
	defer span.End()

	now := time.Now()
	resp := &AdminDashboardResponse{
		OrdersByStatus: make(map[string]int64, len(orderStatuses)),
	}

	for _, status := range orderStatuses {
		count, err := s.orderRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		resp.OrdersByStatus[string(status)] = count
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	ordersToday, err := s.orderRepo.CountCreatedSince(ctx, startOfDay)
	if err != nil {
		return nil, err
	}
	resp.OrdersToday = ordersToday

	revenueToday, err := s.paymentRepo.TotalCompletedInRange(ctx, startOfDay, now)
	if err != nil {
		return nil, err
	}
	resp.RevenueToday = revenueToday

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	revenueMonth, err := s.paymentRepo.TotalCompletedInRange(ctx, startOfMonth, now)
	if err != nil {
		return nil, err
	}
	resp.RevenueThisMonth = revenueMonth

	pending, err := s.pendingBalance(ctx)
	if err != nil {
		return nil, err
	}
	resp.PendingBalance = pending

	if err := s.fillLowStock(ctx, resp); err != nil {
		return nil, err
	}
	if err := s.fillRecentOrders(ctx, resp); err != nil {
		return nil, err
	}
	if err := s.fillTailorWorkload(ctx, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// TailorDashboard builds a tailor's personal overview
func (s *DashboardService) TailorDashboard(ctx context.Context, tailorID uuid.UUID) (*TailorDashboardResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "dashboard", "tailor")
	defer span.End()

	resp := &TailorDashboardResponse{
		TasksByStatus: make(map[string]int64, len(taskStatuses)),
	}

	for _, status := range taskStatuses {
		count, err := s.taskRepo.CountByTailorAndStatus(ctx, tailorID, status)
		if err != nil {
			return nil, err
		}
		resp.TasksByStatus[string(status)] = count
	}

	open, err := s.taskRepo.CountOpenByTailor(ctx, tailorID)
	if err != nil {
		return nil, err
	}
	resp.OpenTasks = open

	tasks, err := s.taskRepo.FindByTailor(ctx, tailorID, shared.Filter{
		Page:     1,
		PageSize: 50,
		OrderBy:  "assigned_date",
		OrderDir: "asc",
	})
	if err != nil {
		return nil, err
	}

	resp.CurrentTasks = make([]CurrentTask, 0, len(tasks))
	for i := range tasks {
		task := &tasks[i]
		if !task.IsOpen() {
			continue
		}
		row := CurrentTask{
			ID:               task.ID,
			OrderID:          task.OrderID,
			Status:           string(task.Status),
			CommissionAmount: task.CommissionAmount,
			AssignedDate:     task.AssignedDate,
		}
		if order, err := s.orderRepo.FindByID(ctx, task.OrderID); err == nil {
			row.OrderNumber = order.OrderNumber
			row.Quantity = order.Quantity
			row.DueDate = order.DueDate
			if garmentType, err := s.garmentTypeRepo.FindByID(ctx, order.GarmentTypeID); err == nil {
				row.GarmentTypeName = garmentType.Name
			}
		}
		resp.CurrentTasks = append(resp.CurrentTasks, row)
	}

	return resp, nil
}

// pendingBalance sums what customers still owe on finished orders that
// have not been picked up yet
func (s *DashboardService) pendingBalance(ctx context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	filter := shared.Filter{Page: 1, PageSize: balancePageSize}

	for _, status := range []trade.OrderStatus{trade.OrderStatusCompleted, trade.OrderStatusReadyForReclaim} {
		orders, err := s.orderRepo.FindByStatus(ctx, status, filter)
		if err != nil {
			return decimal.Zero, err
		}
		for i := range orders {
			paid, err := s.paymentRepo.TotalCompletedByOrder(ctx, orders[i].ID)
			if err != nil {
				return decimal.Zero, err
			}
			remaining := orders[i].RemainingBalanceFor(paid)
			if remaining.IsPositive() {
				total = total.Add(remaining)
			}
		}
	}

	return total, nil
}

func (s *DashboardService) fillLowStock(ctx context.Context, resp *AdminDashboardResponse) error {
	fabrics, err := s.fabricRepo.FindLowStock(ctx)
	if err != nil {
		return err
	}
	resp.LowStockFabrics = make([]FabricAlert, len(fabrics))
	for i := range fabrics {
		resp.LowStockFabrics[i] = FabricAlert{
			ID:          fabrics[i].ID,
			Name:        fabrics[i].Name,
			Color:       fabrics[i].Color,
			StockMeters: fabrics[i].StockMeters,
		}
	}

	accessories, err := s.accessoryRepo.FindLowStock(ctx)
	if err != nil {
		return err
	}
	resp.LowStockAccessories = make([]AccessoryAlert, len(accessories))
	for i := range accessories {
		resp.LowStockAccessories[i] = AccessoryAlert{
			ID:            accessories[i].ID,
			Name:          accessories[i].Name,
			Unit:          string(accessories[i].Unit),
			StockQuantity: accessories[i].StockQuantity,
		}
	}

	return nil
}

func (s *DashboardService) fillRecentOrders(ctx context.Context, resp *AdminDashboardResponse) error {
	orders, err := s.orderRepo.FindAll(ctx, shared.Filter{
		Page:     1,
		PageSize: recentOrderLimit,
		OrderBy:  "created_at",
		OrderDir: "desc",
	})
	if err != nil {
		return err
	}

	resp.RecentOrders = make([]RecentOrder, len(orders))
	for i := range orders {
		order := &orders[i]
		row := RecentOrder{
			ID:          order.ID,
			OrderNumber: order.OrderNumber,
			Quantity:    order.Quantity,
			Status:      string(order.Status),
			TotalAmount: order.TotalAmount,
			CreatedAt:   order.CreatedAt,
		}
		if customer, err := s.customerRepo.FindByID(ctx, order.CustomerID); err == nil {
			row.CustomerName = customer.Name
		}
		if garmentType, err := s.garmentTypeRepo.FindByID(ctx, order.GarmentTypeID); err == nil {
			row.GarmentTypeName = garmentType.Name
		}
		resp.RecentOrders[i] = row
	}

	return nil
}

func (s *DashboardService) fillTailorWorkload(ctx context.Context, resp *AdminDashboardResponse) error {
	tailors, err := s.userRepo.FindActiveByRole(ctx, identity.RoleTailor)
	if err != nil {
		return err
	}

	resp.TailorWorkload = make([]TailorWorkload, len(tailors))
	for i := range tailors {
		open, err := s.taskRepo.CountOpenByTailor(ctx, tailors[i].ID)
		if err != nil {
			return err
		}
		resp.TailorWorkload[i] = TailorWorkload{
			TailorID:  tailors[i].ID,
			FullName:  tailors[i].FullName,
			OpenTasks: open,
		}
	}

	return nil
}
