package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdminDashboardResponse is the shop-wide overview for admins
type AdminDashboardResponse struct {
	OrdersByStatus      map[string]int64 `json:"orders_by_status"`
	OrdersToday         int64            `json:"orders_today"`
	RevenueToday        decimal.Decimal  `json:"revenue_today"`
	RevenueThisMonth    decimal.Decimal  `json:"revenue_this_month"`
	PendingBalance      decimal.Decimal  `json:"pending_balance"`
	LowStockFabrics     []FabricAlert    `json:"low_stock_fabrics"`
	LowStockAccessories []AccessoryAlert `json:"low_stock_accessories"`
	RecentOrders        []RecentOrder    `json:"recent_orders"`
	TailorWorkload      []TailorWorkload `json:"tailor_workload"`
}

// FabricAlert flags a fabric that has fallen below the restock level
type FabricAlert struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Color       string          `json:"color"`
	StockMeters decimal.Decimal `json:"stock_meters"`
}

// AccessoryAlert flags an accessory that has fallen below the restock level
type AccessoryAlert struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
}

// RecentOrder is a dashboard row for a newly placed order
type RecentOrder struct {
	ID              uuid.UUID       `json:"id"`
	OrderNumber     string          `json:"order_number"`
	CustomerName    string          `json:"customer_name,omitempty"`
	GarmentTypeName string          `json:"garment_type_name,omitempty"`
	Quantity        int             `json:"quantity"`
	Status          string          `json:"status"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TailorWorkload shows how many open tasks each tailor carries
type TailorWorkload struct {
	TailorID  uuid.UUID `json:"tailor_id"`
	FullName  string    `json:"full_name"`
	OpenTasks int64     `json:"open_tasks"`
}

// TailorDashboardResponse is a tailor's personal overview
type TailorDashboardResponse struct {
	TasksByStatus map[string]int64 `json:"tasks_by_status"`
	OpenTasks     int64            `json:"open_tasks"`
	CurrentTasks  []CurrentTask    `json:"current_tasks"`
}

// CurrentTask is a dashboard row for a task that still needs work
type CurrentTask struct {
	ID               uuid.UUID       `json:"id"`
	OrderID          uuid.UUID       `json:"order_id"`
	OrderNumber      string          `json:"order_number,omitempty"`
	GarmentTypeName  string          `json:"garment_type_name,omitempty"`
	Quantity         int             `json:"quantity"`
	DueDate          *time.Time      `json:"due_date,omitempty"`
	Status           string          `json:"status"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	AssignedDate     time.Time       `json:"assigned_date"`
}
