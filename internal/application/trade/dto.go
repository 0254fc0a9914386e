package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanzy-lanzy/tailoring/internal/domain/trade"
)

// CreateOrderRequest is the request to place a tailoring order
type CreateOrderRequest struct {
	CustomerID    uuid.UUID         `json:"customer_id" binding:"required"`
	GarmentTypeID uuid.UUID         `json:"garment_type_id" binding:"required"`
	FabricID      uuid.UUID         `json:"fabric_id" binding:"required"`
	Quantity      int               `json:"quantity" binding:"required,min=1"`
	Measurements  map[string]string `json:"measurements"`
	DueDate       *time.Time        `json:"due_date"`
	Notes         string            `json:"notes"`
	// FullPayment collects the whole total up front instead of the 50% deposit
	FullPayment bool `json:"full_payment"`
}

// ReviseOrderRequest is the request to edit an order's garment selection
type ReviseOrderRequest struct {
	GarmentTypeID uuid.UUID         `json:"garment_type_id" binding:"required"`
	FabricID      uuid.UUID         `json:"fabric_id" binding:"required"`
	Quantity      int               `json:"quantity" binding:"required,min=1"`
	Measurements  map[string]string `json:"measurements"`
	DueDate       *time.Time        `json:"due_date"`
	Notes         *string           `json:"notes"`
}

// OrderListFilter carries list query parameters
type OrderListFilter struct {
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir"`
	Search     string `form:"search"`
	Status     string `form:"status"`
	CustomerID string `form:"customer_id"`
}

// StockCheckRequest asks whether an order of this shape could be placed
type StockCheckRequest struct {
	GarmentTypeID uuid.UUID `form:"garment_type_id" binding:"required"`
	FabricID      uuid.UUID `form:"fabric_id" binding:"required"`
	Quantity      int       `form:"quantity" binding:"required,min=1"`
}

// StockCheckItem reports one stock line of a check
type StockCheckItem struct {
	ItemType  string          `json:"item_type"`
	ItemID    uuid.UUID       `json:"item_id"`
	ItemName  string          `json:"item_name"`
	Required  decimal.Decimal `json:"required"`
	Available decimal.Decimal `json:"available"`
	Short     bool            `json:"short"`
}

// StockCheckResponse reports whether stock covers the requested order
type StockCheckResponse struct {
	Sufficient bool             `json:"sufficient"`
	Items      []StockCheckItem `json:"items"`
}

// ProcessClaimRequest releases a finished order to the customer
type ProcessClaimRequest struct {
	// CollectBalance records the outstanding balance as a payment at pickup
	CollectBalance bool   `json:"collect_balance"`
	Notes          string `json:"notes"`
}

// ClaimOrderResponse is one claimable order on the claims board
type ClaimOrderResponse struct {
	Order            OrderResponse   `json:"order"`
	CustomerName     string          `json:"customer_name"`
	ContactNumber    string          `json:"contact_number"`
	GarmentTypeName  string          `json:"garment_type_name"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	FullyPaid        bool            `json:"fully_paid"`
}

// ClaimsSummary aggregates the pickup stats shown above the claims board
type ClaimsSummary struct {
	ReadyCount          int             `json:"ready_count"`
	WithBalanceCount    int             `json:"with_balance_count"`
	FullyPaidCount      int             `json:"fully_paid_count"`
	TotalPendingBalance decimal.Decimal `json:"total_pending_balance"`
}

// ClaimsListResponse is the claims board payload
type ClaimsListResponse struct {
	Orders  []ClaimOrderResponse `json:"orders"`
	Summary ClaimsSummary        `json:"summary"`
}

// OrderAccessoryResponse is the API representation of an accessory deduction
type OrderAccessoryResponse struct {
	AccessoryID   uuid.UUID       `json:"accessory_id"`
	AccessoryName string          `json:"accessory_name"`
	QuantityUsed  decimal.Decimal `json:"quantity_used"`
}

// OrderResponse is the API representation of an order
type OrderResponse struct {
	ID               uuid.UUID                `json:"id"`
	OrderNumber      string                   `json:"order_number"`
	CustomerID       uuid.UUID                `json:"customer_id"`
	GarmentTypeID    uuid.UUID                `json:"garment_type_id"`
	FabricID         uuid.UUID                `json:"fabric_id"`
	Quantity         int                      `json:"quantity"`
	Measurements     map[string]string        `json:"measurements"`
	Status           string                   `json:"status"`
	TotalAmount      decimal.Decimal          `json:"total_amount"`
	DepositAmount    decimal.Decimal          `json:"deposit_amount"`
	BalanceAmount    decimal.Decimal          `json:"balance_amount"`
	TotalPaid        decimal.Decimal          `json:"total_paid"`
	RemainingBalance decimal.Decimal          `json:"remaining_balance"`
	PaymentStatus    string                   `json:"payment_status"`
	DueDate          *time.Time               `json:"due_date,omitempty"`
	Notes            string                   `json:"notes,omitempty"`
	CompletedDate    *time.Time               `json:"completed_date,omitempty"`
	Accessories      []OrderAccessoryResponse `json:"accessories"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

// ToOrderResponse converts a domain order plus its collected total
func ToOrderResponse(o *trade.Order, totalPaid decimal.Decimal) OrderResponse {
	measurements, err := o.MeasurementsMap()
	if err != nil {
		measurements = map[string]string{}
	}

	accessories := make([]OrderAccessoryResponse, len(o.Accessories))
	for i, acc := range o.Accessories {
		accessories[i] = OrderAccessoryResponse{
			AccessoryID:   acc.AccessoryID,
			AccessoryName: acc.AccessoryName,
			QuantityUsed:  acc.QuantityUsed,
		}
	}

	return OrderResponse{
		ID:               o.ID,
		OrderNumber:      o.OrderNumber,
		CustomerID:       o.CustomerID,
		GarmentTypeID:    o.GarmentTypeID,
		FabricID:         o.FabricID,
		Quantity:         o.Quantity,
		Measurements:     measurements,
		Status:           o.Status.String(),
		TotalAmount:      o.TotalAmount,
		DepositAmount:    o.DepositAmount,
		BalanceAmount:    o.BalanceAmount,
		TotalPaid:        totalPaid,
		RemainingBalance: o.RemainingBalanceFor(totalPaid),
		PaymentStatus:    string(o.PaymentStatusFor(totalPaid)),
		DueDate:          o.DueDate,
		Notes:            o.Notes,
		CompletedDate:    o.CompletedDate,
		Accessories:      accessories,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

// ToOrderListResponses converts orders without per-order payment lookups
// Payment details are loaded on the detail endpoint only
func ToOrderListResponses(orders []trade.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i], decimal.Zero)
		// List rows show the stored balance rather than a computed one
		responses[i].TotalPaid = decimal.Zero
		responses[i].RemainingBalance = orders[i].BalanceAmount
		responses[i].PaymentStatus = ""
	}
	return responses
}
