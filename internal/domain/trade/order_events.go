package trade

import (
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

// Event types for the order aggregate
const (
	EventOrderCreated       = "trade.order.created"
	EventOrderStatusChanged = "trade.order.status_changed"
)

// OrderCreatedEvent is emitted when an order is placed
type OrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string `json:"order_number"`
	Quantity    int    `json:"quantity"`
	TotalAmount string `json:"total_amount"`
}

// NewOrderCreatedEvent creates a new OrderCreatedEvent
func NewOrderCreatedEvent(o *Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderCreated, "Order", o.ID),
		OrderNumber:     o.OrderNumber,
		Quantity:        o.Quantity,
		TotalAmount:     o.TotalAmount.String(),
	}
}

// OrderStatusChangedEvent is emitted on every order status transition
type OrderStatusChangedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string      `json:"order_number"`
	OldStatus   OrderStatus `json:"old_status"`
	NewStatus   OrderStatus `json:"new_status"`
}

// NewOrderStatusChangedEvent creates a new OrderStatusChangedEvent
func NewOrderStatusChangedEvent(o *Order, oldStatus, newStatus OrderStatus) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderStatusChanged, "Order", o.ID),
		OrderNumber:     o.OrderNumber,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}
