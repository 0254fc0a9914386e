package partner

import (
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

// Event types for the customer aggregate
const (
	EventCustomerCreated = "partner.customer.created"
	EventCustomerUpdated = "partner.customer.updated"
)

// CustomerCreatedEvent is emitted when a customer is created
type CustomerCreatedEvent struct {
	shared.BaseDomainEvent
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
}

// NewCustomerCreatedEvent creates a new CustomerCreatedEvent
func NewCustomerCreatedEvent(c *Customer) *CustomerCreatedEvent {
	return &CustomerCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCustomerCreated, "Customer", c.ID),
		Name:            c.Name,
		ContactNumber:   c.ContactNumber,
	}
}

// CustomerUpdatedEvent is emitted when a customer's details change
type CustomerUpdatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewCustomerUpdatedEvent creates a new CustomerUpdatedEvent
func NewCustomerUpdatedEvent(c *Customer) *CustomerUpdatedEvent {
	return &CustomerUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCustomerUpdated, "Customer", c.ID),
		Name:            c.Name,
	}
}
