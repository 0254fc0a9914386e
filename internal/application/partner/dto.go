package partner

import (
	"time"

	"github.com/google/uuid"

	"github.com/lanzy-lanzy/tailoring/internal/domain/partner"
)

// CreateCustomerRequest is the request to register a customer
type CreateCustomerRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactNumber string `json:"contact_number" binding:"required"`
	Address       string `json:"address"`
	Email         string `json:"email"`
	Notes         string `json:"notes"`
}

// UpdateCustomerRequest is the request to update a customer
// Nil fields are left unchanged
type UpdateCustomerRequest struct {
	Name          *string `json:"name"`
	ContactNumber *string `json:"contact_number"`
	Address       *string `json:"address"`
	Email         *string `json:"email"`
	Notes         *string `json:"notes"`
}

// CustomerListFilter carries list query parameters
type CustomerListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
}

// CustomerResponse is the API representation of a customer
type CustomerResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ContactNumber string    `json:"contact_number"`
	Address       string    `json:"address"`
	Email         string    `json:"email"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToCustomerResponse converts a domain customer to its API representation
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		ContactNumber: c.ContactNumber,
		Address:       c.Address,
		Email:         c.Email,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// ToCustomerResponses converts a slice of domain customers
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}
