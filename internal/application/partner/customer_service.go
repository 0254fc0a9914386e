// Package partner contains application services for customer management.
package partner

import (
	"context"

	"github.com/google/uuid"

	"github.com/lanzy-lanzy/tailoring/internal/domain/partner"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
	"github.com/lanzy-lanzy/tailoring/internal/infrastructure/telemetry"
)

// OrderCounter reports how many orders a customer has placed
type OrderCounter interface {
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
}

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
	orderCounter OrderCounter
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository, orderCounter OrderCounter) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		orderCounter: orderCounter,
	}
}

// Create registers a new customer
// Duplicate contact numbers are rejected so SMS always reaches one person
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "customer", "create")
	defer span.End()

	exists, err := s.customerRepo.ExistsByContactNumber(ctx, req.ContactNumber)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this contact number already exists")
	}

	customer, err := partner.NewCustomer(req.Name, req.ContactNumber, req.Address, req.Email)
	if err != nil {
		return nil, err
	}
	if req.Notes != "" {
		customer.SetNotes(req.Notes)
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttributes(span, telemetry.SpanAttrCustomerID, customer.ID.String())

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves customers with filtering and pagination
func (s *CustomerService) List(ctx context.Context, filter CustomerListFilter) ([]CustomerResponse, int64, error) {
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

	customers, err := s.customerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.customerRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToCustomerResponses(customers), total, nil
}

// Search finds customers matching the query by name or contact number
// Used by the order intake form's typeahead
func (s *CustomerService) Search(ctx context.Context, query string, limit int) ([]CustomerResponse, error) {
	customers, err := s.customerRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponses(customers), nil
}

// Update updates a customer's details
func (s *CustomerService) Update(ctx context.Context, customerID uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	name := customer.Name
	contactNumber := customer.ContactNumber
	address := customer.Address
	email := customer.Email
	if req.Name != nil {
		name = *req.Name
	}
	if req.ContactNumber != nil {
		contactNumber = *req.ContactNumber
	}
	if req.Address != nil {
		address = *req.Address
	}
	if req.Email != nil {
		email = *req.Email
	}

	// A changed contact number must stay unique
	if req.ContactNumber != nil && *req.ContactNumber != customer.ContactNumber {
		exists, err := s.customerRepo.ExistsByContactNumber(ctx, *req.ContactNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this contact number already exists")
		}
	}

	if err := customer.Update(name, contactNumber, address, email); err != nil {
		return nil, err
	}
	if req.Notes != nil {
		customer.SetNotes(*req.Notes)
	}

	if err := s.customerRepo.SaveWithLock(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Delete removes a customer
// Customers with order history cannot be deleted
func (s *CustomerService) Delete(ctx context.Context, customerID uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return err
	}

	orders, err := s.orderCounter.CountByCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	if orders > 0 {
		return shared.NewDomainError("HAS_ORDERS", "Customer with existing orders cannot be deleted")
	}

	return s.customerRepo.Delete(ctx, customerID)
}
