package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
)

// Customer represents a tailoring shop customer
// It is the aggregate root for customer-related operations
type Customer struct {
	shared.BaseAggregateRoot
	Name          string `gorm:"type:varchar(200);not null;index"`
	ContactNumber string `gorm:"type:varchar(50);not null;index"`
	Address       string `gorm:"type:text"`
	Email         string `gorm:"type:varchar(200)"`
	Notes         string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer with required fields
func NewCustomer(name, contactNumber, address, email string) (*Customer, error) {
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}
	if err := validateContactNumber(contactNumber); err != nil {
		return nil, err
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return nil, err
		}
	}

	customer := &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		ContactNumber:     strings.TrimSpace(contactNumber),
		Address:           address,
		Email:             email,
	}

	customer.AddDomainEvent(NewCustomerCreatedEvent(customer))

	return customer, nil
}

// Update updates the customer's details
func (c *Customer) Update(name, contactNumber, address, email string) error {
	if err := validateCustomerName(name); err != nil {
		return err
	}
	if err := validateContactNumber(contactNumber); err != nil {
		return err
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}

	c.Name = strings.TrimSpace(name)
	c.ContactNumber = strings.TrimSpace(contactNumber)
	c.Address = address
	c.Email = email
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerUpdatedEvent(c))

	return nil
}

// SetNotes sets the customer's notes
func (c *Customer) SetNotes(notes string) {
	c.Notes = notes
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// HasEmail returns true if the customer has an email address on file
func (c *Customer) HasEmail() bool {
	return c.Email != ""
}

// Validation functions

func validateCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}
	return nil
}

func validateContactNumber(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return shared.NewDomainError("INVALID_PHONE", "Contact number cannot be empty")
	}
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Contact number cannot exceed 50 characters")
	}
	// Allow digits, spaces, hyphens, parentheses, and plus sign
	validPhone := regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	if !validPhone.MatchString(strings.TrimSpace(phone)) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid contact number format")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
