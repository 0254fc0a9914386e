package workshop

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanzy-lanzy/tailoring/internal/domain/workshop"
)

// TaskListFilter carries list query parameters
type TaskListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Status   string `form:"status"`
	TailorID string `form:"tailor_id"`
}

// TaskResponse is the API representation of a tailoring task
type TaskResponse struct {
	ID               uuid.UUID       `json:"id"`
	OrderID          uuid.UUID       `json:"order_id"`
	OrderNumber      string          `json:"order_number,omitempty"`
	GarmentTypeName  string          `json:"garment_type_name,omitempty"`
	CustomerName     string          `json:"customer_name,omitempty"`
	Quantity         int             `json:"quantity,omitempty"`
	DueDate          *time.Time      `json:"due_date,omitempty"`
	TailorID         uuid.UUID       `json:"tailor_id"`
	Status           string          `json:"status"`
	CommissionRate   decimal.Decimal `json:"commission_rate"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	CommissionPaid   bool            `json:"commission_paid"`
	AssignedDate     time.Time       `json:"assigned_date"`
	StartedDate      *time.Time      `json:"started_date,omitempty"`
	CompletedDate    *time.Time      `json:"completed_date,omitempty"`
	ApprovedDate     *time.Time      `json:"approved_date,omitempty"`
	Notes            string          `json:"notes,omitempty"`
}

// ToTaskResponse converts a domain task
func ToTaskResponse(t *workshop.Task) TaskResponse {
	return TaskResponse{
		ID:               t.ID,
		OrderID:          t.OrderID,
		TailorID:         t.TailorID,
		Status:           t.Status.String(),
		CommissionRate:   t.CommissionRate,
		CommissionAmount: t.CommissionAmount,
		CommissionPaid:   t.CommissionPaid,
		AssignedDate:     t.AssignedDate,
		StartedDate:      t.StartedDate,
		CompletedDate:    t.CompletedDate,
		ApprovedDate:     t.ApprovedDate,
		Notes:            t.Notes,
	}
}

// CommissionListFilter carries list query parameters
type CommissionListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Status   string `form:"status"`
	TailorID string `form:"tailor_id"`
}

// CommissionResponse is the API representation of a credited commission
type CommissionResponse struct {
	ID               uuid.UUID       `json:"id"`
	CommissionNumber string          `json:"commission_number"`
	TaskID           uuid.UUID       `json:"task_id"`
	OrderID          uuid.UUID       `json:"order_id"`
	TailorID         uuid.UUID       `json:"tailor_id"`
	GarmentTypeName  string          `json:"garment_type_name"`
	Quantity         int             `json:"quantity"`
	CustomerName     string          `json:"customer_name"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
	CreditedDate     *time.Time      `json:"credited_date,omitempty"`
	PaidDate         *time.Time      `json:"paid_date,omitempty"`
}

// ToCommissionResponse converts a domain commission
func ToCommissionResponse(c *workshop.Commission) CommissionResponse {
	return CommissionResponse{
		ID:               c.ID,
		CommissionNumber: c.CommissionNumber,
		TaskID:           c.TaskID,
		OrderID:          c.OrderID,
		TailorID:         c.TailorID,
		GarmentTypeName:  c.GarmentTypeName,
		Quantity:         c.Quantity,
		CustomerName:     c.CustomerName,
		Amount:           c.Amount,
		Status:           string(c.Status),
		CreditedDate:     c.CreditedDate,
		PaidDate:         c.PaidDate,
	}
}

// ToCommissionResponses converts a slice of domain commissions
func ToCommissionResponses(commissions []workshop.Commission) []CommissionResponse {
	responses := make([]CommissionResponse, len(commissions))
	for i := range commissions {
		responses[i] = ToCommissionResponse(&commissions[i])
	}
	return responses
}

// GarmentBreakdownEntry is one garment type's share of a commission period
type GarmentBreakdownEntry struct {
	GarmentTypeName string          `json:"garment_type_name"`
	Quantity        int             `json:"quantity"`
	Amount          decimal.Decimal `json:"amount"`
}

// CommissionSummaryResponse aggregates a tailor's earnings for a period
type CommissionSummaryResponse struct {
	TailorID    uuid.UUID               `json:"tailor_id"`
	Period      string                  `json:"period"`
	From        time.Time               `json:"from"`
	To          time.Time               `json:"to"`
	TotalAmount decimal.Decimal         `json:"total_amount"`
	OrderCount  int                     `json:"order_count"`
	Breakdown   []GarmentBreakdownEntry `json:"breakdown"`
}
