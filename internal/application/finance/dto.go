package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanzy-lanzy/tailoring/internal/domain/finance"
)

// RecordPaymentRequest records money collected against an order
// The payment type is derived from the order's payment state
type RecordPaymentRequest struct {
	OrderID uuid.UUID       `json:"order_id" binding:"required"`
	Amount  decimal.Decimal `json:"amount" binding:"required"`
	Notes   string          `json:"notes"`
}

// PaymentListFilter carries list query parameters
type PaymentListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Type     string `form:"type"`
	OrderID  string `form:"order_id"`
}

// PaymentResponse is the API representation of a payment
type PaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	PaymentNumber string          `json:"payment_number"`
	OrderID       uuid.UUID       `json:"order_id"`
	Type          string          `json:"type"`
	Method        string          `json:"method"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	ReceivedBy    *uuid.UUID      `json:"received_by,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	PaidAt        time.Time       `json:"paid_at"`
	CreatedAt     time.Time       `json:"created_at"`
}

// RecordPaymentResponse returns the stored payment with the order's
// refreshed payment summary
type RecordPaymentResponse struct {
	Payment          PaymentResponse `json:"payment"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	PaymentStatus    string          `json:"payment_status"`
}

// ToPaymentResponse converts a domain payment
func ToPaymentResponse(p *finance.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		PaymentNumber: p.PaymentNumber,
		OrderID:       p.OrderID,
		Type:          string(p.Type),
		Method:        string(p.Method),
		Amount:        p.Amount,
		Status:        string(p.Status),
		ReceivedBy:    p.ReceivedBy,
		Notes:         p.Notes,
		PaidAt:        p.PaidAt,
		CreatedAt:     p.CreatedAt,
	}
}

// ToPaymentResponses converts a slice of domain payments
func ToPaymentResponses(payments []finance.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses
}

// ReceiptDocument is a rendered receipt
type ReceiptDocument struct {
	HTML string `json:"html"`
	PDF  []byte `json:"-"`
}
