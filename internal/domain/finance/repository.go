package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentRepository defines the persistence contract for payments
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	FindByPaymentNumber(ctx context.Context, paymentNumber string) (*Payment, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Payment, error)
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]Payment, error)
	Save(ctx context.Context, payment *Payment) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// TotalCompletedByOrder sums completed payments for an order
	TotalCompletedByOrder(ctx context.Context, orderID uuid.UUID) (decimal.Decimal, error)
	// TotalCompletedInRange sums completed payments across all orders in a period
	TotalCompletedInRange(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}
