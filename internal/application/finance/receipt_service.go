package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lanzy-lanzy/tailoring/internal/domain/catalog"
	"github.com/lanzy-lanzy/tailoring/internal/domain/finance"
	"github.com/lanzy-lanzy/tailoring/internal/domain/identity"
	"github.com/lanzy-lanzy/tailoring/internal/domain/partner"
	"github.com/lanzy-lanzy/tailoring/internal/domain/shared"
	"github.com/lanzy-lanzy/tailoring/internal/domain/trade"
	"github.com/lanzy-lanzy/tailoring/internal/infrastructure/printing"
)

// ReceiptService renders payment, order summary, and claim receipts
type ReceiptService struct {
	paymentRepo     finance.PaymentRepository
	orderRepo       trade.OrderRepository
	customerRepo    partner.CustomerRepository
	garmentTypeRepo catalog.GarmentTypeRepository
	userRepo        identity.UserRepository
	generator       *printing.ReceiptGenerator
}

// NewReceiptService creates a new ReceiptService
func NewReceiptService(
	paymentRepo finance.PaymentRepository,
	orderRepo trade.OrderRepository,
	customerRepo partner.CustomerRepository,
	garmentTypeRepo catalog.GarmentTypeRepository,
	userRepo identity.UserRepository,
	generator *printing.ReceiptGenerator,
) *ReceiptService {
	return &ReceiptService{
		paymentRepo:     paymentRepo,
		orderRepo:       orderRepo,
		customerRepo:    customerRepo,
		garmentTypeRepo: garmentTypeRepo,
		userRepo:        userRepo,
		generator:       generator,
	}
}

// PDFEnabled reports whether PDF receipts can be produced
func (s *ReceiptService) PDFEnabled() bool {
	return s.generator.PDFEnabled()
}

// PaymentReceipt renders the receipt for a single payment
func (s *ReceiptService) PaymentReceipt(ctx context.Context, paymentID uuid.UUID, asPDF bool) (*ReceiptDocument, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByID(ctx, payment.OrderID)
	if err != nil {
		return nil, err
	}

	data, err := s.buildData(ctx, order)
	if err != nil {
		return nil, err
	}
	data.PaymentNumber = payment.PaymentNumber
	data.PaymentType = string(payment.Type)
	data.PaymentMethod = string(payment.Method)
	data.PaidAt = payment.PaidAt
	data.AmountPaid = payment.Amount
	data.Notes = payment.Notes
	if payment.ReceivedBy != nil {
		if user, err := s.userRepo.FindByID(ctx, *payment.ReceivedBy); err == nil {
			data.ReceivedBy = user.FullName
		}
	}

	return s.render(ctx, data, asPDF)
}

// OrderSummaryReceipt renders the running statement for an order:
// total price, everything collected so far, and the balance
func (s *ReceiptService) OrderSummaryReceipt(ctx context.Context, orderID uuid.UUID, asPDF bool) (*ReceiptDocument, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	data, err := s.buildData(ctx, order)
	if err != nil {
		return nil, err
	}
	data.PaymentType = "statement"
	data.AmountPaid = data.TotalPaid
	data.PaidAt = order.UpdatedAt

	return s.render(ctx, data, asPDF)
}

// ClaimReceipt renders the pickup receipt for a delivered order
func (s *ReceiptService) ClaimReceipt(ctx context.Context, orderID uuid.UUID, asPDF bool) (*ReceiptDocument, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != trade.OrderStatusDelivered {
		return nil, shared.NewDomainError("INVALID_STATE", "Claim receipts are only available for delivered orders")
	}

	data, err := s.buildData(ctx, order)
	if err != nil {
		return nil, err
	}
	data.PaymentType = "claim"
	data.AmountPaid = data.TotalPaid
	data.PaidAt = order.UpdatedAt

	return s.render(ctx, data, asPDF)
}

// buildData assembles the order, customer, and payment summary shared
// by every receipt variant
func (s *ReceiptService) buildData(ctx context.Context, order *trade.Order) (printing.ReceiptData, error) {
	data := printing.ReceiptData{
		OrderNumber: order.OrderNumber,
		Quantity:    order.Quantity,
		TotalPrice:  order.TotalAmount,
	}

	if garmentType, err := s.garmentTypeRepo.FindByID(ctx, order.GarmentTypeID); err == nil {
		data.GarmentType = garmentType.Name
	}

	customer, err := s.customerRepo.FindByID(ctx, order.CustomerID)
	if err != nil {
		return data, err
	}
	data.CustomerName = customer.Name
	data.CustomerContact = customer.ContactNumber

	totalPaid, err := s.paymentRepo.TotalCompletedByOrder(ctx, order.ID)
	if err != nil {
		return data, err
	}
	data.TotalPaid = totalPaid
	data.Balance = order.RemainingBalanceFor(totalPaid)
	if data.Balance.IsNegative() {
		data.Balance = decimal.Zero
	}

	return data, nil
}

func (s *ReceiptService) render(ctx context.Context, data printing.ReceiptData, asPDF bool) (*ReceiptDocument, error) {
	html, err := s.generator.BuildHTML(data)
	if err != nil {
		return nil, err
	}

	doc := &ReceiptDocument{HTML: html}
	if asPDF {
		if !s.generator.PDFEnabled() {
			return nil, shared.NewDomainError("PDF_DISABLED", "PDF receipt rendering is not enabled")
		}
		pdf, err := s.generator.RenderPDF(ctx, data)
		if err != nil {
			return nil, err
		}
		doc.PDF = pdf
	}
	return doc, nil
}
