package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	financeapp "github.com/lanzy-lanzy/tailoring/internal/application/finance"
)

// ReceiptHandler renders payment and claim receipts as HTML or PDF
type ReceiptHandler struct {
	BaseHandler
	receiptService *financeapp.ReceiptService
}

// NewReceiptHandler creates a new ReceiptHandler
func NewReceiptHandler(receiptService *financeapp.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// PaymentReceipt renders the receipt for a single payment
func (h *ReceiptHandler) PaymentReceipt(c *gin.Context) {
	h.render(c, "payment", h.receiptService.PaymentReceipt)
}

// OrderSummary renders an order's statement of account
func (h *ReceiptHandler) OrderSummary(c *gin.Context) {
	h.render(c, "order-summary", h.receiptService.OrderSummaryReceipt)
}

// ClaimReceipt renders the pickup receipt for a delivered order
func (h *ReceiptHandler) ClaimReceipt(c *gin.Context) {
	h.render(c, "claim", h.receiptService.ClaimReceipt)
}

type receiptFn func(ctx context.Context, id uuid.UUID, asPDF bool) (*financeapp.ReceiptDocument, error)

func (h *ReceiptHandler) render(c *gin.Context, kind string, generate receiptFn) {
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid ID")
		return
	}
	asPDF := c.Query("format") == "pdf"

	doc, err := generate(c.Request.Context(), id, asPDF)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if asPDF {
		filename := fmt.Sprintf("%s-receipt-%s.pdf", kind, id)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "application/pdf", doc.PDF)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc.HTML))
}

// RegisterRoutes registers receipt routes
func (h *ReceiptHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/payments/:id/receipt", h.PaymentReceipt)
	rg.GET("/orders/:id/summary-receipt", h.OrderSummary)
	rg.GET("/orders/:id/claim-receipt", h.ClaimReceipt)
}
