package printing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanzy-lanzy/tailoring/internal/infrastructure/config"
)

func testReceiptData() ReceiptData {
	return ReceiptData{
		PaymentNumber:   "PAY-20260815-0003",
		PaymentType:     "deposit",
		PaymentMethod:   "cash",
		PaidAt:          time.Date(2026, 8, 15, 14, 30, 0, 0, time.UTC),
		OrderNumber:     "ORD-20260815-0001",
		GarmentType:     "Barong Tagalog",
		Quantity:        2,
		CustomerName:    "Ana Reyes",
		CustomerContact: "09171234567",
		TotalPrice:      decimal.NewFromInt(3000),
		AmountPaid:      decimal.NewFromInt(1500),
		TotalPaid:       decimal.NewFromInt(1500),
		Balance:         decimal.NewFromInt(1500),
		ReceivedBy:      "admin",
	}
}

func TestReceiptGenerator_BuildHTML(t *testing.T) {
	gen, err := NewReceiptGenerator(config.PrintingConfig{
		ShopName:    "Dipolog Tailoring",
		ShopAddress: "Rizal Ave, Dipolog City",
		ShopPhone:   "(065) 212-3456",
	}, nil)
	require.NoError(t, err)

	html, err := gen.BuildHTML(testReceiptData())
	require.NoError(t, err)

	assert.Contains(t, html, "DIPOLOG TAILORING")
	assert.Contains(t, html, "Rizal Ave, Dipolog City")
	assert.Contains(t, html, "PAY-20260815-0003")
	assert.Contains(t, html, "ORD-20260815-0001")
	assert.Contains(t, html, "Ana Reyes")
	assert.Contains(t, html, "Barong Tagalog")
	assert.Contains(t, html, "x2")
	assert.Contains(t, html, "₱3000.00")
	assert.Contains(t, html, "₱1500.00")
	assert.Contains(t, html, "Payment (deposit)")
	assert.Contains(t, html, "CASH")
	assert.Contains(t, html, "Received by: admin")
}

func TestReceiptGenerator_BuildHTML_SingleQuantityOmitsMultiplier(t *testing.T) {
	gen, err := NewReceiptGenerator(config.PrintingConfig{ShopName: "Shop"}, nil)
	require.NoError(t, err)

	data := testReceiptData()
	data.Quantity = 1

	html, err := gen.BuildHTML(data)
	require.NoError(t, err)
	assert.NotContains(t, html, "x1")
}

func TestReceiptGenerator_BuildHTML_EscapesCustomerInput(t *testing.T) {
	gen, err := NewReceiptGenerator(config.PrintingConfig{ShopName: "Shop"}, nil)
	require.NoError(t, err)

	data := testReceiptData()
	data.CustomerName = `<script>alert("x")</script>`

	html, err := gen.BuildHTML(data)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestReceiptGenerator_RenderPDF_Disabled(t *testing.T) {
	gen, err := NewReceiptGenerator(config.PrintingConfig{
		ShopName:   "Shop",
		PDFEnabled: false,
	}, nil)
	require.NoError(t, err)

	assert.False(t, gen.PDFEnabled())

	_, err = gen.RenderPDF(t.Context(), testReceiptData())
	require.Error(t, err)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeRenderFailed, renderErr.Code)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "₱150.50", formatMoney(decimal.NewFromFloat(150.5)))
	assert.Equal(t, "₱0.00", formatMoney(decimal.Zero))
}
