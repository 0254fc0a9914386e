package printing

import (
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lanzy-lanzy/tailoring/internal/infrastructure/config"
)

// ReceiptData carries everything needed to render a payment receipt
type ReceiptData struct {
	ShopName    string
	ShopAddress string
	ShopPhone   string

	PaymentNumber string
	PaymentType   string
	PaymentMethod string
	PaidAt        time.Time

	OrderNumber string
	GarmentType string
	Quantity    int

	CustomerName    string
	CustomerContact string

	TotalPrice decimal.Decimal
	AmountPaid decimal.Decimal // this payment
	TotalPaid  decimal.Decimal // all completed payments so far
	Balance    decimal.Decimal

	ReceivedBy string
	Notes      string
}

// ReceiptGenerator builds receipt HTML and optionally renders it to PDF
type ReceiptGenerator struct {
	tmpl       *template.Template
	shopName   string
	shopAddr   string
	shopPhone  string
	renderer   PDFRenderer
	pdfEnabled bool
}

// NewReceiptGenerator creates a generator with shop details from
// configuration. The renderer may be nil when PDF output is disabled.
func NewReceiptGenerator(cfg config.PrintingConfig, renderer PDFRenderer) (*ReceiptGenerator, error) {
	tmpl, err := template.New("receipt").Funcs(template.FuncMap{
		"money": formatMoney,
		"upper": strings.ToUpper,
	}).Parse(receiptTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse receipt template: %w", err)
	}

	return &ReceiptGenerator{
		tmpl:       tmpl,
		shopName:   cfg.ShopName,
		shopAddr:   cfg.ShopAddress,
		shopPhone:  cfg.ShopPhone,
		renderer:   renderer,
		pdfEnabled: cfg.PDFEnabled && renderer != nil,
	}, nil
}

// PDFEnabled reports whether the generator can produce PDF output
func (g *ReceiptGenerator) PDFEnabled() bool {
	return g.pdfEnabled
}

// BuildHTML renders the receipt template for the given data. Shop details
// from configuration fill in any blank shop fields.
func (g *ReceiptGenerator) BuildHTML(data ReceiptData) (string, error) {
	if data.ShopName == "" {
		data.ShopName = g.shopName
	}
	if data.ShopAddress == "" {
		data.ShopAddress = g.shopAddr
	}
	if data.ShopPhone == "" {
		data.ShopPhone = g.shopPhone
	}

	var sb strings.Builder
	if err := g.tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("execute receipt template: %w", err)
	}
	return sb.String(), nil
}

// RenderPDF builds the receipt HTML and renders it to PDF
func (g *ReceiptGenerator) RenderPDF(ctx context.Context, data ReceiptData) ([]byte, error) {
	if !g.pdfEnabled {
		return nil, NewRenderError(ErrCodeRenderFailed, "PDF rendering is not enabled", nil)
	}

	html, err := g.BuildHTML(data)
	if err != nil {
		return nil, err
	}

	result, err := g.renderer.Render(ctx, &RenderRequest{
		HTML:      html,
		PaperSize: PaperSizeReceipt80,
		Title:     "Receipt " + data.PaymentNumber,
	})
	if err != nil {
		return nil, err
	}
	return result.PDFData, nil
}

// formatMoney renders a decimal amount with the peso sign and two decimals
func formatMoney(d decimal.Decimal) string {
	return "₱" + d.StringFixed(2)
}

const receiptTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Receipt {{.PaymentNumber}}</title>
<style>
  body { font-family: 'Courier New', monospace; font-size: 12px; margin: 0; padding: 8px; }
  .center { text-align: center; }
  .shop-name { font-size: 15px; font-weight: bold; }
  .muted { color: #444; }
  hr { border: none; border-top: 1px dashed #000; margin: 6px 0; }
  table { width: 100%; border-collapse: collapse; }
  td { padding: 1px 0; vertical-align: top; }
  td.amount { text-align: right; }
  .total td { font-weight: bold; border-top: 1px solid #000; padding-top: 3px; }
</style>
</head>
<body>
  <div class="center">
    <div class="shop-name">{{upper .ShopName}}</div>
    {{if .ShopAddress}}<div class="muted">{{.ShopAddress}}</div>{{end}}
    {{if .ShopPhone}}<div class="muted">{{.ShopPhone}}</div>{{end}}
  </div>
  <hr>
  <table>
    <tr><td>Receipt No.</td><td class="amount">{{.PaymentNumber}}</td></tr>
    <tr><td>Date</td><td class="amount">{{.PaidAt.Format "Jan 02, 2006 3:04 PM"}}</td></tr>
    <tr><td>Order No.</td><td class="amount">{{.OrderNumber}}</td></tr>
  </table>
  <hr>
  <table>
    <tr><td>Customer</td><td class="amount">{{.CustomerName}}</td></tr>
    {{if .CustomerContact}}<tr><td>Contact</td><td class="amount">{{.CustomerContact}}</td></tr>{{end}}
    <tr><td>Garment</td><td class="amount">{{.GarmentType}}{{if gt .Quantity 1}} x{{.Quantity}}{{end}}</td></tr>
  </table>
  <hr>
  <table>
    <tr><td>Total Price</td><td class="amount">{{money .TotalPrice}}</td></tr>
    <tr><td>Payment ({{.PaymentType}})</td><td class="amount">{{money .AmountPaid}}</td></tr>
    <tr><td>Method</td><td class="amount">{{upper .PaymentMethod}}</td></tr>
    <tr><td>Total Paid</td><td class="amount">{{money .TotalPaid}}</td></tr>
    <tr class="total"><td>Balance</td><td class="amount">{{money .Balance}}</td></tr>
  </table>
  {{if .ReceivedBy}}<hr><div>Received by: {{.ReceivedBy}}</div>{{end}}
  {{if .Notes}}<div class="muted">{{.Notes}}</div>{{end}}
  <hr>
  <div class="center muted">Thank you for your business!</div>
  <div class="center muted">Please present this receipt when claiming your order.</div>
</body>
</html>
`
