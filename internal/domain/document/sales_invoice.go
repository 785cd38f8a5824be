package document

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailops/erp-backend/internal/domain/shared"
	"github.com/retailops/erp-backend/internal/domain/shared/valueobject"
)

// SalesInvoiceLine represents one invoiced product with its full
// discount and tax breakdown
type SalesInvoiceLine struct {
	ID                            uuid.UUID         `json:"id"`
	ProductID                     uuid.UUID         `json:"product_id"`
	Description                   string            `json:"description"`
	Quantity                      decimal.Decimal   `json:"quantity"`
	UnitOfMeasure                 string            `json:"unit_of_measure"`
	UnitPriceBeforeDiscount       valueobject.Money `json:"unit_price_before_discount"`
	ProductDiscountAmount         valueobject.Money `json:"product_discount_amount"`
	ProductDiscountPercentage     decimal.Decimal   `json:"product_discount_percentage"`
	UnitPriceAfterProductDiscount valueobject.Money `json:"unit_price_after_product_discount"`
	LineSubtotal                  valueobject.Money `json:"line_subtotal"`
	CostPriceAtSale               valueobject.Money `json:"cost_price_at_sale"`
	LineTaxRate                   decimal.Decimal   `json:"line_tax_rate"`
	LineTaxAmount                 valueobject.Money `json:"line_tax_amount"`
	LineTotal                     valueobject.Money `json:"line_total"`
}

// SalesLineDetails carries the caller-supplied fields for one line
type SalesLineDetails struct {
	ProductID                 uuid.UUID
	Description               string
	Quantity                  decimal.Decimal
	UnitOfMeasure             string
	UnitPriceBeforeDiscount   valueobject.Money
	ProductDiscountAmount     valueobject.Money
	ProductDiscountPercentage decimal.Decimal
	CostPriceAtSale           valueobject.Money
	LineTaxRate               decimal.Decimal
}

// NewSalesInvoiceLine creates a validated, fully derived invoice line
func NewSalesInvoiceLine(in SalesLineDetails) (SalesInvoiceLine, error) {
	if in.ProductID == uuid.Nil {
		return SalesInvoiceLine{}, shared.NewValidationError("line product is required")
	}
	calc, err := CalculateSalesLine(SalesLineInput{
		Quantity:                  in.Quantity,
		UnitPriceBeforeDiscount:   in.UnitPriceBeforeDiscount,
		ProductDiscountAmount:     in.ProductDiscountAmount,
		ProductDiscountPercentage: in.ProductDiscountPercentage,
		LineTaxRate:               in.LineTaxRate,
	})
	if err != nil {
		return SalesInvoiceLine{}, err
	}

	return SalesInvoiceLine{
		ID:                            uuid.New(),
		ProductID:                     in.ProductID,
		Description:                   in.Description,
		Quantity:                      in.Quantity,
		UnitOfMeasure:                 in.UnitOfMeasure,
		UnitPriceBeforeDiscount:       in.UnitPriceBeforeDiscount.Round2(),
		ProductDiscountAmount:         calc.ProductDiscountAmount,
		ProductDiscountPercentage:     in.ProductDiscountPercentage,
		UnitPriceAfterProductDiscount: calc.UnitPriceAfterProductDiscount,
		LineSubtotal:                  calc.LineSubtotal,
		CostPriceAtSale:               in.CostPriceAtSale.Round2(),
		LineTaxRate:                   in.LineTaxRate,
		LineTaxAmount:                 calc.LineTaxAmount,
		LineTotal:                     calc.LineTotal,
	}, nil
}

// SalesInvoice is the aggregate root for customer invoice documents
type SalesInvoice struct {
	DocumentNo                 string             `json:"document_no"`
	CustomerID                 uuid.UUID          `json:"customer_id"`
	StoreCode                  string             `json:"store_code"`
	InvoiceType                InvoiceType        `json:"invoice_type"`
	InvoiceDate                time.Time          `json:"invoice_date"`
	DueDate                    *time.Time         `json:"due_date,omitempty"`
	SalespersonID              string             `json:"salesperson_id,omitempty"`
	SalesOrderID               string             `json:"sales_order_id,omitempty"`
	Notes                      string             `json:"notes"`
	Status                     SalesInvoiceStatus `json:"status"`
	Lines                      []SalesInvoiceLine `json:"lines"`
	Subtotal                   valueobject.Money  `json:"subtotal"`
	TotalProductDiscountAmount valueobject.Money  `json:"total_product_discount_amount"`
	TotalInvoiceDiscountAmount valueobject.Money  `json:"total_invoice_discount_amount"`
	TaxableAmount              valueobject.Money  `json:"taxable_amount"`
	TaxRate                    decimal.Decimal    `json:"tax_rate"`
	TaxAmount                  valueobject.Money  `json:"tax_amount"`
	ShippingCharges            valueobject.Money  `json:"shipping_charges"`
	OtherCharges               valueobject.Money  `json:"other_charges"`
	GrandTotal                 valueobject.Money  `json:"grand_total"`
	AmountPaid                 valueobject.Money  `json:"amount_paid"`
	BalanceDue                 valueobject.Money  `json:"balance_due"`
	Version                    int                `json:"version"`
	CreatedAt                  time.Time          `json:"created_at"`
	UpdatedAt                  time.Time          `json:"updated_at"`
}

// SalesInvoiceCharges carries the header-level amounts of an invoice
type SalesInvoiceCharges struct {
	InvoiceDiscountAmount valueobject.Money
	TaxRate               decimal.Decimal
	ShippingCharges       valueobject.Money
	OtherCharges          valueobject.Money
}

// NewSalesInvoice creates a draft sales invoice with the given lines
func NewSalesInvoice(documentNo string, customerID uuid.UUID, storeCode string, invoiceType InvoiceType, invoiceDate time.Time, lines []SalesInvoiceLine, charges SalesInvoiceCharges) (*SalesInvoice, error) {
	if documentNo == "" {
		return nil, shared.NewValidationError("document number is required")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewValidationError("customer is required")
	}
	if storeCode == "" {
		return nil, shared.NewValidationError("store is required")
	}
	if !invoiceType.IsValid() {
		return nil, shared.NewValidationError(fmt.Sprintf("unknown invoice type %q", invoiceType))
	}
	if len(lines) == 0 {
		return nil, shared.NewValidationError("sales invoice requires at least one line")
	}
	if charges.ShippingCharges.IsNegative() || charges.OtherCharges.IsNegative() {
		return nil, shared.NewValidationError("charges cannot be negative")
	}

	now := time.Now()
	si := &SalesInvoice{
		DocumentNo:                 documentNo,
		CustomerID:                 customerID,
		StoreCode:                  storeCode,
		InvoiceType:                invoiceType,
		InvoiceDate:                invoiceDate,
		Status:                     SalesInvoiceStatusDraft,
		Lines:                      lines,
		TotalInvoiceDiscountAmount: charges.InvoiceDiscountAmount.Round2(),
		TaxRate:                    charges.TaxRate,
		ShippingCharges:            charges.ShippingCharges.Round2(),
		OtherCharges:               charges.OtherCharges.Round2(),
		AmountPaid:                 valueobject.ZeroMoney(),
		Version:                    1,
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
	if err := si.recalculateTotals(); err != nil {
		return nil, err
	}
	return si, nil
}

// ReplaceLines swaps the full line set of a draft invoice. On any
// other status a line-carrying update is an invalid-state error,
// never a silent no-op.
func (si *SalesInvoice) ReplaceLines(lines []SalesInvoiceLine, charges SalesInvoiceCharges) error {
	if !si.Status.CanEditLines() {
		return shared.NewInvalidStateError(fmt.Sprintf("lines of sales invoice %s cannot be changed in status %s", si.DocumentNo, si.Status))
	}
	if len(lines) == 0 {
		return shared.NewValidationError("sales invoice requires at least one line")
	}
	if charges.ShippingCharges.IsNegative() || charges.OtherCharges.IsNegative() {
		return shared.NewValidationError("charges cannot be negative")
	}
	prevLines, prev := si.Lines, si.chargesSnapshot()
	si.Lines = lines
	si.TotalInvoiceDiscountAmount = charges.InvoiceDiscountAmount.Round2()
	si.TaxRate = charges.TaxRate
	si.ShippingCharges = charges.ShippingCharges.Round2()
	si.OtherCharges = charges.OtherCharges.Round2()
	if err := si.recalculateTotals(); err != nil {
		si.Lines = prevLines
		si.restoreCharges(prev)
		return err
	}
	si.touch()
	return nil
}

// UpdateHeader updates the editable header-only fields
func (si *SalesInvoice) UpdateHeader(notes string, dueDate *time.Time, salespersonID string) error {
	if !si.Status.CanEditHeader() {
		return shared.NewInvalidStateError(fmt.Sprintf("sales invoice %s cannot be changed in status %s", si.DocumentNo, si.Status))
	}
	si.Notes = notes
	si.DueDate = dueDate
	si.SalespersonID = salespersonID
	si.touch()
	return nil
}

// Issue moves a draft invoice to issued
func (si *SalesInvoice) Issue() error {
	return si.transitionTo(SalesInvoiceStatusIssued)
}

// Void voids an issued or partly paid invoice
func (si *SalesInvoice) Void() error {
	return si.transitionTo(SalesInvoiceStatusVoid)
}

// Cancel cancels a draft invoice
func (si *SalesInvoice) Cancel() error {
	return si.transitionTo(SalesInvoiceStatusCancelled)
}

// MarkOverdue flags an unpaid invoice past its due date
func (si *SalesInvoice) MarkOverdue() error {
	return si.transitionTo(SalesInvoiceStatusOverdue)
}

// RecordPayment applies a payment and derives the resulting status.
// The amount must be positive and must not exceed the balance due.
func (si *SalesInvoice) RecordPayment(amount valueobject.Money) error {
	if !si.Status.CanReceivePayment() {
		return shared.NewInvalidStateError(fmt.Sprintf("sales invoice %s cannot receive payments in status %s", si.DocumentNo, si.Status))
	}
	amount = amount.Round2()
	if !amount.IsPositive() {
		return shared.NewValidationError("payment amount must be positive")
	}
	if amount.GreaterThan(si.BalanceDue) {
		return shared.NewValidationError(fmt.Sprintf("payment %s exceeds balance due %s", amount, si.BalanceDue))
	}

	si.AmountPaid = si.AmountPaid.Add(amount).Round2()
	si.BalanceDue = si.GrandTotal.Subtract(si.AmountPaid).Round2()
	if si.BalanceDue.IsZero() {
		si.Status = SalesInvoiceStatusPaid
	} else {
		si.Status = SalesInvoiceStatusPartiallyPaid
	}
	si.touch()
	return nil
}

func (si *SalesInvoice) transitionTo(target SalesInvoiceStatus) error {
	if !si.Status.CanTransitionTo(target) {
		return shared.NewInvalidStateError(fmt.Sprintf("sales invoice %s cannot move from %s to %s", si.DocumentNo, si.Status, target))
	}
	si.Status = target
	si.touch()
	return nil
}

func (si *SalesInvoice) recalculateTotals() error {
	results := make([]SalesLineResult, len(si.Lines))
	quantities := make([]decimal.Decimal, len(si.Lines))
	for i := range si.Lines {
		l := &si.Lines[i]
		results[i] = SalesLineResult{
			ProductDiscountAmount:         l.ProductDiscountAmount,
			UnitPriceAfterProductDiscount: l.UnitPriceAfterProductDiscount,
			LineSubtotal:                  l.LineSubtotal,
			LineTaxAmount:                 l.LineTaxAmount,
			LineTotal:                     l.LineTotal,
		}
		quantities[i] = l.Quantity
	}
	totals, err := CalculateSalesTotals(results, quantities, SalesTotalsInput{
		InvoiceDiscountAmount: si.TotalInvoiceDiscountAmount,
		HeaderTaxRate:         si.TaxRate,
		ShippingCharges:       si.ShippingCharges,
		OtherCharges:          si.OtherCharges,
	})
	if err != nil {
		return err
	}
	si.Subtotal = totals.Subtotal
	si.TotalProductDiscountAmount = totals.TotalProductDiscountAmount
	si.TaxableAmount = totals.TaxableAmount
	si.TaxAmount = totals.TaxAmount
	si.GrandTotal = totals.GrandTotal
	si.BalanceDue = si.GrandTotal.Subtract(si.AmountPaid).Round2()
	return nil
}

type salesCharges struct {
	invoiceDiscount valueobject.Money
	taxRate         decimal.Decimal
	shipping        valueobject.Money
	other           valueobject.Money
}

func (si *SalesInvoice) chargesSnapshot() salesCharges {
	return salesCharges{
		invoiceDiscount: si.TotalInvoiceDiscountAmount,
		taxRate:         si.TaxRate,
		shipping:        si.ShippingCharges,
		other:           si.OtherCharges,
	}
}

func (si *SalesInvoice) restoreCharges(c salesCharges) {
	si.TotalInvoiceDiscountAmount = c.invoiceDiscount
	si.TaxRate = c.taxRate
	si.ShippingCharges = c.shipping
	si.OtherCharges = c.other
}

func (si *SalesInvoice) touch() {
	si.UpdatedAt = time.Now()
	si.Version++
}
