package document

import (
	"github.com/shopspring/decimal"

	"github.com/retailops/erp-backend/internal/domain/shared"
	"github.com/retailops/erp-backend/internal/domain/shared/valueobject"
)

// All derived monetary values are rounded to two decimal places at the
// boundary where they are computed, never deferred to the header.

var oneHundred = decimal.NewFromInt(100)

// PurchaseLineTotal computes quantity * unitPrice for a purchase order line
func PurchaseLineTotal(quantity decimal.Decimal, unitPrice valueobject.Money) valueobject.Money {
	return unitPrice.Multiply(quantity).Round2()
}

// PurchaseTotals holds derived purchase order header amounts
type PurchaseTotals struct {
	Subtotal    valueobject.Money
	TotalAmount valueobject.Money
}

// CalculatePurchaseTotals derives header totals from already-rounded line totals
func CalculatePurchaseTotals(lineTotals []valueobject.Money, taxAmount, shippingCost, otherCharges valueobject.Money) PurchaseTotals {
	subtotal := valueobject.ZeroMoney()
	for _, lt := range lineTotals {
		subtotal = subtotal.Add(lt)
	}
	subtotal = subtotal.Round2()
	total := subtotal.Add(taxAmount.Round2()).Add(shippingCost.Round2()).Add(otherCharges.Round2()).Round2()
	return PurchaseTotals{Subtotal: subtotal, TotalAmount: total}
}

// SalesLineInput carries raw per-line figures for a sales invoice line
type SalesLineInput struct {
	Quantity                  decimal.Decimal
	UnitPriceBeforeDiscount   valueobject.Money
	ProductDiscountAmount     valueobject.Money
	ProductDiscountPercentage decimal.Decimal
	LineTaxRate               decimal.Decimal
}

// SalesLineResult carries all derived per-line figures
type SalesLineResult struct {
	ProductDiscountAmount         valueobject.Money
	UnitPriceAfterProductDiscount valueobject.Money
	LineSubtotal                  valueobject.Money
	LineTaxAmount                 valueobject.Money
	LineTotal                     valueobject.Money
}

// CalculateSalesLine derives a sales invoice line. When a percentage
// discount is given it takes precedence and is materialized into a
// per-unit discount amount before any further arithmetic.
func CalculateSalesLine(in SalesLineInput) (SalesLineResult, error) {
	if !in.Quantity.IsPositive() {
		return SalesLineResult{}, shared.NewValidationError("line quantity must be positive")
	}
	if in.UnitPriceBeforeDiscount.IsNegative() {
		return SalesLineResult{}, shared.NewValidationError("unit price cannot be negative")
	}
	if in.ProductDiscountPercentage.IsNegative() || in.ProductDiscountPercentage.GreaterThan(oneHundred) {
		return SalesLineResult{}, shared.NewValidationError("product discount percentage must be between 0 and 100")
	}

	discount := in.ProductDiscountAmount.Round2()
	if in.ProductDiscountPercentage.IsPositive() {
		discount = in.UnitPriceBeforeDiscount.Percentage(in.ProductDiscountPercentage).Round2()
	}
	if discount.IsNegative() {
		return SalesLineResult{}, shared.NewValidationError("product discount cannot be negative")
	}
	if discount.GreaterThan(in.UnitPriceBeforeDiscount) {
		return SalesLineResult{}, shared.NewValidationError("product discount cannot exceed unit price")
	}

	unitAfter := in.UnitPriceBeforeDiscount.Subtract(discount).Round2()
	lineSubtotal := unitAfter.Multiply(in.Quantity).Round2()
	lineTax := lineSubtotal.Percentage(in.LineTaxRate).Round2()
	lineTotal := lineSubtotal.Add(lineTax).Round2()

	return SalesLineResult{
		ProductDiscountAmount:         discount,
		UnitPriceAfterProductDiscount: unitAfter,
		LineSubtotal:                  lineSubtotal,
		LineTaxAmount:                 lineTax,
		LineTotal:                     lineTotal,
	}, nil
}

// SalesTotals holds derived sales invoice header amounts
type SalesTotals struct {
	Subtotal                   valueobject.Money
	TotalProductDiscountAmount valueobject.Money
	TaxableAmount              valueobject.Money
	TaxAmount                  valueobject.Money
	GrandTotal                 valueobject.Money
}

// SalesTotalsInput carries header-level figures for invoice totals
type SalesTotalsInput struct {
	InvoiceDiscountAmount valueobject.Money
	HeaderTaxRate         decimal.Decimal
	ShippingCharges       valueobject.Money
	OtherCharges          valueobject.Money
}

// CalculateSalesTotals derives invoice header totals from computed
// lines. Line tax is summed as-is; a header tax rate, when present,
// applies on top of the taxable amount (used by stores that price
// lines tax-free).
func CalculateSalesTotals(lines []SalesLineResult, quantities []decimal.Decimal, in SalesTotalsInput) (SalesTotals, error) {
	if in.InvoiceDiscountAmount.IsNegative() {
		return SalesTotals{}, shared.NewValidationError("invoice discount cannot be negative")
	}
	if in.HeaderTaxRate.IsNegative() || in.HeaderTaxRate.GreaterThan(oneHundred) {
		return SalesTotals{}, shared.NewValidationError("tax rate must be between 0 and 100")
	}

	subtotal := valueobject.ZeroMoney()
	productDiscount := valueobject.ZeroMoney()
	lineTax := valueobject.ZeroMoney()
	for i, l := range lines {
		subtotal = subtotal.Add(l.LineSubtotal)
		productDiscount = productDiscount.Add(l.ProductDiscountAmount.Multiply(quantities[i]).Round2())
		lineTax = lineTax.Add(l.LineTaxAmount)
	}
	subtotal = subtotal.Round2()

	if in.InvoiceDiscountAmount.GreaterThan(subtotal) {
		return SalesTotals{}, shared.NewValidationError("invoice discount cannot exceed subtotal")
	}

	taxable := subtotal.Subtract(in.InvoiceDiscountAmount.Round2()).Round2()
	tax := lineTax.Add(taxable.Percentage(in.HeaderTaxRate).Round2()).Round2()
	grand := taxable.Add(tax).Add(in.ShippingCharges.Round2()).Add(in.OtherCharges.Round2()).Round2()

	return SalesTotals{
		Subtotal:                   subtotal,
		TotalProductDiscountAmount: productDiscount.Round2(),
		TaxableAmount:              taxable,
		TaxAmount:                  tax,
		GrandTotal:                 grand,
	}, nil
}
