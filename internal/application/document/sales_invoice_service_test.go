package document

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailops/erp-backend/internal/domain/document"
	"github.com/retailops/erp-backend/internal/domain/masterdata"
	"github.com/retailops/erp-backend/internal/domain/shared"
	"github.com/retailops/erp-backend/internal/infrastructure/memstore"
)

type invoiceFixture struct {
	service  *SalesInvoiceService
	customer *masterdata.Customer
	product  *masterdata.Product
}

func newInvoiceFixture(t *testing.T) *invoiceFixture {
	t.Helper()
	ctx := context.Background()

	products := memstore.NewProductRepository()
	customers := memstore.NewCustomerRepository()
	stores := memstore.NewStoreRepository()
	docs := memstore.NewDocuments()

	store, err := masterdata.NewStore("SH01", "Main Street")
	require.NoError(t, err)
	require.NoError(t, stores.Save(ctx, store))

	customer, err := masterdata.NewCustomer("CUST-001", "Jordan Blake")
	require.NoError(t, err)
	require.NoError(t, customers.Save(ctx, customer))

	product, err := masterdata.NewProduct("WIDGET-A", "Widget A", "EA")
	require.NoError(t, err)
	require.NoError(t, product.SetPrices(moneyFromString(t, "10.00"), moneyFromString(t, "20.00")))
	require.NoError(t, product.SetTaxRate(decimal.NewFromInt(15)))
	require.NoError(t, products.Save(ctx, product))

	service := NewSalesInvoiceService(docs.SalesInvoices(), products, customers, stores, memstore.NewSequenceGenerator())
	return &invoiceFixture{service: service, customer: customer, product: product}
}

func (f *invoiceFixture) createRequest() CreateSalesInvoiceRequest {
	return CreateSalesInvoiceRequest{
		CustomerID:  f.customer.ID,
		StoreCode:   "SH01",
		InvoiceType: "CASH",
		Lines: []SalesLineRequest{
			{ProductID: f.product.ID, Quantity: decimal.NewFromInt(2)},
		},
	}
}

func TestSalesInvoiceServiceCreate(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	si, err := f.service.Create(ctx, f.createRequest())
	require.NoError(t, err)

	expectedNo := fmt.Sprintf("CSH-SH01-%s0001", document.YearMonth(time.Now()))
	assert.Equal(t, expectedNo, si.DocumentNo)
	assert.Equal(t, document.SalesInvoiceStatusDraft, si.Status)

	// price, tax rate and cost snapshot default from the product:
	// 2 x 20.00 = 40.00 plus 15% tax
	require.Len(t, si.Lines, 1)
	assert.Equal(t, "20.00", si.Lines[0].UnitPriceBeforeDiscount.String())
	assert.Equal(t, "10.00", si.Lines[0].CostPriceAtSale.String())
	assert.Equal(t, "40.00", si.Subtotal.String())
	assert.Equal(t, "6.00", si.TaxAmount.String())
	assert.Equal(t, "46.00", si.GrandTotal.String())
	assert.Equal(t, "0.00", si.AmountPaid.String())
	assert.Equal(t, "46.00", si.BalanceDue.String())
}

func TestSalesInvoiceServiceCreatePerTypeSequences(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	cash, err := f.service.Create(ctx, f.createRequest())
	require.NoError(t, err)

	req := f.createRequest()
	req.InvoiceType = "credit"
	credit, err := f.service.Create(ctx, req)
	require.NoError(t, err)

	ym := document.YearMonth(time.Now())
	assert.Equal(t, fmt.Sprintf("CSH-SH01-%s0001", ym), cash.DocumentNo)
	assert.Equal(t, fmt.Sprintf("CRD-SH01-%s0001", ym), credit.DocumentNo)
}

func TestSalesInvoiceServiceCreateBackdated(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	invoiceDate := time.Now().AddDate(0, -2, 0)
	req := f.createRequest()
	req.InvoiceDate = &invoiceDate

	si, err := f.service.Create(ctx, req)
	require.NoError(t, err)

	// the number carries the invoice date's month, not the clock's
	assert.Equal(t, fmt.Sprintf("CSH-SH01-%s0001", document.YearMonth(invoiceDate)), si.DocumentNo)
}

func TestSalesInvoiceServiceCreateUnknownType(t *testing.T) {
	f := newInvoiceFixture(t)

	req := f.createRequest()
	req.InvoiceType = "WHOLESALE"
	_, err := f.service.Create(context.Background(), req)
	assertDomainCode(t, err, shared.ErrInvalidInput.Code)
}

func TestSalesInvoiceServiceCreateDiscountPrecedence(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	req := f.createRequest()
	req.Lines = []SalesLineRequest{{
		ProductID:          f.product.ID,
		Quantity:           decimal.NewFromInt(2),
		DiscountAmount:     decimal.RequireFromString("5.00"),
		DiscountPercentage: decimal.NewFromInt(10),
	}}
	si, err := f.service.Create(ctx, req)
	require.NoError(t, err)

	// the percentage wins: 10% of 20.00, not the 5.00 amount
	assert.Equal(t, "2.00", si.Lines[0].ProductDiscountAmount.String())
	assert.Equal(t, "18.00", si.Lines[0].UnitPriceAfterProductDiscount.String())
	assert.Equal(t, "36.00", si.Subtotal.String())
}

func TestSalesInvoiceServicePaymentLifecycle(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	si, err := f.service.Create(ctx, f.createRequest())
	require.NoError(t, err)

	// payments only after issuing
	_, err = f.service.RecordPayment(ctx, si.DocumentNo, RecordPaymentRequest{Amount: decimal.NewFromInt(10)})
	assertDomainCode(t, err, shared.ErrInvalidState.Code)

	si, err = f.service.Issue(ctx, si.DocumentNo)
	require.NoError(t, err)
	assert.Equal(t, document.SalesInvoiceStatusIssued, si.Status)

	si, err = f.service.RecordPayment(ctx, si.DocumentNo, RecordPaymentRequest{Amount: decimal.NewFromInt(16)})
	require.NoError(t, err)
	assert.Equal(t, document.SalesInvoiceStatusPartiallyPaid, si.Status)
	assert.Equal(t, "30.00", si.BalanceDue.String())

	// cannot pay more than the balance due
	_, err = f.service.RecordPayment(ctx, si.DocumentNo, RecordPaymentRequest{Amount: decimal.NewFromInt(31)})
	assertDomainCode(t, err, shared.ErrInvalidInput.Code)

	si, err = f.service.RecordPayment(ctx, si.DocumentNo, RecordPaymentRequest{Amount: decimal.NewFromInt(30)})
	require.NoError(t, err)
	assert.Equal(t, document.SalesInvoiceStatusPaid, si.Status)
	assert.Equal(t, "0.00", si.BalanceDue.String())

	// paid is terminal
	_, err = f.service.Void(ctx, si.DocumentNo)
	assertDomainCode(t, err, shared.ErrInvalidState.Code)
}

func TestSalesInvoiceServiceUpdateLinesOnIssued(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	si, err := f.service.Create(ctx, f.createRequest())
	require.NoError(t, err)
	_, err = f.service.Issue(ctx, si.DocumentNo)
	require.NoError(t, err)

	_, err = f.service.Update(ctx, si.DocumentNo, UpdateSalesInvoiceRequest{
		Lines: []SalesLineRequest{{ProductID: f.product.ID, Quantity: decimal.NewFromInt(5)}},
	})
	assertDomainCode(t, err, shared.ErrInvalidState.Code)

	// header-only updates stay possible after issuing
	due := time.Now().AddDate(0, 1, 0)
	updated, err := f.service.Update(ctx, si.DocumentNo, UpdateSalesInvoiceRequest{Notes: "net 30", DueDate: &due})
	require.NoError(t, err)
	assert.Equal(t, "net 30", updated.Notes)
}

func TestSalesInvoiceServiceVoidAndCancel(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	si, err := f.service.Create(ctx, f.createRequest())
	require.NoError(t, err)
	si, err = f.service.Cancel(ctx, si.DocumentNo)
	require.NoError(t, err)
	assert.Equal(t, document.SalesInvoiceStatusCancelled, si.Status)
	require.NoError(t, f.service.Delete(ctx, si.DocumentNo))

	si, err = f.service.Create(ctx, f.createRequest())
	require.NoError(t, err)
	_, err = f.service.Issue(ctx, si.DocumentNo)
	require.NoError(t, err)
	si, err = f.service.Void(ctx, si.DocumentNo)
	require.NoError(t, err)
	assert.Equal(t, document.SalesInvoiceStatusVoid, si.Status)

	err = f.service.Delete(ctx, si.DocumentNo)
	assertDomainCode(t, err, shared.ErrInvalidState.Code)
}

func TestSalesInvoiceServiceList(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	first, err := f.service.Create(ctx, f.createRequest())
	require.NoError(t, err)
	_, err = f.service.Issue(ctx, first.DocumentNo)
	require.NoError(t, err)
	_, err = f.service.Create(ctx, f.createRequest())
	require.NoError(t, err)

	page, err := f.service.List(ctx, SalesInvoiceListFilter{Status: "ISSUED"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, first.DocumentNo, page.Items[0].DocumentNo)
}
