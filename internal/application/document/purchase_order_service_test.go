package document

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/retailops/erp-backend/internal/domain/document"
	"github.com/retailops/erp-backend/internal/domain/masterdata"
	"github.com/retailops/erp-backend/internal/domain/shared"
	"github.com/retailops/erp-backend/internal/infrastructure/logger"
	"github.com/retailops/erp-backend/internal/infrastructure/memstore"
)

type purchaseFixture struct {
	service  *PurchaseOrderService
	store    *masterdata.Store
	supplier *masterdata.Supplier
	productA *masterdata.Product
	productB *masterdata.Product
}

func newPurchaseFixture(t *testing.T) *purchaseFixture {
	t.Helper()
	ctx := context.Background()

	products := memstore.NewProductRepository()
	suppliers := memstore.NewSupplierRepository()
	stores := memstore.NewStoreRepository()
	docs := memstore.NewDocuments()

	store, err := masterdata.NewStore("SH01", "Main Street")
	require.NoError(t, err)
	require.NoError(t, stores.Save(ctx, store))

	supplier, err := masterdata.NewSupplier("SUP-001", "Acme Wholesale")
	require.NoError(t, err)
	require.NoError(t, suppliers.Save(ctx, supplier))

	productA, err := masterdata.NewProduct("WIDGET-A", "Widget A", "EA")
	require.NoError(t, err)
	require.NoError(t, productA.SetPrices(moneyFromString(t, "10.50"), moneyFromString(t, "15.00")))
	require.NoError(t, products.Save(ctx, productA))

	productB, err := masterdata.NewProduct("WIDGET-B", "Widget B", "BOX")
	require.NoError(t, err)
	require.NoError(t, productB.SetPrices(moneyFromString(t, "50.00"), moneyFromString(t, "75.00")))
	require.NoError(t, products.Save(ctx, productB))

	service := NewPurchaseOrderService(docs.PurchaseOrders(), products, suppliers, stores, memstore.NewSequenceGenerator())
	return &purchaseFixture{
		service:  service,
		store:    store,
		supplier: supplier,
		productA: productA,
		productB: productB,
	}
}

func (f *purchaseFixture) createRequest() CreatePurchaseOrderRequest {
	return CreatePurchaseOrderRequest{
		SupplierID: f.supplier.ID,
		StoreCode:  "SH01",
		Lines: []PurchaseLineRequest{
			{ProductID: f.productA.ID, QuantityOrdered: decimal.NewFromInt(10)},
			{ProductID: f.productB.ID, QuantityOrdered: decimal.NewFromInt(3)},
		},
	}
}

func TestPurchaseOrderServiceCreate(t *testing.T) {
	f := newPurchaseFixture(t)
	ctx := context.Background()

	po, err := f.service.Create(ctx, f.createRequest())
	require.NoError(t, err)

	expectedNo := fmt.Sprintf("PO-SH01-%s001", document.YearMonth(time.Now()))
	assert.Equal(t, expectedNo, po.DocumentNo)
	assert.Equal(t, document.PurchaseOrderStatusDraft, po.Status)
	assert.Equal(t, "255.00", po.Subtotal.String())
	assert.Equal(t, "255.00", po.TotalAmount.String())

	// description, UOM and unit price default from the product
	require.Len(t, po.Lines, 2)
	assert.Equal(t, "Widget A", po.Lines[0].Description)
	assert.Equal(t, "EA", po.Lines[0].UnitOfMeasure)
	assert.Equal(t, "10.50", po.Lines[0].UnitPrice.String())
	assert.Equal(t, "BOX", po.Lines[1].UnitOfMeasure)
}

func TestPurchaseOrderServiceCreateSequenceAdvances(t *testing.T) {
	f := newPurchaseFixture(t)
	ctx := context.Background()

	first, err := f.service.Create(ctx, f.createRequest())
	require.NoError(t, err)
	second, err := f.service.Create(ctx, f.createRequest())
	require.NoError(t, err)

	ym := document.YearMonth(time.Now())
	assert.Equal(t, fmt.Sprintf("PO-SH01-%s001", ym), first.DocumentNo)
	assert.Equal(t, fmt.Sprintf("PO-SH01-%s002", ym), second.DocumentNo)
}

func TestPurchaseOrderServiceCreateLogsToContextLogger(t *testing.T) {
	f := newPurchaseFixture(t)

	core, recorded := observer.New(zapcore.InfoLevel)
	ctx := logger.WithContext(context.Background(), zap.New(core))

	po, err := f.service.Create(ctx, f.createRequest())
	require.NoError(t, err)

	entries := recorded.FilterMessage("purchase order created").All()
	require.Len(t, entries, 1)
	assert.Equal(t, po.DocumentNo, entries[0].ContextMap()["document_no"])
}

func TestPurchaseOrderServiceCreateBackdated(t *testing.T) {
	f := newPurchaseFixture(t)
	ctx := context.Background()

	orderDate := time.Now().AddDate(0, -2, 0)
	req := f.createRequest()
	req.OrderDate = &orderDate

	po, err := f.service.Create(ctx, req)
	require.NoError(t, err)

	// the number carries the order date's month, not the clock's
	assert.Equal(t, fmt.Sprintf("PO-SH01-%s001", document.YearMonth(orderDate)), po.DocumentNo)
}

func TestPurchaseOrderServiceCreateInactiveSupplier(t *testing.T) {
	f := newPurchaseFixture(t)
	ctx := context.Background()

	f.supplier.Deactivate()
	require.NoError(t, f.service.suppliers.Save(ctx, f.supplier))

	_, err := f.service.Create(ctx, f.createRequest())
	assertDomainCode(t, err, shared.ErrInvalidInput.Code)
}

func TestPurchaseOrderServiceCreateUnknownStore(t *testing.T) {
	f := newPurchaseFixture(t)

	req := f.createRequest()
	req.StoreCode = "ZZ99"
	_, err := f.service.Create(context.Background(), req)
	assertDomainCode(t, err, shared.ErrNotFound.Code)
}

func TestPurchaseOrderServiceLifecycle(t *testing.T) {
	f := newPurchaseFixture(t)
	ctx := context.Background()

	po, err := f.service.Create(ctx, f.createRequest())
	require.NoError(t, err)

	po, err = f.service.Submit(ctx, po.DocumentNo)
	require.NoError(t, err)
	assert.Equal(t, document.PurchaseOrderStatusPendingApproval, po.Status)

	po, err = f.service.Approve(ctx, po.DocumentNo)
	require.NoError(t, err)
	po, err = f.service.Send(ctx, po.DocumentNo)
	require.NoError(t, err)
	assert.Equal(t, document.PurchaseOrderStatusSentToSupplier, po.Status)

	// out-of-order transition is rejected and not persisted
	_, err = f.service.Approve(ctx, po.DocumentNo)
	assertDomainCode(t, err, shared.ErrInvalidState.Code)
	stored, err := f.service.Get(ctx, po.DocumentNo)
	require.NoError(t, err)
	assert.Equal(t, document.PurchaseOrderStatusSentToSupplier, stored.Status)
}

func TestPurchaseOrderServiceUpdateReplacesLines(t *testing.T) {
	f := newPurchaseFixture(t)
	ctx := context.Background()

	po, err := f.service.Create(ctx, f.createRequest())
	require.NoError(t, err)

	price := decimal.RequireFromString("12.00")
	po, err = f.service.Update(ctx, po.DocumentNo, UpdatePurchaseOrderRequest{
		Notes: "revised",
		Lines: []PurchaseLineRequest{
			{ProductID: f.productA.ID, QuantityOrdered: decimal.NewFromInt(5), UnitPrice: &price},
		},
	})
	require.NoError(t, err)
	require.Len(t, po.Lines, 1)
	assert.Equal(t, "60.00", po.Subtotal.String())
	assert.Equal(t, "revised", po.Notes)
}

func TestPurchaseOrderServiceUpdateLinesAfterApproval(t *testing.T) {
	f := newPurchaseFixture(t)
	ctx := context.Background()

	po, err := f.service.Create(ctx, f.createRequest())
	require.NoError(t, err)
	_, err = f.service.Submit(ctx, po.DocumentNo)
	require.NoError(t, err)
	_, err = f.service.Approve(ctx, po.DocumentNo)
	require.NoError(t, err)

	_, err = f.service.Update(ctx, po.DocumentNo, UpdatePurchaseOrderRequest{
		Lines: []PurchaseLineRequest{
			{ProductID: f.productA.ID, QuantityOrdered: decimal.NewFromInt(1)},
		},
	})
	assertDomainCode(t, err, shared.ErrInvalidState.Code)
}

func TestPurchaseOrderServiceDelete(t *testing.T) {
	f := newPurchaseFixture(t)
	ctx := context.Background()

	po, err := f.service.Create(ctx, f.createRequest())
	require.NoError(t, err)
	require.NoError(t, f.service.Delete(ctx, po.DocumentNo))
	_, err = f.service.Get(ctx, po.DocumentNo)
	assertDomainCode(t, err, shared.ErrNotFound.Code)

	po, err = f.service.Create(ctx, f.createRequest())
	require.NoError(t, err)
	_, err = f.service.Submit(ctx, po.DocumentNo)
	require.NoError(t, err)
	err = f.service.Delete(ctx, po.DocumentNo)
	assertDomainCode(t, err, shared.ErrInvalidState.Code)
}

func TestPurchaseOrderServiceList(t *testing.T) {
	f := newPurchaseFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.service.Create(ctx, f.createRequest())
		require.NoError(t, err)
	}

	page, err := f.service.List(ctx, PurchaseOrderListFilter{PageSize: 2, StoreCode: "SH01"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.TotalPages)
}
