package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailops/erp-backend/internal/domain/document"
	"github.com/retailops/erp-backend/internal/domain/shared"
	"github.com/retailops/erp-backend/internal/domain/shared/valueobject"
)

func testPurchaseOrder(t *testing.T, documentNo string) *document.PurchaseOrder {
	t.Helper()
	line, err := document.NewPurchaseOrderLine(document.PurchaseLineInput{
		ProductID:       uuid.New(),
		Description:     "Long Life Milk 1L",
		QuantityOrdered: decimal.NewFromInt(10),
		UnitOfMeasure:   "EA",
		UnitPrice:       valueobject.NewMoneyFromFloat(25.50),
	})
	require.NoError(t, err)
	po, err := document.NewPurchaseOrder(documentNo, uuid.New(), "SH01", time.Now(), []document.PurchaseOrderLine{line})
	require.NoError(t, err)
	return po
}

func TestPurchaseOrderRepositoryCRUD(t *testing.T) {
	repo := NewDocuments().PurchaseOrders()
	ctx := context.Background()
	po := testPurchaseOrder(t, "PO-SH01-2506001")

	require.NoError(t, repo.Create(ctx, po))

	// duplicate number rejected
	err := repo.Create(ctx, po)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)

	got, err := repo.FindByDocumentNo(ctx, "PO-SH01-2506001")
	require.NoError(t, err)
	assert.Equal(t, "255.00", got.Subtotal.String())

	require.NoError(t, got.Submit())
	require.NoError(t, repo.Update(ctx, got))

	again, err := repo.FindByDocumentNo(ctx, "PO-SH01-2506001")
	require.NoError(t, err)
	assert.Equal(t, document.PurchaseOrderStatusPendingApproval, again.Status)

	require.NoError(t, repo.Delete(ctx, "PO-SH01-2506001"))
	_, err = repo.FindByDocumentNo(ctx, "PO-SH01-2506001")
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestPurchaseOrderRepositoryCopyIsolation(t *testing.T) {
	repo := NewDocuments().PurchaseOrders()
	ctx := context.Background()
	po := testPurchaseOrder(t, "PO-SH01-2506001")
	require.NoError(t, repo.Create(ctx, po))

	// mutating the caller's copy must not leak into the store
	po.Notes = "mutated after save"
	po.Lines[0].QuantityOrdered = decimal.NewFromInt(999)

	got, err := repo.FindByDocumentNo(ctx, "PO-SH01-2506001")
	require.NoError(t, err)
	assert.Empty(t, got.Notes)
	assert.True(t, got.Lines[0].QuantityOrdered.Equal(decimal.NewFromInt(10)))

	// nor must mutating a fetched copy
	got.Notes = "mutated after load"
	fresh, err := repo.FindByDocumentNo(ctx, "PO-SH01-2506001")
	require.NoError(t, err)
	assert.Empty(t, fresh.Notes)
}

func TestPurchaseOrderRepositoryUpdateMissing(t *testing.T) {
	repo := NewDocuments().PurchaseOrders()
	err := repo.Update(context.Background(), testPurchaseOrder(t, "PO-SH01-2506009"))
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestPurchaseOrderRepositoryUpdateStaleVersion(t *testing.T) {
	repo := NewDocuments().PurchaseOrders()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, testPurchaseOrder(t, "PO-SH01-2506001")))

	first, err := repo.FindByDocumentNo(ctx, "PO-SH01-2506001")
	require.NoError(t, err)
	second, err := repo.FindByDocumentNo(ctx, "PO-SH01-2506001")
	require.NoError(t, err)

	require.NoError(t, first.Submit())
	require.NoError(t, repo.Update(ctx, first))

	// the second copy is based on the overwritten revision
	require.NoError(t, second.Submit())
	err = repo.Update(ctx, second)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)

	got, err := repo.FindByDocumentNo(ctx, "PO-SH01-2506001")
	require.NoError(t, err)
	assert.Equal(t, document.PurchaseOrderStatusPendingApproval, got.Status)
}

func TestPurchaseOrderRepositoryFilters(t *testing.T) {
	repo := NewDocuments().PurchaseOrders()
	ctx := context.Background()

	a := testPurchaseOrder(t, "PO-SH01-2506001")
	b := testPurchaseOrder(t, "PO-SH01-2506002")
	require.NoError(t, b.Submit())
	c := testPurchaseOrder(t, "PO-WH1-2506001")
	c.StoreCode = "WH1"
	for _, po := range []*document.PurchaseOrder{a, b, c} {
		require.NoError(t, repo.Create(ctx, po))
	}

	filter := shared.DefaultFilter()
	filter.Filters["store_code"] = "SH01"
	got, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	filter = shared.DefaultFilter()
	filter.Filters["status"] = document.PurchaseOrderStatusPendingApproval.String()
	got, err = repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "PO-SH01-2506002", got[0].DocumentNo)

	n, err := repo.Count(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	// pagination
	filter = shared.DefaultFilter()
	filter.PageSize = 2
	filter.OrderBy = "document_no"
	filter.OrderDir = "asc"
	got, err = repo.FindAll(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	filter.Page = 2
	got, err = repo.FindAll(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestGoodsReceiptUpdateWithPurchaseOrder(t *testing.T) {
	docs := NewDocuments()
	poRepo := docs.PurchaseOrders()
	grnRepo := docs.GoodsReceipts()
	ctx := context.Background()

	po := testPurchaseOrder(t, "PO-SH01-2506001")
	require.NoError(t, po.Submit())
	require.NoError(t, po.Approve())
	require.NoError(t, po.SendToSupplier())
	require.NoError(t, poRepo.Create(ctx, po))

	line, err := document.NewGoodsReceiptLine(document.GoodsReceiptLineInput{
		ProductID:           po.Lines[0].ProductID,
		PurchaseOrderLineID: po.Lines[0].ID,
		QuantityOrdered:     po.Lines[0].QuantityOrdered,
		QuantityReceived:    decimal.NewFromInt(10),
		UnitPriceAtReceipt:  valueobject.NewMoneyFromFloat(25.50),
	}, document.LineRequirements{}, time.Now())
	require.NoError(t, err)
	grn, err := document.NewGoodsReceipt("GRN-SH01-25060001", po.DocumentNo, po.SupplierID, "SH01", time.Now(), []document.GoodsReceiptLine{line})
	require.NoError(t, err)
	require.NoError(t, grnRepo.Create(ctx, grn))

	require.NoError(t, grn.Post())
	require.NoError(t, po.ApplyReceipt(grn.ReceivedQuantities()))
	require.NoError(t, grnRepo.UpdateWithPurchaseOrder(ctx, grn, po))

	gotPO, err := poRepo.FindByDocumentNo(ctx, po.DocumentNo)
	require.NoError(t, err)
	assert.Equal(t, document.PurchaseOrderStatusFullyReceived, gotPO.Status)

	gotGRN, err := grnRepo.FindByDocumentNo(ctx, grn.DocumentNo)
	require.NoError(t, err)
	assert.Equal(t, document.GoodsReceiptStatusPosted, gotGRN.Status)
}

func TestGoodsReceiptUpdateWithPurchaseOrderMissingOrder(t *testing.T) {
	docs := NewDocuments()
	grnRepo := docs.GoodsReceipts()
	ctx := context.Background()

	po := testPurchaseOrder(t, "PO-SH01-2506001")
	line, err := document.NewGoodsReceiptLine(document.GoodsReceiptLineInput{
		ProductID:           po.Lines[0].ProductID,
		PurchaseOrderLineID: po.Lines[0].ID,
		QuantityOrdered:     po.Lines[0].QuantityOrdered,
		QuantityReceived:    decimal.NewFromInt(1),
		UnitPriceAtReceipt:  valueobject.NewMoneyFromFloat(25.50),
	}, document.LineRequirements{}, time.Now())
	require.NoError(t, err)
	grn, err := document.NewGoodsReceipt("GRN-SH01-25060001", po.DocumentNo, po.SupplierID, "SH01", time.Now(), []document.GoodsReceiptLine{line})
	require.NoError(t, err)
	require.NoError(t, grnRepo.Create(ctx, grn))

	draftStatus := grn.Status
	require.NoError(t, grn.Post())
	err = grnRepo.UpdateWithPurchaseOrder(ctx, grn, po)
	require.Error(t, err)

	// the stored receipt is untouched by the failed write
	got, findErr := grnRepo.FindByDocumentNo(ctx, grn.DocumentNo)
	require.NoError(t, findErr)
	assert.Equal(t, draftStatus, got.Status)
}

func TestSalesInvoiceRepositoryFilters(t *testing.T) {
	repo := NewDocuments().SalesInvoices()
	ctx := context.Background()

	mkInvoice := func(no string, invoiceType document.InvoiceType) *document.SalesInvoice {
		line, err := document.NewSalesInvoiceLine(document.SalesLineDetails{
			ProductID:               uuid.New(),
			Quantity:                decimal.NewFromInt(1),
			UnitPriceBeforeDiscount: valueobject.NewMoneyFromFloat(10),
		})
		require.NoError(t, err)
		si, err := document.NewSalesInvoice(no, uuid.New(), "SH01", invoiceType, time.Now(), []document.SalesInvoiceLine{line}, document.SalesInvoiceCharges{})
		require.NoError(t, err)
		return si
	}

	require.NoError(t, repo.Create(ctx, mkInvoice("CSH-SH01-26010001", document.InvoiceTypeCash)))
	require.NoError(t, repo.Create(ctx, mkInvoice("LBY-SH01-26010001", document.InvoiceTypeLayby)))

	filter := shared.DefaultFilter()
	filter.Filters["invoice_type"] = document.InvoiceTypeCash.String()
	got, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "CSH-SH01-26010001", got[0].DocumentNo)

	require.NoError(t, repo.Delete(ctx, "LBY-SH01-26010001"))
	n, err := repo.Count(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
