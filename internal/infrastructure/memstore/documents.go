package memstore

import (
	"sync"
	"time"

	"github.com/retailops/erp-backend/internal/domain/document"
)

// Documents is the shared in-memory document store. A single lock
// covers all three document families so cross-document writes, such
// as applying a posted goods receipt to its purchase order, commit
// atomically.
type Documents struct {
	mu             sync.RWMutex
	purchaseOrders map[string]*document.PurchaseOrder
	goodsReceipts  map[string]*document.GoodsReceipt
	salesInvoices  map[string]*document.SalesInvoice
}

// NewDocuments creates an empty document store
func NewDocuments() *Documents {
	return &Documents{
		purchaseOrders: make(map[string]*document.PurchaseOrder),
		goodsReceipts:  make(map[string]*document.GoodsReceipt),
		salesInvoices:  make(map[string]*document.SalesInvoice),
	}
}

// PurchaseOrders returns the purchase order repository view
func (d *Documents) PurchaseOrders() document.PurchaseOrderRepository {
	return &purchaseOrderRepository{store: d}
}

// GoodsReceipts returns the goods receipt repository view
func (d *Documents) GoodsReceipts() document.GoodsReceiptRepository {
	return &goodsReceiptRepository{store: d}
}

// SalesInvoices returns the sales invoice repository view
func (d *Documents) SalesInvoices() document.SalesInvoiceRepository {
	return &salesInvoiceRepository{store: d}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func clonePurchaseOrder(po *document.PurchaseOrder) *document.PurchaseOrder {
	c := *po
	c.ExpectedDeliveryDate = copyTime(po.ExpectedDeliveryDate)
	c.Lines = make([]document.PurchaseOrderLine, len(po.Lines))
	for i, l := range po.Lines {
		l.ExpectedDeliveryDate = copyTime(l.ExpectedDeliveryDate)
		c.Lines[i] = l
	}
	return &c
}

func cloneGoodsReceipt(grn *document.GoodsReceipt) *document.GoodsReceipt {
	c := *grn
	c.Lines = make([]document.GoodsReceiptLine, len(grn.Lines))
	for i, l := range grn.Lines {
		l.ExpiryDate = copyTime(l.ExpiryDate)
		c.Lines[i] = l
	}
	return &c
}

func cloneSalesInvoice(si *document.SalesInvoice) *document.SalesInvoice {
	c := *si
	c.DueDate = copyTime(si.DueDate)
	c.Lines = make([]document.SalesInvoiceLine, len(si.Lines))
	copy(c.Lines, si.Lines)
	return &c
}
