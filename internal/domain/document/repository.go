package document

import (
	"context"

	"github.com/retailops/erp-backend/internal/domain/shared"
)

// Document repositories are keyed by the formatted document number.
// Create fails with ALREADY_EXISTS on a duplicate number, Update fails
// with NOT_FOUND on a missing one. Header and lines are one aggregate
// value, so every write and the delete cascade are atomic.

// PurchaseOrderRepository defines the interface for purchase order persistence
type PurchaseOrderRepository interface {
	FindByDocumentNo(ctx context.Context, documentNo string) (*PurchaseOrder, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]PurchaseOrder, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Create(ctx context.Context, po *PurchaseOrder) error
	Update(ctx context.Context, po *PurchaseOrder) error
	Delete(ctx context.Context, documentNo string) error
}

// GoodsReceiptRepository defines the interface for goods receipt persistence
type GoodsReceiptRepository interface {
	FindByDocumentNo(ctx context.Context, documentNo string) (*GoodsReceipt, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]GoodsReceipt, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Create(ctx context.Context, grn *GoodsReceipt) error
	Update(ctx context.Context, grn *GoodsReceipt) error
	Delete(ctx context.Context, documentNo string) error

	// UpdateWithPurchaseOrder persists a receipt and its linked
	// purchase order in one atomic step. Used by posting so the
	// receipt status and the order's received quantities never
	// diverge.
	UpdateWithPurchaseOrder(ctx context.Context, grn *GoodsReceipt, po *PurchaseOrder) error
}

// SalesInvoiceRepository defines the interface for sales invoice persistence
type SalesInvoiceRepository interface {
	FindByDocumentNo(ctx context.Context, documentNo string) (*SalesInvoice, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]SalesInvoice, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Create(ctx context.Context, si *SalesInvoice) error
	Update(ctx context.Context, si *SalesInvoice) error
	Delete(ctx context.Context, documentNo string) error
}
