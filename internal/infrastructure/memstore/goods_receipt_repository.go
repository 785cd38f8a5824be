package memstore

import (
	"context"

	"github.com/retailops/erp-backend/internal/domain/document"
	"github.com/retailops/erp-backend/internal/domain/shared"
)

type goodsReceiptRepository struct {
	store *Documents
}

func (r *goodsReceiptRepository) FindByDocumentNo(_ context.Context, documentNo string) (*document.GoodsReceipt, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	grn, ok := r.store.goodsReceipts[documentNo]
	if !ok {
		return nil, shared.NewNotFoundError("goods receipt", documentNo)
	}
	return cloneGoodsReceipt(grn), nil
}

func (r *goodsReceiptRepository) FindAll(_ context.Context, filter shared.Filter) ([]document.GoodsReceipt, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var items []document.GoodsReceipt
	var keys []sortable
	for _, grn := range r.store.goodsReceipts {
		if !goodsReceiptMatches(grn, filter) {
			continue
		}
		items = append(items, *cloneGoodsReceipt(grn))
		keys = append(keys, sortable{key: grn.DocumentNo, created: grn.CreatedAt})
	}
	return sortAndPage(items, keys, filter), nil
}

func (r *goodsReceiptRepository) Count(_ context.Context, filter shared.Filter) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var n int64
	for _, grn := range r.store.goodsReceipts {
		if goodsReceiptMatches(grn, filter) {
			n++
		}
	}
	return n, nil
}

func (r *goodsReceiptRepository) Create(_ context.Context, grn *document.GoodsReceipt) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.goodsReceipts[grn.DocumentNo]; exists {
		return shared.NewAlreadyExistsError("goods receipt " + grn.DocumentNo + " already exists")
	}
	r.store.goodsReceipts[grn.DocumentNo] = cloneGoodsReceipt(grn)
	return nil
}

// Update replaces the stored aggregate. The incoming version must be
// ahead of the stored one; a write based on a stale read is rejected.
func (r *goodsReceiptRepository) Update(_ context.Context, grn *document.GoodsReceipt) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, exists := r.store.goodsReceipts[grn.DocumentNo]
	if !exists {
		return shared.NewNotFoundError("goods receipt", grn.DocumentNo)
	}
	if grn.Version <= stored.Version {
		return shared.NewConflictError("goods receipt", grn.DocumentNo)
	}
	r.store.goodsReceipts[grn.DocumentNo] = cloneGoodsReceipt(grn)
	return nil
}

// UpdateWithPurchaseOrder writes the receipt and its purchase order
// under one lock acquisition. Both documents must already exist and
// both version checks pass before either map is touched, so a failure
// leaves the store unchanged.
func (r *goodsReceiptRepository) UpdateWithPurchaseOrder(_ context.Context, grn *document.GoodsReceipt, po *document.PurchaseOrder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	storedGRN, exists := r.store.goodsReceipts[grn.DocumentNo]
	if !exists {
		return shared.NewNotFoundError("goods receipt", grn.DocumentNo)
	}
	storedPO, exists := r.store.purchaseOrders[po.DocumentNo]
	if !exists {
		return shared.NewNotFoundError("purchase order", po.DocumentNo)
	}
	if grn.Version <= storedGRN.Version {
		return shared.NewConflictError("goods receipt", grn.DocumentNo)
	}
	if po.Version <= storedPO.Version {
		return shared.NewConflictError("purchase order", po.DocumentNo)
	}
	r.store.goodsReceipts[grn.DocumentNo] = cloneGoodsReceipt(grn)
	r.store.purchaseOrders[po.DocumentNo] = clonePurchaseOrder(po)
	return nil
}

func (r *goodsReceiptRepository) Delete(_ context.Context, documentNo string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.goodsReceipts[documentNo]; !exists {
		return shared.NewNotFoundError("goods receipt", documentNo)
	}
	delete(r.store.goodsReceipts, documentNo)
	return nil
}

func goodsReceiptMatches(grn *document.GoodsReceipt, filter shared.Filter) bool {
	fields := map[string]string{
		"store_code":        grn.StoreCode,
		"purchase_order_id": grn.PurchaseOrderID,
		"supplier_id":       grn.SupplierID.String(),
		"status":            grn.Status.String(),
	}
	if !matchesFilters(fields, filter) {
		return false
	}
	if filter.Search != "" && !containsFold(grn.DocumentNo, filter.Search) && !containsFold(grn.SupplierInvoiceNo, filter.Search) {
		return false
	}
	return true
}
