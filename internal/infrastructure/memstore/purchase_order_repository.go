package memstore

import (
	"context"

	"github.com/retailops/erp-backend/internal/domain/document"
	"github.com/retailops/erp-backend/internal/domain/shared"
)

type purchaseOrderRepository struct {
	store *Documents
}

func (r *purchaseOrderRepository) FindByDocumentNo(_ context.Context, documentNo string) (*document.PurchaseOrder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	po, ok := r.store.purchaseOrders[documentNo]
	if !ok {
		return nil, shared.NewNotFoundError("purchase order", documentNo)
	}
	return clonePurchaseOrder(po), nil
}

func (r *purchaseOrderRepository) FindAll(_ context.Context, filter shared.Filter) ([]document.PurchaseOrder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var items []document.PurchaseOrder
	var keys []sortable
	for _, po := range r.store.purchaseOrders {
		if !purchaseOrderMatches(po, filter) {
			continue
		}
		items = append(items, *clonePurchaseOrder(po))
		keys = append(keys, sortable{key: po.DocumentNo, created: po.CreatedAt})
	}
	return sortAndPage(items, keys, filter), nil
}

func (r *purchaseOrderRepository) Count(_ context.Context, filter shared.Filter) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var n int64
	for _, po := range r.store.purchaseOrders {
		if purchaseOrderMatches(po, filter) {
			n++
		}
	}
	return n, nil
}

func (r *purchaseOrderRepository) Create(_ context.Context, po *document.PurchaseOrder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.purchaseOrders[po.DocumentNo]; exists {
		return shared.NewAlreadyExistsError("purchase order " + po.DocumentNo + " already exists")
	}
	r.store.purchaseOrders[po.DocumentNo] = clonePurchaseOrder(po)
	return nil
}

// Update replaces the stored aggregate. The incoming version must be
// ahead of the stored one; a write based on a stale read is rejected.
func (r *purchaseOrderRepository) Update(_ context.Context, po *document.PurchaseOrder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, exists := r.store.purchaseOrders[po.DocumentNo]
	if !exists {
		return shared.NewNotFoundError("purchase order", po.DocumentNo)
	}
	if po.Version <= stored.Version {
		return shared.NewConflictError("purchase order", po.DocumentNo)
	}
	r.store.purchaseOrders[po.DocumentNo] = clonePurchaseOrder(po)
	return nil
}

// Delete removes the header together with its lines; the aggregate is
// stored as one value so the cascade cannot half-apply.
func (r *purchaseOrderRepository) Delete(_ context.Context, documentNo string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.purchaseOrders[documentNo]; !exists {
		return shared.NewNotFoundError("purchase order", documentNo)
	}
	delete(r.store.purchaseOrders, documentNo)
	return nil
}

func purchaseOrderMatches(po *document.PurchaseOrder, filter shared.Filter) bool {
	fields := map[string]string{
		"store_code":  po.StoreCode,
		"supplier_id": po.SupplierID.String(),
		"status":      po.Status.String(),
	}
	if !matchesFilters(fields, filter) {
		return false
	}
	if filter.Search != "" && !containsFold(po.DocumentNo, filter.Search) && !containsFold(po.Notes, filter.Search) {
		return false
	}
	return true
}
