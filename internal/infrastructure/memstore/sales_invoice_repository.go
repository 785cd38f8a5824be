package memstore

import (
	"context"

	"github.com/retailops/erp-backend/internal/domain/document"
	"github.com/retailops/erp-backend/internal/domain/shared"
)

type salesInvoiceRepository struct {
	store *Documents
}

func (r *salesInvoiceRepository) FindByDocumentNo(_ context.Context, documentNo string) (*document.SalesInvoice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	si, ok := r.store.salesInvoices[documentNo]
	if !ok {
		return nil, shared.NewNotFoundError("sales invoice", documentNo)
	}
	return cloneSalesInvoice(si), nil
}

func (r *salesInvoiceRepository) FindAll(_ context.Context, filter shared.Filter) ([]document.SalesInvoice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var items []document.SalesInvoice
	var keys []sortable
	for _, si := range r.store.salesInvoices {
		if !salesInvoiceMatches(si, filter) {
			continue
		}
		items = append(items, *cloneSalesInvoice(si))
		keys = append(keys, sortable{key: si.DocumentNo, created: si.CreatedAt})
	}
	return sortAndPage(items, keys, filter), nil
}

func (r *salesInvoiceRepository) Count(_ context.Context, filter shared.Filter) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var n int64
	for _, si := range r.store.salesInvoices {
		if salesInvoiceMatches(si, filter) {
			n++
		}
	}
	return n, nil
}

func (r *salesInvoiceRepository) Create(_ context.Context, si *document.SalesInvoice) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.salesInvoices[si.DocumentNo]; exists {
		return shared.NewAlreadyExistsError("sales invoice " + si.DocumentNo + " already exists")
	}
	r.store.salesInvoices[si.DocumentNo] = cloneSalesInvoice(si)
	return nil
}

// Update replaces the stored aggregate. The incoming version must be
// ahead of the stored one; a write based on a stale read is rejected.
func (r *salesInvoiceRepository) Update(_ context.Context, si *document.SalesInvoice) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, exists := r.store.salesInvoices[si.DocumentNo]
	if !exists {
		return shared.NewNotFoundError("sales invoice", si.DocumentNo)
	}
	if si.Version <= stored.Version {
		return shared.NewConflictError("sales invoice", si.DocumentNo)
	}
	r.store.salesInvoices[si.DocumentNo] = cloneSalesInvoice(si)
	return nil
}

func (r *salesInvoiceRepository) Delete(_ context.Context, documentNo string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.salesInvoices[documentNo]; !exists {
		return shared.NewNotFoundError("sales invoice", documentNo)
	}
	delete(r.store.salesInvoices, documentNo)
	return nil
}

func salesInvoiceMatches(si *document.SalesInvoice, filter shared.Filter) bool {
	fields := map[string]string{
		"store_code":   si.StoreCode,
		"customer_id":  si.CustomerID.String(),
		"invoice_type": si.InvoiceType.String(),
		"status":       si.Status.String(),
	}
	if !matchesFilters(fields, filter) {
		return false
	}
	if filter.Search != "" && !containsFold(si.DocumentNo, filter.Search) && !containsFold(si.Notes, filter.Search) {
		return false
	}
	return true
}
