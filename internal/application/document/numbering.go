package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/retailops/erp-backend/internal/domain/document"
	"github.com/retailops/erp-backend/internal/domain/masterdata"
	"github.com/retailops/erp-backend/internal/domain/shared"
)

// allocateDocumentNo draws the next sequence value for the document's
// scope and formats it into a document number
func allocateDocumentNo(ctx context.Context, sequences document.SequenceGenerator, docType document.DocType, storeCode string, at time.Time) (string, error) {
	yearMonth := document.YearMonth(at)
	seq, err := sequences.Next(ctx, docType, storeCode, yearMonth)
	if err != nil {
		return "", err
	}
	return document.FormatDocumentID(docType, storeCode, yearMonth, seq)
}

// asSequenceCollision maps a duplicate-number error from the store to
// a sequence collision. A formatted number colliding with an existing
// document means the generator state and the store diverged, which is
// an internal fault rather than bad input.
func asSequenceCollision(err error, docType document.DocType, storeCode string, at time.Time) error {
	var de *shared.DomainError
	if errors.As(err, &de) && de.Code == shared.ErrAlreadyExists.Code {
		return shared.NewSequenceCollisionError(document.SequenceScope(docType, storeCode, document.YearMonth(at)))
	}
	return err
}

func requireActiveStore(ctx context.Context, stores masterdata.StoreRepository, code string) (*masterdata.Store, error) {
	store, err := stores.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !store.Active {
		return nil, shared.NewValidationError(fmt.Sprintf("store %s is inactive", store.Code))
	}
	return store, nil
}

func requireActiveSupplier(ctx context.Context, suppliers masterdata.SupplierRepository, id uuid.UUID) (*masterdata.Supplier, error) {
	supplier, err := suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !supplier.Active {
		return nil, shared.NewValidationError(fmt.Sprintf("supplier %s is inactive", supplier.Code))
	}
	return supplier, nil
}

func requireActiveProduct(ctx context.Context, products masterdata.ProductRepository, id uuid.UUID) (*masterdata.Product, error) {
	product, err := products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.Active {
		return nil, shared.NewValidationError(fmt.Sprintf("product %s is inactive", product.SKU))
	}
	return product, nil
}

func requireActiveCustomer(ctx context.Context, customers masterdata.CustomerRepository, id uuid.UUID) (*masterdata.Customer, error) {
	customer, err := customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !customer.Active {
		return nil, shared.NewValidationError(fmt.Sprintf("customer %s is inactive", customer.Code))
	}
	return customer, nil
}
