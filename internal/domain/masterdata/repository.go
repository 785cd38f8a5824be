package masterdata

import (
	"context"

	"github.com/google/uuid"

	"github.com/retailops/erp-backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	shared.Repository[Product]

	// FindBySKU finds a product by its SKU
	FindBySKU(ctx context.Context, sku string) (*Product, error)
}

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	shared.Repository[Supplier]

	// FindByCode finds a supplier by its code
	FindByCode(ctx context.Context, code string) (*Supplier, error)
}

// CustomerGroupRepository defines the interface for customer group persistence
type CustomerGroupRepository interface {
	shared.Repository[CustomerGroup]

	// FindByCode finds a group by its code
	FindByCode(ctx context.Context, code string) (*CustomerGroup, error)
}

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	shared.Repository[Customer]

	// FindByCode finds a customer by its code
	FindByCode(ctx context.Context, code string) (*Customer, error)

	// FindByGroup finds all customers in a group
	FindByGroup(ctx context.Context, groupID uuid.UUID, filter shared.Filter) ([]Customer, error)
}

// StoreRepository defines the interface for store persistence
type StoreRepository interface {
	shared.Repository[Store]

	// FindByCode finds a store by its code
	FindByCode(ctx context.Context, code string) (*Store, error)
}
