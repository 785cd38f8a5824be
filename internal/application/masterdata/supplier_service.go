package masterdata

import (
	"context"

	"github.com/google/uuid"

	"github.com/retailops/erp-backend/internal/domain/masterdata"
	"github.com/retailops/erp-backend/internal/domain/shared"
)

// SupplierService handles supplier master data use cases
type SupplierService struct {
	suppliers masterdata.SupplierRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(suppliers masterdata.SupplierRepository) *SupplierService {
	return &SupplierService{suppliers: suppliers}
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) (*masterdata.Supplier, error) {
	supplier, err := masterdata.NewSupplier(req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	supplier.ContactName = req.ContactName
	supplier.Email = req.Email
	supplier.Phone = req.Phone
	supplier.PaymentTermsID = req.PaymentTermsID

	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Get returns a supplier by ID
func (s *SupplierService) Get(ctx context.Context, id uuid.UUID) (*masterdata.Supplier, error) {
	return s.suppliers.FindByID(ctx, id)
}

// List returns a paginated list of suppliers
func (s *SupplierService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[masterdata.Supplier], error) {
	filter.Normalize()
	items, err := s.suppliers.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[masterdata.Supplier]{}, err
	}
	total, err := s.suppliers.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[masterdata.Supplier]{}, err
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// Update updates an existing supplier
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, req UpdateSupplierRequest) (*masterdata.Supplier, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := supplier.Update(req.Name, req.ContactName, req.Email, req.Phone, req.PaymentTermsID); err != nil {
		return nil, err
	}
	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Deactivate marks a supplier as inactive
func (s *SupplierService) Deactivate(ctx context.Context, id uuid.UUID) (*masterdata.Supplier, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	supplier.Deactivate()
	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}
