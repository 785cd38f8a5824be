package masterdata

import (
	"context"

	"github.com/google/uuid"

	"github.com/retailops/erp-backend/internal/domain/masterdata"
	"github.com/retailops/erp-backend/internal/domain/shared"
	"github.com/retailops/erp-backend/internal/domain/shared/valueobject"
)

// StoreService handles store master data use cases
type StoreService struct {
	stores masterdata.StoreRepository
}

// NewStoreService creates a new store service
func NewStoreService(stores masterdata.StoreRepository) *StoreService {
	return &StoreService{stores: stores}
}

// Create creates a new store
func (s *StoreService) Create(ctx context.Context, req CreateStoreRequest) (*masterdata.Store, error) {
	store, err := masterdata.NewStore(req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	store.Address = toAddress(req.Address)

	if err := s.stores.Save(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// Get returns a store by ID
func (s *StoreService) Get(ctx context.Context, id uuid.UUID) (*masterdata.Store, error) {
	return s.stores.FindByID(ctx, id)
}

// GetByCode returns a store by its code
func (s *StoreService) GetByCode(ctx context.Context, code string) (*masterdata.Store, error) {
	return s.stores.FindByCode(ctx, code)
}

// List returns a paginated list of stores
func (s *StoreService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[masterdata.Store], error) {
	filter.Normalize()
	items, err := s.stores.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[masterdata.Store]{}, err
	}
	total, err := s.stores.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[masterdata.Store]{}, err
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// Update updates an existing store
func (s *StoreService) Update(ctx context.Context, id uuid.UUID, req UpdateStoreRequest) (*masterdata.Store, error) {
	store, err := s.stores.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := store.Update(req.Name, toAddress(req.Address)); err != nil {
		return nil, err
	}
	if err := s.stores.Save(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// Deactivate marks a store as inactive
func (s *StoreService) Deactivate(ctx context.Context, id uuid.UUID) (*masterdata.Store, error) {
	store, err := s.stores.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	store.Deactivate()
	if err := s.stores.Save(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func toAddress(in *AddressInput) valueobject.Address {
	if in == nil {
		return valueobject.Address{}
	}
	return valueobject.NewAddress(in.Line1, in.Line2, in.City, in.Region, in.PostalCode, in.Country)
}
