package memstore

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/retailops/erp-backend/internal/domain/masterdata"
	"github.com/retailops/erp-backend/internal/domain/shared"
)

type entityMeta struct {
	id      uuid.UUID
	code    string
	name    string
	active  bool
	created time.Time
	version int
}

// entityStore is a mutex-guarded map backing one master data entity
// type. Business codes are unique across the store; Save upserts but
// refuses a code already held by a different entity.
type entityStore[T any] struct {
	mu       sync.RWMutex
	resource string
	items    map[uuid.UUID]*T
	clone    func(*T) *T
	meta     func(*T) entityMeta
}

func newEntityStore[T any](resource string, clone func(*T) *T, meta func(*T) entityMeta) *entityStore[T] {
	return &entityStore[T]{
		resource: resource,
		items:    make(map[uuid.UUID]*T),
		clone:    clone,
		meta:     meta,
	}
}

func (s *entityStore[T]) FindByID(_ context.Context, id uuid.UUID) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, shared.NewNotFoundError(s.resource, id.String())
	}
	return s.clone(item), nil
}

func (s *entityStore[T]) FindByCode(_ context.Context, code string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if s.meta(item).code == code {
			return s.clone(item), nil
		}
	}
	return nil, shared.NewNotFoundError(s.resource, code)
}

func (s *entityStore[T]) FindAll(_ context.Context, filter shared.Filter) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []T
	var keys []sortable
	for _, item := range s.items {
		m := s.meta(item)
		if !s.matches(m, filter) {
			continue
		}
		items = append(items, *s.clone(item))
		keys = append(keys, sortable{key: m.code, created: m.created})
	}
	return sortAndPage(items, keys, filter), nil
}

func (s *entityStore[T]) Count(_ context.Context, filter shared.Filter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, item := range s.items {
		if s.matches(s.meta(item), filter) {
			n++
		}
	}
	return n, nil
}

// Save upserts the entity. On an existing entity the incoming version
// must be ahead of the stored one; a write based on a stale read is
// rejected.
func (s *entityStore[T]) Save(_ context.Context, entity *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.meta(entity)
	for id, existing := range s.items {
		if id != m.id && s.meta(existing).code == m.code {
			return shared.NewAlreadyExistsError(s.resource + " with code " + m.code + " already exists")
		}
	}
	if stored, ok := s.items[m.id]; ok && m.version <= s.meta(stored).version {
		return shared.NewConflictError(s.resource, m.id.String())
	}
	s.items[m.id] = s.clone(entity)
	return nil
}

func (s *entityStore[T]) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return shared.NewNotFoundError(s.resource, id.String())
	}
	delete(s.items, id)
	return nil
}

func (s *entityStore[T]) matches(m entityMeta, filter shared.Filter) bool {
	if !matchesFilters(map[string]string{"active": strconv.FormatBool(m.active)}, filter) {
		return false
	}
	if filter.Search != "" && !containsFold(m.code, filter.Search) && !containsFold(m.name, filter.Search) {
		return false
	}
	return true
}

// ProductRepository is the in-memory masterdata.ProductRepository
type ProductRepository struct {
	*entityStore[masterdata.Product]
}

// NewProductRepository creates an empty product repository
func NewProductRepository() *ProductRepository {
	clone := func(p *masterdata.Product) *masterdata.Product {
		c := *p
		return &c
	}
	meta := func(p *masterdata.Product) entityMeta {
		return entityMeta{id: p.ID, code: p.SKU, name: p.Name, active: p.Active, created: p.CreatedAt, version: p.Version}
	}
	return &ProductRepository{newEntityStore("product", clone, meta)}
}

// FindBySKU finds a product by its SKU
func (r *ProductRepository) FindBySKU(ctx context.Context, sku string) (*masterdata.Product, error) {
	return r.FindByCode(ctx, sku)
}

// SupplierRepository is the in-memory masterdata.SupplierRepository
type SupplierRepository struct {
	*entityStore[masterdata.Supplier]
}

// NewSupplierRepository creates an empty supplier repository
func NewSupplierRepository() *SupplierRepository {
	clone := func(s *masterdata.Supplier) *masterdata.Supplier {
		c := *s
		return &c
	}
	meta := func(s *masterdata.Supplier) entityMeta {
		return entityMeta{id: s.ID, code: s.Code, name: s.Name, active: s.Active, created: s.CreatedAt, version: s.Version}
	}
	return &SupplierRepository{newEntityStore("supplier", clone, meta)}
}

// CustomerGroupRepository is the in-memory masterdata.CustomerGroupRepository
type CustomerGroupRepository struct {
	*entityStore[masterdata.CustomerGroup]
}

// NewCustomerGroupRepository creates an empty customer group repository
func NewCustomerGroupRepository() *CustomerGroupRepository {
	clone := func(g *masterdata.CustomerGroup) *masterdata.CustomerGroup {
		c := *g
		return &c
	}
	meta := func(g *masterdata.CustomerGroup) entityMeta {
		return entityMeta{id: g.ID, code: g.Code, name: g.Name, active: true, created: g.CreatedAt, version: g.Version}
	}
	return &CustomerGroupRepository{newEntityStore("customer group", clone, meta)}
}

// CustomerRepository is the in-memory masterdata.CustomerRepository
type CustomerRepository struct {
	*entityStore[masterdata.Customer]
}

// NewCustomerRepository creates an empty customer repository
func NewCustomerRepository() *CustomerRepository {
	clone := func(c *masterdata.Customer) *masterdata.Customer {
		cc := *c
		if c.GroupID != nil {
			gid := *c.GroupID
			cc.GroupID = &gid
		}
		return &cc
	}
	meta := func(c *masterdata.Customer) entityMeta {
		return entityMeta{id: c.ID, code: c.Code, name: c.Name, active: c.Active, created: c.CreatedAt, version: c.Version}
	}
	return &CustomerRepository{newEntityStore("customer", clone, meta)}
}

// FindByGroup finds all customers assigned to a group
func (r *CustomerRepository) FindByGroup(_ context.Context, groupID uuid.UUID, filter shared.Filter) ([]masterdata.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []masterdata.Customer
	var keys []sortable
	for _, c := range r.items {
		if c.GroupID == nil || *c.GroupID != groupID {
			continue
		}
		m := r.meta(c)
		if !r.matches(m, filter) {
			continue
		}
		items = append(items, *r.clone(c))
		keys = append(keys, sortable{key: m.code, created: m.created})
	}
	return sortAndPage(items, keys, filter), nil
}

// StoreRepository is the in-memory masterdata.StoreRepository
type StoreRepository struct {
	*entityStore[masterdata.Store]
}

// NewStoreRepository creates an empty store repository
func NewStoreRepository() *StoreRepository {
	clone := func(s *masterdata.Store) *masterdata.Store {
		c := *s
		return &c
	}
	meta := func(s *masterdata.Store) entityMeta {
		return entityMeta{id: s.ID, code: s.Code, name: s.Name, active: s.Active, created: s.CreatedAt, version: s.Version}
	}
	return &StoreRepository{newEntityStore("store", clone, meta)}
}
