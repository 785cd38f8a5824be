package masterdata

import (
	"context"

	"github.com/google/uuid"

	"github.com/retailops/erp-backend/internal/domain/masterdata"
	"github.com/retailops/erp-backend/internal/domain/shared"
	"github.com/retailops/erp-backend/internal/domain/shared/valueobject"
)

// CustomerGroupService handles customer group master data use cases
type CustomerGroupService struct {
	groups masterdata.CustomerGroupRepository
}

// NewCustomerGroupService creates a new customer group service
func NewCustomerGroupService(groups masterdata.CustomerGroupRepository) *CustomerGroupService {
	return &CustomerGroupService{groups: groups}
}

// Create creates a new customer group
func (s *CustomerGroupService) Create(ctx context.Context, req CreateCustomerGroupRequest) (*masterdata.CustomerGroup, error) {
	group, err := masterdata.NewCustomerGroup(req.Code, req.Name, req.DiscountPercentage)
	if err != nil {
		return nil, err
	}
	if err := s.groups.Save(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// Get returns a customer group by ID
func (s *CustomerGroupService) Get(ctx context.Context, id uuid.UUID) (*masterdata.CustomerGroup, error) {
	return s.groups.FindByID(ctx, id)
}

// List returns a paginated list of customer groups
func (s *CustomerGroupService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[masterdata.CustomerGroup], error) {
	filter.Normalize()
	items, err := s.groups.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[masterdata.CustomerGroup]{}, err
	}
	total, err := s.groups.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[masterdata.CustomerGroup]{}, err
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// Update updates an existing customer group
func (s *CustomerGroupService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerGroupRequest) (*masterdata.CustomerGroup, error) {
	group, err := s.groups.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := group.Update(req.Name, req.DiscountPercentage); err != nil {
		return nil, err
	}
	if err := s.groups.Save(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// CustomerService handles customer master data use cases
type CustomerService struct {
	customers masterdata.CustomerRepository
	groups    masterdata.CustomerGroupRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customers masterdata.CustomerRepository, groups masterdata.CustomerGroupRepository) *CustomerService {
	return &CustomerService{customers: customers, groups: groups}
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*masterdata.Customer, error) {
	if err := s.checkGroup(ctx, req.GroupID); err != nil {
		return nil, err
	}
	customer, err := masterdata.NewCustomer(req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.GroupID = req.GroupID
	if err := customer.SetCreditLimit(valueobject.NewMoney(req.CreditLimit)); err != nil {
		return nil, err
	}

	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Get returns a customer by ID
func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*masterdata.Customer, error) {
	return s.customers.FindByID(ctx, id)
}

// List returns a paginated list of customers
func (s *CustomerService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[masterdata.Customer], error) {
	filter.Normalize()
	items, err := s.customers.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[masterdata.Customer]{}, err
	}
	total, err := s.customers.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[masterdata.Customer]{}, err
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// Update updates an existing customer
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*masterdata.Customer, error) {
	if err := s.checkGroup(ctx, req.GroupID); err != nil {
		return nil, err
	}
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := customer.Update(req.Name, req.Email, req.Phone, req.GroupID); err != nil {
		return nil, err
	}
	if err := customer.SetCreditLimit(valueobject.NewMoney(req.CreditLimit)); err != nil {
		return nil, err
	}
	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Deactivate marks a customer as inactive
func (s *CustomerService) Deactivate(ctx context.Context, id uuid.UUID) (*masterdata.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	customer.Deactivate()
	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) checkGroup(ctx context.Context, groupID *uuid.UUID) error {
	if groupID == nil {
		return nil
	}
	if _, err := s.groups.FindByID(ctx, *groupID); err != nil {
		return err
	}
	return nil
}
