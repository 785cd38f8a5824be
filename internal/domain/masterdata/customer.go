package masterdata

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailops/erp-backend/internal/domain/shared"
	"github.com/retailops/erp-backend/internal/domain/shared/valueobject"
)

// CustomerGroup groups customers for pricing purposes
type CustomerGroup struct {
	shared.BaseAggregateRoot
	Code               string          `json:"code"`
	Name               string          `json:"name"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
}

// NewCustomerGroup creates a new customer group
func NewCustomerGroup(code, name string, discountPercentage decimal.Decimal) (*CustomerGroup, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	name = strings.TrimSpace(name)
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if discountPercentage.IsNegative() || discountPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewValidationError("discount percentage must be between 0 and 100")
	}

	return &CustomerGroup{
		BaseAggregateRoot:  shared.NewBaseAggregateRoot(),
		Code:               code,
		Name:               name,
		DiscountPercentage: discountPercentage,
	}, nil
}

// Update updates the group name and discount
func (g *CustomerGroup) Update(name string, discountPercentage decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}
	if discountPercentage.IsNegative() || discountPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewValidationError("discount percentage must be between 0 and 100")
	}
	g.Name = name
	g.DiscountPercentage = discountPercentage
	g.Touch()
	g.IncrementVersion()
	return nil
}

// Customer represents a buyer sales invoices are issued to
type Customer struct {
	shared.BaseAggregateRoot
	Code        string            `json:"code"`
	Name        string            `json:"name"`
	GroupID     *uuid.UUID        `json:"group_id,omitempty"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	CreditLimit valueobject.Money `json:"credit_limit"`
	Active      bool              `json:"active"`
}

// NewCustomer creates a new active customer
func NewCustomer(code, name string) (*Customer, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	name = strings.TrimSpace(name)
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              name,
		CreditLimit:       valueobject.ZeroMoney(),
		Active:            true,
	}, nil
}

// Update updates customer details
func (c *Customer) Update(name, email, phone string, groupID *uuid.UUID) error {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}
	c.Name = name
	c.Email = email
	c.Phone = phone
	c.GroupID = groupID
	c.Touch()
	c.IncrementVersion()
	return nil
}

// SetCreditLimit sets the customer credit limit
func (c *Customer) SetCreditLimit(limit valueobject.Money) error {
	if limit.IsNegative() {
		return shared.NewValidationError("credit limit cannot be negative")
	}
	c.CreditLimit = limit.Round2()
	c.Touch()
	c.IncrementVersion()
	return nil
}

// Deactivate marks the customer as unusable in new documents
func (c *Customer) Deactivate() {
	c.Active = false
	c.Touch()
	c.IncrementVersion()
}

// Activate re-enables the customer
func (c *Customer) Activate() {
	c.Active = true
	c.Touch()
	c.IncrementVersion()
}
