package masterdata

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/retailops/erp-backend/internal/domain/shared"
	"github.com/retailops/erp-backend/internal/domain/shared/valueobject"
)

// Product represents a sellable/purchasable item in the catalog.
// It is the aggregate root for product-related operations.
type Product struct {
	shared.BaseAggregateRoot
	SKU                 string             `json:"sku"`
	Name                string             `json:"name"`
	Description         string             `json:"description"`
	UnitOfMeasure       string             `json:"unit_of_measure"`
	CostPrice           valueobject.Money  `json:"cost_price"`
	SellingPrice        valueobject.Money  `json:"selling_price"`
	TaxRate             decimal.Decimal    `json:"tax_rate"` // percentage, e.g. 15 for 15%
	RequiresExpiryDate  bool               `json:"requires_expiry_date"`
	RequiresBatchNumber bool               `json:"requires_batch_number"`
	Active              bool               `json:"active"`
}

// NewProduct creates a new active product
func NewProduct(sku, name, unitOfMeasure string) (*Product, error) {
	sku = strings.ToUpper(strings.TrimSpace(sku))
	name = strings.TrimSpace(name)
	if err := validateProductSKU(sku); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if unitOfMeasure == "" {
		unitOfMeasure = "EA"
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SKU:               sku,
		Name:              name,
		UnitOfMeasure:     unitOfMeasure,
		CostPrice:         valueobject.ZeroMoney(),
		SellingPrice:      valueobject.ZeroMoney(),
		TaxRate:           decimal.Zero,
		Active:            true,
	}, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description, unitOfMeasure string) error {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}
	p.Name = name
	p.Description = description
	if unitOfMeasure != "" {
		p.UnitOfMeasure = unitOfMeasure
	}
	p.Touch()
	p.IncrementVersion()
	return nil
}

// SetPrices sets cost and selling prices
func (p *Product) SetPrices(costPrice, sellingPrice valueobject.Money) error {
	if costPrice.IsNegative() {
		return shared.NewValidationError("cost price cannot be negative")
	}
	if sellingPrice.IsNegative() {
		return shared.NewValidationError("selling price cannot be negative")
	}
	p.CostPrice = costPrice.Round2()
	p.SellingPrice = sellingPrice.Round2()
	p.Touch()
	p.IncrementVersion()
	return nil
}

// SetTaxRate sets the default tax rate applied to sales lines
func (p *Product) SetTaxRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewValidationError("tax rate must be between 0 and 100")
	}
	p.TaxRate = rate
	p.Touch()
	p.IncrementVersion()
	return nil
}

// SetTracking configures batch and expiry requirements for goods receipt
func (p *Product) SetTracking(requiresBatchNumber, requiresExpiryDate bool) {
	p.RequiresBatchNumber = requiresBatchNumber
	p.RequiresExpiryDate = requiresExpiryDate
	p.Touch()
	p.IncrementVersion()
}

// Deactivate marks the product as unusable in new documents
func (p *Product) Deactivate() {
	p.Active = false
	p.Touch()
	p.IncrementVersion()
}

// Activate re-enables the product
func (p *Product) Activate() {
	p.Active = true
	p.Touch()
	p.IncrementVersion()
}

func validateProductSKU(sku string) error {
	if sku == "" {
		return shared.NewValidationError("product SKU is required")
	}
	if len(sku) > 50 {
		return shared.NewValidationError("product SKU cannot exceed 50 characters")
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return shared.NewValidationError("name is required")
	}
	if len(name) > 200 {
		return shared.NewValidationError("name cannot exceed 200 characters")
	}
	return nil
}
