package masterdata

import (
	"context"

	"github.com/google/uuid"

	"github.com/retailops/erp-backend/internal/domain/masterdata"
	"github.com/retailops/erp-backend/internal/domain/shared"
	"github.com/retailops/erp-backend/internal/domain/shared/valueobject"
)

// ProductService handles product master data use cases
type ProductService struct {
	products masterdata.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(products masterdata.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*masterdata.Product, error) {
	product, err := masterdata.NewProduct(req.SKU, req.Name, req.UnitOfMeasure)
	if err != nil {
		return nil, err
	}
	product.Description = req.Description
	if err := product.SetPrices(valueobject.NewMoney(req.CostPrice), valueobject.NewMoney(req.SellingPrice)); err != nil {
		return nil, err
	}
	if err := product.SetTaxRate(req.TaxRate); err != nil {
		return nil, err
	}
	product.SetTracking(req.RequiresBatchNumber, req.RequiresExpiryDate)

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Get returns a product by ID
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*masterdata.Product, error) {
	return s.products.FindByID(ctx, id)
}

// List returns a paginated list of products
func (s *ProductService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[masterdata.Product], error) {
	filter.Normalize()
	items, err := s.products.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[masterdata.Product]{}, err
	}
	total, err := s.products.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[masterdata.Product]{}, err
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// Update updates an existing product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*masterdata.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := product.Update(req.Name, req.Description, req.UnitOfMeasure); err != nil {
		return nil, err
	}
	if err := product.SetPrices(valueobject.NewMoney(req.CostPrice), valueobject.NewMoney(req.SellingPrice)); err != nil {
		return nil, err
	}
	if err := product.SetTaxRate(req.TaxRate); err != nil {
		return nil, err
	}
	product.SetTracking(req.RequiresBatchNumber, req.RequiresExpiryDate)

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Deactivate marks a product as inactive
func (s *ProductService) Deactivate(ctx context.Context, id uuid.UUID) (*masterdata.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Deactivate()
	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}
