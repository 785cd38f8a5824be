package masterdata

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ==================== Product DTOs ====================

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	SKU                 string          `json:"sku" binding:"required,min=1,max=50"`
	Name                string          `json:"name" binding:"required,min=1,max=200"`
	Description         string          `json:"description"`
	UnitOfMeasure       string          `json:"unit_of_measure" binding:"max=20"`
	CostPrice           decimal.Decimal `json:"cost_price"`
	SellingPrice        decimal.Decimal `json:"selling_price"`
	TaxRate             decimal.Decimal `json:"tax_rate"`
	RequiresExpiryDate  bool            `json:"requires_expiry_date"`
	RequiresBatchNumber bool            `json:"requires_batch_number"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name                string          `json:"name" binding:"required,min=1,max=200"`
	Description         string          `json:"description"`
	UnitOfMeasure       string          `json:"unit_of_measure" binding:"max=20"`
	CostPrice           decimal.Decimal `json:"cost_price"`
	SellingPrice        decimal.Decimal `json:"selling_price"`
	TaxRate             decimal.Decimal `json:"tax_rate"`
	RequiresExpiryDate  bool            `json:"requires_expiry_date"`
	RequiresBatchNumber bool            `json:"requires_batch_number"`
}

// ==================== Supplier DTOs ====================

// CreateSupplierRequest represents a request to create a supplier
type CreateSupplierRequest struct {
	Code           string `json:"code" binding:"required,min=1,max=50"`
	Name           string `json:"name" binding:"required,min=1,max=200"`
	ContactName    string `json:"contact_name"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
	PaymentTermsID string `json:"payment_terms_id"`
}

// UpdateSupplierRequest represents a request to update a supplier
type UpdateSupplierRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=200"`
	ContactName    string `json:"contact_name"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
	PaymentTermsID string `json:"payment_terms_id"`
}

// ==================== Customer DTOs ====================

// CreateCustomerGroupRequest represents a request to create a customer group
type CreateCustomerGroupRequest struct {
	Code               string          `json:"code" binding:"required,min=1,max=50"`
	Name               string          `json:"name" binding:"required,min=1,max=200"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
}

// UpdateCustomerGroupRequest represents a request to update a customer group
type UpdateCustomerGroupRequest struct {
	Name               string          `json:"name" binding:"required,min=1,max=200"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
}

// CreateCustomerRequest represents a request to create a customer
type CreateCustomerRequest struct {
	Code        string          `json:"code" binding:"required,min=1,max=50"`
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	GroupID     *uuid.UUID      `json:"group_id"`
	Email       string          `json:"email" binding:"omitempty,email"`
	Phone       string          `json:"phone"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
}

// UpdateCustomerRequest represents a request to update a customer
type UpdateCustomerRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	GroupID     *uuid.UUID      `json:"group_id"`
	Email       string          `json:"email" binding:"omitempty,email"`
	Phone       string          `json:"phone"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
}

// ==================== Store DTOs ====================

// AddressInput carries address fields on create/update requests
type AddressInput struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// CreateStoreRequest represents a request to create a store
type CreateStoreRequest struct {
	Code    string        `json:"code" binding:"required,min=2,max=8"`
	Name    string        `json:"name" binding:"required,min=1,max=200"`
	Address *AddressInput `json:"address"`
}

// UpdateStoreRequest represents a request to update a store
type UpdateStoreRequest struct {
	Name    string        `json:"name" binding:"required,min=1,max=200"`
	Address *AddressInput `json:"address"`
}
