package document

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailops/erp-backend/internal/domain/shared"
	"github.com/retailops/erp-backend/internal/domain/shared/valueobject"
)

// AddressRequest carries address fields on document requests
type AddressRequest struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

func toAddress(in *AddressRequest) valueobject.Address {
	if in == nil {
		return valueobject.Address{}
	}
	return valueobject.NewAddress(in.Line1, in.Line2, in.City, in.Region, in.PostalCode, in.Country)
}

// ==================== Purchase Order DTOs ====================

// PurchaseLineRequest represents one requested purchase order line.
// Description, unit of measure and unit price default from the product
// when omitted.
type PurchaseLineRequest struct {
	ProductID                 uuid.UUID        `json:"product_id" binding:"required"`
	Description               string           `json:"description"`
	QuantityOrdered           decimal.Decimal  `json:"quantity_ordered" binding:"required"`
	UnitOfMeasure             string           `json:"unit_of_measure"`
	UnitPrice                 *decimal.Decimal `json:"unit_price"`
	ExpectedDeliveryDate      *time.Time       `json:"expected_delivery_date"`
	PurchaseRequisitionLineID string           `json:"purchase_requisition_line_id"`
}

// CreatePurchaseOrderRequest represents a request to create a purchase order
type CreatePurchaseOrderRequest struct {
	SupplierID            uuid.UUID             `json:"supplier_id" binding:"required"`
	StoreCode             string                `json:"store_code" binding:"required"`
	OrderDate             *time.Time            `json:"order_date"`
	ExpectedDeliveryDate  *time.Time            `json:"expected_delivery_date"`
	PaymentTermsID        string                `json:"payment_terms_id"`
	ShippingAddress       *AddressRequest       `json:"shipping_address"`
	BillingAddress        *AddressRequest       `json:"billing_address"`
	PurchaseRequisitionID string                `json:"purchase_requisition_id"`
	Notes                 string                `json:"notes"`
	TaxAmount             decimal.Decimal       `json:"tax_amount"`
	ShippingCost          decimal.Decimal       `json:"shipping_cost"`
	OtherCharges          decimal.Decimal       `json:"other_charges"`
	Lines                 []PurchaseLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdatePurchaseOrderRequest represents a full update of an editable
// purchase order. A nil Lines slice leaves the existing lines alone;
// a non-nil one replaces them and is only allowed while lines are
// editable.
type UpdatePurchaseOrderRequest struct {
	Notes                string                `json:"notes"`
	ExpectedDeliveryDate *time.Time            `json:"expected_delivery_date"`
	PaymentTermsID       string                `json:"payment_terms_id"`
	ShippingAddress      *AddressRequest       `json:"shipping_address"`
	BillingAddress       *AddressRequest       `json:"billing_address"`
	TaxAmount            *decimal.Decimal      `json:"tax_amount"`
	ShippingCost         *decimal.Decimal      `json:"shipping_cost"`
	OtherCharges         *decimal.Decimal      `json:"other_charges"`
	Lines                []PurchaseLineRequest `json:"lines" binding:"omitempty,min=1,dive"`
}

// PurchaseOrderListFilter represents query filters for listing purchase orders
type PurchaseOrderListFilter struct {
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir"`
	Search     string `form:"search"`
	StoreCode  string `form:"store_code"`
	SupplierID string `form:"supplier_id"`
	Status     string `form:"status"`
}

// ToFilter converts the list filter to a repository filter
func (f PurchaseOrderListFilter) ToFilter() shared.Filter {
	filter := shared.Filter{
		Page:     f.Page,
		PageSize: f.PageSize,
		OrderBy:  f.OrderBy,
		OrderDir: f.OrderDir,
		Search:   f.Search,
		Filters:  make(map[string]interface{}),
	}
	if f.StoreCode != "" {
		filter.Filters["store_code"] = f.StoreCode
	}
	if f.SupplierID != "" {
		filter.Filters["supplier_id"] = f.SupplierID
	}
	if f.Status != "" {
		filter.Filters["status"] = f.Status
	}
	filter.Normalize()
	return filter
}

// ==================== Goods Receipt DTOs ====================

// GoodsReceiptLineRequest represents one requested receipt line. The
// product, ordered quantity and unit price are resolved from the
// referenced purchase order line.
type GoodsReceiptLineRequest struct {
	PurchaseOrderLineID uuid.UUID       `json:"purchase_order_line_id" binding:"required"`
	QuantityReceived    decimal.Decimal `json:"quantity_received" binding:"required"`
	BatchNumber         string          `json:"batch_number"`
	ExpiryDate          *time.Time      `json:"expiry_date"`
	Notes               string          `json:"notes"`
}

// CreateGoodsReceiptRequest represents a request to create a goods receipt note
type CreateGoodsReceiptRequest struct {
	PurchaseOrderID   string                    `json:"purchase_order_id" binding:"required"`
	ReceiptDate       *time.Time                `json:"receipt_date"`
	SupplierInvoiceNo string                    `json:"supplier_invoice_no"`
	ReceivedByUserID  string                    `json:"received_by_user_id"`
	Notes             string                    `json:"notes"`
	Lines             []GoodsReceiptLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdateGoodsReceiptRequest represents a full update of a draft receipt
type UpdateGoodsReceiptRequest struct {
	ReceiptDate       *time.Time                `json:"receipt_date"`
	SupplierInvoiceNo string                    `json:"supplier_invoice_no"`
	ReceivedByUserID  string                    `json:"received_by_user_id"`
	Notes             string                    `json:"notes"`
	Lines             []GoodsReceiptLineRequest `json:"lines" binding:"omitempty,min=1,dive"`
}

// GoodsReceiptListFilter represents query filters for listing goods receipts
type GoodsReceiptListFilter struct {
	Page            int    `form:"page"`
	PageSize        int    `form:"page_size"`
	OrderBy         string `form:"order_by"`
	OrderDir        string `form:"order_dir"`
	Search          string `form:"search"`
	StoreCode       string `form:"store_code"`
	SupplierID      string `form:"supplier_id"`
	PurchaseOrderID string `form:"purchase_order_id"`
	Status          string `form:"status"`
}

// ToFilter converts the list filter to a repository filter
func (f GoodsReceiptListFilter) ToFilter() shared.Filter {
	filter := shared.Filter{
		Page:     f.Page,
		PageSize: f.PageSize,
		OrderBy:  f.OrderBy,
		OrderDir: f.OrderDir,
		Search:   f.Search,
		Filters:  make(map[string]interface{}),
	}
	if f.StoreCode != "" {
		filter.Filters["store_code"] = f.StoreCode
	}
	if f.SupplierID != "" {
		filter.Filters["supplier_id"] = f.SupplierID
	}
	if f.PurchaseOrderID != "" {
		filter.Filters["purchase_order_id"] = f.PurchaseOrderID
	}
	if f.Status != "" {
		filter.Filters["status"] = f.Status
	}
	filter.Normalize()
	return filter
}

// ==================== Sales Invoice DTOs ====================

// SalesLineRequest represents one requested invoice line. Unit price
// and tax rate default from the product when omitted; a percentage
// discount takes precedence over an amount discount.
type SalesLineRequest struct {
	ProductID          uuid.UUID        `json:"product_id" binding:"required"`
	Description        string           `json:"description"`
	Quantity           decimal.Decimal  `json:"quantity" binding:"required"`
	UnitOfMeasure      string           `json:"unit_of_measure"`
	UnitPrice          *decimal.Decimal `json:"unit_price"`
	DiscountAmount     decimal.Decimal  `json:"discount_amount"`
	DiscountPercentage decimal.Decimal  `json:"discount_percentage"`
	TaxRate            *decimal.Decimal `json:"tax_rate"`
}

// CreateSalesInvoiceRequest represents a request to create a sales invoice
type CreateSalesInvoiceRequest struct {
	CustomerID            uuid.UUID          `json:"customer_id" binding:"required"`
	StoreCode             string             `json:"store_code" binding:"required"`
	InvoiceType           string             `json:"invoice_type" binding:"required"`
	InvoiceDate           *time.Time         `json:"invoice_date"`
	DueDate               *time.Time         `json:"due_date"`
	SalespersonID         string             `json:"salesperson_id"`
	SalesOrderID          string             `json:"sales_order_id"`
	Notes                 string             `json:"notes"`
	InvoiceDiscountAmount decimal.Decimal    `json:"invoice_discount_amount"`
	TaxRate               decimal.Decimal    `json:"tax_rate"`
	ShippingCharges       decimal.Decimal    `json:"shipping_charges"`
	OtherCharges          decimal.Decimal    `json:"other_charges"`
	Lines                 []SalesLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdateSalesInvoiceRequest represents a full update of a draft invoice.
// A nil Lines slice updates the header only.
type UpdateSalesInvoiceRequest struct {
	Notes                 string             `json:"notes"`
	DueDate               *time.Time         `json:"due_date"`
	SalespersonID         string             `json:"salesperson_id"`
	InvoiceDiscountAmount *decimal.Decimal   `json:"invoice_discount_amount"`
	TaxRate               *decimal.Decimal   `json:"tax_rate"`
	ShippingCharges       *decimal.Decimal   `json:"shipping_charges"`
	OtherCharges          *decimal.Decimal   `json:"other_charges"`
	Lines                 []SalesLineRequest `json:"lines" binding:"omitempty,min=1,dive"`
}

// RecordPaymentRequest represents a payment against an issued invoice
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// SalesInvoiceListFilter represents query filters for listing sales invoices
type SalesInvoiceListFilter struct {
	Page        int    `form:"page"`
	PageSize    int    `form:"page_size"`
	OrderBy     string `form:"order_by"`
	OrderDir    string `form:"order_dir"`
	Search      string `form:"search"`
	StoreCode   string `form:"store_code"`
	CustomerID  string `form:"customer_id"`
	InvoiceType string `form:"invoice_type"`
	Status      string `form:"status"`
}

// ToFilter converts the list filter to a repository filter
func (f SalesInvoiceListFilter) ToFilter() shared.Filter {
	filter := shared.Filter{
		Page:     f.Page,
		PageSize: f.PageSize,
		OrderBy:  f.OrderBy,
		OrderDir: f.OrderDir,
		Search:   f.Search,
		Filters:  make(map[string]interface{}),
	}
	if f.StoreCode != "" {
		filter.Filters["store_code"] = f.StoreCode
	}
	if f.CustomerID != "" {
		filter.Filters["customer_id"] = f.CustomerID
	}
	if f.InvoiceType != "" {
		filter.Filters["invoice_type"] = f.InvoiceType
	}
	if f.Status != "" {
		filter.Filters["status"] = f.Status
	}
	filter.Normalize()
	return filter
}
