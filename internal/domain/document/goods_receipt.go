package document

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailops/erp-backend/internal/domain/shared"
	"github.com/retailops/erp-backend/internal/domain/shared/valueobject"
)

// GoodsReceiptLine represents one received purchase order line
type GoodsReceiptLine struct {
	ID                  uuid.UUID         `json:"id"`
	ProductID           uuid.UUID         `json:"product_id"`
	PurchaseOrderLineID uuid.UUID         `json:"purchase_order_line_id"`
	QuantityOrdered     decimal.Decimal   `json:"quantity_ordered"`
	QuantityReceived    decimal.Decimal   `json:"quantity_received"`
	UnitPriceAtReceipt  valueobject.Money `json:"unit_price_at_receipt"`
	BatchNumber         string            `json:"batch_number,omitempty"`
	ExpiryDate          *time.Time        `json:"expiry_date,omitempty"`
	Notes               string            `json:"notes,omitempty"`
}

// LineRequirements carries the product tracking flags a receipt line
// must satisfy
type LineRequirements struct {
	RequiresBatchNumber bool
	RequiresExpiryDate  bool
}

// GoodsReceiptLineInput carries the caller-supplied fields for one line
type GoodsReceiptLineInput struct {
	ProductID           uuid.UUID
	PurchaseOrderLineID uuid.UUID
	QuantityOrdered     decimal.Decimal
	QuantityReceived    decimal.Decimal
	UnitPriceAtReceipt  valueobject.Money
	BatchNumber         string
	ExpiryDate          *time.Time
	Notes               string
}

// NewGoodsReceiptLine creates a validated receipt line. Batch and
// expiry requirements come from the product; an expiry date must lie
// in the future at receipt time.
func NewGoodsReceiptLine(in GoodsReceiptLineInput, reqs LineRequirements, receiptDate time.Time) (GoodsReceiptLine, error) {
	if in.ProductID == uuid.Nil {
		return GoodsReceiptLine{}, shared.NewValidationError("line product is required")
	}
	if in.PurchaseOrderLineID == uuid.Nil {
		return GoodsReceiptLine{}, shared.NewValidationError("purchase order line reference is required")
	}
	if !in.QuantityReceived.IsPositive() {
		return GoodsReceiptLine{}, shared.NewValidationError("received quantity must be positive")
	}
	if in.UnitPriceAtReceipt.IsNegative() {
		return GoodsReceiptLine{}, shared.NewValidationError("unit price cannot be negative")
	}
	if reqs.RequiresBatchNumber && in.BatchNumber == "" {
		return GoodsReceiptLine{}, shared.NewValidationError(fmt.Sprintf("product %s requires a batch number", in.ProductID))
	}
	if reqs.RequiresExpiryDate {
		if in.ExpiryDate == nil {
			return GoodsReceiptLine{}, shared.NewValidationError(fmt.Sprintf("product %s requires an expiry date", in.ProductID))
		}
		if !in.ExpiryDate.After(receiptDate) {
			return GoodsReceiptLine{}, shared.NewValidationError(fmt.Sprintf("expiry date for product %s must be after the receipt date", in.ProductID))
		}
	}

	return GoodsReceiptLine{
		ID:                  uuid.New(),
		ProductID:           in.ProductID,
		PurchaseOrderLineID: in.PurchaseOrderLineID,
		QuantityOrdered:     in.QuantityOrdered,
		QuantityReceived:    in.QuantityReceived,
		UnitPriceAtReceipt:  in.UnitPriceAtReceipt.Round2(),
		BatchNumber:         in.BatchNumber,
		ExpiryDate:          in.ExpiryDate,
		Notes:               in.Notes,
	}, nil
}

// GoodsReceipt is the aggregate root for goods receipt notes
type GoodsReceipt struct {
	DocumentNo        string             `json:"document_no"`
	PurchaseOrderID   string             `json:"purchase_order_id"`
	SupplierID        uuid.UUID          `json:"supplier_id"`
	StoreCode         string             `json:"store_code"`
	ReceiptDate       time.Time          `json:"receipt_date"`
	SupplierInvoiceNo string             `json:"supplier_invoice_no,omitempty"`
	ReceivedByUserID  string             `json:"received_by_user_id,omitempty"`
	Notes             string             `json:"notes"`
	Status            GoodsReceiptStatus `json:"status"`
	Lines             []GoodsReceiptLine `json:"lines"`
	Version           int                `json:"version"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// NewGoodsReceipt creates a draft goods receipt note
func NewGoodsReceipt(documentNo, purchaseOrderID string, supplierID uuid.UUID, storeCode string, receiptDate time.Time, lines []GoodsReceiptLine) (*GoodsReceipt, error) {
	if documentNo == "" {
		return nil, shared.NewValidationError("document number is required")
	}
	if purchaseOrderID == "" {
		return nil, shared.NewValidationError("purchase order reference is required")
	}
	if storeCode == "" {
		return nil, shared.NewValidationError("store is required")
	}
	if len(lines) == 0 {
		return nil, shared.NewValidationError("goods receipt requires at least one line")
	}

	now := time.Now()
	return &GoodsReceipt{
		DocumentNo:      documentNo,
		PurchaseOrderID: purchaseOrderID,
		SupplierID:      supplierID,
		StoreCode:       storeCode,
		ReceiptDate:     receiptDate,
		Status:          GoodsReceiptStatusDraft,
		Lines:           lines,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// ReplaceLines swaps the full line set of a draft receipt
func (g *GoodsReceipt) ReplaceLines(lines []GoodsReceiptLine) error {
	if !g.Status.CanEdit() {
		return shared.NewInvalidStateError(fmt.Sprintf("goods receipt %s cannot be changed in status %s", g.DocumentNo, g.Status))
	}
	if len(lines) == 0 {
		return shared.NewValidationError("goods receipt requires at least one line")
	}
	g.Lines = lines
	g.touch()
	return nil
}

// UpdateHeader updates the editable header fields of a draft receipt
func (g *GoodsReceipt) UpdateHeader(receiptDate time.Time, supplierInvoiceNo, receivedByUserID, notes string) error {
	if !g.Status.CanEdit() {
		return shared.NewInvalidStateError(fmt.Sprintf("goods receipt %s cannot be changed in status %s", g.DocumentNo, g.Status))
	}
	g.ReceiptDate = receiptDate
	g.SupplierInvoiceNo = supplierInvoiceNo
	g.ReceivedByUserID = receivedByUserID
	g.Notes = notes
	g.touch()
	return nil
}

// Post marks the receipt as posted. The caller applies the receipt
// quantities to the purchase order in the same transaction scope.
func (g *GoodsReceipt) Post() error {
	return g.transitionTo(GoodsReceiptStatusPosted)
}

// Cancel cancels a draft receipt
func (g *GoodsReceipt) Cancel() error {
	return g.transitionTo(GoodsReceiptStatusCancelled)
}

func (g *GoodsReceipt) transitionTo(target GoodsReceiptStatus) error {
	if !g.Status.CanTransitionTo(target) {
		return shared.NewInvalidStateError(fmt.Sprintf("goods receipt %s cannot move from %s to %s", g.DocumentNo, g.Status, target))
	}
	g.Status = target
	g.touch()
	return nil
}

// ReceivedQuantities returns received quantity per purchase order line,
// summed across receipt lines
func (g *GoodsReceipt) ReceivedQuantities() map[uuid.UUID]decimal.Decimal {
	out := make(map[uuid.UUID]decimal.Decimal, len(g.Lines))
	for i := range g.Lines {
		l := &g.Lines[i]
		out[l.PurchaseOrderLineID] = out[l.PurchaseOrderLineID].Add(l.QuantityReceived)
	}
	return out
}

func (g *GoodsReceipt) touch() {
	g.UpdatedAt = time.Now()
	g.Version++
}
