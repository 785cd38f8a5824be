package document

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailops/erp-backend/internal/domain/shared"
	"github.com/retailops/erp-backend/internal/domain/shared/valueobject"
)

// PurchaseOrderLine represents a line item on a purchase order
type PurchaseOrderLine struct {
	ID                        uuid.UUID         `json:"id"`
	ProductID                 uuid.UUID         `json:"product_id"`
	Description               string            `json:"description"`
	QuantityOrdered           decimal.Decimal   `json:"quantity_ordered"`
	UnitOfMeasure             string            `json:"unit_of_measure"`
	UnitPrice                 valueobject.Money `json:"unit_price"`
	LineTotal                 valueobject.Money `json:"line_total"`
	QuantityReceived          decimal.Decimal   `json:"quantity_received"`
	ExpectedDeliveryDate      *time.Time        `json:"expected_delivery_date,omitempty"`
	PurchaseRequisitionLineID string            `json:"purchase_requisition_line_id,omitempty"`
}

// Outstanding returns the quantity still to be received
func (l *PurchaseOrderLine) Outstanding() decimal.Decimal {
	return l.QuantityOrdered.Sub(l.QuantityReceived)
}

// IsFullyReceived returns true once the received quantity covers the order
func (l *PurchaseOrderLine) IsFullyReceived() bool {
	return l.QuantityReceived.GreaterThanOrEqual(l.QuantityOrdered)
}

// PurchaseLineInput carries the caller-supplied fields for one line
type PurchaseLineInput struct {
	ProductID                 uuid.UUID
	Description               string
	QuantityOrdered           decimal.Decimal
	UnitOfMeasure             string
	UnitPrice                 valueobject.Money
	ExpectedDeliveryDate      *time.Time
	PurchaseRequisitionLineID string
}

// NewPurchaseOrderLine creates a validated line with a fresh identity
func NewPurchaseOrderLine(in PurchaseLineInput) (PurchaseOrderLine, error) {
	if in.ProductID == uuid.Nil {
		return PurchaseOrderLine{}, shared.NewValidationError("line product is required")
	}
	if !in.QuantityOrdered.IsPositive() {
		return PurchaseOrderLine{}, shared.NewValidationError("quantity ordered must be positive")
	}
	if in.UnitPrice.IsNegative() {
		return PurchaseOrderLine{}, shared.NewValidationError("unit price cannot be negative")
	}

	return PurchaseOrderLine{
		ID:                        uuid.New(),
		ProductID:                 in.ProductID,
		Description:               in.Description,
		QuantityOrdered:           in.QuantityOrdered,
		UnitOfMeasure:             in.UnitOfMeasure,
		UnitPrice:                 in.UnitPrice.Round2(),
		LineTotal:                 PurchaseLineTotal(in.QuantityOrdered, in.UnitPrice),
		QuantityReceived:          decimal.Zero,
		ExpectedDeliveryDate:      in.ExpectedDeliveryDate,
		PurchaseRequisitionLineID: in.PurchaseRequisitionLineID,
	}, nil
}

// PurchaseOrder is the aggregate root for supplier order documents.
// Its identity is the formatted document number; lines live and die
// with the header.
type PurchaseOrder struct {
	DocumentNo            string              `json:"document_no"`
	SupplierID            uuid.UUID           `json:"supplier_id"`
	StoreCode             string              `json:"store_code"`
	OrderDate             time.Time           `json:"order_date"`
	ExpectedDeliveryDate  *time.Time          `json:"expected_delivery_date,omitempty"`
	PaymentTermsID        string              `json:"payment_terms_id,omitempty"`
	ShippingAddress       valueobject.Address `json:"shipping_address"`
	BillingAddress        valueobject.Address `json:"billing_address"`
	PurchaseRequisitionID string              `json:"purchase_requisition_id,omitempty"`
	Notes                 string              `json:"notes"`
	Status                PurchaseOrderStatus `json:"status"`
	Lines                 []PurchaseOrderLine `json:"lines"`
	Subtotal              valueobject.Money   `json:"subtotal"`
	TaxAmount             valueobject.Money   `json:"tax_amount"`
	ShippingCost          valueobject.Money   `json:"shipping_cost"`
	OtherCharges          valueobject.Money   `json:"other_charges"`
	TotalAmount           valueobject.Money   `json:"total_amount"`
	Version               int                 `json:"version"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
}

// NewPurchaseOrder creates a draft purchase order with the given lines
func NewPurchaseOrder(documentNo string, supplierID uuid.UUID, storeCode string, orderDate time.Time, lines []PurchaseOrderLine) (*PurchaseOrder, error) {
	if documentNo == "" {
		return nil, shared.NewValidationError("document number is required")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewValidationError("supplier is required")
	}
	if storeCode == "" {
		return nil, shared.NewValidationError("store is required")
	}
	if len(lines) == 0 {
		return nil, shared.NewValidationError("purchase order requires at least one line")
	}

	now := time.Now()
	po := &PurchaseOrder{
		DocumentNo:   documentNo,
		SupplierID:   supplierID,
		StoreCode:    storeCode,
		OrderDate:    orderDate,
		Status:       PurchaseOrderStatusDraft,
		Lines:        lines,
		TaxAmount:    valueobject.ZeroMoney(),
		ShippingCost: valueobject.ZeroMoney(),
		OtherCharges: valueobject.ZeroMoney(),
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	po.recalculateTotals()
	return po, nil
}

// FindLine returns the line with the given ID, or nil
func (po *PurchaseOrder) FindLine(lineID uuid.UUID) *PurchaseOrderLine {
	for i := range po.Lines {
		if po.Lines[i].ID == lineID {
			return &po.Lines[i]
		}
	}
	return nil
}

// ReplaceLines swaps the full line set. Allowed only while the order
// is in Draft or PendingApproval; afterwards a line-carrying update is
// an invalid-state error, never a silent no-op.
func (po *PurchaseOrder) ReplaceLines(lines []PurchaseOrderLine) error {
	if !po.Status.CanEditLines() {
		return shared.NewInvalidStateError(fmt.Sprintf("lines of purchase order %s cannot be changed in status %s", po.DocumentNo, po.Status))
	}
	if len(lines) == 0 {
		return shared.NewValidationError("purchase order requires at least one line")
	}
	po.Lines = lines
	po.recalculateTotals()
	po.touch()
	return nil
}

// UpdateHeader updates the editable header-only fields
func (po *PurchaseOrder) UpdateHeader(notes string, expectedDeliveryDate *time.Time, shipping, billing valueobject.Address, paymentTermsID string) error {
	if !po.Status.CanEditHeader() {
		return shared.NewInvalidStateError(fmt.Sprintf("purchase order %s cannot be changed in status %s", po.DocumentNo, po.Status))
	}
	po.Notes = notes
	po.ExpectedDeliveryDate = expectedDeliveryDate
	po.ShippingAddress = shipping
	po.BillingAddress = billing
	po.PaymentTermsID = paymentTermsID
	po.touch()
	return nil
}

// SetCharges sets header-level charges and recomputes the total.
// Charges follow the same edit window as lines.
func (po *PurchaseOrder) SetCharges(taxAmount, shippingCost, otherCharges valueobject.Money) error {
	if !po.Status.CanEditLines() {
		return shared.NewInvalidStateError(fmt.Sprintf("charges of purchase order %s cannot be changed in status %s", po.DocumentNo, po.Status))
	}
	if taxAmount.IsNegative() || shippingCost.IsNegative() || otherCharges.IsNegative() {
		return shared.NewValidationError("charges cannot be negative")
	}
	po.TaxAmount = taxAmount.Round2()
	po.ShippingCost = shippingCost.Round2()
	po.OtherCharges = otherCharges.Round2()
	po.recalculateTotals()
	po.touch()
	return nil
}

// Submit moves a draft order to pending approval
func (po *PurchaseOrder) Submit() error {
	return po.transitionTo(PurchaseOrderStatusPendingApproval)
}

// Approve approves a pending order
func (po *PurchaseOrder) Approve() error {
	return po.transitionTo(PurchaseOrderStatusApproved)
}

// SendToSupplier marks an approved order as sent
func (po *PurchaseOrder) SendToSupplier() error {
	return po.transitionTo(PurchaseOrderStatusSentToSupplier)
}

// Cancel cancels the order where the machine allows it
func (po *PurchaseOrder) Cancel() error {
	return po.transitionTo(PurchaseOrderStatusCancelled)
}

// Close closes a received order
func (po *PurchaseOrder) Close() error {
	return po.transitionTo(PurchaseOrderStatusClosed)
}

func (po *PurchaseOrder) transitionTo(target PurchaseOrderStatus) error {
	if !po.Status.CanTransitionTo(target) {
		return shared.NewInvalidStateError(fmt.Sprintf("purchase order %s cannot move from %s to %s", po.DocumentNo, po.Status, target))
	}
	po.Status = target
	po.touch()
	return nil
}

// ApplyReceipt records received quantities against lines, keyed by
// line ID, and derives the resulting receipt status. Quantities are
// validated against the outstanding amount so QuantityReceived never
// exceeds QuantityOrdered.
func (po *PurchaseOrder) ApplyReceipt(quantities map[uuid.UUID]decimal.Decimal) error {
	if !po.Status.CanReceive() {
		return shared.NewInvalidStateError(fmt.Sprintf("purchase order %s cannot receive goods in status %s", po.DocumentNo, po.Status))
	}
	for lineID, qty := range quantities {
		line := po.FindLine(lineID)
		if line == nil {
			return shared.NewValidationError(fmt.Sprintf("purchase order %s has no line %s", po.DocumentNo, lineID))
		}
		if !qty.IsPositive() {
			return shared.NewValidationError("received quantity must be positive")
		}
		if qty.GreaterThan(line.Outstanding()) {
			return shared.NewValidationError(fmt.Sprintf("received quantity %s exceeds outstanding %s on line %s", qty, line.Outstanding(), lineID))
		}
	}
	for lineID, qty := range quantities {
		line := po.FindLine(lineID)
		line.QuantityReceived = line.QuantityReceived.Add(qty)
	}

	if po.allLinesReceived() {
		po.Status = PurchaseOrderStatusFullyReceived
	} else {
		po.Status = PurchaseOrderStatusPartiallyReceived
	}
	po.touch()
	return nil
}

func (po *PurchaseOrder) allLinesReceived() bool {
	for i := range po.Lines {
		if !po.Lines[i].IsFullyReceived() {
			return false
		}
	}
	return true
}

func (po *PurchaseOrder) recalculateTotals() {
	lineTotals := make([]valueobject.Money, len(po.Lines))
	for i := range po.Lines {
		lineTotals[i] = po.Lines[i].LineTotal
	}
	totals := CalculatePurchaseTotals(lineTotals, po.TaxAmount, po.ShippingCost, po.OtherCharges)
	po.Subtotal = totals.Subtotal
	po.TotalAmount = totals.TotalAmount
}

func (po *PurchaseOrder) touch() {
	po.UpdatedAt = time.Now()
	po.Version++
}
