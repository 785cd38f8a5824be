package document

// PurchaseOrderStatus represents the status of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft             PurchaseOrderStatus = "DRAFT"
	PurchaseOrderStatusPendingApproval   PurchaseOrderStatus = "PENDING_APPROVAL"
	PurchaseOrderStatusApproved          PurchaseOrderStatus = "APPROVED"
	PurchaseOrderStatusSentToSupplier    PurchaseOrderStatus = "SENT_TO_SUPPLIER"
	PurchaseOrderStatusPartiallyReceived PurchaseOrderStatus = "PARTIALLY_RECEIVED"
	PurchaseOrderStatusFullyReceived     PurchaseOrderStatus = "FULLY_RECEIVED"
	PurchaseOrderStatusCancelled         PurchaseOrderStatus = "CANCELLED"
	PurchaseOrderStatusClosed            PurchaseOrderStatus = "CLOSED"
)

// IsValid checks if the status is a valid PurchaseOrderStatus
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusDraft, PurchaseOrderStatusPendingApproval, PurchaseOrderStatusApproved,
		PurchaseOrderStatusSentToSupplier, PurchaseOrderStatusPartiallyReceived,
		PurchaseOrderStatusFullyReceived, PurchaseOrderStatusCancelled, PurchaseOrderStatusClosed:
		return true
	}
	return false
}

// String returns the string representation of PurchaseOrderStatus
func (s PurchaseOrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s PurchaseOrderStatus) CanTransitionTo(target PurchaseOrderStatus) bool {
	switch s {
	case PurchaseOrderStatusDraft:
		return target == PurchaseOrderStatusPendingApproval || target == PurchaseOrderStatusCancelled
	case PurchaseOrderStatusPendingApproval:
		return target == PurchaseOrderStatusApproved || target == PurchaseOrderStatusCancelled
	case PurchaseOrderStatusApproved:
		return target == PurchaseOrderStatusSentToSupplier || target == PurchaseOrderStatusCancelled
	case PurchaseOrderStatusSentToSupplier:
		return target == PurchaseOrderStatusPartiallyReceived ||
			target == PurchaseOrderStatusFullyReceived ||
			target == PurchaseOrderStatusCancelled
	case PurchaseOrderStatusPartiallyReceived:
		return target == PurchaseOrderStatusPartiallyReceived ||
			target == PurchaseOrderStatusFullyReceived ||
			target == PurchaseOrderStatusClosed
	case PurchaseOrderStatusFullyReceived:
		return target == PurchaseOrderStatusClosed
	case PurchaseOrderStatusCancelled, PurchaseOrderStatusClosed:
		return false // terminal
	}
	return false
}

// CanEditLines returns true if line items may still be replaced
func (s PurchaseOrderStatus) CanEditLines() bool {
	return s == PurchaseOrderStatusDraft || s == PurchaseOrderStatusPendingApproval
}

// CanEditHeader returns true if header fields may still be changed
func (s PurchaseOrderStatus) CanEditHeader() bool {
	return s != PurchaseOrderStatusCancelled && s != PurchaseOrderStatusClosed
}

// CanReceive returns true if goods may be received against this status
func (s PurchaseOrderStatus) CanReceive() bool {
	return s == PurchaseOrderStatusSentToSupplier || s == PurchaseOrderStatusPartiallyReceived
}

// CanDelete returns true if the document may be deleted in this status
func (s PurchaseOrderStatus) CanDelete() bool {
	return s == PurchaseOrderStatusDraft || s == PurchaseOrderStatusCancelled
}

// GoodsReceiptStatus represents the status of a goods receipt note
type GoodsReceiptStatus string

const (
	GoodsReceiptStatusDraft     GoodsReceiptStatus = "DRAFT"
	GoodsReceiptStatusPosted    GoodsReceiptStatus = "POSTED"
	GoodsReceiptStatusCancelled GoodsReceiptStatus = "CANCELLED"
)

// IsValid checks if the status is a valid GoodsReceiptStatus
func (s GoodsReceiptStatus) IsValid() bool {
	switch s {
	case GoodsReceiptStatusDraft, GoodsReceiptStatusPosted, GoodsReceiptStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of GoodsReceiptStatus
func (s GoodsReceiptStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// Posted receipts are final: there is no un-posting.
func (s GoodsReceiptStatus) CanTransitionTo(target GoodsReceiptStatus) bool {
	switch s {
	case GoodsReceiptStatusDraft:
		return target == GoodsReceiptStatusPosted || target == GoodsReceiptStatusCancelled
	case GoodsReceiptStatusPosted, GoodsReceiptStatusCancelled:
		return false
	}
	return false
}

// CanEdit returns true if the receipt may still be changed
func (s GoodsReceiptStatus) CanEdit() bool {
	return s == GoodsReceiptStatusDraft
}

// CanDelete returns true if the receipt may be deleted in this status
func (s GoodsReceiptStatus) CanDelete() bool {
	return s == GoodsReceiptStatusDraft || s == GoodsReceiptStatusCancelled
}

// InvoiceType represents the sales channel a sales invoice belongs to
type InvoiceType string

const (
	InvoiceTypeCash   InvoiceType = "CASH"
	InvoiceTypeLayby  InvoiceType = "LAYBY"
	InvoiceTypeField  InvoiceType = "FIELD"
	InvoiceTypeCredit InvoiceType = "CREDIT"
)

// IsValid checks if the type is a valid InvoiceType
func (t InvoiceType) IsValid() bool {
	switch t {
	case InvoiceTypeCash, InvoiceTypeLayby, InvoiceTypeField, InvoiceTypeCredit:
		return true
	}
	return false
}

// String returns the string representation of InvoiceType
func (t InvoiceType) String() string {
	return string(t)
}

// SalesInvoiceStatus represents the status of a sales invoice
type SalesInvoiceStatus string

const (
	SalesInvoiceStatusDraft         SalesInvoiceStatus = "DRAFT"
	SalesInvoiceStatusIssued        SalesInvoiceStatus = "ISSUED"
	SalesInvoiceStatusPartiallyPaid SalesInvoiceStatus = "PARTIALLY_PAID"
	SalesInvoiceStatusPaid          SalesInvoiceStatus = "PAID"
	SalesInvoiceStatusVoid          SalesInvoiceStatus = "VOID"
	SalesInvoiceStatusCancelled     SalesInvoiceStatus = "CANCELLED"
	SalesInvoiceStatusOverdue       SalesInvoiceStatus = "OVERDUE"
)

// IsValid checks if the status is a valid SalesInvoiceStatus
func (s SalesInvoiceStatus) IsValid() bool {
	switch s {
	case SalesInvoiceStatusDraft, SalesInvoiceStatusIssued, SalesInvoiceStatusPartiallyPaid,
		SalesInvoiceStatusPaid, SalesInvoiceStatusVoid, SalesInvoiceStatusCancelled,
		SalesInvoiceStatusOverdue:
		return true
	}
	return false
}

// String returns the string representation of SalesInvoiceStatus
func (s SalesInvoiceStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s SalesInvoiceStatus) CanTransitionTo(target SalesInvoiceStatus) bool {
	switch s {
	case SalesInvoiceStatusDraft:
		return target == SalesInvoiceStatusIssued || target == SalesInvoiceStatusCancelled
	case SalesInvoiceStatusIssued:
		return target == SalesInvoiceStatusPartiallyPaid || target == SalesInvoiceStatusPaid ||
			target == SalesInvoiceStatusVoid || target == SalesInvoiceStatusOverdue
	case SalesInvoiceStatusPartiallyPaid:
		return target == SalesInvoiceStatusPaid || target == SalesInvoiceStatusOverdue ||
			target == SalesInvoiceStatusVoid
	case SalesInvoiceStatusOverdue:
		return target == SalesInvoiceStatusPartiallyPaid || target == SalesInvoiceStatusPaid ||
			target == SalesInvoiceStatusVoid
	case SalesInvoiceStatusPaid, SalesInvoiceStatusVoid, SalesInvoiceStatusCancelled:
		return false // terminal
	}
	return false
}

// CanEditLines returns true if invoice lines may still be replaced
func (s SalesInvoiceStatus) CanEditLines() bool {
	return s == SalesInvoiceStatusDraft
}

// CanEditHeader returns true if header fields may still be changed
func (s SalesInvoiceStatus) CanEditHeader() bool {
	switch s {
	case SalesInvoiceStatusPaid, SalesInvoiceStatusVoid, SalesInvoiceStatusCancelled:
		return false
	}
	return true
}

// CanReceivePayment returns true if a payment may be recorded in this status
func (s SalesInvoiceStatus) CanReceivePayment() bool {
	return s == SalesInvoiceStatusIssued || s == SalesInvoiceStatusPartiallyPaid ||
		s == SalesInvoiceStatusOverdue
}

// CanDelete returns true if the invoice may be deleted in this status
func (s SalesInvoiceStatus) CanDelete() bool {
	return s == SalesInvoiceStatusDraft || s == SalesInvoiceStatusCancelled
}
