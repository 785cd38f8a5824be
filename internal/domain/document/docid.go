package document

import (
	"fmt"
	"time"

	"github.com/retailops/erp-backend/internal/domain/shared"
)

// DocType identifies a document family for numbering purposes. Sales
// invoices use one DocType per invoice type so each channel runs its
// own sequence.
type DocType string

const (
	DocTypePurchaseOrder      DocType = "PO"
	DocTypeGoodsReceipt       DocType = "GRN"
	DocTypeSalesInvoiceCash   DocType = "CSH"
	DocTypeSalesInvoiceLayby  DocType = "LBY"
	DocTypeSalesInvoiceField  DocType = "FLD"
	DocTypeSalesInvoiceCredit DocType = "CRD"
)

// SequenceWidth returns the zero-padded width of the sequence part
func (d DocType) SequenceWidth() int {
	if d == DocTypePurchaseOrder {
		return 3
	}
	return 4
}

// MaxSequence returns the largest sequence value the width can carry
func (d DocType) MaxSequence() int64 {
	max := int64(1)
	for i := 0; i < d.SequenceWidth(); i++ {
		max *= 10
	}
	return max - 1
}

// InvoiceDocType maps an invoice type to its numbering DocType
func InvoiceDocType(t InvoiceType) (DocType, error) {
	switch t {
	case InvoiceTypeCash:
		return DocTypeSalesInvoiceCash, nil
	case InvoiceTypeLayby:
		return DocTypeSalesInvoiceLayby, nil
	case InvoiceTypeField:
		return DocTypeSalesInvoiceField, nil
	case InvoiceTypeCredit:
		return DocTypeSalesInvoiceCredit, nil
	}
	return "", shared.NewValidationError(fmt.Sprintf("unknown invoice type %q", t))
}

// YearMonth returns the YYMM component for a document date, in UTC
func YearMonth(at time.Time) string {
	return at.UTC().Format("0601")
}

// FormatDocumentID renders a document number as
// <PREFIX>-<STORE>-<YYMM><SEQ>, e.g. PO-SH01-2506001. It is a pure
// function: allocation of the sequence value happens elsewhere.
func FormatDocumentID(docType DocType, storeCode, yearMonth string, seq int64) (string, error) {
	if seq < 1 || seq > docType.MaxSequence() {
		return "", shared.NewSequenceCollisionError(SequenceScope(docType, storeCode, yearMonth))
	}
	return fmt.Sprintf("%s-%s-%s%0*d", docType, storeCode, yearMonth, docType.SequenceWidth(), seq), nil
}

// SequenceScope names the counter a document number is drawn from
func SequenceScope(docType DocType, storeCode, yearMonth string) string {
	return fmt.Sprintf("%s/%s/%s", docType, storeCode, yearMonth)
}
