package document

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/retailops/erp-backend/internal/domain/document"
	"github.com/retailops/erp-backend/internal/domain/masterdata"
	"github.com/retailops/erp-backend/internal/domain/shared"
	"github.com/retailops/erp-backend/internal/infrastructure/logger"
)

// GoodsReceiptService handles goods receipt note use cases
type GoodsReceiptService struct {
	receipts  document.GoodsReceiptRepository
	orders    document.PurchaseOrderRepository
	products  masterdata.ProductRepository
	sequences document.SequenceGenerator
}

// NewGoodsReceiptService creates a new goods receipt service
func NewGoodsReceiptService(
	receipts document.GoodsReceiptRepository,
	orders document.PurchaseOrderRepository,
	products masterdata.ProductRepository,
	sequences document.SequenceGenerator,
) *GoodsReceiptService {
	return &GoodsReceiptService{
		receipts:  receipts,
		orders:    orders,
		products:  products,
		sequences: sequences,
	}
}

// Create allocates a document number and creates a draft goods receipt
// note against a receivable purchase order
func (s *GoodsReceiptService) Create(ctx context.Context, req CreateGoodsReceiptRequest) (*document.GoodsReceipt, error) {
	po, err := s.orders.FindByDocumentNo(ctx, req.PurchaseOrderID)
	if err != nil {
		return nil, err
	}
	if !po.Status.CanReceive() {
		return nil, shared.NewInvalidStateError(fmt.Sprintf("purchase order %s cannot receive goods in status %s", po.DocumentNo, po.Status))
	}

	receiptDate := time.Now()
	if req.ReceiptDate != nil {
		receiptDate = *req.ReceiptDate
	}
	lines, err := s.buildLines(ctx, po, req.Lines, receiptDate)
	if err != nil {
		return nil, err
	}

	documentNo, err := allocateDocumentNo(ctx, s.sequences, document.DocTypeGoodsReceipt, po.StoreCode, receiptDate)
	if err != nil {
		return nil, err
	}

	grn, err := document.NewGoodsReceipt(documentNo, po.DocumentNo, po.SupplierID, po.StoreCode, receiptDate, lines)
	if err != nil {
		return nil, err
	}
	grn.SupplierInvoiceNo = req.SupplierInvoiceNo
	grn.ReceivedByUserID = req.ReceivedByUserID
	grn.Notes = req.Notes

	if err := s.receipts.Create(ctx, grn); err != nil {
		return nil, asSequenceCollision(err, document.DocTypeGoodsReceipt, po.StoreCode, receiptDate)
	}
	return grn, nil
}

// Get returns a goods receipt by document number
func (s *GoodsReceiptService) Get(ctx context.Context, documentNo string) (*document.GoodsReceipt, error) {
	return s.receipts.FindByDocumentNo(ctx, documentNo)
}

// List returns a paginated list of goods receipts
func (s *GoodsReceiptService) List(ctx context.Context, filter GoodsReceiptListFilter) (shared.Paginated[document.GoodsReceipt], error) {
	f := filter.ToFilter()
	items, err := s.receipts.FindAll(ctx, f)
	if err != nil {
		return shared.Paginated[document.GoodsReceipt]{}, err
	}
	total, err := s.receipts.Count(ctx, f)
	if err != nil {
		return shared.Paginated[document.GoodsReceipt]{}, err
	}
	return shared.NewPaginated(items, total, f.Page, f.PageSize), nil
}

// Update updates a draft receipt's header and, when lines are
// supplied, replaces the line set
func (s *GoodsReceiptService) Update(ctx context.Context, documentNo string, req UpdateGoodsReceiptRequest) (*document.GoodsReceipt, error) {
	grn, err := s.receipts.FindByDocumentNo(ctx, documentNo)
	if err != nil {
		return nil, err
	}

	receiptDate := grn.ReceiptDate
	if req.ReceiptDate != nil {
		receiptDate = *req.ReceiptDate
	}
	if req.Lines != nil {
		po, err := s.orders.FindByDocumentNo(ctx, grn.PurchaseOrderID)
		if err != nil {
			return nil, err
		}
		lines, err := s.buildLines(ctx, po, req.Lines, receiptDate)
		if err != nil {
			return nil, err
		}
		if err := grn.ReplaceLines(lines); err != nil {
			return nil, err
		}
	}
	if err := grn.UpdateHeader(receiptDate, req.SupplierInvoiceNo, req.ReceivedByUserID, req.Notes); err != nil {
		return nil, err
	}

	if err := s.receipts.Update(ctx, grn); err != nil {
		return nil, err
	}
	return grn, nil
}

// Post posts a draft receipt and applies its quantities to the linked
// purchase order in one atomic store update. Either both documents
// change or neither does.
func (s *GoodsReceiptService) Post(ctx context.Context, documentNo string) (*document.GoodsReceipt, error) {
	grn, err := s.receipts.FindByDocumentNo(ctx, documentNo)
	if err != nil {
		return nil, err
	}
	po, err := s.orders.FindByDocumentNo(ctx, grn.PurchaseOrderID)
	if err != nil {
		return nil, err
	}

	if err := po.ApplyReceipt(grn.ReceivedQuantities()); err != nil {
		return nil, err
	}
	if err := grn.Post(); err != nil {
		return nil, err
	}

	if err := s.receipts.UpdateWithPurchaseOrder(ctx, grn, po); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("goods receipt posted",
		zap.String("document_no", grn.DocumentNo),
		zap.String("purchase_order_id", po.DocumentNo),
		zap.String("order_status", po.Status.String()),
	)
	return grn, nil
}

// Cancel cancels a draft receipt
func (s *GoodsReceiptService) Cancel(ctx context.Context, documentNo string) (*document.GoodsReceipt, error) {
	grn, err := s.receipts.FindByDocumentNo(ctx, documentNo)
	if err != nil {
		return nil, err
	}
	if err := grn.Cancel(); err != nil {
		return nil, err
	}
	if err := s.receipts.Update(ctx, grn); err != nil {
		return nil, err
	}
	return grn, nil
}

// Delete removes a draft or cancelled receipt
func (s *GoodsReceiptService) Delete(ctx context.Context, documentNo string) error {
	grn, err := s.receipts.FindByDocumentNo(ctx, documentNo)
	if err != nil {
		return err
	}
	if !grn.Status.CanDelete() {
		return shared.NewInvalidStateError(fmt.Sprintf("goods receipt %s cannot be deleted in status %s", grn.DocumentNo, grn.Status))
	}
	return s.receipts.Delete(ctx, documentNo)
}

// buildLines resolves each requested line against the purchase order
// and the product master. Batch and expiry requirements come from the
// product; quantities are checked cumulatively against the line's
// outstanding amount so a receipt cannot over-deliver even when it
// references the same order line twice.
func (s *GoodsReceiptService) buildLines(ctx context.Context, po *document.PurchaseOrder, reqs []GoodsReceiptLineRequest, receiptDate time.Time) ([]document.GoodsReceiptLine, error) {
	lines := make([]document.GoodsReceiptLine, 0, len(reqs))
	claimed := make(map[string]decimal.Decimal, len(reqs))
	for _, r := range reqs {
		poLine := po.FindLine(r.PurchaseOrderLineID)
		if poLine == nil {
			return nil, shared.NewValidationError(fmt.Sprintf("purchase order %s has no line %s", po.DocumentNo, r.PurchaseOrderLineID))
		}

		key := poLine.ID.String()
		total := claimed[key].Add(r.QuantityReceived)
		if total.GreaterThan(poLine.Outstanding()) {
			return nil, shared.NewValidationError(fmt.Sprintf("received quantity %s exceeds outstanding %s on line %s", total, poLine.Outstanding(), poLine.ID))
		}
		claimed[key] = total

		product, err := s.products.FindByID(ctx, poLine.ProductID)
		if err != nil {
			return nil, err
		}
		line, err := document.NewGoodsReceiptLine(document.GoodsReceiptLineInput{
			ProductID:           poLine.ProductID,
			PurchaseOrderLineID: poLine.ID,
			QuantityOrdered:     poLine.QuantityOrdered,
			QuantityReceived:    r.QuantityReceived,
			UnitPriceAtReceipt:  poLine.UnitPrice,
			BatchNumber:         r.BatchNumber,
			ExpiryDate:          r.ExpiryDate,
			Notes:               r.Notes,
		}, document.LineRequirements{
			RequiresBatchNumber: product.RequiresBatchNumber,
			RequiresExpiryDate:  product.RequiresExpiryDate,
		}, receiptDate)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
