package document

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/retailops/erp-backend/internal/domain/document"
	"github.com/retailops/erp-backend/internal/domain/masterdata"
	"github.com/retailops/erp-backend/internal/domain/shared"
	"github.com/retailops/erp-backend/internal/domain/shared/valueobject"
	"github.com/retailops/erp-backend/internal/infrastructure/logger"
)

// PurchaseOrderService handles purchase order use cases
type PurchaseOrderService struct {
	orders    document.PurchaseOrderRepository
	products  masterdata.ProductRepository
	suppliers masterdata.SupplierRepository
	stores    masterdata.StoreRepository
	sequences document.SequenceGenerator
}

// NewPurchaseOrderService creates a new purchase order service
func NewPurchaseOrderService(
	orders document.PurchaseOrderRepository,
	products masterdata.ProductRepository,
	suppliers masterdata.SupplierRepository,
	stores masterdata.StoreRepository,
	sequences document.SequenceGenerator,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		orders:    orders,
		products:  products,
		suppliers: suppliers,
		stores:    stores,
		sequences: sequences,
	}
}

// Create allocates a document number and creates a draft purchase order
func (s *PurchaseOrderService) Create(ctx context.Context, req CreatePurchaseOrderRequest) (*document.PurchaseOrder, error) {
	store, err := requireActiveStore(ctx, s.stores, req.StoreCode)
	if err != nil {
		return nil, err
	}
	if _, err := requireActiveSupplier(ctx, s.suppliers, req.SupplierID); err != nil {
		return nil, err
	}
	lines, err := s.buildLines(ctx, req.Lines)
	if err != nil {
		return nil, err
	}

	orderDate := time.Now()
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}

	documentNo, err := allocateDocumentNo(ctx, s.sequences, document.DocTypePurchaseOrder, store.Code, orderDate)
	if err != nil {
		return nil, err
	}

	po, err := document.NewPurchaseOrder(documentNo, req.SupplierID, store.Code, orderDate, lines)
	if err != nil {
		return nil, err
	}
	po.PurchaseRequisitionID = req.PurchaseRequisitionID
	if err := po.UpdateHeader(req.Notes, req.ExpectedDeliveryDate, toAddress(req.ShippingAddress), toAddress(req.BillingAddress), req.PaymentTermsID); err != nil {
		return nil, err
	}
	if err := po.SetCharges(valueobject.NewMoney(req.TaxAmount), valueobject.NewMoney(req.ShippingCost), valueobject.NewMoney(req.OtherCharges)); err != nil {
		return nil, err
	}

	if err := s.orders.Create(ctx, po); err != nil {
		return nil, asSequenceCollision(err, document.DocTypePurchaseOrder, store.Code, orderDate)
	}
	logger.FromContext(ctx).Info("purchase order created",
		zap.String("document_no", po.DocumentNo),
		zap.String("store_code", po.StoreCode),
		zap.String("supplier_id", po.SupplierID.String()),
	)
	return po, nil
}

// Get returns a purchase order by document number
func (s *PurchaseOrderService) Get(ctx context.Context, documentNo string) (*document.PurchaseOrder, error) {
	return s.orders.FindByDocumentNo(ctx, documentNo)
}

// List returns a paginated list of purchase orders
func (s *PurchaseOrderService) List(ctx context.Context, filter PurchaseOrderListFilter) (shared.Paginated[document.PurchaseOrder], error) {
	f := filter.ToFilter()
	items, err := s.orders.FindAll(ctx, f)
	if err != nil {
		return shared.Paginated[document.PurchaseOrder]{}, err
	}
	total, err := s.orders.Count(ctx, f)
	if err != nil {
		return shared.Paginated[document.PurchaseOrder]{}, err
	}
	return shared.NewPaginated(items, total, f.Page, f.PageSize), nil
}

// Update updates the header of an editable order and, when lines are
// supplied, replaces the line set
func (s *PurchaseOrderService) Update(ctx context.Context, documentNo string, req UpdatePurchaseOrderRequest) (*document.PurchaseOrder, error) {
	po, err := s.orders.FindByDocumentNo(ctx, documentNo)
	if err != nil {
		return nil, err
	}

	if req.Lines != nil {
		lines, err := s.buildLines(ctx, req.Lines)
		if err != nil {
			return nil, err
		}
		if err := po.ReplaceLines(lines); err != nil {
			return nil, err
		}
	}
	if err := po.UpdateHeader(req.Notes, req.ExpectedDeliveryDate, toAddress(req.ShippingAddress), toAddress(req.BillingAddress), req.PaymentTermsID); err != nil {
		return nil, err
	}
	if req.TaxAmount != nil || req.ShippingCost != nil || req.OtherCharges != nil {
		tax := po.TaxAmount
		shipping := po.ShippingCost
		other := po.OtherCharges
		if req.TaxAmount != nil {
			tax = valueobject.NewMoney(*req.TaxAmount)
		}
		if req.ShippingCost != nil {
			shipping = valueobject.NewMoney(*req.ShippingCost)
		}
		if req.OtherCharges != nil {
			other = valueobject.NewMoney(*req.OtherCharges)
		}
		if err := po.SetCharges(tax, shipping, other); err != nil {
			return nil, err
		}
	}

	if err := s.orders.Update(ctx, po); err != nil {
		return nil, err
	}
	return po, nil
}

// Submit moves a draft order to pending approval
func (s *PurchaseOrderService) Submit(ctx context.Context, documentNo string) (*document.PurchaseOrder, error) {
	return s.transition(ctx, documentNo, (*document.PurchaseOrder).Submit)
}

// Approve approves a pending order
func (s *PurchaseOrderService) Approve(ctx context.Context, documentNo string) (*document.PurchaseOrder, error) {
	return s.transition(ctx, documentNo, (*document.PurchaseOrder).Approve)
}

// Send marks an approved order as sent to the supplier
func (s *PurchaseOrderService) Send(ctx context.Context, documentNo string) (*document.PurchaseOrder, error) {
	return s.transition(ctx, documentNo, (*document.PurchaseOrder).SendToSupplier)
}

// Cancel cancels an order that has not received goods yet
func (s *PurchaseOrderService) Cancel(ctx context.Context, documentNo string) (*document.PurchaseOrder, error) {
	return s.transition(ctx, documentNo, (*document.PurchaseOrder).Cancel)
}

// Close closes a received order
func (s *PurchaseOrderService) Close(ctx context.Context, documentNo string) (*document.PurchaseOrder, error) {
	return s.transition(ctx, documentNo, (*document.PurchaseOrder).Close)
}

// Delete removes a draft or cancelled order together with its lines
func (s *PurchaseOrderService) Delete(ctx context.Context, documentNo string) error {
	po, err := s.orders.FindByDocumentNo(ctx, documentNo)
	if err != nil {
		return err
	}
	if !po.Status.CanDelete() {
		return shared.NewInvalidStateError(fmt.Sprintf("purchase order %s cannot be deleted in status %s", po.DocumentNo, po.Status))
	}
	return s.orders.Delete(ctx, documentNo)
}

func (s *PurchaseOrderService) transition(ctx context.Context, documentNo string, move func(*document.PurchaseOrder) error) (*document.PurchaseOrder, error) {
	po, err := s.orders.FindByDocumentNo(ctx, documentNo)
	if err != nil {
		return nil, err
	}
	if err := move(po); err != nil {
		return nil, err
	}
	if err := s.orders.Update(ctx, po); err != nil {
		return nil, err
	}
	return po, nil
}

// buildLines resolves each requested line against the product master.
// Description, unit of measure and unit price fall back to the
// product's values when the request leaves them empty.
func (s *PurchaseOrderService) buildLines(ctx context.Context, reqs []PurchaseLineRequest) ([]document.PurchaseOrderLine, error) {
	lines := make([]document.PurchaseOrderLine, 0, len(reqs))
	for _, r := range reqs {
		product, err := requireActiveProduct(ctx, s.products, r.ProductID)
		if err != nil {
			return nil, err
		}
		description := r.Description
		if description == "" {
			description = product.Name
		}
		uom := r.UnitOfMeasure
		if uom == "" {
			uom = product.UnitOfMeasure
		}
		unitPrice := product.CostPrice
		if r.UnitPrice != nil {
			unitPrice = valueobject.NewMoney(*r.UnitPrice)
		}

		line, err := document.NewPurchaseOrderLine(document.PurchaseLineInput{
			ProductID:                 product.ID,
			Description:               description,
			QuantityOrdered:           r.QuantityOrdered,
			UnitOfMeasure:             uom,
			UnitPrice:                 unitPrice,
			ExpectedDeliveryDate:      r.ExpectedDeliveryDate,
			PurchaseRequisitionLineID: r.PurchaseRequisitionLineID,
		})
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
