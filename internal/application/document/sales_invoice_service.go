package document

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/retailops/erp-backend/internal/domain/document"
	"github.com/retailops/erp-backend/internal/domain/masterdata"
	"github.com/retailops/erp-backend/internal/domain/shared"
	"github.com/retailops/erp-backend/internal/domain/shared/valueobject"
	"github.com/retailops/erp-backend/internal/infrastructure/logger"
)

// SalesInvoiceService handles sales invoice use cases
type SalesInvoiceService struct {
	invoices  document.SalesInvoiceRepository
	products  masterdata.ProductRepository
	customers masterdata.CustomerRepository
	stores    masterdata.StoreRepository
	sequences document.SequenceGenerator
}

// NewSalesInvoiceService creates a new sales invoice service
func NewSalesInvoiceService(
	invoices document.SalesInvoiceRepository,
	products masterdata.ProductRepository,
	customers masterdata.CustomerRepository,
	stores masterdata.StoreRepository,
	sequences document.SequenceGenerator,
) *SalesInvoiceService {
	return &SalesInvoiceService{
		invoices:  invoices,
		products:  products,
		customers: customers,
		stores:    stores,
		sequences: sequences,
	}
}

// Create allocates a document number and creates a draft sales invoice
func (s *SalesInvoiceService) Create(ctx context.Context, req CreateSalesInvoiceRequest) (*document.SalesInvoice, error) {
	invoiceType := document.InvoiceType(strings.ToUpper(strings.TrimSpace(req.InvoiceType)))
	docType, err := document.InvoiceDocType(invoiceType)
	if err != nil {
		return nil, err
	}
	store, err := requireActiveStore(ctx, s.stores, req.StoreCode)
	if err != nil {
		return nil, err
	}
	if _, err := requireActiveCustomer(ctx, s.customers, req.CustomerID); err != nil {
		return nil, err
	}
	lines, err := s.buildLines(ctx, req.Lines)
	if err != nil {
		return nil, err
	}

	invoiceDate := time.Now()
	if req.InvoiceDate != nil {
		invoiceDate = *req.InvoiceDate
	}

	documentNo, err := allocateDocumentNo(ctx, s.sequences, docType, store.Code, invoiceDate)
	if err != nil {
		return nil, err
	}

	si, err := document.NewSalesInvoice(documentNo, req.CustomerID, store.Code, invoiceType, invoiceDate, lines, document.SalesInvoiceCharges{
		InvoiceDiscountAmount: valueobject.NewMoney(req.InvoiceDiscountAmount),
		TaxRate:               req.TaxRate,
		ShippingCharges:       valueobject.NewMoney(req.ShippingCharges),
		OtherCharges:          valueobject.NewMoney(req.OtherCharges),
	})
	if err != nil {
		return nil, err
	}
	si.DueDate = req.DueDate
	si.SalespersonID = req.SalespersonID
	si.SalesOrderID = req.SalesOrderID
	si.Notes = req.Notes

	if err := s.invoices.Create(ctx, si); err != nil {
		return nil, asSequenceCollision(err, docType, store.Code, invoiceDate)
	}
	return si, nil
}

// Get returns a sales invoice by document number
func (s *SalesInvoiceService) Get(ctx context.Context, documentNo string) (*document.SalesInvoice, error) {
	return s.invoices.FindByDocumentNo(ctx, documentNo)
}

// List returns a paginated list of sales invoices
func (s *SalesInvoiceService) List(ctx context.Context, filter SalesInvoiceListFilter) (shared.Paginated[document.SalesInvoice], error) {
	f := filter.ToFilter()
	items, err := s.invoices.FindAll(ctx, f)
	if err != nil {
		return shared.Paginated[document.SalesInvoice]{}, err
	}
	total, err := s.invoices.Count(ctx, f)
	if err != nil {
		return shared.Paginated[document.SalesInvoice]{}, err
	}
	return shared.NewPaginated(items, total, f.Page, f.PageSize), nil
}

// Update updates an invoice. Line replacement is only allowed on a
// draft; on any other status a line-carrying request is an
// invalid-state error and header-only updates remain possible.
func (s *SalesInvoiceService) Update(ctx context.Context, documentNo string, req UpdateSalesInvoiceRequest) (*document.SalesInvoice, error) {
	si, err := s.invoices.FindByDocumentNo(ctx, documentNo)
	if err != nil {
		return nil, err
	}

	if req.Lines != nil || req.InvoiceDiscountAmount != nil || req.TaxRate != nil || req.ShippingCharges != nil || req.OtherCharges != nil {
		charges := document.SalesInvoiceCharges{
			InvoiceDiscountAmount: si.TotalInvoiceDiscountAmount,
			TaxRate:               si.TaxRate,
			ShippingCharges:       si.ShippingCharges,
			OtherCharges:          si.OtherCharges,
		}
		if req.InvoiceDiscountAmount != nil {
			charges.InvoiceDiscountAmount = valueobject.NewMoney(*req.InvoiceDiscountAmount)
		}
		if req.TaxRate != nil {
			charges.TaxRate = *req.TaxRate
		}
		if req.ShippingCharges != nil {
			charges.ShippingCharges = valueobject.NewMoney(*req.ShippingCharges)
		}
		if req.OtherCharges != nil {
			charges.OtherCharges = valueobject.NewMoney(*req.OtherCharges)
		}

		lines := si.Lines
		if req.Lines != nil {
			lines, err = s.buildLines(ctx, req.Lines)
			if err != nil {
				return nil, err
			}
		}
		if err := si.ReplaceLines(lines, charges); err != nil {
			return nil, err
		}
	}
	if err := si.UpdateHeader(req.Notes, req.DueDate, req.SalespersonID); err != nil {
		return nil, err
	}

	if err := s.invoices.Update(ctx, si); err != nil {
		return nil, err
	}
	return si, nil
}

// Issue issues a draft invoice
func (s *SalesInvoiceService) Issue(ctx context.Context, documentNo string) (*document.SalesInvoice, error) {
	return s.transition(ctx, documentNo, (*document.SalesInvoice).Issue)
}

// Void voids an issued invoice
func (s *SalesInvoiceService) Void(ctx context.Context, documentNo string) (*document.SalesInvoice, error) {
	return s.transition(ctx, documentNo, (*document.SalesInvoice).Void)
}

// Cancel cancels a draft invoice
func (s *SalesInvoiceService) Cancel(ctx context.Context, documentNo string) (*document.SalesInvoice, error) {
	return s.transition(ctx, documentNo, (*document.SalesInvoice).Cancel)
}

// RecordPayment records a payment against an issued invoice and
// derives the resulting payment status
func (s *SalesInvoiceService) RecordPayment(ctx context.Context, documentNo string, req RecordPaymentRequest) (*document.SalesInvoice, error) {
	si, err := s.invoices.FindByDocumentNo(ctx, documentNo)
	if err != nil {
		return nil, err
	}
	if err := si.RecordPayment(valueobject.NewMoney(req.Amount)); err != nil {
		return nil, err
	}
	if err := s.invoices.Update(ctx, si); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("payment recorded",
		zap.String("document_no", si.DocumentNo),
		zap.String("amount", valueobject.NewMoney(req.Amount).String()),
		zap.String("status", si.Status.String()),
	)
	return si, nil
}

// Delete removes a draft or cancelled invoice together with its lines
func (s *SalesInvoiceService) Delete(ctx context.Context, documentNo string) error {
	si, err := s.invoices.FindByDocumentNo(ctx, documentNo)
	if err != nil {
		return err
	}
	if !si.Status.CanDelete() {
		return shared.NewInvalidStateError(fmt.Sprintf("sales invoice %s cannot be deleted in status %s", si.DocumentNo, si.Status))
	}
	return s.invoices.Delete(ctx, documentNo)
}

func (s *SalesInvoiceService) transition(ctx context.Context, documentNo string, move func(*document.SalesInvoice) error) (*document.SalesInvoice, error) {
	si, err := s.invoices.FindByDocumentNo(ctx, documentNo)
	if err != nil {
		return nil, err
	}
	if err := move(si); err != nil {
		return nil, err
	}
	if err := s.invoices.Update(ctx, si); err != nil {
		return nil, err
	}
	return si, nil
}

// buildLines resolves each requested line against the product master.
// The selling price, tax rate, description and unit of measure default
// from the product; the cost price is always snapshotted from it.
func (s *SalesInvoiceService) buildLines(ctx context.Context, reqs []SalesLineRequest) ([]document.SalesInvoiceLine, error) {
	lines := make([]document.SalesInvoiceLine, 0, len(reqs))
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
		unitPrice := product.SellingPrice
		if r.UnitPrice != nil {
			unitPrice = valueobject.NewMoney(*r.UnitPrice)
		}
		taxRate := product.TaxRate
		if r.TaxRate != nil {
			taxRate = *r.TaxRate
		}

		line, err := document.NewSalesInvoiceLine(document.SalesLineDetails{
			ProductID:                 product.ID,
			Description:               description,
			Quantity:                  r.Quantity,
			UnitOfMeasure:             uom,
			UnitPriceBeforeDiscount:   unitPrice,
			ProductDiscountAmount:     valueobject.NewMoney(r.DiscountAmount),
			ProductDiscountPercentage: r.DiscountPercentage,
			CostPriceAtSale:           product.CostPrice,
			LineTaxRate:               taxRate,
		})
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
