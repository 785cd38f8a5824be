package handler

import (
	"github.com/gin-gonic/gin"

	documentapp "github.com/retailops/erp-backend/internal/application/document"
	"github.com/retailops/erp-backend/internal/interfaces/http/middleware"
)

// SalesInvoiceHandler handles sales invoice API endpoints
type SalesInvoiceHandler struct {
	BaseHandler
	invoices *documentapp.SalesInvoiceService
}

// NewSalesInvoiceHandler creates a new SalesInvoiceHandler
func NewSalesInvoiceHandler(invoices *documentapp.SalesInvoiceService) *SalesInvoiceHandler {
	return &SalesInvoiceHandler{invoices: invoices}
}

// RegisterRoutes registers sales invoice routes on the given group
func (h *SalesInvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/sales-invoices")
	invoices.POST("", h.Create)
	invoices.GET("", h.List)
	invoices.GET("/:documentNo", h.GetByDocumentNo)
	invoices.PUT("/:documentNo", h.Update)
	invoices.DELETE("/:documentNo", h.Delete)
	invoices.POST("/:documentNo/issue", h.Issue)
	invoices.POST("/:documentNo/void", h.Void)
	invoices.POST("/:documentNo/cancel", h.Cancel)
	invoices.POST("/:documentNo/payments", h.RecordPayment)
}

// Create godoc
// @Summary      Create a new sales invoice
// @Tags         sales-invoices
// @Accept       json
// @Produce      json
// @Param        request body documentapp.CreateSalesInvoiceRequest true "Sales invoice creation request"
// @Success      201 {object} dto.Response
// @Router       /sales-invoices [post]
func (h *SalesInvoiceHandler) Create(c *gin.Context) {
	var req documentapp.CreateSalesInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	invoice, err := h.invoices.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, invoice)
}

// GetByDocumentNo godoc
// @Summary      Get sales invoice by document number
// @Tags         sales-invoices
// @Produce      json
// @Param        documentNo path string true "Document number"
// @Success      200 {object} dto.Response
// @Router       /sales-invoices/{documentNo} [get]
func (h *SalesInvoiceHandler) GetByDocumentNo(c *gin.Context) {
	invoice, err := h.invoices.Get(c.Request.Context(), c.Param("documentNo"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}

// List godoc
// @Summary      List sales invoices
// @Tags         sales-invoices
// @Produce      json
// @Param        store_code query string false "Store code"
// @Param        customer_id query string false "Customer ID" format(uuid)
// @Param        invoice_type query string false "Invoice type"
// @Param        status query string false "Document status"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response
// @Router       /sales-invoices [get]
func (h *SalesInvoiceHandler) List(c *gin.Context) {
	var filter documentapp.SalesInvoiceListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.invoices.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update godoc
// @Summary      Update a draft sales invoice
// @Tags         sales-invoices
// @Accept       json
// @Produce      json
// @Param        documentNo path string true "Document number"
// @Param        request body documentapp.UpdateSalesInvoiceRequest true "Sales invoice update request"
// @Success      200 {object} dto.Response
// @Router       /sales-invoices/{documentNo} [put]
func (h *SalesInvoiceHandler) Update(c *gin.Context) {
	var req documentapp.UpdateSalesInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	invoice, err := h.invoices.Update(c.Request.Context(), c.Param("documentNo"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}

// Delete godoc
// @Summary      Delete a draft or cancelled sales invoice
// @Tags         sales-invoices
// @Param        documentNo path string true "Document number"
// @Success      204
// @Router       /sales-invoices/{documentNo} [delete]
func (h *SalesInvoiceHandler) Delete(c *gin.Context) {
	if err := h.invoices.Delete(c.Request.Context(), c.Param("documentNo")); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Issue godoc
// @Summary      Issue a draft sales invoice
// @Tags         sales-invoices
// @Produce      json
// @Param        documentNo path string true "Document number"
// @Success      200 {object} dto.Response
// @Router       /sales-invoices/{documentNo}/issue [post]
func (h *SalesInvoiceHandler) Issue(c *gin.Context) {
	invoice, err := h.invoices.Issue(c.Request.Context(), c.Param("documentNo"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}

// Void godoc
// @Summary      Void an issued sales invoice
// @Tags         sales-invoices
// @Produce      json
// @Param        documentNo path string true "Document number"
// @Success      200 {object} dto.Response
// @Router       /sales-invoices/{documentNo}/void [post]
func (h *SalesInvoiceHandler) Void(c *gin.Context) {
	invoice, err := h.invoices.Void(c.Request.Context(), c.Param("documentNo"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}

// Cancel godoc
// @Summary      Cancel a draft sales invoice
// @Tags         sales-invoices
// @Produce      json
// @Param        documentNo path string true "Document number"
// @Success      200 {object} dto.Response
// @Router       /sales-invoices/{documentNo}/cancel [post]
func (h *SalesInvoiceHandler) Cancel(c *gin.Context) {
	invoice, err := h.invoices.Cancel(c.Request.Context(), c.Param("documentNo"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}

// RecordPayment godoc
// @Summary      Record a payment against an issued sales invoice
// @Tags         sales-invoices
// @Accept       json
// @Produce      json
// @Param        documentNo path string true "Document number"
// @Param        request body documentapp.RecordPaymentRequest true "Payment request"
// @Success      200 {object} dto.Response
// @Router       /sales-invoices/{documentNo}/payments [post]
func (h *SalesInvoiceHandler) RecordPayment(c *gin.Context) {
	var req documentapp.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	invoice, err := h.invoices.RecordPayment(c.Request.Context(), c.Param("documentNo"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}
