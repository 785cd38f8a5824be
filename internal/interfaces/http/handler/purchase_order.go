package handler

import (
	"github.com/gin-gonic/gin"

	documentapp "github.com/retailops/erp-backend/internal/application/document"
	"github.com/retailops/erp-backend/internal/interfaces/http/middleware"
)

// PurchaseOrderHandler handles purchase order API endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	orders *documentapp.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler
func NewPurchaseOrderHandler(orders *documentapp.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{orders: orders}
}

// RegisterRoutes registers purchase order routes on the given group
func (h *PurchaseOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/purchase-orders")
	orders.POST("", h.Create)
	orders.GET("", h.List)
	orders.GET("/:documentNo", h.GetByDocumentNo)
	orders.PUT("/:documentNo", h.Update)
	orders.DELETE("/:documentNo", h.Delete)
	orders.POST("/:documentNo/submit", h.Submit)
	orders.POST("/:documentNo/approve", h.Approve)
	orders.POST("/:documentNo/send", h.Send)
	orders.POST("/:documentNo/cancel", h.Cancel)
	orders.POST("/:documentNo/close", h.Close)
}

// Create godoc
// @Summary      Create a new purchase order
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        request body documentapp.CreatePurchaseOrderRequest true "Purchase order creation request"
// @Success      201 {object} dto.Response
// @Router       /purchase-orders [post]
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var req documentapp.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	order, err := h.orders.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// GetByDocumentNo godoc
// @Summary      Get purchase order by document number
// @Tags         purchase-orders
// @Produce      json
// @Param        documentNo path string true "Document number"
// @Success      200 {object} dto.Response
// @Router       /purchase-orders/{documentNo} [get]
func (h *PurchaseOrderHandler) GetByDocumentNo(c *gin.Context) {
	order, err := h.orders.Get(c.Request.Context(), c.Param("documentNo"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// List godoc
// @Summary      List purchase orders
// @Tags         purchase-orders
// @Produce      json
// @Param        store_code query string false "Store code"
// @Param        supplier_id query string false "Supplier ID" format(uuid)
// @Param        status query string false "Document status"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response
// @Router       /purchase-orders [get]
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	var filter documentapp.PurchaseOrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.orders.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update godoc
// @Summary      Update a draft purchase order
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        documentNo path string true "Document number"
// @Param        request body documentapp.UpdatePurchaseOrderRequest true "Purchase order update request"
// @Success      200 {object} dto.Response
// @Router       /purchase-orders/{documentNo} [put]
func (h *PurchaseOrderHandler) Update(c *gin.Context) {
	var req documentapp.UpdatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	order, err := h.orders.Update(c.Request.Context(), c.Param("documentNo"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Delete godoc
// @Summary      Delete a draft or cancelled purchase order
// @Tags         purchase-orders
// @Param        documentNo path string true "Document number"
// @Success      204
// @Router       /purchase-orders/{documentNo} [delete]
func (h *PurchaseOrderHandler) Delete(c *gin.Context) {
	if err := h.orders.Delete(c.Request.Context(), c.Param("documentNo")); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Submit godoc
// @Summary      Submit a purchase order for approval
// @Tags         purchase-orders
// @Produce      json
// @Param        documentNo path string true "Document number"
// @Success      200 {object} dto.Response
// @Router       /purchase-orders/{documentNo}/submit [post]
func (h *PurchaseOrderHandler) Submit(c *gin.Context) {
	order, err := h.orders.Submit(c.Request.Context(), c.Param("documentNo"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Approve godoc
// @Summary      Approve a submitted purchase order
// @Tags         purchase-orders
// @Produce      json
// @Param        documentNo path string true "Document number"
// @Success      200 {object} dto.Response
// @Router       /purchase-orders/{documentNo}/approve [post]
func (h *PurchaseOrderHandler) Approve(c *gin.Context) {
	order, err := h.orders.Approve(c.Request.Context(), c.Param("documentNo"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Send godoc
// @Summary      Mark an approved purchase order as sent to the supplier
// @Tags         purchase-orders
// @Produce      json
// @Param        documentNo path string true "Document number"
// @Success      200 {object} dto.Response
// @Router       /purchase-orders/{documentNo}/send [post]
func (h *PurchaseOrderHandler) Send(c *gin.Context) {
	order, err := h.orders.Send(c.Request.Context(), c.Param("documentNo"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Cancel godoc
// @Summary      Cancel a purchase order
// @Tags         purchase-orders
// @Produce      json
// @Param        documentNo path string true "Document number"
// @Success      200 {object} dto.Response
// @Router       /purchase-orders/{documentNo}/cancel [post]
func (h *PurchaseOrderHandler) Cancel(c *gin.Context) {
	order, err := h.orders.Cancel(c.Request.Context(), c.Param("documentNo"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Close godoc
// @Summary      Close a purchase order
// @Tags         purchase-orders
// @Produce      json
// @Param        documentNo path string true "Document number"
// @Success      200 {object} dto.Response
// @Router       /purchase-orders/{documentNo}/close [post]
func (h *PurchaseOrderHandler) Close(c *gin.Context) {
	order, err := h.orders.Close(c.Request.Context(), c.Param("documentNo"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}
