package handler

import (
	"github.com/gin-gonic/gin"

	documentapp "github.com/retailops/erp-backend/internal/application/document"
	"github.com/retailops/erp-backend/internal/interfaces/http/middleware"
)

// GoodsReceiptHandler handles goods receipt note API endpoints
type GoodsReceiptHandler struct {
	BaseHandler
	receipts *documentapp.GoodsReceiptService
}

// NewGoodsReceiptHandler creates a new GoodsReceiptHandler
func NewGoodsReceiptHandler(receipts *documentapp.GoodsReceiptService) *GoodsReceiptHandler {
	return &GoodsReceiptHandler{receipts: receipts}
}

// RegisterRoutes registers goods receipt routes on the given group
func (h *GoodsReceiptHandler) RegisterRoutes(rg *gin.RouterGroup) {
	receipts := rg.Group("/goods-receipts")
	receipts.POST("", h.Create)
	receipts.GET("", h.List)
	receipts.GET("/:documentNo", h.GetByDocumentNo)
	receipts.PUT("/:documentNo", h.Update)
	receipts.DELETE("/:documentNo", h.Delete)
	receipts.POST("/:documentNo/post", h.Post)
	receipts.POST("/:documentNo/cancel", h.Cancel)
}

// Create godoc
// @Summary      Create a goods receipt note against a purchase order
// @Tags         goods-receipts
// @Accept       json
// @Produce      json
// @Param        request body documentapp.CreateGoodsReceiptRequest true "Goods receipt creation request"
// @Success      201 {object} dto.Response
// @Router       /goods-receipts [post]
func (h *GoodsReceiptHandler) Create(c *gin.Context) {
	var req documentapp.CreateGoodsReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	receipt, err := h.receipts.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, receipt)
}

// GetByDocumentNo godoc
// @Summary      Get goods receipt by document number
// @Tags         goods-receipts
// @Produce      json
// @Param        documentNo path string true "Document number"
// @Success      200 {object} dto.Response
// @Router       /goods-receipts/{documentNo} [get]
func (h *GoodsReceiptHandler) GetByDocumentNo(c *gin.Context) {
	receipt, err := h.receipts.Get(c.Request.Context(), c.Param("documentNo"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, receipt)
}

// List godoc
// @Summary      List goods receipts
// @Tags         goods-receipts
// @Produce      json
// @Param        store_code query string false "Store code"
// @Param        purchase_order_id query string false "Purchase order document number"
// @Param        status query string false "Document status"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response
// @Router       /goods-receipts [get]
func (h *GoodsReceiptHandler) List(c *gin.Context) {
	var filter documentapp.GoodsReceiptListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.receipts.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update godoc
// @Summary      Update a draft goods receipt
// @Tags         goods-receipts
// @Accept       json
// @Produce      json
// @Param        documentNo path string true "Document number"
// @Param        request body documentapp.UpdateGoodsReceiptRequest true "Goods receipt update request"
// @Success      200 {object} dto.Response
// @Router       /goods-receipts/{documentNo} [put]
func (h *GoodsReceiptHandler) Update(c *gin.Context) {
	var req documentapp.UpdateGoodsReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	receipt, err := h.receipts.Update(c.Request.Context(), c.Param("documentNo"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, receipt)
}

// Delete godoc
// @Summary      Delete a draft or cancelled goods receipt
// @Tags         goods-receipts
// @Param        documentNo path string true "Document number"
// @Success      204
// @Router       /goods-receipts/{documentNo} [delete]
func (h *GoodsReceiptHandler) Delete(c *gin.Context) {
	if err := h.receipts.Delete(c.Request.Context(), c.Param("documentNo")); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Post godoc
// @Summary      Post a goods receipt, applying received quantities to its purchase order
// @Tags         goods-receipts
// @Produce      json
// @Param        documentNo path string true "Document number"
// @Success      200 {object} dto.Response
// @Router       /goods-receipts/{documentNo}/post [post]
func (h *GoodsReceiptHandler) Post(c *gin.Context) {
	receipt, err := h.receipts.Post(c.Request.Context(), c.Param("documentNo"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, receipt)
}

// Cancel godoc
// @Summary      Cancel a draft goods receipt
// @Tags         goods-receipts
// @Produce      json
// @Param        documentNo path string true "Document number"
// @Success      200 {object} dto.Response
// @Router       /goods-receipts/{documentNo}/cancel [post]
func (h *GoodsReceiptHandler) Cancel(c *gin.Context) {
	receipt, err := h.receipts.Cancel(c.Request.Context(), c.Param("documentNo"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, receipt)
}
