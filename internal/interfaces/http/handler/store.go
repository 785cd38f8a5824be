package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	masterdataapp "github.com/retailops/erp-backend/internal/application/masterdata"
	"github.com/retailops/erp-backend/internal/interfaces/http/middleware"
)

// StoreHandler handles store API endpoints
type StoreHandler struct {
	BaseHandler
	stores *masterdataapp.StoreService
}

// NewStoreHandler creates a new StoreHandler
func NewStoreHandler(stores *masterdataapp.StoreService) *StoreHandler {
	return &StoreHandler{stores: stores}
}

// RegisterRoutes registers store routes on the given group
func (h *StoreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stores := rg.Group("/stores")
	stores.POST("", h.Create)
	stores.GET("", h.List)
	stores.GET("/:id", h.GetByID)
	stores.PUT("/:id", h.Update)
	stores.POST("/:id/deactivate", h.Deactivate)
}

// Create godoc
// @Summary      Create a new store
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        request body masterdataapp.CreateStoreRequest true "Store creation request"
// @Success      201 {object} dto.Response
// @Router       /stores [post]
func (h *StoreHandler) Create(c *gin.Context) {
	var req masterdataapp.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	store, err := h.stores.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, store)
}

// GetByID godoc
// @Summary      Get store by ID
// @Tags         stores
// @Produce      json
// @Param        id path string true "Store ID" format(uuid)
// @Success      200 {object} dto.Response
// @Router       /stores/{id} [get]
func (h *StoreHandler) GetByID(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID format")
		return
	}

	store, err := h.stores.Get(c.Request.Context(), storeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, store)
}

// List godoc
// @Summary      List stores
// @Tags         stores
// @Produce      json
// @Param        search query string false "Search term (code or name)"
// @Param        active query bool false "Filter by active flag"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response
// @Router       /stores [get]
func (h *StoreHandler) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.stores.List(c.Request.Context(), q.toFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update godoc
// @Summary      Update a store
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        id path string true "Store ID" format(uuid)
// @Param        request body masterdataapp.UpdateStoreRequest true "Store update request"
// @Success      200 {object} dto.Response
// @Router       /stores/{id} [put]
func (h *StoreHandler) Update(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID format")
		return
	}

	var req masterdataapp.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	store, err := h.stores.Update(c.Request.Context(), storeID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, store)
}

// Deactivate godoc
// @Summary      Deactivate a store
// @Tags         stores
// @Produce      json
// @Param        id path string true "Store ID" format(uuid)
// @Success      200 {object} dto.Response
// @Router       /stores/{id}/deactivate [post]
func (h *StoreHandler) Deactivate(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID format")
		return
	}

	store, err := h.stores.Deactivate(c.Request.Context(), storeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, store)
}
