package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	masterdataapp "github.com/retailops/erp-backend/internal/application/masterdata"
	"github.com/retailops/erp-backend/internal/interfaces/http/middleware"
)

// CustomerHandler handles customer API endpoints
type CustomerHandler struct {
	BaseHandler
	customers *masterdataapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customers *masterdataapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// RegisterRoutes registers customer routes on the given group
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	customers.POST("", h.Create)
	customers.GET("", h.List)
	customers.GET("/:id", h.GetByID)
	customers.PUT("/:id", h.Update)
	customers.POST("/:id/deactivate", h.Deactivate)
}

// Create godoc
// @Summary      Create a new customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body masterdataapp.CreateCustomerRequest true "Customer creation request"
// @Success      201 {object} dto.Response
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req masterdataapp.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	customer, err := h.customers.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, customer)
}

// GetByID godoc
// @Summary      Get customer by ID
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} dto.Response
// @Router       /customers/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	customer, err := h.customers.Get(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, customer)
}

// List godoc
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Param        search query string false "Search term (code or name)"
// @Param        active query bool false "Filter by active flag"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response
// @Router       /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.customers.List(c.Request.Context(), q.toFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update godoc
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Param        request body masterdataapp.UpdateCustomerRequest true "Customer update request"
// @Success      200 {object} dto.Response
// @Router       /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	var req masterdataapp.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	customer, err := h.customers.Update(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, customer)
}

// Deactivate godoc
// @Summary      Deactivate a customer
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} dto.Response
// @Router       /customers/{id}/deactivate [post]
func (h *CustomerHandler) Deactivate(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	customer, err := h.customers.Deactivate(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, customer)
}

// CustomerGroupHandler handles customer group API endpoints
type CustomerGroupHandler struct {
	BaseHandler
	groups *masterdataapp.CustomerGroupService
}

// NewCustomerGroupHandler creates a new CustomerGroupHandler
func NewCustomerGroupHandler(groups *masterdataapp.CustomerGroupService) *CustomerGroupHandler {
	return &CustomerGroupHandler{groups: groups}
}

// RegisterRoutes registers customer group routes on the given group
func (h *CustomerGroupHandler) RegisterRoutes(rg *gin.RouterGroup) {
	groups := rg.Group("/customer-groups")
	groups.POST("", h.Create)
	groups.GET("", h.List)
	groups.GET("/:id", h.GetByID)
	groups.PUT("/:id", h.Update)
}

// Create godoc
// @Summary      Create a new customer group
// @Tags         customer-groups
// @Accept       json
// @Produce      json
// @Param        request body masterdataapp.CreateCustomerGroupRequest true "Customer group creation request"
// @Success      201 {object} dto.Response
// @Router       /customer-groups [post]
func (h *CustomerGroupHandler) Create(c *gin.Context) {
	var req masterdataapp.CreateCustomerGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	group, err := h.groups.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, group)
}

// GetByID godoc
// @Summary      Get customer group by ID
// @Tags         customer-groups
// @Produce      json
// @Param        id path string true "Customer group ID" format(uuid)
// @Success      200 {object} dto.Response
// @Router       /customer-groups/{id} [get]
func (h *CustomerGroupHandler) GetByID(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer group ID format")
		return
	}

	group, err := h.groups.Get(c.Request.Context(), groupID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, group)
}

// List godoc
// @Summary      List customer groups
// @Tags         customer-groups
// @Produce      json
// @Param        search query string false "Search term (code or name)"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response
// @Router       /customer-groups [get]
func (h *CustomerGroupHandler) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.groups.List(c.Request.Context(), q.toFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update godoc
// @Summary      Update a customer group
// @Tags         customer-groups
// @Accept       json
// @Produce      json
// @Param        id path string true "Customer group ID" format(uuid)
// @Param        request body masterdataapp.UpdateCustomerGroupRequest true "Customer group update request"
// @Success      200 {object} dto.Response
// @Router       /customer-groups/{id} [put]
func (h *CustomerGroupHandler) Update(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer group ID format")
		return
	}

	var req masterdataapp.UpdateCustomerGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	group, err := h.groups.Update(c.Request.Context(), groupID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, group)
}
