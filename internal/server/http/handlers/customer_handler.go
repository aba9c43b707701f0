package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkpress/printshop/internal/domain/model"
	"github.com/inkpress/printshop/internal/server/http/dto"
)

// CustomerHandler manages admin customer endpoints.
type CustomerHandler struct {
	facade CustomerFacade
	dev    bool
}

// NewCustomerHandler constructs CustomerHandler.
func NewCustomerHandler(facade CustomerFacade, dev bool) *CustomerHandler {
	return &CustomerHandler{facade: facade, dev: dev}
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}
	customer, err := h.facade.CreateCustomer(c.Request.Context(), req.Name, req.Email, req.Phone, req.Company)
	if err != nil {
		respondError(c, err, "Failed to create customer", h.dev)
		return
	}
	c.JSON(http.StatusOK, dto.CreatedResponse{Success: true, ID: customer.ID})
}

// Get handles GET /api/customers/:id.
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	customer, err := h.facade.Customer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Customer not found", h.dev)
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(*customer))
}

// List handles GET /api/customers.
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.facade.Customers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch customers", h.dev)
		return
	}
	response := make([]dto.CustomerListItem, 0, len(customers))
	for _, cust := range customers {
		response = append(response, dto.CustomerListItem{
			CustomerResponse: toCustomerResponse(cust.Customer),
			OrderCount:       cust.OrderCount,
			TotalSpent:       cust.TotalSpent,
		})
	}
	c.JSON(http.StatusOK, response)
}

// Orders handles GET /api/customers/:id/orders.
func (h *CustomerHandler) Orders(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	detail, err := h.facade.CustomerOrders(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Customer not found", h.dev)
		return
	}
	orders := make([]dto.OrderResponse, 0, len(detail.Orders))
	for _, o := range detail.Orders {
		orders = append(orders, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, dto.CustomerDetailResponse{
		Customer: toCustomerResponse(*detail.Customer),
		Orders:   orders,
		Stats: dto.CustomerStatsResponse{
			CompletedOrders:   detail.Stats.CompletedOrders,
			TotalSpent:        detail.Stats.TotalSpent,
			AverageOrderValue: detail.Stats.AverageOrderValue,
		},
	})
}

// Update handles PATCH /api/customers/:id.
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if err := h.facade.UpdateCustomer(c.Request.Context(), id, req.Name, req.Email, req.Phone, req.Company); err != nil {
		respondError(c, err, "Failed to update customer", h.dev)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Delete handles DELETE /api/customers/:id. Orders cascade.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteCustomer(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete customer", h.dev)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func toCustomerResponse(c model.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
