package handlers

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkpress/printshop/internal/domain/model"
	"github.com/inkpress/printshop/internal/server/http/dto"
	"github.com/inkpress/printshop/internal/usecase"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
	dev    bool
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, dev bool) *OrderHandler {
	return &OrderHandler{facade: facade, dev: dev}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "due_date must be formatted as YYYY-MM-DD"})
		return
	}

	var file *usecase.FileUpload
	if req.FileData != nil && req.FileName != nil && *req.FileName != "" {
		data, err := base64.StdEncoding.DecodeString(*req.FileData)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "file_data must be base64 encoded"})
			return
		}
		file = &usecase.FileUpload{Data: data, Name: *req.FileName, Mime: req.FileMime}
	}

	result, err := h.facade.CreateOrder(c.Request.Context(), usecase.CreateOrderInput{
		ServiceType:      req.ServiceType,
		Contact:          model.ContactInfo{Name: req.Name, Email: req.Email, Phone: req.Phone},
		Quantity:         req.Quantity,
		TotalAmount:      req.TotalAmount,
		Notes:            req.Notes,
		DeliveryAddress:  req.DeliveryAddress,
		DueDate:          dueDate,
		PaymentMethod:    req.PaymentMethod,
		PaymentStatus:    req.PaymentStatus,
		PaymentReference: req.PaymentReference,
		File:             file,
	})
	if err != nil {
		respondError(c, err, "Failed to create order", h.dev)
		return
	}

	c.JSON(http.StatusOK, dto.CreateOrderResponse{
		Success:  true,
		Order:    dto.CreatedOrder{ID: result.OrderID, OrderNumber: result.OrderNumber},
		Warnings: result.Warnings,
	})
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Order not found", h.dev)
		return
	}
	c.JSON(http.StatusOK, toOrderWithCustomerResponse(*order))
}

// List handles GET /api/orders. An email query parameter narrows the list
// to one customer's orders for the dashboard.
func (h *OrderHandler) List(c *gin.Context) {
	if email := c.Query("email"); email != "" {
		orders, err := h.facade.OrdersByEmail(c.Request.Context(), email)
		if err != nil {
			respondError(c, err, "Failed to fetch orders", h.dev)
			return
		}
		response := make([]dto.OrderResponse, 0, len(orders))
		for _, o := range orders {
			response = append(response, toOrderResponse(o))
		}
		c.JSON(http.StatusOK, response)
		return
	}

	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch orders", h.dev)
		return
	}
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderWithCustomerResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Update handles PATCH /api/orders/:id. A payload that is exactly {status}
// performs the narrow status transition; any other shape is an
// authoritative full replace. The shape sniffing lives only here, for wire
// compatibility.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if raw, only := fields["status"]; only && len(fields) == 1 {
		var status string
		if err := json.Unmarshal(raw, &status); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "status must be a string"})
			return
		}
		if err := h.facade.SetOrderStatus(c.Request.Context(), id, model.OrderStatus(status)); err != nil {
			respondError(c, err, "Failed to update order", h.dev)
			return
		}
		c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
		return
	}

	var req dto.UpdateOrderRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "due_date must be formatted as YYYY-MM-DD"})
		return
	}

	err = h.facade.ReplaceOrder(c.Request.Context(), id, usecase.ReplaceOrderInput{
		ServiceType:     req.ServiceType,
		Quantity:        req.Quantity,
		Notes:           req.Notes,
		DeliveryAddress: req.DeliveryAddress,
		DueDate:         dueDate,
		TotalAmount:     req.TotalAmount,
		FileURL:         req.FileURL,
		FileName:        req.FileName,
		FileSize:        req.FileSize,
		FileMime:        req.FileMime,
		Status:          req.Status,
		PaymentStatus:   req.PaymentStatus,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		respondError(c, err, "Failed to update order", h.dev)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete order", h.dev)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func toOrderResponse(o model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:               o.ID,
		CustomerID:       o.CustomerID,
		OrderNumber:      o.OrderNumber,
		ServiceType:      o.ServiceType,
		Quantity:         o.Quantity,
		Status:           string(o.Status),
		TotalAmount:      o.TotalAmount,
		Notes:            o.Notes,
		FileURL:          o.FileURL,
		FileName:         o.FileName,
		FileSize:         o.FileSize,
		FileMime:         o.FileMime,
		DeliveryAddress:  o.DeliveryAddress,
		DueDate:          formatDueDate(o.DueDate),
		PaymentMethod:    string(o.PaymentMethod),
		PaymentStatus:    string(o.PaymentStatus),
		PaymentReference: o.PaymentReference,
		OrderDate:        o.OrderDate,
		CompletedDate:    o.CompletedDate,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func toOrderWithCustomerResponse(o model.OrderWithCustomer) dto.OrderResponse {
	resp := toOrderResponse(o.Order)
	resp.CustomerName = o.CustomerName
	resp.CustomerEmail = o.CustomerEmail
	resp.CustomerPhone = o.CustomerPhone
	return resp
}
