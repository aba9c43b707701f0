package dto

import "time"

// CreateOrderRequest is the public order-form submission. The attachment
// travels as base64 text in file_data.
type CreateOrderRequest struct {
	ServiceType      string  `json:"service_type"`
	Name             *string `json:"name"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	Quantity         *int    `json:"quantity"`
	TotalAmount      float64 `json:"total_amount"`
	Notes            *string `json:"notes"`
	DeliveryAddress  *string `json:"delivery_address"`
	DueDate          *string `json:"due_date"`
	PaymentMethod    *string `json:"payment_method"`
	PaymentStatus    *string `json:"payment_status"`
	PaymentReference *string `json:"payment_reference"`
	FileData         *string `json:"file_data"`
	FileName         *string `json:"file_name"`
	FileMime         *string `json:"file_mime"`
}

// UpdateOrderRequest is the authoritative full-replace payload.
type UpdateOrderRequest struct {
	ServiceType     string  `json:"service_type"`
	Quantity        int     `json:"quantity"`
	Notes           *string `json:"notes"`
	DeliveryAddress *string `json:"delivery_address"`
	DueDate         *string `json:"due_date"`
	TotalAmount     float64 `json:"total_amount"`
	FileURL         *string `json:"file_url"`
	FileName        *string `json:"file_name"`
	FileSize        *int64  `json:"file_size"`
	FileMime        *string `json:"file_mime"`
	Status          *string `json:"status"`
	PaymentStatus   *string `json:"payment_status"`
	PaymentMethod   *string `json:"payment_method"`
}

// CreatedOrder identifies a freshly created order.
type CreatedOrder struct {
	ID          int64  `json:"id"`
	OrderNumber string `json:"order_number"`
}

// CreateOrderResponse acknowledges order creation. Warnings report
// auxiliary steps that degraded without failing the order.
type CreateOrderResponse struct {
	Success  bool         `json:"success"`
	Order    CreatedOrder `json:"order"`
	Warnings []string     `json:"warnings,omitempty"`
}

// OrderResponse is the full order representation, optionally joined with
// customer contact fields.
type OrderResponse struct {
	ID               int64      `json:"id"`
	CustomerID       *int64     `json:"customer_id"`
	OrderNumber      string     `json:"order_number"`
	ServiceType      string     `json:"service_type"`
	Quantity         int        `json:"quantity"`
	Status           string     `json:"status"`
	TotalAmount      float64    `json:"total_amount"`
	Notes            *string    `json:"notes"`
	FileURL          *string    `json:"file_url"`
	FileName         *string    `json:"file_name"`
	FileSize         *int64     `json:"file_size"`
	FileMime         *string    `json:"file_mime"`
	DeliveryAddress  *string    `json:"delivery_address"`
	DueDate          *string    `json:"due_date"`
	PaymentMethod    string     `json:"payment_method"`
	PaymentStatus    string     `json:"payment_status"`
	PaymentReference *string    `json:"payment_reference"`
	OrderDate        time.Time  `json:"order_date"`
	CompletedDate    *time.Time `json:"completed_date"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	CustomerName     *string    `json:"customer_name,omitempty"`
	CustomerEmail    *string    `json:"customer_email,omitempty"`
	CustomerPhone    *string    `json:"customer_phone,omitempty"`
}
