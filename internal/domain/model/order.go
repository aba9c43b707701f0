package model

import "time"

// OrderStatus describes order fulfilment lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in-progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus describes the state of payment collection for an order.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// PaymentMethod describes how the customer pays.
type PaymentMethod string

const (
	PaymentMethodOnDelivery PaymentMethod = "pay_on_delivery"
	PaymentMethodPaystack   PaymentMethod = "paystack"
)

// ServiceTypes lists the print services the shop offers.
var ServiceTypes = []string{"secretarial", "funeral", "magazine", "receipt", "poster", "exam"}

// Order describes a print-service job tracked through its lifecycle.
// TotalAmount is persisted as submitted by the client; the server never
// recomputes pricing.
type Order struct {
	ID               int64
	CustomerID       *int64
	OrderNumber      string
	ServiceType      string
	Quantity         int
	Status           OrderStatus
	TotalAmount      float64
	Notes            *string
	FileURL          *string
	FileName         *string
	FileSize         *int64
	FileMime         *string
	DeliveryAddress  *string
	DueDate          *time.Time
	PaymentMethod    PaymentMethod
	PaymentStatus    PaymentStatus
	PaymentReference *string
	OrderDate        time.Time
	CompletedDate    *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OrderWithCustomer is an order joined with its customer's contact fields.
type OrderWithCustomer struct {
	Order
	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string
}
