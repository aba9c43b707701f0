package dto

import "time"

// CustomerRequest is the admin create/update payload.
type CustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
}

// CustomerResponse is a bare customer record.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      *string   `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Company   *string   `json:"company"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerListItem augments a customer with derived order totals.
type CustomerListItem struct {
	CustomerResponse
	OrderCount int64   `json:"order_count"`
	TotalSpent float64 `json:"total_spent"`
}

// CustomerStatsResponse aggregates completed orders for one customer.
type CustomerStatsResponse struct {
	CompletedOrders   int64   `json:"completed_orders"`
	TotalSpent        float64 `json:"total_spent"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// CustomerDetailResponse is the admin customer view with order history.
type CustomerDetailResponse struct {
	Customer CustomerResponse      `json:"customer"`
	Orders   []OrderResponse       `json:"orders"`
	Stats    CustomerStatsResponse `json:"stats"`
}
