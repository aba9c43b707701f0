package dto

// OrderCountsResponse groups orders by lifecycle status.
type OrderCountsResponse struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
}

// InventoryTotalsResponse aggregates the inventory table.
type InventoryTotalsResponse struct {
	Total      int64 `json:"total"`
	TotalItems int64 `json:"total_items"`
	LowStock   int64 `json:"low_stock_items"`
}

// RevenueResponse sums completed-order revenue.
type RevenueResponse struct {
	TotalRevenue   float64 `json:"total_revenue"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
}

// LowStockItemResponse is one dashboard low-stock row.
type LowStockItemResponse struct {
	ItemName          string `json:"item_name"`
	StockQuantity     int    `json:"stock_quantity"`
	LowStockThreshold int    `json:"low_stock_threshold"`
}

// DashboardResponse is the admin dashboard snapshot.
type DashboardResponse struct {
	Orders    OrderCountsResponse     `json:"orders"`
	Inventory InventoryTotalsResponse `json:"inventory"`
	Customers int64                   `json:"customers"`
	Revenue   RevenueResponse         `json:"revenue"`
	LowStock  []LowStockItemResponse  `json:"low_stock"`
}

// HealthResponse reports store connectivity.
type HealthResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
