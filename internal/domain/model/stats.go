package model

// OrderCounts aggregates orders by lifecycle status.
type OrderCounts struct {
	Total      int64
	Pending    int64
	InProgress int64
	Completed  int64
}

// InventoryTotals aggregates the inventory table.
type InventoryTotals struct {
	Items      int64
	StockUnits int64
	LowStock   int64
}

// RevenueTotals sums completed-order revenue, overall and trailing 30 days.
type RevenueTotals struct {
	Total      float64
	Last30Days float64
}

// LowStockItem is a dashboard row for an item at or below threshold.
type LowStockItem struct {
	ItemName          string
	StockQuantity     int
	LowStockThreshold int
}

// DashboardStats is the admin dashboard snapshot. The five figures are
// read independently without a transactional envelope, so they may be
// momentarily inconsistent with each other.
type DashboardStats struct {
	Orders    OrderCounts
	Inventory InventoryTotals
	Customers int64
	Revenue   RevenueTotals
	LowStock  []LowStockItem
}

// CustomerStats aggregates a single customer's completed orders.
type CustomerStats struct {
	CompletedOrders   int64
	TotalSpent        float64
	AverageOrderValue float64
}
