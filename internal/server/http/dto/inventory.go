package dto

import "time"

// InventoryItemRequest is the admin create/update payload.
type InventoryItemRequest struct {
	ItemName          string  `json:"item_name"`
	Category          string  `json:"category"`
	StockQuantity     int     `json:"stock_quantity"`
	UnitPrice         float64 `json:"unit_price"`
	LowStockThreshold int     `json:"low_stock_threshold"`
	Supplier          *string `json:"supplier"`
}

// AdjustStockRequest carries a signed stock delta.
type AdjustStockRequest struct {
	Adjustment int `json:"adjustment"`
}

// InventoryItemResponse includes the derived low_stock flag.
type InventoryItemResponse struct {
	ID                int64      `json:"id"`
	ItemName          string     `json:"item_name"`
	Category          string     `json:"category"`
	StockQuantity     int        `json:"stock_quantity"`
	UnitPrice         float64    `json:"unit_price"`
	LowStockThreshold int        `json:"low_stock_threshold"`
	Supplier          *string    `json:"supplier"`
	LastRestocked     *time.Time `json:"last_restocked"`
	UpdatedAt         time.Time  `json:"updated_at"`
	LowStock          bool       `json:"low_stock"`
}

// CreatedResponse acknowledges creation of a row with its id.
type CreatedResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}
