package model

import "time"

// InventoryItem is a consumable tracked by the shop (paper, ink, cards).
type InventoryItem struct {
	ID                int64
	ItemName          string
	Category          string
	StockQuantity     int
	UnitPrice         float64
	LowStockThreshold int
	Supplier          *string
	LastRestocked     *time.Time
	UpdatedAt         time.Time
}

// LowStock reports whether the item is at or below its threshold.
// The flag is always derived, never stored.
func (i InventoryItem) LowStock() bool {
	return i.StockQuantity <= i.LowStockThreshold
}
