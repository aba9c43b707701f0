package repository

import (
	"context"

	"github.com/inkpress/printshop/internal/domain/model"
)

// InventoryRepository describes persistence operations with inventory items.
type InventoryRepository interface {
	Create(ctx context.Context, item *model.InventoryItem) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.InventoryItem, error)
	List(ctx context.Context) ([]model.InventoryItem, error)
	Update(ctx context.Context, id int64, item *model.InventoryItem) error
	// Adjust applies stock_quantity += delta in a single statement so
	// concurrent adjustments never lose updates.
	Adjust(ctx context.Context, id int64, delta int) error
	Delete(ctx context.Context, id int64) error
}
