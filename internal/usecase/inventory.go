package usecase

import (
	"context"

	domainErrors "github.com/inkpress/printshop/internal/domain/errors"
	"github.com/inkpress/printshop/internal/domain/model"
	"github.com/inkpress/printshop/internal/domain/repository"
)

// InventoryItemInput carries the writable fields of an inventory item.
type InventoryItemInput struct {
	ItemName          string
	Category          string
	StockQuantity     int
	UnitPrice         float64
	LowStockThreshold int
	Supplier          *string
}

// InventoryUseCase manages stock tracking.
type InventoryUseCase struct {
	items repository.InventoryRepository
}

// NewInventoryUseCase constructs InventoryUseCase.
func NewInventoryUseCase(items repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{items: items}
}

// Create registers a new inventory item.
func (u *InventoryUseCase) Create(ctx context.Context, in InventoryItemInput) (int64, error) {
	if in.ItemName == "" {
		return 0, domainErrors.NewValidation("item_name is required")
	}
	return u.items.Create(ctx, &model.InventoryItem{
		ItemName:          in.ItemName,
		Category:          in.Category,
		StockQuantity:     in.StockQuantity,
		UnitPrice:         in.UnitPrice,
		LowStockThreshold: in.LowStockThreshold,
		Supplier:          in.Supplier,
	})
}

// Get returns the item by id.
func (u *InventoryUseCase) Get(ctx context.Context, id int64) (*model.InventoryItem, error) {
	return u.items.GetByID(ctx, id)
}

// List returns all items, low-stock first.
func (u *InventoryUseCase) List(ctx context.Context) ([]model.InventoryItem, error) {
	return u.items.List(ctx)
}

// Update overwrites the item's fields.
func (u *InventoryUseCase) Update(ctx context.Context, id int64, in InventoryItemInput) error {
	if in.ItemName == "" {
		return domainErrors.NewValidation("item_name is required")
	}
	return u.items.Update(ctx, id, &model.InventoryItem{
		ItemName:          in.ItemName,
		Category:          in.Category,
		StockQuantity:     in.StockQuantity,
		UnitPrice:         in.UnitPrice,
		LowStockThreshold: in.LowStockThreshold,
		Supplier:          in.Supplier,
	})
}

// Adjust applies a signed stock delta atomically at the store. Stock may go
// negative; there is intentionally no floor check here.
func (u *InventoryUseCase) Adjust(ctx context.Context, id int64, delta int) error {
	return u.items.Adjust(ctx, id, delta)
}

// Delete removes the item unconditionally.
func (u *InventoryUseCase) Delete(ctx context.Context, id int64) error {
	return u.items.Delete(ctx, id)
}
