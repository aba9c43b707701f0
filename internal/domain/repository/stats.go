package repository

import (
	"context"

	"github.com/inkpress/printshop/internal/domain/model"
)

// StatsRepository exposes the read-only aggregate queries behind dashboards.
type StatsRepository interface {
	OrderCounts(ctx context.Context) (model.OrderCounts, error)
	InventoryTotals(ctx context.Context) (model.InventoryTotals, error)
	CustomerCount(ctx context.Context) (int64, error)
	RevenueTotals(ctx context.Context) (model.RevenueTotals, error)
	LowStockItems(ctx context.Context, limit int) ([]model.LowStockItem, error)
	CustomerStats(ctx context.Context, customerID int64) (model.CustomerStats, error)
}
