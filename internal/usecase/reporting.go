package usecase

import (
	"context"
	"sync"

	"github.com/inkpress/printshop/internal/domain/model"
	"github.com/inkpress/printshop/internal/domain/repository"
)

// lowStockDisplayLimit caps the dashboard low-stock list.
const lowStockDisplayLimit = 5

// ReportingUseCase computes dashboard and per-customer statistics.
type ReportingUseCase struct {
	stats repository.StatsRepository
}

// NewReportingUseCase constructs ReportingUseCase.
func NewReportingUseCase(stats repository.StatsRepository) *ReportingUseCase {
	return &ReportingUseCase{stats: stats}
}

// Dashboard gathers the five dashboard figures. The reads run concurrently
// and independently, without a transactional envelope, so the snapshot may
// be momentarily inconsistent across figures.
func (u *ReportingUseCase) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	var (
		stats model.DashboardStats
		wg    sync.WaitGroup
		errs  [5]error
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		stats.Orders, errs[0] = u.stats.OrderCounts(ctx)
	}()
	go func() {
		defer wg.Done()
		stats.Inventory, errs[1] = u.stats.InventoryTotals(ctx)
	}()
	go func() {
		defer wg.Done()
		stats.Customers, errs[2] = u.stats.CustomerCount(ctx)
	}()
	go func() {
		defer wg.Done()
		stats.Revenue, errs[3] = u.stats.RevenueTotals(ctx)
	}()
	go func() {
		defer wg.Done()
		stats.LowStock, errs[4] = u.stats.LowStockItems(ctx, lowStockDisplayLimit)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &stats, nil
}

// CustomerStats aggregates a customer's completed orders.
func (u *ReportingUseCase) CustomerStats(ctx context.Context, customerID int64) (model.CustomerStats, error) {
	return u.stats.CustomerStats(ctx, customerID)
}
