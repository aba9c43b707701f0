package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkpress/printshop/internal/domain/model"
	"github.com/inkpress/printshop/internal/server/http/dto"
)

// SystemHandler serves the dashboard aggregate and the store health check.
type SystemHandler struct {
	facade ReportingFacade
	pinger Pinger
	dev    bool
}

// NewSystemHandler constructs SystemHandler.
func NewSystemHandler(facade ReportingFacade, pinger Pinger, dev bool) *SystemHandler {
	return &SystemHandler{facade: facade, pinger: pinger, dev: dev}
}

// Dashboard handles GET /api/dashboard/stats.
func (h *SystemHandler) Dashboard(c *gin.Context) {
	stats, err := h.facade.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch dashboard stats", h.dev)
		return
	}
	c.JSON(http.StatusOK, toDashboardResponse(stats))
}

// DBCheck handles GET /api/db-check.
func (h *SystemHandler) DBCheck(c *gin.Context) {
	if h.pinger == nil {
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{OK: false, Error: "no database configured"})
		return
	}
	if err := h.pinger.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, dto.HealthResponse{OK: false, Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{OK: true})
}

func toDashboardResponse(stats *model.DashboardStats) dto.DashboardResponse {
	lowStock := make([]dto.LowStockItemResponse, 0, len(stats.LowStock))
	for _, item := range stats.LowStock {
		lowStock = append(lowStock, dto.LowStockItemResponse{
			ItemName:          item.ItemName,
			StockQuantity:     item.StockQuantity,
			LowStockThreshold: item.LowStockThreshold,
		})
	}
	return dto.DashboardResponse{
		Orders: dto.OrderCountsResponse{
			Total:      stats.Orders.Total,
			Pending:    stats.Orders.Pending,
			InProgress: stats.Orders.InProgress,
			Completed:  stats.Orders.Completed,
		},
		Inventory: dto.InventoryTotalsResponse{
			Total:      stats.Inventory.Items,
			TotalItems: stats.Inventory.StockUnits,
			LowStock:   stats.Inventory.LowStock,
		},
		Customers: stats.Customers,
		Revenue: dto.RevenueResponse{
			TotalRevenue:   stats.Revenue.Total,
			MonthlyRevenue: stats.Revenue.Last30Days,
		},
		LowStock: lowStock,
	}
}
