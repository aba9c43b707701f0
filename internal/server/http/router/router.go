package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/inkpress/printshop/internal/config"
	"github.com/inkpress/printshop/internal/server/http/handlers"
	"github.com/inkpress/printshop/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PrintShopFacade, pinger handlers.Pinger, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	dev := !cfg.IsProduction()

	contactHandler := handlers.NewContactHandler(facade, dev)
	orderHandler := handlers.NewOrderHandler(facade, dev)
	customerHandler := handlers.NewCustomerHandler(facade, dev)
	inventoryHandler := handlers.NewInventoryHandler(facade, dev)
	systemHandler := handlers.NewSystemHandler(facade, pinger, dev)

	api := engine.Group("/api")

	api.POST("/contact", contactHandler.Submit)
	api.GET("/messages", contactHandler.List)
	api.PATCH("/messages/:id", contactHandler.SetStatus)

	api.POST("/orders", orderHandler.Create)
	api.GET("/orders", orderHandler.List)
	api.GET("/orders/:id", orderHandler.Get)
	api.PATCH("/orders/:id", orderHandler.Update)
	api.DELETE("/orders/:id", orderHandler.Delete)

	api.POST("/customers", customerHandler.Create)
	api.GET("/customers", customerHandler.List)
	api.GET("/customers/:id", customerHandler.Get)
	api.GET("/customers/:id/orders", customerHandler.Orders)
	api.PATCH("/customers/:id", customerHandler.Update)
	api.DELETE("/customers/:id", customerHandler.Delete)

	api.POST("/inventory", inventoryHandler.Create)
	api.GET("/inventory", inventoryHandler.List)
	api.GET("/inventory/:id", inventoryHandler.Get)
	api.PATCH("/inventory/:id", inventoryHandler.Update)
	api.PATCH("/inventory/:id/adjust", inventoryHandler.Adjust)
	api.DELETE("/inventory/:id", inventoryHandler.Delete)

	api.GET("/dashboard/stats", systemHandler.Dashboard)
	api.GET("/db-check", systemHandler.DBCheck)

	return engine
}
