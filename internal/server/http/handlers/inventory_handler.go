package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkpress/printshop/internal/domain/model"
	"github.com/inkpress/printshop/internal/server/http/dto"
	"github.com/inkpress/printshop/internal/usecase"
)

// InventoryHandler manages stock endpoints.
type InventoryHandler struct {
	facade InventoryFacade
	dev    bool
}

// NewInventoryHandler constructs InventoryHandler.
func NewInventoryHandler(facade InventoryFacade, dev bool) *InventoryHandler {
	return &InventoryHandler{facade: facade, dev: dev}
}

// Create handles POST /api/inventory.
func (h *InventoryHandler) Create(c *gin.Context) {
	var req dto.InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}
	id, err := h.facade.CreateInventoryItem(c.Request.Context(), toItemInput(req))
	if err != nil {
		respondError(c, err, "Failed to create item", h.dev)
		return
	}
	c.JSON(http.StatusOK, dto.CreatedResponse{Success: true, ID: id})
}

// Get handles GET /api/inventory/:id.
func (h *InventoryHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.facade.InventoryItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Item not found", h.dev)
		return
	}
	c.JSON(http.StatusOK, toItemResponse(*item))
}

// List handles GET /api/inventory.
func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.facade.Inventory(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch inventory", h.dev)
		return
	}
	response := make([]dto.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toItemResponse(item))
	}
	c.JSON(http.StatusOK, response)
}

// Update handles PATCH /api/inventory/:id.
func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if err := h.facade.UpdateInventoryItem(c.Request.Context(), id, toItemInput(req)); err != nil {
		respondError(c, err, "Failed to update item", h.dev)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Adjust handles PATCH /api/inventory/:id/adjust.
func (h *InventoryHandler) Adjust(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if err := h.facade.AdjustStock(c.Request.Context(), id, req.Adjustment); err != nil {
		respondError(c, err, "Failed to adjust inventory", h.dev)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Delete handles DELETE /api/inventory/:id.
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteInventoryItem(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete item", h.dev)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func toItemInput(req dto.InventoryItemRequest) usecase.InventoryItemInput {
	return usecase.InventoryItemInput{
		ItemName:          req.ItemName,
		Category:          req.Category,
		StockQuantity:     req.StockQuantity,
		UnitPrice:         req.UnitPrice,
		LowStockThreshold: req.LowStockThreshold,
		Supplier:          req.Supplier,
	}
}

func toItemResponse(item model.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:                item.ID,
		ItemName:          item.ItemName,
		Category:          item.Category,
		StockQuantity:     item.StockQuantity,
		UnitPrice:         item.UnitPrice,
		LowStockThreshold: item.LowStockThreshold,
		Supplier:          item.Supplier,
		LastRestocked:     item.LastRestocked,
		UpdatedAt:         item.UpdatedAt,
		LowStock:          item.LowStock(),
	}
}
