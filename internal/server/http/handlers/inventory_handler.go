package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saxtrade/marketplace/internal/server/http/dto"
)

// InventoryHandler manages seller stock endpoints.
type InventoryHandler struct {
	facade InventoryFacade
}

// NewInventoryHandler constructs InventoryHandler.
func NewInventoryHandler(facade InventoryFacade) *InventoryHandler {
	return &InventoryHandler{facade: facade}
}

// Adjust handles POST /api/inventory/adjust.
func (h *InventoryHandler) Adjust(c *gin.Context) {
	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.AdjustStock(c.Request.Context(), req.ProductID, req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(*product))
}

// Set handles POST /api/inventory/set.
func (h *InventoryHandler) Set(c *gin.Context) {
	var req dto.SetStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.SetStock(c.Request.Context(), req.ProductID, req.Stock)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(*product))
}

// Snapshot handles GET /api/inventory.
func (h *InventoryHandler) Snapshot(c *gin.Context) {
	rows, err := h.facade.InventorySnapshot(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.InventoryRowResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, dto.InventoryRowResponse{
			ProductID: row.ProductID,
			Name:      row.Name,
			Stock:     row.Stock,
			Status:    string(row.Status),
		})
	}
	c.JSON(http.StatusOK, response)
}
