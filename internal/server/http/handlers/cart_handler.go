package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saxtrade/marketplace/internal/server/http/dto"
)

// CartHandler manages the buyer's cart endpoints.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Add handles POST /api/cart.
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if _, err := h.facade.AddToCart(c.Request.Context(), CurrentUserID(c), req.ProductID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// List handles GET /api/cart.
func (h *CartHandler) List(c *gin.Context) {
	lines, err := h.facade.Cart(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.CartLineResponse, 0, len(lines))
	for _, line := range lines {
		response = append(response, dto.NewCartLineResponse(line))
	}
	c.JSON(http.StatusOK, response)
}

// Remove handles DELETE /api/cart/:id.
func (h *CartHandler) Remove(c *gin.Context) {
	itemID, ok := PathID(c)
	if !ok {
		return
	}
	if err := h.facade.RemoveFromCart(c.Request.Context(), CurrentUserID(c), itemID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.facade.ClearCart(c.Request.Context(), CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
