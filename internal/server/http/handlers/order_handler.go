package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saxtrade/marketplace/internal/domain/model"
	"github.com/saxtrade/marketplace/internal/server/http/dto"
	"github.com/saxtrade/marketplace/internal/server/http/middleware"
)

// OrderHandler manages checkout and order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /api/orders.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), CurrentUserID(c), req.SellerID, req.PaymentMethod, req.ShippingAddress)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewOrderResponse(*order))
}

// Get handles GET /api/orders/:id. The order is visible only to its
// buyer and its seller.
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := PathID(c)
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	userID := CurrentUserID(c)
	if order.BuyerID != userID && order.SellerID != userID {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*order))
}

// List handles GET /api/orders. Buyers see their purchases, sellers
// their sales.
func (h *OrderHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)

	var (
		orders []model.Order
		err    error
	)
	if role, _ := c.Get(middleware.RoleContextKey); role == string(model.RoleSeller) {
		orders, err = h.facade.SellerOrders(c.Request.Context(), userID)
	} else {
		orders, err = h.facade.BuyerOrders(c.Request.Context(), userID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, dto.NewOrderResponse(order))
	}
	c.JSON(http.StatusOK, response)
}

// Transition handles PATCH /api/orders/:id/status.
func (h *OrderHandler) Transition(c *gin.Context) {
	orderID, ok := PathID(c)
	if !ok {
		return
	}

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.TransitionOrder(c.Request.Context(), orderID, model.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*order))
}
