package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saxtrade/marketplace/internal/domain/model"
	"github.com/saxtrade/marketplace/internal/server/http/dto"
)

// FinanceHandler exposes the seller's aggregate reads.
type FinanceHandler struct {
	facade FinanceFacade
}

// NewFinanceHandler constructs FinanceHandler.
func NewFinanceHandler(facade FinanceFacade) *FinanceHandler {
	return &FinanceHandler{facade: facade}
}

// Summary handles GET /api/finance/summary.
func (h *FinanceHandler) Summary(c *gin.Context) {
	summary, err := h.facade.FinanceSummary(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewFinanceSummaryResponse(*summary))
}

// Sales handles GET /api/finance/sales.
func (h *FinanceHandler) Sales(c *gin.Context) {
	dim := model.SalesDimension(c.Query("dimension"))

	buckets, err := h.facade.SalesByDimension(c.Request.Context(), CurrentUserID(c), dim)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.SalesBucketResponse, 0, len(buckets))
	for _, bucket := range buckets {
		response = append(response, dto.SalesBucketResponse{
			Key:      bucket.Key,
			Revenue:  bucket.Revenue,
			Quantity: bucket.Quantity,
			Orders:   bucket.Orders,
		})
	}
	c.JSON(http.StatusOK, response)
}
