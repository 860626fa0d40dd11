package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/saxtrade/marketplace/internal/domain/model"
	"github.com/saxtrade/marketplace/internal/domain/repository"
	"github.com/saxtrade/marketplace/internal/server/http/dto"
)

// CatalogHandler manages product listing endpoints.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Create handles POST /api/products.
func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product := &model.Product{
		SellerID:    CurrentUserID(c),
		Name:        req.Name,
		Brand:       req.Brand,
		Category:    model.Category(req.Category),
		Model:       req.Model,
		Year:        req.Year,
		Condition:   req.Condition,
		Material:    req.Material,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Status:      model.ProductStatus(req.Status),
	}

	created, err := h.facade.CreateProduct(c.Request.Context(), product)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewProductResponse(*created))
}

// Get handles GET /api/products/:id.
func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(*product))
}

// List handles GET /api/products.
func (h *CatalogHandler) List(c *gin.Context) {
	filter := repository.ProductFilter{
		Category: model.Category(c.Query("category")),
		Brand:    c.Query("brand"),
		Status:   model.ProductStatus(c.Query("status")),
		Search:   c.Query("search"),
	}
	if raw := c.Query("seller_id"); raw != "" {
		sellerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		filter.SellerID = sellerID
	}

	products, err := h.facade.Products(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, dto.NewProductResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// Update handles PATCH /api/products/:id.
func (h *CatalogHandler) Update(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	var req dto.ProductPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.UpdateProduct(c.Request.Context(), id, req.Patch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(*product))
}

// Delete handles DELETE /api/products/:id.
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
