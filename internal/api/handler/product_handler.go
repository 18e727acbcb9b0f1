package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/okulikov/orderdesk/internal/api/dto"
	"github.com/okulikov/orderdesk/internal/core/domain"
	"github.com/okulikov/orderdesk/internal/core/repository"
)

type ProductHandler struct {
	productRepo repository.ProductRepository
}

func NewProductHandler(productRepo repository.ProductRepository) *ProductHandler {
	return &ProductHandler{productRepo: productRepo}
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	product := domain.NewProduct(req.ProductID, req.Name, req.Price)
	if err := h.productRepo.Create(c.Request.Context(), product); err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(product))
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid product id")
		return
	}

	product, err := h.productRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productRepo.List(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}

	response := dto.ProductListResponse{
		Items:      make([]dto.ProductResponse, len(products)),
		Pagination: singlePage(len(products)),
	}
	for i, product := range products {
		response.Items[i] = toProductResponse(product)
	}

	c.JSON(http.StatusOK, response)
}

// DeleteProduct handles DELETE /products/:id. Orders referencing the product
// keep running with fewer line items.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid product id")
		return
	}

	if err := h.productRepo.Delete(c.Request.Context(), id); err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
