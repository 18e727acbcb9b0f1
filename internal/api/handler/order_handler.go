package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/okulikov/orderdesk/internal/api/dto"
	"github.com/okulikov/orderdesk/internal/core/domain"
	"github.com/okulikov/orderdesk/internal/core/repository"
)

type OrderHandler struct {
	orderRepo   repository.OrderRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
}

func NewOrderHandler(
	orderRepo repository.OrderRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
) *OrderHandler {
	return &OrderHandler{
		orderRepo:   orderRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
	}
}

// CreateOrder handles POST /orders. The client and every listed product must
// exist at creation time; the store itself does not enforce that, so the
// lookups happen here.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()

	client, err := h.clientRepo.FindByID(ctx, req.ClientID)
	if errors.Is(err, repository.ErrNotFound) {
		badRequest(c, fmt.Sprintf("client %d does not exist", req.ClientID))
		return
	}
	if err != nil {
		storeError(c, err)
		return
	}

	productIDs, err := domain.ParseProductIDs(req.ProductIDs)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	products := make([]domain.Product, 0, len(productIDs))
	for _, pid := range productIDs {
		product, err := h.productRepo.FindByID(ctx, pid)
		if errors.Is(err, repository.ErrNotFound) {
			badRequest(c, fmt.Sprintf("product %d does not exist", pid))
			return
		}
		if err != nil {
			storeError(c, err)
			return
		}
		products = append(products, *product)
	}

	date, err := domain.ParseOrderDate(req.Date)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	order := domain.NewOrder(req.OrderID, client, products, date, req.Status)
	if err := h.orderRepo.Create(ctx, order); err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid order id")
		return
	}

	order, err := h.orderRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// ListOrders handles GET /orders. With ?sort=date|total the list is sorted
// in memory, descending unless ?desc=false.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	ctx := c.Request.Context()

	var orders []*domain.Order
	var err error
	if sortBy := c.Query("sort"); sortBy != "" {
		descending := true
		if v, perr := strconv.ParseBool(c.Query("desc")); perr == nil {
			descending = v
		}
		orders, err = h.orderRepo.ListSorted(ctx, sortBy, descending)
	} else {
		orders, err = h.orderRepo.List(ctx)
	}
	if err != nil {
		storeError(c, err)
		return
	}

	response := dto.OrderListResponse{
		Items:      make([]dto.OrderResponse, len(orders)),
		Pagination: singlePage(len(orders)),
	}
	for i, order := range orders {
		response.Items[i] = toOrderResponse(order)
	}

	c.JSON(http.StatusOK, response)
}

// DeleteOrder handles DELETE /orders/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid order id")
		return
	}

	if err := h.orderRepo.Delete(c.Request.Context(), id); err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
