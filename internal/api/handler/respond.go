package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/okulikov/orderdesk/internal/api/dto"
	"github.com/okulikov/orderdesk/internal/core/domain"
	"github.com/okulikov/orderdesk/internal/core/repository"
)

// storeError translates repository errors into HTTP responses: absent rows
// are 404, duplicate IDs 409, anything else 500.
func storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "Not Found",
			Message: err.Error(),
			Code:    http.StatusNotFound,
		})
	case errors.Is(err, repository.ErrDuplicateID):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:   "Conflict",
			Message: err.Error(),
			Code:    http.StatusConflict,
		})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Bad Request",
		Message: message,
		Code:    http.StatusBadRequest,
	})
}

func toClientResponse(client *domain.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ClientID: client.ID,
		Name:     client.Name,
		Email:    client.Email,
		Phone:    client.Phone,
	}
}

func toProductResponse(product *domain.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
	}
}

func toOrderResponse(order *domain.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		OrderID:    order.ID,
		Date:       order.Date,
		Status:     order.Status,
		TotalPrice: order.TotalPrice(),
		Products:   make([]dto.ProductResponse, len(order.Products)),
	}
	if order.Client != nil {
		client := toClientResponse(order.Client)
		resp.Client = &client
	}
	for i := range order.Products {
		resp.Products[i] = toProductResponse(&order.Products[i])
	}
	return resp
}

func singlePage(total int) dto.PaginationInfo {
	return dto.PaginationInfo{
		Total:      total,
		Page:       1,
		PerPage:    total,
		TotalPages: 1,
	}
}
