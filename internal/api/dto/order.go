package dto

import "time"

// CreateOrderRequest represents the order creation request. ProductIDs is a
// comma-separated list of product identifiers; Date accepts DD-MM-YYYY or
// YYYY-MM-DD and defaults to now; Status defaults to "New".
type CreateOrderRequest struct {
	OrderID    int64  `json:"order_id" binding:"required"`
	ClientID   int64  `json:"client_id" binding:"required"`
	ProductIDs string `json:"product_ids" binding:"required"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// OrderResponse represents an order with its derived total
type OrderResponse struct {
	OrderID    int64             `json:"order_id"`
	Client     *ClientResponse   `json:"client,omitempty"`
	Products   []ProductResponse `json:"products"`
	Date       time.Time         `json:"date"`
	Status     string            `json:"status"`
	TotalPrice float64           `json:"total_price"`
}

// OrderListResponse represents a list of orders
type OrderListResponse struct {
	Items      []OrderResponse `json:"items"`
	Pagination PaginationInfo  `json:"pagination"`
}
