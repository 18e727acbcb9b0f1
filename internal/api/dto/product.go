package dto

// CreateProductRequest represents the product creation request.
// Price is gated here, not by the store: negative prices never reach it.
type CreateProductRequest struct {
	ProductID int64   `json:"product_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"gte=0"`
}

// ProductResponse represents a product
type ProductResponse struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// ProductListResponse represents a list of products
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Pagination PaginationInfo    `json:"pagination"`
}
