package dto

// CreateClientRequest represents the client creation request
type CreateClientRequest struct {
	ClientID int64  `json:"client_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

// ClientResponse represents a client
type ClientResponse struct {
	ClientID int64  `json:"client_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// ClientListResponse represents a list of clients
type ClientListResponse struct {
	Items      []ClientResponse `json:"items"`
	Pagination PaginationInfo   `json:"pagination"`
}
