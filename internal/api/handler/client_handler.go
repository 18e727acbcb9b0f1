package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/okulikov/orderdesk/internal/api/dto"
	"github.com/okulikov/orderdesk/internal/core/domain"
	"github.com/okulikov/orderdesk/internal/core/repository"
)

type ClientHandler struct {
	clientRepo repository.ClientRepository
}

func NewClientHandler(clientRepo repository.ClientRepository) *ClientHandler {
	return &ClientHandler{clientRepo: clientRepo}
}

// CreateClient handles POST /clients
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	// Contact validation is this layer's job, the store accepts anything
	if !domain.ValidEmail(req.Email) {
		badRequest(c, "invalid email: "+req.Email)
		return
	}
	if !domain.ValidPhone(req.Phone) {
		badRequest(c, "invalid phone: "+req.Phone)
		return
	}

	client := domain.NewClient(req.ClientID, req.Name, req.Email, req.Phone)
	if err := h.clientRepo.Create(c.Request.Context(), client); err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toClientResponse(client))
}

// GetClient handles GET /clients/:id
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid client id")
		return
	}

	client, err := h.clientRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toClientResponse(client))
}

// ListClients handles GET /clients
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clientRepo.List(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}

	response := dto.ClientListResponse{
		Items:      make([]dto.ClientResponse, len(clients)),
		Pagination: singlePage(len(clients)),
	}
	for i, client := range clients {
		response.Items[i] = toClientResponse(client)
	}

	c.JSON(http.StatusOK, response)
}

// DeleteClient handles DELETE /clients/:id and cascades to the client's orders
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid client id")
		return
	}

	if err := h.clientRepo.Delete(c.Request.Context(), id); err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
