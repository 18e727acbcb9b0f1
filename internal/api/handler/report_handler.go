package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/okulikov/orderdesk/internal/core/repository"
	"github.com/okulikov/orderdesk/internal/core/service"
)

const defaultTopN = 5

type ReportHandler struct {
	reportService *service.ReportService
	orderRepo     repository.OrderRepository
	clientRepo    repository.ClientRepository
}

func NewReportHandler(
	reportService *service.ReportService,
	orderRepo repository.OrderRepository,
	clientRepo repository.ClientRepository,
) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		orderRepo:     orderRepo,
		clientRepo:    clientRepo,
	}
}

// TopClients handles GET /reports/top-clients?top=N
func (h *ReportHandler) TopClients(c *gin.Context) {
	n := defaultTopN
	if v := c.Query("top"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			badRequest(c, "top must be a positive integer")
			return
		}
		n = parsed
	}

	orders, err := h.orderRepo.List(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.reportService.TopClients(orders, n))
}

// OrdersByDate handles GET /reports/orders-by-date
func (h *ReportHandler) OrdersByDate(c *gin.Context) {
	orders, err := h.orderRepo.List(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.reportService.OrdersByDate(orders))
}

// ClientGraph handles GET /reports/client-graph. Every stored client is a
// node, so clients with no orders show up isolated.
func (h *ReportHandler) ClientGraph(c *gin.Context) {
	ctx := c.Request.Context()

	clients, err := h.clientRepo.List(ctx)
	if err != nil {
		storeError(c, err)
		return
	}
	orders, err := h.orderRepo.List(ctx)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.reportService.BuildClientGraph(clients, orders))
}
