package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/okulikov/orderdesk/internal/api/handler"
	"github.com/okulikov/orderdesk/internal/api/middleware"
	"github.com/okulikov/orderdesk/internal/core/repository"
	"github.com/okulikov/orderdesk/internal/core/service"
	"github.com/okulikov/orderdesk/pkg/config"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
}

// NewServer creates a new API server
func NewServer(
	cfg *config.Config,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	reportService *service.ReportService,
	transferService *service.TransferService,
) *Server {
	if os.Getenv("ORDERDESK_DEV_MODE") != "1" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.ErrorHandlerMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// Initialize handlers
	clientHandler := handler.NewClientHandler(clientRepo)
	productHandler := handler.NewProductHandler(productRepo)
	orderHandler := handler.NewOrderHandler(orderRepo, clientRepo, productRepo)
	reportHandler := handler.NewReportHandler(reportService, orderRepo, clientRepo)
	transferHandler := handler.NewTransferHandler(transferService)

	// Clients
	clients := router.Group("/clients")
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}

	// Products
	products := router.Group("/products")
	{
		products.POST("", productHandler.CreateProduct)
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)
	}

	// Orders
	orders := router.Group("/orders")
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
	}

	// Reports
	reports := router.Group("/reports")
	{
		reports.GET("/top-clients", reportHandler.TopClients)
		reports.GET("/orders-by-date", reportHandler.OrdersByDate)
		reports.GET("/client-graph", reportHandler.ClientGraph)
	}

	// Bulk interchange
	transfer := router.Group("/transfer")
	{
		transfer.POST("/clients/export", transferHandler.ExportClients)
		transfer.POST("/clients/import", transferHandler.ImportClients)
		transfer.POST("/products/export", transferHandler.ExportProducts)
		transfer.POST("/products/import", transferHandler.ImportProducts)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return &Server{
		router: router,
		config: cfg,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.APIHost, s.config.APIPort)

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	fmt.Printf("Starting HTTP server on %s\n", addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
