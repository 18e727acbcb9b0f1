package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/okulikov/orderdesk/internal/api/dto"
	"github.com/okulikov/orderdesk/internal/core/service"
)

type TransferHandler struct {
	transferService *service.TransferService
}

func NewTransferHandler(transferService *service.TransferService) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

// ExportClients handles POST /transfer/clients/export
func (h *TransferHandler) ExportClients(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	if err := h.transferService.ExportClientsCSV(c.Request.Context(), req.Path); err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ExportResponse{Path: req.Path})
}

// ImportClients handles POST /transfer/clients/import
func (h *TransferHandler) ImportClients(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	result, err := h.transferService.ImportClientsCSV(c.Request.Context(), req.Path)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.ImportResponse{Imported: result.Imported, Skipped: result.Skipped})
}

// ExportProducts handles POST /transfer/products/export
func (h *TransferHandler) ExportProducts(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	if err := h.transferService.ExportProductsJSON(c.Request.Context(), req.Path); err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ExportResponse{Path: req.Path})
}

// ImportProducts handles POST /transfer/products/import
func (h *TransferHandler) ImportProducts(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	result, err := h.transferService.ImportProductsJSON(c.Request.Context(), req.Path)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.ImportResponse{Imported: result.Imported, Skipped: result.Skipped})
}
