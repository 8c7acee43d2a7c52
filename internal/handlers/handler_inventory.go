package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/gin-gonic/gin"
)

type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func registerInventoryRoutes(rg *gin.RouterGroup, writers gin.HandlerFunc, is portssvc.InventorySvcFacade) {
	h := &inventoryHandler{inventoryService: is}

	inventory := rg.Group("/inventory")
	{
		inventory.GET("/products", h.listProducts)
		inventory.POST("/products", writers, h.createProduct)
		inventory.PUT("/products/:id/stock", writers, h.adjustStock)
		inventory.GET("/services", h.listServices)
		inventory.POST("/services", writers, h.createService)
		inventory.GET("/alerts/low-stock", h.lowStock)
		inventory.GET("/summary", h.summary)
	}
}

// listProducts godoc
// @Summary List products
// @Tags inventory
// @Produce json
// @Param search query string false "Matches name, SKU or description"
// @Param lowStock query bool false "Only products at or below their threshold"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ListProductsResponse}
// @Security BearerAuth
// @Router /inventory/products [get]
func (h *inventoryHandler) listProducts(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var params dto.ListProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.inventoryService.ListProducts(c.Request.Context(), p.CompanyID, params)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, http.StatusOK, "", resp)
}

// createProduct godoc
// @Summary Add a product
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.APIResponse{data=domain.Product}
// @Failure 400 {object} dto.APIResponse "Validation error or SKU already exists"
// @Failure 403 {object} dto.APIResponse "Requires ADMIN or ACCOUNTANT"
// @Security BearerAuth
// @Router /inventory/products [post]
func (h *inventoryHandler) createProduct(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := h.inventoryService.CreateProduct(c.Request.Context(), p.CompanyID, p.UserID, req)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, http.StatusCreated, "Product created successfully", product)
}

// adjustStock godoc
// @Summary Adjust stock
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body dto.AdjustStockRequest true "Quantity and operation"
// @Success 200 {object} dto.APIResponse{data=domain.Product}
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Product not found"
// @Security BearerAuth
// @Router /inventory/products/{id}/stock [put]
func (h *inventoryHandler) adjustStock(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := h.inventoryService.AdjustStock(c.Request.Context(), p.CompanyID, p.UserID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Product not found")
		return
	}
	respondOK(c, http.StatusOK, "Stock updated successfully", product)
}

// listServices godoc
// @Summary List services
// @Tags inventory
// @Produce json
// @Param search query string false "Matches name or description"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ListServicesResponse}
// @Security BearerAuth
// @Router /inventory/services [get]
func (h *inventoryHandler) listServices(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var params dto.ListServicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.inventoryService.ListServices(c.Request.Context(), p.CompanyID, params)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, http.StatusOK, "", resp)
}

// createService godoc
// @Summary Add a service
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Service details"
// @Success 201 {object} dto.APIResponse{data=domain.Service}
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Security BearerAuth
// @Router /inventory/services [post]
func (h *inventoryHandler) createService(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	service, err := h.inventoryService.CreateService(c.Request.Context(), p.CompanyID, p.UserID, req)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, http.StatusCreated, "Service created successfully", service)
}

// lowStock godoc
// @Summary Low stock alert
// @Description Active products at or below their low stock threshold, lowest stock first
// @Tags inventory
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]domain.Product}
// @Security BearerAuth
// @Router /inventory/alerts/low-stock [get]
func (h *inventoryHandler) lowStock(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	products, err := h.inventoryService.ListLowStock(c.Request.Context(), p.CompanyID)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, http.StatusOK, "", products)
}

// summary godoc
// @Summary Inventory summary
// @Tags inventory
// @Produce json
// @Success 200 {object} dto.APIResponse{data=domain.InventorySummary}
// @Security BearerAuth
// @Router /inventory/summary [get]
func (h *inventoryHandler) summary(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	summary, err := h.inventoryService.GetSummary(c.Request.Context(), p.CompanyID)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, http.StatusOK, "", summary)
}
