package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

type salesHandler struct {
	salesService portssvc.SalesSvcFacade
}

func registerSalesRoutes(rg *gin.RouterGroup, writers gin.HandlerFunc, ss portssvc.SalesSvcFacade) {
	h := &salesHandler{salesService: ss}

	sales := rg.Group("/sales")
	{
		sales.GET("/customers", h.listCustomers)
		sales.POST("/customers", writers, h.createCustomer)
		sales.GET("/invoices", h.listInvoices)
		sales.POST("/invoices", writers, h.createInvoice)
		sales.PUT("/invoices/:id/status", writers, h.updateInvoiceStatus)
	}
}

// listCustomers godoc
// @Summary List customers
// @Tags sales
// @Produce json
// @Param search query string false "Matches name or email"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ListCustomersResponse}
// @Security BearerAuth
// @Router /sales/customers [get]
func (h *salesHandler) listCustomers(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var params dto.ListCustomersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.salesService.ListCustomers(c.Request.Context(), p.CompanyID, params)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, http.StatusOK, "", resp)
}

// createCustomer godoc
// @Summary Add a customer
// @Tags sales
// @Accept json
// @Produce json
// @Param request body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.APIResponse{data=domain.Customer}
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 403 {object} dto.APIResponse "Requires ADMIN or ACCOUNTANT"
// @Security BearerAuth
// @Router /sales/customers [post]
func (h *salesHandler) createCustomer(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	customer, err := h.salesService.CreateCustomer(c.Request.Context(), p.CompanyID, p.UserID, req)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, http.StatusCreated, "Customer created successfully", customer)
}

// listInvoices godoc
// @Summary List invoices
// @Tags sales
// @Produce json
// @Param status query string false "DRAFT, SENT, PAID, OVERDUE or CANCELLED"
// @Param customerId query string false "Customer ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ListInvoicesResponse}
// @Security BearerAuth
// @Router /sales/invoices [get]
func (h *salesHandler) listInvoices(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.salesService.ListInvoices(c.Request.Context(), p.CompanyID, params)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, http.StatusOK, "", resp)
}

// createInvoice godoc
// @Summary Create an invoice
// @Description Computes line totals, subtotal and total, and decrements the stock of invoiced products
// @Tags sales
// @Accept json
// @Produce json
// @Param request body dto.CreateInvoiceRequest true "Invoice"
// @Success 201 {object} dto.APIResponse{data=domain.Invoice}
// @Failure 400 {object} dto.APIResponse "Validation error or invoice number already exists"
// @Failure 404 {object} dto.APIResponse "Customer, product or service not found"
// @Security BearerAuth
// @Router /sales/invoices [post]
func (h *salesHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	logger.Info("Received request to create invoice", slog.String("customer_id", req.CustomerID), slog.Int("items", len(req.Items)))
	invoice, err := h.salesService.CreateInvoice(c.Request.Context(), p.CompanyID, p.UserID, req)
	if err != nil {
		respondError(c, err, "Customer not found")
		return
	}
	respondOK(c, http.StatusCreated, "Invoice created successfully", invoice)
}

// updateInvoiceStatus godoc
// @Summary Update invoice status
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body dto.UpdateInvoiceStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=domain.Invoice}
// @Failure 404 {object} dto.APIResponse "Invoice not found"
// @Security BearerAuth
// @Router /sales/invoices/{id}/status [put]
func (h *salesHandler) updateInvoiceStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	invoice, err := h.salesService.UpdateInvoiceStatus(c.Request.Context(), p.CompanyID, p.UserID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Invoice not found")
		return
	}
	respondOK(c, http.StatusOK, "Invoice status updated successfully", invoice)
}
