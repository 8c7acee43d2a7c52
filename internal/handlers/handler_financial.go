package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

// financialHandler handles accounts, categories and ledger postings.
type financialHandler struct {
	accountService  portssvc.AccountSvcFacade
	categoryService portssvc.CategorySvcFacade
	ledgerService   portssvc.LedgerSvcFacade
}

func registerFinancialRoutes(rg *gin.RouterGroup, writers gin.HandlerFunc, as portssvc.AccountSvcFacade, cs portssvc.CategorySvcFacade, ls portssvc.LedgerSvcFacade) {
	h := &financialHandler{accountService: as, categoryService: cs, ledgerService: ls}

	financial := rg.Group("/financial")
	{
		financial.GET("/transactions", h.listTransactions)
		financial.POST("/transactions", writers, h.createTransaction)
		financial.GET("/accounts", h.listAccounts)
		financial.POST("/accounts", writers, h.createAccount)
		financial.GET("/accounts/:id", h.getAccount)
		financial.GET("/categories", h.listCategories)
		financial.POST("/categories", writers, h.createCategory)
		financial.GET("/summary", h.getSummary)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the company's postings, newest first
// @Tags financial
// @Produce json
// @Param type query string false "INCOME, EXPENSE or TRANSFER"
// @Param categoryId query string false "Category ID"
// @Param accountId query string false "Account ID"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD, inclusive"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ListTransactionsResponse}
// @Failure 400 {object} dto.APIResponse "Invalid query parameters"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Security BearerAuth
// @Router /financial/transactions [get]
func (h *financialHandler) listTransactions(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.ledgerService.ListTransactions(c.Request.Context(), p.CompanyID, params)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, http.StatusOK, "", resp)
}

// createTransaction godoc
// @Summary Record a transaction
// @Description INCOME adds to the account, EXPENSE subtracts, TRANSFER moves between two accounts. The balance update and the insert are atomic.
// @Tags financial
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Posting"
// @Success 201 {object} dto.APIResponse{data=domain.Transaction}
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 403 {object} dto.APIResponse "Requires ADMIN or ACCOUNTANT"
// @Failure 404 {object} dto.APIResponse "Account or category not found"
// @Security BearerAuth
// @Router /financial/transactions [post]
func (h *financialHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	logger.Info("Received request to record transaction", slog.String("account_id", req.AccountID), slog.String("type", string(req.Type)))
	txn, err := h.ledgerService.RecordTransaction(c.Request.Context(), p.CompanyID, p.UserID, req)
	if err != nil {
		respondError(c, err, "Account not found")
		return
	}
	respondOK(c, http.StatusCreated, "Transaction created successfully", txn)
}

// listAccounts godoc
// @Summary List accounts
// @Tags financial
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]domain.Account}
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Security BearerAuth
// @Router /financial/accounts [get]
func (h *financialHandler) listAccounts(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), p.CompanyID)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, http.StatusOK, "", accounts)
}

// createAccount godoc
// @Summary Create an account
// @Tags financial
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.APIResponse{data=domain.Account}
// @Failure 400 {object} dto.APIResponse "Validation error or account already exists"
// @Failure 403 {object} dto.APIResponse "Requires ADMIN or ACCOUNTANT"
// @Security BearerAuth
// @Router /financial/accounts [post]
func (h *financialHandler) createAccount(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), p.CompanyID, p.UserID, req)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, http.StatusCreated, "Account created successfully", account)
}

// getAccount godoc
// @Summary Get an account
// @Tags financial
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} dto.APIResponse{data=domain.Account}
// @Failure 404 {object} dto.APIResponse "Account not found"
// @Security BearerAuth
// @Router /financial/accounts/{id} [get]
func (h *financialHandler) getAccount(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), p.CompanyID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Account not found")
		return
	}
	respondOK(c, http.StatusOK, "", account)
}

// listCategories godoc
// @Summary List categories
// @Tags financial
// @Produce json
// @Param type query string false "INCOME or EXPENSE"
// @Success 200 {object} dto.APIResponse{data=[]domain.Category}
// @Security BearerAuth
// @Router /financial/categories [get]
func (h *financialHandler) listCategories(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var params dto.ListCategoriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), p.CompanyID, params)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, http.StatusOK, "", categories)
}

// createCategory godoc
// @Summary Create a category
// @Tags financial
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.APIResponse{data=domain.Category}
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Parent category not found"
// @Security BearerAuth
// @Router /financial/categories [post]
func (h *financialHandler) createCategory(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), p.CompanyID, p.UserID, req)
	if err != nil {
		respondError(c, err, "Parent category not found")
		return
	}
	respondOK(c, http.StatusCreated, "Category created successfully", category)
}

// getSummary godoc
// @Summary Financial summary
// @Description Income, expenses and net income over an optional date range, plus the current total balance
// @Tags financial
// @Produce json
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD, inclusive"
// @Success 200 {object} dto.APIResponse{data=domain.FinancialSummary}
// @Security BearerAuth
// @Router /financial/summary [get]
func (h *financialHandler) getSummary(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	summary, err := h.ledgerService.GetSummary(c.Request.Context(), p.CompanyID, params)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, http.StatusOK, "", summary)
}
