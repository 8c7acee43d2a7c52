package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/gin-gonic/gin"
)

type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

func registerPayrollRoutes(rg *gin.RouterGroup, writers gin.HandlerFunc, ps portssvc.PayrollSvcFacade) {
	h := &payrollHandler{payrollService: ps}

	payroll := rg.Group("/payroll")
	{
		payroll.GET("/employees", h.listEmployees)
		payroll.POST("/employees", writers, h.createEmployee)
		payroll.GET("/records", h.listPayrolls)
		payroll.POST("/records", writers, h.createPayroll)
		payroll.PUT("/records/:id/status", writers, h.updatePayrollStatus)
	}
}

// listEmployees godoc
// @Summary List employees
// @Tags payroll
// @Produce json
// @Param search query string false "Matches name, code or email"
// @Param department query string false "Department"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ListEmployeesResponse}
// @Security BearerAuth
// @Router /payroll/employees [get]
func (h *payrollHandler) listEmployees(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var params dto.ListEmployeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.payrollService.ListEmployees(c.Request.Context(), p.CompanyID, params)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, http.StatusOK, "", resp)
}

// createEmployee godoc
// @Summary Add an employee
// @Tags payroll
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.APIResponse{data=domain.Employee}
// @Failure 400 {object} dto.APIResponse "Validation error or employee code already exists"
// @Failure 403 {object} dto.APIResponse "Requires ADMIN or ACCOUNTANT"
// @Security BearerAuth
// @Router /payroll/employees [post]
func (h *payrollHandler) createEmployee(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	employee, err := h.payrollService.CreateEmployee(c.Request.Context(), p.CompanyID, p.UserID, req)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, http.StatusCreated, "Employee created successfully", employee)
}

// listPayrolls godoc
// @Summary List payroll records
// @Tags payroll
// @Produce json
// @Param period query string false "Payroll period, e.g. 2026-03"
// @Param employeeId query string false "Employee ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ListPayrollsResponse}
// @Security BearerAuth
// @Router /payroll/records [get]
func (h *payrollHandler) listPayrolls(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var params dto.ListPayrollsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.payrollService.ListPayrolls(c.Request.Context(), p.CompanyID, params)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, http.StatusOK, "", resp)
}

// createPayroll godoc
// @Summary Create a payroll record
// @Description Gross pay sums the earning items, net pay subtracts the deduction items
// @Tags payroll
// @Accept json
// @Produce json
// @Param request body dto.CreatePayrollRequest true "Payroll record"
// @Success 201 {object} dto.APIResponse{data=domain.PayrollRecord}
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Employee not found"
// @Security BearerAuth
// @Router /payroll/records [post]
func (h *payrollHandler) createPayroll(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.CreatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	record, err := h.payrollService.CreatePayroll(c.Request.Context(), p.CompanyID, p.UserID, req)
	if err != nil {
		respondError(c, err, "Employee not found")
		return
	}
	respondOK(c, http.StatusCreated, "Payroll record created successfully", record)
}

// updatePayrollStatus godoc
// @Summary Update payroll status
// @Tags payroll
// @Accept json
// @Produce json
// @Param id path string true "Payroll record ID"
// @Param request body dto.UpdatePayrollStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=domain.PayrollRecord}
// @Failure 404 {object} dto.APIResponse "Payroll record not found"
// @Security BearerAuth
// @Router /payroll/records/{id}/status [put]
func (h *payrollHandler) updatePayrollStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.UpdatePayrollStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	record, err := h.payrollService.UpdatePayrollStatus(c.Request.Context(), p.CompanyID, p.UserID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Payroll record not found")
		return
	}
	respondOK(c, http.StatusOK, "Payroll status updated successfully", record)
}
