package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizbooks/internal/core/ports/services"
	"github.com/SscSPs/bizbooks/internal/dto"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

type checkHandler struct {
	checkService portssvc.CheckSvcFacade
}

func registerCheckRoutes(rg *gin.RouterGroup, writers gin.HandlerFunc, cs portssvc.CheckSvcFacade) {
	h := &checkHandler{checkService: cs}

	checks := rg.Group("/checks")
	{
		checks.GET("", h.listChecks)
		checks.POST("", writers, h.createCheck)
		checks.GET("/due-soon", h.listDueSoon)
		checks.PUT("/:id/status", writers, h.updateStatus)
	}
}

// listChecks godoc
// @Summary List checks
// @Tags checks
// @Produce json
// @Param type query string false "RECEIVABLE or PAYABLE"
// @Param status query string false "PENDING, CLEARED, BOUNCED or CANCELLED"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ListChecksResponse}
// @Security BearerAuth
// @Router /checks [get]
func (h *checkHandler) listChecks(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var params dto.ListChecksParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.checkService.ListChecks(c.Request.Context(), p.CompanyID, params)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, http.StatusOK, "", resp)
}

// createCheck godoc
// @Summary Register a check
// @Description Records a receivable or payable check. New checks start PENDING.
// @Tags checks
// @Accept json
// @Produce json
// @Param request body dto.CreateCheckRequest true "Check details"
// @Success 201 {object} dto.APIResponse{data=domain.Check}
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 403 {object} dto.APIResponse "Requires ADMIN or ACCOUNTANT"
// @Security BearerAuth
// @Router /checks [post]
func (h *checkHandler) createCheck(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.CreateCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	check, err := h.checkService.CreateCheck(c.Request.Context(), p.CompanyID, p.UserID, req)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, http.StatusCreated, "Check created successfully", check)
}

// updateStatus godoc
// @Summary Update check status
// @Description Moves a PENDING check to CLEARED, BOUNCED or CANCELLED
// @Tags checks
// @Accept json
// @Produce json
// @Param id path string true "Check ID"
// @Param request body dto.UpdateCheckStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=domain.Check}
// @Failure 400 {object} dto.APIResponse "Invalid status transition"
// @Failure 404 {object} dto.APIResponse "Check not found"
// @Security BearerAuth
// @Router /checks/{id}/status [put]
func (h *checkHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.UpdateCheckStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	checkID := c.Param("id")
	logger.Info("Received request to update check status", slog.String("check_id", checkID), slog.String("status", string(req.Status)))
	check, err := h.checkService.UpdateCheckStatus(c.Request.Context(), p.CompanyID, p.UserID, checkID, req)
	if err != nil {
		respondError(c, err, "Check not found")
		return
	}
	respondOK(c, http.StatusOK, "Check status updated successfully", check)
}

// listDueSoon godoc
// @Summary Checks due soon
// @Description PENDING checks due within the next days (default 7)
// @Tags checks
// @Produce json
// @Param days query int false "Days ahead, 1 to 365" default(7)
// @Success 200 {object} dto.APIResponse{data=[]domain.Check}
// @Security BearerAuth
// @Router /checks/due-soon [get]
func (h *checkHandler) listDueSoon(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var params dto.DueSoonParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	checks, err := h.checkService.ListDueSoon(c.Request.Context(), p.CompanyID, params)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondOK(c, http.StatusOK, "", checks)
}
