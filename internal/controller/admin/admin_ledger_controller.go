package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/tdhoang/careerledger/internal/auth"
	"github.com/tdhoang/careerledger/internal/controller"
	"github.com/tdhoang/careerledger/internal/dto"
	"github.com/tdhoang/careerledger/internal/service"
)

type AdminLedgerController struct {
	adminService service.AdminService
}

func NewAdminLedgerController(as service.AdminService) *AdminLedgerController {
	return &AdminLedgerController{adminService: as}
}

// Withdraw godoc
// @Summary (Owner) Withdraw collected submission fees
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.WithdrawRequest true "Amount in micro-units"
// @Success 200 {object} dto.WithdrawResponse
// @Failure 400 {object} dto.ErrorResponse "Amount is not positive"
// @Failure 403 {object} dto.ErrorResponse "Caller is not the owner"
// @Failure 422 {object} dto.ErrorResponse "Amount exceeds balance"
// @Router /admin/withdraw [post]
func (c *AdminLedgerController) Withdraw(ctx *gin.Context) {
	caller, ok := auth.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing caller identity"})
		return
	}

	var req dto.WithdrawRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.adminService.Withdraw(caller, req.AmountMicros)
	if err != nil {
		log.Warn().Err(err).Str("caller", caller).Msg("Withdraw rejected")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Stats godoc
// @Summary (Owner) Ledger totals and undrawn fee balance
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.OwnerStatsResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/stats [get]
func (c *AdminLedgerController) Stats(ctx *gin.Context) {
	caller, ok := auth.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing caller identity"})
		return
	}
	resp, err := c.adminService.Stats(caller)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Events godoc
// @Summary (Owner) Recent journaled ledger events
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max events to return (default 100)"
// @Success 200 {array} dto.LedgerEventDTO
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/events [get]
func (c *AdminLedgerController) Events(ctx *gin.Context) {
	caller, ok := auth.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing caller identity"})
		return
	}

	limit := 100
	if limitStr := ctx.Query("limit"); limitStr != "" {
		val, err := strconv.Atoi(limitStr)
		if err != nil || val < 1 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid limit"})
			return
		}
		limit = val
	}

	events, err := c.adminService.RecentEvents(caller, limit)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, events)
}
