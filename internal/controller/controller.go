package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tdhoang/careerledger/internal/dto"
	"github.com/tdhoang/careerledger/internal/ledger"
)

// StatusFromError maps ledger error kinds onto HTTP statuses. Anything the
// ledger does not classify is a 500.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, ledger.ErrInsufficientPayment):
		return http.StatusPaymentRequired
	case errors.Is(err, ledger.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, ledger.ErrAlreadyRequested):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrNotYetRequested):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ledger.ErrInvalidAmount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes the mapped status with the error text as message.
func RespondError(ctx *gin.Context, err error) {
	ctx.JSON(StatusFromError(err), dto.ErrorResponse{Message: err.Error()})
}
