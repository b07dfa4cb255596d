package controller

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tdhoang/careerledger/internal/ledger"
)

func TestStatusFromError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ledger.ErrInsufficientPayment, http.StatusPaymentRequired},
		{ledger.ErrNotFound, http.StatusNotFound},
		{ledger.ErrUnauthorized, http.StatusForbidden},
		{ledger.ErrAlreadyRequested, http.StatusConflict},
		{ledger.ErrNotYetRequested, http.StatusConflict},
		{ledger.ErrInsufficientFunds, http.StatusUnprocessableEntity},
		{ledger.ErrInvalidAmount, http.StatusBadRequest},
		{assertAnError{}, http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, StatusFromError(c.err), "error %v", c.err)
	}

	// Wrapped ledger errors map the same as bare ones.
	wrapped := fmt.Errorf("assessment 7: %w", ledger.ErrNotYetRequested)
	assert.Equal(t, http.StatusConflict, StatusFromError(wrapped))
}

type assertAnError struct{}

func (assertAnError) Error() string { return "unclassified" }
