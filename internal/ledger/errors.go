package ledger

import "errors"

// Every precondition violation maps to exactly one of these. A failed call
// leaves the ledger untouched; callers decide whether to retry with
// corrected arguments.
var (
	ErrInsufficientPayment = errors.New("payment below minimum fee")
	ErrNotFound            = errors.New("assessment not found")
	ErrUnauthorized        = errors.New("caller is not authorized")
	ErrAlreadyRequested    = errors.New("reveal already requested")
	ErrNotYetRequested     = errors.New("reveal not yet requested")
	ErrInsufficientFunds   = errors.New("withdrawal exceeds collected fees")
	ErrInvalidAmount       = errors.New("withdrawal amount must be positive")
)
