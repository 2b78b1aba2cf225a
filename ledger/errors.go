package ledger

import (
	"context"
	"errors"
	"net/http"
)

// Failure kinds surfaced by the ledger protocols. Everything else coming out
// of a protocol is an unclassified store failure and maps to a 500.
var (
	ErrInvalidArgument        = errors.New("user and target identifiers are required")
	ErrUserNotFound           = errors.New("user not found")
	ErrAchievementNotFound    = errors.New("achievement not found")
	ErrAchievementUnavailable = errors.New("achievement is not available")
	ErrAlreadyCompleted       = errors.New("achievement already completed")
	ErrItemNotFound           = errors.New("item not found")
	ErrAlreadyPurchased       = errors.New("item already purchased")
	ErrInsufficientFunds      = errors.New("not enough coins")
	ErrItemNotOwned           = errors.New("item not owned")
	ErrTimeout                = errors.New("operation timed out")
)

// StatusCode maps a ledger failure to its HTTP status.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidArgument),
		errors.Is(err, ErrAchievementUnavailable),
		errors.Is(err, ErrInsufficientFunds),
		errors.Is(err, ErrItemNotOwned):
		return http.StatusBadRequest
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrAchievementNotFound),
		errors.Is(err, ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyCompleted),
		errors.Is(err, ErrAlreadyPurchased):
		return http.StatusConflict
	case errors.Is(err, ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// txError normalizes a transaction result. Context expiry means the store
// rolled back and the caller may safely retry: the idempotency guards make
// every protocol retry-safe.
func txError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrTimeout
	}
	return err
}
