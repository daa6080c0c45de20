package errors

import "net/http"

var (
	ErrNoGiftsAvailable = &DomainError{
		Code:    "NO_GIFTS_AVAILABLE",
		Message: "no gifts available to redeem",
		Status:  http.StatusBadRequest,
	}
	ErrInvalidTransactionType = &DomainError{
		Code:    "INVALID_TRANSACTION_TYPE",
		Message: "invalid transaction type",
		Status:  http.StatusBadRequest,
	}
	ErrTransactionNotFound = &DomainError{
		Code:    "TRANSACTION_NOT_FOUND",
		Message: "transaction not found",
		Status:  http.StatusNotFound,
	}
	ErrTerminalNotFound = &DomainError{
		Code:    "TERMINAL_NOT_FOUND",
		Message: "terminal not found",
		Status:  http.StatusNotFound,
	}
	ErrTerminalInactive = &DomainError{
		Code:    "TERMINAL_INACTIVE",
		Message: "terminal is not active",
		Status:  http.StatusForbidden,
	}
	ErrDuplicateTerminal = &DomainError{
		Code:    "DUPLICATE_TERMINAL",
		Message: "terminal id is already in use",
		Status:  http.StatusConflict,
	}
	ErrAlreadyReviewed = &DomainError{
		Code:    "ALREADY_REVIEWED",
		Message: "transaction has already been reviewed",
		Status:  http.StatusConflict,
	}
)
