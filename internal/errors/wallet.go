package errors

import "net/http"

var (
	ErrAlreadyInWallet = &DomainError{
		Code:    "ALREADY_IN_WALLET",
		Message: "business is already in the wallet",
		Status:  http.StatusConflict,
	}
	ErrNotInWallet = &DomainError{
		Code:    "NOT_IN_WALLET",
		Message: "business is not in the wallet",
		Status:  http.StatusNotFound,
	}
)
