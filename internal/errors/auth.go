package errors

import "net/http"

var (
	ErrInvalidCredentials = &DomainError{
		Code:    "INVALID_CREDENTIALS",
		Message: "invalid credentials",
		Status:  http.StatusUnauthorized,
	}
	ErrInvalidToken = &DomainError{
		Code:    "INVALID_TOKEN",
		Message: "invalid token",
		Status:  http.StatusUnauthorized,
	}
	ErrDuplicateEmail = &DomainError{
		Code:    "DUPLICATE_EMAIL",
		Message: "email is already registered",
		Status:  http.StatusConflict,
	}
	ErrDuplicatePhone = &DomainError{
		Code:    "DUPLICATE_PHONE",
		Message: "phone number is already registered",
		Status:  http.StatusConflict,
	}
	ErrCustomerNotFound = &DomainError{
		Code:    "CUSTOMER_NOT_FOUND",
		Message: "customer not found",
		Status:  http.StatusNotFound,
	}
	ErrBusinessNotFound = &DomainError{
		Code:    "BUSINESS_NOT_FOUND",
		Message: "business not found",
		Status:  http.StatusNotFound,
	}
)
