// Package errors defines the domain error taxonomy shared by services and
// handlers. Every failure a client can act on is a *DomainError carrying an
// HTTP status; anything else is treated as internal.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Error codes used across the API.
const (
	CodeValidation   = "VALIDATION_FAILED"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_ERROR"
)

// DomainError is an error with a stable code and the HTTP status it maps to.
type DomainError struct {
	Code    string            `json:"code"`
	Message string            `json:"error"`
	Status  int               `json:"-"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches domain errors by code so wrapped copies still compare equal to
// their sentinel.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Validation returns a 400 error with the given message.
func Validation(message string) *DomainError {
	return &DomainError{Code: CodeValidation, Message: message, Status: http.StatusBadRequest}
}

// ValidationFields returns a 400 error listing the offending fields.
func ValidationFields(fields map[string]string) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: "validation failed",
		Status:  http.StatusBadRequest,
		Fields:  fields,
	}
}

// NotFound returns a 404 error for the named resource.
func NotFound(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
	}
}

var (
	ErrUnauthorized = &DomainError{
		Code:    CodeUnauthorized,
		Message: "unauthorized",
		Status:  http.StatusUnauthorized,
	}
	ErrForbidden = &DomainError{
		Code:    CodeForbidden,
		Message: "insufficient permissions",
		Status:  http.StatusForbidden,
	}
	ErrInternal = &DomainError{
		Code:    CodeInternal,
		Message: "internal server error",
		Status:  http.StatusInternalServerError,
	}
)

// As extracts a *DomainError from err.
func As(err error) (*DomainError, bool) {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// StatusOf returns the HTTP status for err, 500 when err is not a domain error.
func StatusOf(err error) int {
	if de, ok := As(err); ok && de.Status != 0 {
		return de.Status
	}
	return http.StatusInternalServerError
}
