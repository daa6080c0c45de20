package validation

import (
	"fmt"
	"strings"
	"time"

	apperrors "counpaign/internal/errors"
)

// Validator collects field errors for checks that struct tags cannot express.
type Validator struct {
	Errors map[string]string
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records the first error for a field.
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; !exists {
		v.Errors[field] = message
	}
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Email validates email format
func (v *Validator) Email(field, email string) {
	v.Check(emailRegex.MatchString(email), field, "must be a valid email address")
}

// Phone validates phone number format
func (v *Validator) Phone(field, phone string) {
	v.Check(phoneRegex.MatchString(phone), field, "must be 10 digits and not start with 0")
}

// Required checks if a string is not empty
func (v *Validator) Required(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, "is required")
}

// Range checks if an int lies within [lo, hi].
func (v *Validator) Range(field string, value, lo, hi int) {
	v.Check(value >= lo && value <= hi, field, fmt.Sprintf("must be between %d and %d", lo, hi))
}

// OneOf checks if value is one of the allowed values.
func (v *Validator) OneOf(field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.AddError(field, "must be one of "+strings.Join(allowed, ", "))
}

// After checks that t is strictly after ref.
func (v *Validator) After(field string, t, ref time.Time, refName string) {
	v.Check(t.After(ref), field, "must be after "+refName)
}

// Err returns nil when valid, otherwise a validation DomainError.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return apperrors.ValidationFields(v.Errors)
}
