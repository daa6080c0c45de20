package validation

import (
	"testing"
	"time"

	apperrors "counpaign/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Gender      string `json:"gender" validate:"omitempty,oneof=male female other"`
}

func TestStruct(t *testing.T) {
	valid := signup{Name: "Ayşe", PhoneNumber: "5321234567", Email: "ayse@example.com", Password: "secret1"}

	tests := []struct {
		name   string
		mutate func(*signup)
		fields map[string]string
	}{
		{"valid", func(*signup) {}, nil},
		{"missing name", func(s *signup) { s.Name = "" }, map[string]string{"name": "is required"}},
		{"phone starting with zero", func(s *signup) { s.PhoneNumber = "0532123456" }, map[string]string{"phoneNumber": "must be 10 digits and not start with 0"}},
		{"short phone", func(s *signup) { s.PhoneNumber = "532123" }, map[string]string{"phoneNumber": "must be 10 digits and not start with 0"}},
		{"bad email", func(s *signup) { s.Email = "nope" }, map[string]string{"email": "must be a valid email address"}},
		{"short password", func(s *signup) { s.Password = "12345" }, map[string]string{"password": "must be at least 6 characters long"}},
		{"unknown gender", func(s *signup) { s.Gender = "x" }, map[string]string{"gender": "must be one of male, female, other"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			err := Struct(in)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}

			de, ok := apperrors.As(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.CodeValidation, de.Code)
			assert.Equal(t, tt.fields, de.Fields)
		})
	}
}

func TestValidator(t *testing.T) {
	now := time.Now()

	v := New()
	v.Range("rating", 6, 1, 5)
	v.OneOf("rewardType", "coins", "points", "stamp")
	v.After("endDate", now, now, "startDate")
	v.Required("title", "  ")

	assert.False(t, v.Valid())
	assert.Equal(t, "must be between 1 and 5", v.Errors["rating"])
	assert.Equal(t, "must be one of points, stamp", v.Errors["rewardType"])
	assert.Equal(t, "must be after startDate", v.Errors["endDate"])
	assert.Equal(t, "is required", v.Errors["title"])
	assert.Error(t, v.Err())

	assert.NoError(t, New().Err())
}
