package auth

import (
	"time"

	"counpaign/internal/models"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name        string `json:"name" validate:"required"`
	Surname     string `json:"surname" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

type BusinessLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TerminalLoginRequest struct {
	TerminalID string `json:"terminalId" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// Result is returned by every login and by register.
type Result struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// CustomerSummary is the public view of a customer returned with a token.
type CustomerSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Role        string    `json:"role"`
}

func summarizeCustomer(c *models.Customer) CustomerSummary {
	return CustomerSummary{
		ID:          c.ID,
		Name:        c.Name,
		Surname:     c.Surname,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Role:        c.Role,
	}
}

type BusinessSummary struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"companyName"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
}

type TerminalSummary struct {
	ID           uuid.UUID `json:"id"`
	TerminalName string    `json:"terminalName"`
	TerminalID   string    `json:"terminalId"`
	BusinessID   uuid.UUID `json:"businessId"`
	Role         string    `json:"role"`
}

// Clock returns the current time. Tests pin it.
type Clock func() time.Time
