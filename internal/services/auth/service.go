// Package auth registers customers and issues tokens for customers,
// businesses and terminals.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "counpaign/internal/errors"
	"counpaign/internal/logging"
	"counpaign/internal/models"
	"counpaign/internal/repositories"
	"counpaign/internal/utils"
	"counpaign/internal/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*Result, error)
	Login(ctx context.Context, req LoginRequest) (*Result, error)
	LoginBusiness(ctx context.Context, req BusinessLoginRequest) (*Result, error)
	LoginTerminal(ctx context.Context, req TerminalLoginRequest) (*Result, error)
	// ParseToken verifies signature and expiry and returns the claims.
	ParseToken(token string) (*models.UserClaims, error)
}

type service struct {
	store  repositories.Store
	tokens utils.TokenConfig
	now    Clock
}

func NewService(store repositories.Store, tokens utils.TokenConfig) Service {
	if store == nil {
		panic("store is required")
	}
	return &service{
		store:  store,
		tokens: tokens,
		now:    time.Now,
	}
}

// NewServiceWithClock is NewService with a fixed time source.
func NewServiceWithClock(store repositories.Store, tokens utils.TokenConfig, now Clock) Service {
	s := NewService(store, tokens).(*service)
	s.now = now
	return s
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*Result, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Surname = strings.TrimSpace(req.Surname)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	req.Email = normalizeEmail(req.Email)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	customers := s.store.Customers()
	if _, err := customers.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrDuplicateEmail
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("look up email: %w", err)
	}
	if _, err := customers.GetByPhone(ctx, req.PhoneNumber); err == nil {
		return nil, apperrors.ErrDuplicatePhone
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("look up phone: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	customer := &models.Customer{
		Name:        req.Name,
		Surname:     req.Surname,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Password:    hash,
		Role:        models.RoleCustomer,
	}
	if err := customers.Create(ctx, customer); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			// Lost a race with a concurrent registration.
			return nil, duplicateOf(ctx, customers, req.Email, req.PhoneNumber)
		}
		return nil, fmt.Errorf("create customer: %w", err)
	}

	logging.L().WithField("customer_id", customer.ID).Info("customer registered")
	return s.issue(customer.ID, customer.Role, summarizeCustomer(customer))
}

// duplicateOf reports which unique column a failed insert collided on. The
// driver error does not carry the constraint name, so the rows are looked up
// again. Email wins when both collide.
func duplicateOf(ctx context.Context, customers repositories.CustomerRepository, email, phone string) error {
	if _, err := customers.GetByEmail(ctx, email); err == nil {
		return apperrors.ErrDuplicateEmail
	}
	if _, err := customers.GetByPhone(ctx, phone); err == nil {
		return apperrors.ErrDuplicatePhone
	}
	return apperrors.ErrDuplicateEmail
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*Result, error) {
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	customer, err := s.store.Customers().GetByPhone(ctx, req.PhoneNumber)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("look up customer: %w", err)
	}

	if !utils.CheckPassword(customer.Password, req.Password) {
		logging.L().WithField("customer_id", customer.ID).Warn("login failed: incorrect password")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(customer.ID, customer.Role, summarizeCustomer(customer))
}

func (s *service) LoginBusiness(ctx context.Context, req BusinessLoginRequest) (*Result, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	business, err := s.store.Businesses().GetByEmail(ctx, req.Email)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("look up business: %w", err)
	}
	if business.Password == "" || !utils.CheckPassword(business.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	summary := BusinessSummary{
		ID:          business.ID,
		CompanyName: business.CompanyName,
		Email:       business.Email,
		Role:        models.RoleBusiness,
	}
	return s.issue(business.ID, models.RoleBusiness, summary)
}

func (s *service) LoginTerminal(ctx context.Context, req TerminalLoginRequest) (*Result, error) {
	req.TerminalID = strings.TrimSpace(req.TerminalID)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	terminal, err := s.store.Terminals().GetByTerminalID(ctx, req.TerminalID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("look up terminal: %w", err)
	}
	if !utils.CheckPassword(terminal.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !terminal.IsActive {
		return nil, apperrors.ErrTerminalInactive
	}

	summary := TerminalSummary{
		ID:           terminal.ID,
		TerminalName: terminal.TerminalName,
		TerminalID:   terminal.TerminalID,
		BusinessID:   terminal.BusinessID,
		Role:         models.RoleTerminal,
	}
	return s.issue(terminal.ID, models.RoleTerminal, summary)
}

func (s *service) ParseToken(token string) (*models.UserClaims, error) {
	claims, err := utils.ParseToken(s.tokens, token)
	if err != nil {
		logging.L().WithError(err).Debug("token rejected")
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

func (s *service) issue(id uuid.UUID, role string, user interface{}) (*Result, error) {
	token, err := utils.GenerateToken(s.tokens, id, role, s.now())
	if err != nil {
		logging.L().WithFields(logrus.Fields{"id": id, "role": role}).WithError(err).Error("generate token")
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &Result{Token: token, User: user}, nil
}
