// Package terminal manages a business's point-of-sale terminals and the
// legacy points credit a terminal scan performs.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "counpaign/internal/errors"
	"counpaign/internal/logging"
	"counpaign/internal/metrics"
	"counpaign/internal/models"
	"counpaign/internal/repositories"
	"counpaign/internal/services/loyalty"
	"counpaign/internal/utils"
	"counpaign/internal/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type CreateRequest struct {
	TerminalName string `json:"terminalName" validate:"required"`
	TerminalID   string `json:"terminalId" validate:"required"`
	Password     string `json:"password" validate:"required,min=4"`
}

// PurchaseRequest is a terminal scan. A nil Amount credits the flat default.
type PurchaseRequest struct {
	CustomerID uuid.UUID `json:"customerId"`
	Amount     *float64  `json:"amount"`
}

type PurchaseResult struct {
	Message     string `json:"message"`
	PointsAdded int    `json:"pointsAdded"`
	TotalPoints int    `json:"totalPoints"`
}

type Service interface {
	Create(ctx context.Context, businessID uuid.UUID, req CreateRequest) (*models.Terminal, error)
	List(ctx context.Context, businessID uuid.UUID) ([]models.Terminal, error)
	SetActive(ctx context.Context, businessID, id uuid.UUID, active bool) (*models.Terminal, error)
	ProcessPurchase(ctx context.Context, terminalID uuid.UUID, req PurchaseRequest) (*PurchaseResult, error)
}

type service struct {
	store   repositories.Store
	metrics metrics.Recorder
	now     func() time.Time
}

func NewService(store repositories.Store, recorder metrics.Recorder) Service {
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	return &service{store: store, metrics: recorder, now: time.Now}
}

func (s *service) Create(ctx context.Context, businessID uuid.UUID, req CreateRequest) (*models.Terminal, error) {
	req.TerminalName = strings.TrimSpace(req.TerminalName)
	req.TerminalID = strings.TrimSpace(req.TerminalID)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.store.Terminals().GetByTerminalID(ctx, req.TerminalID); err == nil {
		return nil, apperrors.ErrDuplicateTerminal
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("look up terminal: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash pin: %w", err)
	}

	terminal := &models.Terminal{
		TerminalName: req.TerminalName,
		TerminalID:   req.TerminalID,
		Password:     hash,
		BusinessID:   businessID,
		IsActive:     true,
	}
	if err := s.store.Terminals().Create(ctx, terminal); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrDuplicateTerminal
		}
		return nil, fmt.Errorf("create terminal: %w", err)
	}

	logging.L().WithFields(logrus.Fields{
		"terminal_id": terminal.TerminalID,
		"business_id": businessID,
	}).Info("terminal created")
	return terminal, nil
}

func (s *service) List(ctx context.Context, businessID uuid.UUID) ([]models.Terminal, error) {
	terminals, err := s.store.Terminals().ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("list terminals: %w", err)
	}
	if terminals == nil {
		terminals = []models.Terminal{}
	}
	return terminals, nil
}

func (s *service) SetActive(ctx context.Context, businessID, id uuid.UUID, active bool) (*models.Terminal, error) {
	terminal, err := s.store.Terminals().SetActive(ctx, id, businessID, active)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrTerminalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("set terminal active: %w", err)
	}

	logging.L().WithFields(logrus.Fields{
		"terminal_id": terminal.TerminalID,
		"active":      active,
	}).Info("terminal status changed")
	return terminal, nil
}

// ProcessPurchase credits the customer's per-business reward balance. It is
// not idempotent: a replayed scan credits twice.
func (s *service) ProcessPurchase(ctx context.Context, terminalID uuid.UUID, req PurchaseRequest) (*PurchaseResult, error) {
	if req.CustomerID == uuid.Nil {
		return nil, apperrors.Validation("customerId is required")
	}
	if req.Amount != nil && *req.Amount < 0 {
		return nil, apperrors.Validation("amount must not be negative")
	}

	terminal, err := s.store.Terminals().GetByID(ctx, terminalID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrTerminalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load terminal: %w", err)
	}
	if !terminal.IsActive {
		return nil, apperrors.ErrTerminalInactive
	}

	if _, err := s.store.Customers().GetByID(ctx, req.CustomerID); errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrCustomerNotFound
	} else if err != nil {
		return nil, fmt.Errorf("load customer: %w", err)
	}

	points := loyalty.TerminalPoints(req.Amount)
	reward, err := s.store.Customers().AddRewardPoints(ctx, req.CustomerID, terminal.BusinessID, points, s.now())
	if err != nil {
		return nil, fmt.Errorf("credit reward: %w", err)
	}

	s.metrics.TerminalPoints(points)
	logging.L().WithFields(logrus.Fields{
		"terminal_id": terminal.TerminalID,
		"customer_id": req.CustomerID,
		"points":      points,
	}).Info("terminal purchase processed")

	return &PurchaseResult{
		Message:     "Transaction successful",
		PointsAdded: points,
		TotalPoints: reward.Points,
	}, nil
}
