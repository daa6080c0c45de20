package transaction

import (
	"context"
	"errors"
	"fmt"

	apperrors "counpaign/internal/errors"
	"counpaign/internal/logging"
	"counpaign/internal/metrics"
	"counpaign/internal/models"
	"counpaign/internal/repositories"
	"counpaign/internal/services/loyalty"
	"counpaign/internal/services/wallet"
	"counpaign/internal/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type service struct {
	store   repositories.Store
	metrics metrics.Recorder
}

// NewService creates a new ledger service
func NewService(store repositories.Store, recorder metrics.Recorder) Service {
	if store == nil {
		panic("store is required")
	}
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	return &service{store: store, metrics: recorder}
}

func (s *service) normalize(req *ProcessRequest) error {
	v := validation.New()
	v.Check(req.CustomerID != uuid.Nil, "customerId", "is required")
	v.Check(req.BusinessID != uuid.Nil, "businessId", "is required")
	if err := v.Err(); err != nil {
		return err
	}

	if req.Type == "" {
		req.Type = models.TxStamp
	}
	switch req.Type {
	case models.TxStamp, models.TxPoint, models.TxGiftRedeem:
	default:
		return apperrors.ErrInvalidTransactionType
	}
	if req.Value == nil {
		one := 1
		req.Value = &one
	}
	return nil
}

// authorize resolves which business the actor may process for.
func (s *service) authorize(ctx context.Context, actor models.Actor, businessID uuid.UUID) error {
	switch actor.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleBusiness:
		if actor.ID != businessID {
			return apperrors.ErrForbidden
		}
		return nil
	case models.RoleTerminal:
		terminal, err := s.store.Terminals().GetByID(ctx, actor.ID)
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrTerminalNotFound
		}
		if err != nil {
			return fmt.Errorf("load terminal: %w", err)
		}
		if !terminal.IsActive {
			return apperrors.ErrTerminalInactive
		}
		if terminal.BusinessID != businessID {
			return apperrors.ErrForbidden
		}
		return nil
	default:
		return apperrors.ErrForbidden
	}
}

func (s *service) Process(ctx context.Context, actor models.Actor, req ProcessRequest) (*ProcessResult, error) {
	if err := s.normalize(&req); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actor, req.BusinessID); err != nil {
		return nil, err
	}

	business, err := s.store.Businesses().GetByID(ctx, req.BusinessID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load business: %w", err)
	}

	var (
		rel     *models.CustomerBusiness
		outcome loyalty.Outcome
		entry   *models.Transaction
	)
	err = s.store.ExecuteInTransaction(ctx, func(tx repositories.Store) error {
		var err error
		rel, _, err = wallet.Ensure(ctx, tx, req.CustomerID, business)
		if err != nil {
			return err
		}

		outcome, err = loyalty.Apply(rel, req.Type, *req.Value)
		if err != nil {
			return err
		}
		if err := tx.Wallets().SaveCounters(ctx, rel); err != nil {
			return fmt.Errorf("save counters: %w", err)
		}

		entry = &models.Transaction{
			CustomerID: req.CustomerID,
			BusinessID: req.BusinessID,
			Type:       outcome.Type,
			Category:   outcome.Category,
			Value:      outcome.Value,
			Status:     models.TxStatusCompleted,
		}
		if err := tx.Transactions().Create(ctx, entry); err != nil {
			return fmt.Errorf("append ledger entry: %w", err)
		}
		return nil
	})
	if err != nil {
		if _, ok := apperrors.As(err); !ok {
			logging.L().WithError(err).WithFields(logrus.Fields{
				"customer_id": req.CustomerID,
				"business_id": req.BusinessID,
				"type":        req.Type,
			}).Error("ledger processing failed")
		}
		return nil, err
	}

	s.metrics.LedgerEntry(outcome.Type, outcome.Category)
	logging.L().WithFields(logrus.Fields{
		"transaction_id": entry.ID,
		"customer_id":    req.CustomerID,
		"business_id":    req.BusinessID,
		"type":           outcome.Type,
		"gift_earned":    outcome.GiftEarned,
		"actor_role":     actor.Role,
	}).Info("ledger entry recorded")

	return &ProcessResult{
		Message:       "Transaction processed successfully",
		TransactionID: entry.ID,
		Stamps:        rel.Stamps,
		StampsTarget:  rel.StampsTarget,
		GiftsCount:    rel.GiftsCount,
		Points:        rel.Points,
		TotalVisits:   rel.TotalVisits,
		GiftEarned:    outcome.GiftEarned,
	}, nil
}

func (s *service) History(ctx context.Context, customerID, businessID uuid.UUID) ([]models.Transaction, error) {
	if businessID == uuid.Nil {
		return nil, apperrors.Validation("businessId is required")
	}
	txs, err := s.store.Transactions().ListByCustomerAndBusiness(ctx, customerID, businessID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	return txs, nil
}

func (s *service) ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]Entry, error) {
	txs, err := s.store.Transactions().ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	entries := make([]Entry, 0, len(txs))
	for _, tx := range txs {
		entries = append(entries, newEntry(tx))
	}
	return entries, nil
}
