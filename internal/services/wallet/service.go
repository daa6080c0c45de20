package wallet

import (
	"context"
	"errors"
	"fmt"

	apperrors "counpaign/internal/errors"
	"counpaign/internal/logging"
	"counpaign/internal/metrics"
	"counpaign/internal/models"
	"counpaign/internal/repositories"
	"counpaign/internal/utils"
	"counpaign/internal/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type service struct {
	store   repositories.Store
	metrics metrics.Recorder
}

// NewService creates a new wallet service.
func NewService(store repositories.Store, recorder metrics.Recorder) Service {
	if store == nil {
		panic("store is required")
	}
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	return &service{store: store, metrics: recorder}
}

func (s *service) Add(ctx context.Context, customerID, businessID uuid.UUID) (rel *models.CustomerBusiness, err error) {
	defer func() { s.metrics.WalletOperation("add", metrics.Result(err)) }()

	if businessID == uuid.Nil {
		return nil, apperrors.Validation("businessId is required")
	}

	err = s.store.ExecuteInTransaction(ctx, func(tx repositories.Store) error {
		if _, err := lockCustomer(ctx, tx, customerID); err != nil {
			return err
		}

		business, err := tx.Businesses().GetByID(ctx, businessID)
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrBusinessNotFound
		}
		if err != nil {
			return fmt.Errorf("load business: %w", err)
		}

		if _, err := tx.Wallets().Get(ctx, customerID, businessID); err == nil {
			return apperrors.ErrAlreadyInWallet
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("load relation: %w", err)
		}

		rel, err = appendRelation(ctx, tx, customerID, business)
		if err != nil {
			return err
		}
		rel.Business = business
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.L().WithFields(logrus.Fields{
		"customer_id": customerID,
		"business_id": businessID,
		"order_index": rel.OrderIndex,
	}).Info("business added to wallet")
	return rel, nil
}

func (s *service) Remove(ctx context.Context, customerID uuid.UUID, req RemoveRequest) (err error) {
	defer func() { s.metrics.WalletOperation("remove", metrics.Result(err)) }()

	v := validation.New()
	v.Check(req.BusinessID != uuid.Nil, "businessId", "is required")
	v.Required("password", req.Password)
	if err := v.Err(); err != nil {
		return err
	}

	// Verify outside the transaction so bcrypt does not hold the row lock.
	customer, err := s.store.Customers().GetByID(ctx, customerID)
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.ErrCustomerNotFound
	}
	if err != nil {
		return fmt.Errorf("load customer: %w", err)
	}
	if !utils.CheckPassword(customer.Password, req.Password) {
		return apperrors.ErrInvalidCredentials
	}

	var deleted int64
	err = s.store.ExecuteInTransaction(ctx, func(tx repositories.Store) error {
		if _, err := lockCustomer(ctx, tx, customerID); err != nil {
			return err
		}

		rel, err := tx.Wallets().Get(ctx, customerID, req.BusinessID)
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrNotInWallet
		}
		if err != nil {
			return fmt.Errorf("load relation: %w", err)
		}

		if err := tx.Wallets().Delete(ctx, rel.ID); err != nil {
			return fmt.Errorf("delete relation: %w", err)
		}
		if err := tx.Reviews().DeleteByCustomerAndBusiness(ctx, customerID, req.BusinessID); err != nil {
			return fmt.Errorf("delete reviews: %w", err)
		}
		deleted, err = tx.Transactions().DeleteByCustomerAndBusiness(ctx, customerID, req.BusinessID)
		if err != nil {
			return fmt.Errorf("delete transactions: %w", err)
		}
		return tx.Wallets().CompactAfter(ctx, customerID, rel.OrderIndex)
	})
	if err != nil {
		return err
	}

	logging.L().WithFields(logrus.Fields{
		"customer_id":          customerID,
		"business_id":          req.BusinessID,
		"transactions_deleted": deleted,
	}).Info("business removed from wallet")
	return nil
}

func (s *service) Reorder(ctx context.Context, customerID uuid.UUID, order []uuid.UUID) (cards []Card, err error) {
	defer func() { s.metrics.WalletOperation("reorder", metrics.Result(err)) }()

	if order == nil {
		return nil, apperrors.Validation("order is required")
	}

	err = s.store.ExecuteInTransaction(ctx, func(tx repositories.Store) error {
		if _, err := lockCustomer(ctx, tx, customerID); err != nil {
			return err
		}

		relations, err := tx.Wallets().ListByCustomer(ctx, customerID)
		if err != nil {
			return fmt.Errorf("list relations: %w", err)
		}

		for idx, rel := range arrange(relations, order) {
			if rel.OrderIndex == idx {
				continue
			}
			if err := tx.Wallets().SetOrderIndex(ctx, rel.ID, idx); err != nil {
				return fmt.Errorf("set order index: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.List(ctx, customerID)
}

// arrange returns relations in their new order: listed business ids first,
// then everything else in its current order.
func arrange(relations []models.CustomerBusiness, order []uuid.UUID) []models.CustomerBusiness {
	byBusiness := make(map[uuid.UUID]models.CustomerBusiness, len(relations))
	for _, rel := range relations {
		byBusiness[rel.BusinessID] = rel
	}

	placed := make(map[uuid.UUID]bool, len(relations))
	out := make([]models.CustomerBusiness, 0, len(relations))
	for _, id := range order {
		rel, ok := byBusiness[id]
		if !ok || placed[id] {
			continue
		}
		placed[id] = true
		out = append(out, rel)
	}
	for _, rel := range relations {
		if !placed[rel.BusinessID] {
			out = append(out, rel)
		}
	}
	return out
}

func (s *service) List(ctx context.Context, customerID uuid.UUID) ([]Card, error) {
	relations, err := s.store.Wallets().ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list relations: %w", err)
	}

	cards := make([]Card, 0, len(relations))
	for _, rel := range relations {
		// Relations whose business was deleted are skipped.
		if rel.Business == nil {
			continue
		}
		cards = append(cards, newCard(rel))
	}
	return cards, nil
}
