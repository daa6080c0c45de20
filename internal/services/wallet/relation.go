package wallet

import (
	"context"
	"errors"
	"fmt"

	apperrors "counpaign/internal/errors"
	"counpaign/internal/models"
	"counpaign/internal/repositories"

	"github.com/google/uuid"
)

// lockCustomer row-locks the customer so ordering writes are serialized.
func lockCustomer(ctx context.Context, store repositories.Store, customerID uuid.UUID) (*models.Customer, error) {
	customer, err := store.Customers().GetByIDForUpdate(ctx, customerID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock customer: %w", err)
	}
	return customer, nil
}

func appendRelation(ctx context.Context, store repositories.Store, customerID uuid.UUID, business *models.Business) (*models.CustomerBusiness, error) {
	next, err := store.Wallets().NextOrderIndex(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("next order index: %w", err)
	}

	rel := &models.CustomerBusiness{
		CustomerID:   customerID,
		BusinessID:   business.ID,
		StampsTarget: business.EffectiveStampsTarget(),
		OrderIndex:   next,
	}
	if err := store.Wallets().Create(ctx, rel); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrAlreadyInWallet
		}
		return nil, fmt.Errorf("create relation: %w", err)
	}
	return rel, nil
}

// Ensure returns the customer's relation with business, row-locked,
// appending a new one at the end of the wallet if none exists. It must run
// inside Store.ExecuteInTransaction. created reports whether a relation was
// added.
func Ensure(ctx context.Context, store repositories.Store, customerID uuid.UUID, business *models.Business) (rel *models.CustomerBusiness, created bool, err error) {
	if _, err := lockCustomer(ctx, store, customerID); err != nil {
		return nil, false, err
	}

	rel, err = store.Wallets().GetForUpdate(ctx, customerID, business.ID)
	if err == nil {
		return rel, false, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, false, fmt.Errorf("load relation: %w", err)
	}

	rel, err = appendRelation(ctx, store, customerID, business)
	if err != nil {
		return nil, false, err
	}
	return rel, true, nil
}
