package memstore

import (
	"context"
	"time"

	"counpaign/internal/models"
	"counpaign/internal/repositories"

	"github.com/google/uuid"
)

type transactions struct{ s *Store }

func (r transactions) Create(ctx context.Context, tx *models.Transaction) error {
	defer r.s.lock()()
	if err := r.s.fault("Transactions.Create"); err != nil {
		return err
	}
	r.s.data.stamp(&tx.Base)
	stored := *tx
	stored.Business = nil
	stored.Review = nil
	r.s.data.transactions[tx.ID] = stored
	return nil
}

func (r transactions) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	defer r.s.lock()()
	tx, ok := r.s.data.transactions[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &tx, nil
}

func (r transactions) list(match func(models.Transaction) bool) []models.Transaction {
	var out []models.Transaction
	for _, tx := range r.s.data.transactions {
		if !match(tx) {
			continue
		}
		tx.Business = businessPtr(r.s.data, tx.BusinessID)
		if tx.ReviewID != nil {
			if rv, ok := r.s.data.reviews[*tx.ReviewID]; ok {
				tx.Review = &rv
			}
		}
		out = append(out, tx)
	}
	sortNewest(out, func(tx models.Transaction) time.Time { return tx.CreatedAt })
	return out
}

func (r transactions) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Transaction, error) {
	defer r.s.lock()()
	return r.list(func(tx models.Transaction) bool { return tx.CustomerID == customerID }), nil
}

func (r transactions) ListByCustomerAndBusiness(ctx context.Context, customerID, businessID uuid.UUID) ([]models.Transaction, error) {
	defer r.s.lock()()
	txs := r.list(func(tx models.Transaction) bool {
		return tx.CustomerID == customerID && tx.BusinessID == businessID
	})
	for i := range txs {
		txs[i].Business = nil
		txs[i].Review = nil
	}
	return txs, nil
}

func (r transactions) DeleteByCustomerAndBusiness(ctx context.Context, customerID, businessID uuid.UUID) (int64, error) {
	defer r.s.lock()()
	if err := r.s.fault("Transactions.DeleteByCustomerAndBusiness"); err != nil {
		return 0, err
	}
	var n int64
	for id, tx := range r.s.data.transactions {
		if tx.CustomerID == customerID && tx.BusinessID == businessID {
			delete(r.s.data.transactions, id)
			n++
		}
	}
	return n, nil
}

func (r transactions) AttachReview(ctx context.Context, id, reviewID uuid.UUID) (bool, error) {
	defer r.s.lock()()
	tx, ok := r.s.data.transactions[id]
	if !ok || tx.ReviewID != nil {
		return false, nil
	}
	tx.ReviewID = &reviewID
	r.s.data.transactions[id] = tx
	return true, nil
}

type reviews struct{ s *Store }

func (r reviews) Create(ctx context.Context, rv *models.Review) error {
	defer r.s.lock()()
	for _, existing := range r.s.data.reviews {
		if existing.TransactionID == rv.TransactionID {
			return duplicate("reviews.transaction_id")
		}
	}
	r.s.data.stamp(&rv.Base)
	stored := *rv
	stored.Business = nil
	r.s.data.reviews[rv.ID] = stored
	return nil
}

func (r reviews) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Review, error) {
	defer r.s.lock()()
	var out []models.Review
	for _, rv := range r.s.data.reviews {
		if rv.CustomerID == customerID {
			rv.Business = businessPtr(r.s.data, rv.BusinessID)
			out = append(out, rv)
		}
	}
	sortNewest(out, func(rv models.Review) time.Time { return rv.CreatedAt })
	return out, nil
}

func (r reviews) DeleteByCustomerAndBusiness(ctx context.Context, customerID, businessID uuid.UUID) error {
	defer r.s.lock()()
	for id, rv := range r.s.data.reviews {
		if rv.CustomerID == customerID && rv.BusinessID == businessID {
			delete(r.s.data.reviews, id)
		}
	}
	return nil
}
