// Package review attaches a customer's rating to one of their ledger entries.
package review

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "counpaign/internal/errors"
	"counpaign/internal/logging"
	"counpaign/internal/models"
	"counpaign/internal/repositories"
	"counpaign/internal/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type CreateRequest struct {
	TransactionID uuid.UUID `json:"transactionId"`
	BusinessID    uuid.UUID `json:"businessId"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
}

type Service interface {
	Create(ctx context.Context, customerID uuid.UUID, req CreateRequest) (*models.Review, error)
	Mine(ctx context.Context, customerID uuid.UUID) ([]models.Review, error)
}

type service struct {
	store repositories.Store
}

func NewService(store repositories.Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, customerID uuid.UUID, req CreateRequest) (*models.Review, error) {
	v := validation.New()
	v.Check(req.TransactionID != uuid.Nil, "transactionId", "is required")
	v.Check(req.BusinessID != uuid.Nil, "businessId", "is required")
	v.Range("rating", req.Rating, 1, 5)
	if err := v.Err(); err != nil {
		return nil, err
	}

	review := &models.Review{
		CustomerID:    customerID,
		BusinessID:    req.BusinessID,
		TransactionID: req.TransactionID,
		Rating:        req.Rating,
		Comment:       strings.TrimSpace(req.Comment),
	}
	err := s.store.ExecuteInTransaction(ctx, func(tx repositories.Store) error {
		entry, err := tx.Transactions().GetByID(ctx, req.TransactionID)
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrTransactionNotFound
		}
		if err != nil {
			return fmt.Errorf("load transaction: %w", err)
		}
		// Another customer's entry, or one at a different business, is not found.
		if entry.CustomerID != customerID || entry.BusinessID != req.BusinessID {
			return apperrors.ErrTransactionNotFound
		}
		if entry.ReviewID != nil {
			return apperrors.ErrAlreadyReviewed
		}

		if err := tx.Reviews().Create(ctx, review); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return apperrors.ErrAlreadyReviewed
			}
			return fmt.Errorf("create review: %w", err)
		}

		attached, err := tx.Transactions().AttachReview(ctx, entry.ID, review.ID)
		if err != nil {
			return fmt.Errorf("attach review: %w", err)
		}
		if !attached {
			return apperrors.ErrAlreadyReviewed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.L().WithFields(logrus.Fields{
		"review_id":      review.ID,
		"transaction_id": req.TransactionID,
		"rating":         req.Rating,
	}).Info("review created")
	return review, nil
}

func (s *service) Mine(ctx context.Context, customerID uuid.UUID) ([]models.Review, error) {
	reviews, err := s.store.Reviews().ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}
