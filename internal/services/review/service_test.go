package review

import (
	"context"
	"testing"

	apperrors "counpaign/internal/errors"
	"counpaign/internal/models"
	"counpaign/internal/repositories/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) (*memstore.Store, uuid.UUID, *models.Business, *models.Transaction) {
	t.Helper()
	ctx := context.Background()
	store := memstore.New()
	business := &models.Business{CompanyName: "Kahve Durağı", Email: "kahve@example.com"}
	require.NoError(t, store.Businesses().Create(ctx, business))
	customerID := uuid.New()
	entry := &models.Transaction{
		CustomerID: customerID, BusinessID: business.ID, Type: models.TxStamp,
		Category: models.CategoryEarn, Value: 1, Status: models.TxStatusCompleted,
	}
	require.NoError(t, store.Transactions().Create(ctx, entry))
	return store, customerID, business, entry
}

func TestService_Create(t *testing.T) {
	store, customerID, business, entry := seed(t)
	svc := NewService(store)
	ctx := context.Background()

	review, err := svc.Create(ctx, customerID, CreateRequest{
		TransactionID: entry.ID, BusinessID: business.ID, Rating: 4, Comment: " Güzel kahve ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Güzel kahve", review.Comment)

	stored, err := store.Transactions().GetByID(ctx, entry.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ReviewID)
	assert.Equal(t, review.ID, *stored.ReviewID)

	_, err = svc.Create(ctx, customerID, CreateRequest{TransactionID: entry.ID, BusinessID: business.ID, Rating: 5})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyReviewed)

	mine, err := svc.Mine(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.NotNil(t, mine[0].Business)
	assert.Equal(t, business.CompanyName, mine[0].Business.CompanyName)
}

func TestService_CreateRejections(t *testing.T) {
	store, customerID, business, entry := seed(t)
	svc := NewService(store)
	ctx := context.Background()

	tests := []struct {
		name       string
		customerID uuid.UUID
		req        CreateRequest
		want       error
		field      string
	}{
		{"rating too high", customerID, CreateRequest{TransactionID: entry.ID, BusinessID: business.ID, Rating: 6}, nil, "rating"},
		{"rating missing", customerID, CreateRequest{TransactionID: entry.ID, BusinessID: business.ID}, nil, "rating"},
		{"transaction missing", customerID, CreateRequest{BusinessID: business.ID, Rating: 3}, nil, "transactionId"},
		{"other customer", uuid.New(), CreateRequest{TransactionID: entry.ID, BusinessID: business.ID, Rating: 3}, apperrors.ErrTransactionNotFound, ""},
		{"other business", customerID, CreateRequest{TransactionID: entry.ID, BusinessID: uuid.New(), Rating: 3}, apperrors.ErrTransactionNotFound, ""},
		{"unknown transaction", customerID, CreateRequest{TransactionID: uuid.New(), BusinessID: business.ID, Rating: 3}, apperrors.ErrTransactionNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.customerID, tt.req)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				return
			}
			de, ok := apperrors.As(err)
			require.True(t, ok)
			assert.Contains(t, de.Fields, tt.field)
		})
	}

	mine, err := svc.Mine(ctx, customerID)
	require.NoError(t, err)
	assert.Empty(t, mine)
}
