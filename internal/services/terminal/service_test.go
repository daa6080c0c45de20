package terminal

import (
	"context"
	"testing"

	apperrors "counpaign/internal/errors"
	"counpaign/internal/models"
	"counpaign/internal/repositories/memstore"
	"counpaign/internal/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	utils.BcryptCost = bcrypt.MinCost
}

func seed(t *testing.T) (*memstore.Store, *models.Business, *models.Customer) {
	t.Helper()
	ctx := context.Background()
	store := memstore.New()
	business := &models.Business{CompanyName: "Kahve Durağı", Email: "kahve@example.com"}
	require.NoError(t, store.Businesses().Create(ctx, business))
	customer := &models.Customer{Name: "Ali", Surname: "Demir", PhoneNumber: "5551112233", Email: "ali@example.com", Password: "x"}
	require.NoError(t, store.Customers().Create(ctx, customer))
	return store, business, customer
}

func TestService_Create(t *testing.T) {
	store, business, _ := seed(t)
	svc := NewService(store, nil)
	ctx := context.Background()

	term, err := svc.Create(ctx, business.ID, CreateRequest{TerminalName: "Kasa 1", TerminalID: " T-1 ", Password: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "T-1", term.TerminalID)
	assert.True(t, term.IsActive)
	assert.True(t, utils.CheckPassword(term.Password, "1234"))

	_, err = svc.Create(ctx, business.ID, CreateRequest{TerminalName: "Kasa 2", TerminalID: "T-1", Password: "5678"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateTerminal)

	_, err = svc.Create(ctx, business.ID, CreateRequest{TerminalName: "Kasa 3"})
	de, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Contains(t, de.Fields, "terminalId")
	assert.Contains(t, de.Fields, "password")

	list, err := svc.List(ctx, business.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = svc.List(ctx, uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestService_SetActive(t *testing.T) {
	store, business, _ := seed(t)
	svc := NewService(store, nil)
	ctx := context.Background()

	term, err := svc.Create(ctx, business.ID, CreateRequest{TerminalName: "Kasa 1", TerminalID: "T-1", Password: "1234"})
	require.NoError(t, err)

	got, err := svc.SetActive(ctx, business.ID, term.ID, false)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	_, err = svc.SetActive(ctx, uuid.New(), term.ID, true)
	assert.ErrorIs(t, err, apperrors.ErrTerminalNotFound)

	got, err = svc.SetActive(ctx, business.ID, term.ID, true)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestService_ProcessPurchase(t *testing.T) {
	store, business, customer := seed(t)
	svc := NewService(store, nil)
	ctx := context.Background()

	term, err := svc.Create(ctx, business.ID, CreateRequest{TerminalName: "Kasa 1", TerminalID: "T-1", Password: "1234"})
	require.NoError(t, err)

	amount := 125.0
	res, err := svc.ProcessPurchase(ctx, term.ID, PurchaseRequest{CustomerID: customer.ID, Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, 12, res.PointsAdded)
	assert.Equal(t, 12, res.TotalPoints)

	res, err = svc.ProcessPurchase(ctx, term.ID, PurchaseRequest{CustomerID: customer.ID})
	require.NoError(t, err)
	assert.Equal(t, 10, res.PointsAdded)
	assert.Equal(t, 22, res.TotalPoints)

	stored, err := store.Customers().GetByID(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, stored.Rewards, 1)
	assert.Equal(t, business.ID, stored.Rewards[0].BusinessID)
	assert.Equal(t, 22, stored.Rewards[0].Points)
}

func TestService_ProcessPurchaseRejections(t *testing.T) {
	store, business, customer := seed(t)
	svc := NewService(store, nil)
	ctx := context.Background()

	term, err := svc.Create(ctx, business.ID, CreateRequest{TerminalName: "Kasa 1", TerminalID: "T-1", Password: "1234"})
	require.NoError(t, err)

	_, err = svc.ProcessPurchase(ctx, uuid.New(), PurchaseRequest{CustomerID: customer.ID})
	assert.ErrorIs(t, err, apperrors.ErrTerminalNotFound)

	_, err = svc.ProcessPurchase(ctx, term.ID, PurchaseRequest{CustomerID: uuid.New()})
	assert.ErrorIs(t, err, apperrors.ErrCustomerNotFound)

	_, err = svc.SetActive(ctx, business.ID, term.ID, false)
	require.NoError(t, err)
	_, err = svc.ProcessPurchase(ctx, term.ID, PurchaseRequest{CustomerID: customer.ID})
	assert.ErrorIs(t, err, apperrors.ErrTerminalInactive)
}
