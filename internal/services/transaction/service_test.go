package transaction

import (
	"context"
	"errors"
	"testing"

	apperrors "counpaign/internal/errors"
	"counpaign/internal/models"
	"counpaign/internal/repositories/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) LedgerEntry(txType, category string) { m.Called(txType, category) }
func (m *mockRecorder) WalletOperation(op, result string) { m.Called(op, result) }
func (m *mockRecorder) CampaignWin(rewardType string) { m.Called(rewardType) }
func (m *mockRecorder) TerminalPoints(points int) { m.Called(points) }

type fixture struct {
	store    *memstore.Store
	svc      Service
	customer *models.Customer
	business *models.Business
	admin    models.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memstore.New()

	customer := &models.Customer{Name: "Ali", Surname: "Demir", PhoneNumber: "5551112233", Email: "ali@example.com", Password: "x"}
	require.NoError(t, store.Customers().Create(ctx, customer))
	business := &models.Business{CompanyName: "Kahve Durağı", Email: "kahve@example.com", StampsTarget: 5}
	require.NoError(t, store.Businesses().Create(ctx, business))

	return &fixture{
		store:    store,
		svc:      NewService(store, nil),
		customer: customer,
		business: business,
		admin:    models.Actor{ID: uuid.New(), Role: models.RoleAdmin},
	}
}

func (f *fixture) process(t *testing.T, txType string, value *int) (*ProcessResult, error) {
	t.Helper()
	return f.svc.Process(context.Background(), f.admin, ProcessRequest{
		CustomerID: f.customer.ID,
		BusinessID: f.business.ID,
		Type:       txType,
		Value:      value,
	})
}

func intPtr(v int) *int { return &v }

func TestService_ProcessCreatesRelation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.process(t, "", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Stamps)
	assert.Equal(t, 1, res.TotalVisits)
	assert.Equal(t, 5, res.StampsTarget)

	rel, err := f.store.Wallets().Get(ctx, f.customer.ID, f.business.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, rel.OrderIndex)
	assert.Equal(t, 1, rel.Stamps)

	txs, err := f.svc.History(ctx, f.customer.ID, f.business.ID)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, models.TxStamp, txs[0].Type)
	assert.Equal(t, models.CategoryEarn, txs[0].Category)
	assert.Equal(t, models.TxStatusCompleted, txs[0].Status)
}

func TestService_ProcessStampOverflow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := f.process(t, models.TxStamp, nil)
		require.NoError(t, err)
	}

	res, err := f.process(t, models.TxStamp, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Stamps)
	assert.Equal(t, 1, res.GiftsCount)
	assert.Equal(t, 5, res.TotalVisits)
	assert.True(t, res.GiftEarned)

	txs, err := f.svc.History(ctx, f.customer.ID, f.business.ID)
	require.NoError(t, err)
	assert.Len(t, txs, 5)

	res, err = f.process(t, models.TxGiftRedeem, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.GiftsCount)

	txs, err = f.svc.History(ctx, f.customer.ID, f.business.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CategorySpend, txs[0].Category)
}

func TestService_ProcessPoints(t *testing.T) {
	f := newFixture(t)

	res, err := f.process(t, models.TxPoint, intPtr(40))
	require.NoError(t, err)
	assert.Equal(t, 40, res.Points)
	assert.Equal(t, 0, res.TotalVisits)
}

func TestService_ProcessRejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.process(t, models.TxGiftRedeem, nil)
	assert.ErrorIs(t, err, apperrors.ErrNoGiftsAvailable)

	// The rejected redeem must not leave a relation or a ledger row behind.
	_, err = f.store.Wallets().Get(ctx, f.customer.ID, f.business.ID)
	assert.Error(t, err)
	txs, err := f.svc.History(ctx, f.customer.ID, f.business.ID)
	require.NoError(t, err)
	assert.Empty(t, txs)

	_, err = f.process(t, "REFUND", nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransactionType)

	_, err = f.svc.Process(ctx, f.admin, ProcessRequest{})
	de, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Contains(t, de.Fields, "customerId")
	assert.Contains(t, de.Fields, "businessId")

	_, err = f.svc.Process(ctx, f.admin, ProcessRequest{CustomerID: f.customer.ID, BusinessID: uuid.New()})
	assert.ErrorIs(t, err, apperrors.ErrBusinessNotFound)

	_, err = f.svc.Process(ctx, f.admin, ProcessRequest{CustomerID: uuid.New(), BusinessID: f.business.ID})
	assert.ErrorIs(t, err, apperrors.ErrCustomerNotFound)
}

func TestService_ProcessRollsBackOnLedgerFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.store.Fail("Transactions.Create", errors.New("disk full"))
	_, err := f.process(t, models.TxStamp, nil)
	require.Error(t, err)
	f.store.Fail("Transactions.Create", nil)

	_, err = f.store.Wallets().Get(ctx, f.customer.ID, f.business.ID)
	assert.Error(t, err)
}

func TestService_ProcessAuthorization(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other := &models.Business{CompanyName: "Fırın", Email: "firin@example.com"}
	require.NoError(t, f.store.Businesses().Create(ctx, other))

	active := &models.Terminal{TerminalName: "Kasa 1", TerminalID: "T-1", Password: "x", BusinessID: f.business.ID, IsActive: true}
	require.NoError(t, f.store.Terminals().Create(ctx, active))
	inactive := &models.Terminal{TerminalName: "Kasa 2", TerminalID: "T-2", Password: "x", BusinessID: f.business.ID}
	require.NoError(t, f.store.Terminals().Create(ctx, inactive))
	_, err := f.store.Terminals().SetActive(ctx, inactive.ID, f.business.ID, false)
	require.NoError(t, err)

	tests := []struct {
		name  string
		actor models.Actor
		want  error
	}{
		{"owning business", models.Actor{ID: f.business.ID, Role: models.RoleBusiness}, nil},
		{"other business", models.Actor{ID: other.ID, Role: models.RoleBusiness}, apperrors.ErrForbidden},
		{"own terminal", models.Actor{ID: active.ID, Role: models.RoleTerminal}, nil},
		{"inactive terminal", models.Actor{ID: inactive.ID, Role: models.RoleTerminal}, apperrors.ErrTerminalInactive},
		{"unknown terminal", models.Actor{ID: uuid.New(), Role: models.RoleTerminal}, apperrors.ErrTerminalNotFound},
		{"customer", models.Actor{ID: f.customer.ID, Role: models.RoleCustomer}, apperrors.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Process(ctx, tt.actor, ProcessRequest{CustomerID: f.customer.ID, BusinessID: f.business.ID})
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestService_ProcessRecordsMetric(t *testing.T) {
	f := newFixture(t)
	rec := &mockRecorder{}
	rec.On("LedgerEntry", models.TxPoint, models.CategoryEarn).Once()
	f.svc = NewService(f.store, rec)

	_, err := f.process(t, models.TxPoint, intPtr(5))
	require.NoError(t, err)
	rec.AssertExpectations(t)
}

func TestService_ListForCustomer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.process(t, models.TxStamp, nil)
	require.NoError(t, err)
	_, err = f.process(t, models.TxPoint, intPtr(20))
	require.NoError(t, err)

	entries, err := f.svc.ListForCustomer(ctx, f.customer.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.TxPoint, entries[0].Type)
	require.NotNil(t, entries[0].Business)
	assert.Equal(t, "Kahve Durağı", entries[0].Business.CompanyName)
	assert.Nil(t, entries[0].Review)
}
