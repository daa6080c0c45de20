package wallet

import (
	"context"
	"errors"
	"testing"

	apperrors "counpaign/internal/errors"
	"counpaign/internal/models"
	"counpaign/internal/repositories"
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

type fixture struct {
	store      *memstore.Store
	svc        Service
	customer   *models.Customer
	businesses []*models.Business
}

func newFixture(t *testing.T, n int) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memstore.New()

	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)
	customer := &models.Customer{
		Name:        "Ali",
		Surname:     "Demir",
		PhoneNumber: "5551112233",
		Email:       "ali@example.com",
		Password:    hash,
		Role:        models.RoleCustomer,
	}
	require.NoError(t, store.Customers().Create(ctx, customer))

	f := &fixture{store: store, svc: NewService(store, nil), customer: customer}
	for i := 0; i < n; i++ {
		b := &models.Business{
			CompanyName: string(rune('A' + i)),
			Email:       string(rune('a'+i)) + "@biz.example.com",
		}
		require.NoError(t, store.Businesses().Create(ctx, b))
		f.businesses = append(f.businesses, b)
	}
	return f
}

func (f *fixture) addAll(t *testing.T) {
	t.Helper()
	for _, b := range f.businesses {
		_, err := f.svc.Add(context.Background(), f.customer.ID, b.ID)
		require.NoError(t, err)
	}
}

func (f *fixture) order(t *testing.T) map[string]int {
	t.Helper()
	cards, err := f.svc.List(context.Background(), f.customer.ID)
	require.NoError(t, err)
	out := make(map[string]int, len(cards))
	for _, c := range cards {
		out[c.CompanyName] = c.OrderIndex
	}
	return out
}

func assertDense(t *testing.T, cards []Card) {
	t.Helper()
	for i, c := range cards {
		assert.Equal(t, i, c.OrderIndex, "card %s", c.CompanyName)
	}
}

func TestService_AddAppends(t *testing.T) {
	f := newFixture(t, 3)
	ctx := context.Background()

	for i, b := range f.businesses {
		rel, err := f.svc.Add(ctx, f.customer.ID, b.ID)
		require.NoError(t, err)
		assert.Equal(t, i, rel.OrderIndex)
		assert.Equal(t, models.DefaultStampsTarget, rel.StampsTarget)
		assert.Zero(t, rel.Points)
	}

	cards, err := f.svc.List(ctx, f.customer.ID)
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assertDense(t, cards)
	assert.Equal(t, "0.00", cards[0].Value)
}

func TestService_AddErrors(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()
	f.addAll(t)

	tests := []struct {
		name       string
		customerID uuid.UUID
		businessID uuid.UUID
		want       error
	}{
		{"already in wallet", f.customer.ID, f.businesses[0].ID, apperrors.ErrAlreadyInWallet},
		{"unknown business", f.customer.ID, uuid.New(), apperrors.ErrBusinessNotFound},
		{"unknown customer", uuid.New(), f.businesses[0].ID, apperrors.ErrCustomerNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Add(ctx, tt.customerID, tt.businessID)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := f.svc.Add(ctx, f.customer.ID, uuid.Nil)
	assert.Equal(t, 400, apperrors.StatusOf(err))
}

func TestService_RemoveCompacts(t *testing.T) {
	f := newFixture(t, 4)
	ctx := context.Background()
	f.addAll(t)

	b := f.businesses[1]
	require.NoError(t, f.store.Transactions().Create(ctx, &models.Transaction{
		CustomerID: f.customer.ID, BusinessID: b.ID, Type: models.TxStamp,
		Category: models.CategoryEarn, Value: 1, Status: models.TxStatusCompleted,
	}))

	err := f.svc.Remove(ctx, f.customer.ID, RemoveRequest{BusinessID: b.ID, Password: "secret1"})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"A": 0, "C": 1, "D": 2}, f.order(t))

	txs, err := f.store.Transactions().ListByCustomerAndBusiness(ctx, f.customer.ID, b.ID)
	require.NoError(t, err)
	assert.Empty(t, txs)

	// Re-adding starts a fresh card at the end.
	rel, err := f.svc.Add(ctx, f.customer.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, rel.OrderIndex)
	assert.Zero(t, rel.Stamps)
}

func TestService_RemoveErrors(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	_, err := f.svc.Add(ctx, f.customer.ID, f.businesses[0].ID)
	require.NoError(t, err)

	tests := []struct {
		name string
		req  RemoveRequest
		want error
	}{
		{"wrong password", RemoveRequest{BusinessID: f.businesses[0].ID, Password: "nope"}, apperrors.ErrInvalidCredentials},
		{"not in wallet", RemoveRequest{BusinessID: f.businesses[1].ID, Password: "secret1"}, apperrors.ErrNotInWallet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, f.svc.Remove(ctx, f.customer.ID, tt.req), tt.want)
		})
	}

	err = f.svc.Remove(ctx, f.customer.ID, RemoveRequest{})
	de, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Contains(t, de.Fields, "businessId")
	assert.Contains(t, de.Fields, "password")

	assert.Equal(t, map[string]int{"A": 0}, f.order(t))
}

func TestService_RemoveRollsBack(t *testing.T) {
	f := newFixture(t, 3)
	ctx := context.Background()
	f.addAll(t)

	f.store.Fail("Wallets.CompactAfter", errors.New("boom"))
	err := f.svc.Remove(ctx, f.customer.ID, RemoveRequest{BusinessID: f.businesses[0].ID, Password: "secret1"})
	require.Error(t, err)
	f.store.Fail("Wallets.CompactAfter", nil)

	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2}, f.order(t))
}

func TestService_Reorder(t *testing.T) {
	tests := []struct {
		name  string
		order func(b []*models.Business) []uuid.UUID
		want  map[string]int
	}{
		{
			name:  "full permutation",
			order: func(b []*models.Business) []uuid.UUID { return []uuid.UUID{b[2].ID, b[0].ID, b[1].ID} },
			want:  map[string]int{"C": 0, "A": 1, "B": 2},
		},
		{
			name:  "partial list appends the rest",
			order: func(b []*models.Business) []uuid.UUID { return []uuid.UUID{b[1].ID} },
			want:  map[string]int{"B": 0, "A": 1, "C": 2},
		},
		{
			name: "unknown and duplicate ids ignored",
			order: func(b []*models.Business) []uuid.UUID {
				return []uuid.UUID{uuid.New(), b[2].ID, b[2].ID, b[0].ID}
			},
			want: map[string]int{"C": 0, "A": 1, "B": 2},
		},
		{
			name:  "empty list keeps order",
			order: func(b []*models.Business) []uuid.UUID { return []uuid.UUID{} },
			want:  map[string]int{"A": 0, "B": 1, "C": 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 3)
			f.addAll(t)

			cards, err := f.svc.Reorder(context.Background(), f.customer.ID, tt.order(f.businesses))
			require.NoError(t, err)
			assertDense(t, cards)
			assert.Equal(t, tt.want, f.order(t))
		})
	}
}

func TestService_ReorderRequiresList(t *testing.T) {
	f := newFixture(t, 1)
	_, err := f.svc.Reorder(context.Background(), f.customer.ID, nil)
	assert.Equal(t, 400, apperrors.StatusOf(err))
}

func TestEnsure(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	_, err := f.svc.Add(ctx, f.customer.ID, f.businesses[0].ID)
	require.NoError(t, err)

	var created bool
	err = f.store.ExecuteInTransaction(ctx, func(tx repositories.Store) error {
		var err error
		_, created, err = Ensure(ctx, tx, f.customer.ID, f.businesses[1])
		return err
	})
	require.NoError(t, err)
	assert.True(t, created)

	err = f.store.ExecuteInTransaction(ctx, func(tx repositories.Store) error {
		var err error
		_, created, err = Ensure(ctx, tx, f.customer.ID, f.businesses[1])
		return err
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, map[string]int{"A": 0, "B": 1}, f.order(t))
}
