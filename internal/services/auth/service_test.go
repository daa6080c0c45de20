package auth

import (
	"context"
	"testing"
	"time"

	apperrors "counpaign/internal/errors"
	"counpaign/internal/models"
	"counpaign/internal/repositories"
	"counpaign/internal/repositories/memstore"
	"counpaign/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var tokens = utils.TokenConfig{Secret: "test-secret", TTL: 7 * 24 * time.Hour, Issuer: "counpaign-api"}

func init() {
	utils.BcryptCost = bcrypt.MinCost
}

func validRegistration() RegisterRequest {
	return RegisterRequest{
		Name:        "Ayşe",
		Surname:     "Yılmaz",
		PhoneNumber: "5321234567",
		Email:       "Ayse@Example.com ",
		Password:    "secret1",
	}
}

func TestService_Register(t *testing.T) {
	store := memstore.New()
	svc := NewService(store, tokens)
	ctx := context.Background()

	res, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	user, ok := res.User.(CustomerSummary)
	require.True(t, ok)
	assert.Equal(t, "ayse@example.com", user.Email)
	assert.Equal(t, models.RoleCustomer, user.Role)

	claims, err := svc.ParseToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.ID)
	assert.Equal(t, models.RoleCustomer, claims.Role)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)

	stored, err := store.Customers().GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.Password)
	assert.True(t, utils.CheckPassword(stored.Password, "secret1"))
}

func TestService_RegisterDuplicates(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterRequest)
		wantErr error
	}{
		{"same email", func(r *RegisterRequest) { r.PhoneNumber = "5329999999" }, apperrors.ErrDuplicateEmail},
		{"same phone", func(r *RegisterRequest) { r.Email = "other@example.com" }, apperrors.ErrDuplicatePhone},
		{"both checks email first", func(r *RegisterRequest) {}, apperrors.ErrDuplicateEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(memstore.New(), tokens)
			_, err := svc.Register(context.Background(), validRegistration())
			require.NoError(t, err)

			second := validRegistration()
			tt.mutate(&second)
			_, err = svc.Register(context.Background(), second)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// racingStore lets a rival registration land between the duplicate checks
// and the insert.
type racingStore struct {
	*memstore.Store
	customers *racingCustomers
}

func (s racingStore) Customers() repositories.CustomerRepository { return s.customers }

type racingCustomers struct {
	repositories.CustomerRepository
	rival *models.Customer
}

func (r *racingCustomers) Create(ctx context.Context, c *models.Customer) error {
	if r.rival != nil {
		rival := r.rival
		r.rival = nil
		if err := r.CustomerRepository.Create(ctx, rival); err != nil {
			return err
		}
		// gorm reports the bare sentinel without the constraint name.
		return repositories.ErrDuplicate
	}
	return r.CustomerRepository.Create(ctx, c)
}

func TestService_RegisterLostRace(t *testing.T) {
	tests := []struct {
		name    string
		rival   models.Customer
		wantErr error
	}{
		{"phone taken", models.Customer{Name: "Ali", Surname: "Demir", PhoneNumber: "5321234567", Email: "ali@example.com", Password: "x"}, apperrors.ErrDuplicatePhone},
		{"email taken", models.Customer{Name: "Ali", Surname: "Demir", PhoneNumber: "5329999999", Email: "ayse@example.com", Password: "x"}, apperrors.ErrDuplicateEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := memstore.New()
			rival := tt.rival
			store := racingStore{Store: mem, customers: &racingCustomers{CustomerRepository: mem.Customers(), rival: &rival}}

			_, err := NewService(store, tokens).Register(context.Background(), validRegistration())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_RegisterValidation(t *testing.T) {
	svc := NewService(memstore.New(), tokens)

	req := validRegistration()
	req.PhoneNumber = "0532123456"
	req.Password = "123"

	_, err := svc.Register(context.Background(), req)
	de, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidation, de.Code)
	assert.Contains(t, de.Fields, "phoneNumber")
	assert.Contains(t, de.Fields, "password")
}

func TestService_Login(t *testing.T) {
	svc := NewService(memstore.New(), tokens)
	ctx := context.Background()
	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     LoginRequest
		wantErr error
	}{
		{"success", LoginRequest{PhoneNumber: "5321234567", Password: "secret1"}, nil},
		{"unknown phone", LoginRequest{PhoneNumber: "5320000000", Password: "secret1"}, apperrors.ErrCustomerNotFound},
		{"wrong password", LoginRequest{PhoneNumber: "5321234567", Password: "wrong!"}, apperrors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Login(ctx, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, res.Token)
		})
	}
}

func TestService_LoginBusinessAndTerminal(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewServiceWithClock(store, tokens, func() time.Time { return fixed })

	hash, err := utils.HashPassword("cafe123")
	require.NoError(t, err)
	business := &models.Business{CompanyName: "Kahve Durağı", Email: "kahve@example.com", Password: hash}
	require.NoError(t, store.Businesses().Create(ctx, business))

	pin, err := utils.HashPassword("1234")
	require.NoError(t, err)
	terminal := &models.Terminal{TerminalName: "Kasa 1", TerminalID: "T-001", Password: pin, BusinessID: business.ID, IsActive: true}
	require.NoError(t, store.Terminals().Create(ctx, terminal))

	res, err := svc.LoginBusiness(ctx, BusinessLoginRequest{Email: "KAHVE@example.com", Password: "cafe123"})
	require.NoError(t, err)
	claims, err := utils.ParseToken(utils.TokenConfig{Secret: tokens.Secret}, res.Token)
	if assert.Error(t, err, "token issued at a fixed past instant must be expired by now") {
		assert.Nil(t, claims)
	}

	_, err = svc.LoginBusiness(ctx, BusinessLoginRequest{Email: "kahve@example.com", Password: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	res, err = svc.LoginTerminal(ctx, TerminalLoginRequest{TerminalID: "T-001", Password: "1234"})
	require.NoError(t, err)
	assert.Equal(t, business.ID, res.User.(TerminalSummary).BusinessID)

	_, err = store.Terminals().SetActive(ctx, terminal.ID, business.ID, false)
	require.NoError(t, err)
	_, err = svc.LoginTerminal(ctx, TerminalLoginRequest{TerminalID: "T-001", Password: "1234"})
	assert.ErrorIs(t, err, apperrors.ErrTerminalInactive)
}

func TestService_ParseTokenRejectsGarbage(t *testing.T) {
	svc := NewService(memstore.New(), tokens)
	_, err := svc.ParseToken("garbage")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
