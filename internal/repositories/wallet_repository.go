package repositories

import (
	"context"

	"counpaign/internal/models"

	"github.com/google/uuid"
)

// WalletRepository defines the interface for wallet relation operations.
// Ordering writes are expected to run inside ExecuteInTransaction with the
// customer row locked.
type WalletRepository interface {
	// Create inserts a relation. An existing (customer, business) pair
	// returns ErrDuplicate.
	Create(ctx context.Context, relation *models.CustomerBusiness) error

	Get(ctx context.Context, customerID, businessID uuid.UUID) (*models.CustomerBusiness, error)

	// GetForUpdate loads and row-locks a relation.
	GetForUpdate(ctx context.Context, customerID, businessID uuid.UUID) (*models.CustomerBusiness, error)

	// ListByCustomer returns the customer's relations by ascending
	// orderIndex with their business preloaded.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.CustomerBusiness, error)

	// NextOrderIndex returns max(orderIndex)+1, or 0 for an empty wallet.
	NextOrderIndex(ctx context.Context, customerID uuid.UUID) (int, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// CompactAfter decrements every orderIndex greater than orderIndex.
	CompactAfter(ctx context.Context, customerID uuid.UUID, orderIndex int) error

	SetOrderIndex(ctx context.Context, id uuid.UUID, orderIndex int) error

	// SaveCounters persists points, stamps, giftsCount and totalVisits.
	SaveCounters(ctx context.Context, relation *models.CustomerBusiness) error
}
