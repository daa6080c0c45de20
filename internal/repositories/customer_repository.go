package repositories

import (
	"context"
	"time"

	"counpaign/internal/models"

	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer-related database operations
type CustomerRepository interface {
	// Create inserts a customer. Unique violations return ErrDuplicate.
	Create(ctx context.Context, customer *models.Customer) error

	// GetByID loads a customer together with its legacy rewards.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)

	// GetByIDForUpdate loads and row-locks a customer inside a transaction.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Customer, error)

	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*models.Customer, error)

	// UpdateProfile writes the editable profile columns only.
	UpdateProfile(ctx context.Context, customer *models.Customer) error

	// AddRewardPoints credits points on the legacy reward entry for a
	// business, creating it if missing, and returns the updated entry.
	AddRewardPoints(ctx context.Context, customerID, businessID uuid.UUID, points int, at time.Time) (*models.CustomerReward, error)
}
