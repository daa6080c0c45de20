package wallet

import (
	"context"

	"counpaign/internal/models"

	"github.com/google/uuid"
)

// Service defines the wallet operations available to a customer.
type Service interface {
	Add(ctx context.Context, customerID, businessID uuid.UUID) (*models.CustomerBusiness, error)
	Remove(ctx context.Context, customerID uuid.UUID, req RemoveRequest) error
	Reorder(ctx context.Context, customerID uuid.UUID, order []uuid.UUID) ([]Card, error)
	List(ctx context.Context, customerID uuid.UUID) ([]Card, error)
}
