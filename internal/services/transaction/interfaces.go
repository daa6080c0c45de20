package transaction

import (
	"context"

	"counpaign/internal/models"

	"github.com/google/uuid"
)

// Service records loyalty activity in the ledger.
type Service interface {
	// Process applies one STAMP, POINT or GIFT_REDEEM to the customer's card
	// at a business and appends the matching ledger entry.
	Process(ctx context.Context, actor models.Actor, req ProcessRequest) (*ProcessResult, error)
	History(ctx context.Context, customerID, businessID uuid.UUID) ([]models.Transaction, error)
	ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]Entry, error)
}
