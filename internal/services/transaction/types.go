package transaction

import (
	"time"

	"counpaign/internal/models"

	"github.com/google/uuid"
)

// ProcessRequest is the body of POST /api/transactions/process. Type
// defaults to STAMP and Value to 1.
type ProcessRequest struct {
	CustomerID uuid.UUID `json:"customerId"`
	BusinessID uuid.UUID `json:"businessId"`
	Type       string    `json:"type"`
	Value      *int      `json:"value"`
}

// ProcessResult carries the card counters after the entry is applied.
type ProcessResult struct {
	Message       string    `json:"message"`
	TransactionID uuid.UUID `json:"transactionId"`
	Stamps        int       `json:"stamps"`
	StampsTarget  int       `json:"stampsTarget"`
	GiftsCount    int       `json:"giftsCount"`
	Points        int       `json:"points"`
	TotalVisits   int       `json:"totalVisits"`
	GiftEarned    bool      `json:"giftEarned"`
}

// BusinessRef is the business projection shown next to a ledger entry.
type BusinessRef struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"companyName"`
	Logo        string    `json:"logo"`
	CardColor   string    `json:"cardColor"`
}

// ReviewRef is the review attached to a ledger entry, if any.
type ReviewRef struct {
	ID      uuid.UUID `json:"id"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
}

// Entry is a ledger entry in the customer's activity feed.
type Entry struct {
	ID         uuid.UUID    `json:"id"`
	BusinessID uuid.UUID    `json:"businessId"`
	Business   *BusinessRef `json:"business,omitempty"`
	Type       string       `json:"type"`
	Category   string       `json:"category"`
	Value      int          `json:"value"`
	Status     string       `json:"status"`
	Review     *ReviewRef   `json:"review,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
}

func newEntry(tx models.Transaction) Entry {
	e := Entry{
		ID:         tx.ID,
		BusinessID: tx.BusinessID,
		Type:       tx.Type,
		Category:   tx.Category,
		Value:      tx.Value,
		Status:     tx.Status,
		CreatedAt:  tx.CreatedAt,
	}
	if tx.Business != nil {
		e.Business = &BusinessRef{
			ID:          tx.Business.ID,
			CompanyName: tx.Business.CompanyName,
			Logo:        tx.Business.Logo,
			CardColor:   tx.Business.CardColor,
		}
	}
	if tx.Review != nil {
		e.Review = &ReviewRef{ID: tx.Review.ID, Rating: tx.Review.Rating, Comment: tx.Review.Comment}
	}
	return e
}
