package wallet

import (
	"counpaign/internal/models"
	"counpaign/internal/services/loyalty"

	"github.com/google/uuid"
)

// RemoveRequest is the body of a wallet removal.
type RemoveRequest struct {
	BusinessID uuid.UUID `json:"businessId"`
	Password   string    `json:"password"`
}

// Card is one wallet entry as the client renders it. ID is the business id.
type Card struct {
	ID           uuid.UUID `json:"id"`
	RelationID   uuid.UUID `json:"relationId"`
	CompanyName  string    `json:"companyName"`
	Category     string    `json:"category"`
	CardColor    string    `json:"cardColor"`
	CardIcon     string    `json:"cardIcon"`
	Points       int       `json:"points"`
	Stamps       int       `json:"stamps"`
	StampsTarget int       `json:"stampsTarget"`
	GiftsCount   int       `json:"giftsCount"`
	TotalVisits  int       `json:"totalVisits"`
	Value        string    `json:"value"`
	OrderIndex   int       `json:"orderIndex"`
}

func newCard(rel models.CustomerBusiness) Card {
	return Card{
		ID:           rel.BusinessID,
		RelationID:   rel.ID,
		CompanyName:  rel.Business.CompanyName,
		Category:     rel.Business.Category,
		CardColor:    rel.Business.CardColor,
		CardIcon:     rel.Business.CardIcon,
		Points:       rel.Points,
		Stamps:       rel.Stamps,
		StampsTarget: rel.StampsTarget,
		GiftsCount:   rel.GiftsCount,
		TotalVisits:  rel.TotalVisits,
		Value:        loyalty.DisplayValue(rel.Points),
		OrderIndex:   rel.OrderIndex,
	}
}
