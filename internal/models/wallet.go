package models

import "github.com/google/uuid"

// CustomerBusiness is a wallet relation: one loyalty card per customer and
// business. OrderIndex is dense and zero-based per customer.
type CustomerBusiness struct {
	Base
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wallet_customer_business;index:idx_wallet_order,priority:1" json:"customerId"`
	BusinessID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wallet_customer_business" json:"businessId"`
	Business     *Business `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
	Points       int       `gorm:"not null;default:0" json:"points"`
	Stamps       int       `gorm:"not null;default:0" json:"stamps"`
	StampsTarget int       `gorm:"not null;default:5" json:"stampsTarget"`
	GiftsCount   int       `gorm:"not null;default:0" json:"giftsCount"`
	TotalVisits  int       `gorm:"not null;default:0" json:"totalVisits"`
	OrderIndex   int       `gorm:"not null;default:0;index:idx_wallet_order,priority:2" json:"orderIndex"`
}

func (CustomerBusiness) TableName() string {
	return "customer_businesses"
}
