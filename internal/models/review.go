package models

import "github.com/google/uuid"

type Review struct {
	Base
	CustomerID    uuid.UUID `gorm:"type:uuid;not null;index" json:"customerId"`
	BusinessID    uuid.UUID `gorm:"type:uuid;not null;index" json:"businessId"`
	Business      *Business `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"transactionId"`
	Rating        int       `gorm:"not null" json:"rating"`
	Comment       string    `json:"comment"`
}
