package models

import "github.com/google/uuid"

// Ledger entry types.
const (
	TxStamp      = "STAMP"
	TxPoint      = "POINT"
	TxGiftRedeem = "GIFT_REDEEM"
)

// Ledger categories: earn and spend.
const (
	CategoryEarn  = "KAZANIM"
	CategorySpend = "HARCAMA"
)

const TxStatusCompleted = "COMPLETED"

// Transaction is an append-only ledger entry. ReviewID is the only column
// written after insert, and only once.
type Transaction struct {
	Base
	CustomerID uuid.UUID  `gorm:"type:uuid;not null;index:idx_tx_customer_business,priority:1" json:"customerId"`
	BusinessID uuid.UUID  `gorm:"type:uuid;not null;index:idx_tx_customer_business,priority:2" json:"businessId"`
	Business   *Business  `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
	Type       string     `gorm:"not null" json:"type"`
	Category   string     `gorm:"not null" json:"category"`
	Value      int        `gorm:"not null;default:0" json:"value"`
	Status     string     `gorm:"not null;default:'COMPLETED'" json:"status"`
	ReviewID   *uuid.UUID `gorm:"type:uuid" json:"reviewId,omitempty"`
	Review     *Review    `gorm:"foreignKey:ReviewID" json:"review,omitempty"`
}

// CategoryFor returns the ledger category for a transaction type.
func CategoryFor(txType string) string {
	if txType == TxGiftRedeem {
		return CategorySpend
	}
	return CategoryEarn
}
