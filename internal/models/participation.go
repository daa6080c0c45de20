package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ParticipationJoined    = "JOINED"
	ParticipationWon       = "WON"
	ParticipationCompleted = "COMPLETED"
)

type Participation struct {
	Base
	CustomerID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_participation_customer_campaign" json:"customerId"`
	CampaignID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_participation_customer_campaign" json:"campaignId"`
	Campaign   *Campaign  `gorm:"foreignKey:CampaignID" json:"campaign,omitempty"`
	BusinessID uuid.UUID  `gorm:"type:uuid;not null;index" json:"businessId"`
	Business   *Business  `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
	Status     string     `gorm:"not null;default:'JOINED'" json:"status"`
	JoinedAt   time.Time  `gorm:"not null" json:"joinedAt"`
	WonAt      *time.Time `json:"wonAt,omitempty"`
}
