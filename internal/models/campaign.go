package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RewardPoints = "points"
	RewardStamp  = "stamp"
)

const (
	DefaultRewardValue        = 1
	DefaultRewardValidityDays = 30
	DefaultCampaignIcon       = "star_rounded"
)

type Campaign struct {
	Base
	BusinessID         uuid.UUID `gorm:"type:uuid;not null;index:idx_campaign_business_order,priority:1" json:"businessId"`
	Business           *Business `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
	Title              string    `gorm:"not null" json:"title"`
	ShortDescription   string    `gorm:"not null" json:"shortDescription"`
	HeaderImage        string    `json:"headerImage"`
	Content            string    `json:"content"`
	RewardType         string    `gorm:"not null;default:'points'" json:"rewardType"`
	RewardValue        int       `gorm:"not null" json:"rewardValue"`
	RewardValidityDays int       `gorm:"not null;default:30" json:"rewardValidityDays"`
	Icon               string    `gorm:"not null;default:'star_rounded'" json:"icon"`
	IsPromoted         bool      `gorm:"not null;default:false" json:"isPromoted"`
	DisplayOrder       int       `gorm:"not null;default:0;index:idx_campaign_business_order,priority:2" json:"displayOrder"`
	StartDate          time.Time `gorm:"not null" json:"startDate"`
	EndDate            time.Time `gorm:"not null" json:"endDate"`
}
