package models

import (
	"time"

	"github.com/google/uuid"
)

// Genders accepted on a customer profile. Empty means unspecified.
var Genders = []string{"male", "female", "other", ""}

type Customer struct {
	Base
	Name         string           `gorm:"not null" json:"name"`
	Surname      string           `gorm:"not null" json:"surname"`
	PhoneNumber  string           `gorm:"uniqueIndex;not null" json:"phoneNumber"`
	Email        string           `gorm:"uniqueIndex;not null" json:"email"`
	Password     string           `gorm:"not null" json:"-"`
	Role         string           `gorm:"default:'customer';not null" json:"role"`
	ProfileImage string           `json:"profileImage"`
	Gender       string           `json:"gender"`
	BirthDate    *time.Time       `json:"birthDate,omitempty"`
	Rewards      []CustomerReward `gorm:"foreignKey:CustomerID" json:"rewards"`
}

// CustomerReward is a legacy per-business points balance credited by
// terminal scans.
type CustomerReward struct {
	Base
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reward_customer_business" json:"-"`
	BusinessID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reward_customer_business" json:"businessId"`
	Points      int       `gorm:"not null;default:0" json:"points"`
	LastUpdated time.Time `json:"lastUpdated"`
}
