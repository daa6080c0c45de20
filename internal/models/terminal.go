package models

import "github.com/google/uuid"

// Terminal is a point-of-sale device. Terminals are deactivated, never deleted.
type Terminal struct {
	Base
	TerminalName string    `gorm:"not null" json:"terminalName"`
	TerminalID   string    `gorm:"uniqueIndex;not null" json:"terminalId"`
	Password     string    `gorm:"not null" json:"-"`
	BusinessID   uuid.UUID `gorm:"type:uuid;not null;index" json:"businessId"`
	IsActive     bool      `gorm:"not null;default:true" json:"isActive"`
}
