package models

// DefaultStampsTarget applies when a business has not set one.
const DefaultStampsTarget = 5

type Business struct {
	Base
	CompanyName  string           `gorm:"not null" json:"companyName"`
	Email        string           `gorm:"uniqueIndex;not null" json:"email"`
	Password     string           `json:"-"`
	Category     string           `json:"category"`
	City         string           `json:"city"`
	District     string           `json:"district"`
	Neighborhood string           `json:"neighborhood"`
	Logo         string           `json:"logo"`
	CardColor    string           `json:"cardColor"`
	CardIcon     string           `json:"cardIcon"`
	Settings     BusinessSettings `gorm:"type:jsonb" json:"settings"`
	StampsTarget int              `gorm:"not null;default:5" json:"stampsTarget"`
	Rating       float64          `gorm:"not null;default:0" json:"rating"`
}

// EffectiveStampsTarget never returns less than one.
func (b *Business) EffectiveStampsTarget() int {
	if b.StampsTarget <= 0 {
		return DefaultStampsTarget
	}
	return b.StampsTarget
}
