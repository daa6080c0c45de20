package campaign

import "time"

// CreateRequest is the body of POST /api/campaigns. The owning business
// comes from the token.
type CreateRequest struct {
	Title              string     `json:"title" validate:"required"`
	ShortDescription   string     `json:"shortDescription" validate:"required"`
	HeaderImage        string     `json:"headerImage"`
	Content            string     `json:"content" validate:"required"`
	RewardType         string     `json:"rewardType" validate:"required,oneof=points stamp"`
	RewardValue        *int       `json:"rewardValue" validate:"omitempty,gte=0"`
	RewardValidityDays *int       `json:"rewardValidityDays" validate:"omitempty,gte=1"`
	Icon               string     `json:"icon"`
	IsPromoted         bool       `json:"isPromoted"`
	DisplayOrder       int        `json:"displayOrder"`
	StartDate          *time.Time `json:"startDate"`
	EndDate            *time.Time `json:"endDate" validate:"required"`
}

// Patch lists the fields an owner may change. Nil fields are left alone and
// anything not listed here is ignored.
type Patch struct {
	Title              *string    `json:"title"`
	ShortDescription   *string    `json:"shortDescription"`
	HeaderImage        *string    `json:"headerImage"`
	Content            *string    `json:"content"`
	RewardType         *string    `json:"rewardType"`
	RewardValue        *int       `json:"rewardValue"`
	RewardValidityDays *int       `json:"rewardValidityDays"`
	Icon               *string    `json:"icon"`
	IsPromoted         *bool      `json:"isPromoted"`
	DisplayOrder       *int       `json:"displayOrder"`
	StartDate          *time.Time `json:"startDate"`
	EndDate            *time.Time `json:"endDate"`
}
