package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"counpaign/internal/models"

	"gopkg.in/yaml.v3"
)

// Fixture is the import document. The same shape is accepted as YAML or JSON.
type Fixture struct {
	Businesses     []BusinessFixture      `yaml:"businesses" json:"businesses"`
	Participations []ParticipationFixture `yaml:"participations" json:"participations"`
}

type BusinessFixture struct {
	CompanyName  string                  `yaml:"companyName" json:"companyName"`
	Email        string                  `yaml:"email" json:"email"`
	Password     string                  `yaml:"password" json:"password"`
	Category     string                  `yaml:"category" json:"category"`
	City         string                  `yaml:"city" json:"city"`
	District     string                  `yaml:"district" json:"district"`
	Neighborhood string                  `yaml:"neighborhood" json:"neighborhood"`
	Logo         string                  `yaml:"logo" json:"logo"`
	CardColor    string                  `yaml:"cardColor" json:"cardColor"`
	CardIcon     string                  `yaml:"cardIcon" json:"cardIcon"`
	Settings     models.BusinessSettings `yaml:"settings" json:"settings"`
	StampsTarget int                     `yaml:"stampsTarget" json:"stampsTarget"`
	Campaigns    []CampaignFixture       `yaml:"campaigns" json:"campaigns"`
}

type CampaignFixture struct {
	Title              string     `yaml:"title" json:"title"`
	ShortDescription   string     `yaml:"shortDescription" json:"shortDescription"`
	HeaderImage        string     `yaml:"headerImage" json:"headerImage"`
	Content            string     `yaml:"content" json:"content"`
	RewardType         string     `yaml:"rewardType" json:"rewardType"`
	RewardValue        *int       `yaml:"rewardValue" json:"rewardValue"`
	RewardValidityDays *int       `yaml:"rewardValidityDays" json:"rewardValidityDays"`
	Icon               string     `yaml:"icon" json:"icon"`
	IsPromoted         bool       `yaml:"isPromoted" json:"isPromoted"`
	DisplayOrder       int        `yaml:"displayOrder" json:"displayOrder"`
	StartDate          *time.Time `yaml:"startDate" json:"startDate"`
	EndDate            *time.Time `yaml:"endDate" json:"endDate"`
	// ValidDays sets EndDate relative to the import time when EndDate is absent.
	ValidDays int `yaml:"validDays" json:"validDays"`
}

// ParticipationFixture names its customer by phone or email and its campaign
// by business email and title.
type ParticipationFixture struct {
	CustomerPhone string `yaml:"customerPhone" json:"customerPhone"`
	CustomerEmail string `yaml:"customerEmail" json:"customerEmail"`
	BusinessEmail string `yaml:"businessEmail" json:"businessEmail"`
	CampaignTitle string `yaml:"campaignTitle" json:"campaignTitle"`
	Status        string `yaml:"status" json:"status"`
}

// ParseYAML decodes a YAML fixture.
func ParseYAML(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode yaml fixture: %w", err)
	}
	return &f, nil
}

// ParseJSON decodes a JSON fixture.
func ParseJSON(data []byte) (*Fixture, error) {
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode json fixture: %w", err)
	}
	return &f, nil
}

// LoadFile reads a YAML fixture from disk.
func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return ParseYAML(data)
}
