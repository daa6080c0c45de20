// Package importer loads businesses, their campaigns and customer
// participations from a fixture document in one database transaction.
package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "counpaign/internal/errors"
	"counpaign/internal/logging"
	"counpaign/internal/models"
	"counpaign/internal/repositories"
	"counpaign/internal/utils"
	"counpaign/internal/validation"

	"github.com/sirupsen/logrus"
)

// Counts summarizes what an import changed.
type Counts struct {
	BusinessesCreated     int `json:"businessesCreated"`
	BusinessesUpdated     int `json:"businessesUpdated"`
	CampaignsCreated      int `json:"campaignsCreated"`
	CampaignsUpdated      int `json:"campaignsUpdated"`
	ParticipationsCreated int `json:"participationsCreated"`
	ParticipationsSkipped int `json:"participationsSkipped"`
}

type Importer struct {
	store repositories.Store
	now   func() time.Time
}

func New(store repositories.Store) *Importer {
	return &Importer{store: store, now: time.Now}
}

// Import upserts businesses by email and their campaigns by title, then
// creates participations that do not exist yet. Nothing is written if any
// record fails.
func (im *Importer) Import(ctx context.Context, f Fixture) (*Counts, error) {
	if err := im.validate(f); err != nil {
		return nil, err
	}

	counts := &Counts{}
	err := im.store.ExecuteInTransaction(ctx, func(tx repositories.Store) error {
		for i := range f.Businesses {
			bf := f.Businesses[i]
			business, created, err := im.upsertBusiness(ctx, tx, bf)
			if err != nil {
				return fmt.Errorf("businesses[%d]: %w", i, err)
			}
			if created {
				counts.BusinessesCreated++
			} else {
				counts.BusinessesUpdated++
			}

			for j, cf := range bf.Campaigns {
				created, err := im.upsertCampaign(ctx, tx, business, cf)
				if err != nil {
					return fmt.Errorf("businesses[%d].campaigns[%d]: %w", i, j, err)
				}
				if created {
					counts.CampaignsCreated++
				} else {
					counts.CampaignsUpdated++
				}
			}
		}

		for i, pf := range f.Participations {
			created, err := im.createParticipation(ctx, tx, pf)
			if err != nil {
				return fmt.Errorf("participations[%d]: %w", i, err)
			}
			if created {
				counts.ParticipationsCreated++
			} else {
				counts.ParticipationsSkipped++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.L().WithFields(logrus.Fields{
		"businesses_created":     counts.BusinessesCreated,
		"businesses_updated":     counts.BusinessesUpdated,
		"campaigns_created":      counts.CampaignsCreated,
		"campaigns_updated":      counts.CampaignsUpdated,
		"participations_created": counts.ParticipationsCreated,
		"participations_skipped": counts.ParticipationsSkipped,
	}).Info("fixture imported")
	return counts, nil
}

func (im *Importer) validate(f Fixture) error {
	v := validation.New()
	for i, b := range f.Businesses {
		prefix := fmt.Sprintf("businesses[%d].", i)
		v.Required(prefix+"companyName", b.CompanyName)
		v.Email(prefix+"email", strings.ToLower(strings.TrimSpace(b.Email)))
		for j, c := range b.Campaigns {
			cp := fmt.Sprintf("%scampaigns[%d].", prefix, j)
			v.Required(cp+"title", c.Title)
			v.OneOf(cp+"rewardType", c.RewardType, models.RewardPoints, models.RewardStamp)
			v.Check(c.EndDate != nil || c.ValidDays > 0, cp+"endDate", "is required")
		}
	}
	for i, p := range f.Participations {
		prefix := fmt.Sprintf("participations[%d].", i)
		v.Check(p.CustomerPhone != "" || p.CustomerEmail != "", prefix+"customerPhone", "customerPhone or customerEmail is required")
		v.Required(prefix+"businessEmail", p.BusinessEmail)
		v.Required(prefix+"campaignTitle", p.CampaignTitle)
		if p.Status != "" {
			v.OneOf(prefix+"status", p.Status, models.ParticipationJoined, models.ParticipationWon, models.ParticipationCompleted)
		}
	}
	return v.Err()
}

func (im *Importer) upsertBusiness(ctx context.Context, tx repositories.Store, bf BusinessFixture) (*models.Business, bool, error) {
	email := strings.ToLower(strings.TrimSpace(bf.Email))
	business, err := tx.Businesses().GetByEmail(ctx, email)
	created := errors.Is(err, repositories.ErrNotFound)
	if err != nil && !created {
		return nil, false, fmt.Errorf("look up business: %w", err)
	}
	if created {
		if bf.Password == "" {
			return nil, false, apperrors.Validation("password is required for a new business")
		}
		business = &models.Business{Email: email}
	}

	business.CompanyName = bf.CompanyName
	business.Category = bf.Category
	business.City = bf.City
	business.District = bf.District
	business.Neighborhood = bf.Neighborhood
	business.Logo = bf.Logo
	business.CardColor = bf.CardColor
	business.CardIcon = bf.CardIcon
	business.Settings = bf.Settings
	business.StampsTarget = bf.StampsTarget
	if business.StampsTarget <= 0 {
		business.StampsTarget = models.DefaultStampsTarget
	}
	if bf.Password != "" {
		hash, err := utils.HashPassword(bf.Password)
		if err != nil {
			return nil, false, fmt.Errorf("hash password: %w", err)
		}
		business.Password = hash
	}

	if created {
		err = tx.Businesses().Create(ctx, business)
	} else {
		err = tx.Businesses().Update(ctx, business)
	}
	if err != nil {
		return nil, false, fmt.Errorf("save business: %w", err)
	}
	return business, created, nil
}

func (im *Importer) upsertCampaign(ctx context.Context, tx repositories.Store, business *models.Business, cf CampaignFixture) (bool, error) {
	c, err := tx.Campaigns().GetByTitle(ctx, business.ID, cf.Title)
	created := errors.Is(err, repositories.ErrNotFound)
	if err != nil && !created {
		return false, fmt.Errorf("look up campaign: %w", err)
	}
	if created {
		c = &models.Campaign{BusinessID: business.ID, Title: cf.Title}
	}

	now := im.now().UTC()
	c.ShortDescription = cf.ShortDescription
	c.HeaderImage = cf.HeaderImage
	c.Content = cf.Content
	c.RewardType = cf.RewardType
	c.RewardValue = models.DefaultRewardValue
	if cf.RewardValue != nil {
		c.RewardValue = *cf.RewardValue
	}
	c.RewardValidityDays = models.DefaultRewardValidityDays
	if cf.RewardValidityDays != nil {
		c.RewardValidityDays = *cf.RewardValidityDays
	}
	c.Icon = cf.Icon
	if c.Icon == "" {
		c.Icon = models.DefaultCampaignIcon
	}
	c.IsPromoted = cf.IsPromoted
	c.DisplayOrder = cf.DisplayOrder
	// An updated campaign keeps its start date unless the fixture names one.
	if cf.StartDate != nil {
		c.StartDate = *cf.StartDate
	} else if created {
		c.StartDate = now
	}
	if cf.EndDate != nil {
		c.EndDate = *cf.EndDate
	} else {
		c.EndDate = c.StartDate.AddDate(0, 0, cf.ValidDays)
	}

	if created {
		err = tx.Campaigns().Create(ctx, c)
	} else {
		err = tx.Campaigns().Update(ctx, c)
	}
	if err != nil {
		return false, fmt.Errorf("save campaign: %w", err)
	}
	return created, nil
}

func (im *Importer) findCustomer(ctx context.Context, tx repositories.Store, pf ParticipationFixture) (*models.Customer, error) {
	if pf.CustomerPhone != "" {
		return tx.Customers().GetByPhone(ctx, strings.TrimSpace(pf.CustomerPhone))
	}
	return tx.Customers().GetByEmail(ctx, strings.ToLower(strings.TrimSpace(pf.CustomerEmail)))
}

func (im *Importer) createParticipation(ctx context.Context, tx repositories.Store, pf ParticipationFixture) (bool, error) {
	customer, err := im.findCustomer(ctx, tx, pf)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, apperrors.ErrCustomerNotFound
	}
	if err != nil {
		return false, fmt.Errorf("look up customer: %w", err)
	}

	business, err := tx.Businesses().GetByEmail(ctx, strings.ToLower(strings.TrimSpace(pf.BusinessEmail)))
	if errors.Is(err, repositories.ErrNotFound) {
		return false, apperrors.ErrBusinessNotFound
	}
	if err != nil {
		return false, fmt.Errorf("look up business: %w", err)
	}

	campaign, err := tx.Campaigns().GetByTitle(ctx, business.ID, pf.CampaignTitle)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, apperrors.ErrCampaignNotFound
	}
	if err != nil {
		return false, fmt.Errorf("look up campaign: %w", err)
	}

	if _, err := tx.Participations().Get(ctx, customer.ID, campaign.ID); err == nil {
		return false, nil
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return false, fmt.Errorf("look up participation: %w", err)
	}

	now := im.now().UTC()
	p := &models.Participation{
		CustomerID: customer.ID,
		CampaignID: campaign.ID,
		BusinessID: business.ID,
		Status:     pf.Status,
		JoinedAt:   now,
	}
	if p.Status == "" {
		p.Status = models.ParticipationJoined
	}
	if p.Status != models.ParticipationJoined {
		p.WonAt = &now
	}
	if err := tx.Participations().Create(ctx, p); err != nil {
		return false, fmt.Errorf("create participation: %w", err)
	}
	return true, nil
}
