// Package campaign is the registry of business campaigns.
package campaign

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
	"counpaign/internal/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Service interface {
	Create(ctx context.Context, businessID uuid.UUID, req CreateRequest) (*models.Campaign, error)
	Update(ctx context.Context, businessID, id uuid.UUID, patch Patch) (*models.Campaign, error)
	Delete(ctx context.Context, businessID, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*models.Campaign, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.Campaign, error)
	List(ctx context.Context, promotedOnly bool) ([]models.Campaign, error)
}

type service struct {
	store repositories.Store
	now   func() time.Time
}

func NewService(store repositories.Store) Service {
	return &service{store: store, now: time.Now}
}

// check validates the rules shared by create and update.
func check(c *models.Campaign) error {
	v := validation.New()
	v.Required("title", c.Title)
	v.Required("shortDescription", c.ShortDescription)
	v.Required("content", c.Content)
	v.OneOf("rewardType", c.RewardType, models.RewardPoints, models.RewardStamp)
	v.Check(c.RewardValue >= 0, "rewardValue", "must not be negative")
	v.Check(c.RewardValidityDays >= 1, "rewardValidityDays", "must be at least 1")
	v.After("endDate", c.EndDate, c.StartDate, "startDate")
	return v.Err()
}

func (s *service) Create(ctx context.Context, businessID uuid.UUID, req CreateRequest) (*models.Campaign, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.ShortDescription = strings.TrimSpace(req.ShortDescription)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	c := &models.Campaign{
		BusinessID:         businessID,
		Title:              req.Title,
		ShortDescription:   req.ShortDescription,
		HeaderImage:        req.HeaderImage,
		Content:            req.Content,
		RewardType:         req.RewardType,
		RewardValue:        models.DefaultRewardValue,
		RewardValidityDays: models.DefaultRewardValidityDays,
		Icon:               req.Icon,
		IsPromoted:         req.IsPromoted,
		DisplayOrder:       req.DisplayOrder,
		StartDate:          s.now().UTC(),
		EndDate:            *req.EndDate,
	}
	if req.RewardValue != nil {
		c.RewardValue = *req.RewardValue
	}
	if req.RewardValidityDays != nil {
		c.RewardValidityDays = *req.RewardValidityDays
	}
	if c.Icon == "" {
		c.Icon = models.DefaultCampaignIcon
	}
	if req.StartDate != nil {
		c.StartDate = *req.StartDate
	}
	if err := check(c); err != nil {
		return nil, err
	}

	if err := s.store.Campaigns().Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}

	logging.L().WithFields(logrus.Fields{
		"campaign_id": c.ID,
		"business_id": businessID,
	}).Info("campaign created")
	return c, nil
}

func (p Patch) apply(c *models.Campaign) {
	if p.Title != nil {
		c.Title = strings.TrimSpace(*p.Title)
	}
	if p.ShortDescription != nil {
		c.ShortDescription = strings.TrimSpace(*p.ShortDescription)
	}
	if p.HeaderImage != nil {
		c.HeaderImage = *p.HeaderImage
	}
	if p.Content != nil {
		c.Content = *p.Content
	}
	if p.RewardType != nil {
		c.RewardType = *p.RewardType
	}
	if p.RewardValue != nil {
		c.RewardValue = *p.RewardValue
	}
	if p.RewardValidityDays != nil {
		c.RewardValidityDays = *p.RewardValidityDays
	}
	if p.Icon != nil {
		c.Icon = *p.Icon
	}
	if p.IsPromoted != nil {
		c.IsPromoted = *p.IsPromoted
	}
	if p.DisplayOrder != nil {
		c.DisplayOrder = *p.DisplayOrder
	}
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		c.EndDate = *p.EndDate
	}
}

// owned loads a campaign and hides it from anyone but its business.
func (s *service) owned(ctx context.Context, businessID, id uuid.UUID) (*models.Campaign, error) {
	c, err := s.store.Campaigns().GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrCampaignNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load campaign: %w", err)
	}
	if c.BusinessID != businessID {
		return nil, apperrors.ErrCampaignNotFound
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, businessID, id uuid.UUID, patch Patch) (*models.Campaign, error) {
	c, err := s.owned(ctx, businessID, id)
	if err != nil {
		return nil, err
	}

	patch.apply(c)
	if c.Icon == "" {
		c.Icon = models.DefaultCampaignIcon
	}
	if err := check(c); err != nil {
		return nil, err
	}

	if err := s.store.Campaigns().Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}
	logging.L().WithField("campaign_id", c.ID).Info("campaign updated")
	return c, nil
}

func (s *service) Delete(ctx context.Context, businessID, id uuid.UUID) error {
	err := s.store.Campaigns().Delete(ctx, id, businessID)
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.ErrCampaignNotFound
	}
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	logging.L().WithField("campaign_id", id).Info("campaign deleted")
	return nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	c, err := s.store.Campaigns().GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrCampaignNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load campaign: %w", err)
	}
	return c, nil
}

func (s *service) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.Campaign, error) {
	return s.list(ctx, repositories.CampaignFilter{BusinessID: &businessID})
}

func (s *service) List(ctx context.Context, promotedOnly bool) ([]models.Campaign, error) {
	return s.list(ctx, repositories.CampaignFilter{PromotedOnly: promotedOnly})
}

func (s *service) list(ctx context.Context, filter repositories.CampaignFilter) ([]models.Campaign, error) {
	campaigns, err := s.store.Campaigns().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	if campaigns == nil {
		campaigns = []models.Campaign{}
	}
	return campaigns, nil
}
