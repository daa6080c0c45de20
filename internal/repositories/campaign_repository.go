package repositories

import (
	"context"

	"counpaign/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CampaignFilter narrows List.
type CampaignFilter struct {
	BusinessID   *uuid.UUID
	PromotedOnly bool
}

type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	Update(ctx context.Context, campaign *models.Campaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error)
	GetByTitle(ctx context.Context, businessID uuid.UUID, title string) (*models.Campaign, error)
	// List orders by displayOrder then newest when scoped to a business,
	// newest first otherwise.
	List(ctx context.Context, filter CampaignFilter) ([]models.Campaign, error)
	// Delete removes a campaign owned by businessID.
	Delete(ctx context.Context, id, businessID uuid.UUID) error
}

type campaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &campaignRepository{db: db}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	return translate(r.db.WithContext(ctx).Omit("Business").Create(campaign).Error)
}

func (r *campaignRepository) Update(ctx context.Context, campaign *models.Campaign) error {
	return translate(r.db.WithContext(ctx).Omit("Business").Save(campaign).Error)
}

func (r *campaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := r.db.WithContext(ctx).First(&campaign, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &campaign, nil
}

func (r *campaignRepository) GetByTitle(ctx context.Context, businessID uuid.UUID, title string) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND title = ?", businessID, title).
		First(&campaign).Error
	if err != nil {
		return nil, translate(err)
	}
	return &campaign, nil
}

func (r *campaignRepository) List(ctx context.Context, filter CampaignFilter) ([]models.Campaign, error) {
	q := r.db.WithContext(ctx).Model(&models.Campaign{})
	if filter.BusinessID != nil {
		q = q.Where("business_id = ?", *filter.BusinessID).Order("display_order ASC")
	}
	if filter.PromotedOnly {
		q = q.Where("is_promoted = ?", true)
	}

	var campaigns []models.Campaign
	if err := q.Order("created_at DESC").Find(&campaigns).Error; err != nil {
		return nil, translate(err)
	}
	return campaigns, nil
}

func (r *campaignRepository) Delete(ctx context.Context, id, businessID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id, businessID).
		Delete(&models.Campaign{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
