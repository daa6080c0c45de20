package repositories

import (
	"context"
	"time"

	"counpaign/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParticipationRepository interface {
	// Create inserts a JOINED participation. A second enrollment in the same
	// campaign returns ErrDuplicate.
	Create(ctx context.Context, participation *models.Participation) error
	Get(ctx context.Context, customerID, campaignID uuid.UUID) (*models.Participation, error)
	// GetByID loads a participation with its campaign.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Participation, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Participation, error)
	// MarkWon moves a JOINED participation to WON. It reports false when the
	// participation was no longer JOINED.
	MarkWon(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
}

type participationRepository struct {
	db *gorm.DB
}

func NewParticipationRepository(db *gorm.DB) ParticipationRepository {
	return &participationRepository{db: db}
}

func (r *participationRepository) Create(ctx context.Context, participation *models.Participation) error {
	return translate(r.db.WithContext(ctx).Omit("Campaign", "Business").Create(participation).Error)
}

func (r *participationRepository) Get(ctx context.Context, customerID, campaignID uuid.UUID) (*models.Participation, error) {
	var participation models.Participation
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND campaign_id = ?", customerID, campaignID).
		First(&participation).Error
	if err != nil {
		return nil, translate(err)
	}
	return &participation, nil
}

func (r *participationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Participation, error) {
	var participation models.Participation
	if err := r.db.WithContext(ctx).Preload("Campaign").First(&participation, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &participation, nil
}

func (r *participationRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Participation, error) {
	var participations []models.Participation
	err := r.db.WithContext(ctx).
		Preload("Campaign").
		Preload("Business").
		Where("customer_id = ?", customerID).
		Order("joined_at DESC").
		Find(&participations).Error
	if err != nil {
		return nil, translate(err)
	}
	return participations, nil
}

func (r *participationRepository) MarkWon(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Participation{}).
		Where("id = ? AND status = ?", id, models.ParticipationJoined).
		Updates(map[string]interface{}{
			"status": models.ParticipationWon,
			"won_at": at,
		})
	if result.Error != nil {
		return false, translate(result.Error)
	}
	return result.RowsAffected == 1, nil
}
