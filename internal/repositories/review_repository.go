package repositories

import (
	"context"

	"counpaign/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	// Create inserts a review. A second review for the same transaction
	// returns ErrDuplicate.
	Create(ctx context.Context, review *models.Review) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Review, error)
	DeleteByCustomerAndBusiness(ctx context.Context, customerID, businessID uuid.UUID) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return translate(r.db.WithContext(ctx).Omit("Business").Create(review).Error)
}

func (r *reviewRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Preload("Business").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, translate(err)
	}
	return reviews, nil
}

func (r *reviewRepository) DeleteByCustomerAndBusiness(ctx context.Context, customerID, businessID uuid.UUID) error {
	return translate(r.db.WithContext(ctx).
		Where("customer_id = ? AND business_id = ?", customerID, businessID).
		Delete(&models.Review{}).Error)
}
