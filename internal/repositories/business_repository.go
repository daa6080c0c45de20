package repositories

import (
	"context"

	"counpaign/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessRepository covers the business directory.
type BusinessRepository interface {
	Create(ctx context.Context, business *models.Business) error
	Update(ctx context.Context, business *models.Business) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error)
	GetByEmail(ctx context.Context, email string) (*models.Business, error)
	// List returns one page of businesses by company name and the total count.
	List(ctx context.Context, offset, limit int) ([]models.Business, int64, error)
	Newest(ctx context.Context, limit int) ([]models.Business, error)
}

type businessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &businessRepository{db: db}
}

func (r *businessRepository) Create(ctx context.Context, business *models.Business) error {
	return translate(r.db.WithContext(ctx).Create(business).Error)
}

func (r *businessRepository) Update(ctx context.Context, business *models.Business) error {
	return translate(r.db.WithContext(ctx).Save(business).Error)
}

func (r *businessRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	var business models.Business
	if err := r.db.WithContext(ctx).First(&business, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &business, nil
}

func (r *businessRepository) GetByEmail(ctx context.Context, email string) (*models.Business, error) {
	var business models.Business
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&business).Error; err != nil {
		return nil, translate(err)
	}
	return &business, nil
}

func (r *businessRepository) List(ctx context.Context, offset, limit int) ([]models.Business, int64, error) {
	var (
		businesses []models.Business
		total      int64
	)
	if err := r.db.WithContext(ctx).Model(&models.Business{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	err := r.db.WithContext(ctx).
		Order("company_name ASC").
		Offset(offset).
		Limit(limit).
		Find(&businesses).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return businesses, total, nil
}

func (r *businessRepository) Newest(ctx context.Context, limit int) ([]models.Business, error) {
	var businesses []models.Business
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&businesses).Error
	if err != nil {
		return nil, translate(err)
	}
	return businesses, nil
}
