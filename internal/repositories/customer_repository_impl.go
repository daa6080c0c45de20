package repositories

import (
	"context"
	"time"

	"counpaign/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new instance of CustomerRepository
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return translate(r.db.WithContext(ctx).Create(customer).Error)
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).Preload("Rewards").First(&customer, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}

func (r *customerRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&customer, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&customer).Error; err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}

func (r *customerRepository) GetByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).Where("phone_number = ?", phone).First(&customer).Error; err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}

func (r *customerRepository) UpdateProfile(ctx context.Context, customer *models.Customer) error {
	result := r.db.WithContext(ctx).Model(customer).
		Select("name", "surname", "email", "profile_image", "gender", "birth_date").
		Updates(customer)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *customerRepository) AddRewardPoints(ctx context.Context, customerID, businessID uuid.UUID, points int, at time.Time) (*models.CustomerReward, error) {
	reward := models.CustomerReward{
		CustomerID:  customerID,
		BusinessID:  businessID,
		Points:      points,
		LastUpdated: at,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "customer_id"}, {Name: "business_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"points":       gorm.Expr("customer_rewards.points + ?", points),
			"last_updated": at,
			"updated_at":   at,
		}),
	}).Create(&reward).Error
	if err != nil {
		return nil, translate(err)
	}

	var stored models.CustomerReward
	err = r.db.WithContext(ctx).
		Where("customer_id = ? AND business_id = ?", customerID, businessID).
		First(&stored).Error
	if err != nil {
		return nil, translate(err)
	}
	return &stored, nil
}
