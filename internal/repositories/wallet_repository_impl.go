package repositories

import (
	"context"
	"fmt"

	"counpaign/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) Create(ctx context.Context, relation *models.CustomerBusiness) error {
	return translate(r.db.WithContext(ctx).Omit("Business").Create(relation).Error)
}

func (r *walletRepository) Get(ctx context.Context, customerID, businessID uuid.UUID) (*models.CustomerBusiness, error) {
	var relation models.CustomerBusiness
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND business_id = ?", customerID, businessID).
		First(&relation).Error
	if err != nil {
		return nil, translate(err)
	}
	return &relation, nil
}

func (r *walletRepository) GetForUpdate(ctx context.Context, customerID, businessID uuid.UUID) (*models.CustomerBusiness, error) {
	var relation models.CustomerBusiness
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("customer_id = ? AND business_id = ?", customerID, businessID).
		First(&relation).Error
	if err != nil {
		return nil, translate(err)
	}
	return &relation, nil
}

func (r *walletRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.CustomerBusiness, error) {
	var relations []models.CustomerBusiness
	err := r.db.WithContext(ctx).
		Preload("Business").
		Where("customer_id = ?", customerID).
		Order("order_index ASC").
		Find(&relations).Error
	if err != nil {
		return nil, translate(err)
	}
	return relations, nil
}

func (r *walletRepository) NextOrderIndex(ctx context.Context, customerID uuid.UUID) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&models.CustomerBusiness{}).
		Where("customer_id = ?", customerID).
		Select("COALESCE(MAX(order_index), -1)").
		Scan(&max).Error
	if err != nil {
		return 0, translate(err)
	}
	return max + 1, nil
}

func (r *walletRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CustomerBusiness{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *walletRepository) CompactAfter(ctx context.Context, customerID uuid.UUID, orderIndex int) error {
	err := r.db.WithContext(ctx).Model(&models.CustomerBusiness{}).
		Where("customer_id = ? AND order_index > ?", customerID, orderIndex).
		Update("order_index", gorm.Expr("order_index - 1")).Error
	if err != nil {
		return fmt.Errorf("compact wallet order: %w", translate(err))
	}
	return nil
}

func (r *walletRepository) SetOrderIndex(ctx context.Context, id uuid.UUID, orderIndex int) error {
	return translate(r.db.WithContext(ctx).Model(&models.CustomerBusiness{}).
		Where("id = ?", id).
		Update("order_index", orderIndex).Error)
}

func (r *walletRepository) SaveCounters(ctx context.Context, relation *models.CustomerBusiness) error {
	return translate(r.db.WithContext(ctx).Model(relation).
		Select("points", "stamps", "gifts_count", "total_visits").
		Updates(relation).Error)
}
