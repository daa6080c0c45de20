package repositories

import (
	"context"

	"counpaign/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionRepository is the ledger. Entries are never updated except for
// the one-time review back-fill.
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	// ListByCustomer returns newest first with business and review preloaded.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Transaction, error)
	ListByCustomerAndBusiness(ctx context.Context, customerID, businessID uuid.UUID) ([]models.Transaction, error)
	DeleteByCustomerAndBusiness(ctx context.Context, customerID, businessID uuid.UUID) (int64, error)
	// AttachReview sets review_id if it is still empty and reports whether
	// it did.
	AttachReview(ctx context.Context, id, reviewID uuid.UUID) (bool, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	return translate(r.db.WithContext(ctx).Omit("Business", "Review").Create(tx).Error)
}

func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	var tx models.Transaction
	if err := r.db.WithContext(ctx).First(&tx, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &tx, nil
}

func (r *transactionRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.WithContext(ctx).
		Preload("Business").
		Preload("Review").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&txs).Error
	if err != nil {
		return nil, translate(err)
	}
	return txs, nil
}

func (r *transactionRepository) ListByCustomerAndBusiness(ctx context.Context, customerID, businessID uuid.UUID) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND business_id = ?", customerID, businessID).
		Order("created_at DESC").
		Find(&txs).Error
	if err != nil {
		return nil, translate(err)
	}
	return txs, nil
}

func (r *transactionRepository) DeleteByCustomerAndBusiness(ctx context.Context, customerID, businessID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("customer_id = ? AND business_id = ?", customerID, businessID).
		Delete(&models.Transaction{})
	return result.RowsAffected, translate(result.Error)
}

func (r *transactionRepository) AttachReview(ctx context.Context, id, reviewID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("id = ? AND review_id IS NULL", id).
		Update("review_id", reviewID)
	if result.Error != nil {
		return false, translate(result.Error)
	}
	return result.RowsAffected == 1, nil
}
