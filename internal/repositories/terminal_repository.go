package repositories

import (
	"context"

	"counpaign/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TerminalRepository interface {
	Create(ctx context.Context, terminal *models.Terminal) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Terminal, error)
	GetByTerminalID(ctx context.Context, terminalID string) (*models.Terminal, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.Terminal, error)
	// SetActive toggles a terminal owned by businessID. A terminal of another
	// business is reported as ErrNotFound.
	SetActive(ctx context.Context, id, businessID uuid.UUID, active bool) (*models.Terminal, error)
}

type terminalRepository struct {
	db *gorm.DB
}

func NewTerminalRepository(db *gorm.DB) TerminalRepository {
	return &terminalRepository{db: db}
}

func (r *terminalRepository) Create(ctx context.Context, terminal *models.Terminal) error {
	return translate(r.db.WithContext(ctx).Create(terminal).Error)
}

func (r *terminalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Terminal, error) {
	var terminal models.Terminal
	if err := r.db.WithContext(ctx).First(&terminal, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &terminal, nil
}

func (r *terminalRepository) GetByTerminalID(ctx context.Context, terminalID string) (*models.Terminal, error) {
	var terminal models.Terminal
	if err := r.db.WithContext(ctx).Where("terminal_id = ?", terminalID).First(&terminal).Error; err != nil {
		return nil, translate(err)
	}
	return &terminal, nil
}

func (r *terminalRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.Terminal, error) {
	var terminals []models.Terminal
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&terminals).Error
	if err != nil {
		return nil, translate(err)
	}
	return terminals, nil
}

func (r *terminalRepository) SetActive(ctx context.Context, id, businessID uuid.UUID, active bool) (*models.Terminal, error) {
	result := r.db.WithContext(ctx).Model(&models.Terminal{}).
		Where("id = ? AND business_id = ?", id, businessID).
		Update("is_active", active)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}
