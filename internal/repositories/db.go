// Package repositories provides data access layer implementations.
// It handles all database operations and data persistence logic.
package repositories

import (
	"errors"
	"fmt"

	"counpaign/internal/config"
	"counpaign/internal/logging"
	"counpaign/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Models lists every entity managed by AutoMigrate.
var Models = []interface{}{
	&models.Customer{},
	&models.CustomerReward{},
	&models.Business{},
	&models.Terminal{},
	&models.CustomerBusiness{},
	&models.Campaign{},
	&models.Participation{},
	&models.Transaction{},
	&models.Review{},
}

// GormConfig is shared by the server, the seed tool and repository tests.
func GormConfig(cfg config.DatabaseConfig) *gorm.Config {
	return &gorm.Config{
		Logger:                                   logging.NewGormLogger(cfg.SlowThreshold),
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	}
}

// InitDB opens the PostgreSQL connection, applies pool settings and runs
// migrations.
func InitDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.URL), GormConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := db.AutoMigrate(Models...); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	logging.L().Info("PostgreSQL connected and migrations applied")
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// translate maps gorm errors onto the package sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return err
	}
}
