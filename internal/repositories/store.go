package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories behind one unit of work.
type Store interface {
	Customers() CustomerRepository
	Businesses() BusinessRepository
	Terminals() TerminalRepository
	Wallets() WalletRepository
	Campaigns() CampaignRepository
	Participations() ParticipationRepository
	Transactions() TransactionRepository
	Reviews() ReviewRepository

	// ExecuteInTransaction runs fn against a Store bound to one database
	// transaction. Returning an error rolls everything back.
	ExecuteInTransaction(ctx context.Context, fn func(Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

// NewStore returns a Store backed by db.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Customers() CustomerRepository { return &customerRepository{db: s.db} }
func (s *gormStore) Businesses() BusinessRepository { return &businessRepository{db: s.db} }
func (s *gormStore) Terminals() TerminalRepository { return &terminalRepository{db: s.db} }
func (s *gormStore) Wallets() WalletRepository { return &walletRepository{db: s.db} }
func (s *gormStore) Campaigns() CampaignRepository { return &campaignRepository{db: s.db} }
func (s *gormStore) Participations() ParticipationRepository { return &participationRepository{db: s.db} }
func (s *gormStore) Transactions() TransactionRepository { return &transactionRepository{db: s.db} }
func (s *gormStore) Reviews() ReviewRepository { return &reviewRepository{db: s.db} }

func (s *gormStore) ExecuteInTransaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
