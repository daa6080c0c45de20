// Package memstore is an in-memory repositories.Store for tests. Transactions
// hold a store-wide lock and restore a snapshot when fn fails.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"counpaign/internal/models"
	"counpaign/internal/repositories"

	"github.com/google/uuid"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type state struct {
	customers      map[uuid.UUID]models.Customer
	rewards        map[uuid.UUID]models.CustomerReward
	businesses     map[uuid.UUID]models.Business
	terminals      map[uuid.UUID]models.Terminal
	wallets        map[uuid.UUID]models.CustomerBusiness
	campaigns      map[uuid.UUID]models.Campaign
	participations map[uuid.UUID]models.Participation
	transactions   map[uuid.UUID]models.Transaction
	reviews        map[uuid.UUID]models.Review
	seq            int64
}

func newState() *state {
	return &state{
		customers:      map[uuid.UUID]models.Customer{},
		rewards:        map[uuid.UUID]models.CustomerReward{},
		businesses:     map[uuid.UUID]models.Business{},
		terminals:      map[uuid.UUID]models.Terminal{},
		wallets:        map[uuid.UUID]models.CustomerBusiness{},
		campaigns:      map[uuid.UUID]models.Campaign{},
		participations: map[uuid.UUID]models.Participation{},
		transactions:   map[uuid.UUID]models.Transaction{},
		reviews:        map[uuid.UUID]models.Review{},
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *state) clone() *state {
	return &state{
		customers:      cloneMap(s.customers),
		rewards:        cloneMap(s.rewards),
		businesses:     cloneMap(s.businesses),
		terminals:      cloneMap(s.terminals),
		wallets:        cloneMap(s.wallets),
		campaigns:      cloneMap(s.campaigns),
		participations: cloneMap(s.participations),
		transactions:   cloneMap(s.transactions),
		reviews:        cloneMap(s.reviews),
		seq:            s.seq,
	}
}

// stamp fills ID and strictly increasing timestamps on insert.
func (s *state) stamp(b *models.Base) {
	s.seq++
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	t := epoch.Add(time.Duration(s.seq) * time.Second)
	if b.CreatedAt.IsZero() {
		b.CreatedAt = t
	}
	b.UpdatedAt = t
}

// Store implements repositories.Store.
type Store struct {
	mu     *sync.Mutex
	data   *state
	faults map[string]error
	inTx   bool
}

var _ repositories.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		mu:     &sync.Mutex{},
		data:   newState(),
		faults: map[string]error{},
	}
}

// Fail makes the named operation (for example "Wallets.CompactAfter") return
// err until cleared with a nil err.
func (s *Store) Fail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.faults, op)
		return
	}
	s.faults[op] = err
}

func (s *Store) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) fault(op string) error {
	if err, ok := s.faults[op]; ok {
		return err
	}
	return nil
}

func (s *Store) ExecuteInTransaction(ctx context.Context, fn func(repositories.Store) error) error {
	if s.inTx {
		return fn(s)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	tx := &Store{mu: s.mu, data: s.data, faults: s.faults, inTx: true}
	if err := fn(tx); err != nil {
		*s.data = *snapshot
		return err
	}
	return nil
}

func (s *Store) Customers() repositories.CustomerRepository { return customers{s} }
func (s *Store) Businesses() repositories.BusinessRepository { return businesses{s} }
func (s *Store) Terminals() repositories.TerminalRepository { return terminals{s} }
func (s *Store) Wallets() repositories.WalletRepository { return wallets{s} }
func (s *Store) Campaigns() repositories.CampaignRepository { return campaigns{s} }
func (s *Store) Participations() repositories.ParticipationRepository { return participations{s} }
func (s *Store) Transactions() repositories.TransactionRepository { return transactions{s} }
func (s *Store) Reviews() repositories.ReviewRepository { return reviews{s} }

func duplicate(what string) error {
	return fmt.Errorf("%w: %s", repositories.ErrDuplicate, what)
}

func businessPtr(d *state, id uuid.UUID) *models.Business {
	b, ok := d.businesses[id]
	if !ok {
		return nil
	}
	return &b
}

func sortNewest[T any](items []T, created func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return created(items[i]).After(created(items[j]))
	})
}
