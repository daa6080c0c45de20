package memstore

import (
	"context"
	"sort"
	"time"

	"counpaign/internal/models"
	"counpaign/internal/repositories"

	"github.com/google/uuid"
)

type customers struct{ s *Store }

func (r customers) Create(ctx context.Context, c *models.Customer) error {
	defer r.s.lock()()
	if err := r.s.fault("Customers.Create"); err != nil {
		return err
	}
	for _, existing := range r.s.data.customers {
		if existing.Email == c.Email {
			return duplicate("customers.email")
		}
		if existing.PhoneNumber == c.PhoneNumber {
			return duplicate("customers.phone_number")
		}
	}
	r.s.data.stamp(&c.Base)
	if c.Role == "" {
		c.Role = models.RoleCustomer
	}
	stored := *c
	stored.Rewards = nil
	r.s.data.customers[c.ID] = stored
	return nil
}

func (r customers) withRewards(c models.Customer) *models.Customer {
	c.Rewards = nil
	for _, rw := range r.s.data.rewards {
		if rw.CustomerID == c.ID {
			c.Rewards = append(c.Rewards, rw)
		}
	}
	sort.Slice(c.Rewards, func(i, j int) bool { return c.Rewards[i].CreatedAt.Before(c.Rewards[j].CreatedAt) })
	return &c
}

func (r customers) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	defer r.s.lock()()
	c, ok := r.s.data.customers[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return r.withRewards(c), nil
}

func (r customers) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	defer r.s.lock()()
	c, ok := r.s.data.customers[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &c, nil
}

func (r customers) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	defer r.s.lock()()
	for _, c := range r.s.data.customers {
		if c.Email == email {
			c := c
			return &c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r customers) GetByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	defer r.s.lock()()
	for _, c := range r.s.data.customers {
		if c.PhoneNumber == phone {
			c := c
			return &c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r customers) UpdateProfile(ctx context.Context, c *models.Customer) error {
	defer r.s.lock()()
	stored, ok := r.s.data.customers[c.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	for id, other := range r.s.data.customers {
		if id != c.ID && other.Email == c.Email {
			return duplicate("customers.email")
		}
	}
	stored.Name = c.Name
	stored.Surname = c.Surname
	stored.Email = c.Email
	stored.ProfileImage = c.ProfileImage
	stored.Gender = c.Gender
	stored.BirthDate = c.BirthDate
	r.s.data.customers[c.ID] = stored
	return nil
}

func (r customers) AddRewardPoints(ctx context.Context, customerID, businessID uuid.UUID, points int, at time.Time) (*models.CustomerReward, error) {
	defer r.s.lock()()
	for id, rw := range r.s.data.rewards {
		if rw.CustomerID == customerID && rw.BusinessID == businessID {
			rw.Points += points
			rw.LastUpdated = at
			r.s.data.rewards[id] = rw
			return &rw, nil
		}
	}
	rw := models.CustomerReward{CustomerID: customerID, BusinessID: businessID, Points: points, LastUpdated: at}
	r.s.data.stamp(&rw.Base)
	r.s.data.rewards[rw.ID] = rw
	return &rw, nil
}

type businesses struct{ s *Store }

func (r businesses) Create(ctx context.Context, b *models.Business) error {
	defer r.s.lock()()
	for _, existing := range r.s.data.businesses {
		if existing.Email == b.Email {
			return duplicate("businesses.email")
		}
	}
	r.s.data.stamp(&b.Base)
	if b.StampsTarget == 0 {
		b.StampsTarget = models.DefaultStampsTarget
	}
	r.s.data.businesses[b.ID] = *b
	return nil
}

func (r businesses) Update(ctx context.Context, b *models.Business) error {
	defer r.s.lock()()
	if _, ok := r.s.data.businesses[b.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.s.data.businesses[b.ID] = *b
	return nil
}

func (r businesses) GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	defer r.s.lock()()
	if b := businessPtr(r.s.data, id); b != nil {
		return b, nil
	}
	return nil, repositories.ErrNotFound
}

func (r businesses) GetByEmail(ctx context.Context, email string) (*models.Business, error) {
	defer r.s.lock()()
	for _, b := range r.s.data.businesses {
		if b.Email == email {
			b := b
			return &b, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r businesses) all() []models.Business {
	out := make([]models.Business, 0, len(r.s.data.businesses))
	for _, b := range r.s.data.businesses {
		out = append(out, b)
	}
	return out
}

func (r businesses) List(ctx context.Context, offset, limit int) ([]models.Business, int64, error) {
	defer r.s.lock()()
	all := r.all()
	sort.Slice(all, func(i, j int) bool { return all[i].CompanyName < all[j].CompanyName })
	total := int64(len(all))
	if offset >= len(all) {
		return []models.Business{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r businesses) Newest(ctx context.Context, limit int) ([]models.Business, error) {
	defer r.s.lock()()
	all := r.all()
	sortNewest(all, func(b models.Business) time.Time { return b.CreatedAt })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

type terminals struct{ s *Store }

func (r terminals) Create(ctx context.Context, t *models.Terminal) error {
	defer r.s.lock()()
	for _, existing := range r.s.data.terminals {
		if existing.TerminalID == t.TerminalID {
			return duplicate("terminals.terminal_id")
		}
	}
	r.s.data.stamp(&t.Base)
	r.s.data.terminals[t.ID] = *t
	return nil
}

func (r terminals) GetByID(ctx context.Context, id uuid.UUID) (*models.Terminal, error) {
	defer r.s.lock()()
	t, ok := r.s.data.terminals[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &t, nil
}

func (r terminals) GetByTerminalID(ctx context.Context, terminalID string) (*models.Terminal, error) {
	defer r.s.lock()()
	for _, t := range r.s.data.terminals {
		if t.TerminalID == terminalID {
			t := t
			return &t, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r terminals) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.Terminal, error) {
	defer r.s.lock()()
	var out []models.Terminal
	for _, t := range r.s.data.terminals {
		if t.BusinessID == businessID {
			out = append(out, t)
		}
	}
	sortNewest(out, func(t models.Terminal) time.Time { return t.CreatedAt })
	return out, nil
}

func (r terminals) SetActive(ctx context.Context, id, businessID uuid.UUID, active bool) (*models.Terminal, error) {
	defer r.s.lock()()
	t, ok := r.s.data.terminals[id]
	if !ok || t.BusinessID != businessID {
		return nil, repositories.ErrNotFound
	}
	t.IsActive = active
	r.s.data.terminals[id] = t
	return &t, nil
}
