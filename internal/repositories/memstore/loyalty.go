package memstore

import (
	"context"
	"sort"
	"time"

	"counpaign/internal/models"
	"counpaign/internal/repositories"

	"github.com/google/uuid"
)

type wallets struct{ s *Store }

func (r wallets) Create(ctx context.Context, rel *models.CustomerBusiness) error {
	defer r.s.lock()()
	if err := r.s.fault("Wallets.Create"); err != nil {
		return err
	}
	for _, existing := range r.s.data.wallets {
		if existing.CustomerID == rel.CustomerID && existing.BusinessID == rel.BusinessID {
			return duplicate("customer_businesses.customer_business")
		}
	}
	r.s.data.stamp(&rel.Base)
	stored := *rel
	stored.Business = nil
	r.s.data.wallets[rel.ID] = stored
	return nil
}

func (r wallets) find(customerID, businessID uuid.UUID) (*models.CustomerBusiness, error) {
	for _, rel := range r.s.data.wallets {
		if rel.CustomerID == customerID && rel.BusinessID == businessID {
			rel := rel
			return &rel, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r wallets) Get(ctx context.Context, customerID, businessID uuid.UUID) (*models.CustomerBusiness, error) {
	defer r.s.lock()()
	return r.find(customerID, businessID)
}

func (r wallets) GetForUpdate(ctx context.Context, customerID, businessID uuid.UUID) (*models.CustomerBusiness, error) {
	defer r.s.lock()()
	return r.find(customerID, businessID)
}

func (r wallets) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.CustomerBusiness, error) {
	defer r.s.lock()()
	var out []models.CustomerBusiness
	for _, rel := range r.s.data.wallets {
		if rel.CustomerID == customerID {
			rel.Business = businessPtr(r.s.data, rel.BusinessID)
			out = append(out, rel)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}

func (r wallets) NextOrderIndex(ctx context.Context, customerID uuid.UUID) (int, error) {
	defer r.s.lock()()
	next := 0
	for _, rel := range r.s.data.wallets {
		if rel.CustomerID == customerID && rel.OrderIndex >= next {
			next = rel.OrderIndex + 1
		}
	}
	return next, nil
}

func (r wallets) Delete(ctx context.Context, id uuid.UUID) error {
	defer r.s.lock()()
	if err := r.s.fault("Wallets.Delete"); err != nil {
		return err
	}
	if _, ok := r.s.data.wallets[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.s.data.wallets, id)
	return nil
}

func (r wallets) CompactAfter(ctx context.Context, customerID uuid.UUID, orderIndex int) error {
	defer r.s.lock()()
	if err := r.s.fault("Wallets.CompactAfter"); err != nil {
		return err
	}
	for id, rel := range r.s.data.wallets {
		if rel.CustomerID == customerID && rel.OrderIndex > orderIndex {
			rel.OrderIndex--
			r.s.data.wallets[id] = rel
		}
	}
	return nil
}

func (r wallets) SetOrderIndex(ctx context.Context, id uuid.UUID, orderIndex int) error {
	defer r.s.lock()()
	rel, ok := r.s.data.wallets[id]
	if !ok {
		return nil
	}
	rel.OrderIndex = orderIndex
	r.s.data.wallets[id] = rel
	return nil
}

func (r wallets) SaveCounters(ctx context.Context, rel *models.CustomerBusiness) error {
	defer r.s.lock()()
	if err := r.s.fault("Wallets.SaveCounters"); err != nil {
		return err
	}
	stored, ok := r.s.data.wallets[rel.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	stored.Points = rel.Points
	stored.Stamps = rel.Stamps
	stored.GiftsCount = rel.GiftsCount
	stored.TotalVisits = rel.TotalVisits
	r.s.data.wallets[rel.ID] = stored
	return nil
}

type campaigns struct{ s *Store }

func (r campaigns) Create(ctx context.Context, c *models.Campaign) error {
	defer r.s.lock()()
	r.s.data.stamp(&c.Base)
	stored := *c
	stored.Business = nil
	r.s.data.campaigns[c.ID] = stored
	return nil
}

func (r campaigns) Update(ctx context.Context, c *models.Campaign) error {
	defer r.s.lock()()
	if _, ok := r.s.data.campaigns[c.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *c
	stored.Business = nil
	r.s.data.campaigns[c.ID] = stored
	return nil
}

func (r campaigns) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	defer r.s.lock()()
	c, ok := r.s.data.campaigns[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &c, nil
}

func (r campaigns) GetByTitle(ctx context.Context, businessID uuid.UUID, title string) (*models.Campaign, error) {
	defer r.s.lock()()
	for _, c := range r.s.data.campaigns {
		if c.BusinessID == businessID && c.Title == title {
			c := c
			return &c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r campaigns) List(ctx context.Context, filter repositories.CampaignFilter) ([]models.Campaign, error) {
	defer r.s.lock()()
	var out []models.Campaign
	for _, c := range r.s.data.campaigns {
		if filter.BusinessID != nil && c.BusinessID != *filter.BusinessID {
			continue
		}
		if filter.PromotedOnly && !c.IsPromoted {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if filter.BusinessID != nil && out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r campaigns) Delete(ctx context.Context, id, businessID uuid.UUID) error {
	defer r.s.lock()()
	c, ok := r.s.data.campaigns[id]
	if !ok || c.BusinessID != businessID {
		return repositories.ErrNotFound
	}
	delete(r.s.data.campaigns, id)
	return nil
}

type participations struct{ s *Store }

func (r participations) Create(ctx context.Context, p *models.Participation) error {
	defer r.s.lock()()
	for _, existing := range r.s.data.participations {
		if existing.CustomerID == p.CustomerID && existing.CampaignID == p.CampaignID {
			return duplicate("participations.customer_campaign")
		}
	}
	r.s.data.stamp(&p.Base)
	stored := *p
	stored.Campaign = nil
	stored.Business = nil
	r.s.data.participations[p.ID] = stored
	return nil
}

func (r participations) Get(ctx context.Context, customerID, campaignID uuid.UUID) (*models.Participation, error) {
	defer r.s.lock()()
	for _, p := range r.s.data.participations {
		if p.CustomerID == customerID && p.CampaignID == campaignID {
			p := p
			return &p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r participations) campaign(id uuid.UUID) *models.Campaign {
	c, ok := r.s.data.campaigns[id]
	if !ok {
		return nil
	}
	return &c
}

func (r participations) GetByID(ctx context.Context, id uuid.UUID) (*models.Participation, error) {
	defer r.s.lock()()
	p, ok := r.s.data.participations[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	p.Campaign = r.campaign(p.CampaignID)
	return &p, nil
}

func (r participations) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Participation, error) {
	defer r.s.lock()()
	var out []models.Participation
	for _, p := range r.s.data.participations {
		if p.CustomerID == customerID {
			p.Campaign = r.campaign(p.CampaignID)
			p.Business = businessPtr(r.s.data, p.BusinessID)
			out = append(out, p)
		}
	}
	sortNewest(out, func(p models.Participation) time.Time { return p.CreatedAt })
	return out, nil
}

func (r participations) MarkWon(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	defer r.s.lock()()
	p, ok := r.s.data.participations[id]
	if !ok || p.Status != models.ParticipationJoined {
		return false, nil
	}
	p.Status = models.ParticipationWon
	p.WonAt = &at
	r.s.data.participations[id] = p
	return true, nil
}
