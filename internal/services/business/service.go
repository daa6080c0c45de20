// Package business is the public business directory customers browse before
// adding a card to their wallet.
package business

import (
	"context"
	"errors"
	"fmt"

	apperrors "counpaign/internal/errors"
	"counpaign/internal/models"
	"counpaign/internal/repositories"

	"github.com/google/uuid"
)

// NewestLimit is how many businesses the newest listing returns.
const NewestLimit = 10

// Profile is the public projection of a business.
type Profile struct {
	ID           uuid.UUID               `json:"id"`
	CompanyName  string                  `json:"companyName"`
	Category     string                  `json:"category"`
	Logo         string                  `json:"logo"`
	CardColor    string                  `json:"cardColor"`
	CardIcon     string                  `json:"cardIcon"`
	Settings     models.BusinessSettings `json:"settings"`
	City         string                  `json:"city"`
	District     string                  `json:"district"`
	Neighborhood string                  `json:"neighborhood"`
}

func newProfile(b models.Business) Profile {
	return Profile{
		ID:           b.ID,
		CompanyName:  b.CompanyName,
		Category:     b.Category,
		Logo:         b.Logo,
		CardColor:    b.CardColor,
		CardIcon:     b.CardIcon,
		Settings:     b.Settings,
		City:         b.City,
		District:     b.District,
		Neighborhood: b.Neighborhood,
	}
}

func profiles(bs []models.Business) []Profile {
	out := make([]Profile, 0, len(bs))
	for _, b := range bs {
		out = append(out, newProfile(b))
	}
	return out
}

type Service interface {
	Explore(ctx context.Context, offset, limit int) ([]Profile, int64, error)
	Newest(ctx context.Context) ([]Profile, error)
	Get(ctx context.Context, id uuid.UUID) (*Profile, error)
}

type service struct {
	store repositories.Store
}

func NewService(store repositories.Store) Service {
	return &service{store: store}
}

func (s *service) Explore(ctx context.Context, offset, limit int) ([]Profile, int64, error) {
	bs, total, err := s.store.Businesses().List(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list businesses: %w", err)
	}
	return profiles(bs), total, nil
}

func (s *service) Newest(ctx context.Context) ([]Profile, error) {
	bs, err := s.store.Businesses().Newest(ctx, NewestLimit)
	if err != nil {
		return nil, fmt.Errorf("list newest businesses: %w", err)
	}
	return profiles(bs), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	b, err := s.store.Businesses().GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load business: %w", err)
	}
	p := newProfile(*b)
	return &p, nil
}
