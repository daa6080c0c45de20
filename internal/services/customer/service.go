// Package customer serves the authenticated customer's own profile.
package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "counpaign/internal/errors"
	"counpaign/internal/logging"
	"counpaign/internal/models"
	"counpaign/internal/repositories"
	"counpaign/internal/validation"

	"github.com/google/uuid"
)

// ProfileUpdate is the allow-list of editable profile fields. Empty name,
// surname and email are ignored; the other fields may be cleared.
type ProfileUpdate struct {
	Name         *string    `json:"name"`
	Surname      *string    `json:"surname"`
	Email        *string    `json:"email"`
	ProfileImage *string    `json:"profileImage"`
	Gender       *string    `json:"gender"`
	BirthDate    *time.Time `json:"birthDate"`
}

type Service interface {
	Profile(ctx context.Context, customerID uuid.UUID) (*models.Customer, error)
	UpdateProfile(ctx context.Context, customerID uuid.UUID, update ProfileUpdate) (*models.Customer, error)
}

type service struct {
	store repositories.Store
}

func NewService(store repositories.Store) Service {
	return &service{store: store}
}

func (s *service) Profile(ctx context.Context, customerID uuid.UUID) (*models.Customer, error) {
	c, err := s.store.Customers().GetByID(ctx, customerID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load customer: %w", err)
	}
	if c.Rewards == nil {
		c.Rewards = []models.CustomerReward{}
	}
	return c, nil
}

func nonEmpty(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	v := strings.TrimSpace(*p)
	return v, v != ""
}

func (s *service) UpdateProfile(ctx context.Context, customerID uuid.UUID, update ProfileUpdate) (*models.Customer, error) {
	c, err := s.Profile(ctx, customerID)
	if err != nil {
		return nil, err
	}

	v := validation.New()
	if name, ok := nonEmpty(update.Name); ok {
		c.Name = name
	}
	if surname, ok := nonEmpty(update.Surname); ok {
		c.Surname = surname
	}
	emailChanged := false
	if email, ok := nonEmpty(update.Email); ok {
		email = strings.ToLower(email)
		v.Email("email", email)
		emailChanged = email != c.Email
		c.Email = email
	}
	if update.ProfileImage != nil {
		c.ProfileImage = *update.ProfileImage
	}
	if update.Gender != nil {
		v.OneOf("gender", *update.Gender, models.Genders...)
		c.Gender = *update.Gender
	}
	if update.BirthDate != nil {
		v.Check(update.BirthDate.Before(time.Now()), "birthDate", "must be in the past")
		c.BirthDate = update.BirthDate
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	if emailChanged {
		if _, err := s.store.Customers().GetByEmail(ctx, c.Email); err == nil {
			return nil, apperrors.ErrDuplicateEmail
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("look up email: %w", err)
		}
	}

	if err := s.store.Customers().UpdateProfile(ctx, c); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, apperrors.ErrDuplicateEmail
		case errors.Is(err, repositories.ErrNotFound):
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}

	logging.L().WithField("customer_id", customerID).Info("profile updated")
	return c, nil
}
