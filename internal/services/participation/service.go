// Package participation tracks customers joining campaigns and the one-time
// win that grants the campaign reward.
package participation

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "counpaign/internal/errors"
	"counpaign/internal/logging"
	"counpaign/internal/metrics"
	"counpaign/internal/models"
	"counpaign/internal/repositories"
	"counpaign/internal/services/loyalty"
	"counpaign/internal/services/wallet"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Reward describes what a win granted.
type Reward struct {
	Type  string `json:"type"`
	Value int    `json:"value"`
}

type WinResult struct {
	Message       string                `json:"message"`
	Participation *models.Participation `json:"participation"`
	Reward        Reward                `json:"reward"`
}

type Service interface {
	Join(ctx context.Context, customerID, campaignID uuid.UUID) (*models.Participation, error)
	Mine(ctx context.Context, customerID uuid.UUID) ([]models.Participation, error)
	Win(ctx context.Context, actor models.Actor, id uuid.UUID) (*WinResult, error)
}

type service struct {
	store   repositories.Store
	metrics metrics.Recorder
	now     func() time.Time
}

func NewService(store repositories.Store, recorder metrics.Recorder) Service {
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	return &service{store: store, metrics: recorder, now: time.Now}
}

func (s *service) Join(ctx context.Context, customerID, campaignID uuid.UUID) (*models.Participation, error) {
	campaign, err := s.store.Campaigns().GetByID(ctx, campaignID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrCampaignNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load campaign: %w", err)
	}

	if _, err := s.store.Participations().Get(ctx, customerID, campaignID); err == nil {
		return nil, apperrors.ErrAlreadyJoined
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("load participation: %w", err)
	}

	p := &models.Participation{
		CustomerID: customerID,
		CampaignID: campaignID,
		BusinessID: campaign.BusinessID,
		Status:     models.ParticipationJoined,
		JoinedAt:   s.now().UTC(),
	}
	if err := s.store.Participations().Create(ctx, p); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrAlreadyJoined
		}
		return nil, fmt.Errorf("create participation: %w", err)
	}

	logging.L().WithFields(logrus.Fields{
		"customer_id": customerID,
		"campaign_id": campaignID,
	}).Info("campaign joined")
	return p, nil
}

func (s *service) Mine(ctx context.Context, customerID uuid.UUID) ([]models.Participation, error) {
	ps, err := s.store.Participations().ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list participations: %w", err)
	}
	if ps == nil {
		ps = []models.Participation{}
	}
	return ps, nil
}

func mayWin(actor models.Actor, p *models.Participation) bool {
	switch actor.Role {
	case models.RoleAdmin:
		return true
	case models.RoleBusiness:
		return actor.ID == p.BusinessID
	case models.RoleCustomer:
		return actor.ID == p.CustomerID
	}
	return false
}

// Win marks a joined participation as won and credits the campaign reward
// to the customer's card, creating the card if needed.
func (s *service) Win(ctx context.Context, actor models.Actor, id uuid.UUID) (*WinResult, error) {
	var (
		p      *models.Participation
		reward Reward
	)
	err := s.store.ExecuteInTransaction(ctx, func(tx repositories.Store) error {
		var err error
		p, err = tx.Participations().GetByID(ctx, id)
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrParticipationNotFound
		}
		if err != nil {
			return fmt.Errorf("load participation: %w", err)
		}
		if !mayWin(actor, p) {
			return apperrors.ErrParticipationNotFound
		}
		if p.Status != models.ParticipationJoined {
			return apperrors.ErrAlreadyWon
		}
		if p.Campaign == nil {
			return apperrors.ErrCampaignNotFound
		}

		wonAt := s.now().UTC()
		swapped, err := tx.Participations().MarkWon(ctx, p.ID, wonAt)
		if err != nil {
			return fmt.Errorf("mark won: %w", err)
		}
		if !swapped {
			return apperrors.ErrAlreadyWon
		}
		p.Status = models.ParticipationWon
		p.WonAt = &wonAt

		business, err := tx.Businesses().GetByID(ctx, p.Campaign.BusinessID)
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrBusinessNotFound
		}
		if err != nil {
			return fmt.Errorf("load business: %w", err)
		}

		rel, _, err := wallet.Ensure(ctx, tx, p.CustomerID, business)
		if err != nil {
			return err
		}
		outcome, err := loyalty.GrantCampaignReward(rel, p.Campaign.RewardType, p.Campaign.RewardValue)
		if err != nil {
			return err
		}
		if err := tx.Wallets().SaveCounters(ctx, rel); err != nil {
			return fmt.Errorf("save counters: %w", err)
		}

		entry := &models.Transaction{
			CustomerID: p.CustomerID,
			BusinessID: business.ID,
			Type:       outcome.Type,
			Category:   outcome.Category,
			Value:      outcome.Value,
			Status:     models.TxStatusCompleted,
		}
		if err := tx.Transactions().Create(ctx, entry); err != nil {
			return fmt.Errorf("append ledger entry: %w", err)
		}

		reward = Reward{Type: p.Campaign.RewardType, Value: p.Campaign.RewardValue}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.CampaignWin(reward.Type)
	s.metrics.LedgerEntry(ledgerType(reward.Type), models.CategoryEarn)
	logging.L().WithFields(logrus.Fields{
		"participation_id": p.ID,
		"customer_id":      p.CustomerID,
		"reward_type":      reward.Type,
		"reward_value":     reward.Value,
	}).Info("campaign won")

	return &WinResult{
		Message:       "Congratulations! Campaign won and reward granted.",
		Participation: p,
		Reward:        reward,
	}, nil
}

func ledgerType(rewardType string) string {
	if rewardType == models.RewardPoints {
		return models.TxPoint
	}
	return models.TxStamp
}
