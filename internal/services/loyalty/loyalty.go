// Package loyalty holds the stamp, point and gift arithmetic applied to a
// wallet relation. Functions mutate the relation in place and never touch
// storage.
package loyalty

import (
	"fmt"
	"math"

	apperrors "counpaign/internal/errors"
	"counpaign/internal/models"
)

// DefaultTerminalPoints is credited when a terminal scan carries no amount.
const DefaultTerminalPoints = 10

// Outcome describes what one accrual did.
type Outcome struct {
	Type       string
	Category   string
	Value      int
	GiftEarned bool
}

func target(rel *models.CustomerBusiness) int {
	if rel.StampsTarget <= 0 {
		rel.StampsTarget = models.DefaultStampsTarget
	}
	return rel.StampsTarget
}

// addStamp adds one stamp and overflows into a gift at the target.
func addStamp(rel *models.CustomerBusiness) bool {
	rel.Stamps++
	if rel.Stamps >= target(rel) {
		rel.GiftsCount++
		rel.Stamps = 0
		return true
	}
	return false
}

// Stamp records a visit: one stamp and one visit. At most one gift is earned
// per call.
func Stamp(rel *models.CustomerBusiness) Outcome {
	rel.TotalVisits++
	earned := addStamp(rel)
	return Outcome{Type: models.TxStamp, Category: models.CategoryEarn, Value: 1, GiftEarned: earned}
}

// RedeemGift spends one gift.
func RedeemGift(rel *models.CustomerBusiness) (Outcome, error) {
	if rel.GiftsCount <= 0 {
		return Outcome{}, apperrors.ErrNoGiftsAvailable
	}
	rel.GiftsCount--
	return Outcome{Type: models.TxGiftRedeem, Category: models.CategorySpend, Value: 1}, nil
}

// AddPoints credits value points.
func AddPoints(rel *models.CustomerBusiness, value int) Outcome {
	rel.Points += value
	return Outcome{Type: models.TxPoint, Category: models.CategoryEarn, Value: value}
}

// Apply dispatches on a ledger transaction type.
func Apply(rel *models.CustomerBusiness, txType string, value int) (Outcome, error) {
	switch txType {
	case models.TxStamp:
		return Stamp(rel), nil
	case models.TxGiftRedeem:
		return RedeemGift(rel)
	case models.TxPoint:
		if value < 0 {
			return Outcome{}, apperrors.Validation("value must not be negative")
		}
		return AddPoints(rel, value), nil
	default:
		return Outcome{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidTransactionType, txType)
	}
}

// GrantCampaignReward credits a won campaign. Stamp rewards apply value
// single-stamp accruals without counting a visit.
func GrantCampaignReward(rel *models.CustomerBusiness, rewardType string, value int) (Outcome, error) {
	if value < 0 {
		return Outcome{}, apperrors.Validation("reward value must not be negative")
	}
	switch rewardType {
	case models.RewardPoints:
		return AddPoints(rel, value), nil
	case models.RewardStamp:
		earned := false
		for i := 0; i < value; i++ {
			if addStamp(rel) {
				earned = true
			}
		}
		return Outcome{Type: models.TxStamp, Category: models.CategoryEarn, Value: value, GiftEarned: earned}, nil
	default:
		return Outcome{}, apperrors.Validation(fmt.Sprintf("unknown reward type %q", rewardType))
	}
}

// TerminalPoints is floor(amount/10) for a given purchase amount, or the
// flat default when none is given.
func TerminalPoints(amount *float64) int {
	if amount == nil {
		return DefaultTerminalPoints
	}
	if *amount <= 0 {
		return 0
	}
	return int(math.Floor(*amount / 10))
}

// DisplayValue renders points as the card's money value, points/10 with two
// decimals.
func DisplayValue(points int) string {
	return fmt.Sprintf("%.2f", float64(points)/10)
}
