package loyalty

import (
	"testing"

	apperrors "counpaign/internal/errors"
	"counpaign/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStamp_OverflowProperty(t *testing.T) {
	for target := 1; target <= 10; target++ {
		for before := 0; before < target; before++ {
			rel := &models.CustomerBusiness{StampsTarget: target, Stamps: before, GiftsCount: 2}

			out := Stamp(rel)

			assert.Equal(t, (before+1)%target, rel.Stamps, "target=%d before=%d", target, before)
			wantGift := before+1 >= target
			assert.Equal(t, wantGift, out.GiftEarned)
			if wantGift {
				assert.Equal(t, 3, rel.GiftsCount)
			} else {
				assert.Equal(t, 2, rel.GiftsCount)
			}
			assert.Equal(t, 1, rel.TotalVisits)
			assert.Equal(t, models.CategoryEarn, out.Category)
		}
	}
}

func TestStamp_FifthStampEarnsGift(t *testing.T) {
	rel := &models.CustomerBusiness{StampsTarget: 5, Stamps: 4, TotalVisits: 7}

	out := Stamp(rel)

	assert.Equal(t, 0, rel.Stamps)
	assert.Equal(t, 1, rel.GiftsCount)
	assert.Equal(t, 8, rel.TotalVisits)
	assert.Equal(t, Outcome{Type: models.TxStamp, Category: models.CategoryEarn, Value: 1, GiftEarned: true}, out)
}

func TestStamp_DefaultsMissingTarget(t *testing.T) {
	rel := &models.CustomerBusiness{Stamps: 4}
	Stamp(rel)
	assert.Equal(t, models.DefaultStampsTarget, rel.StampsTarget)
	assert.Equal(t, 1, rel.GiftsCount)
}

func TestRedeemGift(t *testing.T) {
	rel := &models.CustomerBusiness{}
	_, err := RedeemGift(rel)
	assert.ErrorIs(t, err, apperrors.ErrNoGiftsAvailable)
	assert.Equal(t, 0, rel.GiftsCount)

	rel.GiftsCount = 3
	out, err := RedeemGift(rel)
	require.NoError(t, err)
	assert.Equal(t, 2, rel.GiftsCount)
	assert.Equal(t, models.CategorySpend, out.Category)
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		txType   string
		value    int
		wantErr  error
		category string
		points   int
	}{
		{"point", models.TxPoint, 25, nil, models.CategoryEarn, 25},
		{"stamp", models.TxStamp, 1, nil, models.CategoryEarn, 0},
		{"gift with none", models.TxGiftRedeem, 1, apperrors.ErrNoGiftsAvailable, "", 0},
		{"unknown", "REFUND", 1, apperrors.ErrInvalidTransactionType, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel := &models.CustomerBusiness{StampsTarget: 5}
			out, err := Apply(rel, tt.txType, tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.category, out.Category)
			assert.Equal(t, tt.points, rel.Points)
		})
	}
}

func TestGrantCampaignReward(t *testing.T) {
	rel := &models.CustomerBusiness{StampsTarget: 5}
	out, err := GrantCampaignReward(rel, models.RewardPoints, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, rel.Points)
	assert.Equal(t, models.TxPoint, out.Type)

	rel = &models.CustomerBusiness{StampsTarget: 5, Stamps: 3}
	out, err = GrantCampaignReward(rel, models.RewardStamp, 8)
	require.NoError(t, err)
	// 3 + 8 = 11 stamps: two gifts, one stamp left, no visits counted.
	assert.Equal(t, 2, rel.GiftsCount)
	assert.Equal(t, 1, rel.Stamps)
	assert.Equal(t, 0, rel.TotalVisits)
	assert.Equal(t, models.TxStamp, out.Type)
	assert.Equal(t, 8, out.Value)

	_, err = GrantCampaignReward(rel, "coins", 1)
	assert.Error(t, err)
}

func TestTerminalPoints(t *testing.T) {
	amount := func(v float64) *float64 { return &v }

	assert.Equal(t, 10, TerminalPoints(nil))
	assert.Equal(t, 12, TerminalPoints(amount(129.99)))
	assert.Equal(t, 0, TerminalPoints(amount(9.5)))
	assert.Equal(t, 0, TerminalPoints(amount(-40)))
}

func TestDisplayValue(t *testing.T) {
	assert.Equal(t, "0.00", DisplayValue(0))
	assert.Equal(t, "12.50", DisplayValue(125))
	assert.Equal(t, "0.70", DisplayValue(7))
}
