package campaign

import (
	"context"
	"testing"
	"time"

	apperrors "counpaign/internal/errors"
	"counpaign/internal/models"
	"counpaign/internal/repositories/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService() *service {
	return &service{store: memstore.New(), now: func() time.Time { return now }}
}

func validRequest() CreateRequest {
	end := now.Add(30 * 24 * time.Hour)
	return CreateRequest{
		Title:            "Beşinci kahve bizden",
		ShortDescription: "Her beş kahveye bir kahve",
		Content:          "Detaylar",
		RewardType:       models.RewardStamp,
		EndDate:          &end,
	}
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int { return &v }

func TestService_CreateDefaults(t *testing.T) {
	svc := newTestService()
	businessID := uuid.New()

	c, err := svc.Create(context.Background(), businessID, validRequest())
	require.NoError(t, err)
	assert.Equal(t, businessID, c.BusinessID)
	assert.Equal(t, models.DefaultRewardValue, c.RewardValue)
	assert.Equal(t, models.DefaultRewardValidityDays, c.RewardValidityDays)
	assert.Equal(t, models.DefaultCampaignIcon, c.Icon)
	assert.Equal(t, now, c.StartDate)
	assert.False(t, c.IsPromoted)
}

func TestService_CreateValidation(t *testing.T) {
	before := now.Add(-time.Hour)

	tests := []struct {
		name  string
		edit  func(r *CreateRequest)
		field string
	}{
		{"missing title", func(r *CreateRequest) { r.Title = "  " }, "title"},
		{"unknown reward type", func(r *CreateRequest) { r.RewardType = "cash" }, "rewardType"},
		{"missing end date", func(r *CreateRequest) { r.EndDate = nil }, "endDate"},
		{"end before start", func(r *CreateRequest) { r.EndDate = &before }, "endDate"},
		{"negative reward", func(r *CreateRequest) { r.RewardValue = intPtr(-1) }, "rewardValue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.edit(&req)
			_, err := newTestService().Create(context.Background(), uuid.New(), req)
			de, ok := apperrors.As(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, apperrors.CodeValidation, de.Code)
			assert.Contains(t, de.Fields, tt.field)
		})
	}
}

func TestService_UpdateOwnerOnly(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	owner := uuid.New()

	c, err := svc.Create(ctx, owner, validRequest())
	require.NoError(t, err)

	_, err = svc.Update(ctx, uuid.New(), c.ID, Patch{Title: strPtr("Hijack")})
	assert.ErrorIs(t, err, apperrors.ErrCampaignNotFound)

	updated, err := svc.Update(ctx, owner, c.ID, Patch{Title: strPtr("Yeni başlık"), RewardValue: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, "Yeni başlık", updated.Title)
	assert.Equal(t, 3, updated.RewardValue)
	assert.Equal(t, c.ShortDescription, updated.ShortDescription)
	assert.Equal(t, owner, updated.BusinessID)

	_, err = svc.Update(ctx, owner, c.ID, Patch{RewardType: strPtr("cash")})
	assert.Equal(t, 400, apperrors.StatusOf(err))

	got, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RewardStamp, got.RewardType)
}

func TestService_Delete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	owner := uuid.New()

	c, err := svc.Create(ctx, owner, validRequest())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, uuid.New(), c.ID), apperrors.ErrCampaignNotFound)
	require.NoError(t, svc.Delete(ctx, owner, c.ID))

	_, err = svc.Get(ctx, c.ID)
	assert.ErrorIs(t, err, apperrors.ErrCampaignNotFound)
}

func TestService_ListOrdering(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	owner := uuid.New()

	for i, title := range []string{"first", "second", "third"} {
		req := validRequest()
		req.Title = title
		req.DisplayOrder = 2 - i
		req.IsPromoted = i == 1
		_, err := svc.Create(ctx, owner, req)
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, uuid.New(), validRequest())
	require.NoError(t, err)

	byBusiness, err := svc.ListByBusiness(ctx, owner)
	require.NoError(t, err)
	require.Len(t, byBusiness, 3)
	assert.Equal(t, "third", byBusiness[0].Title)
	assert.Equal(t, "first", byBusiness[2].Title)

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	promoted, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, promoted, 1)
	assert.Equal(t, "second", promoted[0].Title)

	empty, err := svc.ListByBusiness(ctx, uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, empty)
}
