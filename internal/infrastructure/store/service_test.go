package store

import (
	"context"
	"testing"

	"restaurant-assistant/internal/infrastructure/config"
	"restaurant-assistant/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceUnavailable(t *testing.T) {
	var svc *Service
	ctx := context.Background()

	_, err := svc.Fetch(ctx)
	assert.ErrorIs(t, err, common.ErrStoreUnavailable)

	err = svc.Append(ctx, common.QueryLogEntry{Dish: "pizza"})
	assert.ErrorIs(t, err, common.ErrStoreUnavailable)

	_, err = svc.TopDishes(ctx)
	assert.ErrorIs(t, err, common.ErrStoreUnavailable)

	assert.ErrorIs(t, svc.Ping(ctx), common.ErrStoreUnavailable)
	assert.False(t, svc.Available())
	assert.NoError(t, svc.Close())
}

func TestNewServiceDisabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Redis.Enabled = false
	cfg.Assistant.TrendingWindowDays = 3
	cfg.Assistant.TrendingLimit = 3

	svc, err := NewService(cfg)
	require.NoError(t, err)
	require.NotNil(t, svc)

	assert.False(t, svc.Available())
	assert.ErrorIs(t, svc.Ping(context.Background()), common.ErrStoreUnavailable)
}
