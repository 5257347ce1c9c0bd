package cache

import (
	"context"
	"testing"
	"time"

	"restaurant-assistant/internal/infrastructure/config"
	"restaurant-assistant/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, maxSize int, ttl time.Duration) *Manager {
	t.Helper()

	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.MaxSize = maxSize
	cfg.Cache.TTL = ttl
	cfg.Cache.CleanupInterval = time.Minute

	m := NewManager(cfg)
	require.NotNil(t, m)
	t.Cleanup(func() { m.Close() })
	return m
}

func TestManagerDisabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enabled = false

	assert.Nil(t, NewManager(cfg))
}

func TestManagerNilSafe(t *testing.T) {
	var m *Manager
	ctx := context.Background()

	_, err := m.Get(ctx, "pizza")
	assert.ErrorIs(t, err, common.ErrCacheDisabled)

	assert.NoError(t, m.Set(ctx, "pizza", "result"))
	assert.NoError(t, m.Close())

	stats := m.GetStats()
	assert.Equal(t, false, stats["enabled"])
}

func TestManagerRoundTrip(t *testing.T) {
	m := newTestManager(t, 10, time.Hour)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "pizza", "pizza result"))

	got, err := m.Get(ctx, "pizza")
	require.NoError(t, err)
	assert.Equal(t, "pizza result", got)

	// 鍵以正規化後的菜名產生，大小寫與前後空白不影響命中
	got, err = m.Get(ctx, "  PIZZA  ")
	require.NoError(t, err)
	assert.Equal(t, "pizza result", got)
}

func TestManagerMiss(t *testing.T) {
	m := newTestManager(t, 10, time.Hour)

	_, err := m.Get(context.Background(), "unknown dish")
	assert.Error(t, err)
}

func TestManagerExpiry(t *testing.T) {
	m := newTestManager(t, 10, 10*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "pizza", "pizza result"))
	time.Sleep(30 * time.Millisecond)

	_, err := m.Get(ctx, "pizza")
	assert.Error(t, err)
}

func TestManagerLRUEviction(t *testing.T) {
	m := newTestManager(t, 2, time.Hour)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "pizza", "pizza result"))
	require.NoError(t, m.Set(ctx, "pasta", "pasta result"))

	// pizza 被讀過一次，淘汰時應先犧牲沒人讀過的 pasta
	_, err := m.Get(ctx, "pizza")
	require.NoError(t, err)

	require.NoError(t, m.Set(ctx, "cake", "cake result"))

	_, err = m.Get(ctx, "pizza")
	assert.NoError(t, err)
	_, err = m.Get(ctx, "pasta")
	assert.Error(t, err)
	_, err = m.Get(ctx, "cake")
	assert.NoError(t, err)
}

func TestManagerStats(t *testing.T) {
	m := newTestManager(t, 10, time.Hour)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "pizza", "pizza result"))
	_, _ = m.Get(ctx, "pizza")
	_, _ = m.Get(ctx, "pasta")

	stats := m.GetStats()
	assert.Equal(t, 1, stats["size"])
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
	assert.Equal(t, 0.5, stats["hit_ratio"])
}
