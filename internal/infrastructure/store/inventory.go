package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"restaurant-assistant/internal/pkg/common"

	"go.uber.org/zap"
)

// Fetch 讀取庫存快照
// 資料放在 hash：欄位是食材名稱，值是數量，名稱一律轉小寫
func (s *Service) Fetch(ctx context.Context) (common.InventorySnapshot, error) {
	if s == nil || s.client == nil {
		return nil, common.ErrStoreUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	values, err := s.client.HGetAll(ctx, s.config.InventoryKey).Result()
	common.LogStoreCall("inventory.fetch", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	snap := make(common.InventorySnapshot, len(values))
	for name, raw := range values {
		qty, convErr := strconv.Atoi(strings.TrimSpace(raw))
		if convErr != nil {
			// 數量不是整數的欄位略過，不讓單筆髒資料弄掛整個快照
			common.LogWarn("庫存數量格式不正確，略過",
				zap.String("name", name),
				zap.String("value", raw),
			)
			continue
		}
		snap[strings.ToLower(name)] = qty
	}
	return snap, nil
}
