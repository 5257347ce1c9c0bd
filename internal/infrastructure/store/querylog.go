package store

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"restaurant-assistant/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Append 寫入一筆查詢紀錄
// 放進 sorted set，score 取時間戳，之後能直接做時間範圍查詢
func (s *Service) Append(ctx context.Context, entry common.QueryLogEntry) error {
	if s == nil || s.client == nil {
		return common.ErrStoreUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	member, err := common.ToJSON(entry)
	if err != nil {
		return fmt.Errorf("failed to encode query log entry: %w", err)
	}

	start := time.Now()
	err = s.client.ZAdd(ctx, s.config.QueryLogKey, &redis.Z{
		Score:  float64(entry.Timestamp.Unix()),
		Member: member,
	}).Err()
	common.LogStoreCall("querylog.append", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to append query log: %w", err)
	}
	return nil
}

// TopDishes 統計時間窗內被提到的菜式，按次數排序取前幾名
func (s *Service) TopDishes(ctx context.Context) ([]common.DishCount, error) {
	if s == nil || s.client == nil {
		return nil, common.ErrStoreUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	since := time.Now().UTC().Add(-s.window)
	start := time.Now()
	members, err := s.client.ZRangeByScore(ctx, s.config.QueryLogKey, &redis.ZRangeBy{
		Min: strconv.FormatInt(since.Unix(), 10),
		Max: "+inf",
	}).Result()
	common.LogStoreCall("querylog.trending", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to read query log: %w", err)
	}

	entries := make([]common.QueryLogEntry, 0, len(members))
	for _, member := range members {
		var entry common.QueryLogEntry
		if parseErr := common.ParseJSON(member, &entry); parseErr != nil {
			common.LogWarn("查詢紀錄解析失敗，略過", zap.Error(parseErr))
			continue
		}
		entries = append(entries, entry)
	}

	return aggregateTrending(entries, s.limit), nil
}

// aggregateTrending 聚合菜式出現次數
// 次數多者在前，同次數按菜名字母序，輸出順序固定
func aggregateTrending(entries []common.QueryLogEntry, limit int) []common.DishCount {
	counts := make(map[string]int)
	for _, entry := range entries {
		if entry.Dish == "" {
			continue
		}
		counts[entry.Dish]++
	}

	result := make([]common.DishCount, 0, len(counts))
	for dish, count := range counts {
		result = append(result, common.DishCount{Dish: dish, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Dish < result[j].Dish
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}
