package store

import (
	"context"
	"fmt"
	"time"

	"restaurant-assistant/internal/infrastructure/config"
	"restaurant-assistant/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

// Service Redis 資料服務，承載庫存快照與查詢紀錄兩種資料
type Service struct {
	client *redis.Client
	config *config.RedisConfig
	window time.Duration
	limit  int
}

// NewService 創建資料服務
// Redis 未啟用時回傳 client 為 nil 的服務，各方法自行降級
func NewService(cfg *config.Config) (*Service, error) {
	s := &Service{
		config: &cfg.Redis,
		window: time.Duration(cfg.Assistant.TrendingWindowDays) * 24 * time.Hour,
		limit:  cfg.Assistant.TrendingLimit,
	}
	if !cfg.Redis.Enabled {
		return s, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// 測試連接
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	s.client = client
	return s, nil
}

// Available 回報是否有可用的 Redis 連線
func (s *Service) Available() bool {
	return s != nil && s.client != nil
}

// Ping 檢查連線，供就緒檢查使用
func (s *Service) Ping(ctx context.Context) error {
	if s == nil || s.client == nil {
		return common.ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()
	return s.client.Ping(ctx).Err()
}

// Close 關閉連線
func (s *Service) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}
