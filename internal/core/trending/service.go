package trending

import (
	"context"
	"fmt"
	"strings"

	"restaurant-assistant/internal/pkg/common"

	"go.uber.org/zap"
)

// Reader 查詢紀錄的趨勢讀取端，回傳已按次數排序的菜式統計
type Reader interface {
	TopDishes(ctx context.Context) ([]common.DishCount, error)
}

// Service 近期趨勢菜式服務
type Service struct {
	reader Reader
}

// NewService 創建趨勢服務，reader 可為 nil（紀錄後端未啟用）
func NewService(reader Reader) *Service {
	return &Service{reader: reader}
}

// Top 取得近期趨勢菜式的彙總文字，任何故障都降級成固定訊息
func (s *Service) Top(ctx context.Context) string {
	if s.reader == nil {
		return "Trending data not available."
	}

	items, err := s.reader.TopDishes(ctx)
	if err != nil {
		common.LogWarn("趨勢資料讀取失敗", zap.Error(err))
		return "Unable to fetch trending data."
	}
	if len(items) == 0 {
		return "No trending data available yet."
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s (%d requests)", item.Dish, item.Count))
	}
	return "Recent trending dishes: " + strings.Join(parts, ", ")
}
