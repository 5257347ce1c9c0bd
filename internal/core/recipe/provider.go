package recipe

import (
	"context"

	"restaurant-assistant/internal/core/inventory"
	"restaurant-assistant/internal/pkg/common"

	"go.uber.org/zap"
)

// 搜尋結果至少要超過這個長度才視為可用
const minSearchResultLen = 20

// Searcher 網路食譜搜尋端
type Searcher interface {
	Search(ctx context.Context, dish string) (string, error)
}

// Provider 食譜提供服務：先搜尋網路，失敗退用靜態食譜，一律附上庫存分析
type Provider struct {
	searcher Searcher
	analyzer *inventory.Analyzer
}

// NewProvider 創建食譜提供服務，searcher 可為 nil（純離線模式）
func NewProvider(searcher Searcher, analyzer *inventory.Analyzer) *Provider {
	return &Provider{
		searcher: searcher,
		analyzer: analyzer,
	}
}

// Provide 取得菜式食譜內容並附上食材庫存分析
func (p *Provider) Provide(ctx context.Context, dish string, snap common.InventorySnapshot) string {
	body := ""
	if p.searcher != nil {
		result, err := p.searcher.Search(ctx, dish)
		switch {
		case err != nil:
			common.LogWarn("網路搜尋失敗，改用靜態食譜",
				zap.String("dish", dish),
				zap.Error(err),
			)
		case len(result) > minSearchResultLen:
			body = result
		}
	}
	if body == "" {
		body = BasicRecipe(dish)
	}

	return body + "\n\n" + p.analyzer.Report(dish, snap)
}
