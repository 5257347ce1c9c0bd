package assistant

import (
	"context"
	"fmt"
	"time"

	"restaurant-assistant/internal/core/inventory"
	"restaurant-assistant/internal/core/nlu"
	"restaurant-assistant/internal/core/recipe"
	"restaurant-assistant/internal/core/trending"
	"restaurant-assistant/internal/pkg/common"

	"go.uber.org/zap"
)

// InventorySource 庫存快照來源
type InventorySource interface {
	Fetch(ctx context.Context) (common.InventorySnapshot, error)
}

// QueryLogger 查詢紀錄寫入端
type QueryLogger interface {
	Append(ctx context.Context, entry common.QueryLogEntry) error
}

// 固定回覆文案
const (
	msgOutOfDomain = "I'm a restaurant assistant, so that's outside what I can help with. " +
		"I can help with recipes, ingredient availability, and trending dishes."
	msgRecipeClarify = "I'd be happy to help you with a recipe! Could you please specify what dish you'd like to make? " +
		"For example: 'How to make lemon juice' or 'Recipe for pizza'."
	msgInventoryPrompt = "Please specify which dish or ingredient you'd like me to check."
	msgGeneralHelp     = "I can help you with recipes, ingredient checks, and restaurant insights. What would you like to know?"
	msgDefaultHelp     = "I'm here to help with recipes and ingredient information. How can I assist you today?"
	msgSourceDown      = "Inventory data source is currently unavailable. Please try again later."
)

// Service 助理協調服務，負責解析意圖並分派到各子服務
type Service struct {
	source   InventorySource
	queryLog QueryLogger
	provider *recipe.Provider
	analyzer *inventory.Analyzer
	answerer *inventory.Answerer
	trending *trending.Service
}

// NewService 創建助理服務
// source 與 queryLog 可為 nil，對應的功能會降級而不是失敗
func NewService(
	source InventorySource,
	queryLog QueryLogger,
	provider *recipe.Provider,
	analyzer *inventory.Analyzer,
	answerer *inventory.Answerer,
	trendingSvc *trending.Service,
) *Service {
	return &Service{
		source:   source,
		queryLog: queryLog,
		provider: provider,
		analyzer: analyzer,
		answerer: answerer,
		trending: trendingSvc,
	}
}

// Query 助理唯一入口
// 任何內部失敗都轉成道歉字串回覆，不對外拋錯
func (s *Service) Query(ctx context.Context, text, audioRef string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			common.LogError("助理處理發生 panic",
				zap.Any("panic", r),
				zap.String("query", common.Truncate(text, 200)),
			)
			reply = fmt.Sprintf("I encountered an error while processing your request: %v", r)
		}
	}()

	if audioRef != "" {
		// 音訊轉寫尚未支援，僅記錄引用
		common.LogDebug("收到音訊引用，暫不處理", zap.Int("ref_len", len(audioRef)))
	}

	snap, sourceDown := s.fetchInventory(ctx)
	intent := nlu.ClassifyIntent(text)
	dish := nlu.ExtractDish(text)

	common.LogInfo("查詢解析完成",
		zap.String("intent", string(intent)),
		zap.String("dish", dish),
	)

	switch intent {
	case nlu.IntentOutOfDomain:
		return msgOutOfDomain

	case nlu.IntentRecipe:
		if dish == "" {
			return msgRecipeClarify
		}
		s.logQuery(ctx, text, dish)
		return s.provider.Provide(ctx, dish, snap)

	case nlu.IntentInventory:
		if sourceDown {
			return msgSourceDown
		}
		answer, found := s.answerer.Answer(text, snap)
		// 口語查詢落空但句中有菜名，改走菜式食材分析
		if !found && dish != "" {
			return s.analyzer.Report(dish, snap)
		}
		if answer == "" {
			return msgInventoryPrompt
		}
		return answer

	case nlu.IntentTrending:
		return s.trending.Top(ctx)

	case nlu.IntentGeneralQuery:
		return msgGeneralHelp
	}

	return msgDefaultHelp
}

// fetchInventory 取庫存快照，來源故障時降級成空快照
func (s *Service) fetchInventory(ctx context.Context) (common.InventorySnapshot, bool) {
	if s.source == nil {
		return common.InventorySnapshot{}, true
	}
	snap, err := s.source.Fetch(ctx)
	if err != nil {
		common.LogWarn("庫存來源讀取失敗，改用空快照", zap.Error(err))
		return common.InventorySnapshot{}, true
	}
	if snap == nil {
		snap = common.InventorySnapshot{}
	}
	return snap, false
}

// logQuery 盡力而為寫入查詢紀錄，失敗只記警告不影響回覆
func (s *Service) logQuery(ctx context.Context, text, dish string) {
	if s.queryLog == nil {
		return
	}
	entry := common.QueryLogEntry{
		Query:     text,
		Dish:      dish,
		Timestamp: time.Now().UTC(),
	}
	if err := s.queryLog.Append(ctx, entry); err != nil {
		common.LogWarn("查詢紀錄寫入失敗", zap.Error(err))
	}
}
