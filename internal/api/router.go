package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	assistantHandler "restaurant-assistant/internal/api/handlers/assistant"
	"restaurant-assistant/internal/api/handlers/health"
	"restaurant-assistant/internal/api/middleware"
	assistantService "restaurant-assistant/internal/core/assistant"
	"restaurant-assistant/internal/core/inventory"
	"restaurant-assistant/internal/core/recipe"
	trendingService "restaurant-assistant/internal/core/trending"
	"restaurant-assistant/internal/infrastructure/cache"
	"restaurant-assistant/internal/infrastructure/config"
	"restaurant-assistant/internal/infrastructure/search"
	"restaurant-assistant/internal/infrastructure/store"
	"restaurant-assistant/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 單一請求的處理超時，涵蓋最慢的搜尋鏈路
const timeoutDuration = 30 * time.Second

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, storeSvc *store.Service, cacheManager *cache.Manager) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(cfg.Server.MaxBodyBytes))

	// 限流與去重（可由設定關閉）
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	if cfg.DedupWindow > 0 {
		router.Use(middleware.Deduplication(cfg))
	}

	common.LogInfo("Initializing services",
		zap.Bool("store_available", storeSvc.Available()),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Duration("search_timeout", cfg.Search.Timeout),
	)

	// 初始化搜尋客戶端
	searchClient := search.NewClient(cfg, cacheManager)
	if searchClient == nil {
		common.LogError("Failed to initialize search client")
		return nil, fmt.Errorf("failed to initialize search client")
	}

	// 初始化庫存分析服務
	analyzer := inventory.NewAnalyzer(cfg.Assistant.LowStockThreshold)
	answerer := inventory.NewAnswerer()

	// 初始化食譜服務
	provider := recipe.NewProvider(searchClient, analyzer)

	// 存放區不可用時以 nil 介面注入，對應功能自行降級
	var (
		inventorySource assistantService.InventorySource
		queryLogger     assistantService.QueryLogger
		trendingReader  trendingService.Reader
	)
	if storeSvc.Available() {
		inventorySource = storeSvc
		queryLogger = storeSvc
		trendingReader = storeSvc
	}

	trendingSvc := trendingService.NewService(trendingReader)
	assistantSvc := assistantService.NewService(
		inventorySource,
		queryLogger,
		provider,
		analyzer,
		answerer,
		trendingSvc,
	)
	if assistantSvc == nil {
		common.LogError("Failed to initialize assistant service")
		return nil, fmt.Errorf("failed to initialize assistant service")
	}

	// 全局中間件：設置超時和服務
	router.Use(func(c *gin.Context) {
		// 設置請求超時
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		// 創建新的請求上下文
		req := c.Request.WithContext(ctx)
		c.Request = req

		// 設置配置與資料服務，供健康檢查使用
		c.Set("config", cfg)
		c.Set("store_service", storeSvc)

		// 處理請求
		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		handler := assistantHandler.NewHandler(assistantSvc, trendingSvc)

		// 註冊助理相關路由
		assistantGroup := api.Group("/assistant")
		{
			// 自然語言查詢
			assistantGroup.POST("/query", handler.HandleQuery)

			// 近期熱門菜色
			assistantGroup.GET("/trending", handler.HandleTrending)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("store_available", storeSvc.Available()),
		zap.Bool("cache_manager_initialized", cacheManager != nil),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", cfg.Server.MaxBodyBytes),
	)

	return router, nil
}
