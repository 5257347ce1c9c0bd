package health

import (
	"errors"
	"net/http"
	"runtime"
	"time"

	"restaurant-assistant/internal/infrastructure/config"
	"restaurant-assistant/internal/infrastructure/store"
	"restaurant-assistant/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 服務啟動時間，供健康檢查回報運行時長
var startTime = time.Now()

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Uptime    string                 `json:"uptime"`
	Runtime   map[string]interface{} `json:"runtime"`
	Store     string                 `json:"store"`
}

// HealthCheck 健康檢查處理器
func HealthCheck(c *gin.Context) {
	// 獲取配置
	cfg, exists := c.Get("config")
	if !exists {
		common.LogError("Configuration not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Configuration not found",
		})
		return
	}
	config, ok := cfg.(*config.Config)
	if !ok {
		common.LogError("Invalid configuration type in context")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Invalid configuration type",
		})
		return
	}

	// 獲取運行時信息
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	// 構建響應
	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   config.App.Version,
		Uptime:    time.Since(startTime).Round(time.Second).String(),
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
		Store: storeStatus(c),
	}

	// 記錄請求
	common.LogInfo("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查處理器，會實際 Ping 資料存放區
func ReadinessCheck(c *gin.Context) {
	svc := storeFromContext(c)
	if svc == nil {
		c.JSON(http.StatusOK, gin.H{
			"status": "ready",
		})
		return
	}

	if err := svc.Ping(c.Request.Context()); err != nil {
		// 存放區未啟用時不影響就緒狀態
		if errors.Is(err, common.ErrStoreUnavailable) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ready",
				"store":  "disabled",
			})
			return
		}
		common.LogWarn("就緒檢查失敗",
			zap.Error(err),
		)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"store":  "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"store":  "connected",
	})
}

// LivenessCheck 存活檢查處理器
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}

// storeStatus 回報存放區連線狀態字串
func storeStatus(c *gin.Context) string {
	svc := storeFromContext(c)
	if svc == nil || !svc.Available() {
		return "disabled"
	}
	if err := svc.Ping(c.Request.Context()); err != nil {
		return "unreachable"
	}
	return "connected"
}

// storeFromContext 從請求上下文取出資料服務
func storeFromContext(c *gin.Context) *store.Service {
	svc, exists := c.Get("store_service")
	if !exists {
		return nil
	}
	storeSvc, ok := svc.(*store.Service)
	if !ok {
		return nil
	}
	return storeSvc
}
