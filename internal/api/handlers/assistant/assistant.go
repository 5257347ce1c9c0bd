package assistant

import (
	"net/http"

	assistantService "restaurant-assistant/internal/core/assistant"
	trendingService "restaurant-assistant/internal/core/trending"
	"restaurant-assistant/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QueryRequest 自然語言查詢請求
type QueryRequest struct {
	Text     string `json:"text" binding:"required"` // 使用者輸入的問題原文
	AudioRef string `json:"audio_ref,omitempty"`     // 語音輸入的來源參考，僅記錄不解析
}

// QueryResponse 助理回覆
type QueryResponse struct {
	Response  string `json:"response"`
	RequestID string `json:"request_id"`
}

// Handler 助理 API 處理器
type Handler struct {
	assistantSvc *assistantService.Service
	trendingSvc  *trendingService.Service
}

// NewHandler 創建助理處理器
func NewHandler(assistantSvc *assistantService.Service, trendingSvc *trendingService.Service) *Handler {
	return &Handler{
		assistantSvc: assistantSvc,
		trendingSvc:  trendingSvc,
	}
}

// HandleQuery 處理自然語言查詢
func (h *Handler) HandleQuery(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	common.LogInfo("收到助理查詢",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式錯誤",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	// 核心服務自行吞錯並回覆致歉訊息，這裡永遠回 200
	reply := h.assistantSvc.Query(c.Request.Context(), req.Text, req.AudioRef)

	c.JSON(http.StatusOK, QueryResponse{
		Response:  reply,
		RequestID: requestID,
	})
}

// HandleTrending 回傳近期熱門菜色
func (h *Handler) HandleTrending(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}

	reply := h.trendingSvc.Top(c.Request.Context())

	c.JSON(http.StatusOK, QueryResponse{
		Response:  reply,
		RequestID: requestID,
	})
}
