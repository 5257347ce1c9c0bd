package search

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"restaurant-assistant/internal/infrastructure/cache"
	"restaurant-assistant/internal/infrastructure/config"
	"restaurant-assistant/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// 結果過濾規則
const (
	minSnippetLen    = 30  // Google 片段最短長度
	minAbstractLen   = 50  // DuckDuckGo 摘要最短長度
	maxCombinedLen   = 500 // 合併結果長度上限
	maxSnippets      = 3   // 最多取幾個 Google 片段
	maxRelatedTopics = 3   // 最多看幾個 DuckDuckGo 相關主題
)

const defaultTimeout = 10 * time.Second

// Client 網路食譜搜尋客戶端
// Google Custom Search 優先，沒配金鑰或沒結果時退用 DuckDuckGo
type Client struct {
	config *config.SearchConfig
	google *resty.Client
	ddg    *resty.Client
	cache  *cache.Manager
}

// googleResponse Google Custom Search 回應
type googleResponse struct {
	Items []struct {
		Snippet string `json:"snippet"`
	} `json:"items"`
}

// ddgResponse DuckDuckGo Instant Answer 回應
// RelatedTopics 內容不齊一，沒有 Text 的主題條目解析後為空字串
type ddgResponse struct {
	Abstract      string `json:"Abstract"`
	RelatedTopics []struct {
		Text string `json:"Text"`
	} `json:"RelatedTopics"`
}

// NewClient 創建搜尋客戶端，cacheManager 可為 nil
func NewClient(cfg *config.Config, cacheManager *cache.Manager) *Client {
	timeout := cfg.Search.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		config: &cfg.Search,
		google: resty.New().
			SetBaseURL("https://www.googleapis.com").
			SetTimeout(timeout),
		ddg: resty.New().
			SetBaseURL("https://api.duckduckgo.com").
			SetTimeout(timeout),
		cache: cacheManager,
	}
}

// Search 搜尋菜式食譜摘要
// 兩個來源都沒有可用結果時回傳空字串，由呼叫端決定退路
func (c *Client) Search(ctx context.Context, dish string) (string, error) {
	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, dish); err == nil && cached != "" {
			return cached, nil
		}
	}

	var lastErr error

	// Google Custom Search 優先，需要 API key 與 engine ID
	if c.config.GoogleAPIKey != "" && c.config.GoogleEngineID != "" {
		result, err := c.googleSearch(ctx, dish)
		if err != nil {
			lastErr = err
		} else if result != "" {
			c.cacheResult(ctx, dish, result)
			return result, nil
		}
	}

	// 退用 DuckDuckGo，免金鑰
	result, err := c.duckduckgoSearch(ctx, dish)
	if err != nil {
		lastErr = err
	} else if result != "" {
		c.cacheResult(ctx, dish, result)
		return result, nil
	}

	return "", lastErr
}

// googleSearch 呼叫 Google Custom Search API
func (c *Client) googleSearch(ctx context.Context, dish string) (string, error) {
	start := time.Now()
	resp, err := c.google.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":          c.config.GoogleAPIKey,
			"cx":           c.config.GoogleEngineID,
			"q":            dish + " recipe ingredients instructions how to make step by step cooking",
			"num":          "3",
			"dateRestrict": "m1", // 只要近一個月的結果
		}).
		Get("/customsearch/v1")
	common.LogSearchCall("google", time.Since(start), err)

	if err != nil {
		return "", fmt.Errorf("failed to call Google Custom Search: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("Google Custom Search returned status %d", resp.StatusCode())
	}

	var result googleResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse Google response: %w", err)
	}

	snippets := make([]string, 0, maxSnippets)
	for i, item := range result.Items {
		if i >= maxSnippets {
			break
		}
		snippet := common.NormalizeSpaces(item.Snippet)
		if len(snippet) > minSnippetLen {
			snippets = append(snippets, snippet)
		}
	}
	if len(snippets) == 0 {
		return "", nil
	}

	combined := common.NormalizeSpaces(strings.Join(snippets, " "))
	if len(combined) > maxCombinedLen {
		combined = combined[:maxCombinedLen] + "..."
	}
	return combined, nil
}

// duckduckgoSearch 呼叫 DuckDuckGo Instant Answer API
func (c *Client) duckduckgoSearch(ctx context.Context, dish string) (string, error) {
	start := time.Now()
	resp, err := c.ddg.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":             dish + " recipe ingredients instructions how to make step by step",
			"format":        "json",
			"no_html":       "1",
			"skip_disambig": "1",
		}).
		Get("/")
	common.LogSearchCall("duckduckgo", time.Since(start), err)

	if err != nil {
		return "", fmt.Errorf("failed to call DuckDuckGo: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("DuckDuckGo returned status %d", resp.StatusCode())
	}

	var result ddgResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse DuckDuckGo response: %w", err)
	}

	if abstract := common.NormalizeSpaces(result.Abstract); len(abstract) > minAbstractLen {
		return abstract, nil
	}

	// 摘要不夠長，改看相關主題，內容要提到 recipe 才收
	for i, topic := range result.RelatedTopics {
		if i >= maxRelatedTopics {
			break
		}
		text := common.NormalizeSpaces(topic.Text)
		if len(text) > minAbstractLen && strings.Contains(strings.ToLower(text), "recipe") {
			return text, nil
		}
	}
	return "", nil
}

// cacheResult 寫入快取，失敗不影響主流程
func (c *Client) cacheResult(ctx context.Context, dish, result string) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, dish, result); err != nil {
		common.LogDebug("搜尋結果快取寫入失敗", zap.Error(err))
	}
}
