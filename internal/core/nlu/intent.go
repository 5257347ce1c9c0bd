package nlu

import (
	"regexp"
	"strings"
)

// Intent 查詢意圖
type Intent string

const (
	IntentOutOfDomain  Intent = "out_of_domain"
	IntentRecipe       Intent = "recipe_request"
	IntentInventory    Intent = "inventory_check"
	IntentTrending     Intent = "trending_request"
	IntentGeneralQuery Intent = "general_query"
)

// intentRule 一條意圖規則：正則命中即回傳對應意圖
type intentRule struct {
	pattern *regexp.Regexp
	intent  Intent
}

// 意圖規則表，由上而下逐條比對，先命中先贏
// 全部使用 \b 斷詞邊界，"chave" 不會誤中 "have"
var intentRules = []intentRule{
	// 食譜類
	{regexp.MustCompile(`\brecipe\b`), IntentRecipe},
	{regexp.MustCompile(`\bhow to (make|cook|prepare)\b`), IntentRecipe},
	{regexp.MustCompile(`\bhow do i (make|cook|prepare)\b`), IntentRecipe},
	{regexp.MustCompile(`\bingredients? (of|for)\b`), IntentRecipe},

	// 庫存類
	{regexp.MustCompile(`\bstock\b`), IntentInventory},
	{regexp.MustCompile(`\binventory\b`), IntentInventory},
	{regexp.MustCompile(`\bavailable\b`), IntentInventory},
	{regexp.MustCompile(`\bhave\b`), IntentInventory},
	{regexp.MustCompile(`\bneed\b`), IntentInventory},
	{regexp.MustCompile(`\bhow (many|much)\b`), IntentInventory},
	{regexp.MustCompile(`\bleft\b`), IntentInventory},
	{regexp.MustCompile(`\bquantity\b`), IntentInventory},
	{regexp.MustCompile(`\bcount\b`), IntentInventory},
	{regexp.MustCompile(`\bunits?\b`), IntentInventory},
	{regexp.MustCompile(`\brun out\b`), IntentInventory},

	// 趨勢類
	{regexp.MustCompile(`\btrending\b`), IntentTrending},
	{regexp.MustCompile(`\bpopular\b`), IntentTrending},
	{regexp.MustCompile(`\bbest sellers?\b`), IntentTrending},
	{regexp.MustCompile(`\bmost ordered\b`), IntentTrending},
	{regexp.MustCompile(`\brecommend\b`), IntentTrending},
	{regexp.MustCompile(`\bsuggestions?\b`), IntentTrending},
}

// ClassifyIntent 對輸入文字分類意圖
// 先過領域檢查，領域外一律回 out_of_domain，之後按規則表比對
func ClassifyIntent(text string) Intent {
	if !InDomain(text) {
		return IntentOutOfDomain
	}

	lowered := strings.ToLower(text)
	for _, rule := range intentRules {
		if rule.pattern.MatchString(lowered) {
			return rule.intent
		}
	}
	return IntentGeneralQuery
}
