package inventory

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// 模糊比對門檻
const (
	matchThreshold  = 0.6  // 食材名稱解析用
	answerThreshold = 0.82 // 口語查詢字詞用，要求更嚴
)

// ClosestKey 在庫存鍵裡找與 name 最接近的一個
// 低於門檻時原樣回傳 name，呼叫端須傳入排序過的鍵確保結果固定
func ClosestKey(name string, keys []string) string {
	if key, ok := bestMatch(name, keys, matchThreshold); ok {
		return key
	}
	return name
}

// bestMatch 以正規化編輯距離挑出分數最高的鍵
// 採嚴格大於比較，同分時保留先出現者
func bestMatch(name string, keys []string, threshold float64) (string, bool) {
	target := strings.ToLower(strings.TrimSpace(name))
	if target == "" {
		return "", false
	}

	best := ""
	bestScore := 0.0
	for _, key := range keys {
		if key == target {
			return key, true
		}
		if score := similarity(target, key); score > bestScore {
			bestScore = score
			best = key
		}
	}
	if bestScore >= threshold {
		return best, true
	}
	return "", false
}

// similarity 正規化相似度：1 - 編輯距離 / 較長字串的字元數
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}
