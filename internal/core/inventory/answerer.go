package inventory

import (
	"fmt"
	"regexp"
	"strings"

	"restaurant-assistant/internal/pkg/common"
)

// 只取英文字母組成的詞
var wordPattern = regexp.MustCompile(`[a-z]+`)

// 查詢斷詞的停用詞：冠詞、疑問詞、查詢動詞與泛稱名詞
var queryStopWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"do": true, "does": true, "did": true, "is": true, "are": true,
	"was": true, "were": true, "have": true, "has": true, "had": true,
	"we": true, "i": true, "you": true, "our": true, "us": true, "me": true, "my": true,
	"there": true, "any": true, "some": true, "how": true, "many": true, "much": true,
	"of": true, "in": true, "on": true, "for": true, "and": true, "or": true,
	"to": true, "at": true, "with": true, "about": true, "what": true, "which": true,
	"stock": true, "inventory": true, "available": true, "left": true,
	"need": true, "check": true, "quantity": true, "count": true,
	"unit": true, "units": true, "item": true, "items": true,
	"ingredient": true, "ingredients": true, "kitchen": true,
	"still": true, "got": true, "please": true, "currently": true,
}

// 沒找到任何項目時，提示清單最多列出的品項數
const notFoundHintLimit = 5

// Answerer 庫存口語查詢服務
type Answerer struct{}

// NewAnswerer 創建庫存查詢服務
func NewAnswerer() *Answerer {
	return &Answerer{}
}

// Answer 回答庫存查詢
// 第二個回傳值只在「真的沒找到任何品項」時為 false，讓呼叫端能改走菜式分析
func (an *Answerer) Answer(text string, snap common.InventorySnapshot) (string, bool) {
	if snap.IsEmpty() {
		return "Inventory is currently empty. No ingredient data available.", true
	}

	lowered := strings.ToLower(text)
	keys := snap.Keys()

	var matched []string
	matchedSet := make(map[string]bool)

	// 第一輪：庫存鍵直接以子字串出現在原句中
	for _, key := range keys {
		if strings.Contains(lowered, key) {
			matchedSet[key] = true
			matched = append(matched, key)
		}
	}

	// 第二輪：剩餘候選詞做模糊比對
	for _, cand := range candidateTerms(lowered) {
		if subsumedByMatch(cand, matchedSet) {
			continue
		}
		key, ok := bestMatch(cand, keys, answerThreshold)
		if ok && !matchedSet[key] {
			matchedSet[key] = true
			matched = append(matched, key)
		}
	}

	if len(matched) == 0 {
		hint := keys
		if len(hint) > notFoundHintLimit {
			hint = hint[:notFoundHintLimit]
		}
		return fmt.Sprintf("I couldn't find those items in the inventory. Some items we track: %s.",
			strings.Join(hint, ", ")), false
	}

	parts := make([]string, 0, len(matched))
	for _, key := range matched {
		parts = append(parts, fmt.Sprintf("%s: %d", key, snap[key]))
	}
	return strings.Join(parts, " | "), true
}

// candidateTerms 斷詞去停用詞後，產生單字詞與相鄰雙字詞候選，保序去重
func candidateTerms(lowered string) []string {
	words := wordPattern.FindAllString(lowered, -1)

	terms := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) <= 1 || queryStopWords[w] {
			continue
		}
		terms = append(terms, w)
	}

	candidates := make([]string, 0, len(terms)*2)
	seen := make(map[string]bool)
	for _, t := range terms {
		if !seen[t] {
			seen[t] = true
			candidates = append(candidates, t)
		}
	}
	for i := 0; i+1 < len(terms); i++ {
		bigram := terms[i] + " " + terms[i+1]
		if !seen[bigram] {
			seen[bigram] = true
			candidates = append(candidates, bigram)
		}
	}
	return candidates
}

// subsumedByMatch 候選詞與已命中的鍵互為子字串時不再比對，避免重複
func subsumedByMatch(cand string, matchedSet map[string]bool) bool {
	for key := range matchedSet {
		if strings.Contains(key, cand) || strings.Contains(cand, key) {
			return true
		}
	}
	return false
}
