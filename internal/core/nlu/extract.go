package nlu

import (
	"regexp"
	"strings"
)

// 菜名擷取樣板，由上而下逐條比對，先命中先贏
// 捕捉組只收字母與空白，標點自然成為邊界
var dishPatterns = []*regexp.Regexp{
	regexp.MustCompile(`how to (?:make|cook|prepare)\s+([a-z\s]+)`),
	regexp.MustCompile(`recipe for\s+([a-z\s]+)`),
	regexp.MustCompile(`ingredients? of\s+([a-z\s]+)`),
	regexp.MustCompile(`how to\s+([a-z\s]+)`),
	regexp.MustCompile(`([a-z\s]+)\s+recipe`),
	regexp.MustCompile(`ingredients for\s+([a-z\s]+)`),
}

// 捕捉結尾常見的禮貌與贅詞，要從尾端剝掉
var trailingFiller = map[string]bool{
	"please": true,
	"thanks": true,
	"thank":  true,
	"you":    true,
	"ask":    true,
	"today":  true,
	"now":    true,
}

// 已知菜名清單，多字詞排前面，樣板都沒中時用子字串掃描
var knownDishes = []string{
	"lemon juice",
	"pizza", "pasta", "salad", "soup", "cake", "bread", "rice",
	"chicken", "fish", "beef", "pork", "burger", "sandwich",
}

// ExtractDish 從查詢文字擷取菜名，找不到時回傳空字串
func ExtractDish(text string) string {
	lowered := strings.ToLower(text)

	for _, pattern := range dishPatterns {
		m := pattern.FindStringSubmatch(lowered)
		if m == nil {
			continue
		}
		dish := stripTrailingFiller(strings.TrimSpace(m[1]))
		// 單一字元視為雜訊，換下一條樣板
		if len(dish) > 1 {
			return dish
		}
	}

	// 樣板都沒中，退回已知菜名掃描
	for _, dish := range knownDishes {
		if strings.Contains(lowered, dish) {
			return dish
		}
	}
	return ""
}

// stripTrailingFiller 從尾端逐字剝除贅詞，中間的字不動
func stripTrailingFiller(dish string) string {
	words := strings.Fields(dish)
	for len(words) > 0 && trailingFiller[words[len(words)-1]] {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}
