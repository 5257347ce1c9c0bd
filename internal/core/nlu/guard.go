package nlu

import "strings"

// 領域關鍵字：菜名、飲品、庫存用語、烹飪動詞與常見食材
// 採子字串比對，"pizzas" 也會命中 "pizza"
var domainKeywords = []string{
	// 菜名
	"pizza", "pasta", "salad", "soup", "cake", "bread", "rice",
	"chicken", "fish", "beef", "pork", "burger", "sandwich",
	"noodle", "omelet", "steak", "dessert",
	// 飲品
	"lemon juice", "juice", "coffee", "tea", "milk", "smoothie",
	// 庫存與餐廳用語
	"recipe", "ingredient", "inventory", "stock", "menu", "kitchen",
	"dish", "meal", "food", "restaurant", "order", "trending",
	"popular", "recommend", "suggest", "serve",
	// 烹飪動詞
	"cook", "bake", "fry", "boil", "grill", "roast", "prepare", "make",
	"drink",
	// 常見食材
	"flour", "sugar", "salt", "oil", "butter", "egg", "cheese",
	"tomato", "onion", "garlic", "pepper", "lettuce", "bun",
	"water", "herb", "sauce", "dough", "lemon", "yeast",
}

// InDomain 判斷輸入是否屬於餐廳領域
// 任一關鍵字以子字串形式出現即視為領域內，不做斷詞
func InDomain(text string) bool {
	lowered := strings.ToLower(text)
	for _, kw := range domainKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
