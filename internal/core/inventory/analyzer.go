package inventory

import (
	"fmt"
	"strings"

	"restaurant-assistant/internal/pkg/common"
)

// 低庫存預設門檻，數量小於等於此值要提醒補貨
const defaultLowStockThreshold = 2

// dishCategory 菜式分類與其基本食材
type dishCategory struct {
	name        string
	ingredients []string
}

// 菜式分類表，依表列順序比對，分類名稱直接出現在菜名時先命中先贏
var categoryTable = []dishCategory{
	{"pizza", []string{"flour", "yeast", "water", "salt", "olive oil", "tomato", "cheese", "basil"}},
	{"lemon juice", []string{"lemon", "water", "sugar", "salt"}},
	{"pasta", []string{"flour", "eggs", "salt", "olive oil", "tomato", "cheese"}},
	{"salad", []string{"lettuce", "tomato", "cucumber", "olive oil", "vinegar", "salt"}},
	{"soup", []string{"vegetables", "broth", "salt", "pepper", "herbs"}},
	{"cake", []string{"flour", "sugar", "eggs", "milk", "butter", "baking powder"}},
	{"bread", []string{"flour", "yeast", "water", "salt", "sugar"}},
	{"rice", []string{"rice", "water", "salt", "butter"}},
	{"chicken", []string{"chicken", "oil", "salt", "pepper", "herbs"}},
	{"fish", []string{"fish", "oil", "salt", "pepper", "lemon"}},
	{"beef", []string{"beef", "oil", "salt", "pepper", "garlic"}},
	{"pork", []string{"pork", "oil", "salt", "pepper", "garlic"}},
	{"burger", []string{"beef", "bun", "cheese", "lettuce", "tomato", "onion"}},
	{"sandwich", []string{"bread", "cheese", "lettuce", "tomato", "butter"}},
}

// 菜式不在分類表時退用的通用食材
var genericIngredients = []string{"flour", "salt", "oil", "water", "eggs", "milk", "sugar", "herbs"}

// Analyzer 菜式食材庫存分析服務
type Analyzer struct {
	lowStock int
}

// NewAnalyzer 創建庫存分析器，門檻不合法時採用預設值
func NewAnalyzer(lowStockThreshold int) *Analyzer {
	if lowStockThreshold <= 0 {
		lowStockThreshold = defaultLowStockThreshold
	}
	return &Analyzer{lowStock: lowStockThreshold}
}

// Report 分析指定菜式的食材齊備狀況，回傳人類可讀的彙總
func (a *Analyzer) Report(dish string, snap common.InventorySnapshot) string {
	if snap.IsEmpty() {
		return fmt.Sprintf("No ingredient data available for %s.", dish)
	}
	return a.analyze(requiredIngredients(dish), snap)
}

// requiredIngredients 以分類表解析菜式需要的基本食材
func requiredIngredients(dish string) []string {
	lowered := strings.ToLower(dish)
	words := strings.Fields(lowered)

	var best []string
	bestScore := 0
	for _, cat := range categoryTable {
		// 分類名稱直接出現在菜名中，視為精確命中
		if strings.Contains(lowered, cat.name) {
			return cat.ingredients
		}
		// 部分命中：菜名單字出現在分類名稱中的個數
		score := 0
		for _, word := range words {
			if strings.Contains(cat.name, word) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = cat.ingredients
		}
	}

	if best == nil {
		return genericIngredients
	}
	return best
}

// analyze 逐項核對食材，輸出 Available、Low stock、缺料三段
func (a *Analyzer) analyze(required []string, snap common.InventorySnapshot) string {
	keys := snap.Keys()

	var available, lowStock, missing []string
	for _, ingredient := range required {
		closest := ClosestKey(ingredient, keys)
		stock, ok := snap[closest]
		if !ok || stock <= 0 {
			// 沒有紀錄與數量為零一視同仁
			missing = append(missing, ingredient)
			continue
		}
		available = append(available, fmt.Sprintf("%s (%d)", closest, stock))
		if stock <= a.lowStock {
			lowStock = append(lowStock, closest)
		}
	}

	var parts []string
	if len(available) > 0 {
		parts = append(parts, "Available: "+strings.Join(available, ", "))
	}
	if len(lowStock) > 0 {
		parts = append(parts, "Low stock: "+strings.Join(lowStock, ", "))
	}
	if len(missing) > 0 {
		label := "You miss ingredients: "
		if len(missing) == 1 {
			label = "You miss ingredient: "
		}
		parts = append(parts, label+strings.Join(missing, ", "))
	}
	if len(parts) == 0 {
		return "No ingredient information available."
	}
	return strings.Join(parts, " | ")
}
