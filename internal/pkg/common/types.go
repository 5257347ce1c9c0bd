package common

import (
	"sort"
	"time"
)

// InventorySnapshot 庫存快照：食材名稱（小寫）對應現有數量
// 缺貨與數量為零視為相同狀態，快照中不區分
type InventorySnapshot map[string]int

// Keys 回傳按字母排序的食材名稱，保證走訪順序固定
func (s InventorySnapshot) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsEmpty 快照是否為空
func (s InventorySnapshot) IsEmpty() bool {
	return len(s) == 0
}

// QueryLogEntry 一筆使用者查詢紀錄
type QueryLogEntry struct {
	Query     string    `json:"query"`                    // 原始查詢文字
	Dish      string    `json:"dish_mentioned,omitempty"` // 抽取出的菜名，可能為空
	Timestamp time.Time `json:"timestamp"`                // 查詢時間
}

// DishCount 趨勢統計的一筆結果
type DishCount struct {
	Dish  string `json:"dish"`
	Count int    `json:"count"`
}
