package common

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateUUID 生成 UUID
func GenerateUUID() string {
	return uuid.New().String()
}

// Truncate 截斷過長的字串，避免日誌被塞爆
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// NormalizeSpaces 將連續空白壓成單一空格並去除前後空白
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
