package service

import (
	"strings"

	"github.com/cart-it/internal/models"
)

// 部分更新约定：空字符串、零值数字与零 ID 视为未提供，保留原值

func mergeString(dst *string, value string) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		*dst = trimmed
	}
}

func mergeInt(dst *int, value int) {
	if value != 0 {
		*dst = value
	}
}

func mergeID(dst *uint, value uint) {
	if value != 0 {
		*dst = value
	}
}

func mergeMoney(dst *models.Money, value models.Money) {
	if !value.IsZero() {
		*dst = value
	}
}
