package i18n

import (
	"fmt"
	"strings"

	"github.com/cart-it/internal/constants"

	"github.com/gin-gonic/gin"
)

// ResolveLocale 从请求头解析语言，未匹配时回退到 en-US
func ResolveLocale(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return constants.LocaleEnUS
	}
	if locale := strings.TrimSpace(c.Query("lang")); locale != "" {
		return NormalizeLocale(locale)
	}
	return NormalizeLocale(c.GetHeader("Accept-Language"))
}

// NormalizeLocale 归一化语言标识
func NormalizeLocale(raw string) string {
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "" {
			continue
		}
		lower := strings.ToLower(tag)
		for _, supported := range constants.SupportedLocales {
			if strings.ToLower(supported) == lower {
				return supported
			}
		}
		switch {
		case strings.HasPrefix(lower, "zh"):
			return constants.LocaleZhCN
		case strings.HasPrefix(lower, "en"):
			return constants.LocaleEnUS
		}
	}
	return constants.LocaleEnUS
}

// T 翻译消息键，缺失时回退到英文，再回退到键本身
func T(locale, key string) string {
	if table, ok := catalogs[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := catalogs[constants.LocaleEnUS][key]; ok {
		return msg
	}
	return key
}

// Sprintf 翻译并格式化消息
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
