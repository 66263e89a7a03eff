package admin

import (
	"strings"
	"time"

	"github.com/cart-it/internal/provider"

	"github.com/gin-gonic/gin"
)

// Handler 后台管理接口处理器入口
// 说明：该处理器仅用于管理端 API，读写不受归属限制。
type Handler struct {
	*provider.Container
}

// New 创建后台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

// 全局范围：service 层以 0 表示不按归属过滤
const unscoped uint = 0

// parseTimeQuery 支持 RFC3339 与 2006-01-02 两种格式，非法值视为未提供
func parseTimeQuery(c *gin.Context, name string) *time.Time {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	if t, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
		return &t
	}
	return nil
}
