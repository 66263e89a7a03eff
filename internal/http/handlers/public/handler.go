package public

import "github.com/cart-it/internal/provider"

// Handler 公开接口与认证接口处理器入口
// 说明：该处理器无需登录，覆盖目录浏览、验证码、登录注册。
type Handler struct {
	*provider.Container
}

// New 创建公开接口处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
