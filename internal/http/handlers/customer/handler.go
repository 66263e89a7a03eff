package customer

import (
	handlershared "github.com/cart-it/internal/http/handlers/shared"
	"github.com/cart-it/internal/provider"

	"github.com/gin-gonic/gin"
)

// Handler 顾客侧接口处理器入口
// 说明：所有读写都限定在当前登录顾客名下。
type Handler struct {
	*provider.Container
}

// New 创建顾客处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func getCustomerID(c *gin.Context) (uint, bool) {
	return handlershared.GetPrincipalID(c)
}
