package shared

import (
	"github.com/cart-it/internal/http/response"

	"github.com/gin-gonic/gin"
)

// 鉴权中间件写入上下文的键
const (
	ContextKeyRole        = "principal_role"
	ContextKeyPrincipalID = "principal_id"
	ContextKeyEmail       = "principal_email"
)

// GetContextUintWithKeys 从上下文读取 uint 值并统一处理错误响应。
func GetContextUintWithKeys(c *gin.Context, key, invalidKey, typeInvalidKey string) (uint, bool) {
	value, exists := c.Get(key)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		if v == 0 {
			RespondError(c, response.CodeUnauthorized, invalidKey, nil)
			return 0, false
		}
		return v, true
	case int:
		if v <= 0 {
			RespondError(c, response.CodeUnauthorized, invalidKey, nil)
			return 0, false
		}
		return uint(v), true
	case float64:
		if v <= 0 {
			RespondError(c, response.CodeUnauthorized, invalidKey, nil)
			return 0, false
		}
		return uint(v), true
	default:
		RespondError(c, response.CodeInternal, typeInvalidKey, nil)
		return 0, false
	}
}

// GetPrincipalID 读取当前登录主体 ID。
func GetPrincipalID(c *gin.Context) (uint, bool) {
	return GetContextUintWithKeys(c, ContextKeyPrincipalID, "error.unauthorized", "error.internal")
}

// GetPrincipalRole 读取当前登录角色。
func GetPrincipalRole(c *gin.Context) string {
	return c.GetString(ContextKeyRole)
}
