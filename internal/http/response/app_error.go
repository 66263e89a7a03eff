package response

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// APIError 接口层错误，Code 为响应业务码，Cause 仅用于日志
type APIError struct {
	Code    int
	Message string
	Cause   error
}

// NewAPIError 构造接口错误，未登记的业务码统一降级为 500
func NewAPIError(code int, message string, cause error) *APIError {
	if httpStatus(code) == 500 {
		code = CodeInternal
	}
	return &APIError{Code: code, Message: message, Cause: cause}
}

func (e *APIError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%d %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%d %s: %v", e.Code, e.Message, e.Cause)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// Write 将错误写入响应
func (e *APIError) Write(c *gin.Context) {
	Error(c, e.Code, e.Message)
}
