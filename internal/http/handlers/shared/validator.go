package shared

import (
	"errors"

	"github.com/cart-it/internal/constants"
	"github.com/cart-it/internal/http/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators 向 gin 的校验引擎注册业务枚举校验标签
func RegisterValidators() error {
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return registerEnumValidators(engine)
}

func registerEnumValidators(v *validator.Validate) error {
	rules := map[string][]string{
		"order_status":   constants.OrderStatuses,
		"payment_method": constants.PaymentMethods,
		"payment_status": constants.PaymentStatuses,
	}
	for tag, allowed := range rules {
		allowed := allowed
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == "" || constants.Contains(allowed, value)
		}); err != nil {
			return err
		}
	}
	return nil
}

var bindTagKeys = map[string]string{
	"order_status":   "error.order_status_invalid",
	"payment_method": "error.payment_method_invalid",
	"payment_status": "error.payment_status_invalid",
}

// BindJSON 绑定请求体，失败时按校验标签返回对应的 400 消息
func BindJSON(c *gin.Context, target interface{}) bool {
	err := c.ShouldBindJSON(target)
	if err == nil {
		return true
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			if key, ok := bindTagKeys[fieldErr.Tag()]; ok {
				RespondError(c, response.CodeBadRequest, key, nil)
				return false
			}
		}
	}
	RequestLog(c).Debugw("request_bind_failed", "error", err)
	RespondError(c, response.CodeBadRequest, "error.bad_request", nil)
	return false
}
