package shared

import (
	"errors"

	"github.com/cart-it/internal/http/response"
	"github.com/cart-it/internal/i18n"
	"github.com/cart-it/internal/logger"
	"github.com/cart-it/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.WithRequest(id)
		}
	}
	return logger.S()
}

// RespondError 返回国际化错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, key string, err error) {
	locale := i18n.ResolveLocale(c)
	msg := i18n.T(locale, key)
	RespondErrorWithMsg(c, code, msg, err)
}

// RespondErrorWithMsg 返回自定义消息错误响应，并在有原始错误时记录日志。
func RespondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	apiErr := response.NewAPIError(code, msg, err)
	if apiErr.Cause != nil {
		RequestLog(c).Errorw("handler_error",
			"code", apiErr.Code,
			"message", apiErr.Message,
			"error", apiErr.Cause,
		)
	}
	apiErr.Write(c)
}

// MappedError 定义业务错误到接口错误响应的映射关系。
type MappedError struct {
	Target error
	Code   int
	Key    string
}

// localizedError 自带消息键与参数的业务错误（如密码策略）
type localizedError interface {
	error
	Key() string
	Args() []interface{}
}

// ServiceErrorRules 通用业务错误映射表
var ServiceErrorRules = []MappedError{
	{Target: service.ErrNotFound, Code: response.CodeNotFound, Key: "error.not_found"},
	{Target: service.ErrInvalidInput, Code: response.CodeBadRequest, Key: "error.bad_request"},
	{Target: service.ErrForbidden, Code: response.CodeForbidden, Key: "error.forbidden"},
	{Target: service.ErrEmailRequired, Code: response.CodeBadRequest, Key: "error.email_required"},
	{Target: service.ErrEmailInvalid, Code: response.CodeBadRequest, Key: "error.email_invalid"},
	{Target: service.ErrEmailExists, Code: response.CodeBadRequest, Key: "error.email_exists"},
	{Target: service.ErrPasswordRequired, Code: response.CodeBadRequest, Key: "error.password_required"},
	{Target: service.ErrLastAdministrator, Code: response.CodeBadRequest, Key: "error.last_administrator"},
	{Target: service.ErrInvalidCredentials, Code: response.CodeUnauthorized, Key: "error.invalid_credentials"},
	{Target: service.ErrInvalidToken, Code: response.CodeUnauthorized, Key: "error.token_invalid"},
	{Target: service.ErrRefreshTokenInvalid, Code: response.CodeUnauthorized, Key: "error.refresh_token_invalid"},
	{Target: service.ErrCaptchaRequired, Code: response.CodeBadRequest, Key: "error.captcha_required"},
	{Target: service.ErrCaptchaInvalid, Code: response.CodeBadRequest, Key: "error.captcha_invalid"},
	{Target: service.ErrCaptchaDisabled, Code: response.CodeBadRequest, Key: "error.captcha_disabled"},
	{Target: service.ErrCategoryNameRequired, Code: response.CodeBadRequest, Key: "error.category_name_required"},
	{Target: service.ErrCategoryNameExists, Code: response.CodeBadRequest, Key: "error.category_name_exists"},
	{Target: service.ErrCategoryInUse, Code: response.CodeBadRequest, Key: "error.category_in_use"},
	{Target: service.ErrCategoryNotFound, Code: response.CodeBadRequest, Key: "error.category_not_found"},
	{Target: service.ErrSellerNotFound, Code: response.CodeBadRequest, Key: "error.seller_not_found"},
	{Target: service.ErrProductNameRequired, Code: response.CodeBadRequest, Key: "error.product_name_required"},
	{Target: service.ErrProductPriceInvalid, Code: response.CodeBadRequest, Key: "error.product_price_invalid"},
	{Target: service.ErrProductStockInvalid, Code: response.CodeBadRequest, Key: "error.product_stock_invalid"},
	{Target: service.ErrInventoryInvalid, Code: response.CodeBadRequest, Key: "error.inventory_invalid"},
	{Target: service.ErrCustomerNotFound, Code: response.CodeBadRequest, Key: "error.customer_not_found"},
	{Target: service.ErrProductNotFound, Code: response.CodeBadRequest, Key: "error.product_not_found"},
	{Target: service.ErrOrderNotFound, Code: response.CodeBadRequest, Key: "error.order_not_found"},
	{Target: service.ErrQuantityInvalid, Code: response.CodeBadRequest, Key: "error.quantity_invalid"},
	{Target: service.ErrOrderStatusInvalid, Code: response.CodeBadRequest, Key: "error.order_status_invalid"},
	{Target: service.ErrOrderLocked, Code: response.CodeBadRequest, Key: "error.order_locked"},
	{Target: service.ErrPaymentMethodInvalid, Code: response.CodeBadRequest, Key: "error.payment_method_invalid"},
	{Target: service.ErrPaymentStatusInvalid, Code: response.CodeBadRequest, Key: "error.payment_status_invalid"},
	{Target: service.ErrPaymentCustomerMismatch, Code: response.CodeBadRequest, Key: "error.payment_customer_mismatch"},
	{Target: service.ErrRatingInvalid, Code: response.CodeBadRequest, Key: "error.rating_invalid"},
	{Target: service.ErrCartConflict, Code: response.CodeBadRequest, Key: "error.cart_conflict"},
	{Target: service.ErrUploadTooLarge, Code: response.CodeBadRequest, Key: "error.upload_too_large"},
	{Target: service.ErrUploadTypeNotAllowed, Code: response.CodeBadRequest, Key: "error.upload_type_not_allowed"},
	{Target: service.ErrUploadStorageInvalid, Code: response.CodeInternal, Key: "error.upload_storage_invalid"},
}

// RespondServiceError 按映射表返回业务错误，未知错误返回 500 并记录原因
func RespondServiceError(c *gin.Context, err error) {
	RespondMappedError(c, err, ServiceErrorRules, response.CodeInternal, "error.internal")
}

// RespondMappedError 按给定映射表返回业务错误
func RespondMappedError(c *gin.Context, err error, rules []MappedError, fallbackCode int, fallbackKey string) {
	locale := i18n.ResolveLocale(c)

	var mismatch *service.OrderTotalMismatchError
	if errors.As(err, &mismatch) {
		msg := i18n.Sprintf(locale, "error.order_total_mismatch", mismatch.Given.String(), mismatch.Expected.String())
		RespondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
		return
	}
	var localized localizedError
	if errors.As(err, &localized) {
		RespondErrorWithMsg(c, response.CodeBadRequest, i18n.Sprintf(locale, localized.Key(), localized.Args()...), nil)
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.Target) {
			RespondError(c, rule.Code, rule.Key, nil)
			return
		}
	}
	RespondError(c, fallbackCode, fallbackKey, err)
}
