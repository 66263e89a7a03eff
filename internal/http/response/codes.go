package response

const (
	CodeOK              = 0
	CodeBadRequest      = 400
	CodeUnauthorized    = 401
	CodeForbidden       = 403
	CodeNotFound        = 404
	CodeTooManyRequests = 429
	CodeInternal        = 500
)

// httpStatus 将业务码映射为 HTTP 状态码
func httpStatus(code int) int {
	switch code {
	case CodeBadRequest, CodeUnauthorized, CodeForbidden, CodeNotFound, CodeTooManyRequests:
		return code
	case CodeOK:
		return 200
	default:
		return 500
	}
}
