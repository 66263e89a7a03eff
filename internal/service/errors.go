package service

import "errors"

// 通用错误
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrForbidden         = errors.New("forbidden")
	ErrWeakPassword      = errors.New("password does not meet policy")
	ErrEmailRequired     = errors.New("email is required")
	ErrEmailInvalid      = errors.New("email is invalid")
	ErrPasswordRequired  = errors.New("password is required")
	ErrEmailExists       = errors.New("email already registered")
	ErrLastAdministrator = errors.New("cannot delete the last administrator")
)

// 认证相关错误
var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid token")
	ErrRefreshTokenInvalid = errors.New("refresh token is invalid or expired")
	ErrCaptchaRequired     = errors.New("captcha is required")
	ErrCaptchaInvalid      = errors.New("captcha is invalid")
	ErrCaptchaDisabled     = errors.New("captcha is disabled")
)

// 目录相关错误
var (
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrCategoryNameExists   = errors.New("category name already exists")
	ErrCategoryInUse        = errors.New("category still has products")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrSellerNotFound       = errors.New("seller not found")
	ErrProductNameRequired  = errors.New("product name is required")
	ErrProductPriceInvalid  = errors.New("product price must not be negative")
	ErrProductStockInvalid  = errors.New("product stock must not be negative")
	ErrInventoryInvalid     = errors.New("inventory stock must not be negative")
)

// 交易相关错误
var (
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrProductNotFound         = errors.New("product not found")
	ErrOrderNotFound           = errors.New("order not found")
	ErrQuantityInvalid         = errors.New("quantity must be greater than zero")
	ErrOrderTotalMismatch      = errors.New("order total does not match price times quantity")
	ErrOrderStatusInvalid      = errors.New("order status is invalid")
	ErrOrderLocked             = errors.New("order can no longer be repriced")
	ErrPaymentMethodInvalid    = errors.New("payment method is invalid")
	ErrPaymentStatusInvalid    = errors.New("payment status is invalid")
	ErrPaymentCustomerMismatch = errors.New("payment customer does not match order customer")
	ErrRatingInvalid           = errors.New("rating must be between 1 and 5")
	ErrCartConflict            = errors.New("cart already holds this product")
)

// 上传相关错误
var (
	ErrUploadTooLarge       = errors.New("file exceeds size limit")
	ErrUploadTypeNotAllowed = errors.New("file type is not allowed")
	ErrUploadStorageInvalid = errors.New("upload storage is not configured")
)
