package i18n

import "github.com/cart-it/internal/constants"

var catalogs = map[string]map[string]string{
	constants.LocaleEnUS: {
		"error.bad_request":               "Invalid request parameters",
		"error.invalid_id":                "Invalid id",
		"error.unauthorized":              "Authentication required",
		"error.forbidden":                 "You do not have permission to access this resource",
		"error.not_found":                 "Resource not found",
		"error.route_not_found":           "Route not found",
		"error.too_many_requests":         "Too many requests, please try again later",
		"error.internal":                  "Internal server error",
		"error.invalid_credentials":       "Invalid email or password",
		"error.token_invalid":             "Token is invalid or expired",
		"error.refresh_token_invalid":     "Refresh token is invalid or expired",
		"error.captcha_required":          "Captcha is required",
		"error.captcha_invalid":           "Captcha is incorrect",
		"error.captcha_disabled":          "Captcha is disabled",
		"error.email_required":            "Email is required",
		"error.email_invalid":             "Email is invalid",
		"error.email_exists":              "Email is already registered",
		"error.password_required":         "Password is required",
		"error.password_min_length":       "Password must be at least %d characters",
		"error.password_require_upper":    "Password must contain an uppercase letter",
		"error.password_require_lower":    "Password must contain a lowercase letter",
		"error.password_require_number":   "Password must contain a number",
		"error.password_require_special":  "Password must contain a special character",
		"error.last_administrator":        "The last administrator cannot be deleted",
		"error.category_name_required":    "Category name is required",
		"error.category_name_exists":      "Category name already exists",
		"error.category_in_use":           "Category still has products",
		"error.category_not_found":        "Category not found",
		"error.seller_not_found":          "Seller not found",
		"error.product_name_required":     "Product name is required",
		"error.product_price_invalid":     "Product price must not be negative",
		"error.product_stock_invalid":     "Product stock must not be negative",
		"error.inventory_invalid":         "Inventory stock must not be negative",
		"error.customer_not_found":        "Customer not found",
		"error.product_not_found":         "Product not found",
		"error.order_not_found":           "Order not found",
		"error.quantity_invalid":          "Quantity must be greater than zero",
		"error.order_total_mismatch":      "Total amount %s does not match price times quantity %s",
		"error.order_status_invalid":      "Order status is invalid",
		"error.order_locked":              "Order can no longer change product or quantity",
		"error.payment_method_invalid":    "Payment method is invalid",
		"error.payment_status_invalid":    "Payment status is invalid",
		"error.payment_customer_mismatch": "Payment customer does not match the order customer",
		"error.rating_invalid":            "Rating must be between 1 and 5",
		"error.cart_conflict":             "Cart already has a row for this product",
		"error.upload_too_large":          "File exceeds the size limit",
		"error.upload_type_not_allowed":   "File type is not allowed",
		"error.upload_storage_invalid":    "Upload storage is not configured",
		"error.upload_failed":             "File upload failed",
	},
	constants.LocaleZhCN: {
		"error.bad_request":               "请求参数错误",
		"error.invalid_id":                "无效的 ID",
		"error.unauthorized":              "请先登录",
		"error.forbidden":                 "无权访问该资源",
		"error.not_found":                 "资源不存在",
		"error.route_not_found":           "路由不存在",
		"error.too_many_requests":         "请求过于频繁，请稍后再试",
		"error.internal":                  "服务器内部错误",
		"error.invalid_credentials":       "邮箱或密码错误",
		"error.token_invalid":             "令牌无效或已过期",
		"error.refresh_token_invalid":     "刷新令牌无效或已过期",
		"error.captcha_required":          "请输入验证码",
		"error.captcha_invalid":           "验证码错误",
		"error.captcha_disabled":          "验证码未启用",
		"error.email_required":            "邮箱不能为空",
		"error.email_invalid":             "邮箱格式不正确",
		"error.email_exists":              "邮箱已被注册",
		"error.password_required":         "密码不能为空",
		"error.password_min_length":       "密码长度不能少于 %d 位",
		"error.password_require_upper":    "密码必须包含大写字母",
		"error.password_require_lower":    "密码必须包含小写字母",
		"error.password_require_number":   "密码必须包含数字",
		"error.password_require_special":  "密码必须包含特殊字符",
		"error.last_administrator":        "不能删除最后一个管理员",
		"error.category_name_required":    "分类名称不能为空",
		"error.category_name_exists":      "分类名称已存在",
		"error.category_in_use":           "分类下仍有商品",
		"error.category_not_found":        "分类不存在",
		"error.seller_not_found":          "卖家不存在",
		"error.product_name_required":     "商品名称不能为空",
		"error.product_price_invalid":     "商品价格不能为负数",
		"error.product_stock_invalid":     "商品库存不能为负数",
		"error.inventory_invalid":         "库存数量不能为负数",
		"error.customer_not_found":        "顾客不存在",
		"error.product_not_found":         "商品不存在",
		"error.order_not_found":           "订单不存在",
		"error.quantity_invalid":          "数量必须大于 0",
		"error.order_total_mismatch":      "订单总额 %s 与单价 × 数量 %s 不一致",
		"error.order_status_invalid":      "订单状态无效",
		"error.order_locked":              "订单已锁定，不能再修改商品或数量",
		"error.payment_method_invalid":    "支付方式无效",
		"error.payment_status_invalid":    "支付状态无效",
		"error.payment_customer_mismatch": "支付顾客与订单顾客不一致",
		"error.rating_invalid":            "评分必须在 1 到 5 之间",
		"error.cart_conflict":             "购物车中已有该商品",
		"error.upload_too_large":          "文件大小超过限制",
		"error.upload_type_not_allowed":   "文件类型不被允许",
		"error.upload_storage_invalid":    "上传存储未配置",
		"error.upload_failed":             "文件上传失败",
	},
}
