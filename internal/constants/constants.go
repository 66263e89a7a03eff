package constants

// 身份角色常量
const (
	RoleAdministrator = "administrator"
	RoleCustomer      = "customer"
	RoleSeller        = "seller"
)

// 登录探测顺序
var LoginProbeOrder = []string{RoleAdministrator, RoleCustomer, RoleSeller}

// 订单状态常量
const (
	OrderStatusPending   = "Pending"
	OrderStatusPaid      = "Paid"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

// OrderStatuses 合法订单状态
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// 支付状态常量
const (
	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
	PaymentStatusFailed    = "Failed"
	PaymentStatusRefunded  = "Refunded"
)

// PaymentStatuses 合法支付状态
var PaymentStatuses = []string{
	PaymentStatusPending,
	PaymentStatusCompleted,
	PaymentStatusFailed,
	PaymentStatusRefunded,
}

// 支付方式常量
const (
	PaymentMethodCreditCard     = "CreditCard"
	PaymentMethodDebitCard      = "DebitCard"
	PaymentMethodPayPal         = "PayPal"
	PaymentMethodBankTransfer   = "BankTransfer"
	PaymentMethodCashOnDelivery = "CashOnDelivery"
)

// PaymentMethods 合法支付方式
var PaymentMethods = []string{
	PaymentMethodCreditCard,
	PaymentMethodDebitCard,
	PaymentMethodPayPal,
	PaymentMethodBankTransfer,
	PaymentMethodCashOnDelivery,
}

// 评分范围
const (
	ReviewRatingMin = 1
	ReviewRatingMax = 5
)

// 上传存储类型常量
const (
	UploadStorageLocal = "local"
	UploadStorageS3    = "s3"
)

// 验证码校验场景常量
const (
	CaptchaSceneLogin    = "login"
	CaptchaSceneRegister = "register"
)

// 队列常量
const (
	QueueDefault          = "default"
	QueueCritical         = "critical"
	TaskPaymentRecorded   = "payment:recorded"
	TaskInventoryLowStock = "inventory:low_stock"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "cartit"
)

// 站点语言常量
const (
	LocaleEnUS = "en-US"
	LocaleZhCN = "zh-CN"
)

// 支持的站点语言顺序（含回退顺序）
var SupportedLocales = []string{LocaleEnUS, LocaleZhCN}

// Contains 判断取值是否在枚举内
func Contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
