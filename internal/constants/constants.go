package constants

// 订单状态常量
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses 全部订单状态（管理端可设置）
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// 商品分类常量
const (
	ProductCategorySummer = "summer"
	ProductCategoryWinter = "winter"
	ProductCategoryCustom = "custom"
)

// ProductCategories 全部商品分类
var ProductCategories = []string{
	ProductCategorySummer,
	ProductCategoryWinter,
	ProductCategoryCustom,
}

// 定制设计请求状态
const (
	DesignStatusPending   = "pending"
	DesignStatusApproved  = "approved"
	DesignStatusRejected  = "rejected"
	DesignStatusCompleted = "completed"
)

// DesignStatuses 全部定制请求状态
var DesignStatuses = []string{
	DesignStatusPending,
	DesignStatusApproved,
	DesignStatusRejected,
	DesignStatusCompleted,
}

// 管理员角色
const (
	AdminRoleAdmin  = "admin"
	AdminRoleEditor = "editor"
)

// 语言
const (
	LocaleArabic  = "ar"
	LocaleEnglish = "en"
)

// DefaultShippingCountry 默认配送国家
const DefaultShippingCountry = "Saudi Arabia"

// 设置键
const (
	SettingKeyStoreProfile = "store_profile"
)

// 购物车会话
const (
	CartSessionHeader = "X-Cart-Session"
	CartSessionCookie = "cart_session"
)

// 上传场景
const (
	UploadSceneProduct = "product"
	UploadSceneBanner  = "banner"
	UploadSceneDesign  = "design"
)

// 验证码场景
const (
	CaptchaSceneCheckout     = "checkout"
	CaptchaSceneCustomDesign = "custom_design"
	CaptchaSceneAdminLogin   = "admin_login"
)

// Contains 判断取值是否在集合内
func Contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}

// 验证码提供方
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// 队列
const (
	QueueDefault = "default"
)

// 异步任务类型
const (
	TaskOrderPlaced        = "order:placed"
	TaskOrderStatusChanged = "order:status_changed"
)

// 定时任务
const (
	JobCartPrune = "cart_prune"
	JobCartEvict = "cart_evict"
)
