package service

import "errors"

// 通用错误
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAdminExists        = errors.New("admin already exists")
	ErrAdminRoleInvalid   = errors.New("admin role invalid")
	ErrWeakPassword       = errors.New("password does not satisfy policy")
)

// 验证码错误
var (
	ErrCaptchaRequired      = errors.New("captcha required")
	ErrCaptchaInvalid       = errors.New("captcha invalid")
	ErrCaptchaConfigInvalid = errors.New("captcha config invalid")
)

// 购物车与下单错误
var (
	ErrCartEmpty           = errors.New("cart is empty")
	ErrCartItemInvalid     = errors.New("cart item invalid")
	ErrCustomerNameEmpty   = errors.New("customer name is empty")
	ErrInvalidEmail        = errors.New("email invalid")
	ErrInvalidPhone        = errors.New("phone invalid")
	ErrShippingAddressMiss = errors.New("shipping address is empty")
	ErrShippingCityMiss    = errors.New("shipping city is empty")
)

// 商品错误
var (
	ErrProductInvalid      = errors.New("product invalid")
	ErrProductPriceInvalid = errors.New("product price invalid")
	ErrProductCategory     = errors.New("product category invalid")
	ErrProductUnavailable  = errors.New("product unavailable")
	ErrVariantInvalid      = errors.New("product variant invalid")
	ErrVariantNotFound     = errors.New("product variant not found")
)

// 订单错误
var (
	ErrOrderStatusInvalid  = errors.New("order status invalid")
	ErrOrderStatusConflict = errors.New("order status changed concurrently")
)

// 定制设计错误
var (
	ErrDesignInvalid       = errors.New("design request invalid")
	ErrDesignStatusInvalid = errors.New("design status invalid")
)

// Banner 错误
var (
	ErrInvalidBanner = errors.New("banner invalid")
)

// 设置错误
var (
	ErrSettingsInvalid = errors.New("settings invalid")
)

// 上传错误
var (
	ErrUploadFileMissing  = errors.New("upload file missing")
	ErrUploadTypeInvalid  = errors.New("upload file type invalid")
	ErrUploadTooLarge     = errors.New("upload file too large")
	ErrUploadSceneInvalid = errors.New("upload scene invalid")
)
