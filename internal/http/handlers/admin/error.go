package admin

import (
	"errors"
	"strings"
	"time"

	handlershared "github.com/qamees-next/internal/http/handlers/shared"
	"github.com/qamees-next/internal/http/response"
	"github.com/qamees-next/internal/i18n"
	"github.com/qamees-next/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondErrorWithMsg(c, code, msg, err)
}

// respondPasswordPolicyError 密码策略错误携带格式化参数，单独翻译
func respondPasswordPolicyError(c *gin.Context, err error) bool {
	var perr service.PasswordPolicyError
	if !errors.As(err, &perr) {
		return false
	}
	msg := i18n.Sprintf(i18n.ResolveLocale(c), perr.Key(), perr.Args()...)
	respondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
	return true
}

var productErrors = handlershared.ErrorRules{
	{Target: service.ErrNotFound, Code: response.CodeNotFound, Key: "error.product_not_found"},
	{Target: service.ErrProductInvalid, Code: response.CodeBadRequest, Key: "error.product_invalid"},
	{Target: service.ErrProductPriceInvalid, Code: response.CodeBadRequest, Key: "error.product_price_invalid"},
	{Target: service.ErrProductCategory, Code: response.CodeBadRequest, Key: "error.product_category_invalid"},
	{Target: service.ErrVariantInvalid, Code: response.CodeBadRequest, Key: "error.variant_invalid"},
}

var orderErrors = handlershared.ErrorRules{
	{Target: service.ErrNotFound, Code: response.CodeNotFound, Key: "error.order_not_found"},
	{Target: service.ErrOrderStatusInvalid, Code: response.CodeBadRequest, Key: "error.order_status_invalid"},
	{Target: service.ErrOrderStatusConflict, Code: response.CodeConflict, Key: "error.order_status_conflict"},
}

var designErrors = handlershared.ErrorRules{
	{Target: service.ErrNotFound, Code: response.CodeNotFound, Key: "error.design_not_found"},
	{Target: service.ErrDesignStatusInvalid, Code: response.CodeBadRequest, Key: "error.design_status_invalid"},
	{Target: service.ErrProductPriceInvalid, Code: response.CodeBadRequest, Key: "error.product_price_invalid"},
}

var bannerErrors = handlershared.ErrorRules{
	{Target: service.ErrNotFound, Code: response.CodeNotFound, Key: "error.banner_not_found"},
	{Target: service.ErrInvalidBanner, Code: response.CodeBadRequest, Key: "error.banner_invalid"},
}

var settingErrors = handlershared.ErrorRules{
	{Target: service.ErrSettingsInvalid, Code: response.CodeBadRequest, Key: "error.settings_invalid"},
	{Target: service.ErrInvalidEmail, Code: response.CodeBadRequest, Key: "error.email_invalid"},
	{Target: service.ErrInvalidPhone, Code: response.CodeBadRequest, Key: "error.phone_invalid"},
}

var uploadErrors = handlershared.ErrorRules{
	{Target: service.ErrUploadFileMissing, Code: response.CodeBadRequest, Key: "error.upload_file_missing"},
	{Target: service.ErrUploadTypeInvalid, Code: response.CodeBadRequest, Key: "error.upload_type_invalid"},
	{Target: service.ErrUploadTooLarge, Code: response.CodeBadRequest, Key: "error.upload_too_large"},
	{Target: service.ErrUploadSceneInvalid, Code: response.CodeBadRequest, Key: "error.upload_scene_invalid"},
}

var adminAccountErrors = handlershared.ErrorRules{
	{Target: service.ErrAdminExists, Code: response.CodeConflict, Key: "error.admin_exists"},
	{Target: service.ErrAdminRoleInvalid, Code: response.CodeBadRequest, Key: "error.admin_role_invalid"},
	{Target: service.ErrInvalidCredentials, Code: response.CodeBadRequest, Key: "error.bad_request"},
	{Target: service.ErrNotFound, Code: response.CodeNotFound, Key: "error.admin_not_found"},
}

var loginErrors = handlershared.ErrorRules{
	{Target: service.ErrInvalidCredentials, Code: response.CodeUnauthorized, Key: "error.login_invalid"},
	{Target: service.ErrCaptchaRequired, Code: response.CodeBadRequest, Key: "error.captcha_required"},
	{Target: service.ErrCaptchaInvalid, Code: response.CodeBadRequest, Key: "error.captcha_invalid"},
	{Target: service.ErrCaptchaConfigInvalid, Code: response.CodeInternal, Key: "error.captcha_config"},
}

// parseOptionalTime 支持 RFC3339 与 YYYY-MM-DD
func parseOptionalTime(raw string) (*time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
