package response

import (
	"fmt"

	"github.com/qamees-next/internal/i18n"

	"github.com/gin-gonic/gin"
)

// AppError 接口层错误：业务码 + 文案 key，Err 保留原始错误用于日志
type AppError struct {
	Code    int
	Key     string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	text := e.Message
	if text == "" {
		text = e.Key
	}
	if e.Err == nil {
		return text
	}
	return fmt.Sprintf("%s: %v", text, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError 按文案 key 创建，key 为空时使用业务码的默认 key
func NewAppError(code int, key string, err error) *AppError {
	if key == "" {
		key = DefaultKey(code)
	}
	return &AppError{Code: code, Key: key, Err: err}
}

// WrapError 使用已翻译好的文案创建
func WrapError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Localize 返回指定语言的文案，已有 Message 时原样返回
func (e *AppError) Localize(locale string) string {
	if e.Message != "" {
		return e.Message
	}
	return i18n.T(locale, e.Key)
}

// Abort 按请求语言输出错误响应
func Abort(c *gin.Context, appErr *AppError) {
	if appErr == nil {
		appErr = NewAppError(CodeInternal, "", nil)
	}
	Error(c, appErr.Code, appErr.Localize(i18n.ResolveLocale(c)))
}
