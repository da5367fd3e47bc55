package shared

import (
	"errors"

	"github.com/qamees-next/internal/http/response"
	"github.com/qamees-next/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 携带 request_id 与路由信息的日志实例
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	kv := make([]interface{}, 0, 4)
	if value, ok := c.Get("request_id"); ok {
		if id, _ := value.(string); id != "" {
			kv = append(kv, "request_id", id)
		}
	}
	if route := c.FullPath(); route != "" {
		kv = append(kv, "route", route)
	}
	if len(kv) == 0 {
		return logger.S()
	}
	return logger.SW(kv...)
}

// RespondError 按文案 key 返回错误，err 非空时记录原始错误
func RespondError(c *gin.Context, code int, key string, err error) {
	abort(c, response.NewAppError(code, key, err))
}

// RespondErrorWithMsg 使用已翻译文案返回错误
func RespondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	abort(c, response.WrapError(code, msg, err))
}

func abort(c *gin.Context, appErr *response.AppError) {
	if appErr.Err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"key", appErr.Key,
			"error", appErr.Err,
		)
	}
	response.Abort(c, appErr)
}

// ErrorRule 业务错误到响应码与文案 key 的映射
type ErrorRule struct {
	Target error
	Code   int
	Key    string
}

// ErrorRules 按顺序匹配，首个命中生效
type ErrorRules []ErrorRule

// With 追加其他规则组，返回新切片
func (r ErrorRules) With(groups ...ErrorRules) ErrorRules {
	merged := append(ErrorRules{}, r...)
	for _, group := range groups {
		merged = append(merged, group...)
	}
	return merged
}

// Respond 命中规则时不记录原始错误；未命中按 500 + fallbackKey 返回
func (r ErrorRules) Respond(c *gin.Context, err error, fallbackKey string) {
	for _, rule := range r {
		if errors.Is(err, rule.Target) {
			RespondError(c, rule.Code, rule.Key, nil)
			return
		}
	}
	RespondError(c, response.CodeInternal, fallbackKey, err)
}
