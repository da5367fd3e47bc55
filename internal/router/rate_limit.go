package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/qamees-next/internal/config"
	"github.com/qamees-next/internal/http/response"
	"github.com/qamees-next/internal/i18n"
	"github.com/qamees-next/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitKeyFunc 从请求中提取限流主体
type RateLimitKeyFunc func(*gin.Context) string

// RateLimitRule 固定窗口限流规则
type RateLimitRule struct {
	Prefix        string
	WindowSeconds int
	MaxRequests   int
	BlockSeconds  int    // 超限后封禁时长，0 表示沿用窗口剩余时间
	MessageKey    string // 带等待秒数的提示文案
	FailOpen      bool   // Redis 不可用时放行
}

// NewRateLimitRule 由配置生成规则
func NewRateLimitRule(prefix string, cfg config.RateLimitConfig) RateLimitRule {
	return RateLimitRule{
		Prefix:        prefix,
		WindowSeconds: cfg.WindowSeconds,
		MaxRequests:   cfg.MaxAttempts,
		BlockSeconds:  cfg.BlockSeconds,
	}
}

func (r RateLimitRule) enabled() bool {
	return r.WindowSeconds > 0 && r.MaxRequests > 0
}

func (r RateLimitRule) key(subject string) string {
	if r.Prefix == "" {
		return subject
	}
	return r.Prefix + ":" + subject
}

// retryAfter 按 TTL、封禁时长、窗口依次取第一个正值
func (r RateLimitRule) retryAfter(ttl int64) int {
	for _, candidate := range []int{int(ttl), r.BlockSeconds, r.WindowSeconds} {
		if candidate > 0 {
			return candidate
		}
	}
	return 1
}

// 首次命中设置窗口；刚好越过上限时改为封禁时长
var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
if tonumber(ARGV[3]) > 0 and current == tonumber(ARGV[2]) + 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[3])
end
return {current, redis.call("TTL", KEYS[1])}
`)

// RateDecision 单次计数结果
type RateDecision struct {
	Count      int64
	Allowed    bool
	RetryAfter int
}

// Limiter Redis 固定窗口计数器
type Limiter struct {
	client *redis.Client
}

// NewLimiter client 为空时所有请求放行
func NewLimiter(client *redis.Client) *Limiter {
	return &Limiter{client: client}
}

// Hit 记一次访问并返回是否放行
func (l *Limiter) Hit(ctx context.Context, rule RateLimitRule, subject string) (RateDecision, error) {
	if l == nil || l.client == nil || !rule.enabled() {
		return RateDecision{Allowed: true}, nil
	}
	reply, err := fixedWindowScript.Run(ctx, l.client, []string{rule.key(subject)},
		rule.WindowSeconds, rule.MaxRequests, rule.BlockSeconds).Int64Slice()
	if err != nil {
		return RateDecision{}, err
	}
	if len(reply) < 2 {
		return RateDecision{}, errors.New("unexpected rate limit reply")
	}
	decision := RateDecision{Count: reply[0], Allowed: reply[0] <= int64(rule.MaxRequests)}
	if !decision.Allowed {
		decision.RetryAfter = rule.retryAfter(reply[1])
	}
	return decision, nil
}

// RateLimitMiddleware 超限时返回 429 业务码并带 Retry-After
func RateLimitMiddleware(limiter *Limiter, rule RateLimitRule, keyFunc RateLimitKeyFunc) gin.HandlerFunc {
	if keyFunc == nil {
		keyFunc = KeyByIP
	}
	return func(c *gin.Context) {
		subject := strings.TrimSpace(keyFunc(c))
		if subject == "" {
			subject = c.ClientIP()
		}
		decision, err := limiter.Hit(c.Request.Context(), rule, subject)
		if err != nil {
			logger.Warnw("rate_limit_check_failed", "prefix", rule.Prefix, "fail_open", rule.FailOpen, "error", err)
			if rule.FailOpen {
				c.Next()
				return
			}
			locale := i18n.ResolveLocale(c)
			response.Error(c, response.CodeInternal, i18n.T(locale, "error.rate_limit_unavailable"))
			c.Abort()
			return
		}
		if decision.Allowed {
			c.Next()
			return
		}

		logger.Infow("rate_limit_blocked",
			"prefix", rule.Prefix,
			"subject", subject,
			"count", decision.Count,
			"retry_after", decision.RetryAfter,
		)
		locale := i18n.ResolveLocale(c)
		msg := i18n.T(locale, "error.too_many_requests")
		if rule.MessageKey != "" {
			msg = i18n.Sprintf(locale, rule.MessageKey, decision.RetryAfter)
		}
		c.Header("Retry-After", strconv.Itoa(decision.RetryAfter))
		response.Error(c, response.CodeTooManyRequests, msg)
		c.Abort()
	}
}

// KeyByIP 按客户端 IP 限流
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

// KeyByIPAndJSONField 按 JSON 字段（小写）+ IP 限流，读取后还原请求体
func KeyByIPAndJSONField(field string) RateLimitKeyFunc {
	return func(c *gin.Context) string {
		value := strings.ToLower(peekJSONField(c, field))
		if value == "" {
			return c.ClientIP()
		}
		return value + "|" + c.ClientIP()
	}
}

func peekJSONField(c *gin.Context, field string) string {
	if c.Request == nil || c.Request.Body == nil {
		return ""
	}
	body, err := c.GetRawData()
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil || len(body) == 0 {
		return ""
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	var text string
	if err := json.Unmarshal(payload[field], &text); err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}
