package router

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/qamees-next/internal/config"
	"github.com/qamees-next/internal/constants"

	"github.com/gin-gonic/gin"
)

var (
	defaultCORSMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	defaultCORSHeaders = []string{
		"Content-Type",
		"Authorization",
		"Accept-Language",
		"Cache-Control",
		"X-Requested-With",
		requestIDHeader,
		constants.CartSessionHeader,
	}
)

// corsPolicy 预先拼好的 CORS 响应头
type corsPolicy struct {
	origins     []string
	wildcard    bool
	credentials bool
	headers     map[string]string
}

func newCORSPolicy(cfg config.CORSConfig) corsPolicy {
	p := corsPolicy{
		origins:     cfg.AllowedOrigins,
		credentials: cfg.AllowCredentials,
		headers:     map[string]string{},
	}
	if len(p.origins) == 0 {
		p.origins = []string{"*"}
	}
	for _, origin := range p.origins {
		if origin == "*" {
			p.wildcard = true
		}
	}
	p.headers["Access-Control-Allow-Methods"] = strings.Join(orDefault(cfg.AllowedMethods, defaultCORSMethods), ", ")
	p.headers["Access-Control-Allow-Headers"] = strings.Join(orDefault(cfg.AllowedHeaders, defaultCORSHeaders), ", ")
	p.headers["Access-Control-Expose-Headers"] = strings.Join(
		orDefault(cfg.ExposedHeaders, []string{requestIDHeader, constants.CartSessionHeader}), ", ")
	if cfg.MaxAge > 0 {
		p.headers["Access-Control-Max-Age"] = strconv.Itoa(cfg.MaxAge)
	}
	if p.credentials {
		p.headers["Access-Control-Allow-Credentials"] = "true"
	}
	return p
}

// allowOrigin 返回应写入的 Allow-Origin；携带凭据时通配改为回显来源
func (p corsPolicy) allowOrigin(origin string) string {
	if p.wildcard {
		if p.credentials && origin != "" {
			return origin
		}
		return "*"
	}
	if origin == "" {
		return ""
	}
	for _, allowed := range p.origins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

// CORSMiddleware 跨域中间件，预检请求直接返回 204
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	policy := newCORSPolicy(cfg)
	return func(c *gin.Context) {
		header := c.Writer.Header()
		if allowed := policy.allowOrigin(c.GetHeader("Origin")); allowed != "" {
			header.Set("Access-Control-Allow-Origin", allowed)
			if allowed != "*" {
				header.Add("Vary", "Origin")
			}
		}
		for name, value := range policy.headers {
			header.Set(name, value)
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func orDefault(values, fallback []string) []string {
	if len(values) == 0 {
		return fallback
	}
	return values
}
