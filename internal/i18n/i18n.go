package i18n

import (
	"fmt"
	"strings"

	"github.com/qamees-next/internal/constants"

	"github.com/gin-gonic/gin"
)

// DefaultLocale 默认语言
const DefaultLocale = constants.LocaleArabic

var supported = map[string]map[string]string{
	constants.LocaleArabic:  arMessages,
	constants.LocaleEnglish: enMessages,
}

// NormalizeLocale 规范化语言标识，未知语言返回默认语言
func NormalizeLocale(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return DefaultLocale
	}
	if idx := strings.IndexAny(value, "-_"); idx > 0 {
		value = value[:idx]
	}
	if _, ok := supported[value]; ok {
		return value
	}
	return DefaultLocale
}

// IsSupported 是否支持该语言
func IsSupported(raw string) bool {
	value := strings.ToLower(strings.TrimSpace(raw))
	if idx := strings.IndexAny(value, "-_"); idx > 0 {
		value = value[:idx]
	}
	_, ok := supported[value]
	return ok
}

// ResolveLocale 解析请求语言：?lang= 优先，其次 Accept-Language
func ResolveLocale(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return DefaultLocale
	}
	if lang := c.Query("lang"); IsSupported(lang) {
		return NormalizeLocale(lang)
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if IsSupported(tag) {
			return NormalizeLocale(tag)
		}
	}
	return DefaultLocale
}

// T 翻译消息，缺失时回退到默认语言，再回退到 key 本身
func T(locale, key string) string {
	if msg, ok := supported[NormalizeLocale(locale)][key]; ok {
		return msg
	}
	if msg, ok := supported[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 翻译并格式化
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
