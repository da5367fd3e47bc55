package shared

import (
	"strings"

	"github.com/qamees-next/internal/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const cartSessionCookieMaxAge = 30 * 24 * 60 * 60

// ResolveCartSession 读取购物车会话 ID（Header 优先，其次 Cookie），不存在或非法时签发新 ID
//
// 返回值 issued 表示本次新签发。新会话 ID 会回写到响应 Header 与 Cookie。
func ResolveCartSession(c *gin.Context) (sessionID string, issued bool) {
	candidate := strings.TrimSpace(c.GetHeader(constants.CartSessionHeader))
	if candidate == "" {
		if cookie, err := c.Cookie(constants.CartSessionCookie); err == nil {
			candidate = strings.TrimSpace(cookie)
		}
	}
	if parsed, err := uuid.Parse(candidate); err == nil {
		sessionID = parsed.String()
	} else {
		sessionID = uuid.NewString()
		issued = true
	}
	c.Header(constants.CartSessionHeader, sessionID)
	if issued {
		c.SetCookie(constants.CartSessionCookie, sessionID, cartSessionCookieMaxAge, "/", "", false, true)
	}
	return sessionID, issued
}
