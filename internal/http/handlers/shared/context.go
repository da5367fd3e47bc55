package shared

import (
	"strings"

	"github.com/qamees-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

const adminPrincipalKey = "admin_principal"

// AdminPrincipal 鉴权中间件写入的当前管理员
type AdminPrincipal struct {
	AdminID  string
	Username string
	Role     string
}

// SetAdminPrincipal 写入当前管理员
func SetAdminPrincipal(c *gin.Context, principal AdminPrincipal) {
	c.Set(adminPrincipalKey, principal)
}

// AdminFromContext 读取当前管理员，未登录返回 false
func AdminFromContext(c *gin.Context) (AdminPrincipal, bool) {
	value, exists := c.Get(adminPrincipalKey)
	if !exists {
		return AdminPrincipal{}, false
	}
	principal, ok := value.(AdminPrincipal)
	if !ok || strings.TrimSpace(principal.AdminID) == "" {
		return AdminPrincipal{}, false
	}
	return principal, true
}

// RequireAdmin 读取当前管理员，缺失时直接响应 401
func RequireAdmin(c *gin.Context) (AdminPrincipal, bool) {
	principal, ok := AdminFromContext(c)
	if !ok {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
	}
	return principal, ok
}

// PathID 读取路径参数 id，缺失时返回 400
func PathID(c *gin.Context, invalidKey string) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		RespondError(c, response.CodeBadRequest, invalidKey, nil)
		return "", false
	}
	return id, true
}
