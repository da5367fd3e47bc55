package router

import (
	"strings"

	"github.com/qamees-next/internal/authz"
	handlershared "github.com/qamees-next/internal/http/handlers/shared"
	"github.com/qamees-next/internal/http/response"
	"github.com/qamees-next/internal/logger"
	"github.com/qamees-next/internal/service"

	"github.com/gin-gonic/gin"
)

func deny(c *gin.Context, code int, key string) {
	response.Abort(c, response.NewAppError(code, key, nil))
	c.Abort()
}

// bearerToken 解析 Authorization 头，失败时返回对应的文案 key
func bearerToken(header string) (string, string) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", "error.auth_header_missing"
	}
	scheme, token, found := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", "error.auth_header_invalid"
	}
	return token, ""
}

// JWTAuthMiddleware 管理端 JWT 鉴权
// 令牌只用于定位管理员，角色取自鉴权快照，改角色或删号后旧令牌随快照失效。
func JWTAuthMiddleware(secretKey string, authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secretKey == "" {
			deny(c, response.CodeUnauthorized, "error.jwt_secret_missing")
			return
		}
		token, failKey := bearerToken(c.GetHeader("Authorization"))
		if failKey != "" {
			deny(c, response.CodeUnauthorized, failKey)
			return
		}
		if authService == nil {
			deny(c, response.CodeUnauthorized, "error.token_invalid")
			return
		}
		claims, err := authService.ParseJWT(token)
		if err != nil {
			deny(c, response.CodeUnauthorized, "error.token_invalid")
			return
		}
		state, err := authService.ResolveAuthState(c.Request.Context(), claims.AdminID)
		if err != nil {
			logger.Errorw("admin_auth_state_resolve_failed", "admin_id", claims.AdminID, "error", err)
		}
		if err != nil || state == nil {
			deny(c, response.CodeUnauthorized, "error.token_invalid")
			return
		}

		handlershared.SetAdminPrincipal(c, handlershared.AdminPrincipal{
			AdminID:  state.AdminID,
			Username: state.Username,
			Role:     state.Role,
		})
		c.Next()
	}
}

// AdminRBACMiddleware 以路由模板 + 方法做 casbin 校验
func AdminRBACMiddleware(authzService *authz.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := handlershared.AdminFromContext(c)
		if !ok {
			deny(c, response.CodeUnauthorized, "error.unauthorized")
			return
		}
		if authzService == nil {
			logger.Errorw("admin_rbac_service_unavailable", "admin_id", principal.AdminID)
			deny(c, response.CodeUnauthorized, "error.unauthorized")
			return
		}

		object := c.FullPath()
		if object == "" {
			object = c.Request.URL.Path
		}
		allowed, err := authzService.Authorize(principal.Role, object, c.Request.Method)
		if err != nil {
			logger.Errorw("admin_rbac_enforce_failed",
				"admin_id", principal.AdminID,
				"object", object,
				"method", c.Request.Method,
				"error", err,
			)
			deny(c, response.CodeUnauthorized, "error.unauthorized")
			return
		}
		if !allowed {
			logger.Warnw("admin_rbac_permission_denied",
				"admin_id", principal.AdminID,
				"role", principal.Role,
				"object", authz.NormalizeObject(object),
				"method", c.Request.Method,
			)
			deny(c, response.CodeForbidden, "error.forbidden")
			return
		}
		c.Next()
	}
}
