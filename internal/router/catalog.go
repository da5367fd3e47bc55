package router

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/qamees-next/internal/authz"
	"github.com/qamees-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// PermissionEntry 权限目录条目，Permission 形如 "GET:/admin/products/:id"
type PermissionEntry struct {
	Module     string `json:"module"`
	Method     string `json:"method"`
	Object     string `json:"object"`
	Permission string `json:"permission"`
}

// permissionCatalog 从已注册的管理端路由生成权限目录，登录接口除外
func permissionCatalog(routes gin.RoutesInfo) []PermissionEntry {
	byPermission := make(map[string]PermissionEntry, len(routes))
	for _, route := range routes {
		method := strings.ToUpper(route.Method)
		if method == http.MethodOptions || method == http.MethodHead {
			continue
		}
		if !strings.HasPrefix(route.Path, "/api/v1/admin/") || route.Path == adminLoginPath {
			continue
		}
		object := authz.NormalizeObject(route.Path)
		entry := PermissionEntry{
			Module:     permissionModule(object),
			Method:     method,
			Object:     object,
			Permission: method + ":" + object,
		}
		byPermission[entry.Permission] = entry
	}

	entries := make([]PermissionEntry, 0, len(byPermission))
	for _, entry := range byPermission {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Module != b.Module {
			return a.Module < b.Module
		}
		if a.Object != b.Object {
			return a.Object < b.Object
		}
		return a.Method < b.Method
	})
	return entries
}

// permissionModule /admin/products/:id -> products
func permissionModule(object string) string {
	segments := strings.Split(strings.Trim(object, "/"), "/")
	switch {
	case len(segments) == 0 || segments[0] == "":
		return "system"
	case segments[0] == "admin" && len(segments) > 1:
		return segments[1]
	default:
		return segments[0]
	}
}

// rolePolicies 查看某角色的全部策略
func rolePolicies(authzService *authz.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		policies, err := authzService.RolePolicies(c.Param("role"))
		switch {
		case errors.Is(err, authz.ErrUnavailable):
			deny(c, response.CodeInternal, "error.internal")
		case err != nil:
			deny(c, response.CodeBadRequest, "error.bad_request")
		default:
			response.Success(c, policies)
		}
	}
}
