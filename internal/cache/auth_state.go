package cache

import (
	"context"
	"errors"
	"time"

	"github.com/qamees-next/internal/models"
)

const adminAuthStateTTL = 10 * time.Minute

var errAdminGone = errors.New("admin gone")

// AdminAuthState JWT 鉴权时使用的管理员快照
type AdminAuthState struct {
	AdminID  string `json:"admin_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	CachedAt int64  `json:"cached_at"`
}

// NewAdminAuthState admin 为 nil 时返回 nil
func NewAdminAuthState(admin *models.Admin) *AdminAuthState {
	if admin == nil {
		return nil
	}
	return &AdminAuthState{
		AdminID:  admin.ID,
		Username: admin.Username,
		Role:     admin.Role,
		CachedAt: time.Now().Unix(),
	}
}

func adminAuthStateKey(adminID string) string {
	return "auth:admin:" + adminID
}

// ResolveAdminAuthState 读穿快照；load 返回 nil 表示管理员已删除，结果不缓存
func ResolveAdminAuthState(ctx context.Context, adminID string, load func() (*models.Admin, error)) (*AdminAuthState, error) {
	if adminID == "" {
		return nil, nil
	}
	state, err := Remember(ctx, adminAuthStateKey(adminID), adminAuthStateTTL, func() (*AdminAuthState, error) {
		admin, err := load()
		if err != nil {
			return nil, err
		}
		if admin == nil {
			return nil, errAdminGone
		}
		return NewAdminAuthState(admin), nil
	})
	if errors.Is(err, errAdminGone) {
		return nil, nil
	}
	return state, err
}

// StoreAdminAuthState 登录后刷新快照
func StoreAdminAuthState(ctx context.Context, admin *models.Admin) error {
	state := NewAdminAuthState(admin)
	if state == nil {
		return nil
	}
	return SetJSON(ctx, adminAuthStateKey(state.AdminID), state, adminAuthStateTTL)
}
