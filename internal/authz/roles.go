package authz

import "github.com/qamees-next/internal/constants"

type roleGrant struct {
	object string
	action string
}

// builtinRoles admin 全权；editor 只管商品目录、横幅与上传
var builtinRoles = map[string][]roleGrant{
	constants.AdminRoleAdmin: {
		{"/admin/*", "*"},
	},
	constants.AdminRoleEditor: {
		{"/admin/me", "GET"},
		{"/admin/products", "*"},
		{"/admin/products/:id", "*"},
		{"/admin/products/:id/variants", "PUT"},
		{"/admin/banners", "*"},
		{"/admin/banners/:id", "*"},
		{"/admin/upload", "POST"},
	},
}

// SeedBuiltinRoles 写入内置角色策略，可重复执行
func (s *Service) SeedBuiltinRoles() error {
	for role, grants := range builtinRoles {
		for _, g := range grants {
			if err := s.Grant(role, g.object, g.action); err != nil {
				return err
			}
		}
	}
	return nil
}
