package admin

import (
	"github.com/qamees-next/internal/http/response"
	"github.com/qamees-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetStoreSettings 获取店铺设置
func (h *Handler) GetStoreSettings(c *gin.Context) {
	profile, err := h.SettingService.GetStoreProfile()
	if err != nil {
		respondError(c, response.CodeInternal, "error.settings_fetch_failed", err)
		return
	}
	response.Success(c, profile)
}

// UpdateStoreSettings 按补丁更新店铺设置
func (h *Handler) UpdateStoreSettings(c *gin.Context) {
	var patch service.StoreProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, response.CodeBadRequest, "error.settings_invalid", nil)
		return
	}
	profile, err := h.SettingService.UpdateStoreProfile(patch)
	if err != nil {
		settingErrors.Respond(c, err, "error.settings_save_failed")
		return
	}
	response.Success(c, profile)
}
