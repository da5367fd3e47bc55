package public

import (
	"errors"
	"strings"
	"time"

	"github.com/qamees-next/internal/constants"
	"github.com/qamees-next/internal/http/response"
	"github.com/qamees-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetConfig 获取店铺公开配置
func (h *Handler) GetConfig(c *gin.Context) {
	profile, err := h.SettingService.GetStoreProfile()
	if err != nil {
		respondError(c, response.CodeInternal, "error.settings_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{
		"store":      profile,
		"languages":  []string{constants.LocaleArabic, constants.LocaleEnglish},
		"categories": constants.ProductCategories,
		"captcha":    h.CaptchaService.PublicSetting(),
	})
}

// GetProducts 获取上架商品列表
func (h *Handler) GetProducts(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	if category != "" && !constants.Contains(constants.ProductCategories, category) {
		respondError(c, response.CodeBadRequest, "error.product_category_invalid", nil)
		return
	}

	products, err := h.ProductService.ListPublic(c.Request.Context(), category)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, products)
}

// GetProduct 获取商品详情（含规格）
func (h *Handler) GetProduct(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	product, err := h.ProductService.GetPublic(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, product)
}

// GetPublicBanners 获取当前生效的促销横幅
func (h *Handler) GetPublicBanners(c *gin.Context) {
	banners, err := h.BannerService.ListPublic(time.Now())
	if err != nil {
		respondError(c, response.CodeInternal, "error.banner_fetch_failed", err)
		return
	}
	response.Success(c, banners)
}

// GetImageCaptcha 获取图片验证码挑战
func (h *Handler) GetImageCaptcha(c *gin.Context) {
	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCaptchaConfigInvalid):
			respondError(c, response.CodeBadRequest, "error.captcha_config", nil)
		default:
			respondError(c, response.CodeInternal, "error.captcha_fetch_failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"captcha_id":   challenge.CaptchaID,
		"image_base64": challenge.ImageBase64,
	})
}
