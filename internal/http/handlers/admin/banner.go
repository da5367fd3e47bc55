package admin

import (
	"strconv"
	"strings"

	handlershared "github.com/qamees-next/internal/http/handlers/shared"
	"github.com/qamees-next/internal/http/response"
	"github.com/qamees-next/internal/service"

	"github.com/gin-gonic/gin"
)

// BannerRequest 横幅请求
type BannerRequest struct {
	Title        string `json:"title" binding:"required"`
	Subtitle     string `json:"subtitle"`
	ImageURL     string `json:"image_url" binding:"required"`
	LinkURL      string `json:"link_url"`
	ButtonText   string `json:"button_text"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

func (r BannerRequest) toInput() (service.BannerInput, error) {
	startDate, err := parseOptionalTime(r.StartDate)
	if err != nil {
		return service.BannerInput{}, err
	}
	endDate, err := parseOptionalTime(r.EndDate)
	if err != nil {
		return service.BannerInput{}, err
	}
	return service.BannerInput{
		Title:        r.Title,
		Subtitle:     r.Subtitle,
		ImageURL:     r.ImageURL,
		LinkURL:      r.LinkURL,
		ButtonText:   r.ButtonText,
		DisplayOrder: r.DisplayOrder,
		IsActive:     r.IsActive,
		StartDate:    startDate,
		EndDate:      endDate,
	}, nil
}

// GetAdminBanners 后台横幅列表
func (h *Handler) GetAdminBanners(c *gin.Context) {
	page, pageSize := handlershared.QueryPagination(c)

	var isActive *bool
	if raw := strings.TrimSpace(c.Query("is_active")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return
		}
		isActive = &parsed
	}

	banners, total, err := h.BannerService.ListAdmin(c.Query("search"), isActive, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.banner_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, banners, response.NewPagination(page, pageSize, total))
}

// GetAdminBanner 横幅详情
func (h *Handler) GetAdminBanner(c *gin.Context) {
	id, ok := handlershared.PathID(c, "error.banner_not_found")
	if !ok {
		return
	}
	banner, err := h.BannerService.GetByID(id)
	if err != nil {
		bannerErrors.Respond(c, err, "error.banner_fetch_failed")
		return
	}
	response.Success(c, banner)
}

// CreateBanner 创建横幅
func (h *Handler) CreateBanner(c *gin.Context) {
	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.banner_invalid", nil)
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.banner_invalid", nil)
		return
	}
	banner, err := h.BannerService.Create(input)
	if err != nil {
		bannerErrors.Respond(c, err, "error.banner_create_failed")
		return
	}
	response.Success(c, banner)
}

// UpdateBanner 更新横幅
func (h *Handler) UpdateBanner(c *gin.Context) {
	id, ok := handlershared.PathID(c, "error.banner_not_found")
	if !ok {
		return
	}
	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.banner_invalid", nil)
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.banner_invalid", nil)
		return
	}
	banner, err := h.BannerService.Update(id, input)
	if err != nil {
		bannerErrors.Respond(c, err, "error.banner_update_failed")
		return
	}
	response.Success(c, banner)
}

// DeleteBanner 删除横幅
func (h *Handler) DeleteBanner(c *gin.Context) {
	id, ok := handlershared.PathID(c, "error.banner_not_found")
	if !ok {
		return
	}
	if err := h.BannerService.Delete(id); err != nil {
		bannerErrors.Respond(c, err, "error.banner_delete_failed")
		return
	}
	response.Success(c, nil)
}
