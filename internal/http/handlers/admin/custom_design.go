package admin

import (
	handlershared "github.com/qamees-next/internal/http/handlers/shared"
	"github.com/qamees-next/internal/http/response"
	"github.com/qamees-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// UpdateCustomDesignRequest 后台更新定制请求
type UpdateCustomDesignRequest struct {
	Status         *string          `json:"status"`
	EstimatedPrice *decimal.Decimal `json:"estimated_price"`
	Notes          *string          `json:"notes"`
}

// GetAdminCustomDesigns 定制请求列表
func (h *Handler) GetAdminCustomDesigns(c *gin.Context) {
	page, pageSize := handlershared.QueryPagination(c)
	designs, total, err := h.CustomDesignService.ListAdmin(c.Query("status"), page, pageSize)
	if err != nil {
		designErrors.Respond(c, err, "error.design_fetch_failed")
		return
	}
	response.SuccessWithPage(c, designs, response.NewPagination(page, pageSize, total))
}

// GetAdminCustomDesign 定制请求详情
func (h *Handler) GetAdminCustomDesign(c *gin.Context) {
	id, ok := handlershared.PathID(c, "error.design_not_found")
	if !ok {
		return
	}
	design, err := h.CustomDesignService.GetByID(id)
	if err != nil {
		designErrors.Respond(c, err, "error.design_fetch_failed")
		return
	}
	response.Success(c, design)
}

// UpdateCustomDesign 更新定制请求状态/报价/备注
func (h *Handler) UpdateCustomDesign(c *gin.Context) {
	id, ok := handlershared.PathID(c, "error.design_not_found")
	if !ok {
		return
	}
	var req UpdateCustomDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.design_invalid", nil)
		return
	}
	design, err := h.CustomDesignService.Update(id, service.UpdateCustomDesignInput{
		Status:         req.Status,
		EstimatedPrice: req.EstimatedPrice,
		Notes:          req.Notes,
	})
	if err != nil {
		designErrors.Respond(c, err, "error.design_update_failed")
		return
	}
	response.Success(c, design)
}
