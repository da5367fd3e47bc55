package public

import (
	"github.com/qamees-next/internal/http/response"
	"github.com/qamees-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CustomDesignRequest 定制设计请求
type CustomDesignRequest struct {
	CustomerName      string                       `json:"customer_name"`
	CustomerEmail     string                       `json:"customer_email"`
	CustomerPhone     string                       `json:"customer_phone"`
	DesignDescription string                       `json:"design_description"`
	Quantity          int                          `json:"quantity"`
	Size              string                       `json:"size"`
	Color             string                       `json:"color"`
	ReferenceImages   []string                     `json:"reference_images"`
	Notes             string                       `json:"notes"`
	CaptchaPayload    service.CaptchaVerifyPayload `json:"captcha_payload"`
}

// SubmitCustomDesign 提交定制设计请求
func (h *Handler) SubmitCustomDesign(c *gin.Context) {
	var req CustomDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	design, err := h.CustomDesignService.Submit(service.SubmitCustomDesignInput{
		CustomerName:      req.CustomerName,
		CustomerEmail:     req.CustomerEmail,
		CustomerPhone:     req.CustomerPhone,
		DesignDescription: req.DesignDescription,
		Quantity:          req.Quantity,
		Size:              req.Size,
		Color:             req.Color,
		ReferenceImages:   req.ReferenceImages,
		Notes:             req.Notes,
		Captcha:           req.CaptchaPayload,
	})
	if err != nil {
		respondCustomDesignError(c, err)
		return
	}
	response.Success(c, design)
}
