package admin

import (
	"time"

	handlershared "github.com/qamees-next/internal/http/handlers/shared"
	"github.com/qamees-next/internal/http/response"
	"github.com/qamees-next/internal/models"
	"github.com/qamees-next/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Username       string                       `json:"username" binding:"required"`
	Password       string                       `json:"password" binding:"required"`
	CaptchaPayload service.CaptchaVerifyPayload `json:"captcha_payload"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string        `json:"token"`
	User      *models.Admin `json:"user"`
	ExpiresAt string        `json:"expires_at"`
}

// AdminLogin 管理员登录
func (h *Handler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	admin, token, expiresAt, err := h.AuthService.Login(c.Request.Context(), service.LoginInput{
		Username: req.Username,
		Password: req.Password,
		Captcha:  req.CaptchaPayload,
	})
	if err != nil {
		loginErrors.Respond(c, err, "error.login_failed")
		return
	}

	response.Success(c, LoginResponse{
		Token:     token,
		User:      admin,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}

// GetAdminMe 当前登录管理员
func (h *Handler) GetAdminMe(c *gin.Context) {
	principal, ok := handlershared.RequireAdmin(c)
	if !ok {
		return
	}
	admin, err := h.AdminService.GetByID(principal.AdminID)
	if err != nil {
		adminAccountErrors.Respond(c, err, "error.admin_fetch_failed")
		return
	}
	response.Success(c, admin)
}

// ListAdmins 管理员列表
func (h *Handler) ListAdmins(c *gin.Context) {
	admins, err := h.AdminService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.admin_fetch_failed", err)
		return
	}
	response.Success(c, admins)
}

// CreateAdminRequest 创建管理员请求
type CreateAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// CreateAdmin 创建管理员
func (h *Handler) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	admin, err := h.AdminService.Create(service.CreateAdminInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if respondPasswordPolicyError(c, err) {
			return
		}
		adminAccountErrors.Respond(c, err, "error.admin_create_failed")
		return
	}
	requestLog(c).Infow("admin_account_created", "admin_id", admin.ID, "role", admin.Role)
	response.Success(c, admin)
}
