package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/qamees-next/internal/cache"
	"github.com/qamees-next/internal/config"
	"github.com/qamees-next/internal/constants"
	"github.com/qamees-next/internal/logger"
	"github.com/qamees-next/internal/models"
	"github.com/qamees-next/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService 管理员认证服务
type AuthService struct {
	cfg            *config.Config
	adminRepo      repository.AdminRepository
	captchaService *CaptchaService
}

// NewAuthService 创建认证服务实例
func NewAuthService(cfg *config.Config, adminRepo repository.AdminRepository, captchaService *CaptchaService) *AuthService {
	return &AuthService{
		cfg:            cfg,
		adminRepo:      adminRepo,
		captchaService: captchaService,
	}
}

// LoginInput 管理员登录输入
type LoginInput struct {
	Username string
	Password string
	Captcha  CaptchaVerifyPayload
}

// JWTClaims JWT 声明
type JWTClaims struct {
	AdminID  string `json:"admin_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// HashPassword 使用 bcrypt 加密密码
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword 验证密码
func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// GenerateJWT 生成 JWT Token
func (s *AuthService) GenerateJWT(admin *models.Admin) (string, time.Time, error) {
	now := time.Now()
	hours := s.cfg.JWT.ExpireHours
	if hours <= 0 {
		hours = 24
	}
	expiresAt := now.Add(time.Duration(hours) * time.Hour)

	claims := JWTClaims{
		AdminID:  admin.ID,
		Username: admin.Username,
		Role:     admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseJWT 解析 JWT Token
func (s *AuthService) ParseJWT(tokenString string) (*JWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid && claims.AdminID != "" {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// Login 管理员登录
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*models.Admin, string, time.Time, error) {
	if err := s.captchaService.Verify(constants.CaptchaSceneAdminLogin, input.Captcha); err != nil {
		return nil, "", time.Time{}, err
	}

	admin, err := s.adminRepo.GetByUsername(strings.TrimSpace(input.Username))
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if admin == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err := VerifyPassword(admin.PasswordHash, input.Password); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateJWT(admin)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	now := time.Now()
	if err := s.adminRepo.UpdateLastLogin(admin.ID, now); err != nil {
		return nil, "", time.Time{}, err
	}
	admin.LastLoginAt = &now
	if err := cache.StoreAdminAuthState(ctx, admin); err != nil {
		logger.Warnw("admin_auth_state_cache_set_failed", "admin_id", admin.ID, "error", err)
	}
	return admin, token, expiresAt, nil
}

// ResolveAuthState 管理员当前鉴权状态，快照未命中时回源数据库
// 返回 nil 表示管理员已不存在
func (s *AuthService) ResolveAuthState(ctx context.Context, adminID string) (*cache.AdminAuthState, error) {
	return cache.ResolveAdminAuthState(ctx, adminID, func() (*models.Admin, error) {
		return s.adminRepo.GetByID(adminID)
	})
}
