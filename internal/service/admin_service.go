package service

import (
	"strings"

	"github.com/qamees-next/internal/config"
	"github.com/qamees-next/internal/constants"
	"github.com/qamees-next/internal/models"
	"github.com/qamees-next/internal/repository"
)

// AdminService 管理员账号服务
type AdminService struct {
	repo   repository.AdminRepository
	policy config.PasswordPolicyConfig
}

// NewAdminService 创建管理员服务
func NewAdminService(repo repository.AdminRepository, policy config.PasswordPolicyConfig) *AdminService {
	return &AdminService{repo: repo, policy: policy}
}

// CreateAdminInput 创建管理员输入
type CreateAdminInput struct {
	Username string
	Password string
	Role     string
}

// List 管理员列表
func (s *AdminService) List() ([]models.Admin, error) {
	return s.repo.List()
}

// GetByID 获取管理员
func (s *AdminService) GetByID(id string) (*models.Admin, error) {
	admin, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrNotFound
	}
	return admin, nil
}

// Create 创建管理员
func (s *AdminService) Create(input CreateAdminInput) (*models.Admin, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrInvalidCredentials
	}
	role := strings.ToLower(strings.TrimSpace(input.Role))
	if role == "" {
		role = constants.AdminRoleEditor
	}
	if role != constants.AdminRoleAdmin && role != constants.AdminRoleEditor {
		return nil, ErrAdminRoleInvalid
	}
	if err := validatePassword(s.policy, input.Password); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAdminExists
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	admin := &models.Admin{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.repo.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}
