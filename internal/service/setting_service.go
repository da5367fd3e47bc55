package service

import (
	"strings"

	"github.com/qamees-next/internal/constants"
	"github.com/qamees-next/internal/models"
	"github.com/qamees-next/internal/repository"
)

// StoreProfile 店铺资料
type StoreProfile struct {
	StoreName           string `json:"store_name"`
	StoreDescription    string `json:"store_description"`
	ContactEmail        string `json:"contact_email"`
	ContactPhone        string `json:"contact_phone"`
	EnableNotifications bool   `json:"enable_notifications"`
	MaintenanceMode     bool   `json:"maintenance_mode"`
}

// DefaultStoreProfile 默认店铺资料
func DefaultStoreProfile() StoreProfile {
	return StoreProfile{
		StoreName:           "Qamees",
		StoreDescription:    "Premium custom and ready-made shirts",
		ContactEmail:        "info@store.com",
		ContactPhone:        "+966501234567",
		EnableNotifications: true,
		MaintenanceMode:     false,
	}
}

// StoreProfilePatch 店铺资料补丁
type StoreProfilePatch struct {
	StoreName           *string `json:"store_name"`
	StoreDescription    *string `json:"store_description"`
	ContactEmail        *string `json:"contact_email"`
	ContactPhone        *string `json:"contact_phone"`
	EnableNotifications *bool   `json:"enable_notifications"`
	MaintenanceMode     *bool   `json:"maintenance_mode"`
}

// SettingService 设置业务服务
type SettingService struct {
	repo repository.SettingRepository
}

// NewSettingService 创建设置服务
func NewSettingService(repo repository.SettingRepository) *SettingService {
	return &SettingService{repo: repo}
}

// GetByKey 获取设置
func (s *SettingService) GetByKey(key string) (models.JSON, error) {
	setting, err := s.repo.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, nil
	}
	return setting.ValueJSON, nil
}

// GetStoreProfile 获取店铺资料（合并默认值）
func (s *SettingService) GetStoreProfile() (StoreProfile, error) {
	profile := DefaultStoreProfile()
	value, err := s.GetByKey(constants.SettingKeyStoreProfile)
	if err != nil {
		return profile, err
	}
	return storeProfileFromJSON(value, profile), nil
}

// UpdateStoreProfile 按补丁更新店铺资料
func (s *SettingService) UpdateStoreProfile(patch StoreProfilePatch) (StoreProfile, error) {
	profile, err := s.GetStoreProfile()
	if err != nil {
		return profile, err
	}
	if patch.StoreName != nil {
		profile.StoreName = strings.TrimSpace(*patch.StoreName)
	}
	if patch.StoreDescription != nil {
		profile.StoreDescription = strings.TrimSpace(*patch.StoreDescription)
	}
	if patch.ContactEmail != nil {
		profile.ContactEmail = strings.TrimSpace(*patch.ContactEmail)
	}
	if patch.ContactPhone != nil {
		profile.ContactPhone = strings.TrimSpace(*patch.ContactPhone)
	}
	if patch.EnableNotifications != nil {
		profile.EnableNotifications = *patch.EnableNotifications
	}
	if patch.MaintenanceMode != nil {
		profile.MaintenanceMode = *patch.MaintenanceMode
	}

	if profile.StoreName == "" {
		return profile, ErrSettingsInvalid
	}
	if profile.ContactEmail != "" && !emailPattern.MatchString(profile.ContactEmail) {
		return profile, ErrInvalidEmail
	}
	if profile.ContactPhone != "" && !phonePattern.MatchString(profile.ContactPhone) {
		return profile, ErrInvalidPhone
	}

	if _, err := s.repo.Upsert(constants.SettingKeyStoreProfile, storeProfileToJSON(profile)); err != nil {
		return profile, err
	}
	return profile, nil
}

func storeProfileToJSON(profile StoreProfile) models.JSON {
	return models.JSON{
		"store_name":           profile.StoreName,
		"store_description":    profile.StoreDescription,
		"contact_email":        profile.ContactEmail,
		"contact_phone":        profile.ContactPhone,
		"enable_notifications": profile.EnableNotifications,
		"maintenance_mode":     profile.MaintenanceMode,
	}
}

func storeProfileFromJSON(raw models.JSON, fallback StoreProfile) StoreProfile {
	if raw == nil {
		return fallback
	}
	profile := fallback
	if v, ok := raw["store_name"].(string); ok && strings.TrimSpace(v) != "" {
		profile.StoreName = v
	}
	if v, ok := raw["store_description"].(string); ok {
		profile.StoreDescription = v
	}
	if v, ok := raw["contact_email"].(string); ok {
		profile.ContactEmail = v
	}
	if v, ok := raw["contact_phone"].(string); ok {
		profile.ContactPhone = v
	}
	if v, ok := raw["enable_notifications"].(bool); ok {
		profile.EnableNotifications = v
	}
	if v, ok := raw["maintenance_mode"].(bool); ok {
		profile.MaintenanceMode = v
	}
	return profile
}
