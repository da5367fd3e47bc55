package service

import (
	"strings"
	"time"

	"github.com/qamees-next/internal/models"
	"github.com/qamees-next/internal/repository"
)

const publicBannerLimit = 10

// BannerService 促销横幅业务服务
type BannerService struct {
	repo repository.BannerRepository
}

// NewBannerService 创建横幅服务
func NewBannerService(repo repository.BannerRepository) *BannerService {
	return &BannerService{repo: repo}
}

// BannerInput 创建/更新横幅输入
type BannerInput struct {
	Title        string
	Subtitle     string
	ImageURL     string
	LinkURL      string
	ButtonText   string
	DisplayOrder int
	IsActive     *bool
	StartDate    *time.Time
	EndDate      *time.Time
}

// ListAdmin 获取后台横幅列表（按展示顺序）
func (s *BannerService) ListAdmin(search string, isActive *bool, page, pageSize int) ([]models.PromotionalBanner, int64, error) {
	return s.repo.List(repository.BannerListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(search),
		IsActive: isActive,
	})
}

// ListPublic 获取当前可见横幅：启用且在有效期内，按展示顺序升序
func (s *BannerService) ListPublic(now time.Time) ([]models.PromotionalBanner, error) {
	return s.repo.ListVisible(now, publicBannerLimit)
}

// GetByID 根据 ID 获取横幅
func (s *BannerService) GetByID(id string) (*models.PromotionalBanner, error) {
	banner, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, ErrNotFound
	}
	return banner, nil
}

// Create 创建横幅
func (s *BannerService) Create(input BannerInput) (*models.PromotionalBanner, error) {
	banner, err := buildBannerEntity(input, nil)
	if err != nil {
		return nil, err
	}
	isActive := banner.IsActive
	if err := s.repo.Create(banner); err != nil {
		return nil, err
	}
	if !isActive {
		banner.IsActive = false
		if err := s.repo.Update(banner); err != nil {
			return nil, err
		}
	}
	return banner, nil
}

// Update 更新横幅
func (s *BannerService) Update(id string, input BannerInput) (*models.PromotionalBanner, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	banner, err := buildBannerEntity(input, existing)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(banner); err != nil {
		return nil, err
	}
	return banner, nil
}

// Delete 删除横幅
func (s *BannerService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func buildBannerEntity(input BannerInput, existing *models.PromotionalBanner) (*models.PromotionalBanner, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrInvalidBanner
	}
	image := strings.TrimSpace(input.ImageURL)
	if image == "" {
		return nil, ErrInvalidBanner
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, ErrInvalidBanner
	}

	banner := &models.PromotionalBanner{IsActive: true}
	if existing != nil {
		banner = existing
	}
	banner.Title = title
	banner.Subtitle = strings.TrimSpace(input.Subtitle)
	banner.ImageURL = image
	banner.LinkURL = strings.TrimSpace(input.LinkURL)
	banner.ButtonText = strings.TrimSpace(input.ButtonText)
	banner.DisplayOrder = input.DisplayOrder
	banner.StartDate = input.StartDate
	banner.EndDate = input.EndDate
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}
	return banner, nil
}
