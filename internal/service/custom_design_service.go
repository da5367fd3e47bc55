package service

import (
	"strings"

	"github.com/qamees-next/internal/constants"
	"github.com/qamees-next/internal/logger"
	"github.com/qamees-next/internal/models"
	"github.com/qamees-next/internal/repository"

	"github.com/shopspring/decimal"
)

const maxDesignReferenceImages = 10

// CustomDesignService 定制设计请求服务
type CustomDesignService struct {
	repo           repository.CustomDesignRepository
	captchaService *CaptchaService
}

// NewCustomDesignService 创建定制设计服务
func NewCustomDesignService(repo repository.CustomDesignRepository, captchaService *CaptchaService) *CustomDesignService {
	return &CustomDesignService{
		repo:           repo,
		captchaService: captchaService,
	}
}

// SubmitCustomDesignInput 提交定制请求输入
type SubmitCustomDesignInput struct {
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     string
	DesignDescription string
	Quantity          int
	Size              string
	Color             string
	ReferenceImages   []string
	Notes             string
	Captcha           CaptchaVerifyPayload
}

// UpdateCustomDesignInput 后台更新定制请求输入
type UpdateCustomDesignInput struct {
	Status         *string
	EstimatedPrice *decimal.Decimal
	Notes          *string
}

// Submit 提交定制请求，初始状态为 pending
func (s *CustomDesignService) Submit(input SubmitCustomDesignInput) (*models.CustomDesign, error) {
	name := strings.TrimSpace(input.CustomerName)
	email := strings.TrimSpace(input.CustomerEmail)
	phone := strings.TrimSpace(input.CustomerPhone)
	description := strings.TrimSpace(input.DesignDescription)
	if name == "" {
		return nil, ErrCustomerNameEmpty
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if !phonePattern.MatchString(phone) {
		return nil, ErrInvalidPhone
	}
	if description == "" || input.Quantity < 1 {
		return nil, ErrDesignInvalid
	}

	images := make([]string, 0, len(input.ReferenceImages))
	for _, image := range input.ReferenceImages {
		if trimmed := strings.TrimSpace(image); trimmed != "" {
			images = append(images, trimmed)
		}
	}
	if len(images) > maxDesignReferenceImages {
		return nil, ErrDesignInvalid
	}

	if err := s.captchaService.Verify(constants.CaptchaSceneCustomDesign, input.Captcha); err != nil {
		return nil, err
	}

	design := &models.CustomDesign{
		CustomerName:      name,
		CustomerEmail:     email,
		CustomerPhone:     phone,
		DesignDescription: description,
		Quantity:          input.Quantity,
		Size:              strings.TrimSpace(input.Size),
		Color:             strings.TrimSpace(input.Color),
		ReferenceImages:   models.StringArray(images),
		Notes:             strings.TrimSpace(input.Notes),
		Status:            constants.DesignStatusPending,
	}
	if err := s.repo.Create(design); err != nil {
		return nil, err
	}
	logger.Infow("custom_design_submitted",
		"design_id", design.ID,
		"quantity", design.Quantity,
	)
	return design, nil
}

// ListAdmin 后台定制请求列表
func (s *CustomDesignService) ListAdmin(status string, page, pageSize int) ([]models.CustomDesign, int64, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status != "" && !constants.Contains(constants.DesignStatuses, status) {
		return nil, 0, ErrDesignStatusInvalid
	}
	return s.repo.List(repository.CustomDesignListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   status,
	})
}

// GetByID 获取定制请求
func (s *CustomDesignService) GetByID(id string) (*models.CustomDesign, error) {
	design, err := s.repo.GetByID(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if design == nil {
		return nil, ErrNotFound
	}
	return design, nil
}

// Update 更新状态、预估价格与备注
func (s *CustomDesignService) Update(id string, input UpdateCustomDesignInput) (*models.CustomDesign, error) {
	design, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if input.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*input.Status))
		if !constants.Contains(constants.DesignStatuses, status) {
			return nil, ErrDesignStatusInvalid
		}
		design.Status = status
	}
	if input.EstimatedPrice != nil {
		if input.EstimatedPrice.IsNegative() {
			return nil, ErrProductPriceInvalid
		}
		price := models.NewMoneyFromDecimal(*input.EstimatedPrice)
		design.EstimatedPrice = &price
	}
	if input.Notes != nil {
		design.Notes = strings.TrimSpace(*input.Notes)
	}
	if err := s.repo.Update(design); err != nil {
		return nil, err
	}
	return design, nil
}
