package service

import (
	"errors"
	"strings"
	"time"

	"github.com/qamees-next/internal/constants"
	"github.com/qamees-next/internal/logger"
	"github.com/qamees-next/internal/models"
	"github.com/qamees-next/internal/queue"
	"github.com/qamees-next/internal/repository"
)

// OrderService 订单业务服务（后台）
type OrderService struct {
	orderRepo   repository.OrderRepository
	queueClient *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, queueClient *queue.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		queueClient: queueClient,
	}
}

// OrderListInput 后台订单查询参数
type OrderListInput struct {
	Page          int
	PageSize      int
	Status        string
	CustomerEmail string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
}

// ListAdmin 后台订单列表（含订单项，新单在前）
func (s *OrderService) ListAdmin(input OrderListInput) ([]models.Order, int64, error) {
	status := strings.ToLower(strings.TrimSpace(input.Status))
	if status != "" && !constants.Contains(constants.OrderStatuses, status) {
		return nil, 0, ErrOrderStatusInvalid
	}
	return s.orderRepo.ListAdmin(repository.OrderListFilter{
		Page:          input.Page,
		PageSize:      input.PageSize,
		Status:        status,
		CustomerEmail: strings.TrimSpace(input.CustomerEmail),
		CreatedFrom:   input.CreatedFrom,
		CreatedTo:     input.CreatedTo,
	})
}

// GetByID 获取订单详情
func (s *OrderService) GetByID(id string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// UpdateStatus 更新订单状态，状态变化时推送通知任务
func (s *OrderService) UpdateStatus(id, status string) (*models.Order, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !constants.Contains(constants.OrderStatuses, status) {
		return nil, ErrOrderStatusInvalid
	}
	order, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	previous := order.Status
	if previous == status {
		return order, nil
	}

	if err := s.orderRepo.UpdateStatus(order.ID, previous, status); err != nil {
		if errors.Is(err, repository.ErrStatusChanged) {
			return nil, ErrOrderStatusConflict
		}
		return nil, err
	}
	order.Status = status
	logger.Infow("order_status_updated",
		"order_id", order.ID,
		"from", previous,
		"to", status,
	)

	payload := queue.OrderStatusChangedPayload{
		OrderID:    order.ID,
		FromStatus: previous,
		Status:     status,
	}
	if err := s.queueClient.Enqueue(payload); err != nil {
		logger.Warnw("order_enqueue_status_changed_failed",
			"order_id", order.ID,
			"status", status,
			"error", err,
		)
	}
	return order, nil
}
