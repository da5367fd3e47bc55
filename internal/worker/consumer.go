package worker

import (
	"context"
	"fmt"
	"strings"

	"github.com/qamees-next/internal/i18n"
	"github.com/qamees-next/internal/logger"
	"github.com/qamees-next/internal/models"
	"github.com/qamees-next/internal/queue"

	"github.com/hibiken/asynq"
)

// OrderLoader 消费者只需要按 ID 读订单
type OrderLoader interface {
	GetByID(id string) (*models.Order, error)
}

// Consumer 订单通知消费者，通知以结构化日志投递
type Consumer struct {
	orders OrderLoader
}

// NewConsumer 创建消费者
func NewConsumer(orders OrderLoader) *Consumer {
	return &Consumer{orders: orders}
}

// Register 注册任务处理函数
func (c *Consumer) Register(mux *asynq.ServeMux) {
	mux.Handle(queue.TaskOrderPlaced, handle(c.orderPlaced))
	mux.Handle(queue.TaskOrderStatusChanged, handle(c.orderStatusChanged))
}

// handle 解析载荷后交给 fn；载荷损坏的任务不重试
func handle[T queue.Payload](fn func(context.Context, T) error) asynq.Handler {
	return asynq.HandlerFunc(func(ctx context.Context, task *asynq.Task) error {
		payload, err := queue.Decode[T](task)
		if err != nil {
			logger.Warnw("worker_payload_invalid", "task", task.Type(), "error", err)
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		return fn(ctx, payload)
	})
}

// OrderNotification 订单通知内容
type OrderNotification struct {
	OrderID  string
	Receiver string
	Locale   string
	Subject  string
	Status   string
	Total    string
	Lines    []string
}

func (c *Consumer) orderPlaced(_ context.Context, payload queue.OrderPlacedPayload) error {
	order, err := c.loadOrder(payload.OrderID)
	if err != nil || order == nil {
		return err
	}
	locale := strings.TrimSpace(payload.Locale)
	if locale == "" {
		locale = order.Locale
	}
	notice := buildOrderNotification(order, locale)
	if notice.Receiver == "" {
		logger.Debugw("worker_order_placed_no_receiver", "order_id", order.ID)
		return nil
	}
	logger.Infow("order_placed_notification",
		"order_id", notice.OrderID,
		"receiver", notice.Receiver,
		"locale", notice.Locale,
		"subject", notice.Subject,
		"total", notice.Total,
		"lines", notice.Lines,
	)
	return nil
}

func (c *Consumer) orderStatusChanged(_ context.Context, payload queue.OrderStatusChangedPayload) error {
	order, err := c.loadOrder(payload.OrderID)
	if err != nil || order == nil {
		return err
	}
	notice := buildOrderNotification(order, order.Locale)
	if status := strings.TrimSpace(payload.Status); status != "" {
		notice.Status = status
	}
	if notice.Receiver == "" {
		logger.Debugw("worker_order_status_no_receiver", "order_id", order.ID)
		return nil
	}
	logger.Infow("order_status_notification",
		"order_id", notice.OrderID,
		"receiver", notice.Receiver,
		"from_status", payload.FromStatus,
		"status", notice.Status,
	)
	return nil
}

// loadOrder 空 ID 或订单已不存在时返回 nil, nil，任务直接完成
func (c *Consumer) loadOrder(orderID string) (*models.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" || c.orders == nil {
		logger.Debugw("worker_order_skip", "order_id", orderID, "loader_nil", c.orders == nil)
		return nil, nil
	}
	order, err := c.orders.GetByID(orderID)
	if err != nil {
		logger.Warnw("worker_order_fetch_failed", "order_id", orderID, "error", err)
		return nil, err
	}
	if order == nil {
		logger.Debugw("worker_order_not_found", "order_id", orderID)
	}
	return order, nil
}

func buildOrderNotification(order *models.Order, locale string) OrderNotification {
	if order == nil {
		return OrderNotification{}
	}
	locale = i18n.NormalizeLocale(locale)
	lines := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		title := item.ProductTitle
		if info := strings.TrimSpace(item.VariantInfo); info != "" {
			title += " (" + info + ")"
		}
		lines = append(lines, fmt.Sprintf("%s x%d = %s", title, item.Quantity, item.TotalPrice.String()))
	}
	return OrderNotification{
		OrderID:  order.ID,
		Receiver: strings.TrimSpace(order.CustomerEmail),
		Locale:   locale,
		Subject:  i18n.Sprintf(locale, "message.order_placed", shortOrderID(order.ID)),
		Status:   order.Status,
		Total:    order.TotalAmount.String(),
		Lines:    lines,
	}
}

func shortOrderID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}
