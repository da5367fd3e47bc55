package queue

import (
	"encoding/json"
	"fmt"

	"github.com/qamees-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	TaskOrderPlaced        = constants.TaskOrderPlaced
	TaskOrderStatusChanged = constants.TaskOrderStatusChanged
)

// Payload 可入队的任务载荷
// DedupKey 相同的任务在保留期内只入队一次。
type Payload interface {
	TaskType() string
	DedupKey() string
}

// OrderPlacedPayload 下单通知
type OrderPlacedPayload struct {
	OrderID string `json:"order_id"`
	Locale  string `json:"locale"`
}

func (OrderPlacedPayload) TaskType() string {
	return TaskOrderPlaced
}

func (p OrderPlacedPayload) DedupKey() string {
	return p.OrderID
}

// OrderStatusChangedPayload 订单状态变更通知
type OrderStatusChangedPayload struct {
	OrderID    string `json:"order_id"`
	FromStatus string `json:"from_status"`
	Status     string `json:"status"`
}

func (OrderStatusChangedPayload) TaskType() string {
	return TaskOrderStatusChanged
}

func (p OrderStatusChangedPayload) DedupKey() string {
	return p.OrderID + ":" + p.FromStatus + ">" + p.Status
}

// NewTask 序列化载荷
func NewTask(p Payload) (*asynq.Task, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(p.TaskType(), body), nil
}

// Decode 按任务类型解析载荷
func Decode[T Payload](task *asynq.Task) (T, error) {
	var payload T
	if task.Type() != payload.TaskType() {
		return payload, fmt.Errorf("task type %q does not match %q", task.Type(), payload.TaskType())
	}
	err := json.Unmarshal(task.Payload(), &payload)
	return payload, err
}
