package queue

import (
	"errors"
	"time"

	"github.com/qamees-next/internal/config"
	"github.com/qamees-next/internal/logger"

	"github.com/hibiken/asynq"
)

const (
	defaultMaxRetry  = 5
	defaultTimeout   = 30 * time.Second
	defaultRetention = 24 * time.Hour
)

// Client 任务投递；未启用队列时所有投递都是空操作
type Client struct {
	client *asynq.Client
	queue  string
}

// NewClient 队列未启用时返回空客户端
func NewClient(cfg *config.QueueConfig) *Client {
	if cfg == nil || !cfg.Enabled {
		return &Client{}
	}
	return &Client{client: asynq.NewClient(RedisOpt(cfg)), queue: DefaultQueue}
}

// Enabled 是否真正投递
func (c *Client) Enabled() bool {
	return c != nil && c.client != nil
}

// Close 关闭连接
func (c *Client) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}

// Enqueue 投递任务，重复的 DedupKey 视为已投递
func (c *Client) Enqueue(p Payload, opts ...asynq.Option) error {
	if !c.Enabled() {
		return nil
	}
	task, err := NewTask(p)
	if err != nil {
		return err
	}
	options := []asynq.Option{
		asynq.Queue(c.queue),
		asynq.MaxRetry(defaultMaxRetry),
		asynq.Timeout(defaultTimeout),
		asynq.Retention(defaultRetention),
	}
	if key := p.DedupKey(); key != "" {
		options = append(options, asynq.TaskID(p.TaskType()+":"+key))
	}
	info, err := c.client.Enqueue(task, append(options, opts...)...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		logger.Debugw("queue_enqueue_duplicate", "task", p.TaskType(), "key", p.DedupKey())
		return nil
	}
	if err != nil {
		return err
	}
	logger.Debugw("queue_enqueued", "task", info.Type, "id", info.ID, "queue", info.Queue)
	return nil
}
