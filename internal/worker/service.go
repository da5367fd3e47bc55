package worker

import (
	"context"
	"errors"

	"github.com/qamees-next/internal/config"
	"github.com/qamees-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Service 队列消费 + 定时任务，生命周期由 app.Runner 管理
type Service struct {
	server    *asynq.Server
	mux       *asynq.ServeMux
	scheduler *Scheduler
}

// NewService 队列未启用时返回错误，scheduler 可为空
func NewService(cfg *config.QueueConfig, consumer *Consumer, scheduler *Scheduler) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		server:    asynq.NewServer(queue.RedisOpt(cfg), queue.ServerConfig(cfg)),
		mux:       mux,
		scheduler: scheduler,
	}, nil
}

// Name 服务名称
func (s *Service) Name() string {
	return "worker"
}

// Start 启动消费与定时任务，阻塞到 ctx 结束
// 信号由 Runner 统一处理，这里不用 asynq 自带的 Run。
func (s *Service) Start(ctx context.Context) error {
	if s.scheduler != nil {
		if err := s.scheduler.Start(ctx); err != nil {
			return err
		}
	}
	if err := s.server.Start(s.mux); err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}

// Stop 先停止拉取新任务，再等待定时任务结束
func (s *Service) Stop(ctx context.Context) error {
	s.server.Shutdown()
	if s.scheduler != nil {
		return s.scheduler.Stop(ctx)
	}
	return nil
}
