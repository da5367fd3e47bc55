package app

import (
	"context"

	"github.com/qamees-next/internal/worker"
)

// SchedulerService 队列关闭时独立运行定时任务
type SchedulerService struct {
	scheduler *worker.Scheduler
}

// NewSchedulerService 创建定时任务服务
func NewSchedulerService(scheduler *worker.Scheduler) *SchedulerService {
	return &SchedulerService{scheduler: scheduler}
}

// Name 服务名称
func (s *SchedulerService) Name() string {
	return "scheduler"
}

// Start 启动调度并阻塞到 ctx 结束
func (s *SchedulerService) Start(ctx context.Context) error {
	if err := s.scheduler.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}

// Stop 停止调度
func (s *SchedulerService) Stop(ctx context.Context) error {
	return s.scheduler.Stop(ctx)
}
