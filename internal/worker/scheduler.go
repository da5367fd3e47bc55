package worker

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/qamees-next/internal/cart"
	"github.com/qamees-next/internal/constants"
	"github.com/qamees-next/internal/logger"
	"github.com/qamees-next/internal/metrics"

	"github.com/robfig/cron/v3"
)

const defaultPruneSpec = "@every 1h"

// CartPruner 可按更新时间清理的购物车存储
type CartPruner interface {
	PruneIdle(ctx context.Context, before time.Time) (int64, error)
}

// SchedulerOptions 定时任务参数
type SchedulerOptions struct {
	PruneSpec string
	IdleTTL   time.Duration
}

// Scheduler 定时任务调度
type Scheduler struct {
	cron    *cron.Cron
	opts    SchedulerOptions
	pruner  CartPruner
	metrics *metrics.CronJobMetrics
	now     func() time.Time
}

// NewScheduler 创建调度器；storage 不支持清理时任务为空转
func NewScheduler(opts SchedulerOptions, storage cart.Storage, jobMetrics *metrics.CronJobMetrics) *Scheduler {
	if strings.TrimSpace(opts.PruneSpec) == "" {
		opts.PruneSpec = defaultPruneSpec
	}
	pruner, _ := storage.(CartPruner)
	return &Scheduler{
		cron:    cron.New(),
		opts:    opts,
		pruner:  pruner,
		metrics: jobMetrics,
		now:     time.Now,
	}
}

// Name 服务名称
func (s *Scheduler) Name() string {
	return "scheduler"
}

// Start 注册并启动定时任务
func (s *Scheduler) Start(ctx context.Context) error {
	if s == nil || s.cron == nil {
		return errors.New("scheduler not initialized")
	}
	if _, err := s.cron.AddFunc(s.opts.PruneSpec, func() {
		s.RunCartPrune(ctx)
	}); err != nil {
		logger.Errorw("scheduler_add_job_failed", "job", constants.JobCartPrune, "spec", s.opts.PruneSpec, "error", err)
		return err
	}
	s.cron.Start()
	logger.Infow("scheduler_started", "job", constants.JobCartPrune, "spec", s.opts.PruneSpec)
	return nil
}

// Stop 停止调度并等待运行中的任务结束
func (s *Scheduler) Stop(ctx context.Context) error {
	if s == nil || s.cron == nil {
		return nil
	}
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunCartPrune 删除超过 IdleTTL 未更新的持久化购物车
func (s *Scheduler) RunCartPrune(ctx context.Context) {
	started := s.now()
	job := constants.JobCartPrune
	defer func() {
		s.metrics.ObserveDuration(job, time.Since(started))
	}()

	var affected int64
	if s.pruner != nil && s.opts.IdleTTL > 0 {
		removed, err := s.pruner.PruneIdle(ctx, started.Add(-s.opts.IdleTTL))
		if err != nil {
			s.metrics.IncFailure(job)
			logger.Warnw("scheduler_cart_prune_failed", "error", err)
			return
		}
		affected += removed
	}
	s.metrics.IncSuccess(job)
	s.metrics.AddAffected(job, affected)
	logger.Debugw("scheduler_cart_prune_done", "affected", affected)
}
