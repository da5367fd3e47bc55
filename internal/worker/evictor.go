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

const defaultEvictSpec = "@every 1m"

// EvictorOptions 驻留会话驱逐参数
type EvictorOptions struct {
	Spec string
	Idle time.Duration
}

// Evictor 在 API 进程内定期驱逐闲置的驻留购物车
type Evictor struct {
	cron     *cron.Cron
	opts     EvictorOptions
	registry *cart.Registry
	metrics  *metrics.CronJobMetrics
}

// NewEvictor 创建驱逐器
func NewEvictor(opts EvictorOptions, registry *cart.Registry, jobMetrics *metrics.CronJobMetrics) *Evictor {
	if strings.TrimSpace(opts.Spec) == "" {
		opts.Spec = defaultEvictSpec
	}
	return &Evictor{
		cron:     cron.New(),
		opts:     opts,
		registry: registry,
		metrics:  jobMetrics,
	}
}

// Name 服务名称
func (e *Evictor) Name() string {
	return "cart_evictor"
}

// Start 启动定时驱逐并阻塞到 ctx 结束
func (e *Evictor) Start(ctx context.Context) error {
	if e == nil || e.cron == nil || e.registry == nil {
		return errors.New("cart evictor not initialized")
	}
	if _, err := e.cron.AddFunc(e.opts.Spec, func() {
		e.RunEvict(time.Now())
	}); err != nil {
		logger.Errorw("scheduler_add_job_failed", "job", constants.JobCartEvict, "spec", e.opts.Spec, "error", err)
		return err
	}
	e.cron.Start()
	logger.Infow("cart_evictor_started", "spec", e.opts.Spec, "idle", e.opts.Idle.String())
	<-ctx.Done()
	return nil
}

// Stop 停止调度并等待运行中的任务结束
func (e *Evictor) Stop(ctx context.Context) error {
	if e == nil || e.cron == nil {
		return nil
	}
	done := e.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunEvict 以 at 为当前时间驱逐闲置会话，返回驱逐数量
func (e *Evictor) RunEvict(at time.Time) int {
	job := constants.JobCartEvict
	started := time.Now()
	evicted := e.registry.EvictIdleAt(at, e.opts.Idle)
	e.metrics.ObserveDuration(job, time.Since(started))
	e.metrics.IncSuccess(job)
	e.metrics.AddAffected(job, int64(evicted))
	if evicted > 0 {
		logger.Debugw("cart_evictor_done", "evicted", evicted, "resident", e.registry.Len())
	}
	return evicted
}
