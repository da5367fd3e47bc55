package app

import (
	"errors"
	"time"

	"github.com/qamees-next/internal/config"
	"github.com/qamees-next/internal/metrics"
	"github.com/qamees-next/internal/provider"
	"github.com/qamees-next/internal/router"
	"github.com/qamees-next/internal/worker"
)

// BuildRunner 按启动模式组装服务
//
// api 跑 HTTP 与驻留购物车驱逐；worker 跑队列消费与定时任务（队列关闭时只跑定时任务）；
// scheduler 只跑定时任务，适合多实例部署时单独起一个；all 为 api + worker。
func BuildRunner(cfg *config.Config, mode string) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	mode, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}
	opts := Options{Config: cfg, Mode: mode}

	container := provider.NewContainer(cfg)
	var services []Service

	if opts.runsAPI() {
		engine := router.SetupRouter(cfg, container)
		services = append(services, NewHTTPService(cfg.Server, engine))
	}
	if evictor := newResidentEvictor(mode, cfg.Cart, container); evictor != nil {
		services = append(services, evictor)
	}

	if opts.runsWorker() || mode == ModeScheduler {
		scheduler := worker.NewScheduler(buildSchedulerOptions(cfg.Cart), container.CartStorage, container.Metrics.Cron)
		if opts.runsWorker() && cfg.Queue.Enabled {
			consumer := worker.NewConsumer(container.OrderRepo)
			workerService, err := worker.NewService(&cfg.Queue, consumer, scheduler)
			if err != nil {
				return nil, err
			}
			services = append(services, workerService)
		} else {
			services = append(services, NewSchedulerService(scheduler))
		}
	}

	runner := NewRunner(services...)
	if runner.Len() == 0 {
		return nil, errors.New("no services initialized (check mode and config)")
	}
	return runner, nil
}

func buildSchedulerOptions(cfg config.CartConfig) worker.SchedulerOptions {
	return worker.SchedulerOptions{
		PruneSpec: cfg.PruneCron,
		IdleTTL:   time.Duration(cfg.IdleTTLHours) * time.Hour,
	}
}

// newResidentEvictor 只有处理 HTTP 的进程持有驻留购物车
func newResidentEvictor(mode string, cfg config.CartConfig, container *provider.Container) *worker.Evictor {
	if !(Options{Mode: mode}).runsAPI() || container == nil || container.CartRegistry == nil {
		return nil
	}
	var jobMetrics *metrics.CronJobMetrics
	if container.Metrics != nil {
		jobMetrics = container.Metrics.Cron
	}
	return worker.NewEvictor(worker.EvictorOptions{
		Spec: cfg.EvictCron,
		Idle: time.Duration(cfg.ResidentIdleMinutes) * time.Minute,
	}, container.CartRegistry, jobMetrics)
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config, opts.Mode)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start", "addr", opts.Config.Server.Addr(), "mode", opts.Mode, "services", runner.Len())
	return RunWithOptions(runner, opts)
}
