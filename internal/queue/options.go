package queue

import (
	"context"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/qamees-next/internal/config"
	"github.com/qamees-next/internal/constants"
	"github.com/qamees-next/internal/logger"

	"github.com/hibiken/asynq"
)

// DefaultQueue 默认队列
const DefaultQueue = constants.QueueDefault

const (
	defaultConcurrency    = 10
	workerShutdownTimeout = 8 * time.Second
	defaultQueueRedisHost = "127.0.0.1"
	defaultQueueRedisPort = 6379
)

// RedisOpt asynq 连接参数
func RedisOpt(cfg *config.QueueConfig) asynq.RedisClientOpt {
	host, port := defaultQueueRedisHost, defaultQueueRedisPort
	opt := asynq.RedisClientOpt{}
	if cfg != nil {
		if h := strings.TrimSpace(cfg.Host); h != "" {
			host = h
		}
		if cfg.Port > 0 {
			port = cfg.Port
		}
		opt.Password = cfg.Password
		opt.DB = cfg.DB
	}
	opt.Addr = net.JoinHostPort(host, strconv.Itoa(port))
	return opt
}

// ServerConfig 消费端配置，日志接入 zap
func ServerConfig(cfg *config.QueueConfig) asynq.Config {
	serverCfg := asynq.Config{
		Concurrency:     defaultConcurrency,
		Queues:          map[string]int{DefaultQueue: 1},
		ShutdownTimeout: workerShutdownTimeout,
		Logger:          logger.S().Named("asynq"),
		LogLevel:        asynq.InfoLevel,
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			retried, _ := asynq.GetRetryCount(ctx)
			logger.Warnw("queue_task_failed", "task", task.Type(), "retried", retried, "error", err)
		}),
	}
	if cfg == nil {
		return serverCfg
	}
	if cfg.Concurrency > 0 {
		serverCfg.Concurrency = cfg.Concurrency
	}
	if len(cfg.Queues) > 0 {
		serverCfg.Queues = cfg.Queues
	}
	return serverCfg
}
