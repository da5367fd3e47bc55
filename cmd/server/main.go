package main

import (
	"flag"
	"os"
	"syscall"

	"github.com/qamees-next/internal/app"
	"github.com/qamees-next/internal/config"
	"github.com/qamees-next/internal/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	mode := flag.String("mode", app.ModeAll, "启动模式: all, api, worker, scheduler")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	log := logger.S()

	release := cfg.Server.Mode == "release"
	if cfg.JWT.Weak() {
		if release {
			log.Fatalw("jwt_secret_weak", "hint", "set jwt.secret to a random value of at least 32 bytes")
		}
		log.Warnw("jwt_secret_weak", "mode", cfg.Server.Mode)
	}
	if release {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.PrepareDatabase(cfg); err != nil {
		log.Fatalw("database_prepare_failed", "error", err)
	}

	err := app.Run(app.Options{
		Config:  cfg,
		Logger:  log,
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    *mode,
	})
	if err != nil {
		log.Fatalw("app_exit", "error", err)
	}
}
