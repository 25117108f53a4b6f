// @title taskd API
// @version 1.0
// @description taskd 任务列表管理服务 REST 接口
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/taskd/backend/internal/infrastructure/config"
	applog "github.com/taskd/backend/internal/infrastructure/log"
	"github.com/taskd/backend/internal/infrastructure/singleton"
	"github.com/taskd/backend/internal/wire"
)

func main() {
	// 加载配置（默认值 -> YAML -> .env -> 环境变量）
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志系统（.env 中的 LOG_* 已生效）
	applog.Init(nil)
	logger := applog.GetLogger()

	// 端口检查：已有实例运行时直接退出
	if err := singleton.CheckPorts(cfg.Server.HTTPPort, cfg.Server.GRPCPort); err != nil {
		if errors.Is(err, singleton.ErrAlreadyRunning) {
			logger.Info("Another taskd instance is running, exiting")
			os.Exit(0)
		}
		logger.Error("Port check failed", "error", err)
		os.Exit(1)
	}

	// Wire 自动生成的初始化函数
	app, cleanup, err := wire.InitializeApp(cfg)
	if err != nil {
		logger.Error("Failed to initialize application",
			"error", err,
		)
		os.Exit(1)
	}
	defer cleanup()

	// 启动所有服务
	if err := app.Start(); err != nil {
		logger.Error("Failed to start application",
			"error", err,
		)
		os.Exit(1)
	}

	// 优雅关闭
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down application...")
	if err := app.Stop(); err != nil {
		logger.Error("Error during application shutdown",
			"error", err,
		)
	}
	logger.Info("Application stopped")
}
