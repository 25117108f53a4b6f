package wire

import (
	"context"
	"log/slog"
	"time"

	"github.com/taskd/backend/internal/domain/task"
	applog "github.com/taskd/backend/internal/infrastructure/log"
	"github.com/taskd/backend/internal/interfaces"
)

// schemaEnsurer SQL 网关在启动时建表
type schemaEnsurer interface {
	EnsureSchema(ctx context.Context) error
}

// App 应用主结构，组合所有服务
type App struct {
	RPCServer  *interfaces.RPCServer
	HTTPServer *interfaces.HTTPServer
	MCPServer  *interfaces.MCPServer
	gateway    task.Gateway
	logger     *slog.Logger
}

// NewApp 创建应用实例
func NewApp(
	rpcServer *interfaces.RPCServer,
	httpServer *interfaces.HTTPServer,
	mcpServer *interfaces.MCPServer,
	gateway task.Gateway,
) *App {
	return &App{
		RPCServer:  rpcServer,
		HTTPServer: httpServer,
		MCPServer:  mcpServer,
		gateway:    gateway,
		logger:     applog.NewModuleLogger("app", "main"),
	}
}

// Start 启动所有服务
func (a *App) Start() error {
	a.logger.Info("Starting taskd backend application")

	// 建表失败不阻止启动：每次调用仍会重试，并把连接错误返回给调用方
	if ensurer, ok := a.gateway.(schemaEnsurer); ok {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := ensurer.EnsureSchema(ctx); err != nil {
			a.logger.Error("Failed to ensure task schema",
				"error", err,
			)
		}
		cancel()
	}

	// 启动 gRPC 服务器（goroutine）
	go func() {
		if err := a.RPCServer.Start(); err != nil {
			a.logger.Error("Failed to start gRPC server",
				"error", err,
			)
		}
	}()

	// 启动 HTTP 服务器（goroutine）
	go func() {
		if err := a.HTTPServer.Start(); err != nil {
			a.logger.Error("Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	if err := a.MCPServer.Start(); err != nil {
		return err
	}

	a.logger.Info("taskd backend application started successfully")
	return nil
}

// Stop 停止所有服务
func (a *App) Stop() error {
	a.logger.Info("Stopping taskd backend application")

	if err := a.RPCServer.Stop(); err != nil {
		a.logger.Error("Failed to stop gRPC server",
			"error", err,
		)
		return err
	}
	if err := a.HTTPServer.Stop(); err != nil {
		a.logger.Error("Failed to stop HTTP server",
			"error", err,
		)
		return err
	}
	if err := a.MCPServer.Stop(); err != nil {
		a.logger.Error("Failed to stop MCP server",
			"error", err,
		)
		return err
	}

	a.logger.Info("taskd backend application stopped successfully")
	return nil
}
