package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "github.com/taskd/backend/docs" // Swagger docs
	"github.com/taskd/backend/internal/infrastructure/config"
	"github.com/taskd/backend/internal/infrastructure/log"
	"github.com/taskd/backend/internal/interfaces/http/handler"
	"github.com/taskd/backend/internal/interfaces/http/middleware"
	"github.com/taskd/backend/internal/interfaces/mcp"
)

// HTTPServer HTTP 服务器
type HTTPServer struct {
	router   *gin.Engine
	httpPort string
	server   *http.Server
	logger   *slog.Logger
}

// NewServer 创建 HTTP 服务器
func NewServer(
	cfg *config.ServerConfig,
	taskHandler *handler.TaskHandler,
	mcpServer *mcp.MCPServer,
) *HTTPServer {
	router := gin.New()

	logger := log.NewModuleLogger("http", "server")

	router.Use(
		gin.Recovery(),
		middleware.RequestContext(),
		middleware.AccessLog(logger),
	)

	// 注册路由
	api := router.Group("/api/v1")
	{
		tasks := api.Group("/tasks", middleware.NormalizeBody())
		{
			tasks.POST("", taskHandler.Create)
			tasks.GET("", taskHandler.List)
			tasks.GET("/count", taskHandler.Count)
			tasks.PATCH("/:id", taskHandler.Update)
			tasks.DELETE("/:id", taskHandler.Delete)
		}
	}

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// MCP SSE 端点
	if mcpServer != nil {
		router.Any("/mcp/sse", gin.WrapH(mcpServer.GetHandler()))
	}

	return &HTTPServer{
		router:   router,
		httpPort: cfg.HTTPPort,
		server: &http.Server{
			Addr:              cfg.HTTPPort,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Handler 返回路由，测试中直接配合 httptest 使用
func (s *HTTPServer) Handler() http.Handler {
	return s.router
}

// Start 启动服务器
func (s *HTTPServer) Start() error {
	s.logger.Info("HTTP server starting",
		"port", s.httpPort,
	)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown 优雅关闭，先于 Start 调用时 Start 直接返回
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Stop 停止服务器
func (s *HTTPServer) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Shutdown(ctx)
}
