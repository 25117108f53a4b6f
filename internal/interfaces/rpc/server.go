package rpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/taskd/backend/internal/infrastructure/config"
	"github.com/taskd/backend/internal/infrastructure/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// RequestIDHeader 调用方可通过 metadata 透传请求 ID
const RequestIDHeader = "x-request-id"

// Server gRPC 服务器
type Server struct {
	server   *grpc.Server
	grpcPort string
	logger   *slog.Logger
}

// NewServer 创建 gRPC 服务器并注册任务服务
func NewServer(cfg *config.ServerConfig, taskManager *TaskManager) *Server {
	logger := log.NewModuleLogger("rpc", "server")

	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			requestContextInterceptor(),
			loggingInterceptor(logger),
		),
	)
	RegisterTaskManagerServer(server, taskManager)

	return &Server{
		server:   server,
		grpcPort: cfg.GRPCPort,
		logger:   logger,
	}
}

// Start 监听端口并阻塞服务
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.grpcPort)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.grpcPort, err)
	}

	return s.Serve(lis)
}

// Serve 在给定监听器上服务，测试中配合 bufconn 使用
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("gRPC server starting",
		"addr", lis.Addr().String(),
	)

	if err := s.server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// Stop 优雅停止，超时后强制关闭
func (s *Server) Stop() error {
	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.logger.Warn("gRPC graceful stop timed out, forcing")
		s.server.Stop()
	}
	return nil
}

// requestContextInterceptor 把请求 ID 与方法名写入 context
func requestContextInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(RequestIDHeader); len(values) > 0 {
				requestID = values[0]
			}
		}
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx = log.WithRequestID(ctx, requestID)
		ctx = log.WithMethod(ctx, info.FullMethod)
		return handler(ctx, req)
	}
}

// loggingInterceptor 记录方法、耗时以及是否返回了 Error 负载
func loggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		attrs := append(log.LogCtxFromContext(ctx),
			"duration", time.Since(start),
		)
		switch {
		case err != nil:
			logger.Error("RPC transport error", append(attrs, "error", err)...)
		case hasErrorPayload(resp):
			logger.Info("RPC completed with error payload", append(attrs, "message", payloadMessage(resp))...)
		default:
			logger.Debug("RPC completed", attrs...)
		}
		return resp, err
	}
}

type errorCarrier interface {
	GetError() *Error
}

func hasErrorPayload(resp any) bool {
	c, ok := resp.(errorCarrier)
	return ok && c.GetError() != nil
}

func payloadMessage(resp any) string {
	if c, ok := resp.(errorCarrier); ok {
		return c.GetError().GetMessage()
	}
	return ""
}
