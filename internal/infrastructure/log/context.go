package log

import (
	"context"
	"log/slog"
)

type contextKey string

// 上下文键定义
const (
	// RequestContextID 请求 ID（HTTP 与 RPC 共用）
	RequestContextID contextKey = "request_id"

	// MethodContextID RPC 方法名
	MethodContextID contextKey = "method"
)

// WithRequestID 在上下文中添加请求 ID
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestContextID, requestID)
}

// WithMethod 在上下文中添加 RPC 方法名
func WithMethod(ctx context.Context, method string) context.Context {
	return context.WithValue(ctx, MethodContextID, method)
}

// RequestIDFromContext 读取请求 ID
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(RequestContextID).(string); ok {
		return v
	}
	return ""
}

// LogCtxFromContext 从上下文中提取日志字段
func LogCtxFromContext(ctx context.Context) []any {
	var attrs []any

	if requestID, ok := ctx.Value(RequestContextID).(string); ok {
		attrs = append(attrs, slog.String("request_id", requestID))
	}
	if method, ok := ctx.Value(MethodContextID).(string); ok {
		attrs = append(attrs, slog.String("method", method))
	}

	return attrs
}

// FromContext 返回带上下文字段的 logger
func FromContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	attrs := LogCtxFromContext(ctx)
	if len(attrs) == 0 {
		return logger
	}
	return logger.With(attrs...)
}
