package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/taskd/backend/internal/infrastructure/log/handler"
)

// 全局 logger 实例
var (
	defaultLogger *slog.Logger
	debugMode     bool
)

// Init 初始化日志系统
func Init(cfg *Config) {
	if cfg == nil {
		var err error
		if cfg, err = ConfigFromEnv(); err != nil {
			fmt.Fprintf(os.Stderr, "invalid log config, keeping defaults: %v\n", err)
		}
	}

	out, err := openOutput(cfg.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log output %q, falling back to stdout: %v\n", cfg.Output, err)
		out = os.Stdout
	}

	defaultLogger = slog.New(newHandler(out, cfg).WithAttrs([]slog.Attr{
		slog.String("service", "taskd"),
	}))

	debugMode = cfg.Level <= slog.LevelDebug

	slog.SetDefault(defaultLogger)
}

// newHandler 根据格式选择处理器
func newHandler(out io.Writer, cfg *Config) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
	}

	switch cfg.Format {
	case "json":
		return slog.NewJSONHandler(out, opts)
	case "console":
		return handler.NewConsoleHandler(out, opts)
	default:
		return slog.NewTextHandler(out, opts)
	}
}

// openOutput 解析输出目标
func openOutput(output string) (io.Writer, error) {
	switch {
	case output == "" || output == "stdout":
		return os.Stdout, nil
	case output == "stderr":
		return os.Stderr, nil
	case strings.HasPrefix(output, "file:"):
		path := strings.TrimPrefix(output, "file:")
		return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	default:
		return nil, fmt.Errorf("unknown log output: %s", output)
	}
}

// GetLogger 获取默认 logger
func GetLogger() *slog.Logger {
	if defaultLogger == nil {
		// 未初始化，使用默认配置
		Init(nil)
	}
	return defaultLogger
}

// With 创建带有额外字段的 logger
func With(args ...any) *slog.Logger {
	return GetLogger().With(args...)
}

// NewModuleLogger 为特定模块创建 logger
func NewModuleLogger(module, component string) *slog.Logger {
	return GetLogger().With(
		slog.String("module", module),
		slog.String("component", component),
	)
}

// IsDebugMode 检查是否为调试模式
func IsDebugMode() bool {
	return debugMode
}
