package log

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// 环境变量名
const (
	EnvLevel     = "LOG_LEVEL"
	EnvFormat    = "LOG_FORMAT"
	EnvOutput    = "LOG_OUTPUT"
	EnvAddSource = "LOG_ADD_SOURCE"
	EnvMode      = "ENV"
)

// Config 日志配置
type Config struct {
	Level     slog.Level
	Format    string // console, text, json
	Output    string // stdout, stderr, file:/path/to/log
	AddSource bool
}

// ConfigFromEnv 从环境变量读取日志配置
// ENV=development 只改变默认值，显式设置的 LOG_* 仍然生效
// 非法取值保留默认值，并在 error 中一并返回
func ConfigFromEnv() (*Config, error) {
	return configFromLookup(os.LookupEnv)
}

func configFromLookup(lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{
		Level:  slog.LevelInfo,
		Format: "text",
		Output: "stdout",
	}
	if mode, _ := lookup(EnvMode); strings.EqualFold(mode, "development") {
		cfg.Level = slog.LevelDebug
		cfg.Format = "console"
		cfg.AddSource = true
	}

	var errs []error
	if v := lookupNonEmpty(lookup, EnvLevel); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(v)); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvLevel, err))
		} else {
			cfg.Level = level
		}
	}
	if v := lookupNonEmpty(lookup, EnvFormat); v != "" {
		switch format := strings.ToLower(v); format {
		case "console", "text", "json":
			cfg.Format = format
		default:
			errs = append(errs, fmt.Errorf("%s: unknown format %q", EnvFormat, v))
		}
	}
	if v := lookupNonEmpty(lookup, EnvOutput); v != "" {
		cfg.Output = v
	}
	if v := lookupNonEmpty(lookup, EnvAddSource); v != "" {
		addSource, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvAddSource, err))
		} else {
			cfg.AddSource = addSource
		}
	}

	return cfg, errors.Join(errs...)
}

func lookupNonEmpty(lookup func(string) (string, bool), key string) string {
	v, _ := lookup(key)
	return strings.TrimSpace(v)
}
