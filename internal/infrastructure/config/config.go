package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// 环境变量名
const (
	EnvDatabaseURL     = "DATABASE_URL"
	EnvGRPCPort        = "GRPC_PORT"
	EnvHTTPPort        = "HTTP_PORT"
	EnvMaxOpenConns    = "DB_MAX_OPEN_CONNS"
	EnvMaxIdleConns    = "DB_MAX_IDLE_CONNS"
	EnvConnMaxLifetime = "DB_CONN_MAX_LIFETIME"
	EnvAcquireRPS      = "DB_ACQUIRE_RPS"
	EnvAcquireBurst    = "DB_ACQUIRE_BURST"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	GRPCPort string `yaml:"grpc_port"` // TaskManager RPC 端口
	HTTPPort string `yaml:"http_port"` // REST / Swagger / MCP 端口
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	// URL 连接串：postgres://...、sqlite://path、memory://
	// 为空时每次调用都会返回 "DATABASE_URL must be set"
	URL string `yaml:"url"`

	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`

	// AcquireRPS 获取连接的速率上限，0 表示不限制
	AcquireRPS   float64 `yaml:"acquire_rps"`
	AcquireBurst int     `yaml:"acquire_burst"`

	DataDir DataDir `yaml:"data_dir"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCPort: ":8080",
			HTTPPort: ":8081",
		},
		Database: DatabaseConfig{
			URL:             "",
			MaxOpenConns:    16,
			MaxIdleConns:    4,
			ConnMaxLifetime: 30 * time.Minute,
			AcquireRPS:      0,
			AcquireBurst:    1,
		},
	}
}

// applyEnv 用环境变量覆盖已设置的字段，未设置或非法的值保持原样
func (c *Config) applyEnv() {
	c.Database.URL = getEnvWithDefault(EnvDatabaseURL, c.Database.URL)
	c.Server.GRPCPort = getEnvWithDefault(EnvGRPCPort, c.Server.GRPCPort)
	c.Server.HTTPPort = getEnvWithDefault(EnvHTTPPort, c.Server.HTTPPort)
	c.Database.MaxOpenConns = getEnvInt(EnvMaxOpenConns, c.Database.MaxOpenConns)
	c.Database.MaxIdleConns = getEnvInt(EnvMaxIdleConns, c.Database.MaxIdleConns)
	c.Database.ConnMaxLifetime = getEnvDuration(EnvConnMaxLifetime, c.Database.ConnMaxLifetime)
	c.Database.AcquireRPS = getEnvFloat(EnvAcquireRPS, c.Database.AcquireRPS)
	c.Database.AcquireBurst = getEnvInt(EnvAcquireBurst, c.Database.AcquireBurst)
}

// Validate 检查配置是否可用于启动
// DATABASE_URL 缺失不在这里报错，由连接获取时返回
func (c *Config) Validate() error {
	if c.Server.GRPCPort == "" {
		return fmt.Errorf("grpc port must not be empty")
	}
	if c.Server.HTTPPort == "" {
		return fmt.Errorf("http port must not be empty")
	}
	if c.Database.AcquireRPS < 0 {
		return fmt.Errorf("acquire rps must not be negative: %v", c.Database.AcquireRPS)
	}
	return nil
}

// NewDatabaseConfig 创建数据库配置
func NewDatabaseConfig(cfg *Config) *DatabaseConfig {
	return &cfg.Database
}

// NewServerConfig 创建服务器配置
func NewServerConfig(cfg *Config) *ServerConfig {
	return &cfg.Server
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
