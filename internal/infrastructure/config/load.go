package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvConfigFile 可选的 YAML 配置文件路径
const EnvConfigFile = "TASKD_CONFIG"

// Load 按优先级加载配置：默认值 < YAML 文件 < .env < 进程环境变量
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := cfg.loadYAML(path); err != nil {
			return nil, err
		}
	}

	cfg.Database.DataDir = resolveDataDir(cfg.Database.DataDir)

	// .env 只补充未设置的环境变量，已存在的进程环境变量优先
	if err := LoadDotEnv(".env", cfg.Database.DataDir.EnvFile()); err != nil {
		return nil, err
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadYAML 读取 YAML 配置文件并覆盖当前值
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// LoadDotEnv 依次加载存在的 .env 文件，不存在的文件直接跳过
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to stat env file %s: %w", path, err)
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}
	return nil
}
