package config

import (
	"os"
	"path/filepath"
)

// EnvDataDir 数据目录环境变量名
const EnvDataDir = "TASKD_DATA_DIR"

const dataDirName = ".taskd"

// DataDir 数据根目录，sqlite 相对路径和 .env 都挂在它下面
type DataDir string

// resolveDataDir 取值顺序：TASKD_DATA_DIR、配置文件、~/.taskd
// 拿不到 home 目录时退回到当前目录下的 .taskd
func resolveDataDir(configured DataDir) DataDir {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return DataDir(dir)
	}
	if configured != "" {
		return configured
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return DataDir(dataDirName)
	}
	return DataDir(filepath.Join(home, dataDirName))
}

// Join 相对路径挂到数据目录下，绝对路径和空串原样返回
func (d DataDir) Join(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(string(d), path)
}

// EnvFile 数据目录下的 .env
func (d DataDir) EnvFile() string {
	return d.Join(".env")
}
