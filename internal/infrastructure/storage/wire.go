package storage

import (
	"github.com/google/wire"
	"github.com/taskd/backend/internal/domain/task"
	"github.com/taskd/backend/internal/infrastructure/config"
)

// ProviderSet Storage 基础设施层 ProviderSet
var ProviderSet = wire.NewSet(
	ProvideGateway, // 提供任务持久化网关
)

// ProvideGateway 根据 DATABASE_URL 选择网关
// memory:// 使用进程内存储，其余使用 SQL 网关（连接在每次调用时获取）
func ProvideGateway(cfg *config.DatabaseConfig) (task.Gateway, func(), error) {
	if IsMemoryURL(cfg.URL) {
		return NewMemoryGateway(), func() {}, nil
	}

	connector := NewConnector(cfg)
	gateway := NewTaskGateway(connector)
	cleanup := func() {
		_ = connector.Close()
	}
	return gateway, cleanup, nil
}
