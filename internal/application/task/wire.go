package task

import (
	"github.com/google/wire"
	"github.com/taskd/backend/internal/domain/task"
)

// ProviderSet 任务应用服务 ProviderSet
var ProviderSet = wire.NewSet(
	ProvideService,
)

// ProvideService wire 不支持变参选项，使用默认时钟
func ProvideService(gateway task.Gateway) *Service {
	return NewService(gateway)
}
