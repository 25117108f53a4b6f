package application

import (
	"github.com/google/wire"
	"github.com/taskd/backend/internal/application/task"
)

// ProviderSet Application 层总 ProviderSet
var ProviderSet = wire.NewSet(
	task.ProviderSet,
)
