package infrastructure

import (
	"github.com/google/wire"
	"github.com/taskd/backend/internal/infrastructure/config"
	"github.com/taskd/backend/internal/infrastructure/storage"
)

// ProviderSet Infrastructure 层总 ProviderSet
var ProviderSet = wire.NewSet(
	config.ProviderSet,
	storage.ProviderSet,
)
