package rpc

import "github.com/google/wire"

// ProviderSet RPC 接口层 ProviderSet
var ProviderSet = wire.NewSet(
	NewTaskManager,
	NewServer,
)
