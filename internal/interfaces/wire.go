package interfaces

import (
	"github.com/google/wire"
	"github.com/taskd/backend/internal/interfaces/http"
	"github.com/taskd/backend/internal/interfaces/mcp"
	"github.com/taskd/backend/internal/interfaces/rpc"
)

// ProviderSet Interfaces 层总 ProviderSet
var ProviderSet = wire.NewSet(
	rpc.ProviderSet,
	http.ProviderSet,
	mcp.ProviderSet,
)
