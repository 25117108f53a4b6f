package interfaces

import (
	"github.com/taskd/backend/internal/interfaces/http"
	"github.com/taskd/backend/internal/interfaces/mcp"
	"github.com/taskd/backend/internal/interfaces/rpc"
)

// HTTPServer HTTP 服务器类型别名
type HTTPServer = http.HTTPServer

// MCPServer MCP 服务器类型别名
type MCPServer = mcp.MCPServer

// RPCServer gRPC 服务器类型别名
type RPCServer = rpc.Server
