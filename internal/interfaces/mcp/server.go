package mcp

import (
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	apptask "github.com/taskd/backend/internal/application/task"
	"github.com/taskd/backend/internal/infrastructure/log"
)

// MCPServer MCP 服务器
type MCPServer struct {
	server      *mcp.Server
	handler     http.Handler
	taskService *apptask.Service
	logger      *slog.Logger
}

// NewServer 创建 MCP 服务器
func NewServer(taskService *apptask.Service) *MCPServer {
	// 创建 MCP 服务器实例
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "taskd",
			Version: "0.1.0",
		},
		nil, // 使用默认能力
	)

	mcpServer := &MCPServer{
		server:      server,
		taskService: taskService,
		logger:      log.NewModuleLogger("mcp", "server"),
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_task",
		Description: "Create a task. Parameters: name (string, required) - task name, may be empty. Returns: the created task with its id and created_at.",
	}, mcpServer.createTaskTool)

	mcp.AddTool(server, &mcp.Tool{
		Name: "update_task",
		Description: `Partially update a task. Only supplied fields are written.
Parameters:
- id (int, required): Task id
- name (string, optional): New name
- done (bool, optional): Mark done (sets done_at to now) or not done (clears done_at)

Returns: the updated task.`,
	}, mcpServer.updateTaskTool)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_task",
		Description: "Delete a task by id. Deleting a missing id succeeds. Parameters: id (int, required). Returns: deleted flag.",
	}, mcpServer.deleteTaskTool)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_tasks",
		Description: "List tasks. Parameters: option (string, optional) - all|done|not_done, defaults to all. Returns: tasks and total count.",
	}, mcpServer.listTasksTool)

	// 创建 SSE Handler
	handler := mcp.NewSSEHandler(
		func(r *http.Request) *mcp.Server {
			// 每个请求返回同一个服务器实例
			return server
		},
		nil, // SSEOptions，使用默认值
	)

	mcpServer.handler = handler
	return mcpServer
}

// GetHandler 获取 HTTP Handler（用于集成到 HTTP 服务器）
func (s *MCPServer) GetHandler() http.Handler {
	return s.handler
}

// Start MCP 服务器通过 HTTP Handler 提供服务，由 HTTP 服务器统一管理
func (s *MCPServer) Start() error {
	s.logger.Info("MCP server ready (HTTP/SSE mode)")
	return nil
}

// Stop 停止服务器
func (s *MCPServer) Stop() error {
	return nil
}
