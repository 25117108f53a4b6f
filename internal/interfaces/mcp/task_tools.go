package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taskd/backend/internal/domain/task"
)

// TaskOutput 任务
type TaskOutput struct {
	ID        int64  `json:"id" jsonschema:"任务 ID"`
	Name      string `json:"name" jsonschema:"任务名称"`
	Done      bool   `json:"done" jsonschema:"是否完成"`
	CreatedAt string `json:"created_at" jsonschema:"创建时间 RFC3339"`
	DoneAt    string `json:"done_at,omitempty" jsonschema:"完成时间 RFC3339，未完成时为空"`
}

// CreateTaskInput 创建任务工具输入
type CreateTaskInput struct {
	Name string `json:"name" jsonschema:"任务名称"`
}

// CreateTaskOutput 创建任务工具输出
type CreateTaskOutput struct {
	Task TaskOutput `json:"task" jsonschema:"创建的任务"`
}

// UpdateTaskInput 更新任务工具输入
type UpdateTaskInput struct {
	ID   int64   `json:"id" jsonschema:"任务 ID"`
	Name *string `json:"name,omitempty" jsonschema:"新名称，可选"`
	Done *bool   `json:"done,omitempty" jsonschema:"是否完成，可选"`
}

// UpdateTaskOutput 更新任务工具输出
type UpdateTaskOutput struct {
	Task TaskOutput `json:"task" jsonschema:"更新后的任务"`
}

// DeleteTaskInput 删除任务工具输入
type DeleteTaskInput struct {
	ID int64 `json:"id" jsonschema:"任务 ID"`
}

// DeleteTaskOutput 删除任务工具输出
type DeleteTaskOutput struct {
	Deleted bool `json:"deleted" jsonschema:"是否执行成功"`
}

// ListTasksInput 列表工具输入
type ListTasksInput struct {
	Option string `json:"option,omitempty" jsonschema:"过滤模式 all|done|not_done，默认 all"`
}

// ListTasksOutput 列表工具输出
type ListTasksOutput struct {
	Tasks []TaskOutput `json:"tasks" jsonschema:"任务列表"`
	Total int          `json:"total" jsonschema:"任务数量"`
}

func toTaskOutput(t *task.Task) TaskOutput {
	out := TaskOutput{
		ID:        t.ID,
		Name:      t.Name,
		Done:      t.Done,
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if t.DoneAt != nil {
		out.DoneAt = t.DoneAt.UTC().Format(time.RFC3339Nano)
	}
	return out
}

// createTaskTool 创建任务
func (s *MCPServer) createTaskTool(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input CreateTaskInput,
) (*mcp.CallToolResult, CreateTaskOutput, error) {
	created, err := s.taskService.Create(ctx, &task.Definition{Name: input.Name})
	if err != nil {
		return nil, CreateTaskOutput{}, err
	}
	return nil, CreateTaskOutput{Task: toTaskOutput(created)}, nil
}

// updateTaskTool 部分更新任务
func (s *MCPServer) updateTaskTool(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input UpdateTaskInput,
) (*mcp.CallToolResult, UpdateTaskOutput, error) {
	updated, err := s.taskService.Update(ctx, input.ID, task.FromPtr(input.Name), task.FromPtr(input.Done))
	if err != nil {
		return nil, UpdateTaskOutput{}, err
	}
	return nil, UpdateTaskOutput{Task: toTaskOutput(updated)}, nil
}

// deleteTaskTool 删除任务
func (s *MCPServer) deleteTaskTool(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input DeleteTaskInput,
) (*mcp.CallToolResult, DeleteTaskOutput, error) {
	if err := s.taskService.Delete(ctx, input.ID); err != nil {
		return nil, DeleteTaskOutput{}, err
	}
	return nil, DeleteTaskOutput{Deleted: true}, nil
}

// listTasksTool 列出任务
func (s *MCPServer) listTasksTool(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input ListTasksInput,
) (*mcp.CallToolResult, ListTasksOutput, error) {
	selector, err := task.ParseSelector(input.Option)
	if err != nil {
		return nil, ListTasksOutput{}, err
	}

	items, err := s.taskService.List(ctx, selector)
	if err != nil {
		return nil, ListTasksOutput{}, err
	}

	output := ListTasksOutput{
		Tasks: make([]TaskOutput, 0, len(items)),
		Total: len(items),
	}
	for _, item := range items {
		output.Tasks = append(output.Tasks, toTaskOutput(item))
	}
	return nil, output, nil
}
