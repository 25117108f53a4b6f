package rpc

import (
	"context"

	apptask "github.com/taskd/backend/internal/application/task"
	"github.com/taskd/backend/internal/domain/task"
)

// TaskManager RPC 服务门面
// 所有失败都以 Error 负载返回，Go error 始终为 nil
type TaskManager struct {
	UnimplementedTaskManagerServer

	service *apptask.Service
}

// NewTaskManager 创建服务门面
func NewTaskManager(service *apptask.Service) *TaskManager {
	return &TaskManager{service: service}
}

// Create 创建任务
func (m *TaskManager) Create(ctx context.Context, req *CreateRequest) (*CreateResponse, error) {
	var def *task.Definition
	if d := req.GetTodo(); d != nil {
		def = &task.Definition{Name: d.GetName()}
	}

	created, err := m.service.Create(ctx, def)
	if err != nil {
		return &CreateResponse{Error: errorPayload(err)}, nil
	}
	return &CreateResponse{Todo: ToWire(created)}, nil
}

// Update 部分更新任务
func (m *TaskManager) Update(ctx context.Context, req *UpdateRequest) (*UpdateResponse, error) {
	name := task.None[string]()
	if req.GetName() != nil {
		name = task.Some(req.GetName().GetValue())
	}
	done := task.None[bool]()
	if req.GetDone() != nil {
		done = task.Some(req.GetDone().GetValue())
	}

	updated, err := m.service.Update(ctx, req.GetId(), name, done)
	if err != nil {
		return &UpdateResponse{Error: errorPayload(err)}, nil
	}
	return &UpdateResponse{Todo: ToWire(updated)}, nil
}

// Delete 删除任务
func (m *TaskManager) Delete(ctx context.Context, req *DeleteRequest) (*DeleteResponse, error) {
	if err := m.service.Delete(ctx, req.GetId()); err != nil {
		return &DeleteResponse{Error: errorPayload(err)}, nil
	}
	return &DeleteResponse{}, nil
}

// List 列出任务
func (m *TaskManager) List(ctx context.Context, req *ListRequest) (*ListResponse, error) {
	items, err := m.service.List(ctx, selectorFromWire(req.GetOption()))
	if err != nil {
		return &ListResponse{Error: errorPayload(err)}, nil
	}
	return &ListResponse{Todo: ToWireList(items)}, nil
}

var _ TaskManagerServer = (*TaskManager)(nil)
