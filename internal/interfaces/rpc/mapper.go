package rpc

import (
	"github.com/taskd/backend/internal/domain/task"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// ToWire 领域任务转换为线上消息
// done_at 仅在存在时设置，nil 与纪元时间可区分
func ToWire(t *task.Task) *Task {
	if t == nil {
		return nil
	}
	w := &Task{
		Id:        t.ID,
		Name:      t.Name,
		CreatedAt: timestamppb.New(t.CreatedAt),
		Done:      t.Done,
	}
	if t.DoneAt != nil {
		w.DoneAt = timestamppb.New(*t.DoneAt)
	}
	return w
}

// FromWire ToWire 的逆转换，时间统一为 UTC
func FromWire(w *Task) *task.Task {
	if w == nil {
		return nil
	}
	t := &task.Task{
		ID:   w.Id,
		Name: w.Name,
		Done: w.Done,
	}
	if w.CreatedAt != nil {
		t.CreatedAt = w.CreatedAt.AsTime()
	}
	if w.DoneAt != nil {
		at := w.DoneAt.AsTime()
		t.DoneAt = &at
	}
	return t
}

// ToWireList 批量转换，保持顺序
func ToWireList(items []*task.Task) []*Task {
	out := make([]*Task, 0, len(items))
	for _, item := range items {
		out = append(out, ToWire(item))
	}
	return out
}

// ErrorPayload 构造失败描述
func ErrorPayload(message string) *Error {
	return &Error{Message: message}
}

func errorPayload(err error) *Error {
	return ErrorPayload(err.Error())
}

// selectorFromWire 数值直接映射，非法取值交给应用层拒绝
func selectorFromWire(kind ListOptionKind) task.Selector {
	return task.Selector(kind)
}
