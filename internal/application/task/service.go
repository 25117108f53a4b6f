package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/taskd/backend/internal/domain/task"
	applog "github.com/taskd/backend/internal/infrastructure/log"
)

// 失败消息前缀，格式为 "<前缀> <原因>"
const (
	createFailed = "Task creation failed."
	updateFailed = "update task failed."
	deleteFailed = "Task deletion failed."
	listFailed   = "Task listing failed."
)

// Service 任务请求处理（创建、更新、删除、列表）
// 不持有跨调用的状态，并发与冲突交给存储处理
type Service struct {
	gateway task.Gateway
	clock   func() time.Time
	logger  *slog.Logger
}

// Option 服务选项
type Option func(*Service)

// WithClock 替换服务端时钟
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

// NewService 创建任务服务
func NewService(gateway task.Gateway, opts ...Option) *Service {
	s := &Service{
		gateway: gateway,
		clock:   func() time.Time { return time.Now().UTC() },
		logger:  applog.NewModuleLogger("application", "task"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create 创建任务
// def 为 nil 时返回 ErrMissingDefinition，不访问存储
func (s *Service) Create(ctx context.Context, def *task.Definition) (*task.Task, error) {
	if def == nil {
		return nil, task.ErrMissingDefinition
	}

	created, err := s.gateway.Insert(ctx, task.NewTask{
		Name:      def.Name,
		CreatedAt: s.clock(),
	})
	if err != nil {
		s.log(ctx).Warn("Create task failed", "error", err)
		return nil, operationFailed(createFailed, err)
	}

	s.log(ctx).Debug("Task created", "task_id", created.ID)
	return created, nil
}

// Update 部分更新：只写入已提供的字段，done 的变化同时推导 done_at
func (s *Service) Update(ctx context.Context, id int64, name task.Optional[string], done task.Optional[bool]) (*task.Task, error) {
	changes := task.DeriveChanges(name, done, s.clock())

	updated, err := s.gateway.Update(ctx, id, changes)
	if err != nil {
		s.log(ctx).Warn("Update task failed", "task_id", id, "error", err)
		return nil, operationFailed(updateFailed, err)
	}

	s.log(ctx).Debug("Task updated",
		"task_id", updated.ID,
		"name_set", changes.Name.IsSet(),
		"done_set", changes.Done.IsSet(),
	)
	return updated, nil
}

// Delete 删除任务；id 不存在视为成功
func (s *Service) Delete(ctx context.Context, id int64) error {
	n, err := s.gateway.Delete(ctx, id)
	if err != nil {
		s.log(ctx).Warn("Delete task failed", "task_id", id, "error", err)
		return operationFailed(deleteFailed, err)
	}

	s.log(ctx).Debug("Task deleted", "task_id", id, "rows", n)
	return nil
}

// List 按过滤模式列出任务
// 失败时只返回错误，不返回任何任务
func (s *Service) List(ctx context.Context, selector task.Selector) ([]*task.Task, error) {
	if !selector.Valid() {
		return nil, operationFailed(listFailed, fmt.Errorf("%w: %d", task.ErrInvalidSelector, int(selector)))
	}

	items, err := s.gateway.Find(ctx, selector)
	if err != nil {
		s.log(ctx).Warn("List tasks failed", "selector", selector.String(), "error", err)
		return nil, operationFailed(listFailed, err)
	}
	return items, nil
}

// Count 按过滤模式计数
func (s *Service) Count(ctx context.Context, selector task.Selector) (int64, error) {
	if !selector.Valid() {
		return 0, operationFailed(listFailed, fmt.Errorf("%w: %d", task.ErrInvalidSelector, int(selector)))
	}

	n, err := s.gateway.Count(ctx, selector)
	if err != nil {
		s.log(ctx).Warn("Count tasks failed", "selector", selector.String(), "error", err)
		return 0, operationFailed(listFailed, err)
	}
	return n, nil
}

func (s *Service) log(ctx context.Context) *slog.Logger {
	return applog.FromContext(ctx, s.logger)
}

// operationFailed 连接错误原样返回，其余错误加上操作前缀
func operationFailed(prefix string, err error) error {
	var connErr *task.ConnectionError
	if errors.As(err, &connErr) {
		return err
	}
	return fmt.Errorf("%s %w", prefix, err)
}
