package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/taskd/backend/internal/domain/task"
)

// MemoryGateway 进程内网关，用于 DATABASE_URL=memory:// 与测试
type MemoryGateway struct {
	mu     sync.Mutex
	tasks  map[int64]task.Task
	nextID int64
}

// NewMemoryGateway 创建内存网关
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{tasks: make(map[int64]task.Task)}
}

// Insert 插入新任务
func (g *MemoryGateway) Insert(ctx context.Context, t task.NewTask) (*task.Task, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextID++
	item := task.Task{ID: g.nextID, Name: t.Name, CreatedAt: t.CreatedAt.UTC()}
	g.tasks[item.ID] = item
	return cloneTask(item), nil
}

// Update 条件更新
func (g *MemoryGateway) Update(ctx context.Context, id int64, c task.Changes) (*task.Task, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	item, ok := g.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task %d: %w", id, task.ErrNotFound)
	}
	item.Apply(c)
	if item.DoneAt != nil {
		at := item.DoneAt.UTC()
		item.DoneAt = &at
	}
	g.tasks[id] = item
	return cloneTask(item), nil
}

// Delete 删除，不存在时返回 0
func (g *MemoryGateway) Delete(ctx context.Context, id int64) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.tasks[id]; !ok {
		return 0, nil
	}
	delete(g.tasks, id)
	return 1, nil
}

// Find 按 id 升序返回
func (g *MemoryGateway) Find(ctx context.Context, s task.Selector) ([]*task.Task, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	items := make([]*task.Task, 0, len(g.tasks))
	for _, item := range g.tasks {
		if s.Matches(&item) {
			items = append(items, cloneTask(item))
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// Count 计数
func (g *MemoryGateway) Count(ctx context.Context, s task.Selector) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var n int64
	for _, item := range g.tasks {
		if s.Matches(&item) {
			n++
		}
	}
	return n, nil
}

func cloneTask(item task.Task) *task.Task {
	if item.DoneAt != nil {
		at := *item.DoneAt
		item.DoneAt = &at
	}
	return &item
}

var _ task.Gateway = (*MemoryGateway)(nil)
