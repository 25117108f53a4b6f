package task

import "time"

// Task 任务实体，对应 tasks 表中的一行
type Task struct {
	ID        int64      // 由存储分配，创建后不可变
	Name      string     // 任务名称
	CreatedAt time.Time  // 创建时间（服务端时间）
	Done      bool       // 是否完成
	DoneAt    *time.Time // 完成时间，仅在 Done 为 true 时存在
}

// Definition 创建任务时客户端提交的定义
type Definition struct {
	Name string
}

// NewTask 插入存储的新任务
type NewTask struct {
	Name      string
	CreatedAt time.Time
}

// Apply 将部分更新应用到任务上，只修改已提供的字段
func (t *Task) Apply(c Changes) {
	if name, ok := c.Name.Get(); ok {
		t.Name = name
	}
	if done, ok := c.Done.Get(); ok {
		t.Done = done
	}
	if doneAt, ok := c.DoneAt.Get(); ok {
		if doneAt == nil {
			t.DoneAt = nil
		} else {
			at := *doneAt
			t.DoneAt = &at
		}
	}
}

// Consistent 检查 done 与 done_at 是否一致
func (t *Task) Consistent() bool {
	return t.Done == (t.DoneAt != nil)
}
