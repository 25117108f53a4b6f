package task

import "context"

// Gateway 单表持久化能力
// 每次调用各自获取并释放存储连接
type Gateway interface {
	// Insert 插入新任务并返回存储分配 id 后的完整记录
	Insert(ctx context.Context, t NewTask) (*Task, error)

	// Update 按 id 条件更新，只写入已提供的字段，返回更新后的记录
	// 没有匹配的行时返回 ErrNotFound
	Update(ctx context.Context, id int64, c Changes) (*Task, error)

	// Delete 按 id 删除，返回受影响的行数；0 行不是错误
	Delete(ctx context.Context, id int64) (int64, error)

	// Find 按过滤模式查询，顺序由存储决定
	Find(ctx context.Context, s Selector) ([]*Task, error)

	// Count 按过滤模式计数
	Count(ctx context.Context, s Selector) (int64, error)
}
