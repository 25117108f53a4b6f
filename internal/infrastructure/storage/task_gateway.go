package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/taskd/backend/internal/domain/task"
	applog "github.com/taskd/backend/internal/infrastructure/log"
)

const taskColumns = "id, name, created_at, done_at, done"

// TaskGateway tasks 表的 SQL 实现
// 每个方法独立获取连接，并在所有返回路径上释放
type TaskGateway struct {
	connector *Connector
	logger    *slog.Logger

	schemaMu    sync.Mutex
	schemaReady bool
}

// NewTaskGateway 创建 SQL 网关
func NewTaskGateway(connector *Connector) *TaskGateway {
	return &TaskGateway{
		connector: connector,
		logger:    applog.NewModuleLogger("storage", "task_gateway"),
	}
}

// EnsureSchema 创建 tasks 表（如不存在）
func (g *TaskGateway) EnsureSchema(ctx context.Context) error {
	conn, dialect, err := g.connector.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return g.ensureSchema(ctx, conn, dialect)
}

func (g *TaskGateway) ensureSchema(ctx context.Context, conn *sql.Conn, dialect Dialect) error {
	g.schemaMu.Lock()
	defer g.schemaMu.Unlock()

	if g.schemaReady {
		return nil
	}

	for _, stmt := range dialect.schema() {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create tasks table: %w", err)
		}
	}

	g.schemaReady = true
	g.logger.Debug("Tasks table ready", "dialect", dialect.String())
	return nil
}

// acquire 获取连接并确保表存在
func (g *TaskGateway) acquire(ctx context.Context) (*sql.Conn, Dialect, error) {
	conn, dialect, err := g.connector.Acquire(ctx)
	if err != nil {
		return nil, 0, err
	}
	if err := g.ensureSchema(ctx, conn, dialect); err != nil {
		conn.Close()
		return nil, 0, err
	}
	return conn, dialect, nil
}

// Insert 插入新任务
func (g *TaskGateway) Insert(ctx context.Context, t task.NewTask) (*task.Task, error) {
	conn, dialect, err := g.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	query := dialect.Rebind(`INSERT INTO tasks (name, created_at) VALUES (?, ?) RETURNING ` + taskColumns)

	item, err := scanTask(conn.QueryRowContext(ctx, query, t.Name, dialect.EncodeTime(t.CreatedAt)))
	if err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}
	return item, nil
}

// Update 条件更新，只写入已提供的字段
// 没有字段时执行 SET id = id，仍然返回当前行
func (g *TaskGateway) Update(ctx context.Context, id int64, c task.Changes) (*task.Task, error) {
	conn, dialect, err := g.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var sets []string
	var args []any

	if name, ok := c.Name.Get(); ok {
		sets = append(sets, "name = ?")
		args = append(args, name)
	}
	if done, ok := c.Done.Get(); ok {
		sets = append(sets, "done = ?")
		args = append(args, done)
	}
	if doneAt, ok := c.DoneAt.Get(); ok {
		sets = append(sets, "done_at = ?")
		if doneAt == nil {
			args = append(args, nil)
		} else {
			args = append(args, dialect.EncodeTime(*doneAt))
		}
	}
	if c.Empty() {
		// 无字段可写时仍执行 UPDATE，由 RETURNING 区分存在与否
		sets = append(sets, "id = id")
	}
	args = append(args, id)

	query := dialect.Rebind(`UPDATE tasks SET ` + strings.Join(sets, ", ") + ` WHERE id = ? RETURNING ` + taskColumns)

	item, err := scanTask(conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %d: %w", id, task.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update task %d: %w", id, err)
	}
	return item, nil
}

// Delete 按 id 删除，返回受影响的行数
func (g *TaskGateway) Delete(ctx context.Context, id int64) (int64, error) {
	conn, dialect, err := g.acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	result, err := conn.ExecContext(ctx, dialect.Rebind(`DELETE FROM tasks WHERE id = ?`), id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return result.RowsAffected()
}

// Find 按过滤模式查询
func (g *TaskGateway) Find(ctx context.Context, s task.Selector) ([]*task.Task, error) {
	conn, dialect, err := g.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	where, args := selectorClause(s)
	rows, err := conn.QueryContext(ctx, dialect.Rebind(`SELECT `+taskColumns+` FROM tasks`+where), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	items := make([]*task.Task, 0)
	for rows.Next() {
		item, err := scanTask(rows)
		if err != nil {
			// 任何一行失败都让整个查询失败，不返回部分结果
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return items, nil
}

// Count 按过滤模式计数
func (g *TaskGateway) Count(ctx context.Context, s task.Selector) (int64, error) {
	conn, dialect, err := g.acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	where, args := selectorClause(s)
	var count int64
	if err := conn.QueryRowContext(ctx, dialect.Rebind(`SELECT COUNT(*) FROM tasks`+where), args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return count, nil
}

// selectorClause 过滤模式对应的 WHERE 子句
func selectorClause(s task.Selector) (string, []any) {
	switch s {
	case task.Done:
		return ` WHERE done = ?`, []any{true}
	case task.NotDone:
		return ` WHERE done = ?`, []any{false}
	default:
		return "", nil
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*task.Task, error) {
	var item task.Task
	var createdAt, doneAt nullTime

	if err := row.Scan(&item.ID, &item.Name, &createdAt, &doneAt, &item.Done); err != nil {
		return nil, err
	}
	if !createdAt.Valid {
		return nil, fmt.Errorf("task %d has no created_at", item.ID)
	}

	item.CreatedAt = createdAt.Time
	if doneAt.Valid {
		t := doneAt.Time
		item.DoneAt = &t
	}
	return &item, nil
}

// nullTime 兼容两种方言的时间列：Postgres 返回 time.Time，SQLite 返回 Unix 纳秒
type nullTime struct {
	Time  time.Time
	Valid bool
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
}

// Scan 实现 sql.Scanner
func (n *nullTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		n.Time, n.Valid = time.Time{}, false
		return nil
	case time.Time:
		n.Time, n.Valid = v.UTC(), true
		return nil
	case int64:
		n.Time, n.Valid = time.Unix(0, v).UTC(), true
		return nil
	case []byte:
		return n.parse(string(v))
	case string:
		return n.parse(v)
	default:
		return fmt.Errorf("unsupported time value %T", src)
	}
}

func (n *nullTime) parse(s string) error {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			n.Time, n.Valid = t.UTC(), true
			return nil
		}
	}
	return fmt.Errorf("cannot parse time value %q", s)
}

// 编译时检查接口实现
var _ task.Gateway = (*TaskGateway)(nil)
