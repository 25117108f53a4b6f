package storage

import (
	"strconv"
	"strings"
	"time"
)

// Dialect SQL 方言
type Dialect int

const (
	// Postgres 参考部署使用的存储
	Postgres Dialect = iota + 1
	// SQLite 单机部署
	SQLite
)

func (d Dialect) String() string {
	switch d {
	case Postgres:
		return "postgres"
	case SQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// Rebind 将 ? 占位符转换为方言的占位符
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// EncodeTime 时间参数编码
// SQLite 存储 Unix 纳秒整数，Postgres TIMESTAMP 精度为微秒，写入前截断
func (d Dialect) EncodeTime(t time.Time) any {
	if d == SQLite {
		return t.UnixNano()
	}
	return t.UTC().Truncate(time.Microsecond)
}

// schema 建表语句
func (d Dialect) schema() []string {
	if d == SQLite {
		return []string{
			`CREATE TABLE IF NOT EXISTS tasks (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				created_at INTEGER NOT NULL,
				done_at INTEGER,
				done INTEGER NOT NULL DEFAULT 0
			)`,
			`CREATE INDEX IF NOT EXISTS idx_tasks_done ON tasks(done)`,
		}
	}
	return []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id SERIAL PRIMARY KEY,
			name VARCHAR NOT NULL,
			created_at TIMESTAMP NOT NULL,
			done_at TIMESTAMP NULL,
			done BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_done ON tasks(done)`,
	}
}
