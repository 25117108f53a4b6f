package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "github.com/lib/pq"
	"github.com/taskd/backend/internal/domain/task"
	"github.com/taskd/backend/internal/infrastructure/config"
	applog "github.com/taskd/backend/internal/infrastructure/log"
	"golang.org/x/time/rate"
	_ "modernc.org/sqlite"
)

// Source 由 DATABASE_URL 解析出的驱动信息
type Source struct {
	Dialect Dialect
	Driver  string // database/sql 驱动名
	DSN     string
	Display string // 用于错误信息，已隐藏密码
}

// IsMemoryURL 是否使用进程内存储
func IsMemoryURL(raw string) bool {
	return strings.HasPrefix(strings.TrimSpace(raw), "memory:")
}

// ParseSource 解析连接串
// postgres://、postgresql:// 使用 lib/pq；sqlite://path、sqlite:path 使用 modernc sqlite
// sqlite 相对路径挂到 dataDir 下
func ParseSource(raw string, dataDir config.DataDir) (*Source, error) {
	raw = strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		display := raw
		if u, err := url.Parse(raw); err == nil {
			display = u.Redacted()
		}
		return &Source{Dialect: Postgres, Driver: "postgres", DSN: raw, Display: display}, nil

	case strings.HasPrefix(raw, "sqlite:"):
		path := strings.TrimPrefix(strings.TrimPrefix(raw, "sqlite:"), "//")
		if path == "" {
			return nil, fmt.Errorf("sqlite path is empty")
		}
		path = dataDir.Join(path)
		dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
		return &Source{Dialect: SQLite, Driver: "sqlite", DSN: dsn, Display: path}, nil

	default:
		return nil, fmt.Errorf("unsupported database url scheme")
	}
}

// Connector 连接获取：每次调用独占一个连接，调用结束时释放
// 容量限制（连接池大小、获取速率）只在这里实现
type Connector struct {
	cfg     *config.DatabaseConfig
	limiter *rate.Limiter
	logger  *slog.Logger

	mu     sync.Mutex
	db     *sql.DB
	source *Source
}

// NewConnector 创建连接获取器，不会立即连接数据库
func NewConnector(cfg *config.DatabaseConfig) *Connector {
	c := &Connector{
		cfg:    cfg,
		logger: applog.NewModuleLogger("storage", "connector"),
	}
	if cfg.AcquireRPS > 0 {
		burst := cfg.AcquireBurst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.AcquireRPS), burst)
	}
	return c
}

// Acquire 获取一个连接。失败时返回 *task.ConnectionError，描述会原样返回给调用方
func (c *Connector) Acquire(ctx context.Context) (*sql.Conn, Dialect, error) {
	if strings.TrimSpace(c.cfg.URL) == "" {
		return nil, 0, &task.ConnectionError{Reason: "DATABASE_URL must be set"}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, 0, &task.ConnectionError{
				Reason: fmt.Sprintf("connection acquisition limited, %v", err),
				Err:    err,
			}
		}
	}

	db, source, err := c.pool()
	if err != nil {
		return nil, 0, err
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		c.logger.Warn("Failed to acquire database connection",
			"database", source.Display,
			"error", err,
		)
		return nil, 0, &task.ConnectionError{
			Reason: fmt.Sprintf("Error connecting to %s, %v", source.Display, err),
			Err:    err,
		}
	}

	return conn, source.Dialect, nil
}

// pool 首次使用时打开连接池
func (c *Connector) pool() (*sql.DB, *Source, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, c.source, nil
	}

	source, err := ParseSource(c.cfg.URL, c.cfg.DataDir)
	if err != nil {
		return nil, nil, &task.ConnectionError{
			Reason: fmt.Sprintf("Error connecting to %s, %v", redact(c.cfg.URL), err),
			Err:    err,
		}
	}

	if source.Dialect == SQLite {
		// 确保目录存在
		if err := os.MkdirAll(filepath.Dir(source.Display), 0755); err != nil {
			return nil, nil, &task.ConnectionError{
				Reason: fmt.Sprintf("Error connecting to %s, %v", source.Display, err),
				Err:    err,
			}
		}
	}

	db, err := sql.Open(source.Driver, source.DSN)
	if err != nil {
		return nil, nil, &task.ConnectionError{
			Reason: fmt.Sprintf("Error connecting to %s, %v", source.Display, err),
			Err:    err,
		}
	}

	db.SetMaxOpenConns(c.cfg.MaxOpenConns)
	db.SetMaxIdleConns(c.cfg.MaxIdleConns)
	db.SetConnMaxLifetime(c.cfg.ConnMaxLifetime)

	c.logger.Info("Database pool opened",
		"database", source.Display,
		"dialect", source.Dialect.String(),
	)

	c.db = db
	c.source = source
	return db, source, nil
}

// Close 关闭连接池
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	c.source = nil
	return err
}

// redact 隐藏连接串中的密码，无法解析时只保留 scheme
func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		if i := strings.Index(raw, "://"); i > 0 {
			return raw[:i] + "://..."
		}
		return "database"
	}
	return u.Redacted()
}
