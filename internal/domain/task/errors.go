package task

import "errors"

var (
	// ErrMissingDefinition 创建请求中没有任务定义
	ErrMissingDefinition = errors.New("missing task definition")

	// ErrNotFound 没有匹配 id 的记录
	ErrNotFound = errors.New("record not found")

	// ErrInvalidSelector 不可识别的列表过滤模式
	ErrInvalidSelector = errors.New("invalid list option")
)

// ConnectionError 无法获取存储连接（缺少配置、连接被拒绝等）
// Error() 返回的描述会原样返回给调用方
type ConnectionError struct {
	Reason string
	Err    error
}

func (e *ConnectionError) Error() string {
	return e.Reason
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
