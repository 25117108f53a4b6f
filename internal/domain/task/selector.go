package task

import (
	"fmt"
	"strings"
)

// Selector 列表过滤模式
type Selector int

const (
	// All 全部任务
	All Selector = iota
	// Done 已完成
	Done
	// NotDone 未完成
	NotDone
)

// Valid 是否为可识别的过滤模式
func (s Selector) Valid() bool {
	return s == All || s == Done || s == NotDone
}

// Matches 任务是否满足过滤条件
func (s Selector) Matches(t *Task) bool {
	switch s {
	case Done:
		return t.Done
	case NotDone:
		return !t.Done
	default:
		return true
	}
}

func (s Selector) String() string {
	switch s {
	case All:
		return "all"
	case Done:
		return "done"
	case NotDone:
		return "not_done"
	default:
		return fmt.Sprintf("Selector(%d)", int(s))
	}
}

// ParseSelector 解析查询参数中的过滤模式，空字符串视为 all
func ParseSelector(s string) (Selector, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return All, nil
	case "done":
		return Done, nil
	case "not_done", "notdone", "not-done":
		return NotDone, nil
	default:
		return All, fmt.Errorf("%w: %q", ErrInvalidSelector, s)
	}
}
