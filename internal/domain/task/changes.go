package task

import "time"

// Changes 一次更新要写入的字段集合
// DoneAt 为 Some(nil) 时表示清空 done_at
type Changes struct {
	Name   Optional[string]
	Done   Optional[bool]
	DoneAt Optional[*time.Time]
}

// Empty 没有任何字段需要写入
func (c Changes) Empty() bool {
	return !c.Name.IsSet() && !c.Done.IsSet() && !c.DoneAt.IsSet()
}

// DeriveChanges 根据请求中提供的字段计算写入集合。
// done 与 done_at 的联动只在这里计算：
// done=true 写入当前时间，done=false 清空 done_at，未提供 done 时不触碰 done_at。
func DeriveChanges(name Optional[string], done Optional[bool], now time.Time) Changes {
	c := Changes{Name: name, Done: done}

	if d, ok := done.Get(); ok {
		if d {
			at := now
			c.DoneAt = Some(&at)
		} else {
			c.DoneAt = Some[*time.Time](nil)
		}
	}

	return c
}
