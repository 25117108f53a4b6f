package task

// Optional 三态值：未提供 / 已提供（携带值）
// 用于区分 "字段未传" 和 "字段传了零值"
type Optional[T any] struct {
	value T
	set   bool
}

// Some 已提供的值
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None 未提供
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr nil 视为未提供
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get 返回值以及是否已提供
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet 是否已提供
func (o Optional[T]) IsSet() bool {
	return o.set
}
