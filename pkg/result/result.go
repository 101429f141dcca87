package result

import "fmt"

// Tag identifies which variant a Result holds.
type Tag uint8

const (
	TagOk Tag = iota
	TagFail
)

func (t Tag) String() string {
	switch t {
	case TagOk:
		return "ok"
	case TagFail:
		return "fail"
	default:
		return fmt.Sprintf("tag(%d)", uint8(t))
	}
}

// None is the unit payload for results that carry nothing.
type None struct{}

// Result holds either a success value of type V or a failure payload of type E.
// Only the field matching the tag is set, the other one stays zero.
type Result[V, E any] struct {
	tag   Tag
	value V
	err   E
}

// Ok builds a successful Result. E comes first so callers can name the
// failure type and let V be inferred: Ok[string](5).
func Ok[E, V any](value V) Result[V, E] {
	return Result[V, E]{
		tag:   TagOk,
		value: value,
	}
}

// Fail builds a failed Result. V comes first so callers can name the
// success type and let E be inferred: Fail[int]("bar").
func Fail[V, E any](err E) Result[V, E] {
	return Result[V, E]{
		tag: TagFail,
		err: err,
	}
}

// FailFrom re-tags a failed Result for another success type.
// The payload is kept as is.
func FailFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		tag: TagFail,
		err: from.err,
	}
}

func (r Result[V, E]) Tag() Tag {
	return r.tag
}

// Payload returns the value for Ok and the failure payload for Fail.
func (r Result[V, E]) Payload() any {
	if r.tag == TagOk {
		return r.value
	}
	return r.err
}

// Value returns the success value and whether the Result is Ok.
func (r Result[V, E]) Value() (V, bool) {
	return r.value, r.tag == TagOk
}

// Error returns the failure payload and whether the Result is Fail.
func (r Result[V, E]) Error() (E, bool) {
	return r.err, r.tag == TagFail
}

func (r Result[V, E]) IsOk() bool {
	return r.tag == TagOk
}

func (r Result[V, E]) IsFail() bool {
	return r.tag == TagFail
}

func (r Result[V, E]) String() string {
	return ToStr(r)
}

// Match consumes r with exactly one of the two handlers.
func Match[V, E, T any](r Result[V, E], onOk func(V) T, onFail func(E) T) T {
	if r.tag == TagOk {
		return onOk(r.value)
	}
	return onFail(r.err)
}

func Equal[V, E comparable](a, b Result[V, E]) bool {
	return a == b
}
