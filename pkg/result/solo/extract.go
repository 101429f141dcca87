package solo

import (
	"github.com/ib-77/result/pkg/result"
)

// IfOk calls onOk with the value when input is Ok.
func IfOk[V, E any](input result.Result[V, E], onOk func(v V)) {
	if v, ok := input.Value(); ok {
		onOk(v)
	}
}

// IfFail calls onFail with the payload when input is Fail.
func IfFail[V, E any](input result.Result[V, E], onFail func(e E)) {
	if e, failed := input.Error(); failed {
		onFail(e)
	}
}

// Get returns the Ok value, or a *FailError built from the Fail payload.
func Get[V, E any](input result.Result[V, E]) (V, error) {
	return GetWith(input, NewFailError[E])
}

// GetWith is Get with a caller supplied error factory.
func GetWith[V, E any](input result.Result[V, E], newErr func(payload E) error) (V, error) {
	if e, failed := input.Error(); failed {
		var zero V
		return zero, newErr(e)
	}
	v, _ := input.Value()
	return v, nil
}

// GetOrThrow returns the Ok value and panics with a *FailError on Fail.
// Use it only where a failure must abort the caller.
func GetOrThrow[V, E any](input result.Result[V, E]) V {
	return GetOrThrowWith(input, NewFailError[E])
}

func GetOrThrowWith[V, E any](input result.Result[V, E], newErr func(payload E) error) V {
	v, err := GetWith(input, newErr)
	if err != nil {
		panic(err)
	}
	return v
}

// With returns Ok(ifTrue(value)) when test(value) holds, Fail(ifFalse(value))
// otherwise.
func With[T, V, E any](value T,
	test func(v T) bool,
	ifTrue func(v T) V,
	ifFalse func(v T) E) result.Result[V, E] {

	if test(value) {
		return result.Ok[E](ifTrue(value))
	}
	return result.Fail[V](ifFalse(value))
}
