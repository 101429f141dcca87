package solo

import (
	"github.com/ib-77/result/pkg/result"
)

// Resultify calls fn and wraps whatever it returns in Ok.
func Resultify[E, V any](fn func() V) result.Result[V, E] {
	return result.Ok[E](fn())
}

func ResultifyArgs[E, A, V any](fn func(args ...A) V, args ...A) result.Result[V, E] {
	return Resultify[E](func() V { return fn(args...) })
}

// NotNull calls fn and fails with no payload when the returned value is nil.
func NotNull[V any](fn func() V) result.Result[V, result.None] {
	v := fn()
	if result.IsNil(v) {
		return result.Fail[V](result.None{})
	}
	return result.Ok[result.None](v)
}

func NotNullArgs[A, V any](fn func(args ...A) V, args ...A) result.Result[V, result.None] {
	return NotNull(func() V { return fn(args...) })
}

// TryCatch calls fn and returns Ok with its value. A returned error or a
// panic becomes the Fail payload.
func TryCatch[V any](fn func() (V, error)) result.Result[V, error] {
	return TryCatchWith(fn, Identity[error])
}

// TryCatchWith is TryCatch with the caught error passed through transform
// before it becomes the Fail payload. transform must not be nil.
func TryCatchWith[V, E any](fn func() (V, error), transform func(err error) E) result.Result[V, E] {
	v, err := guard(fn)
	if err != nil {
		return result.Fail[V](transform(err))
	}
	return result.Ok[E](v)
}

func TryCatchArgs[A, V any](fn func(args ...A) (V, error), args ...A) result.Result[V, error] {
	return TryCatch(func() (V, error) { return fn(args...) })
}

func TryCatchArgsWith[A, V, E any](fn func(args ...A) (V, error), transform func(err error) E,
	args ...A) result.Result[V, E] {
	return TryCatchWith(func() (V, error) { return fn(args...) }, transform)
}

func guard[V any](fn func() (V, error)) (v V, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero V
			v, err = zero, panicToError(rec)
		}
	}()
	return fn()
}

func panicToError(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return &PanicError{Value: rec}
}
