package solo

import (
	"slices"

	"github.com/ib-77/result/pkg/result"
)

// Identity returns v unchanged.
func Identity[T any](v T) T {
	return v
}

// Bind passes the Ok value to onOk and returns its Result. A Fail input is
// returned with its payload untouched and onOk is not called.
func Bind[V, W, E any](input result.Result[V, E],
	onOk func(v V) result.Result[W, E]) result.Result[W, E] {

	if v, ok := input.Value(); ok {
		return onOk(v)
	}
	return result.FailFrom[V, W](input)
}

// Map is Bind for functions that return a plain value.
func Map[V, W, E any](input result.Result[V, E], onOk func(v V) W) result.Result[W, E] {
	if v, ok := input.Value(); ok {
		return result.Ok[E](onOk(v))
	}
	return result.FailFrom[V, W](input)
}

// MapFail transforms the failure payload and leaves Ok untouched.
func MapFail[V, E, F any](input result.Result[V, E], onFail func(e E) F) result.Result[V, F] {
	if e, failed := input.Error(); failed {
		return result.Fail[V](onFail(e))
	}
	v, _ := input.Value()
	return result.Ok[F](v)
}

// Pipeline composes steps into one function. Every call folds the steps
// over Ok(initial) with Bind, so the first Fail skips all later steps.
func Pipeline[V, E any](steps ...func(v V) result.Result[V, E]) func(initial V) result.Result[V, E] {
	steps = slices.Clone(steps)

	return func(initial V) result.Result[V, E] {
		return reduce(steps, Bind[V, V, E], result.Ok[E](initial))
	}
}

func reduce[V, E any](steps []func(V) result.Result[V, E],
	step func(result.Result[V, E], func(V) result.Result[V, E]) result.Result[V, E],
	acc result.Result[V, E]) result.Result[V, E] {

	for _, s := range steps {
		acc = step(acc, s)
	}
	return acc
}

// FromPair converts the usual (value, error) return into a Result.
func FromPair[V any](v V, err error) result.Result[V, error] {
	if err != nil {
		return result.Fail[V](err)
	}
	return result.Ok[error](v)
}
