package chain

import (
	"github.com/ib-77/result/pkg/result"
	"github.com/ib-77/result/pkg/result/solo"
)

type Chain[V, E any] struct {
	res result.Result[V, E]
}

func Start[V, E any](r result.Result[V, E]) Chain[V, E] {
	return Chain[V, E]{res: r}
}

// FromValue starts a chain from Ok(v).
func FromValue[E, V any](v V) Chain[V, E] {
	return Start(result.Ok[E](v))
}

func (c Chain[V, E]) Result() result.Result[V, E] {
	return c.res
}

// Then composes functions that already return a Result
func (c Chain[V, E]) Then(onOk func(v V) result.Result[V, E]) Chain[V, E] {
	if c.res.IsFail() {
		return c
	}
	return Chain[V, E]{res: solo.Bind(c.res, onOk)}
}

// Map transforms the Ok value
func (c Chain[V, E]) Map(onOk func(v V) V) Chain[V, E] {
	if c.res.IsFail() {
		return c
	}
	return Chain[V, E]{res: solo.Map(c.res, onOk)}
}

// IfOk runs onOk for an Ok chain. A nil callback is ignored.
func (c Chain[V, E]) IfOk(onOk func(v V)) Chain[V, E] {
	if onOk != nil {
		solo.IfOk(c.res, onOk)
	}
	return c
}

// IfFail runs onFail for a failed chain. A nil callback is ignored.
func (c Chain[V, E]) IfFail(onFail func(e E)) Chain[V, E] {
	if onFail != nil {
		solo.IfFail(c.res, onFail)
	}
	return c
}

// Or returns the first Ok chain among c and alternatives. When all of them
// failed the first failure is kept.
func (c Chain[V, E]) Or(alternatives ...Chain[V, E]) Chain[V, E] {
	if c.res.IsOk() {
		return c
	}

	for _, alt := range alternatives {
		if alt.res.IsOk() {
			return alt
		}
	}
	return c
}

// Fold collapses the chain to a final value, delegating to result.Match
func (c Chain[V, E]) Fold(onOk func(v V) V, onFail func(e E) V) V {
	return result.Match(c.res, onOk, onFail)
}

// To switches the chain to another value type
func To[V, W, E any](c Chain[V, E], onOk func(v V) result.Result[W, E]) Chain[W, E] {
	return Start(solo.Bind(c.res, onOk))
}
