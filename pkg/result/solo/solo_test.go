package solo

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/result/pkg/result"
	"github.com/stretchr/testify/assert"
)

func divide100(v int) result.Result[int, string] {
	if v != 0 {
		return result.Ok[string](100 / v)
	}
	return result.Fail[int]("Division by zero")
}

func double(v int) result.Result[int, string] {
	return result.Ok[string](v * 2)
}

func addTen(v int) result.Result[int, string] {
	return result.Ok[string](v + 10)
}

func alwaysFail(int) result.Result[int, string] {
	return result.Fail[int]("Error")
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "foo", Identity("foo"))
	assert.Equal(t, "bar", Identity("bar"))
}

func TestBind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, result.Ok[string](20), Bind(result.Ok[string](5), divide100))
	assert.Equal(t, result.Fail[int]("Division by zero"), Bind(result.Ok[string](0), divide100))
}

func TestBind_ShortCircuitOnFail(t *testing.T) {
	t.Parallel()

	called := false
	in := result.Fail[int]("e")

	out := Bind(in, func(v int) result.Result[int, string] {
		called = true
		return result.Ok[string](v)
	})

	assert.False(t, called, "onOk must not run for Fail")
	assert.Equal(t, in, out)
}

func TestBind_ChangesValueType(t *testing.T) {
	t.Parallel()

	toStr := func(v int) result.Result[string, string] {
		return result.Ok[string](strconv.Itoa(v))
	}

	assert.Equal(t, result.Ok[string]("7"), Bind(result.Ok[string](7), toStr))

	failed := Bind(result.Fail[int]("x"), toStr)
	assert.Equal(t, result.Fail[string]("x"), failed)
}

func TestMap(t *testing.T) {
	t.Parallel()

	out := Map(result.Ok[string](5), func(v int) int { return v + 1 })
	assert.Equal(t, result.Ok[string](6), out)

	called := false
	failed := Map(result.Fail[int]("bad"), func(v int) string {
		called = true
		return "never"
	})
	assert.False(t, called)
	assert.Equal(t, result.Fail[string]("bad"), failed)
}

func TestMapFail(t *testing.T) {
	t.Parallel()

	out := MapFail(result.Fail[int](result.None{}), func(result.None) string { return "missing" })
	assert.Equal(t, result.Fail[int]("missing"), out)

	ok := MapFail(result.Ok[result.None](3), func(result.None) string { return "missing" })
	assert.Equal(t, result.Ok[string](3), ok)
}

func TestPipeline(t *testing.T) {
	t.Parallel()

	assert.Equal(t, result.Ok[string](20), Pipeline(double, addTen)(5))
}

func TestPipeline_StopsAtFirstFail(t *testing.T) {
	t.Parallel()

	ran := false
	tail := func(v int) result.Result[int, string] {
		ran = true
		return addTen(v)
	}

	out := Pipeline(double, alwaysFail, tail)(5)

	assert.Equal(t, result.Fail[int]("Error"), out)
	assert.False(t, ran, "steps after a Fail must not run")
}

func TestPipeline_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, result.Ok[string](42), Pipeline[int, string]()(42))
}

func TestPipeline_Reinvocable(t *testing.T) {
	t.Parallel()

	steps := []func(int) result.Result[int, string]{double, addTen}
	p := Pipeline(steps...)

	// the pipeline keeps its own copy of the steps
	steps[0] = alwaysFail

	assert.Equal(t, result.Ok[string](20), p(5))
	assert.Equal(t, result.Ok[string](12), p(1))
	assert.Equal(t, result.Ok[string](20), p(5))
}

func TestFromPair(t *testing.T) {
	t.Parallel()

	assert.Equal(t, result.Ok[error](1), FromPair(1, nil))

	boom := errors.New("boom")
	assert.Equal(t, result.Fail[int, error](boom), FromPair(0, boom))
}
