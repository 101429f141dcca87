package solo_test

import (
	"fmt"
	"strconv"

	"github.com/ib-77/result/pkg/result"
	"github.com/ib-77/result/pkg/result/solo"
)

func ExamplePipeline() {
	double := func(v int) result.Result[int, string] { return result.Ok[string](v * 2) }
	addTen := func(v int) result.Result[int, string] { return result.Ok[string](v + 10) }
	reject := func(int) result.Result[int, string] { return result.Fail[int]("Error") }

	fmt.Println(solo.Pipeline(double, addTen)(5))
	fmt.Println(solo.Pipeline(double, reject, addTen)(5))
	// Output:
	// ok(20)
	// fail(Error)
}

func ExampleTryCatchWith() {
	parse := func(s string) result.Result[int, string] {
		return solo.TryCatchWith(func() (int, error) { return strconv.Atoi(s) },
			func(err error) string { return "not a number: " + s })
	}

	fmt.Println(parse("12"))
	fmt.Println(parse("twelve"))
	// Output:
	// ok(12)
	// fail(not a number: twelve)
}

func ExampleWith() {
	even := func(v int) bool { return v%2 == 0 }
	half := func(v int) int { return v / 2 }
	odd := func(v int) string { return fmt.Sprintf("%d is odd", v) }

	fmt.Println(solo.With(8, even, half, odd))
	fmt.Println(solo.With(7, even, half, odd))
	// Output:
	// ok(4)
	// fail(7 is odd)
}

func ExampleGet() {
	_, err := solo.Get(result.Fail[int]("bar"))
	fmt.Println(err)
	// Output: bar
}
