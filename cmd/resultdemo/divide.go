package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/ib-77/result/pkg/result"
	"github.com/ib-77/result/pkg/result/solo"
	"github.com/sirupsen/logrus"
)

const divisionByZero = "Division by zero"

func parse(s string) result.Result[int, string] {
	return solo.TryCatchWith(func() (int, error) { return strconv.Atoi(s) },
		func(error) string { return fmt.Sprintf("%q is not a number", s) })
}

func nonZero(v int) result.Result[int, string] {
	return solo.With(v,
		func(v int) bool { return v != 0 },
		solo.Identity[int],
		func(int) string { return divisionByZero })
}

func divideInto(dividend int) func(v int) result.Result[int, string] {
	return func(v int) result.Result[int, string] {
		return result.Ok[string](dividend / v)
	}
}

// divider returns the whole string to quotient flow for one dividend.
func divider(dividend int, log logrus.FieldLogger) func(arg string) result.Result[int, string] {
	trace := func(step string) func(v int) result.Result[int, string] {
		return func(v int) result.Result[int, string] {
			log.WithFields(logrus.Fields{"step": step, "value": v}).Debug("step passed")
			return result.Ok[string](v)
		}
	}

	steps := solo.Pipeline(
		nonZero,
		trace("nonZero"),
		divideInto(dividend),
		trace("divide"),
	)

	return func(arg string) result.Result[int, string] {
		return solo.Bind(parse(arg), steps)
	}
}

func runDivide(out io.Writer, logger *logrus.Logger, opts options, args []string) error {
	log := logger.WithField("run", uuid.New().String())
	divide := divider(opts.dividend, log)

	for _, arg := range args {
		r := divide(arg)
		entry := log.WithFields(logrus.Fields{"input": arg, "tag": result.TypeOf(r)})

		solo.IfOk(r, func(v int) { entry.Info("divided") })
		solo.IfFail(r, func(e string) { entry.Warn(e) })

		if _, err := fmt.Fprintf(out, "%s -> %s\n", arg, result.ToStr(r)); err != nil {
			return err
		}

		if opts.failFast {
			if _, err := solo.Get(r); err != nil {
				return fmt.Errorf("%s: %w", arg, err)
			}
		}
	}
	return nil
}
