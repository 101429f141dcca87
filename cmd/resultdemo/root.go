package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	dividend int
	failFast bool
	verbose  bool
}

func newRootCommand() *cobra.Command {
	opts := options{}
	logger := logrus.New()

	root := &cobra.Command{
		Use:   "resultdemo",
		Short: `Demonstrate Result pipelines.`,
	}

	divideCmd := &cobra.Command{
		Use:   "divide N...",
		Short: `Divide the dividend by every argument.`,
		Long: `Parse every argument as an integer, reject zero and divide the
dividend by it. Each outcome is printed as ok(<quotient>) or fail(<reason>).

    $ resultdemo divide 5 0 x
    5 -> ok(20)
    0 -> fail(Division by zero)
    x -> fail("x" is not a number)

With --fail-fast the command stops at the first failure and exits non-zero.
`,
		Args: cobra.MinimumNArgs(1),
		PreRun: func(command *cobra.Command, args []string) {
			logger.SetOutput(command.ErrOrStderr())
			if opts.verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(command *cobra.Command, args []string) error {
			return runDivide(command.OutOrStdout(), logger, opts, args)
		},
		SilenceUsage: true,
	}

	flags := divideCmd.Flags()
	flags.IntVarP(&opts.dividend, "dividend", "d", 100, "Value divided by every argument")
	flags.BoolVarP(&opts.failFast, "fail-fast", "", false, "Stop at the first failure")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every pipeline step")

	root.AddCommand(divideCmd)
	return root
}
