package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-sexp/sexp"
	"github.com/hasbyte1/go-sexp/sexp/literal"
)

var errDottedTooShort = errors.New("chain --dotted needs at least two values")

func newPrintCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "print LITERAL...",
		Short: "Print each !cons literal as (car, cdr) text.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := literal.ParseAll(args)
			if err != nil {
				return err
			}
			return printAll(cmd.OutOrStdout(), opts.printer(), values...)
		},
		Example: `sexp print '!cons [!cons [3, 5], !cons [1, null]]'`,
	}
}

func newPairCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pair CAR CDR",
		Short: "Build one pair from two literals and print it.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := literal.ParseAll(args)
			if err != nil {
				return err
			}
			return printAll(cmd.OutOrStdout(), opts.printer(), sexp.New(values[0], values[1]))
		},
		Example: `sexp pair '[1]' '{key: value}'`,
	}
}

func newChainCommand(opts *options) *cobra.Command {
	var dotted bool
	chainCmd := &cobra.Command{
		Use:   "chain VALUE...",
		Short: "Build a right-nested chain of pairs ending in null and print it.",
		Long: `Build a right-nested chain of pairs, (v1, (v2, (... (vN, null)))).
With --dotted the last value takes the place of the final null.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := literal.ParseAll(args)
			if err != nil {
				return err
			}
			chain, err := buildChain(values, dotted)
			if err != nil {
				return err
			}
			return printAll(cmd.OutOrStdout(), opts.printer(), chain)
		},
		Example: "sexp chain 1 2 3\nsexp chain --dotted a b c",
	}
	chainCmd.Flags().BoolVarP(&dotted, "dotted", "d", false, "use the last value as the final cdr instead of null")
	return chainCmd
}

func buildChain(values []any, dotted bool) (any, error) {
	var tail any
	if dotted {
		if len(values) < 2 {
			return nil, errDottedTooShort
		}
		tail = values[len(values)-1]
		values = values[:len(values)-1]
	}
	for i := len(values) - 1; i >= 0; i-- {
		tail = sexp.New(values[i], tail)
	}
	return tail, nil
}
