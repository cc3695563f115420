package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-sexp/sexp"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	undefined  string
	escapeHTML bool
}

func (o *options) printer() *sexp.Printer {
	return sexp.NewPrinter(sexp.Config{
		Undefined:  o.undefined,
		EscapeHTML: o.escapeHTML,
	})
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "sexp",
		Short: "Build cons pairs from YAML/JSON literals and print them.",
		Long: `Build cons pairs from YAML/JSON literals and print them as (car, cdr) text.
A two-item sequence tagged !cons is a pair; any other literal is a plain value.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.undefined, "undefined", sexp.DefaultUndefined, "text printed for values with no JSON form")
	root.PersistentFlags().BoolVar(&opts.escapeHTML, "escape-html", false, "escape <, > and & inside JSON strings")

	root.AddCommand(
		newPrintCommand(opts),
		newPairCommand(opts),
		newChainCommand(opts),
		newReplCommand(opts),
	)
	return root
}

// printAll writes each value on its own line.
func printAll(w io.Writer, p *sexp.Printer, values ...any) error {
	for _, v := range values {
		if err := p.Fprint(w, v); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
