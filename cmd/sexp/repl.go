package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-sexp/sexp"
	"github.com/hasbyte1/go-sexp/sexp/literal"
)

const (
	promptMain  = "sexp> "
	historyFile = ".sexp_history"
)

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func newReplCommand(opts *options) *cobra.Command {
	var historyPath string
	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Read literals interactively and print them.",
		Long: `Read one literal per line and print it as (car, cdr) text.
Errors are reported and the loop continues. Type :quit or press Ctrl-D to exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepl(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.printer(), historyPath)
		},
	}
	replCmd.Flags().StringVar(&historyPath, "history", defaultHistoryPath(), "history file; empty disables history")
	return replCmd
}

func runRepl(stdout, stderr io.Writer, p *sexp.Printer, historyPath string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer saveHistory(ln, historyPath)
	}

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(stdout)
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "repl: read line")
		}

		out, quit, err := evalLine(p, line)
		if quit {
			return nil
		}
		if err != nil {
			fmt.Fprintln(stderr, err)
			continue
		}
		if out == "" {
			continue
		}
		fmt.Fprintln(stdout, out)
		ln.AppendHistory(line)
	}
}

func saveHistory(ln *liner.State, path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Printf("history: %v", err)
		return
	}
	defer f.Close()
	if _, err := ln.WriteHistory(f); err != nil {
		log.Printf("history: %v", err)
	}
}

// evalLine handles one REPL line: blank lines print nothing, ":quit" ends the
// loop, anything else is parsed as a literal and printed.
func evalLine(p *sexp.Printer, line string) (out string, quit bool, err error) {
	src := strings.TrimSpace(line)
	switch {
	case src == "":
		return "", false, nil
	case src == ":quit" || src == ":q":
		return "", true, nil
	case strings.HasPrefix(src, ":"):
		return "", false, errors.Errorf("unknown command %s; type :quit to exit", src)
	}

	v, err := literal.Parse(src)
	if err != nil {
		return "", false, err
	}
	out, err = p.Sprint(v)
	if err != nil {
		return "", false, err
	}
	return out, false, nil
}
