// Command sexp builds cons pairs from YAML/JSON literals and prints them in
// "(car, cdr)" form.
//
//	sexp print '!cons [!cons [3, 5], !cons [1, null]]'   # ((3, 5), (1, null))
//	sexp pair '[1]' '{key: value}'                      # ([1], {"key":"value"})
//	sexp chain 1 2 3                                    # (1, (2, (3, null)))
//	sexp repl
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("sexp: ")
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
