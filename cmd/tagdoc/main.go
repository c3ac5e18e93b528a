package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/cartodocs/tagdoc/internal/cli"
	"github.com/cartodocs/tagdoc/pkg/tagdoc"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(tagdoc.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(tagdoc.ExitCodeForError(err))
	}
}
