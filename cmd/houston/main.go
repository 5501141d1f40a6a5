package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rupertdev/houston/internal/cli"
	"github.com/rupertdev/houston/pkg/houston"
)

func main() {
	// Recover from panics so the exit code stays meaningful
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(houston.ExitPanic)
		}
	}()

	if os.Getenv("HOUSTON_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(houston.ExitCodeForError(err))
	}
}
