package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "1.1.1"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	deps := DefaultDeps()
	if err := run(os.Args, deps); err != nil {
		fmt.Fprintf(deps.Stderr, "%s: error: %v\n", progName(os.Args), err)
		os.Exit(1)
	}
}
