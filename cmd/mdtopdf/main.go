package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	// Interrupt or termination kills the browser process group too; see
	// configureProcessGroup in the library.
	ctx, stop := notifyContext(context.Background())
	defer stop()

	env := DefaultEnv()
	if err := run(ctx, os.Args, env); err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		os.Exit(exitCodeFor(err)) //nolint:gocritic // stop() is redundant at exit
	}
}
