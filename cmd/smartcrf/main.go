// Package main provides the CLI entry point for smartcrf.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	smartcrfcmd "github.com/smartcrf/smartcrf/internal/cli/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := smartcrfcmd.Execute(ctx); err != nil {
		var ee *smartcrfcmd.ExitError
		if errors.As(err, &ee) {
			if ee.Err != nil {
				fmt.Fprintln(os.Stderr, "Error:", ee.Err)
			}
			os.Exit(ee.Code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(smartcrfcmd.ExitCLIError)
	}
	os.Exit(smartcrfcmd.ExitOK)
}
