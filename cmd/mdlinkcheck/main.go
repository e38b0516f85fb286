package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/morozRed/mdlinkcheck/internal/cli"
	"github.com/morozRed/mdlinkcheck/internal/report"
)

var version = "0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := cli.NewRootCommand(version).ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

// exitCode maps a command error to the process status: 2 for link problems found
// under --strict, 1 for any other failure.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, report.ErrLinkProblems):
		return 2
	default:
		return 1
	}
}
