package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depviz/internal/cli"
	errs "github.com/matzehuels/depviz/pkg/errors"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitInterrupted = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:])
	stop()
	os.Exit(exitCode(os.Stderr, err))
}

// exitCode reports err on w and maps it to the process exit status.
// Configuration errors get a usage hint; other coded errors show their code.
func exitCode(w io.Writer, err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	case errs.IsFatal(err):
		fmt.Fprintf(w, "Error: %s\nRun 'depviz --help' for usage.\n", errs.UserMessage(err))
	case errs.GetCode(err) != "":
		fmt.Fprintf(w, "Error [%s]: %s\n", errs.GetCode(err), errs.UserMessage(err))
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	return exitFailure
}

// run builds the command tree and executes it with args. The --verbose flag
// is applied before any subcommand sees the logger.
func run(ctx context.Context, args []string) error {
	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)

	verbose := root.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging")
	attach := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if *verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if attach == nil {
			return nil
		}
		return attach(cmd, args)
	}

	return root.ExecuteContext(ctx)
}
