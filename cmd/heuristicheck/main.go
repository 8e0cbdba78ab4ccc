// Command heuristicheck audits a page from the command line.
//
//	heuristicheck audit [-format text|json|yaml] [-out file] [-browser] <file|url>
//	heuristicheck watch [-browser] <file>
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

const usage = `usage:
  heuristicheck audit [flags] <file|url>
  heuristicheck watch [flags] <file>

Run "heuristicheck <command> -h" for the flags of a command.
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	switch args[0] {
	case "audit":
		return runAudit(ctx, args[1:], stdout, stderr, logger)
	case "watch":
		return runWatch(ctx, args[1:], stdout, stderr, logger)
	case "-h", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	}
	fmt.Fprintf(stderr, "unknown command %q\n%s", args[0], usage)
	return 2
}
