package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/suykerbuyk/diffmarks/internal/cli"
	"github.com/suykerbuyk/diffmarks/internal/config"
	"github.com/suykerbuyk/diffmarks/internal/filter"
	"github.com/suykerbuyk/diffmarks/internal/help"
	"github.com/suykerbuyk/diffmarks/internal/logging"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	paths, err := cli.Parse(args)
	switch {
	case errors.Is(err, cli.ErrHelp):
		fmt.Fprint(stdout, help.FormatTerminal(help.Main))
		return exitOK
	case err != nil:
		// No config or file access on this path.
		fmt.Fprint(stdout, help.FormatUsage(help.Main))
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		return fatal(stderr, "load config: %v", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fatal(stderr, "%v", err)
	}
	logger := logging.New(stderr, level)

	opts, err := cfg.WriteOptions()
	if err != nil {
		return fatal(stderr, "%v", err)
	}

	if _, err := filter.Run(ctx, paths, opts, logger); err != nil {
		return fatal(stderr, "%v", err)
	}
	return exitOK
}

func fatal(w io.Writer, format string, args ...interface{}) int {
	fmt.Fprintf(w, "diffmarks: "+format+"\n", args...)
	return exitError
}
