// Package main implements the fortune command, which prints a daily Thai
// fortune reading for a stored or given birthday.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/fortune/internal/config"
	"github.com/phrazzld/fortune/internal/platform/logger"
	"github.com/spf13/pflag"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const usage = `Usage: fortune [flags] [command]

Commands:
  show              print today's reading for the stored birthday (default)
  set YYYY-MM-DD    store a birthday and print today's reading
  reset             forget the stored birthday

Flags:
`

// main is the entry point for the fortune command.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, time.Now))
}

// run parses args, loads configuration, sets up logging and dispatches the
// command. It returns the process exit code. now is read at most once.
func run(args []string, stdout, stderr io.Writer, now func() time.Time) int {
	fs := pflag.NewFlagSet("fortune", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	config.RegisterFlags(fs)
	birthdayFlag := fs.String("birthday", "", "compute the reading for this birthday without storing it")
	todayFlag := fs.String("today", "", "override today's date (YYYY-MM-DD)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(stderr, "fortune: %v\n", err)
		return exitError
	}

	base := logger.Setup(cfg.App, stderr)
	ctx, log := logger.WithTraceID(context.Background(), base, uuid.NewString())
	log.Debug("configuration loaded",
		"log_level", cfg.App.LogLevel,
		"timezone", cfg.App.Timezone,
		"store_path", cfg.Store.Path,
		"format", cfg.Output.Format)

	app, err := newApplication(ctx, cfg, stdout, now, *todayFlag)
	if err != nil {
		fmt.Fprintf(stderr, "fortune: %v\n", err)
		return exitUsage
	}

	cmd := fs.Arg(0)
	if cmd == "" {
		cmd = "show"
	}

	switch cmd {
	case "show":
		if fs.NArg() > 1 {
			fs.Usage()
			return exitUsage
		}
		err = app.show(ctx, *birthdayFlag)
	case "set":
		if fs.NArg() != 2 {
			fmt.Fprintln(stderr, "fortune: set needs exactly one birthday argument (YYYY-MM-DD)")
			return exitUsage
		}
		err = app.set(ctx, fs.Arg(1))
	case "reset":
		if fs.NArg() > 1 {
			fs.Usage()
			return exitUsage
		}
		err = app.reset(ctx)
	default:
		fmt.Fprintf(stderr, "fortune: unknown command %q\n", cmd)
		fs.Usage()
		return exitUsage
	}

	if err != nil {
		log.Debug("command failed", "command", cmd, "error", err)
		fmt.Fprintf(stderr, "fortune: %s\n", userMessage(err))
		return exitError
	}
	return exitOK
}
