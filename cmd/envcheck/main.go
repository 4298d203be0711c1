// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// envcheck verifies that a dotenv file provides every key the web shell needs.
//
// Usage:
//
//	envcheck                  # checks ./.env
//	envcheck -f config/.env
//	envcheck -format json
//	envcheck -watch
//	envcheck keys
//
// Exit codes:
//   - 0: All required keys are present (or watch mode was interrupted)
//   - 1: File not found, required keys missing, or the file could not be read
//   - 2: Usage or settings error
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ManuGH/envcheck/internal/config"
	"github.com/ManuGH/envcheck/internal/envcheck"
	xglog "github.com/ManuGH/envcheck/internal/log"
	"github.com/ManuGH/envcheck/internal/version"
	"github.com/ManuGH/envcheck/internal/watch"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "keys" {
		return runKeys(args[1:], stdout, stderr)
	}

	// Settings parsing logs through the configured logger, so bring it up
	// from the environment before LoadSettings and again once flags are known.
	xglog.Configure(xglog.Config{
		Level:   bootstrapLogLevel(),
		Output:  stderr,
		Version: version.Version,
	})

	settings := config.LoadSettings()

	fs := flag.NewFlagSet("envcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	settings.BindFlags(fs)
	showVersion := fs.Bool("version", false, "print version and exit")
	fs.Usage = func() {
		printUsage(stderr)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected argument %q\n\n", fs.Arg(0))
		printUsage(stderr)
		return exitUsage
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String())
		return exitOK
	}

	settings.Normalize()
	if err := config.Validate(settings); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	xglog.Configure(xglog.Config{
		Level:   settings.LogLevel,
		Output:  stderr,
		Version: version.Version,
	})

	verifier := envcheck.NewVerifier(nil)
	format := settings.ReportFormat()

	if settings.Watch {
		w := watch.New(settings.File, settings.Debounce, verifier.Verify, func(report *envcheck.Report, err error) {
			emit(report, err, format, stdout, stderr)
		})
		if err := w.Run(ctx); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitFailure
		}
		return exitOK
	}

	report, err := verifier.Verify(settings.File)
	return emit(report, err, format, stdout, stderr)
}

// bootstrapLogLevel is the level in effect until flags are parsed.
func bootstrapLogLevel() string {
	if level := strings.ToLower(strings.TrimSpace(os.Getenv(config.EnvLogLevel))); level != "" {
		return level
	}
	return config.Defaults().LogLevel
}

// emit prints the report (when there is one) to stdout and the failure, if
// any, to stderr. It returns the process exit code for the result.
func emit(report *envcheck.Report, err error, format envcheck.Format, stdout, stderr io.Writer) int {
	if report != nil {
		if rerr := report.Render(stdout, format); rerr != nil {
			fmt.Fprintf(stderr, "Error: write report: %v\n", rerr)
			return exitFailure
		}
		if format == envcheck.FormatText {
			if rerr := envcheck.WriteOutcome(stdout, err); rerr != nil {
				fmt.Fprintf(stderr, "Error: write report: %v\n", rerr)
				return exitFailure
			}
		}
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
	return exitOK
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  envcheck [-f .env] [-format text|json|yaml] [-watch] [-log-level warn]")
	fmt.Fprintln(w, "  envcheck keys")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Flags:")
}
