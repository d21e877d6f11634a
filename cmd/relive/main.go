package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/relive-gfx/relive/bootstrap"
	"github.com/relive-gfx/relive/platform"
	"github.com/spf13/pflag"
)

func main() {
	// SDL and GLFW both expect every call to come from the main thread.
	runtime.LockOSThread()
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	flags := pflag.NewFlagSet("relive", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	verbose := flags.BoolP("verbose", "v", false, "log debug output")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", flags.Args())
		flags.Usage()
		return 2
	}

	logger := newLogger(stderr, *verbose)

	app := bootstrap.NewApp(bootstrap.DefaultConfig(), func(cfg bootstrap.WindowConfig) (bootstrap.Window, error) {
		window, err := platform.Open(cfg, logger)
		if err != nil {
			return nil, err
		}
		return window, nil
	}, logger)

	if err := app.Run(); err != nil {
		reportError(stderr, err)
		return 1
	}
	return 0
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func reportError(w io.Writer, err error) {
	fmt.Fprintln(w, err)

	var creationErr *bootstrap.InstanceCreationError
	if errors.As(err, &creationErr) {
		fmt.Fprintf(w, "Error code: %d\n", creationErr.Code)
	}

	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "hint: %s\n", hint)
	}
}
