package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	notes2html "github.com/alnah/go-notes2html"
	"github.com/alnah/go-notes2html/internal/assets"
	"github.com/alnah/go-notes2html/internal/config"
	"github.com/alnah/go-notes2html/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Exit codes.
const (
	exitSuccess = 0
	exitError   = 1
	exitUsage   = 2
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	fl, positional, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitSuccess
		}
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}

	if fl.version {
		fmt.Println("notes2html " + Version)
		return exitSuccess
	}

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if fl.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	s, err := resolveSettings(fl)
	if err != nil {
		fmt.Fprintln(os.Stderr, withHint(err))
		if errors.Is(err, ErrInvalidTimeout) || errors.Is(err, ErrStyleIsPath) {
			return exitUsage
		}
		return exitError
	}

	opts := []notes2html.Option{
		notes2html.WithStyle(s.style),
		notes2html.WithRules(s.rules),
		notes2html.WithTimeout(s.timeout),
	}
	if s.highlight {
		opts = append(opts, notes2html.WithHighlight())
	}
	if s.dateFormat != "" {
		opts = append(opts, notes2html.WithDateFormat(s.dateFormat))
	}
	if s.assetPath != "" {
		loader, err := notes2html.NewFilesystemAssets(s.assetPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, withHint(err))
			return exitError
		}
		opts = append(opts, notes2html.WithAssetLoader(loader))
	}

	svc := notes2html.New(opts...)
	defer func() { _ = svc.Close() }()

	if err := run(s, positional, svc, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, withHint(err))
		if errors.Is(err, ErrInvalidArgs) {
			return exitUsage
		}
		return exitError
	}
	return exitSuccess
}

// withHint appends an actionable hint to known failure modes.
func withHint(err error) string {
	msg := err.Error()
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		msg += hints.ForConfigNotFound(config.DefaultSearchPaths())
	case errors.Is(err, assets.ErrStyleNotFound):
		msg += hints.ForStyleNotFound(assets.ListStyles())
	case errors.Is(err, notes2html.ErrBrowserConnect):
		msg += hints.ForBrowserConnect()
	case errors.Is(err, notes2html.ErrPageLoad):
		msg += hints.ForTimeout()
	case errors.Is(err, ErrWriteOutput):
		msg += hints.ForOutputDirectory()
	}
	return msg
}
