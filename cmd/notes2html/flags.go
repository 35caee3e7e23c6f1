package main

import (
	"fmt"
	"time"

	flag "github.com/spf13/pflag"
)

// cliFlags holds parsed command-line flags. Zero values mean "not set";
// resolveSettings distinguishes explicit flags from defaults via Changed.
type cliFlags struct {
	configPath string
	title      string
	subtitle   string
	footerText string
	tab1       string
	tab2       string
	style      string
	assetPath  string
	highlight  bool
	dateFormat string
	pdfPath    string
	timeout    time.Duration
	quiet      bool
	verbose    bool
	version    bool

	fs *flag.FlagSet
}

// changed reports whether the named flag was set explicitly on the command
// line, as opposed to keeping its default value.
func (f *cliFlags) changed(name string) bool {
	return f.fs.Changed(name)
}

// parseFlags parses args into cliFlags plus the remaining positional
// arguments. Returns pflag.ErrHelp when --help is requested.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fl := &cliFlags{}
	fs := flag.NewFlagSet("notes2html", flag.ContinueOnError)
	fs.SortFlags = false

	fs.StringVar(&fl.configPath, "config", "", "path to YAML config file")
	fs.StringVar(&fl.title, "title", "", "page and header title")
	fs.StringVar(&fl.subtitle, "subtitle", "", "header subtitle")
	fs.StringVar(&fl.footerText, "footer", "", "footer text (generation date appended)")
	fs.StringVar(&fl.tab1, "tab1", "", "label of the first tab")
	fs.StringVar(&fl.tab2, "tab2", "", "label of the second tab")
	fs.StringVar(&fl.style, "style", "", "stylesheet name")
	fs.StringVar(&fl.assetPath, "asset-path", "", "directory overriding embedded assets")
	fs.BoolVar(&fl.highlight, "highlight", false, "syntax-highlight detected code blocks")
	fs.StringVar(&fl.dateFormat, "date-format", "", "footer date format (tokens like YYYY-MM-DD, or preset)")
	fs.StringVar(&fl.pdfPath, "pdf", "", "also export the page to this PDF file")
	fs.DurationVar(&fl.timeout, "timeout", 30*time.Second, "PDF export timeout")
	fs.BoolVarP(&fl.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVarP(&fl.verbose, "verbose", "v", false, "verbose progress output")
	fs.BoolVar(&fl.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: notes2html [flags] <notes1.txt> <notes2.txt> <output.html>")
		fmt.Fprintln(fs.Output(), "\nConvert two plain-text note files into one tabbed HTML page.")
		fmt.Fprintln(fs.Output(), "\nFlags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fl.fs = fs
	return fl, fs.Args(), nil
}
