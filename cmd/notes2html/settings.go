package main

import (
	"errors"
	"fmt"
	"time"

	notes2html "github.com/alnah/go-notes2html"
	"github.com/alnah/go-notes2html/internal/config"
	"github.com/alnah/go-notes2html/internal/fileutil"
)

// ErrInvalidTimeout reports a non-positive --timeout value.
var ErrInvalidTimeout = errors.New("--timeout must be positive")

// ErrStyleIsPath reports a --style value that looks like a file path.
// Styles are selected by name; custom stylesheets go through --asset-path.
var ErrStyleIsPath = errors.New("--style takes a name, not a path (use --asset-path for custom styles)")

// settings is the merged view of config file and command-line flags.
// Flags win over the config file, which wins over built-in defaults.
type settings struct {
	title      string
	subtitle   string
	footerText string
	labels     [notes2html.DocumentCount]string
	style      string
	highlight  bool
	dateFormat string
	rules      notes2html.Rules
	assetPath  string
	pdfPath    string
	timeout    time.Duration
	quiet      bool
	verbose    bool
}

// resolveSettings loads the config file (explicit path or discovery) and
// layers explicitly-set flags on top.
func resolveSettings(fl *cliFlags) (*settings, error) {
	if fl.timeout <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidTimeout, fl.timeout)
	}

	cfg, err := loadConfig(fl.configPath)
	if err != nil {
		return nil, err
	}

	s := &settings{
		title:      cfg.Page.Title,
		subtitle:   cfg.Page.Subtitle,
		footerText: cfg.Page.FooterText,
		labels:     [notes2html.DocumentCount]string{cfg.Tabs.First, cfg.Tabs.Second},
		style:      cfg.Style.Name,
		highlight:  cfg.Style.Highlight,
		dateFormat: cfg.Page.DateFormat,
		assetPath:  fl.assetPath,
		pdfPath:    fl.pdfPath,
		timeout:    fl.timeout,
		quiet:      fl.quiet,
		verbose:    fl.verbose,
	}

	if fl.changed("title") {
		s.title = fl.title
	}
	if fl.changed("subtitle") {
		s.subtitle = fl.subtitle
	}
	if fl.changed("footer") {
		s.footerText = fl.footerText
	}
	if fl.changed("tab1") {
		s.labels[0] = fl.tab1
	}
	if fl.changed("tab2") {
		s.labels[1] = fl.tab2
	}
	if fl.changed("style") {
		s.style = fl.style
	}
	if fl.changed("highlight") {
		s.highlight = fl.highlight
	}
	if fl.changed("date-format") {
		s.dateFormat = fl.dateFormat
	}
	if s.style == "" {
		s.style = notes2html.DefaultStyle
	}
	if fileutil.IsFilePath(s.style) {
		return nil, fmt.Errorf("%w: %q", ErrStyleIsPath, s.style)
	}

	rules := notes2html.DefaultRules()
	rules.Denylist = append(rules.Denylist, cfg.Rules.ExtraDenylist...)
	rules.CodeKeywords = append(rules.CodeKeywords, cfg.Rules.ExtraCodeKeywords...)
	if cfg.Rules.MinTitleLength > 0 {
		rules.MinTitleRunes = cfg.Rules.MinTitleLength
	}
	s.rules = rules

	return s, nil
}

// loadConfig loads the named config file, or discovers one when no path is
// given. Missing discovered config falls back to defaults; a missing
// explicit path is an error.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg, err := config.Discover()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return cfg, nil
}
