package main

// Notes:
// - resolveSettings: we test the default/config/flag precedence chain and the
//   rule-set extension. Config discovery from the home directory is not
//   exercised (environment-dependent); explicit --config paths cover loading.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	notes2html "github.com/alnah/go-notes2html"
	"github.com/alnah/go-notes2html/internal/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes2html.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func mustParse(t *testing.T, args []string) *cliFlags {
	t.Helper()
	fl, _, err := parseFlags(args)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	return fl
}

// ---------------------------------------------------------------------------
// TestResolveSettings_Defaults - built-in defaults without config or flags
// ---------------------------------------------------------------------------

func TestResolveSettings_Defaults(t *testing.T) {
	t.Parallel()

	// An explicit empty config keeps discovery out of the picture.
	path := writeConfigFile(t, "{}\n")
	s, err := resolveSettings(mustParse(t, []string{"--config", path}))
	if err != nil {
		t.Fatalf("resolveSettings() error = %v", err)
	}

	if s.title != notes2html.DefaultTitle {
		t.Errorf("title = %q, want %q", s.title, notes2html.DefaultTitle)
	}
	if s.style != notes2html.DefaultStyle {
		t.Errorf("style = %q, want %q", s.style, notes2html.DefaultStyle)
	}
	if s.labels[0] != "Notes I" || s.labels[1] != "Notes II" {
		t.Errorf("labels = %v, want default tab labels", s.labels)
	}
	if s.highlight {
		t.Error("highlight should default to false")
	}
}

// ---------------------------------------------------------------------------
// TestResolveSettings_ConfigFile - values from YAML config
// ---------------------------------------------------------------------------

func TestResolveSettings_ConfigFile(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, `
page:
  title: Spring Study Notes
  subtitle: Weeks 1-4
  footerText: Keep learning
  dateFormat: long
tabs:
  first: Core
  second: Web
style:
  highlight: true
rules:
  extraDenylist:
    - Deprecated
  extraCodeKeywords:
    - "func "
  minTitleLength: 6
`)

	s, err := resolveSettings(mustParse(t, []string{"--config", path}))
	if err != nil {
		t.Fatalf("resolveSettings() error = %v", err)
	}

	if s.title != "Spring Study Notes" {
		t.Errorf("title = %q", s.title)
	}
	if s.subtitle != "Weeks 1-4" {
		t.Errorf("subtitle = %q", s.subtitle)
	}
	if s.footerText != "Keep learning" {
		t.Errorf("footerText = %q", s.footerText)
	}
	if s.dateFormat != "long" {
		t.Errorf("dateFormat = %q", s.dateFormat)
	}
	if s.labels != [2]string{"Core", "Web"} {
		t.Errorf("labels = %v", s.labels)
	}
	if !s.highlight {
		t.Error("highlight should be true from config")
	}
	// Empty style name in config falls back to the built-in default.
	if s.style != notes2html.DefaultStyle {
		t.Errorf("style = %q, want %q", s.style, notes2html.DefaultStyle)
	}

	if s.rules.MinTitleRunes != 6 {
		t.Errorf("MinTitleRunes = %d, want 6", s.rules.MinTitleRunes)
	}
	if s.rules.Denylist[len(s.rules.Denylist)-1] != "Deprecated" {
		t.Error("extraDenylist entry should be appended to the built-in denylist")
	}
	if s.rules.CodeKeywords[len(s.rules.CodeKeywords)-1] != "func " {
		t.Error("extraCodeKeywords entry should be appended to the built-in keywords")
	}
	if len(s.rules.Denylist) <= 1 {
		t.Error("built-in denylist should be preserved under extension")
	}
}

// ---------------------------------------------------------------------------
// TestResolveSettings_FlagsOverrideConfig - precedence chain
// ---------------------------------------------------------------------------

func TestResolveSettings_FlagsOverrideConfig(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, `
page:
  title: From Config
tabs:
  first: Config Tab
`)

	s, err := resolveSettings(mustParse(t, []string{
		"--config", path,
		"--title", "From Flag",
		"--tab1", "Flag Tab",
		"--subtitle", "",
	}))
	if err != nil {
		t.Fatalf("resolveSettings() error = %v", err)
	}

	if s.title != "From Flag" {
		t.Errorf("title = %q, flag should win over config", s.title)
	}
	if s.labels[0] != "Flag Tab" {
		t.Errorf("labels[0] = %q, flag should win over config", s.labels[0])
	}
	if s.labels[1] != "Notes II" {
		t.Errorf("labels[1] = %q, untouched fields keep defaults", s.labels[1])
	}
}

// ---------------------------------------------------------------------------
// TestResolveSettings_InvalidTimeout - non-positive --timeout is rejected
// ---------------------------------------------------------------------------

func TestResolveSettings_InvalidTimeout(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"0s", "-5s"} {
		value := value
		t.Run(value, func(t *testing.T) {
			t.Parallel()

			fl := mustParse(t, []string{"--timeout", value})
			_, err := resolveSettings(fl)
			if !errors.Is(err, ErrInvalidTimeout) {
				t.Errorf("resolveSettings() error = %v, want ErrInvalidTimeout", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestResolveSettings_StylePathRejected - --style takes names, not paths
// ---------------------------------------------------------------------------

func TestResolveSettings_StylePathRejected(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"./custom.css", "styles/notebook.css", `themes\dark.css`} {
		value := value
		t.Run(value, func(t *testing.T) {
			t.Parallel()

			fl := mustParse(t, []string{"--style", value})
			_, err := resolveSettings(fl)
			if !errors.Is(err, ErrStyleIsPath) {
				t.Errorf("resolveSettings() error = %v, want ErrStyleIsPath", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestResolveSettings_MissingExplicitConfig - named config must exist
// ---------------------------------------------------------------------------

func TestResolveSettings_MissingExplicitConfig(t *testing.T) {
	t.Parallel()

	fl := mustParse(t, []string{"--config", filepath.Join(t.TempDir(), "nope.yaml")})
	_, err := resolveSettings(fl)
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound, got %v", err)
	}
}
