// Package config loads YAML configuration for document generation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-notes2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
	ErrInvalidField   = errors.New("invalid config field")
)

// Field length limits keep user-supplied page chrome bounded.
const (
	MaxTitleLength      = 200
	MaxSubtitleLength   = 200
	MaxFooterTextLength = 500
	MaxTabLabelLength   = 100
	MaxDateFormatLength = 50
)

// Config holds all configuration for document generation.
type Config struct {
	Page  PageConfig  `yaml:"page"`
	Tabs  TabsConfig  `yaml:"tabs"`
	Style StyleConfig `yaml:"style"`
	Rules RulesConfig `yaml:"rules"`
}

// PageConfig defines page chrome: header, footer, and footer date.
type PageConfig struct {
	Title      string `yaml:"title"`      // Page and header title
	Subtitle   string `yaml:"subtitle"`   // Optional header subtitle
	FooterText string `yaml:"footerText"` // Footer line (date appended)
	DateFormat string `yaml:"dateFormat"` // dateutil format or preset; empty = ISO
}

// TabsConfig names the two document tabs.
type TabsConfig struct {
	First  string `yaml:"first"`
	Second string `yaml:"second"`
}

// StyleConfig selects the visual style.
type StyleConfig struct {
	Name      string `yaml:"name"`      // Name in internal/assets/styles (empty = notebook)
	Highlight bool   `yaml:"highlight"` // Syntax-highlight detected code blocks
}

// RulesConfig extends the built-in classification rule sets.
type RulesConfig struct {
	ExtraDenylist     []string `yaml:"extraDenylist"`     // Additional heading denylist fragments
	ExtraCodeKeywords []string `yaml:"extraCodeKeywords"` // Additional code keyword prefixes
	MinTitleLength    int      `yaml:"minTitleLength"`    // Override minimum title runes (0 = default)
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Page: PageConfig{
			Title: "Study Notes",
		},
		Tabs: TabsConfig{
			First:  "Notes I",
			Second: "Notes II",
		},
		Style: StyleConfig{
			Name: "notebook",
		},
	}
}

// Load reads and validates a config file. Missing file returns
// ErrConfigNotFound; malformed YAML returns ErrConfigParse.
// Fields left empty keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-chosen config path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yamlutil.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Discover looks for a config file in the default search paths and loads the
// first one found. Returns (nil, nil) when none exists: absence is not an
// error, only an explicitly named missing file is.
func Discover() (*Config, error) {
	for _, path := range DefaultSearchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return Load(path)
	}
	return nil, nil
}

// DefaultSearchPaths returns the config discovery locations in priority order.
func DefaultSearchPaths() []string {
	paths := []string{"notes2html.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "go-notes2html", "config.yaml"))
	}
	return paths
}

// Validate checks field lengths and rule overrides.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value string
		max   int
	}{
		{"page.title", c.Page.Title, MaxTitleLength},
		{"page.subtitle", c.Page.Subtitle, MaxSubtitleLength},
		{"page.footerText", c.Page.FooterText, MaxFooterTextLength},
		{"page.dateFormat", c.Page.DateFormat, MaxDateFormatLength},
		{"tabs.first", c.Tabs.First, MaxTabLabelLength},
		{"tabs.second", c.Tabs.Second, MaxTabLabelLength},
	}
	for _, check := range checks {
		if len(check.value) > check.max {
			return fmt.Errorf("%w: %s (%d > %d bytes)", ErrFieldTooLong, check.name, len(check.value), check.max)
		}
	}

	if c.Rules.MinTitleLength < 0 {
		return fmt.Errorf("%w: rules.minTitleLength must not be negative", ErrInvalidField)
	}
	return nil
}
