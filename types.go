package notes2html

import (
	"fmt"
	"time"

	"github.com/alnah/go-notes2html/internal/pipeline"
)

// DocumentCount is the fixed number of input documents per page.
const DocumentCount = 2

// DefaultTitle is used when Input.Title is empty.
const DefaultTitle = "Study Notes"

// DefaultStyle is the built-in stylesheet applied when no style is selected.
const DefaultStyle = "notebook"

// defaultLabels name the tabs when documents carry no label.
var defaultLabels = [DocumentCount]string{"Notes I", "Notes II"}

// Document is one input text and its tab label.
type Document struct {
	Label string // tab and sidebar label (optional, defaults applied)
	Text  string // raw note text (required)
}

// Input contains conversion parameters for one page.
type Input struct {
	Title      string                  // page title (optional, DefaultTitle applied)
	Subtitle   string                  // header subtitle (optional)
	FooterText string                  // footer line, generation date appended (optional)
	Docs       [DocumentCount]Document // the two documents, in tab order
}

// Validate checks that both documents carry text.
func (in Input) Validate() error {
	for i, doc := range in.Docs {
		if doc.Text == "" {
			return fmt.Errorf("%w: document %d", ErrEmptyDocument, i+1)
		}
	}
	return nil
}

// Heading re-exports one outline entry: anchor id, dotted numeric path,
// title, and level (1-3).
type Heading = pipeline.Heading

// Result holds the assembled page and the per-document outlines.
type Result struct {
	HTML          string                   // the complete static page
	Outlines      [DocumentCount][]Heading // navigation entries per document, in input order
	SectionCounts [DocumentCount]int       // len of each outline, for convenience
}

// Rules re-exports the pipeline rule set so callers can extend the heading
// denylist and code keyword prefixes.
type Rules = pipeline.Rules

// DefaultRules returns a fresh copy of the built-in rule sets.
func DefaultRules() Rules {
	return pipeline.DefaultRules()
}

// AssetLoader loads CSS styles and page templates by name. Implementations
// may load from embedded assets or the filesystem; see NewFilesystemAssets.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
	LoadTemplate(name string) (string, error)
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	styleName  string
	highlight  bool
	dateFormat string
	rules      Rules
	timeout    time.Duration
}

// defaultTimeout bounds PDF export when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithStyle selects a named stylesheet for the assembled page.
func WithStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.styleName = name
	}
}

// WithHighlight enables chroma syntax highlighting for detected code blocks.
func WithHighlight() Option {
	return func(c *Converter) {
		c.cfg.highlight = true
	}
}

// WithDateFormat sets the footer date format (dateutil tokens or a named
// preset such as "iso" or "long").
func WithDateFormat(format string) Option {
	return func(c *Converter) {
		c.cfg.dateFormat = format
	}
}

// WithRules replaces the classification rule sets.
func WithRules(rules Rules) Option {
	return func(c *Converter) {
		c.cfg.rules = rules
	}
}

// WithAssetLoader replaces the embedded asset loader.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.loader = loader
	}
}

// WithTimeout sets the PDF export timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("notes2html: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}
