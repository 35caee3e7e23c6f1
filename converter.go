package notes2html

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"sync"
	"time"

	"github.com/alnah/go-notes2html/internal/assets"
	"github.com/alnah/go-notes2html/internal/dateutil"
	"github.com/alnah/go-notes2html/internal/pipeline"
)

// pageTemplateName is the embedded template the assembler renders.
const pageTemplateName = "page"

// Compile-time interface implementation checks.
var (
	_ AssetLoader = (*assets.EmbeddedLoader)(nil)
	_ AssetLoader = (*assets.FilesystemLoader)(nil)
	_ pdfExporter = (*rodExporter)(nil)
)

// Converter orchestrates the notes-to-HTML pipeline: outline extraction,
// block classification, fragment rendering, and page assembly.
// Create with New(), use Convert(), and Close() when done (Close only
// matters after ExportPDF, which holds a browser).
type Converter struct {
	cfg      converterConfig
	loader   AssetLoader
	renderer *pipeline.Renderer
	exporter pdfExporter

	// now is injectable for deterministic footer dates in tests.
	now func() time.Time
}

// New creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithStyle, WithHighlight).
func New(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{
			styleName: DefaultStyle,
			rules:     pipeline.DefaultRules(),
			timeout:   defaultTimeout,
		},
		loader: assets.NewEmbeddedLoader(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.renderer = &pipeline.Renderer{Highlight: c.cfg.highlight}

	// Create PDF exporter lazily-configured if not injected by tests.
	if c.exporter == nil {
		c.exporter = newRodExporter(c.cfg.timeout)
	}

	return c
}

// NewFilesystemAssets returns an AssetLoader reading styles/ and templates/
// under the given directory, for overriding the embedded assets.
func NewFilesystemAssets(dir string) (AssetLoader, error) {
	return assets.NewFilesystemLoader(dir)
}

// renderedDoc is one document's assembled fragments.
type renderedDoc struct {
	Label   string
	TOC     template.HTML
	Body    template.HTML
	outline []pipeline.Heading
}

// pageData feeds the page template.
type pageData struct {
	Title      string
	Subtitle   string
	Style      template.CSS
	Docs       []renderedDoc
	FooterLine string
}

// Convert runs the full pipeline and returns the assembled page.
// The two documents are independent pure computations and are processed
// concurrently; their outputs land in disjoint regions of the page.
func (c *Converter) Convert(ctx context.Context, input Input) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var docs [DocumentCount]renderedDoc
	var wg sync.WaitGroup
	for i := range input.Docs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			docs[i] = c.renderDocument(input.Docs[i], i)
		}(i)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	htmlContent, err := c.assemble(input, docs[:])
	if err != nil {
		return nil, err
	}

	result := &Result{HTML: htmlContent}
	for i, doc := range docs {
		result.Outlines[i] = doc.outline
		result.SectionCounts[i] = len(doc.outline)
	}
	return result, nil
}

// renderDocument runs outline extraction and block classification for one
// document and renders both outputs to HTML. Pure function of the input text.
func (c *Converter) renderDocument(doc Document, idx int) renderedDoc {
	label := doc.Label
	if label == "" {
		label = defaultLabels[idx]
	}

	outline := pipeline.ExtractOutline(doc.Text, c.cfg.rules)
	blocks := pipeline.Classify(doc.Text, c.cfg.rules)
	fragments := c.renderer.RenderBlocks(blocks)

	// #nosec G203 -- every fragment is escaped by the block renderer
	return renderedDoc{
		Label:   label,
		TOC:     template.HTML(pipeline.RenderTOC(outline)),
		Body:    template.HTML(strings.Join(fragments, "\n")),
		outline: outline,
	}
}

// assemble embeds the rendered documents into the page template.
func (c *Converter) assemble(input Input, docs []renderedDoc) (string, error) {
	css, err := c.loader.LoadStyle(c.cfg.styleName)
	if err != nil {
		return "", err
	}

	tmplText, err := c.loader.LoadTemplate(pageTemplateName)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New(pageTemplateName).Parse(tmplText)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}

	footerLine, err := c.footerLine(input.FooterText)
	if err != nil {
		return "", err
	}

	title := input.Title
	if title == "" {
		title = DefaultTitle
	}

	data := pageData{
		Title:      title,
		Subtitle:   input.Subtitle,
		Style:      template.CSS(css), // #nosec G203 -- style ships with the binary or is user-chosen
		Docs:       docs,
		FooterLine: footerLine,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	return buf.String(), nil
}

// footerLine joins the configured footer text with the formatted
// generation date.
func (c *Converter) footerLine(text string) (string, error) {
	date, err := dateutil.Format(c.now(), c.cfg.dateFormat)
	if err != nil {
		return "", err
	}
	if text == "" {
		return date, nil
	}
	return text + " · " + date, nil
}

// ExportPDF renders previously assembled page HTML to PDF bytes using
// headless Chrome. The context bounds the whole export.
func (c *Converter) ExportPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	return c.exporter.ExportPDF(ctx, htmlContent)
}

// Close releases browser resources held by the PDF exporter.
func (c *Converter) Close() error {
	if c.exporter != nil {
		return c.exporter.Close()
	}
	return nil
}
