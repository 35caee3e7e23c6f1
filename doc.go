// Package notes2html converts two plain-text study-note files into a single
// static HTML page with tab navigation and a generated table of contents per
// file.
//
// # Quick Start
//
// Create a converter, convert two documents, and write the result:
//
//	conv := notes2html.New()
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, notes2html.Input{
//	    Title: "Spring Study Notes",
//	    Docs: [2]notes2html.Document{
//	        {Label: "Fundamentals", Text: notes1},
//	        {Label: "Interview", Text: notes2},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("notes.html", []byte(result.HTML), 0644)
//
// # Conversion Pipeline
//
// Each document goes through the same stages, independently of the other:
//
//  1. Outline extraction (numbered headings, validity filter, stable anchors)
//  2. Block classification (heading, fenced/brace/indented code, gap, paragraph)
//  3. Fragment rendering (one escaped HTML fragment per block)
//  4. Page assembly (tabs, navigation sidebars, embedded style)
//
// The classifier is total over arbitrary text: malformed input degrades to
// paragraphs, it never fails.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv := notes2html.New(
//	    notes2html.WithStyle("notebook"),
//	    notes2html.WithHighlight(),
//	    notes2html.WithDateFormat("long"),
//	)
//
// Heading denylist fragments and code keyword prefixes are configuration
// data, not logic; extend them via WithRules.
//
// # PDF Export
//
// ExportPDF renders the assembled page to PDF via headless Chrome (go-rod).
// Rod automatically downloads a managed Chromium on first run. For containers
// and CI, set ROD_NO_SANDBOX=1; use ROD_BROWSER_BIN for a custom binary.
package notes2html
