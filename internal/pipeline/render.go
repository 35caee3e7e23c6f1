package pipeline

import (
	"fmt"
	"html"
	"strings"
)

// gapFragment renders a blank source line as a vertical gap.
const gapFragment = `<div class="gap"></div>`

// emptyOutlineFragment is the sidebar placeholder for documents with no
// valid headings.
const emptyOutlineFragment = `<div class="empty-toc">No sections</div>`

// tocIndentPx is the sidebar indentation per heading level beyond the first.
const tocIndentPx = 15

// Renderer turns classified blocks into HTML fragments. All textual content
// is escaped exactly once; code blocks are escaped as one joined unit so no
// markup is inserted between lines.
type Renderer struct {
	// Highlight enables chroma syntax highlighting for code blocks.
	// Plain escaped <pre><code> is the default and the fallback when
	// tokenizing fails.
	Highlight bool
}

// RenderBlocks emits one HTML fragment per block, preserving input order.
func (r *Renderer) RenderBlocks(blocks []Block) []string {
	fragments := make([]string, 0, len(blocks))
	for _, b := range blocks {
		fragments = append(fragments, r.renderBlock(b))
	}
	return fragments
}

func (r *Renderer) renderBlock(b Block) string {
	switch b.Kind {
	case BlockHeading:
		// Level 1 maps to <h2>: <h1> is reserved for the page title.
		tag := b.Level + 1
		return fmt.Sprintf(`<h%d id="%s" class="heading level-%d">%s</h%d>`,
			tag, b.ID, b.Level, html.EscapeString(b.Text), tag)
	case BlockCode:
		return r.renderCode(strings.Join(b.Lines, "\n"))
	case BlockGap:
		return gapFragment
	default:
		return "<p>" + html.EscapeString(b.Text) + "</p>"
	}
}

// renderCode wraps joined code in <pre><code>, or hands it to chroma when
// highlighting is enabled.
func (r *Renderer) renderCode(source string) string {
	if r.Highlight {
		if fragment, err := highlightCode(source); err == nil {
			return fragment
		}
	}
	return "<pre><code>" + html.EscapeString(source) + "</code></pre>"
}

// RenderTOC renders the outline as the navigation tree consumed by the page
// sidebar. Each entry links to the anchor id the body renderer assigns to
// the same heading line.
func RenderTOC(outline []Heading) string {
	if len(outline) == 0 {
		return emptyOutlineFragment
	}

	var sb strings.Builder
	sb.WriteString(`<div class="toc-tree">`)
	for _, h := range outline {
		indent := (h.Level - 1) * tocIndentPx
		fmt.Fprintf(&sb,
			"\n"+`<a href="#%s" class="toc-link level-%d" style="padding-left: %dpx;">`+
				`<span class="toc-num">%s</span> <span class="toc-text">%s</span></a>`,
			h.ID, h.Level, indent, html.EscapeString(h.Number), html.EscapeString(h.Title))
	}
	sb.WriteString("\n</div>")
	return sb.String()
}
