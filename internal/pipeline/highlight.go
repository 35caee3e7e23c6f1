package pipeline

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightStyle is the chroma style applied to highlighted code blocks.
const highlightStyle = "github"

// htmlFormatter emits inline styles so the output stays self-contained
// without a generated stylesheet.
var htmlFormatter = chromahtml.New(chromahtml.WithClasses(false))

// highlightCode renders one code block through chroma, guessing the language
// from the content. Chroma escapes HTML itself, so the result is injected
// as-is. Errors surface to the caller, which falls back to plain escaping.
func highlightCode(source string) (string, error) {
	lexer := lexers.Analyse(source)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(highlightStyle)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := htmlFormatter.Format(&sb, style, iterator); err != nil {
		return "", err
	}
	return sb.String(), nil
}
