package pipeline

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// headingPattern matches numbered section headings: 1 to 3 dot-separated
// integers, a closing period, whitespace, and a non-empty remainder.
// Examples: "1. Intro", "2.3. Beans", "2.3.1. Scopes".
var headingPattern = regexp.MustCompile(`^(\d+(?:\.\d+){0,2})\.\s+(.+)$`)

// anchorPrefix tags generated heading anchors so they cannot collide with
// ids used by the page chrome.
const anchorPrefix = "h-"

// Heading is one entry of a document outline.
type Heading struct {
	ID     string // anchor id, e.g. "h-2-3-1"
	Number string // dotted numeric path, e.g. "2.3.1"
	Title  string // trimmed title text
	Level  int    // number of path components (1-3)
}

// matchHeading applies headingPattern to the trimmed line.
// Returns the numeric path, the trimmed title, and whether the line matched.
func matchHeading(trimmed string) (number, title string, ok bool) {
	m := headingPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return "", "", false
	}
	return m[1], strings.TrimSpace(m[2]), true
}

// headingLevel is the number of dot-separated components in the numeric path.
func headingLevel(number string) int {
	return strings.Count(number, ".") + 1
}

// headingID derives the anchor id from the numeric path: dots become hyphens,
// prefixed with anchorPrefix. The derivation is shared by the outline and the
// body renderer so navigation links always resolve.
func headingID(number string) string {
	return anchorPrefix + strings.ReplaceAll(number, ".", "-")
}

// titleAllowed checks the filter conditions common to the outline and the
// body renderer: minimum title length in runes, and no denylisted fragment.
func titleAllowed(title string, rules Rules) bool {
	if utf8.RuneCountInString(title) < rules.MinTitleRunes {
		return false
	}
	for _, kw := range rules.Denylist {
		if strings.Contains(title, kw) {
			return false
		}
	}
	return true
}

// startsWithEnumeration reports whether the trimmed line begins with a digit
// immediately followed by a closing parenthesis, as in "1) do the thing".
// Such enumerations must never be mistaken for section numbers.
func startsWithEnumeration(trimmed string) bool {
	return len(trimmed) >= 2 && trimmed[0] >= '0' && trimmed[0] <= '9' && trimmed[1] == ')'
}

// ExtractOutline scans the document text and returns the ordered outline of
// valid headings. Input order is preserved; a numeric path already seen is
// silently dropped (first occurrence wins). The outline filter is stricter
// than the body renderer's: it additionally rejects titles starting with
// "http", enumeration-style lines, and duplicate numbers.
func ExtractOutline(content string, rules Rules) []Heading {
	var outline []Heading
	seen := make(map[string]struct{})

	for _, line := range SplitLines(content) {
		trimmed := strings.TrimSpace(line)
		number, title, ok := matchHeading(trimmed)
		if !ok {
			continue
		}
		if !titleAllowed(title, rules) {
			continue
		}
		if strings.HasPrefix(title, "http") {
			continue
		}
		if startsWithEnumeration(trimmed) {
			continue
		}
		if _, dup := seen[number]; dup {
			continue
		}
		seen[number] = struct{}{}
		outline = append(outline, Heading{
			ID:     headingID(number),
			Number: number,
			Title:  title,
			Level:  headingLevel(number),
		})
	}

	return outline
}
