package pipeline

import (
	"regexp"
	"strings"
)

// crlfOrCR normalizes Windows and old-Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// SplitLines normalizes line endings and splits content into lines.
// A trailing newline yields a final empty line, matching the behavior of
// splitting in the original text order.
func SplitLines(content string) []string {
	return strings.Split(NormalizeLineEndings(content), "\n")
}

// isBlankLine returns true if the line is empty or contains only whitespace.
func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

// isIndented returns true if the line starts with four spaces or a tab.
func isIndented(line string) bool {
	return strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")
}
