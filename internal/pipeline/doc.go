// Package pipeline implements the plain-text-to-HTML conversion pipeline.
//
// This package handles the note-structure heuristics:
//   - Line normalization (CRLF/CR to LF)
//   - Outline extraction (numbered section headings with a validity filter)
//   - Block classification (heading, fenced code, brace-balanced code,
//     indented code, blank gap, paragraph) via an explicit state machine
//   - Rendering each block to one escaped HTML fragment
//
// Page assembly (tabs, navigation sidebar, CSS) is handled separately by the
// root notes2html package using embedded templates. This separation keeps the
// pipeline focused on text structure, while assembly handles layout and
// interaction concerns.
package pipeline
