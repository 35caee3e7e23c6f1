package pipeline

import (
	"strings"
	"unicode"
)

// BlockKind discriminates the typed units the classifier produces.
type BlockKind int

// Block kinds, in no particular order of precedence.
const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockCode
	BlockGap
)

// Block is one typed unit of classified text, produced in input order.
// Exactly one of the field groups is meaningful depending on Kind:
// headings carry Level/Number/ID/Text, code blocks carry Lines, paragraphs
// carry Text (the original untrimmed line), gaps carry nothing.
type Block struct {
	Kind   BlockKind
	Level  int      // heading level (1-3)
	Number string   // heading numeric path
	ID     string   // heading anchor id
	Text   string   // heading display text or paragraph line
	Lines  []string // raw code block lines, verbatim

	// span is the number of input lines this block consumed, including
	// lines not reproduced in output (fence delimiters, trimmed blanks).
	span int
}

// fenceDelimiter opens and closes fenced code blocks when a trimmed line
// starts with it.
const fenceDelimiter = "```"

// state names the classifier's explicit machine states.
type state int

const (
	stateNormal state = iota
	stateFence
	stateBrace
	stateIndent
)

// classifier walks the line sequence with a single forward cursor.
// No backtracking happens once a block is emitted.
type classifier struct {
	lines  []string
	rules  Rules
	cursor int
	blocks []Block

	// collection buffer shared by the fence, brace, and indent states
	buf     []string
	balance int // running '{' minus '}' count across buf (brace state)
	start   int // cursor position where the current block began
}

// Classify partitions the document text into an ordered sequence of blocks.
// Every input line is consumed by exactly one rule; malformed or ambiguous
// input degrades to a paragraph block rather than failing, so classification
// is total over arbitrary text.
func Classify(content string, rules Rules) []Block {
	c := &classifier{lines: SplitLines(content), rules: rules}

	// A collector state entered on the final line still owes its buffered
	// block, so the machine runs until it settles back in stateNormal.
	st := stateNormal
	for c.cursor < len(c.lines) || st != stateNormal {
		switch st {
		case stateNormal:
			st = c.stepNormal()
		case stateFence:
			st = c.stepFence()
		case stateBrace:
			st = c.stepBrace()
		case stateIndent:
			st = c.stepIndent()
		}
	}

	return c.blocks
}

// emit appends a block, recording how many input lines it consumed.
func (c *classifier) emit(b Block) {
	b.span = c.cursor - c.start
	c.blocks = append(c.blocks, b)
}

// stepNormal classifies the line under the cursor. First match wins, in the
// fixed precedence order: fence delimiter, heading, structured-code start,
// indented code start, blank line, paragraph fallback.
func (c *classifier) stepNormal() state {
	line := c.lines[c.cursor]
	trimmed := strings.TrimSpace(line)
	c.start = c.cursor

	// 1. Fence delimiter: consume it and start buffering verbatim.
	if strings.HasPrefix(trimmed, fenceDelimiter) {
		c.cursor++
		c.buf = nil
		return stateFence
	}

	// 2. Numbered heading, or its paragraph degradation.
	if number, title, ok := matchHeading(trimmed); ok {
		c.cursor++
		if titleAllowed(title, c.rules) {
			c.emit(Block{
				Kind:   BlockHeading,
				Level:  headingLevel(number),
				Number: number,
				ID:     headingID(number),
				Text:   trimmed,
			})
		} else {
			c.emit(Block{Kind: BlockParagraph, Text: line})
		}
		return stateNormal
	}

	// 3. Structured-code heuristic: keyword prefix, or a brace at either end.
	if c.isCodeStart(trimmed) {
		c.buf = []string{line}
		c.balance = braceDelta(line)
		c.cursor++
		return stateBrace
	}

	// 4. Indented code: four spaces or a tab.
	if isIndented(line) {
		c.buf = []string{line}
		c.cursor++
		return stateIndent
	}

	// 5. Blank line becomes a vertical gap.
	if trimmed == "" {
		c.cursor++
		c.emit(Block{Kind: BlockGap})
		return stateNormal
	}

	// 6. Fallback: paragraph with the original untrimmed line.
	c.cursor++
	c.emit(Block{Kind: BlockParagraph, Text: line})
	return stateNormal
}

// stepFence buffers lines verbatim until the closing fence. Input exhausted
// before the fence closes still emits the buffered lines as one code block,
// so no line is ever dropped.
func (c *classifier) stepFence() state {
	for c.cursor < len(c.lines) {
		line := c.lines[c.cursor]
		if strings.HasPrefix(strings.TrimSpace(line), fenceDelimiter) {
			c.cursor++
			c.emit(Block{Kind: BlockCode, Lines: c.buf})
			return stateNormal
		}
		c.buf = append(c.buf, line)
		c.cursor++
	}
	c.emit(Block{Kind: BlockCode, Lines: c.buf})
	return stateNormal
}

// stepBrace collects lines until the running brace balance returns to zero.
// A declaration line with zero balance pulls in a next line that opens with
// "{" (Allman-style bodies). A lone line that never balanced degrades to a
// paragraph.
func (c *classifier) stepBrace() state {
	// Lookahead: declaration on one line, opening brace on the next.
	if c.balance == 0 && c.cursor < len(c.lines) {
		next := c.lines[c.cursor]
		if trimmed := strings.TrimSpace(next); trimmed != "" && trimmed[0] == '{' {
			c.buf = append(c.buf, next)
			c.balance += braceDelta(next)
			c.cursor++
		}
	}

	for c.cursor < len(c.lines) && c.balance > 0 {
		line := c.lines[c.cursor]
		c.buf = append(c.buf, line)
		c.balance += braceDelta(line)
		c.cursor++
	}

	if len(c.buf) > 1 || c.balance == 0 {
		c.emit(Block{Kind: BlockCode, Lines: c.buf})
	} else {
		c.emit(Block{Kind: BlockParagraph, Text: c.buf[0]})
	}
	return stateNormal
}

// stepIndent collects the run of indented-or-blank lines following the
// opening indented line, stopping before the first non-indented non-blank
// line. Trailing blanks are consumed here and trimmed by the renderer.
func (c *classifier) stepIndent() state {
	for c.cursor < len(c.lines) {
		line := c.lines[c.cursor]
		if !isIndented(line) && !isBlankLine(line) {
			break
		}
		c.buf = append(c.buf, line)
		c.cursor++
	}

	// Trailing whitespace is trimmed from the joined block; internal
	// structure stays intact.
	joined := strings.TrimRightFunc(strings.Join(c.buf, "\n"), unicode.IsSpace)
	c.emit(Block{Kind: BlockCode, Lines: strings.Split(joined, "\n")})
	return stateNormal
}

// isCodeStart reports whether the trimmed line triggers the structured-code
// heuristic: a configured keyword prefix, or a brace at either end.
func (c *classifier) isCodeStart(trimmed string) bool {
	if trimmed == "" {
		return false
	}
	for _, kw := range c.rules.CodeKeywords {
		if strings.HasPrefix(trimmed, kw) {
			return true
		}
	}
	return trimmed[0] == '{' || trimmed[len(trimmed)-1] == '{'
}

// braceDelta counts opening minus closing braces on one line.
func braceDelta(line string) int {
	return strings.Count(line, "{") - strings.Count(line, "}")
}
