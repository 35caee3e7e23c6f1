package pipeline

// MinTitleRunes is the default minimum heading title length in logical
// characters. Counting runes, not bytes, keeps short CJK titles valid.
const MinTitleRunes = 4

// Rules holds the configuration data driving heading validation and the
// structured-code heuristic. The zero value is not useful; start from
// DefaultRules and extend.
type Rules struct {
	// Denylist contains phrase fragments that mark a numbered line as
	// narrative prose rather than a structural heading. Matched by
	// substring against the candidate title.
	Denylist []string

	// CodeKeywords are literal prefixes that mark a line as the start of a
	// structured code block (checked against the trimmed line).
	CodeKeywords []string

	// MinTitleRunes is the minimum heading title length in runes.
	MinTitleRunes int
}

// defaultDenylist excludes lifecycle narration that happens to start with a
// section-like number (request/response walkthrough steps and similar).
var defaultDenylist = []string{
	"用户访问",
	"响应时间",
	"JVM 已",
	"Nginx",
	"PHP 解释器",
	"启动 PHP",
	"收到请求",
	"直接调用",
	"可能创建",
	"重新解释",
	"累积使用",
}

// defaultCodeKeywords are declaration/visibility/annotation/import-style
// prefixes common in the Java-flavored snippets these notes contain.
var defaultCodeKeywords = []string{
	"class ",
	"public ",
	"private ",
	"protected ",
	"@",
	"import ",
	"package ",
	"interface ",
}

// DefaultRules returns a fresh copy of the built-in rule sets.
// Callers may append to the slices without affecting other instances.
func DefaultRules() Rules {
	return Rules{
		Denylist:      append([]string(nil), defaultDenylist...),
		CodeKeywords:  append([]string(nil), defaultCodeKeywords...),
		MinTitleRunes: MinTitleRunes,
	}
}
