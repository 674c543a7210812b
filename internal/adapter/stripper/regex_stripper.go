package stripper

import (
	"regexp"
	"strings"
	"unicode"
)

// space is ASCII whitespace plus \v, the \x1c-\x1f separators, NEL and
// the Unicode Z categories. isSpace accepts the same set.
const space = `[\s\v\x1c-\x1f\x{85}\p{Z}]`

var (
	blockComment = regexp.MustCompile(`/\*[\s\S]*?\*/`)
	blankRun     = regexp.MustCompile(`\n` + space + `*\n` + space + `*\n`)
)

const lineMarker = "//"

// RegexStripper removes /* */ and // comments with regular expressions.
//
// It is a textual heuristic, not a lexer: markers inside string literals are
// stripped like real comments, and a // directly after ':' is kept as a URL
// scheme even when it opens a genuine comment.
type RegexStripper struct{}

func NewRegexStripper() *RegexStripper {
	return &RegexStripper{}
}

// Strip returns content with comments removed and blank-line runs collapsed.
func (s *RegexStripper) Strip(content string) string {
	content = blockComment.ReplaceAllString(content, "")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = stripLineComment(line)
	}

	// Applied once; not iterated to a fixed point.
	return blankRun.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
}

// stripLineComment truncates line at its first // unless that marker
// follows a colon.
func stripLineComment(line string) string {
	pos := strings.Index(line, lineMarker)
	if pos < 0 {
		return line
	}
	if pos > 0 && line[pos-1] == ':' {
		return line
	}
	return strings.TrimRightFunc(line[:pos], isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Stats describes how much a strip removed.
type Stats struct {
	BytesRemoved int
	LinesRemoved int
}

func Diff(before, after string) Stats {
	return Stats{
		BytesRemoved: len(before) - len(after),
		LinesRemoved: strings.Count(before, "\n") - strings.Count(after, "\n"),
	}
}
