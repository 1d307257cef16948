package reader

import (
	"strings"

	"github.com/pdk/whilst/fault"
)

// WhileKeyword starts a loop header. Any line whose first five characters
// spell it is a header, so "whilex > 0" is one too.
const WhileKeyword = "while"

// Line is one trimmed physical line and where it came from.
type Line struct {
	Text   string
	LineNo int
}

// LogicalLine is one executable unit: either a simple statement, or a while
// header together with its indented body.
type LogicalLine struct {
	Line
	Body []Line
}

// IsWhile returns true IFF the logical line is a while block.
func (l LogicalLine) IsWhile() bool {
	return IsWhileHeader(l.Text)
}

// IsWhileHeader reports whether a trimmed line opens a loop.
func IsWhileHeader(text string) bool {
	return strings.HasPrefix(text, WhileKeyword)
}

// IsIndented reports whether a raw line continues a while body.
func IsIndented(raw string) bool {
	return strings.HasPrefix(raw, " ") || strings.HasPrefix(raw, "\t")
}

// Group partitions raw input lines into logical lines. Blank lines are
// dropped. Indented lines join the body of the while header above them; an
// indented line with no header above it is a syntax error.
func Group(raw []string) ([]LogicalLine, error) {

	var result []LogicalLine

	for i, r := range raw {

		text := strings.TrimSpace(r)
		if text == "" {
			continue
		}

		line := Line{Text: text, LineNo: i + 1}

		if !IsIndented(r) {
			result = append(result, LogicalLine{Line: line})
			continue
		}

		if len(result) == 0 || !result[len(result)-1].IsWhile() {
			return nil, fault.Syntaxf("line %d: indented line outside a while body", line.LineNo)
		}

		last := &result[len(result)-1]
		last.Body = append(last.Body, line)
	}

	return result, nil
}
