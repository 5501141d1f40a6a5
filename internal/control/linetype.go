package control

import (
	"fmt"
	"strings"
	"unicode"
)

// LineType is the encoding that governs a line of a control document, or
// the encoding a Value requires when it is written.
type LineType int

const (
	// Simple is a single "Key: value" line.
	Simple LineType = iota
	// Folded is a comma separated list continued on following lines.
	Folded
	// Multiline is a block continued on indented lines.
	Multiline
)

// String returns a human-readable name for the line type.
func (t LineType) String() string {
	switch t {
	case Simple:
		return "simple"
	case Folded:
		return "folded"
	case Multiline:
		return "multiline"
	default:
		return fmt.Sprintf("LineType(%d)", int(t))
	}
}

// ClassifyLine reports which encoding governs lines[i].
//
// The decision looks at the line before, the line itself and the line after
// (missing neighbours count as empty):
//   - a trailing comma on the previous or current line means Folded, so the
//     last element of a list is recognised even without its own comma;
//   - otherwise an indented current or next line means Multiline;
//   - otherwise the line is Simple.
//
// lines must already be stripped of blank and comment lines.
func ClassifyLine(lines []string, i int) LineType {
	before := lineAt(lines, i-1)
	current := lineAt(lines, i)
	after := lineAt(lines, i+1)

	if endsWithComma(before) || endsWithComma(current) {
		return Folded
	}

	if isIndented(current) || isIndented(after) {
		return Multiline
	}

	return Simple
}

func lineAt(lines []string, i int) string {
	if i < 0 || i >= len(lines) {
		return ""
	}
	return lines[i]
}

func endsWithComma(s string) bool {
	return strings.HasSuffix(strings.TrimRightFunc(s, unicode.IsSpace), ",")
}

func isIndented(s string) bool {
	return s != "" && (s[0] == ' ' || s[0] == '\t')
}
