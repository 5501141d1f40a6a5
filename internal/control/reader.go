package control

import (
	"strings"
)

// Parse reads a control document.
//
// Blank lines and "#" comment lines are dropped first; the remaining lines
// are classified with ClassifyLine and folded into Fields. The most recently
// opened field receives continuation lines. An indented line never opens a
// field, even when it contains a colon; it is content of the open field.
// Odd input degrades into best-effort values; the only error is a
// continuation line with no field to attach to, reported as a *ParseError.
func Parse(data []byte) (*Fields, error) {
	lines, lineNumbers := contentLines(string(data))
	fields := NewFields()

	var openKey string
	open := false

	for i, line := range lines {
		key, value, hasColon := cutField(line)

		switch ClassifyLine(lines, i) {
		case Simple:
			if !hasColon {
				// No separator: keep the line under the empty key.
				key, value = "", strings.TrimSpace(line)
			}
			fields.Set(key, Text(value))
			openKey, open = key, true

		case Folded:
			if hasColon && !isIndented(line) && !strings.Contains(key, "${") {
				fields.Set(key, List(trimComma(value)))
				openKey, open = key, true
				continue
			}
			if !open {
				return nil, &ParseError{Line: lineNumbers[i], Text: line, Err: ErrOrphanContinuation}
			}
			current, _ := fields.Get(openKey)
			fields.Set(openKey, appendItem(current, trimComma(strings.TrimSpace(line))))

		case Multiline:
			if hasColon && !isIndented(line) {
				fields.Set(key, Text(value))
				openKey, open = key, true
				continue
			}
			if !open {
				return nil, &ParseError{Line: lineNumbers[i], Text: line, Err: ErrOrphanContinuation}
			}
			current, _ := fields.Get(openKey)
			fields.Set(openKey, appendLine(current, strings.TrimSpace(line)))
		}
	}

	return fields, nil
}

// contentLines splits text into physical lines and keeps only those that
// carry content, together with their 1-based line numbers.
func contentLines(text string) ([]string, []int) {
	var lines []string
	var numbers []int
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
		numbers = append(numbers, i+1)
	}
	return lines, numbers
}

// cutField splits a line at its first colon into a trimmed key and value.
func cutField(line string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(line, ":")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), true
}

func trimComma(s string) string {
	return strings.TrimSpace(strings.TrimSuffix(s, ","))
}
