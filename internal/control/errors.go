package control

import (
	"errors"
	"fmt"
)

// ErrOrphanContinuation is reported for a continuation line that appears
// before any field has been opened.
var ErrOrphanContinuation = errors.New("continuation line before any field")

// ParseError describes malformed control input at a physical line.
type ParseError struct {
	Path string // empty when parsing bytes without a backing file
	Line int    // 1-based physical line number
	Text string // offending line, untrimmed
	Err  error
}

func (e *ParseError) Error() string {
	loc := fmt.Sprintf("line %d", e.Line)
	if e.Path != "" {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	return fmt.Sprintf("%s: %v: %q", loc, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
