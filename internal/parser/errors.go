package parser

import (
	"fmt"
)

// LineError records a candidate line that matched a pattern but failed
// numeric validation. The line is dropped; the document is not aborted.
type LineError struct {
	Line     int
	Text     string
	Field    string
	Strategy string
	Err      error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s line %d: invalid %s: %v", e.Strategy, e.Line, e.Field, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// newLineError creates a LineError. line is 1-based within the non-blank lines.
func newLineError(strategy string, line int, text, field string, err error) *LineError {
	return &LineError{
		Err:      err,
		Line:     line,
		Text:     text,
		Field:    field,
		Strategy: strategy,
	}
}
