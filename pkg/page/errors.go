package page

import (
	"errors"
	"fmt"
)

// ErrParse is the sentinel all parse failures wrap, so callers can test with
// errors.Is without caring about the offending line.
var ErrParse = errors.New("page: parse error")

// ParseError reports a line that matched a recognized keyword but lacked the
// required following token (a module or function name).
type ParseError struct {
	// Line is the offending source line, trailing whitespace trimmed.
	Line string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("page: failed to parse: %s", e.Line)
}

// Unwrap ties ParseError to the ErrParse sentinel.
func (e *ParseError) Unwrap() error {
	return ErrParse
}
