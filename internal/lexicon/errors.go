package lexicon

import (
	"errors"
	"fmt"
)

var (
	// ErrLoad classifies every failure to build a Store from a file.
	ErrLoad = errors.New("dictionary load failed")

	// ErrMalformedLine is returned by a LineSplitter for a line that holds no
	// recognizable separator. Parse aborts on it.
	ErrMalformedLine = errors.New("malformed line")

	// ErrSkipLine is returned by a LineSplitter for lines that carry no entry
	// (comments, format headers). Parse ignores them.
	ErrSkipLine = errors.New("skip line")
)

// LineError reports the line that aborted a parse.
type LineError struct {
	Line int    // 1-based line number
	Text string // raw line content
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error { return e.Err }

// loadError attaches ErrLoad to an underlying cause so both stay matchable
// with errors.Is.
type loadError struct {
	path string
	err  error
}

func (e *loadError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrLoad, e.path, e.err)
}

func (e *loadError) Unwrap() []error { return []error{ErrLoad, e.err} }
