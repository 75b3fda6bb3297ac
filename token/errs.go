package token

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedRun = errors.New("malformed digit run")
	ErrOverflow     = errors.New("number overflows uint64")
)

// Error is the panic value used when a digit run cannot be parsed.  The
// extractor only emits digits, so any such error is an internal invariant
// violation or a run wider than uint64.
type Error struct {
	Err  error
	Pos  Pos
	Text string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %q at %s", e.Err.Error(), e.Text, e.Pos)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func runErr(err error, line, col int, text string) *Error {
	return &Error{Err: err, Pos: Pos{Line: line, Col: col}, Text: text}
}
