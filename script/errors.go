package script

import (
	"errors"
	"fmt"
)

var (
	ErrIO       = errors.New("io error")
	ErrParse    = errors.New("parse error")
	ErrSemantic = errors.New("invalid instruction")
)

// LineError tags a script failure with its 1-based line number.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func lineErr(line int, err error) error {
	return &LineError{Line: line, Err: err}
}
