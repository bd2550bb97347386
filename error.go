package scanbuf

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange = errors.New("out of range")
	ErrDecode     = errors.New("input is not valid UTF-8")
)

// RangeError is returned when a requested window does not fit inside the
// buffer. It is recoverable; callers typically roll back and try another rule.
type RangeError struct {
	Op       string
	From, To int
	Len      int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s [%d:%d]: %s (buffer length %d)", e.Op, e.From, e.To, ErrOutOfRange, e.Len)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

type DecodeError struct {
	Offset int // byte offset of the first invalid sequence
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s at byte offset %d", ErrDecode, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return ErrDecode
}

// PatternError means the caller supplied a regular expression that does not
// compile. It is a programming error and should not be treated as a failed
// match.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %s", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
