package durationstring

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat reports input that does not decompose into number+unit groups.
	ErrFormat = errors.New("missing time duration format, must be multiples of `[0-9]+(ns|us|ms|[smhdwy])`")

	// ErrOverflow reports a group or total that does not fit in a time.Duration.
	ErrOverflow = errors.New("number is too large to fit in target type")
)

// ParseError records a failed Parse and the reason for it. Err is ErrFormat,
// ErrOverflow or the *strconv.NumError of a number that is not a valid
// unsigned 64-bit integer.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid duration %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
