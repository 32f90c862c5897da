package kombi

import (
	"errors"
	"fmt"
)

var (
	// ErrNoParse is returned by `ParseAll` when the parser doesn't
	// match the start of the input
	ErrNoParse = errors.New("no valid parse")

	// ErrTrailingInput is wrapped by the `ParsingError` returned by
	// `ParseAll` when the parser matched but didn't consume the
	// entire input
	ErrTrailingInput = errors.New("extra trailing input")
)

// ParsingError is the error returned when a top level parse can't
// account for the whole input
type ParsingError struct {
	Err    error
	Offset int
	Rest   string
}

// Error returns the human readable representation of a parsing error
func (e *ParsingError) Error() string {
	return fmt.Sprintf("%s @ %d", e.Err, e.Offset)
}

func (e *ParsingError) Unwrap() error { return e.Err }

// ParseAll runs `p` against `input` and requires it to consume the
// whole input.  The engine itself never requires that, this is the
// check consumers are expected to make on top of `Parse`.
func ParseAll[T any](p Parser[T], input string) (T, error) {
	var zero T
	v, rest, ok := p(input)
	if !ok {
		return zero, &ParsingError{Err: ErrNoParse, Rest: input}
	}
	if rest != "" {
		return zero, &ParsingError{
			Err:    ErrTrailingInput,
			Offset: len(input) - len(rest),
			Rest:   rest,
		}
	}
	return v, nil
}
