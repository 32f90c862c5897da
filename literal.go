package kombi

import (
	"strconv"
	"strings"
)

// Literal matches the exact string `s` at the start of the input
// and returns it
func Literal(s string) Parser[string] {
	return func(input string) (string, string, bool) {
		if !strings.HasPrefix(input, s) {
			return fail[string](input)
		}
		return s, input[len(s):], true
	}
}

// Integer matches an optional `-` followed by one or more decimal
// digits.  It fails if the digits don't fit in an `int`.
func Integer() Parser[int] {
	digits := Runes(Many1(Digit()))
	neg := AndThen(SkipAnd(Char('-'), digits), func(s string) (int, bool) {
		return atoi("-" + s)
	})
	pos := AndThen(digits, atoi)
	return Or(neg, pos)
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Succeed doesn't consume any input and always returns `v`
func Succeed[T any](v T) Parser[T] {
	return func(input string) (T, string, bool) {
		return v, input, true
	}
}

// Fail never succeeds
func Fail[T any]() Parser[T] {
	return fail[T]
}

// End succeeds only when there's no input left
func End() Parser[struct{}] {
	return func(input string) (struct{}, string, bool) {
		if input != "" {
			return fail[struct{}](input)
		}
		return struct{}{}, input, true
	}
}
