package kombi

import (
	"unicode"
	"unicode/utf8"
)

// Any matches any character, and fails on empty input
func Any() Parser[rune] {
	return func(input string) (rune, string, bool) {
		if input == "" {
			return fail[rune](input)
		}
		r, size := utf8.DecodeRuneInString(input)
		return r, input[size:], true
	}
}

// Satisfy matches one character for which `pred` returns true.  It
// doesn't consume anything when the predicate rejects the character.
func Satisfy(pred func(rune) bool) Parser[rune] {
	return AndThen(Any(), func(r rune) (rune, bool) { return r, pred(r) })
}

// Char matches exactly the character `c`
func Char(c rune) Parser[rune] {
	return Satisfy(func(r rune) bool { return r == c })
}

// Not matches any character but `c`
func Not(c rune) Parser[rune] {
	return Satisfy(func(r rune) bool { return r != c })
}

// Digit matches a decimal digit between `0` and `9`
func Digit() Parser[rune] {
	return Satisfy(isDigit)
}

// Lower matches a lowercase letter
func Lower() Parser[rune] {
	return Satisfy(unicode.IsLower)
}

// Upper matches an uppercase letter
func Upper() Parser[rune] {
	return Satisfy(unicode.IsUpper)
}

// Alphanumeric matches a decimal digit, a lowercase or an uppercase
// letter
func Alphanumeric() Parser[rune] {
	return Satisfy(func(r rune) bool {
		return isDigit(r) || unicode.IsLower(r) || unicode.IsUpper(r)
	})
}

// Whitespace matches a single white space character as defined by
// `unicode.IsSpace`
func Whitespace() Parser[rune] {
	return Satisfy(unicode.IsSpace)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
