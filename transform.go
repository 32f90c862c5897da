package kombi

// Map transforms the value produced by `p` with `fn`
func Map[T, U any](p Parser[T], fn func(T) U) Parser[U] {
	return func(input string) (U, string, bool) {
		v, rest, ok := p(input)
		if !ok {
			return fail[U](input)
		}
		return fn(v), rest, true
	}
}

// AndThen transforms the value produced by `p` with `fn`, failing if
// either `p` fails or `fn` rejects the value.  It's meant for
// validating and converting raw matches.
func AndThen[T, U any](p Parser[T], fn func(T) (U, bool)) Parser[U] {
	return func(input string) (U, string, bool) {
		v, rest, ok := p(input)
		if !ok {
			return fail[U](input)
		}
		u, ok := fn(v)
		if !ok {
			return fail[U](input)
		}
		return u, rest, true
	}
}

// Bind runs `p` and passes its value to `fn`, which builds the parser
// that will consume what `p` left.  This makes it possible to parse
// context sensitive input, like a length followed by that many
// characters:
//
//	Bind(AndSkip(Integer(), Char(':')), func(n int) Parser[[]rune] {
//		return Take(Any(), n)
//	})
func Bind[T, U any](p Parser[T], fn func(T) Parser[U]) Parser[U] {
	return func(input string) (U, string, bool) {
		v, rest, ok := p(input)
		if !ok {
			return fail[U](input)
		}
		u, rest, ok := fn(v)(rest)
		if !ok {
			return fail[U](input)
		}
		return u, rest, true
	}
}

// Consumed returns the exact slice of the input matched by `p`
// instead of its value.  Unlike `Runes`, it keeps bytes that aren't
// valid UTF-8 as they are.
func Consumed[T any](p Parser[T]) Parser[string] {
	return func(input string) (string, string, bool) {
		rest, ok := p.Match(input)
		if !ok {
			return fail[string](input)
		}
		return input[:len(input)-len(rest)], rest, true
	}
}

// Runes turns the characters collected by `p` into a string
func Runes(p Parser[[]rune]) Parser[string] {
	return Map(p, func(rs []rune) string { return string(rs) })
}
