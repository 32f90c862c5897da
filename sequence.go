package kombi

// And runs `p` and then `q` on what `p` left.  It returns both
// values, and fails if either of them fails.
func And[T, U any](p Parser[T], q Parser[U]) Parser[Pair[T, U]] {
	return func(input string) (Pair[T, U], string, bool) {
		first, rest, ok := p(input)
		if !ok {
			return fail[Pair[T, U]](input)
		}
		second, rest, ok := q(rest)
		if !ok {
			return fail[Pair[T, U]](input)
		}
		return Pair[T, U]{First: first, Second: second}, rest, true
	}
}

// AndSkip runs `p` and then `q`, keeping only the value of `p`
func AndSkip[T any](p Parser[T], q Matcher) Parser[T] {
	return func(input string) (T, string, bool) {
		v, rest, ok := p(input)
		if !ok {
			return fail[T](input)
		}
		rest, ok = q.Match(rest)
		if !ok {
			return fail[T](input)
		}
		return v, rest, true
	}
}

// SkipAnd runs `p` and then `q`, keeping only the value of `q`
func SkipAnd[U any](p Matcher, q Parser[U]) Parser[U] {
	return func(input string) (U, string, bool) {
		rest, ok := p.Match(input)
		if !ok {
			return fail[U](input)
		}
		v, rest, ok := q(rest)
		if !ok {
			return fail[U](input)
		}
		return v, rest, true
	}
}
