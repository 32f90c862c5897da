package kombi

// Or returns the result of `p` if it succeeds, otherwise it runs `q`
// against the same input `p` received.
func Or[T any](p, q Parser[T]) Parser[T] {
	return func(input string) (T, string, bool) {
		if v, rest, ok := p(input); ok {
			return v, rest, true
		}
		return q(input)
	}
}

// Choice walks through `ps` and returns the result of the first one
// to succeed.  Each alternative starts from the same input, and the
// choice fails if no alternatives match.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	return func(input string) (T, string, bool) {
		for _, p := range ps {
			if v, rest, ok := p(input); ok {
				return v, rest, true
			}
		}
		return fail[T](input)
	}
}
