package kombi

// Many will call `p` until it fails, collecting and returning all
// the successful outputs.  It always succeeds, with an empty slice
// if `p` never matches.
//
// An iteration that succeeds without consuming any input ends the
// loop after its value is collected, otherwise a parser like
// `Succeed(x)` would repeat forever.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(input string) ([]T, string, bool) {
		output, rest := repeat(p, input)
		return output, rest, true
	}
}

// Many1 is `Many` but it fails if `p` doesn't match at least once
func Many1[T any](p Parser[T]) Parser[[]T] {
	return func(input string) ([]T, string, bool) {
		output, rest := repeat(p, input)
		if len(output) == 0 {
			return fail[[]T](input)
		}
		return output, rest, true
	}
}

func repeat[T any](p Parser[T], input string) ([]T, string) {
	output := []T{}
	for {
		v, rest, ok := p(input)
		if !ok {
			return output, input
		}
		output = append(output, v)
		if len(rest) == len(input) {
			return output, rest
		}
		input = rest
	}
}

// Take matches `p` exactly `n` times.  It fails if `p` can't be
// applied `n` times in a row, and it also fails when `n` isn't
// positive.
func Take[T any](p Parser[T], n int) Parser[[]T] {
	return func(input string) ([]T, string, bool) {
		if n <= 0 {
			return fail[[]T](input)
		}
		// `n` may come from the input itself, so it can't be trusted
		// for sizing the output
		output := make([]T, 0, min(n, len(input)))
		rest := input
		for i := 0; i < n; i++ {
			v, next, ok := p(rest)
			if !ok {
				return fail[[]T](input)
			}
			output = append(output, v)
			rest = next
		}
		return output, rest, true
	}
}
