package kombi

// Lazy defers building a parser until it's invoked.  `build` is
// called every time the returned parser runs, and the parser it
// returns is discarded afterwards.
//
// This is what allows rules to reference themselves.  Without it, a
// rule that contains itself would recurse forever while being built,
// before looking at any input:
//
//	var nested func() Parser[int]
//	nested = func() Parser[int] {
//		inner := Map(Lazy(nested), func(n int) int { return n + 1 })
//		return Or(SkipAnd(Char('('), AndSkip(inner, Char(')'))), Succeed(0))
//	}
func Lazy[T any](build func() Parser[T]) Parser[T] {
	return func(input string) (T, string, bool) {
		return build()(input)
	}
}
