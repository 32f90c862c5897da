// Package kombi is a parser combinator engine.  Parsers are built
// by composing primitives (`Char`, `Literal`, `Integer`, ...) with
// combinators (`And`, `Or`, `Many`, `Bind`, `Lazy`, ...) and then
// invoked once against an input string.
//
// A parser either succeeds, returning a value and the remainder of
// the input, or fails.  Failure carries no information and never
// consumes input, which is what makes backtracking in `Or` free.
//
//	pair := kombi.And(kombi.Literal("foo"), kombi.Literal("bar"))
//	v, rest, ok := pair.Parse("foobarbaz")
//	// v == Pair{"foo", "bar"}, rest == "baz", ok == true
package kombi

// Parser is the signature of every parser.  It receives the input
// that is left to be parsed and returns the parsed value, the
// remainder of the input and whether it succeeded.  On failure the
// returned value is the zero value of `T` and the remainder is the
// input untouched.
//
// Any function with this signature is a first-class parser, so
// grammar rules can be plain Go functions too:
//
//	var ab kombi.Parser[string] = func(in string) (string, string, bool) { ... }
type Parser[T any] func(input string) (T, string, bool)

// Matcher is implemented by parsers of any item type.  It's used by
// combinators that run a parser only for the input it consumes and
// discard its value, like `AndSkip` and `SkipAnd`.
type Matcher interface {
	Match(input string) (string, bool)
}

// Pair holds the values of both sides of an `And`
type Pair[A, B any] struct {
	First  A
	Second B
}

// Parse runs `p` against `input`.  It does not require the whole
// input to be consumed, see `ParseAll` for that.
func Parse[T any](p Parser[T], input string) (T, string, bool) {
	return p(input)
}

// Parse runs the parser against `input`
func (p Parser[T]) Parse(input string) (T, string, bool) {
	return p(input)
}

// Match runs the parser discarding its value
func (p Parser[T]) Match(input string) (string, bool) {
	_, rest, ok := p(input)
	if !ok {
		return input, false
	}
	return rest, true
}

// Only the combinators that keep the item type have a method form.
// A method of `Parser[T]` returning `Parser[[]T]` would make the type
// instantiate itself with ever growing type arguments, which Go
// rejects, so `Many`, `Many1` and `Take` are only free functions,
// like the combinators that change the item type (`Map`, `And`,
// `SkipAnd`, `AndThen` and `Bind`).

// Or is the method form of `Or`
func (p Parser[T]) Or(q Parser[T]) Parser[T] { return Or(p, q) }

// AndSkip is the method form of `AndSkip`
func (p Parser[T]) AndSkip(q Matcher) Parser[T] { return AndSkip(p, q) }

// Filter fails when `pred` rejects the value produced by `p`.  It's
// `AndThen` for the cases in which the item type doesn't change.
func (p Parser[T]) Filter(pred func(T) bool) Parser[T] {
	return AndThen(p, func(v T) (T, bool) { return v, pred(v) })
}

func fail[T any](input string) (T, string, bool) {
	var zero T
	return zero, input, false
}
