package kombi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios(t *testing.T) {
	t.Run("char matches the first character", func(t *testing.T) {
		v, rest, ok := Char('a').Parse("abc")
		require.True(t, ok)
		assert.Equal(t, 'a', v)
		assert.Equal(t, "bc", rest)
	})

	t.Run("char fails on a different character", func(t *testing.T) {
		_, rest, ok := Char('a').Parse("xyz")
		assert.False(t, ok)
		assert.Equal(t, "xyz", rest)
	})

	t.Run("negative integer", func(t *testing.T) {
		v, rest, ok := Integer().Parse("-42rest")
		require.True(t, ok)
		assert.Equal(t, -42, v)
		assert.Equal(t, "rest", rest)
	})

	t.Run("many1 fails without a single match", func(t *testing.T) {
		_, _, ok := Many1(Digit()).Parse("abc")
		assert.False(t, ok)
	})

	t.Run("and keeps both values", func(t *testing.T) {
		v, rest, ok := And(Literal("foo"), Literal("bar")).Parse("foobarbaz")
		require.True(t, ok)
		assert.Equal(t, Pair[string, string]{"foo", "bar"}, v)
		assert.Equal(t, "baz", rest)
	})

	t.Run("take fails on short input", func(t *testing.T) {
		_, _, ok := Take(Any(), 3).Parse("ab")
		assert.False(t, ok)
	})
}

func TestParseFunction(t *testing.T) {
	v, rest, ok := Parse(Literal("let"), "let x")
	require.True(t, ok)
	assert.Equal(t, "let", v)
	assert.Equal(t, " x", rest)
}

func TestMatch(t *testing.T) {
	rest, ok := Integer().Match("123abc")
	require.True(t, ok)
	assert.Equal(t, "abc", rest)

	rest, ok = Integer().Match("abc")
	assert.False(t, ok)
	assert.Equal(t, "abc", rest)
}

func TestUserDefinedParser(t *testing.T) {
	// any function with the right shape is a parser
	var word Parser[string] = func(input string) (string, string, bool) {
		i := strings.IndexByte(input, ' ')
		if i <= 0 {
			return "", input, false
		}
		return input[:i], input[i:], true
	}
	v, rest, ok := AndSkip(word, Whitespace()).Parse("hello world")
	require.True(t, ok)
	assert.Equal(t, "hello", v)
	assert.Equal(t, "world", rest)
}

func TestFilter(t *testing.T) {
	even := Integer().Filter(func(n int) bool { return n%2 == 0 })

	v, rest, ok := even.Parse("42!")
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, "!", rest)

	_, rest, ok = even.Parse("41!")
	assert.False(t, ok)
	assert.Equal(t, "41!", rest)
}

// parsers used by the property tests below, covering primitives and
// combinators that consume different amounts of input
var sampleParsers = map[string]Parser[string]{
	"any":     Runes(Take(Any(), 1)),
	"digits":  Runes(Many1(Digit())),
	"spaces":  Runes(Many(Whitespace())),
	"literal": Literal("ab"),
	"integer": Map(Integer(), func(n int) string { return string(rune('0' + n%10)) }),
	"pair": Map(And(Lower(), Upper()), func(p Pair[rune, rune]) string {
		return string([]rune{p.First, p.Second})
	}),
	"bind": Bind(AndSkip(Integer(), Char(':')), func(n int) Parser[string] {
		return Runes(Take(Any(), n))
	}),
}

var sampleInputs = []string{
	"",
	"a",
	"ab",
	"abc",
	"aB",
	"123",
	"-7x",
	"   x",
	"2:hey",
	"9:short",
	"ünïcode",
}

func TestConsumptionMonotonicity(t *testing.T) {
	for name, p := range sampleParsers {
		for _, input := range sampleInputs {
			_, rest, ok := p.Parse(input)
			if ok {
				assert.True(t, strings.HasSuffix(input, rest), "%s(%q) left %q", name, input, rest)
				assert.LessOrEqual(t, len(rest), len(input))
			} else {
				assert.Equal(t, input, rest, "%s(%q) consumed input on failure", name, input)
			}
		}
	}
}

func TestReferentialTransparency(t *testing.T) {
	for name, p := range sampleParsers {
		for _, input := range sampleInputs {
			v1, r1, ok1 := p.Parse(input)
			v2, r2, ok2 := p.Parse(input)
			assert.Equal(t, ok1, ok2, name)
			assert.Equal(t, v1, v2, name)
			assert.Equal(t, r1, r2, name)
		}
	}
}
