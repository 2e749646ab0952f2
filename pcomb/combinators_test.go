package pcomb

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"j5.nz/pcomb/pcomb/charset"
)

func TestSeqOfThreeStrings(t *testing.T) {
	p := Seq(String("foo"), String("bar"), String("baz"))
	r := Match(UTF8Input("foobarbaz"), p)
	require.True(t, r.OK())
	require.Equal(t, []string{"foo", "bar", "baz"}, r.Value)
}

func TestMapManyDigitsToInt(t *testing.T) {
	digits := Many1(OneOf(charset.Latin1Table, charset.Name("digit")), Unbounded)
	toInt := Map(digits, func(ds []rune) int {
		n := 0
		for _, d := range ds {
			n = n*10 + int(d-'0')
		}
		return n
	})
	r := Match(Latin1Input("123abc"), toInt)
	require.True(t, r.OK())
	require.Equal(t, 123, r.Value)
	require.Equal(t, 3, r.Rest.Pos)
}

func TestBetweenBracketedSepList(t *testing.T) {
	digit := Map(OneOf(charset.Latin1Table, charset.Name("digit")), func(r rune) int { return int(r - '0') })
	p := Between(Char('['), Char(']'), Sep1(digit, Char(',')))
	r := Match(Latin1Input("[1,2,3]"), p)
	require.True(t, r.OK())
	require.Equal(t, []int{1, 2, 3}, r.Value)
}

func TestAlt2PrefersFirstSuccess(t *testing.T) {
	p := Alt2(String("foo"), String("bar"))
	r := Match(UTF8Input("bar"), p)
	require.True(t, r.OK())
	require.Equal(t, "bar", r.Value)
}

func TestAltMergesErrorsAtSamePosition(t *testing.T) {
	p := Alt(String("foo"), String("bar"))
	r := Match(UTF8Input("baz"), p)
	require.False(t, r.OK())
	require.Equal(t, "`foo' or `bar'", r.Err.Content.Text)
}

func TestManyStopsOnNoProgress(t *testing.T) {
	zeroWidth := Return(struct{}{})
	p := Many(zeroWidth, Any0())
	r := Match(UTF8Input("x"), p)
	require.True(t, r.OK())
	require.Len(t, r.Value, 0)
	require.Equal(t, 0, r.Rest.Pos)
}

func TestReduceSumsDigits(t *testing.T) {
	digit := Map(OneOf(charset.Latin1Table, charset.Name("digit")), func(r rune) int { return int(r - '0') })
	sum := Reduce(digit, 0, func(v, acc int) int { return acc + v }, AtLeast(1))
	r := Match(Latin1Input("123"), sum)
	require.True(t, r.OK())
	require.Equal(t, 6, r.Value)
}

func TestManyUntilStopsAtEnd(t *testing.T) {
	p := ManyUntil(Any(), String("END"))
	r := Match(UTF8Input("abcEND"), p)
	require.True(t, r.OK())
	require.Equal(t, []rune{'a', 'b', 'c'}, r.Value)
	require.Equal(t, 3, r.Rest.Pos)
}

func TestSepEnd1AcceptsTrailingSeparator(t *testing.T) {
	digit := Map(OneOf(charset.Latin1Table, charset.Name("digit")), func(r rune) int { return int(r - '0') })
	p := SepEnd1(digit, Char(','))
	r := Match(Latin1Input("1,2,3,"), p)
	require.True(t, r.OK())
	require.Equal(t, []int{1, 2, 3}, r.Value)
}

func TestChainLeftIsLeftAssociative(t *testing.T) {
	digit := Map(OneOf(charset.Latin1Table, charset.Name("digit")), func(r rune) int { return int(r - '0') })
	minus := Map(Char('-'), func(rune) func(int, int) int {
		return func(a, b int) int { return a - b }
	})
	p := ChainLeft(digit, minus)
	r := Match(Latin1Input("9-3-2"), p)
	require.True(t, r.OK())
	require.Equal(t, 4, r.Value) // (9-3)-2
}

func TestLookaheadDoesNotConsume(t *testing.T) {
	p := Lookahead(String("foo"))
	r := Match(UTF8Input("foobar"), p)
	require.True(t, r.OK())
	require.Equal(t, 0, r.Rest.Pos)
}

func TestExcludeFailsWhenInnerSucceeds(t *testing.T) {
	p := Exclude(String("foo"))
	r := Match(UTF8Input("foobar"), p)
	require.False(t, r.OK())
}

func TestBindSequencesDependentParser(t *testing.T) {
	count := Map(OneOf(charset.Latin1Table, charset.Name("digit")), func(r rune) int { return int(r - '0') })
	p := Bind(count, func(n int) Parser[string] {
		return StringOf(Any(), Exactly(n))
	})
	r := Match(Latin1Input("3abc"), p)
	require.True(t, r.OK())
	require.Equal(t, "abc", r.Value)
}

func TestLabelRewritesUnconsumedFailure(t *testing.T) {
	p := Label(String("foo"), "a greeting")
	r := Match(UTF8Input("xyz"), p)
	require.False(t, r.OK())
	require.Equal(t, "a greeting", r.Err.Content.Text)
}

func TestParseWithAdaptsExternalFunction(t *testing.T) {
	p := ParseWith("int", func(s string) (int, string, error) {
		i := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == 0 {
			return 0, s, strconvErr{}
		}
		n, _ := strconv.Atoi(s[:i])
		return n, s[i:], nil
	})
	r := Match(UTF8Input("42rest"), p)
	require.True(t, r.OK())
	require.Equal(t, 42, r.Value)
	require.Equal(t, 2, r.Rest.Pos)
}

type strconvErr struct{}

func (strconvErr) Error() string { return "no digits" }
