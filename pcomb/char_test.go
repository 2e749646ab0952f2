package pcomb

import (
	"testing"

	"github.com/stretchr/testify/require"
	"j5.nz/pcomb/pcomb/charset"
)

func TestAnyDecodesMultiByteUTF8(t *testing.T) {
	r := Match(UTF8Input("über"), Any())
	require.True(t, r.OK())
	require.Equal(t, 'ü', r.Value)
	require.Equal(t, 1, r.Rest.Pos)
}

func TestAnyFailsOnEmpty(t *testing.T) {
	r := Match(UTF8Input(""), Any())
	require.False(t, r.OK())
	require.Equal(t, "EOF", r.Err.Content.Text)
}

func TestCharMatchesExact(t *testing.T) {
	r := Match(UTF8Input("x"), Char('x'))
	require.True(t, r.OK())
	require.Equal(t, 'x', r.Value)
}

func TestCharFailureMessage(t *testing.T) {
	r := Match(UTF8Input("y"), Char('x'))
	require.False(t, r.OK())
	require.Equal(t, "`x' expected at 1:1", r.Err.FullMessage([]byte("y"), UTF8Input("").Dec, DefaultRenderOptions))
}

func TestOneOfLatin1Alpha(t *testing.T) {
	p := Many(OneOf(charset.Latin1Table, charset.Name("alpha")), AtLeast(1))
	r := Match(Latin1Input("foo1"), p)
	require.True(t, r.OK())
	require.Equal(t, []rune{'f', 'o', 'o'}, r.Value)
	require.Equal(t, 3, r.Rest.Pos)
}

func TestOneOfEmptyInputError(t *testing.T) {
	r := Match(Latin1Input(""), OneOf(charset.Latin1Table, charset.Name("lower")))
	require.False(t, r.OK())
	require.Equal(t, "lower", r.Err.Content.Text)
}

func TestNoneOfExcludesClass(t *testing.T) {
	r := Match(Latin1Input("5"), NoneOf(charset.Latin1Table, charset.Name("alpha")))
	require.True(t, r.OK())
	require.Equal(t, '5', r.Value)
}

func TestSatisfyNamedError(t *testing.T) {
	p := Satisfy(func(r rune) bool { return r == 'z' }, "'z'")
	r := Match(UTF8Input("a"), p)
	require.False(t, r.OK())
	require.Equal(t, "'z'", r.Err.Content.Text)
}

func TestStringMatchesWholeLiteral(t *testing.T) {
	r := Match(UTF8Input("foobar"), String("foo"))
	require.True(t, r.OK())
	require.Equal(t, "foo", r.Value)
	require.Equal(t, 3, r.Rest.Pos)
}

func TestStringFailsOnMismatch(t *testing.T) {
	r := Match(UTF8Input("fxobar"), String("foo"))
	require.False(t, r.OK())
}

func TestEOFSucceedsOnlyAtEnd(t *testing.T) {
	require.True(t, Match(UTF8Input(""), EOF()).OK())
	require.False(t, Match(UTF8Input("x"), EOF()).OK())
}
