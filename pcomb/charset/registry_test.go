package charset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnicodeShortAndLongAlias(t *testing.T) {
	short, ok := UnicodeTable.Lookup("Ll")
	require.True(t, ok)
	long, ok := UnicodeTable.Lookup("lowercase_letter")
	require.True(t, ok)
	require.Equal(t, short.Ranges(), long.Ranges())
	require.True(t, short.Member('a'))
	require.False(t, short.Member('A'))
}

func TestUnicodePosixAlnum(t *testing.T) {
	alnum, ok := UnicodeTable.Lookup("alnum")
	require.True(t, ok)
	require.True(t, alnum.Member('a'))
	require.True(t, alnum.Member('Z'))
	require.True(t, alnum.Member('7'))
	require.False(t, alnum.Member(' '))
}

func TestLatin1PosixNames(t *testing.T) {
	names := []string{"alnum", "alpha", "ascii", "blank", "cntrl", "digit",
		"graph", "lower", "print", "punct", "space", "upper", "word", "xdigit"}
	for _, n := range names {
		_, ok := Latin1Table.Lookup(n)
		require.True(t, ok, "missing latin1 class %q", n)
	}
}

func TestLatin1AlphaExcludesDigits(t *testing.T) {
	alpha, _ := Latin1Table.Lookup("alpha")
	require.True(t, alpha.Member('m'))
	require.True(t, alpha.Member('M'))
	require.False(t, alpha.Member('5'))
}

func TestLatin1Word(t *testing.T) {
	word, _ := Latin1Table.Lookup("word")
	require.True(t, word.Member('_'))
	require.True(t, word.Member('a'))
	require.False(t, word.Member(' '))
}
