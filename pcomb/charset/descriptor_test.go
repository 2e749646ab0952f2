package charset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescriptorIntResolve(t *testing.T) {
	s, err := Int('x').Resolve(Latin1Table)
	require.NoError(t, err)
	require.True(t, s.Member('x'))
	require.False(t, s.Member('y'))
}

func TestDescriptorNestedListFlattens(t *testing.T) {
	d := List(Int('a'), Span('0', '9'), List(Name("upper")))
	s, err := d.Resolve(Latin1Table)
	require.NoError(t, err)
	require.True(t, s.Member('a'))
	require.True(t, s.Member('5'))
	require.True(t, s.Member('Q'))
	require.False(t, s.Member('b'))
}

func TestDescriptorUnknownNameErrors(t *testing.T) {
	_, err := Name("not_a_class").Resolve(Latin1Table)
	require.Error(t, err)
}

func TestDescriptorInvertedRangeErrors(t *testing.T) {
	_, err := Span('z', 'a').Resolve(Latin1Table)
	require.Error(t, err)
}

func TestDescriptorSingleAndMulti(t *testing.T) {
	single := Int('q')
	_, ok := single.Single()
	require.True(t, ok)
	require.False(t, single.Multi())

	multi := List(Int('a'), Int('b'))
	require.True(t, multi.Multi())
	_, ok = multi.Single()
	require.False(t, ok)
}

func TestDescriptorRender(t *testing.T) {
	require.Equal(t, "`x'", Int('x').Render())
	require.Equal(t, "alpha", Name("alpha").Render())
	require.Equal(t, "`a' or `b'", List(Int('a'), Int('b')).Render())
}
