package pcomb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContentMessage(t *testing.T) {
	require.Equal(t, "digit expected", Content{Expected, "digit"}.Message())
	require.Equal(t, "unexpected `x'", Content{Unexpected, "`x'"}.Message())
	require.Equal(t, "ad-hoc failure", Content{Message, "ad-hoc failure"}.Message())
}

func TestErrorAltSamePositionMerges(t *testing.T) {
	a := ExpectedAt(3, "digit")
	b := ExpectedAt(3, "letter")
	require.Equal(t, ExpectedAt(3, "digit or letter"), a.Alt(b))
}

func TestErrorAltFurthestWins(t *testing.T) {
	a := ExpectedAt(1, "digit")
	b := ExpectedAt(5, "letter")
	require.Equal(t, b, a.Alt(b))
	require.Equal(t, b, b.Alt(a))
}

func TestErrorAltTieNonMergeableRightWins(t *testing.T) {
	a := UnexpectedAt(2, "`!'")
	b := ExpectedAt(2, "digit")
	require.Equal(t, b, a.Alt(b))
}

func TestErrorFullMessage(t *testing.T) {
	src := []byte("ab\ncd")
	e := ExpectedAt(4, "digit")
	msg := e.FullMessage(src, Latin1Input("").Dec, DefaultRenderOptions)
	require.Equal(t, "digit expected at 2:2", msg)
}
