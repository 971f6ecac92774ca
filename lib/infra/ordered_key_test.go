package infra

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderedCompare(t *testing.T) {
	require.Equal(t, int64(0), OrderedCompare(1, 1))
	require.Equal(t, int64(-1), OrderedCompare(1, 2))
	require.Equal(t, int64(1), OrderedCompare(2, 1))

	require.Equal(t, int64(-1), OrderedCompare("abc", "abd"))
	require.Equal(t, int64(1), OrderedCompare("b", "a"))
	require.Equal(t, int64(0), OrderedCompare("x", "x"))

	require.Equal(t, int64(-1), OrderedCompare(1.5, 2.5))
}

func TestReverseOrderedCompare(t *testing.T) {
	require.Equal(t, int64(0), ReverseOrderedCompare(1, 1))
	require.Equal(t, int64(1), ReverseOrderedCompare(1, 2))
	require.Equal(t, int64(-1), ReverseOrderedCompare(2, 1))
}
