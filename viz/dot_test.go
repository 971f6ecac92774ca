package viz_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xdstructs/xtree/lib/tree"
	"github.com/xdstructs/xtree/viz"
)

func TestDotStringEmptyTree(t *testing.T) {
	rbtree := tree.NewOrderedRBTree[int]()
	out := viz.DotString[int](rbtree, "empty")
	require.True(t, strings.HasPrefix(out, "digraph empty {"))
	require.True(t, strings.HasSuffix(strings.TrimSpace(out), "}"))
	require.NotContains(t, out, "fillcolor=")
}

func TestDotStringColorsAndEdges(t *testing.T) {
	rbtree := tree.NewOrderedRBTree[int]()
	for _, v := range []int{2, 1, 3} {
		require.True(t, rbtree.Insert(v))
	}
	// 2 is the black root, 1 and 3 are red children

	out := viz.DotString[int](rbtree, "rbtree")
	require.Contains(t, out, "digraph rbtree {")
	require.Contains(t, out, "<B>2</B>")
	require.Contains(t, out, "fillcolor=\"black\"")
	require.Equal(t, 2, strings.Count(out, "fillcolor=\"red\""))
	// root connects to both children
	require.Contains(t, out, "n0 -> n1;")
	require.Contains(t, out, "n0 -> n2;")
}

func TestWriteDotNilTree(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, viz.WriteDot[int](&sb, nil, "nil"))
	require.Contains(t, sb.String(), "digraph nil {")
}
