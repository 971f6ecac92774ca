package tree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xdstructs/xtree/lib/infra"
)

func TestRedViolationValidate(t *testing.T) {
	tree := newIntRBTree()
	require.NoError(t, RedViolationValidate[int](tree))

	// red root
	tree.root = &rbNode[int]{value: 10, color: Red}
	tree.count = 1
	require.Error(t, RedViolationValidate[int](tree))

	// red node with a red child
	n10 := &rbNode[int]{value: 10}
	n5 := &rbNode[int]{value: 5, color: Red}
	n3 := &rbNode[int]{value: 3, color: Red}
	n10.left = n5
	n5.parent = n10
	n5.left = n3
	n3.parent = n5
	tree.root = n10
	tree.count = 3
	require.Error(t, RedViolationValidate[int](tree))

	n3.color = Black
	require.NoError(t, RedViolationValidate[int](tree))
}

func TestBlackViolationValidate(t *testing.T) {
	tree := newIntRBTree()
	require.NoError(t, BlackViolationValidate[int](tree))

	// one side carries an extra black node
	n10 := &rbNode[int]{value: 10}
	n5 := &rbNode[int]{value: 5}
	n10.left = n5
	n5.parent = n10
	tree.root = n10
	tree.count = 2
	require.Error(t, BlackViolationValidate[int](tree))

	n5.color = Red
	require.NoError(t, BlackViolationValidate[int](tree))
}

func TestOrderViolationValidate(t *testing.T) {
	tree := newIntRBTree()
	require.NoError(t, OrderViolationValidate[int](tree, infra.OrderedCompare[int]))

	n10 := &rbNode[int]{value: 10}
	n20 := &rbNode[int]{value: 20, color: Red}
	n10.left = n20
	n20.parent = n10
	tree.root = n10
	tree.count = 2
	require.Error(t, OrderViolationValidate[int](tree, infra.OrderedCompare[int]))

	n20.value = 5
	require.NoError(t, OrderViolationValidate[int](tree, infra.OrderedCompare[int]))
}

func TestValidateAggregates(t *testing.T) {
	tree := newIntRBTree()
	for _, v := range []int{4, 2, 6, 1, 3, 5, 7} {
		require.True(t, tree.Insert(v))
	}
	require.NoError(t, Validate[int](tree, infra.OrderedCompare[int]))

	// corrupt coloring and ordering at once
	tree.root.color = Red
	tree.root.value = 0
	err := Validate[int](tree, infra.OrderedCompare[int])
	require.Error(t, err)
	require.ErrorContains(t, err, "red violation")
	require.ErrorContains(t, err, "order violation")
}
