package tree

import (
	"errors"

	"go.uber.org/multierr"

	"github.com/xdstructs/xtree/lib/infra"
)

func isNilLeaf[T any](node RBNode[T]) bool {
	if node == nil {
		return true
	}
	n, ok := node.(*rbNode[T])
	return ok && n == nil
}

func isBlack[T any](node RBNode[T]) bool {
	return isNilLeaf[T](node) || node.Color() == Black
}

func isRed[T any](node RBNode[T]) bool {
	return !isNilLeaf[T](node) && node.Color() == Red
}

func blackDepthTo[T any](target, to RBNode[T]) int {
	depth := 0
	for aux := target; aux != to; aux = aux.Parent() {
		if isBlack[T](aux) {
			depth++
		}
	}
	return depth
}

// rbtree rule validation utilities.

// Inorder traversal to validate the rbtree color properties: the root
// is black and no red node has a red child.
func RedViolationValidate[T any](tree RBTree[T]) error {
	size := tree.Len()
	var aux RBNode[T] = tree.Root()
	if size < 0 || isNilLeaf[T](aux) {
		return nil
	}

	if isRed[T](aux) {
		return errors.New("rbtree red violation: red root")
	}

	stack := make([]RBNode[T], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; !isNilLeaf[T](aux); aux = aux.Left() {
		stack = append(stack, aux)
	}

	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; isRed[T](aux) {
			if isRed[T](aux.Left()) || isRed[T](aux.Right()) {
				return errors.New("rbtree red violation")
			}
		}

		stack = stack[:size-1]
		if aux.Right() != nil {
			for aux = aux.Right(); aux != nil; aux = aux.Left() {
				stack = append(stack, aux)
			}
		}
	}
	return nil
}

// BFS traversal to load all leaves.
func bfsLeaves[T any](tree RBTree[T]) []RBNode[T] {
	size := tree.Len()
	var aux RBNode[T] = tree.Root()
	if size < 0 || isNilLeaf[T](aux) {
		return nil
	}

	leaves := make([]RBNode[T], 0, size>>1+1)
	stack := make([]RBNode[T], 0, size>>1)
	defer func() {
		clear(stack)
	}()
	stack = append(stack, aux)

	for len(stack) > 0 {
		aux = stack[0]
		l, r := aux.Left(), aux.Right()
		if /* nil leaves, keep one */ isNilLeaf[T](l) || isNilLeaf[T](r) {
			leaves = append(leaves, aux)
		}
		if !isNilLeaf[T](l) {
			stack = append(stack, l)
		}
		if !isNilLeaf[T](r) {
			stack = append(stack, r)
		}
		stack = stack[1:]
	}
	return leaves
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).

	        [13]
			/  \
		 <8>    [15]
		 / \    /  \
	  [6] [11] [14] [17]
	  /              /
	<1>            [16]

Each path from a leaf node up to the root passes the same number of
black nodes.
*/
func BlackViolationValidate[T any](tree RBTree[T]) error {
	leaves := bfsLeaves[T](tree)
	if leaves == nil {
		return nil
	}

	blackDepth := blackDepthTo[T](leaves[0], tree.Root())
	for i := 1; i < len(leaves); i++ {
		if blackDepthTo[T](leaves[i], tree.Root()) != blackDepth {
			return errors.New("rbtree black violation")
		}
	}
	return nil
}

// Inorder traversal to validate the binary-search-tree ordering under
// the comparator the tree was built with. Equal values are legal, they
// stack up through the descend-left insertion rule.
func OrderViolationValidate[T any](tree RBTree[T], cmp infra.Comparator[T]) error {
	size := tree.Len()
	var aux RBNode[T] = tree.Root()
	if size < 0 || isNilLeaf[T](aux) {
		return nil
	}

	stack := make([]RBNode[T], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; !isNilLeaf[T](aux); aux = aux.Left() {
		stack = append(stack, aux)
	}

	var prev RBNode[T]
	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		aux = stack[size-1]
		if prev != nil && cmp(prev.Value(), aux.Value()) > 0 {
			return errors.New("rbtree order violation")
		}
		prev = aux

		stack = stack[:size-1]
		if aux.Right() != nil {
			for aux = aux.Right(); aux != nil; aux = aux.Left() {
				stack = append(stack, aux)
			}
		}
	}
	return nil
}

// Validate aggregates all invariant checks for one tree.
func Validate[T any](tree RBTree[T], cmp infra.Comparator[T]) error {
	return multierr.Combine(
		RedViolationValidate[T](tree),
		BlackViolationValidate[T](tree),
		OrderViolationValidate[T](tree, cmp),
	)
}
