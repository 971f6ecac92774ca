package tree

import (
	"sync/atomic"

	"github.com/xdstructs/xtree/lib/infra"
)

type rbNode[T any] struct {
	// parent is a non-owning back-reference for upward traversal only;
	// ownership always flows through left/right.
	parent *rbNode[T]
	left   *rbNode[T]
	right  *rbNode[T]
	value  T
	color  RBColor
}

func (node *rbNode[T]) Value() T {
	return node.value
}

func (node *rbNode[T]) Color() RBColor {
	return node.color
}

func (node *rbNode[T]) Left() RBNode[T] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *rbNode[T]) Right() RBNode[T] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *rbNode[T]) Parent() RBNode[T] {
	if node == nil || node.parent == nil {
		return nil
	}
	return node.parent
}

func (node *rbNode[T]) IsRoot() bool {
	return node != nil && node.parent == nil
}

func (node *rbNode[T]) IsLeaf() bool {
	return node != nil && node.left.isNilLeaf() && node.right.isNilLeaf()
}

func (node *rbNode[T]) isNilLeaf() bool {
	return node == nil
}

func (node *rbNode[T]) isRed() bool {
	return node != nil && node.color == Red
}

// Nil leaves count as black.
func (node *rbNode[T]) isBlack() bool {
	return node == nil || node.color == Black
}

func (node *rbNode[T]) Direction() RBDirection {
	if node.isNilLeaf() {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] nil leaf node without direction")
	}

	if node.IsRoot() {
		return Root
	}
	if node == node.parent.left {
		return Left
	}
	return Right
}

func (node *rbNode[T]) sibling() *rbNode[T] {
	switch node.Direction() {
	case Left:
		return node.parent.right
	case Right:
		return node.parent.left
	default:

	}
	return nil
}

func (node *rbNode[T]) hasSibling() bool {
	return !node.IsRoot() && node.sibling() != nil
}

func (node *rbNode[T]) uncle() *rbNode[T] {
	return node.parent.sibling()
}

func (node *rbNode[T]) hasUncle() bool {
	return !node.IsRoot() && node.parent.hasSibling()
}

func (node *rbNode[T]) grandpa() *rbNode[T] {
	return node.parent.parent
}

func (node *rbNode[T]) fixLink() {
	if node.left != nil {
		node.left.parent = node
	}
	if node.right != nil {
		node.right.parent = node
	}
}

func (node *rbNode[T]) minimum() *rbNode[T] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

type rbTree[T any] struct {
	root     *rbNode[T]
	cmp      infra.Comparator[T]
	count    int64
	allowDup bool
}

func (tree *rbTree[T]) Len() int64 {
	return atomic.LoadInt64(&tree.count)
}

func (tree *rbTree[T]) Root() RBNode[T] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

// References:
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// rbtree properties:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. The root is black.
// (Conclusion) If a node X has exactly one child, it must be a red child,
//   because if it were black, its NIL descendants would sit at a different
//   black depth than X's NIL child, violating p4.

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc
*/
func (tree *rbTree[T]) leftRotate(x *rbNode[T]) {
	if x == nil || x.right.isNilLeaf() {
		// rotation contract breach, caller error
		panic( /* debug assertion */ "[rbtree] left rotate node x is nil or x.right is nil")
	}

	p, y := x.parent, x.right
	dir := x.Direction()
	x.right, y.left = y.left, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		// the pivot takes over the tree handle
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to left-rotate")
	}
	y.parent = p
}

/*
			 |                         |
			 X                         S
			/ \     rightRotate(S)    / \
	       L   S    <============    X   R
			  / \                   / \
			Sc   Sd               Sc   Sd
*/
func (tree *rbTree[T]) rightRotate(x *rbNode[T]) {
	if x == nil || x.left.isNilLeaf() {
		// rotation contract breach, caller error
		panic( /* debug assertion */ "[rbtree] right rotate node x is nil or x.left is nil")
	}

	p, y := x.parent, x.left
	dir := x.Direction()
	x.left, y.right = y.right, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		// the pivot takes over the tree handle
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to right-rotate")
	}
	y.parent = p
}

// LeftRotate promotes node's right child to node's position. The right
// child must be present, anything else is a caller error.
func (tree *rbTree[T]) LeftRotate(node RBNode[T]) {
	x, _ := node.(*rbNode[T])
	tree.leftRotate(x)
}

// RightRotate promotes node's left child to node's position. The left
// child must be present, anything else is a caller error.
func (tree *rbTree[T]) RightRotate(node RBNode[T]) {
	x, _ := node.(*rbNode[T])
	tree.rightRotate(x)
}

func (tree *rbTree[T]) searchNode(value T) *rbNode[T] {
	for aux := tree.root; !aux.isNilLeaf(); {
		res := tree.cmp(value, aux.value)
		if /* equal */ res == 0 {
			return aux
		} else /* less */ if res < 0 {
			aux = aux.left
		} else /* greater */ {
			aux = aux.right
		}
	}
	return nil
}

// Search walks from the root and returns the topmost node carrying the
// value on the search path, or nil when the value is absent.
func (tree *rbTree[T]) Search(value T) RBNode[T] {
	if x := tree.searchNode(value); x != nil {
		return x
	}
	return nil
}

// i1: Empty rbtree, insert directly, but root node is painted to black.
func (tree *rbTree[T]) Insert(value T) bool {
	if /* i1 */ tree.root.isNilLeaf() {
		tree.root = &rbNode[T]{
			value: value,
			color: Black,
		}
		atomic.AddInt64(&tree.count, 1)
		return true
	}

	var x, y *rbNode[T] = tree.root, nil
	var res int64
	for !x.isNilLeaf() {
		y = x
		res = tree.cmp(value, x.value)
		if /* equal */ res == 0 {
			if !tree.allowDup {
				return false
			}
			// equal values descend left, duplicate chains keep order
			x = x.left
		} else /* less */ if res < 0 {
			x = x.left
		} else /* greater */ {
			x = x.right
		}
	}

	z := &rbNode[T]{
		value:  value,
		color:  Red,
		parent: y,
	}
	if res <= 0 {
		y.left = z
	} else {
		y.right = z
	}

	atomic.AddInt64(&tree.count, 1)
	tree.insertRebalance(z)
	return true
}

/*
New node X is red by default.

<X> is a RED node.
[X] is a BLACK node (or NIL).

im1: Current node X is root, repaint into black.

im2: Current node X's parent P is black, hold p3 and p4.

im3: Both the parent P and the uncle U are red, grandpa G is black.
(red-violation)
After G is repainted red it may introduce a new red-violation.
Propagate the fix to grandpa.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im4: The parent P is red but the uncle U is black, X is the inner
grandchild. Rotate at P to convert into the outer case im5.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

im5: The parent P is red, the uncle U is black, X is the outer
grandchild. Repaint P black, G red, rotate at G. Terminal.

	    [G]                 [P]
	    / \    repaint      / \
	  <P> [U]  + rotate   <X> <G>
	  /        ========>        \
	<X>                         [U]
*/
func (tree *rbTree[T]) insertRebalance(x *rbNode[T]) {
	for !x.isNilLeaf() {
		if /* im1 */ x.IsRoot() {
			if x.isRed() {
				x.color = Black
			}
			return
		}

		if /* im2 */ x.parent.isBlack() {
			return
		}

		// The parent is red, so it is not the root and the grandpa exists.
		if /* im3 */ x.hasUncle() && x.uncle().isRed() {
			x.parent.color = Black
			x.uncle().color = Black
			gp := x.grandpa()
			gp.color = Red
			x = gp
			continue
		}

		dir := x.Direction()
		if /* im4 */ dir != x.parent.Direction() {
			p := x.parent
			switch dir {
			case Left:
				tree.rightRotate(p)
			case Right:
				tree.leftRotate(p)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] insert rebalance violate (im4)")
			}
			x = p // enter im5 to fix
		}

		x.parent.color = Black
		x.grandpa().color = Red
		switch /* im5 */ x.parent.Direction() {
		case Left:
			tree.rightRotate(x.grandpa())
		case Right:
			tree.leftRotate(x.grandpa())
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] insert rebalance violate (im5)")
		}
		return
	}
}

/*
r1: Current node X has both children. Swap values with the in-order
successor (minimum of the right subtree) and excise that node instead;
by minimality it has no left child.

	  |                    |
	  X                    S
	 / \                  / \
	L  ..   swap(X, S)   L  ..
	    |   =========>       |
	    P                    P
	   / \                  / \
	  S  ..                X  ..

r2: A black node about to be unlinked leaves its side one black short,
rebalance before unlinking while the node still holds its position.

r3: Unlink. The root promotes its lone child (repainted black, see p4),
any other node splices its lone child (or nil) into the parent slot.
A lone child is always a red leaf (see conclusion under p4).
*/
func (tree *rbTree[T]) removeNode(z *rbNode[T]) *rbNode[T] {
	y := z
	if /* r1 */ !y.left.isNilLeaf() && !y.right.isNilLeaf() {
		y = z.right.minimum()
		z.value, y.value = y.value, z.value
	}

	if /* r2 */ y.isBlack() {
		tree.removeRebalance(y)
	}

	var replace *rbNode[T]
	if !y.left.isNilLeaf() {
		replace = y.left
	} else if !y.right.isNilLeaf() {
		replace = y.right
	}

	/* r3 */
	if p := y.parent; p == nil {
		tree.root = replace
		if replace != nil {
			replace.parent = nil
			replace.color = Black
		}
	} else {
		switch y.Direction() {
		case Left:
			p.left = replace
		case Right:
			p.right = replace
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove an unlinked node, violate (r3)")
		}
		if replace != nil {
			replace.parent = p
		}
	}

	y.parent = nil
	y.left = nil
	y.right = nil
	return y
}

func (tree *rbTree[T]) Remove(value T) RBNode[T] {
	if atomic.LoadInt64(&tree.count) <= 0 {
		return nil
	}
	z := tree.searchNode(value)
	if z == nil {
		return nil
	}
	atomic.AddInt64(&tree.count, -1)
	return tree.removeNode(z)
}

func (tree *rbTree[T]) RemoveMin() RBNode[T] {
	if atomic.LoadInt64(&tree.count) <= 0 {
		return nil
	}
	_min := tree.root.minimum()
	if _min.isNilLeaf() {
		return nil
	}
	atomic.AddInt64(&tree.count, -1)
	return tree.removeNode(_min)
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

Sc is the near nephew (same direction as X), Sd the far nephew.

rm1: Current node X's sibling S is red, so the parent P, nephew Sc and Sd
must be black. (Otherwise, red-violation)
Repaint S black and P red, rotate at P towards X's side, then re-fetch
the sibling and fall through to the black-sibling cases.

	  [P]                   <S>               [S]
	  / \    l-rotate(P)    / \    repaint    / \
	[X] <S>  ==========>  [P] [Sd]  ======>  <P> [Sd]
	    / \               / \               / \
	 [Sc] [Sd]          [X] [Sc]          [X] [Sc]

rm2: Sibling S is black, far nephew Sd is black, near nephew Sc is red.
Repaint Sc black and S red, rotate at S away from X's side to convert
into the far-red case rm3.

	                        {P}                {P}
	  {P}                   / \                / \
	  / \    r-rotate(S)  [X] <Sc>   repaint  [X] [Sc]
	[X] [S]  ==========>        \    ======>       \
	    / \                     [S]                <S>
	  <Sc> [Sd]                   \                  \
	                              [Sd]               [Sd]

rm3: Sibling S is black, far nephew Sd is red. Repaint Sd black, S takes
P's color, P black, rotate at P towards X's side. Terminal.

	  {P}                   [S]                {S}
	  / \    l-rotate(P)    / \     repaint    / \
	[X] [S]  ==========>  {P} <Sd>  ======>  [P] [Sd]
	    / \               / \                / \
	 [Sc] <Sd>          [X] [Sc]           [X] [Sc]

rm4: Sibling S and both nephews are black, parent P is red.
Swap the colors of S and P. Terminal.

	  <P>             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm5: All of P, S, Sc and Sd are black. Repaint S red to fix p4 locally,
then propagate the black deficiency to P.

	  [P]             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]
*/
func (tree *rbTree[T]) removeRebalance(x *rbNode[T]) {
	for {
		if x.IsRoot() {
			return
		}

		dir := x.Direction()
		sibling := x.sibling()
		if /* rm1 */ sibling.isRed() {
			sibling.color = Black
			x.parent.color = Red
			switch dir {
			case Left:
				tree.leftRotate(x.parent)
			case Right:
				tree.rightRotate(x.parent)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm1)")
			}
			sibling = x.sibling()
		}

		if sibling.isNilLeaf() {
			// X is black and still linked, a sibling must exist.
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove rebalance without sibling")
		}

		var sc, sd *rbNode[T]
		switch dir {
		case Left:
			sc, sd = sibling.left, sibling.right
		case Right:
			sc, sd = sibling.right, sibling.left
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove rebalance violate direction")
		}

		if /* rm2 */ sd.isBlack() && sc.isRed() {
			sc.color = Black
			sibling.color = Red
			switch dir {
			case Left:
				tree.rightRotate(sibling)
			case Right:
				tree.leftRotate(sibling)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm2)")
			}
			sibling = x.sibling() // ready to enter rm3
			switch dir {
			case Left:
				sd = sibling.right
			case Right:
				sd = sibling.left
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm2)")
			}
		}

		if /* rm3 */ sd.isRed() {
			sd.color = Black
			sibling.color = x.parent.color
			x.parent.color = Black
			switch dir {
			case Left:
				tree.leftRotate(x.parent)
			case Right:
				tree.rightRotate(x.parent)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove rebalance violate (rm3)")
			}
			return
		}

		if /* rm4 */ x.parent.isRed() {
			sibling.color = Red
			x.parent.color = Black
			return
		}

		/* rm5 */
		sibling.color = Red
		x = x.parent
	}
}

// Inorder traversal to implement the DFS.
func (tree *rbTree[T]) Foreach(action func(idx int64, color RBColor, value T) bool) {
	size := atomic.LoadInt64(&tree.count)
	aux := tree.root
	if size < 0 || aux == nil {
		return
	}

	stack := make([]*rbNode[T], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; !aux.isNilLeaf(); aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; !action(idx, aux.color, aux.value) {
			return
		}
		idx++
		stack = stack[:size-1]
		if aux.right != nil {
			for aux = aux.right; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

func (tree *rbTree[T]) Release() {
	size := atomic.LoadInt64(&tree.count)
	aux := tree.root
	tree.root = nil
	if size < 0 || aux == nil {
		return
	}

	stack := make([]*rbNode[T], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; !aux.isNilLeaf(); aux = aux.left {
		stack = append(stack, aux)
	}

	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		aux = stack[size-1]
		r := aux.right
		aux.right, aux.parent = nil, nil
		atomic.AddInt64(&tree.count, -1)
		stack = stack[:size-1]
		if r != nil {
			for aux = r; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

type RBTreeOpt[T any] func(*rbTree[T])

// WithRBTreeAllowDuplicates permits equal values; they descend left
// during insertion so inorder traversal keeps them adjacent.
func WithRBTreeAllowDuplicates[T any]() RBTreeOpt[T] {
	return func(tree *rbTree[T]) {
		tree.allowDup = true
	}
}

func NewRBTree[T any](cmp infra.Comparator[T], opts ...RBTreeOpt[T]) RBTree[T] {
	if cmp == nil {
		panic( /* debug assertion */ "[rbtree] nil comparator")
	}
	tree := &rbTree[T]{
		cmp:      cmp,
		count:    0,
		allowDup: false,
	}

	for _, o := range opts {
		o(tree)
	}
	return tree
}

func NewOrderedRBTree[T infra.OrderedKey](opts ...RBTreeOpt[T]) RBTree[T] {
	return NewRBTree[T](infra.OrderedCompare[T], opts...)
}
