package tree

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

//go:generate stringer -type=RBDirection
type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

type RBNode[T any] interface {
	Value() T
	Color() RBColor
	Left() RBNode[T]
	Right() RBNode[T]
	Parent() RBNode[T]
	IsRoot() bool
	IsLeaf() bool
}

type RBTree[T any] interface {
	Len() int64
	Root() RBNode[T]
	Search(value T) RBNode[T]
	// Insert reports false only when duplicates are disallowed and
	// the value is already present; the tree is left untouched then.
	Insert(value T) bool
	// Remove detaches and returns the node carrying the value, or
	// nil when the value is absent or the tree is empty.
	Remove(value T) RBNode[T]
	RemoveMin() RBNode[T]
	// LeftRotate and RightRotate are the structural primitives used by
	// the rebalance paths, exposed for diagnostics and visualization
	// tooling. The required pivot child must be present.
	LeftRotate(node RBNode[T])
	RightRotate(node RBNode[T])
	Foreach(action func(idx int64, color RBColor, value T) bool)
	Release()
}
