// Package viz renders red-black trees as Graphviz DOT graphs. It is
// strictly read-only over the public node accessors.
package viz

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/xdstructs/xtree/lib/tree"
)

type dotWriter[T any] struct {
	w    io.Writer
	next int
	err  error
}

func (dw *dotWriter[T]) printf(format string, args ...any) {
	if dw.err != nil {
		return
	}
	_, dw.err = fmt.Fprintf(dw.w, format, args...)
}

// walk emits the node, then its left edge, an invisible mid spacer that
// keeps the children apart, and the right edge. Missing children get
// invisible placeholders so single-child nodes stay slanted correctly.
func (dw *dotWriter[T]) walk(node tree.RBNode[T]) int {
	id := dw.next
	dw.next++

	color := lo.Ternary(node.Color() == tree.Black, "black", "red")
	dw.printf("  n%d [label=< <B>%v</B> >, fillcolor=\"%s\", group=n%d];\n",
		id, node.Value(), color, id)

	if l := node.Left(); l != nil {
		lid := dw.walk(l)
		dw.printf("  n%d -> n%d;\n", id, lid)
	} else {
		dw.printf("  _l%d [style=invis];\n", id)
		dw.printf("  n%d -> _l%d [style=invis];\n", id, id)
	}

	dw.printf("  _m%d [style=invis, group=n%d];\n", id, id)
	dw.printf("  n%d -> _m%d [style=invis];\n", id, id)

	if r := node.Right(); r != nil {
		rid := dw.walk(r)
		dw.printf("  n%d -> n%d;\n", id, rid)
	} else {
		dw.printf("  _r%d [style=invis];\n", id)
		dw.printf("  n%d -> _r%d [style=invis];\n", id, id)
	}
	return id
}

// WriteDot writes the DOT description of t to w. An empty tree renders
// as an empty digraph.
func WriteDot[T any](w io.Writer, t tree.RBTree[T], name string) error {
	dw := &dotWriter[T]{w: w}
	dw.printf("digraph %s {\n", name)
	dw.printf("  fontname = \"Consolas\";\n")
	dw.printf("  fontsize = 16;\n")
	dw.printf("  node [style=\"filled\", shape=circle, fontcolor=\"white\", fontname=\"Consolas\", fontsize=30, fixedsize=true, width=1.0];\n")
	dw.printf("  edge [fontname=\"Verdana\", fontsize=10, arrowhead=\"none\", color=\"black\", style=\"solid\"];\n")
	if t != nil {
		if root := t.Root(); root != nil {
			dw.walk(root)
		}
	}
	dw.printf("}\n")
	return dw.err
}

// DotString is WriteDot into a string, for tests and small trees.
func DotString[T any](t tree.RBTree[T], name string) string {
	var sb strings.Builder
	_ = WriteDot[T](&sb, t, name)
	return sb.String()
}
