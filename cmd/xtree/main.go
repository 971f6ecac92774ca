// xtree builds a red-black tree from the command line and emits its
// Graphviz DOT description, e.g.
//
//	xtree -insert 15,16,17,18,19 -remove 16 | dot -Tpng -o tree.png
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/xdstructs/xtree/lib/infra"
	"github.com/xdstructs/xtree/lib/tree"
	"github.com/xdstructs/xtree/viz"
)

func parseValues(list string) ([]int64, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	parts := strings.Split(list, ",")
	values := make([]int64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse value %q: %w", part, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func main() {
	var (
		insertList = flag.String("insert", "", "comma separated integers to insert")
		removeList = flag.String("remove", "", "comma separated integers to remove after inserting")
		out        = flag.String("out", "", "write the DOT graph to this file instead of stdout")
		name       = flag.String("name", "rbtree", "digraph name")
		allowDup   = flag.Bool("dup", false, "allow duplicate values")
	)
	flag.Parse()

	logger := lo.Must(zap.NewDevelopment())
	defer func() { _ = logger.Sync() }()

	inserts, err := parseValues(*insertList)
	if err != nil {
		logger.Fatal("invalid -insert list", zap.Error(err))
	}
	removes, err := parseValues(*removeList)
	if err != nil {
		logger.Fatal("invalid -remove list", zap.Error(err))
	}

	opts := make([]tree.RBTreeOpt[int64], 0, 1)
	if *allowDup {
		opts = append(opts, tree.WithRBTreeAllowDuplicates[int64]())
	}
	rbtree := tree.NewOrderedRBTree[int64](opts...)

	for _, v := range inserts {
		if !rbtree.Insert(v) {
			logger.Warn("duplicate value rejected", zap.Int64("value", v))
		}
	}
	for _, v := range removes {
		if x := rbtree.Remove(v); x == nil {
			logger.Warn("value not found", zap.Int64("value", v))
		}
	}

	if err := tree.Validate[int64](rbtree, infra.OrderedCompare[int64]); err != nil {
		logger.Fatal("tree invariants violated", zap.Error(err))
	}
	logger.Info("tree built",
		zap.Int64("len", rbtree.Len()),
		zap.Int("inserted", len(inserts)),
		zap.Int("removed", len(removes)),
	)

	var w io.Writer = os.Stdout
	if *out != "" {
		f := lo.Must(os.Create(*out))
		defer func() { _ = f.Close() }()
		w = f
	}
	if err := viz.WriteDot(w, rbtree, *name); err != nil {
		logger.Fatal("write DOT graph", zap.Error(err))
	}
}
