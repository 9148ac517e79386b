package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/assoc/rbtree"
)

// Text writes an indented outline of tree to w, one node per line, left
// subtree before right subtree. Red and black nodes are printed in the
// colours of opts.Colors.
func Text[K, V, E any](w io.Writer, tree *rbtree.Tree[K, V, E], opts *Options) error {
	if tree == nil {
		return ErrNoTree
	}
	opts = opts.normalized()
	var err error
	var walk func(n *rbtree.Node[K, V, E], depth int, side string)
	walk = func(n *rbtree.Node[K, V, E], depth int, side string) {
		if n == nil || err != nil {
			return
		}
		if _, err = io.WriteString(w, strings.Repeat("  ", depth)+side); err != nil {
			return
		}
		lbl := Truncate(label(n, opts), opts.Width, opts.Context)
		if c, ok := opts.Colors[n.Color()]; ok {
			_, err = c.Fprint(w, lbl)
		} else {
			_, err = io.WriteString(w, lbl)
		}
		if err == nil {
			_, err = io.WriteString(w, "\n")
		}
		walk(n.Left(), depth+1, "L ")
		walk(n.Right(), depth+1, "R ")
	}
	walk(tree.Root(), 0, "")
	if err != nil {
		tracer().Errorf("dump text: %v", err)
	}
	return err
}

func label[K, V, E any](n *rbtree.Node[K, V, E], opts *Options) string {
	var sb strings.Builder
	fmt.Fprint(&sb, n.Key())
	if opts.Values {
		fmt.Fprintf(&sb, "=%v", n.Value())
	}
	if opts.Ext {
		fmt.Fprintf(&sb, " ⌈%v⌉", n.Ext())
	}
	return sb.String()
}
