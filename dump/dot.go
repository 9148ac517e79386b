package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/assoc/hamt"
	"github.com/npillmayer/assoc/rbtree"
)

// nodeids assigns DOT node IDs to nodes, starting at 1.
type nodeids[P comparable] struct {
	idTable map[P]int
	max     int
}

func newtable[P comparable]() *nodeids[P] {
	return &nodeids[P]{
		idTable: make(map[P]int),
		max:     1,
	}
}

func (ids *nodeids[P]) find(node P) int {
	return ids.idTable[node]
}

func (ids *nodeids[P]) alloc(node P) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// anonymous allocates an ID not bound to any node, e.g., for sentinel leaves.
func (ids *nodeids[P]) anonymous() int {
	ids.max++
	return ids.max - 1
}

// Dot outputs the internal structure of a red-black tree in Graphviz DOT
// format. Absent children are drawn as small black circles.
func Dot[K, V, E any](w io.Writer, tree *rbtree.Tree[K, V, E], opts *Options) error {
	if tree == nil {
		return ErrNoTree
	}
	opts = opts.normalized()
	ids := newtable[*rbtree.Node[K, V, E]]()
	var nodelist, edgelist strings.Builder
	child := func(parent int, ch *rbtree.Node[K, V, E]) {
		if ch == nil {
			nilid := ids.anonymous()
			fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, sentinelNode)
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", parent, nilid)
			return
		}
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", parent, ids.alloc(ch))
	}
	for node := range tree.Nodes() {
		ID := ids.alloc(node)
		lbl := dotEscape(Truncate(label(node, opts), opts.Width, opts.Context))
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", ID, lbl, nodeDotStyles(node.Color()))
		if node.IsLeaf() {
			continue
		}
		child(ID, node.Left())
		child(ID, node.Right())
	}
	var err error
	for _, s := range []string{
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		nodelist.String(),
		edgelist.String(),
		"}\n",
	} {
		if _, err = io.WriteString(w, s); err != nil {
			tracer().Errorf("tree DOT: %s", err.Error())
			break
		}
	}
	return err
}

const sentinelNode = "[label=\"\",style=filled,fillcolor=black,shape=circle,fixedsize=true,width=.2]"

func nodeDotStyles(c rbtree.Color) string {
	s := ",style=filled,shape=circle"
	if c == rbtree.Red {
		s += ",color=\"#cc0000\",fillcolor=\"#ff6666\""
	} else {
		s += ",color=black,fillcolor=\"#444444\",fontcolor=white"
	}
	return s
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

// TrieDot outputs the node structure of a trie version in Graphviz DOT
// format. Edges are labelled with the slot they leave from; collision
// buckets are drawn as boxes.
func TrieDot[V any](w io.Writer, trie hamt.Trie[V], opts *Options) error {
	opts = opts.normalized()
	var nodelist, edgelist strings.Builder
	trie.Walk(func(n hamt.NodeInfo) bool {
		keys := make([]string, len(n.Keys))
		for i, k := range n.Keys {
			keys[i] = dotEscape(Truncate(k, opts.Width, opts.Context))
		}
		shape := "record"
		if n.Bucket {
			shape = "box,style=dashed"
		}
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\",shape=%s];\n", n.ID, strings.Join(keys, "|"), shape)
		if n.Parent >= 0 {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [label=%d];\n", n.Parent, n.ID, n.Slot)
		}
		return true
	})
	_, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"+
		nodelist.String()+edgelist.String()+"}\n")
	if err != nil {
		tracer().Errorf("trie DOT: %s", err.Error())
	}
	return err
}
