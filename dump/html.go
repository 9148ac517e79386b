package dump

import (
	"io"

	"github.com/npillmayer/assoc/rbtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML outputs a red-black tree as nested HTML lists. Every node is an
// <li> element of class "red" or "black"; a node with children holds a
// nested <ul> with the left child first. A missing child next to an
// existing one is an empty <li class="nil">.
func HTML[K, V, E any](w io.Writer, tree *rbtree.Tree[K, V, E], opts *Options) error {
	if tree == nil {
		return ErrNoTree
	}
	opts = opts.normalized()
	root := element(atom.Ul, "rbtree")
	if r := tree.Root(); r != nil {
		root.AppendChild(htmlNode(r, opts))
	}
	if err := html.Render(w, root); err != nil {
		tracer().Errorf("tree HTML: %s", err.Error())
		return err
	}
	return nil
}

func htmlNode[K, V, E any](n *rbtree.Node[K, V, E], opts *Options) *html.Node {
	if n == nil {
		return element(atom.Li, "nil")
	}
	li := element(atom.Li, n.Color().String())
	li.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: Truncate(label(n, opts), opts.Width, opts.Context),
	})
	if !n.IsLeaf() {
		ul := element(atom.Ul, "")
		ul.AppendChild(htmlNode(n.Left(), opts))
		ul.AppendChild(htmlNode(n.Right(), opts))
		li.AppendChild(ul)
	}
	return li
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}
