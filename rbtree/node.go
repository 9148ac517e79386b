package rbtree

// Color is the color of a red-black tree node.
type Color uint8

// Node colors. The zero value is Black, which is also the color of the sentinel.
const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case Red:
		return "red"
	}
	return "?"
}

// Node is a node of a red-black tree.
//
// Nodes are owned by their tree. Clients may read from nodes, but must not
// keep them across mutations of the tree: deleting a key may move another
// key/value pair into a node.
type Node[K, V, E any] struct {
	parent, left, right *Node[K, V, E]
	color               Color
	sentinel            bool
	key                 K
	value               V
	ext                 E // aggregated extension of the subtree
}

// Key returns the key stored in n.
func (n *Node[K, V, E]) Key() K {
	return n.key
}

// Value returns the value stored in n.
func (n *Node[K, V, E]) Value() V {
	return n.value
}

// Color returns the color of n.
func (n *Node[K, V, E]) Color() Color {
	return n.color
}

// Ext returns the aggregated extension of the subtree rooted at n.
func (n *Node[K, V, E]) Ext() E {
	return n.ext
}

// Left returns the left child of n, or nil.
func (n *Node[K, V, E]) Left() *Node[K, V, E] {
	return n.left.orNil()
}

// Right returns the right child of n, or nil.
func (n *Node[K, V, E]) Right() *Node[K, V, E] {
	return n.right.orNil()
}

// Parent returns the parent of n, or nil for the root.
func (n *Node[K, V, E]) Parent() *Node[K, V, E] {
	return n.parent.orNil()
}

// IsLeaf is true if n has no children.
func (n *Node[K, V, E]) IsLeaf() bool {
	return n.left.sentinel && n.right.sentinel
}

func (n *Node[K, V, E]) orNil() *Node[K, V, E] {
	if n == nil || n.sentinel {
		return nil
	}
	return n
}
