package rbtree

import "iter"

// Nodes returns an iterator over all nodes in ascending key order.
//
// The traversal is iterative and keeps an explicit stack of at most
// tree-height entries. The tree must not be modified during iteration.
func (t *Tree[K, V, E]) Nodes() iter.Seq[*Node[K, V, E]] {
	return func(yield func(*Node[K, V, E]) bool) {
		if t == nil {
			return
		}
		var stack []*Node[K, V, E]
		n := t.root
		for n != t.nil_ || len(stack) > 0 {
			for n != t.nil_ {
				stack = append(stack, n)
				n = n.left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n) {
				return
			}
			n = n.right
		}
	}
}

// Entries returns an iterator over all key/value pairs in ascending key order.
func (t *Tree[K, V, E]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := range t.Nodes() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// ForEachNode walks nodes in-order.
//
// Iteration stops early if callback returns false.
func (t *Tree[K, V, E]) ForEachNode(fn func(n *Node[K, V, E]) bool) {
	if t == nil || fn == nil {
		return
	}
	for n := range t.Nodes() {
		if !fn(n) {
			return
		}
	}
}
