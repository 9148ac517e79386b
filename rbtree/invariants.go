package rbtree

import "fmt"

// CheckBalance reports whether, for every subtree, the longest root-to-leaf
// path is at most twice as long as the shortest one. This holds for every
// valid red-black tree and is used as a cheap balance oracle in tests.
func (t *Tree[K, V, E]) CheckBalance() bool {
	if t == nil {
		return true
	}
	_, _, ok := t.pathLengths(t.root)
	return ok
}

func (t *Tree[K, V, E]) pathLengths(n *Node[K, V, E]) (shortest, longest int, ok bool) {
	if n == t.nil_ {
		return 0, 0, true
	}
	ls, ll, lok := t.pathLengths(n.left)
	if !lok {
		return 0, 0, false
	}
	rs, rl, rok := t.pathLengths(n.right)
	if !rok {
		return 0, 0, false
	}
	shortest, longest = 1+min(ls, rs), 1+max(ll, rl)
	return shortest, longest, longest <= 2*shortest
}

// CheckOrder reports whether every key lies strictly between the bounds
// inherited from its ancestors.
func (t *Tree[K, V, E]) CheckOrder() bool {
	if t == nil {
		return true
	}
	return t.checkOrder(t.root, nil, nil)
}

func (t *Tree[K, V, E]) checkOrder(n *Node[K, V, E], lower, upper *K) bool {
	if n == t.nil_ {
		return true
	}
	if lower != nil && t.cfg.Compare(*lower, n.key) >= 0 {
		return false
	}
	if upper != nil && t.cfg.Compare(n.key, *upper) >= 0 {
		return false
	}
	return t.checkOrder(n.left, lower, &n.key) && t.checkOrder(n.right, &n.key, upper)
}

// Check validates the structural red-black invariants: a black sentinel and
// root, consistent parent links, no red node with a red child and a uniform
// black height. It also checks key order and the size counter.
//
// This checker is intentionally strict and should be used in tests.
func (t *Tree[K, V, E]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if !t.nil_.sentinel || t.nil_.color != Black {
		return fmt.Errorf("%w: sentinel must be black", ErrInvariant)
	}
	if t.root == t.nil_ {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree has size %d", ErrInvariant, t.size)
		}
		return nil
	}
	if t.root.color != Black {
		return fmt.Errorf("%w: root must be black", ErrInvariant)
	}
	if t.root.parent != t.nil_ {
		return fmt.Errorf("%w: root has a parent", ErrInvariant)
	}
	count, _, err := t.checkNode(t.root)
	if err != nil {
		tracer().Errorf("rbtree check: %v", err)
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrInvariant, count, t.size)
	}
	if !t.CheckOrder() {
		return fmt.Errorf("%w: keys out of order", ErrInvariant)
	}
	return nil
}

func (t *Tree[K, V, E]) checkNode(n *Node[K, V, E]) (count int, blackHeight int, err error) {
	if n == t.nil_ {
		return 0, 1, nil
	}
	if n.color == Red && (n.left.color == Red || n.right.color == Red) {
		return 0, 0, fmt.Errorf("%w: red node %v has a red child", ErrInvariant, n.key)
	}
	for _, child := range []*Node[K, V, E]{n.left, n.right} {
		if child != t.nil_ && child.parent != n {
			return 0, 0, fmt.Errorf("%w: broken parent link below %v", ErrInvariant, n.key)
		}
	}
	lc, lh, err := t.checkNode(n.left)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := t.checkNode(n.right)
	if err != nil {
		return 0, 0, err
	}
	if lh != rh {
		return 0, 0, fmt.Errorf("%w: black height differs below %v (%d != %d)",
			ErrInvariant, n.key, lh, rh)
	}
	if n.color == Black {
		lh++
	}
	return lc + rc + 1, lh, nil
}
