package interval

import (
	"cmp"
	"errors"
	"fmt"
	"iter"

	"github.com/npillmayer/assoc/rbtree"
)

// ErrMaxBound signals an inconsistent subtree maximum.
var ErrMaxBound = errors.New("interval: subtree maximum is inconsistent")

type node[T cmp.Ordered, V any] = rbtree.Node[Interval[T], V, Bound[T]]

// Map maps closed intervals to values of type V.
type Map[T cmp.Ordered, V any] struct {
	tree *rbtree.Tree[Interval[T], V, Bound[T]]
}

// New creates an empty interval map.
func New[T cmp.Ordered, V any]() *Map[T, V] {
	tree, err := rbtree.New(rbtree.Config[Interval[T], V, Bound[T]]{
		Compare:      Compare[T],
		Augmentation: maxAug[T, V]{},
	})
	if err != nil {
		panic(err) // cannot happen with a static configuration
	}
	return &Map[T, V]{tree: tree}
}

// Get returns the value stored for interval iv and whether iv is present.
// Only an identical interval matches; use Search for overlaps.
func (m *Map[T, V]) Get(iv Interval[T]) (V, bool) {
	if n := m.tree.Find(iv); n != nil {
		return n.Value(), true
	}
	var zero V
	return zero, false
}

// Has reports whether interval iv is present.
func (m *Map[T, V]) Has(iv Interval[T]) bool {
	return m.tree.Find(iv) != nil
}

// Set stores value for interval iv, overwriting a previous value. It returns
// the map to allow chaining calls. Set panics if iv is not a valid interval.
func (m *Map[T, V]) Set(iv Interval[T], value V) *Map[T, V] {
	if !iv.IsValid() {
		panic(fmt.Sprintf("interval map: invalid interval %v", iv))
	}
	m.tree.Insert(iv, value)
	return m
}

// Delete removes interval iv and reports whether it has been present.
func (m *Map[T, V]) Delete(iv Interval[T]) bool {
	return m.tree.Delete(iv)
}

// Len returns the number of intervals in the map.
func (m *Map[T, V]) Len() int {
	return m.tree.Len()
}

// Entries returns an iterator over all intervals and their values, ordered
// by lower bound and then by upper bound.
func (m *Map[T, V]) Entries() iter.Seq2[Interval[T], V] {
	return m.tree.Entries()
}

// Search returns an iterator over the values of all intervals overlapping q.
//
// Values are not produced in interval order. An invalid query matches
// nothing. The map must not be modified while iterating.
func (m *Map[T, V]) Search(q Interval[T]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.SearchEntries(q) {
			if !yield(v) {
				return
			}
		}
	}
}

// SearchEntries is like Search, but produces the matching intervals
// together with their values.
//
// The traversal is a depth-first search with an explicit stack. A left
// subtree is entered only if its maximum upper bound reaches q.Lo. A right
// subtree is entered only if the node's own lower bound does not exceed q.Hi,
// as every interval to the right starts at or after it.
func (m *Map[T, V]) SearchEntries(q Interval[T]) iter.Seq2[Interval[T], V] {
	return func(yield func(Interval[T], V) bool) {
		root := m.tree.Root()
		if root == nil || !q.IsValid() {
			return
		}
		stack := []*node[T, V]{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			iv := n.Key()
			if l := n.Left(); l != nil && reaches(l.Ext(), q.Lo) {
				stack = append(stack, l)
			}
			if iv.Overlaps(q) {
				if !yield(iv, n.Value()) {
					return
				}
			}
			if r := n.Right(); r != nil && cmp.Compare(iv.Lo, q.Hi) <= 0 && reaches(r.Ext(), q.Lo) {
				stack = append(stack, r)
			}
		}
	}
}

// reaches is true if a subtree bounded by b may hold an interval ending at
// or after lo.
func reaches[T cmp.Ordered](b Bound[T], lo T) bool {
	return b.OK && cmp.Compare(b.Max, lo) >= 0
}

// CheckBalance reports whether the underlying tree is balanced.
func (m *Map[T, V]) CheckBalance() bool {
	return m.tree.CheckBalance()
}

// CheckOrder reports whether the intervals of the underlying tree are ordered.
func (m *Map[T, V]) CheckOrder() bool {
	return m.tree.CheckOrder()
}

// CheckMax verifies the subtree maximum stored at every node.
func (m *Map[T, V]) CheckMax() error {
	_, err := checkMax(m.tree.Root())
	return err
}

func checkMax[T cmp.Ordered, V any](n *node[T, V]) (Bound[T], error) {
	if n == nil {
		return Bound[T]{}, nil
	}
	var aug maxAug[T, V]
	l, err := checkMax(n.Left())
	if err != nil {
		return l, err
	}
	r, err := checkMax(n.Right())
	if err != nil {
		return r, err
	}
	want := aug.Add(aug.Add(l, aug.FromNode(n.Key(), n.Value())), r)
	if got := n.Ext(); got != want {
		return want, fmt.Errorf("%w: node %v has max %v, expected %v", ErrMaxBound, n.Key(), got, want)
	}
	return want, nil
}

// Tree gives read access to the underlying red-black tree, e.g. for dumping
// it. Clients must not modify the map through it.
func (m *Map[T, V]) Tree() *rbtree.Tree[Interval[T], V, Bound[T]] {
	return m.tree
}
