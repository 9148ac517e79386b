/*
Package omap implements a mutable ordered map.

Keys are kept in a red-black tree, ordered either by their natural order
(for keys of an ordered type) or by a caller-supplied comparator.

A Map is not safe for concurrent use. Clients sharing a map between
goroutines have to serialize all access, including iteration.
*/
package omap

import (
	"cmp"
	"iter"

	"github.com/npillmayer/assoc/rbtree"
)

// Map is an ordered map from keys of type K to values of type V.
type Map[K, V any] struct {
	tree *rbtree.Tree[K, V, rbtree.NoAug]
}

// New creates an empty map ordering its keys by their natural order.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc creates an empty map ordering keys by compare, which must
// describe a total order. compare may not be nil.
func NewFunc[K, V any](compare func(a, b K) int) *Map[K, V] {
	tree, err := rbtree.New(rbtree.Config[K, V, rbtree.NoAug]{
		Compare: compare,
	})
	if err != nil {
		panic(err)
	}
	return &Map[K, V]{tree: tree}
}

// Get returns the value stored for key and whether key is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if n := m.tree.Find(key); n != nil {
		return n.Value(), true
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	return m.tree.Find(key) != nil
}

// Set stores value for key, overwriting a previous value. It returns the map
// to allow chaining calls.
func (m *Map[K, V]) Set(key K, value V) *Map[K, V] {
	m.tree.Insert(key, value)
	return m
}

// Delete removes key and reports whether it has been present.
func (m *Map[K, V]) Delete(key K) bool {
	return m.tree.Delete(key)
}

// Len returns the number of keys in the map.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Entries returns an iterator over all key/value pairs in ascending key order.
// The map must not be modified while iterating.
func (m *Map[K, V]) Entries() iter.Seq2[K, V] {
	return m.tree.Entries()
}

// Keys returns an iterator over all keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.tree.Entries() {
			if !yield(k) {
				return
			}
		}
	}
}

// Min returns the smallest key and its value. ok is false for an empty map.
func (m *Map[K, V]) Min() (key K, value V, ok bool) {
	if n := m.tree.Min(); n != nil {
		return n.Key(), n.Value(), true
	}
	return
}

// Max returns the largest key and its value. ok is false for an empty map.
func (m *Map[K, V]) Max() (key K, value V, ok bool) {
	if n := m.tree.Max(); n != nil {
		return n.Key(), n.Value(), true
	}
	return
}

// CheckBalance reports whether the underlying tree is balanced.
func (m *Map[K, V]) CheckBalance() bool {
	return m.tree.CheckBalance()
}

// CheckOrder reports whether the keys of the underlying tree are ordered.
func (m *Map[K, V]) CheckOrder() bool {
	return m.tree.CheckOrder()
}

// Tree gives read access to the underlying red-black tree, e.g. for dumping
// it. Clients must not modify the map through it.
func (m *Map[K, V]) Tree() *rbtree.Tree[K, V, rbtree.NoAug] {
	return m.tree
}
