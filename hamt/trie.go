package hamt

import (
	"iter"
	"slices"

	"github.com/npillmayer/assoc/bitutil"
)

// Trie is a persistent map from strings to values of type V.
// The zero value is an empty trie, ready to use.
//
// Trie values are immutable and may be copied and shared freely.
type Trie[V any] struct {
	root *node[V]
	size int
}

// New returns an empty trie.
func New[V any]() Trie[V] {
	return Trie[V]{}
}

// Len returns the number of keys in the trie.
func (t Trie[V]) Len() int {
	return t.size
}

// IsEmpty returns true if the trie holds no keys.
func (t Trie[V]) IsEmpty() bool {
	return t.size == 0
}

// Get returns the value stored for key.
func (t Trie[V]) Get(key string) (V, bool) {
	hash := bitutil.Hash(key)
	n := t.root
	for level := 0; n != nil; level++ {
		if level == bucketLevel {
			return n.bucketGet(key)
		}
		slot := bitutil.Stage(hash, level)
		if !bitutil.IsSet(n.mask, slot) {
			break
		}
		i := n.rank(slot)
		if n.keys[i] == key {
			return n.values[i], true
		}
		n = n.children[i]
	}
	var zero V
	return zero, false
}

// Has returns true if key is present in the trie.
func (t Trie[V]) Has(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Set returns a new version of the trie, where key maps to value.
// t is not changed.
func (t Trie[V]) Set(key string, value V) Trie[V] {
	root, added := set(t.root, key, bitutil.Hash(key), 0, value)
	n := Trie[V]{root: root, size: t.size}
	if added {
		n.size++
	}
	return n
}

// Delete returns a new version of the trie without key, and whether key has
// been present. If it has not, t is returned unchanged. t itself is never
// changed.
func (t Trie[V]) Delete(key string) (Trie[V], bool) {
	root, removed := remove(t.root, key, bitutil.Hash(key), 0)
	if !removed {
		return t, false
	}
	return Trie[V]{root: root, size: t.size - 1}, true
}

// All returns an iterator over all key/value pairs of the trie, in no
// particular order. The order is stable for a given version.
func (t Trie[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		t.root.each(yield)
	}
}

// Keys returns an iterator over the keys of the trie, in the order of All.
func (t Trie[V]) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		t.root.each(func(k string, _ V) bool {
			return yield(k)
		})
	}
}

// Depth returns the number of levels of the trie, including the bucket
// level if present.
func (t Trie[V]) Depth() int {
	return t.root.depth()
}

func (n *node[V]) depth() int {
	if n == nil {
		return 0
	}
	d := 0
	for _, ch := range n.children {
		d = max(d, ch.depth())
	}
	return d + 1
}

// --- Visiting --------------------------------------------------------------

// NodeInfo describes a trie node to a Visitor.
type NodeInfo struct {
	ID     int      // unique per node within one walk, root is 0
	Parent int      // ID of the parent node, -1 for the root
	Slot   uint     // slot in the parent node leading here
	Level  int      // distance from the root
	Bucket bool     // node is a collision bucket
	Mask   uint32   // occupied slots, 0 for buckets
	Keys   []string // copy of the keys in slot order (buckets: insertion order)
}

// Walk calls visit for every node of the trie in depth-first pre-order.
// If visit returns false, the walk stops.
func (t Trie[V]) Walk(visit func(NodeInfo) bool) {
	if t.root == nil {
		return
	}
	id := 0
	var walk func(n *node[V], parent int, slot uint, level int) bool
	walk = func(n *node[V], parent int, slot uint, level int) bool {
		info := NodeInfo{
			ID:     id,
			Parent: parent,
			Slot:   slot,
			Level:  level,
			Bucket: level == bucketLevel,
			Mask:   n.mask,
			Keys:   slices.Clone(n.keys),
		}
		id++
		if !visit(info) {
			return false
		}
		m := n.mask
		for _, ch := range n.children {
			s := bitutil.Lowest(m)
			m = bitutil.Clear(m, s)
			if ch != nil && !walk(ch, info.ID, s, level+1) {
				return false
			}
		}
		return true
	}
	walk(t.root, -1, 0, 0)
}
