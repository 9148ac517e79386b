package hamt

import (
	"errors"
	"fmt"

	"github.com/npillmayer/assoc/bitutil"
)

// ErrInvariant signals a violated structural invariant of a trie.
var ErrInvariant = errors.New("hamt: invariant violated")

// Check validates the structure of t: node arrays agree with the mask,
// every key sits on the path its hash selects, there are no empty nodes and
// no duplicate keys, and the size counter matches.
//
// Check is meant for tests.
func (t Trie[V]) Check() error {
	seen := make(map[string]struct{}, t.size)
	if err := t.root.check(0, 0, seen); err != nil {
		tracer().Errorf("%v", err)
		return err
	}
	if len(seen) != t.size {
		return fmt.Errorf("%w: size is %d, found %d keys", ErrInvariant, t.size, len(seen))
	}
	return nil
}

// path holds the hash bits of all slots leading to n.
func (n *node[V]) check(level int, path uint32, seen map[string]struct{}) error {
	if n == nil {
		return nil
	}
	if len(n.keys) == 0 {
		return fmt.Errorf("%w: empty node at level %d", ErrInvariant, level)
	}
	if len(n.values) != len(n.keys) {
		return fmt.Errorf("%w: %d keys but %d values at level %d", ErrInvariant,
			len(n.keys), len(n.values), level)
	}
	pathMask := uint32(1)<<(uint(level)*bitutil.StageBits) - 1
	for _, k := range n.keys {
		if _, dup := seen[k]; dup {
			return fmt.Errorf("%w: duplicate key %q", ErrInvariant, k)
		}
		seen[k] = struct{}{}
		if bitutil.Hash(k)&pathMask != path {
			return fmt.Errorf("%w: key %q misplaced at level %d", ErrInvariant, k, level)
		}
	}
	if level == bucketLevel {
		if n.mask != 0 || len(n.children) != 0 {
			return fmt.Errorf("%w: collision bucket with slots", ErrInvariant)
		}
		return nil
	}
	if bitutil.PopCount(n.mask) != len(n.keys) || len(n.children) != len(n.keys) {
		return fmt.Errorf("%w: mask %032b disagrees with %d entries at level %d", ErrInvariant,
			n.mask, len(n.keys), level)
	}
	m := n.mask
	for i, k := range n.keys {
		slot := bitutil.Lowest(m)
		m = bitutil.Clear(m, slot)
		if bitutil.Stage(bitutil.Hash(k), level) != slot {
			return fmt.Errorf("%w: key %q in wrong slot %d", ErrInvariant, k, slot)
		}
		childPath := path | uint32(slot)<<(uint(level)*bitutil.StageBits)
		if err := n.children[i].check(level+1, childPath, seen); err != nil {
			return err
		}
	}
	return nil
}
