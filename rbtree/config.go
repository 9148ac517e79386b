package rbtree

import "fmt"

// Comparator is a three-way comparison on keys. It returns a negative number
// if a < b, zero if a == b and a positive number if a > b.
// It has to describe a total order.
type Comparator[K any] func(a, b K) int

// Augmentation defines how per-node extension data is aggregated up the tree.
//
// For extensions s, t, u, Add should be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero should be the neutral element. Zero is the extension of the
// sentinel, i.e. of every absent subtree. The extension of a node is
//
//	Add(Add(left.ext, FromNode(key, value)), right.ext)
type Augmentation[K, V, E any] interface {
	Zero() E
	FromNode(K, V) E
	Add(E, E) E
}

// NoAug is the extension type for trees without augmentation.
type NoAug struct{}

// Config configures a red-black tree.
type Config[K, V, E any] struct {
	// Compare orders keys. Required.
	Compare Comparator[K]
	// Augmentation maintains extension data per node. Optional.
	Augmentation Augmentation[K, V, E]
}

func (cfg Config[K, V, E]) normalized() Config[K, V, E] {
	return cfg
}

func (cfg Config[K, V, E]) validate() error {
	cfg = cfg.normalized()
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	return nil
}
