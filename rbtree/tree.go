package rbtree

// Tree is a red-black tree, ordered by a configurable comparator and
// optionally augmented with per-subtree extension data.
//
// K is the key type, V the value type and E the type of the extension
// (NoAug for trees without augmentation).
type Tree[K, V, E any] struct {
	cfg  Config[K, V, E]
	root *Node[K, V, E]
	nil_ *Node[K, V, E] // sentinel
	size int
}

// New creates an empty tree with validated configuration.
func New[K, V, E any](cfg Config[K, V, E]) (*Tree[K, V, E], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	sentinel := &Node[K, V, E]{color: Black, sentinel: true}
	sentinel.parent, sentinel.left, sentinel.right = sentinel, sentinel, sentinel
	if cfg.Augmentation != nil {
		sentinel.ext = cfg.Augmentation.Zero()
	}
	return &Tree[K, V, E]{
		cfg:  cfg,
		root: sentinel,
		nil_: sentinel,
	}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V, E]) Config() Config[K, V, E] {
	return t.cfg
}

// Root returns the root node of the tree, or nil for an empty tree.
func (t *Tree[K, V, E]) Root() *Node[K, V, E] {
	if t == nil {
		return nil
	}
	return t.root.orNil()
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V, E]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K, V, E]) IsEmpty() bool {
	return t == nil || t.size == 0
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[K, V, E]) Height() int {
	if t == nil {
		return 0
	}
	return t.height(t.root)
}

func (t *Tree[K, V, E]) height(n *Node[K, V, E]) int {
	if n == t.nil_ {
		return 0
	}
	return 1 + max(t.height(n.left), t.height(n.right))
}

// Find returns the node holding key, or nil.
func (t *Tree[K, V, E]) Find(key K) *Node[K, V, E] {
	if t == nil {
		return nil
	}
	return t.find(key).orNil()
}

func (t *Tree[K, V, E]) find(key K) *Node[K, V, E] {
	x := t.root
	for x != t.nil_ {
		c := t.cfg.Compare(key, x.key)
		switch {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			return x
		}
	}
	return t.nil_
}

// Min returns the node with the smallest key, or nil for an empty tree.
func (t *Tree[K, V, E]) Min() *Node[K, V, E] {
	if t.IsEmpty() {
		return nil
	}
	return t.minimum(t.root)
}

// Max returns the node with the largest key, or nil for an empty tree.
func (t *Tree[K, V, E]) Max() *Node[K, V, E] {
	if t.IsEmpty() {
		return nil
	}
	x := t.root
	for x.right != t.nil_ {
		x = x.right
	}
	return x
}

func (t *Tree[K, V, E]) minimum(x *Node[K, V, E]) *Node[K, V, E] {
	for x.left != t.nil_ {
		x = x.left
	}
	return x
}

// Insert stores value under key.
//
// If key is already present, its value is overwritten in place and the size
// of the tree is unchanged. Otherwise a new node is linked and the tree is
// re-balanced. Insert returns the node holding key and whether the key is new.
func (t *Tree[K, V, E]) Insert(key K, value V) (*Node[K, V, E], bool) {
	y := t.nil_
	x := t.root
	c := 0
	for x != t.nil_ {
		y = x
		c = t.cfg.Compare(key, x.key)
		switch {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			x.value = value
			t.propagate(x)
			return x, false
		}
	}
	z := &Node[K, V, E]{
		parent: y,
		left:   t.nil_,
		right:  t.nil_,
		color:  Red,
		key:    key,
		value:  value,
	}
	if y == t.nil_ {
		t.root = z
	} else if c < 0 {
		y.left = z
	} else {
		y.right = z
	}
	t.propagate(z)
	t.insertFixup(z)
	t.size++
	return z, true
}

// Delete removes key from the tree and reports whether it was present.
// Deleting an absent key does not modify the tree.
func (t *Tree[K, V, E]) Delete(key K) bool {
	if t == nil {
		return false
	}
	z := t.find(key)
	if z == t.nil_ {
		return false
	}
	t.deleteNode(z)
	return true
}

// deleteNode unlinks z. If z has two children, its in-order successor y is
// spliced out instead, after y's key and value have been moved into z.
func (t *Tree[K, V, E]) deleteNode(z *Node[K, V, E]) {
	y := z
	if z.left != t.nil_ && z.right != t.nil_ {
		y = t.minimum(z.right)
	}
	x := y.left
	if x == t.nil_ {
		x = y.right
	}
	x.parent = y.parent // x may be the sentinel; deleteFixup relies on its parent
	if y.parent == t.nil_ {
		t.root = x
	} else if y == y.parent.left {
		y.parent.left = x
	} else {
		y.parent.right = x
	}
	if y != z {
		z.key, z.value = y.key, y.value
	}
	// z is an ancestor of y, so it is refreshed on the way up
	t.propagate(y.parent)
	if y.color == Black {
		t.deleteFixup(x)
	}
	t.nil_.parent = t.nil_
	t.size--
	y.parent, y.left, y.right = nil, nil, nil
}

// --- Rotations and augmentation --------------------------------------------

//	    x                y
//	   / \              / \
//	  a   y    ==>     x   c
//	     / \          / \
//	    b   c        a   b
func (t *Tree[K, V, E]) rotateLeft(x *Node[K, V, E]) {
	assert(x != t.nil_, "rbtree: rotate left at sentinel")
	y := x.right
	assert(y != t.nil_, "rbtree: rotate left without right child")
	x.right = y.left
	if y.left != t.nil_ {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == t.nil_ {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
	t.refresh(x)
	t.refresh(y)
}

//	      x            y
//	     / \          / \
//	    y   c  ==>   a   x
//	   / \              / \
//	  a   b            b   c
func (t *Tree[K, V, E]) rotateRight(x *Node[K, V, E]) {
	assert(x != t.nil_, "rbtree: rotate right at sentinel")
	y := x.left
	assert(y != t.nil_, "rbtree: rotate right without left child")
	x.left = y.right
	if y.right != t.nil_ {
		y.right.parent = x
	}
	y.parent = x.parent
	if x.parent == t.nil_ {
		t.root = y
	} else if x == x.parent.right {
		x.parent.right = y
	} else {
		x.parent.left = y
	}
	y.right = x
	x.parent = y
	t.refresh(x)
	t.refresh(y)
}

// refresh recomputes the extension of x from its children.
func (t *Tree[K, V, E]) refresh(x *Node[K, V, E]) {
	aug := t.cfg.Augmentation
	if aug == nil {
		return
	}
	assert(x != t.nil_, "rbtree: refresh of sentinel")
	x.ext = aug.Add(aug.Add(x.left.ext, aug.FromNode(x.key, x.value)), x.right.ext)
}

// propagate refreshes the extensions of x and all of its ancestors.
func (t *Tree[K, V, E]) propagate(x *Node[K, V, E]) {
	if t.cfg.Augmentation == nil {
		return
	}
	for ; x != t.nil_; x = x.parent {
		t.refresh(x)
	}
}
