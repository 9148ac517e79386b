package rbtree

// insertFixup restores the red-black properties after the red node z has
// been linked into the tree. Only a red-red violation between z and its
// parent is possible. At most two rotations are performed.
func (t *Tree[K, V, E]) insertFixup(z *Node[K, V, E]) {
	for z.parent.color == Red {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right // uncle
			if y.color == Red {
				z.parent.color = Black
				y.color = Black
				z.parent.parent.color = Red
				z = z.parent.parent
			} else {
				if z == z.parent.right { // zig-zag
					z = z.parent
					t.rotateLeft(z)
				}
				z.parent.color = Black
				z.parent.parent.color = Red
				t.rotateRight(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left
			if y.color == Red {
				z.parent.color = Black
				y.color = Black
				z.parent.parent.color = Red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}
				z.parent.color = Black
				z.parent.parent.color = Red
				t.rotateLeft(z.parent.parent)
			}
		}
	}
	t.root.color = Black
}

// deleteFixup repairs the black-height deficiency ("double black") at x
// after a black node has been spliced out above x. x may be the sentinel,
// in which case its parent field points to the parent of the removed node.
func (t *Tree[K, V, E]) deleteFixup(x *Node[K, V, E]) {
	for x != t.root && x.color == Black {
		if x == x.parent.left {
			w := x.parent.right // sibling
			if w.color == Red {
				w.color = Black
				x.parent.color = Red
				t.rotateLeft(x.parent)
				w = x.parent.right
			}
			if w.left.color == Black && w.right.color == Black {
				w.color = Red
				x = x.parent
			} else {
				if w.right.color == Black {
					w.left.color = Black
					w.color = Red
					t.rotateRight(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = Black
				w.right.color = Black
				t.rotateLeft(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.color == Red {
				w.color = Black
				x.parent.color = Red
				t.rotateRight(x.parent)
				w = x.parent.left
			}
			if w.right.color == Black && w.left.color == Black {
				w.color = Red
				x = x.parent
			} else {
				if w.left.color == Black {
					w.right.color = Black
					w.color = Red
					t.rotateLeft(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = Black
				w.left.color = Black
				t.rotateRight(x.parent)
				x = t.root
			}
		}
	}
	x.color = Black
}
