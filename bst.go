package bintree

import "golang.org/x/exp/constraints"

// Operations in this file rely on the BST invariant
//
//	left < node <= right
//
// and produce undefined (but memory-safe) results for unordered trees.

// Insert adds x to a binary search tree. Duplicates are allowed and are
// always placed into the right subtree of an equal element.
//
// Insert runs in O(height).
func (t *Tree[V]) Insert(x V) {
	n := &Node[V]{value: x}
	if t.root == nil {
		t.root = n
		return
	}
	cur := t.root
	for {
		if x < cur.value {
			if cur.left == nil {
				cur.left = n
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				return
			}
			cur = cur.right
		}
	}
}

// Contains reports whether item is stored in a binary search tree.
//
// Contains runs in O(height).
func (t *Tree[V]) Contains(item V) bool {
	cur := t.Root()
	for cur != nil {
		switch {
		case item < cur.value:
			cur = cur.left
		case item > cur.value:
			cur = cur.right
		default:
			return true
		}
	}
	return false
}

// LCA returns the lowest common ancestor of a and b in a binary search tree.
// The second return value is false for an empty tree.
//
// LCA does not check whether a and b are actually present: it reports the
// node where the search paths for a and b diverge (or where one of them
// matches), based on comparisons alone.
func (t *Tree[V]) LCA(a, b V) (V, bool) {
	cur := t.Root()
	for cur != nil {
		if a < cur.value && b < cur.value {
			cur = cur.left
		} else if a > cur.value && b > cur.value {
			cur = cur.right
		} else {
			return cur.value, true
		}
	}
	var zero V
	return zero, false
}

// Balance rebuilds a binary search tree into minimal height. The in-order
// sequence of elements is unchanged; for unique elements the resulting height
// is ⌈log2(n+1)⌉. Runs of duplicates may add to the height, as an element
// equal to a subtree root must not end up in its left subtree.
func (t *Tree[V]) Balance() {
	if t.IsEmpty() {
		return
	}
	items := t.Values()
	t.root = buildSorted(items)
	T().Debugf("bintree: balanced tree %q, %d nodes, height %d", t.name, len(items), t.Height())
}

// buildSorted is buildMidpoint for sorted items, moving the midpoint of a
// sub-range to the first of a run of equal elements.
func buildSorted[V constraints.Ordered](items []V) *Node[V] {
	var build func(low, high int) *Node[V]
	build = func(low, high int) *Node[V] {
		if low > high {
			return nil
		}
		mid := (low + high) / 2
		for mid > low && items[mid-1] == items[mid] {
			mid--
		}
		n := &Node[V]{value: items[mid]}
		n.left = build(low, mid-1)
		n.right = build(mid+1, high)
		return n
	}
	return build(0, len(items)-1)
}

// KeepRange prunes a binary search tree to the nodes with low <= value <= high.
// Subtrees which are out of range as a whole are discarded without being
// visited. If low > high, the tree will be empty afterwards.
func (t *Tree[V]) KeepRange(low, high V) {
	if t.IsEmpty() {
		return
	}
	t.root = keepRange(t.root, low, high)
	T().Debugf("bintree: kept range [%v,%v] of tree %q", low, high, t.name)
}

func keepRange[V constraints.Ordered](n *Node[V], low, high V) *Node[V] {
	if n == nil {
		return nil
	}
	if n.value < low { // left subtree is smaller still
		return keepRange(n.right, low, high)
	}
	if n.value > high { // right subtree is greater still
		return keepRange(n.left, low, high)
	}
	n.left = keepRange(n.left, low, high)
	n.right = keepRange(n.right, low, high)
	return n
}
