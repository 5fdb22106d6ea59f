package bintree

import "golang.org/x/exp/constraints"

// bstSummary is the result of a post-order visit of a subtree.
type bstSummary[V any] struct {
	count    int  // number of embedded BSTs within the subtree
	isBST    bool // the subtree as a whole is a BST
	bounded  bool // min and max are valid; false for empty or non-BST subtrees
	min, max V
}

// CountBST counts all non-empty subtrees of t which are binary search trees
// on their own, including t itself. Ordering is checked strictly: a subtree
// qualifies if all values in its left subtree are smaller and all values in
// its right subtree are greater than its root value. Subtrees holding
// duplicates of their root value therefore do not qualify.
//
// CountBST is a single post-order pass and runs in O(n).
func (t *Tree[V]) CountBST() int {
	if t.IsEmpty() {
		return 0
	}
	return countBST(t.root).count
}

func countBST[V constraints.Ordered](n *Node[V]) bstSummary[V] {
	if n == nil {
		return bstSummary[V]{isBST: true}
	}
	l, r := countBST(n.left), countBST(n.right)
	isBST := l.isBST && r.isBST &&
		(!l.bounded || l.max < n.value) &&
		(!r.bounded || r.min > n.value)
	if !isBST {
		// an ancestor cannot qualify, so bounds are of no further interest
		return bstSummary[V]{count: l.count + r.count}
	}
	s := bstSummary[V]{
		count:   1 + l.count + r.count,
		isBST:   true,
		bounded: true,
		min:     n.value,
		max:     n.value,
	}
	if l.bounded {
		s.min = l.min
	}
	if r.bounded {
		s.max = r.max
	}
	return s
}
