package bintree

/*
BSD 3-Clause License

Copyright (c) 2024, Edwin TJ

Please refer to the License file in the repository root.

*/

import (
	"golang.org/x/exp/constraints"
)

// Node is a node of a binary tree. A node exclusively owns its children;
// nodes must never be shared between trees or between parents.
type Node[V any] struct {
	value V
	left  *Node[V]
	right *Node[V]
}

// NewNode creates a node from a value and two (possibly nil) children.
// Ownership of left and right passes to the new node.
func NewNode[V any](value V, left, right *Node[V]) *Node[V] {
	return &Node[V]{value: value, left: left, right: right}
}

// Leaf creates a node without children.
func Leaf[V any](value V) *Node[V] {
	return &Node[V]{value: value}
}

// Value returns the element stored in node n.
func (n *Node[V]) Value() V {
	return n.value
}

// Left returns the left child of n, or nil.
func (n *Node[V]) Left() *Node[V] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child of n, or nil.
func (n *Node[V]) Right() *Node[V] {
	if n == nil {
		return nil
	}
	return n.right
}

// IsLeaf is a predicate.
func (n *Node[V]) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

func (n *Node[V]) String() string {
	if n == nil {
		return "Node:<nil>"
	}
	return "Node:" + label(n.value)
}

// Tree is a binary tree of ordered elements, carrying a display label.
//
// A tree created by
//
//	&Tree[int]{}
//
// is a valid empty tree with an empty label and the default configuration.
type Tree[V constraints.Ordered] struct {
	root *Node[V]
	name string
	cfg  Config
}

// New creates an empty tree with a label and default configuration.
func New[V constraints.Ordered](name string) *Tree[V] {
	return &Tree[V]{name: name, cfg: DefaultConfig()}
}

// NewWithConfig creates an empty tree with a validated configuration.
func NewWithConfig[V constraints.Ordered](name string, cfg Config) (*Tree[V], error) {
	if err := cfg.validate(); err != nil {
		T().Errorf("bintree: rejecting config for tree %q: %v", name, err)
		return nil, err
	}
	return &Tree[V]{name: name, cfg: cfg.normalized()}, nil
}

// FromSlice builds a tree from a sequence of items.
//
// If ordered is true, every item is inserted in sequence order, yielding a
// binary search tree. Otherwise the tree is laid out by midpoint recursion:
// the middle item becomes the root, the lower half builds the left subtree
// and the upper half the right subtree. No ordering is implied in this case,
// only a balanced shape.
func FromSlice[V constraints.Ordered](items []V, name string, ordered bool) *Tree[V] {
	t := New[V](name)
	if ordered {
		for _, x := range items {
			t.Insert(x)
		}
	} else {
		t.root = buildMidpoint(items)
	}
	T().Debugf("bintree: built tree %q from %d items (ordered=%v)", name, len(items), ordered)
	return t
}

// FromRoot creates a tree adopting a hand-built node structure. The caller
// must not retain or share any of the nodes.
func FromRoot[V constraints.Ordered](root *Node[V], name string) *Tree[V] {
	t := New[V](name)
	t.root = root
	return t
}

// buildMidpoint lays out items as a minimal-height tree, picking the
// midpoint (low+high)/2 of every sub-range as the subtree root.
func buildMidpoint[V any](items []V) *Node[V] {
	var build func(low, high int) *Node[V]
	build = func(low, high int) *Node[V] {
		if low > high {
			return nil
		}
		mid := (low + high) / 2
		n := &Node[V]{value: items[mid]}
		n.left = build(low, mid-1)
		n.right = build(mid+1, high)
		return n
	}
	return build(0, len(items)-1)
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[V]) Config() Config {
	return t.cfg.normalized()
}

// Label returns the display label of the tree.
func (t *Tree[V]) Label() string {
	return t.name
}

// Rename changes the display label of the tree.
func (t *Tree[V]) Rename(name string) {
	t.name = name
}

// Root returns the root node of t, or nil for an empty tree.
func (t *Tree[V]) Root() *Node[V] {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of nodes in the tree.
func (t *Tree[V]) Len() int {
	cnt := 0
	t.ForEach(func(V) bool {
		cnt++
		return true
	})
	return cnt
}

// Height returns the tree height, where 0 means empty and 1 means a lone root.
func (t *Tree[V]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	return height(t.root)
}

func height[V any](n *Node[V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}
