package bintree

import (
	"fmt"
	"iter"
)

// ForEach walks the elements of t in-order.
//
// Iteration stops early if callback returns false.
func (t *Tree[V]) ForEach(fn func(item V) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	for v := range t.InOrder() {
		if !fn(v) {
			return
		}
	}
}

// Values returns the elements of t in-order. For a binary search tree the
// result is sorted.
func (t *Tree[V]) Values() []V {
	var out []V
	for v := range t.InOrder() {
		out = append(out, v)
	}
	return out
}

// InOrder returns an iterator over all elements, left subtree first, then
// node, then right subtree.
func (t *Tree[V]) InOrder() iter.Seq[V] {
	return func(yield func(V) bool) {
		var stack []*Node[V]
		cur := t.Root()
		for cur != nil || len(stack) > 0 {
			for cur != nil {
				stack = append(stack, cur)
				cur = cur.left
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(cur.value) {
				return
			}
			cur = cur.right
		}
	}
}

// PreOrder returns an iterator over all elements, node first, then left and
// right subtree.
func (t *Tree[V]) PreOrder() iter.Seq[V] {
	return func(yield func(V) bool) {
		if t.IsEmpty() {
			return
		}
		stack := []*Node[V]{t.root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.value) {
				return
			}
			if n.right != nil {
				stack = append(stack, n.right)
			}
			if n.left != nil {
				stack = append(stack, n.left)
			}
		}
	}
}

// PostOrder returns an iterator over all elements, subtrees first, node last.
func (t *Tree[V]) PostOrder() iter.Seq[V] {
	return func(yield func(V) bool) {
		var stack []*Node[V]
		var last *Node[V] // most recently yielded node
		cur := t.Root()
		for cur != nil || len(stack) > 0 {
			for cur != nil {
				stack = append(stack, cur)
				cur = cur.left
			}
			top := stack[len(stack)-1]
			if top.right != nil && top.right != last {
				cur = top.right
				continue
			}
			stack = stack[:len(stack)-1]
			if !yield(top.value) {
				return
			}
			last = top
		}
	}
}

// LevelOrder returns an iterator over all elements level by level, starting
// at the root, each level from left to right.
func (t *Tree[V]) LevelOrder() iter.Seq[V] {
	return func(yield func(V) bool) {
		if t.IsEmpty() {
			return
		}
		queue := []*Node[V]{t.root}
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			if !yield(n.value) {
				return
			}
			if n.left != nil {
				queue = append(queue, n.left)
			}
			if n.right != nil {
				queue = append(queue, n.right)
			}
		}
	}
}

// BuildFromInPreOrder replaces the contents of t by the tree described by an
// in-order and a pre-order traversal. Values must be unique.
//
// Returns ErrInvalidArgument if the sequences differ in length, if inorder
// contains duplicates, or if preorder holds a value missing from inorder.
// In these cases t is left unchanged.
//
// Reconstruction runs in O(n), using a lookup table from values to in-order
// positions.
func (t *Tree[V]) BuildFromInPreOrder(inorder, preorder []V) error {
	if len(inorder) != len(preorder) {
		T().Errorf("bintree: traversal lengths differ: %d in-order, %d pre-order",
			len(inorder), len(preorder))
		return fmt.Errorf("%w: traversal lengths differ (%d != %d)",
			ErrInvalidArgument, len(inorder), len(preorder))
	}
	pos := make(map[V]int, len(inorder))
	for i, v := range inorder {
		if _, dup := pos[v]; dup {
			return fmt.Errorf("%w: duplicate value %v in in-order traversal", ErrInvalidArgument, v)
		}
		pos[v] = i
	}
	cursor := 0 // next unconsumed pre-order position
	var build func(low, high int) (*Node[V], error)
	build = func(low, high int) (*Node[V], error) {
		if low > high {
			return nil, nil
		}
		assert(cursor < len(preorder), "pre-order cursor overrun")
		v := preorder[cursor]
		at, ok := pos[v]
		if !ok || at < low || at > high {
			return nil, fmt.Errorf("%w: pre-order value %v does not match in-order traversal",
				ErrInvalidArgument, v)
		}
		cursor++
		n := &Node[V]{value: v}
		var err error
		if n.left, err = build(low, at-1); err != nil {
			return nil, err
		}
		if n.right, err = build(at+1, high); err != nil {
			return nil, err
		}
		return n, nil
	}
	root, err := build(0, len(inorder)-1)
	if err != nil {
		T().Errorf("bintree: cannot rebuild tree %q: %v", t.name, err)
		return err
	}
	t.root = root
	T().Debugf("bintree: rebuilt tree %q from %d traversal items", t.name, len(inorder))
	return nil
}
