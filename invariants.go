package bintree

import "fmt"

// Check validates structural tree invariants: every node is reachable from the
// root exactly once, i.e., the node graph is a proper tree without cycles or
// shared subtrees.
//
// Check is intended for tests and for validating hand-built trees (see
// FromRoot).
func (t *Tree[V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrBrokenInvariant)
	}
	seen := make(map[*Node[V]]struct{})
	stack := []*Node[V]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			continue
		}
		if _, dup := seen[n]; dup {
			return fmt.Errorf("%w: node %v reachable more than once", ErrBrokenInvariant, n)
		}
		seen[n] = struct{}{}
		stack = append(stack, n.left, n.right)
	}
	return nil
}

// CheckOrdered validates the structural invariants plus the binary search tree
// invariant: for every node, values in its left subtree are smaller and
// values in its right subtree are greater than or equal to its value.
func (t *Tree[V]) CheckOrdered() error {
	if err := t.Check(); err != nil {
		return err
	}
	var prev *Node[V]
	var err error
	var walk func(n *Node[V]) bool
	walk = func(n *Node[V]) bool { // in-order, comparing neighbours
		if n == nil {
			return true
		}
		if !walk(n.left) {
			return false
		}
		if prev != nil && n.value < prev.value {
			err = fmt.Errorf("%w: %v follows %v in-order", ErrBrokenInvariant, n.value, prev.value)
			return false
		}
		prev = n
		return walk(n.right)
	}
	walk(t.root)
	if err != nil {
		return err
	}
	return t.checkNoLeftDuplicates()
}

// checkNoLeftDuplicates verifies that no left subtree holds a value equal to
// its parent's, as insertion routes duplicates to the right.
func (t *Tree[V]) checkNoLeftDuplicates() error {
	var check func(n *Node[V]) error
	check = func(n *Node[V]) error {
		if n == nil {
			return nil
		}
		if n.left != nil {
			m := n.left
			for m.right != nil { // maximum of left subtree
				m = m.right
			}
			if !(m.value < n.value) {
				return fmt.Errorf("%w: left subtree of %v holds %v", ErrBrokenInvariant, n.value, m.value)
			}
		}
		if err := check(n.left); err != nil {
			return err
		}
		return check(n.right)
	}
	return check(t.root)
}
