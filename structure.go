package bintree

import (
	"fmt"
	"io"
	"strings"
)

// DeepestNode returns the element of a node at maximal depth. If more than one
// node is at maximal depth, the tree's TieBreak policy selects one of them.
// The second return value is false for an empty tree.
func (t *Tree[V]) DeepestNode() (V, bool) {
	if t.IsEmpty() {
		var zero V
		return zero, false
	}
	tb := t.cfg.TieBreak
	var deepest func(n *Node[V], depth int) (*Node[V], int)
	deepest = func(n *Node[V], depth int) (*Node[V], int) {
		if n == nil {
			return nil, -1
		}
		l, ld := deepest(n.left, depth+1)
		r, rd := deepest(n.right, depth+1)
		switch {
		case l == nil && r == nil:
			return n, depth
		case r == nil || ld > rd:
			return l, ld
		case l == nil || rd > ld:
			return r, rd
		}
		switch tb { // equal depth
		case TieLeftmost:
			return l, ld
		case TieRightmost:
			return r, rd
		}
		if l.value >= r.value {
			return l, ld
		}
		return r, rd
	}
	n, _ := deepest(t.root, 0)
	return n.value, true
}

// Flip mirrors the tree in place, swapping left and right children of every
// node. Flip is its own inverse.
func (t *Tree[V]) Flip() {
	if t.IsEmpty() {
		return
	}
	var flip func(n *Node[V])
	flip = func(n *Node[V]) {
		if n == nil {
			return
		}
		n.left, n.right = n.right, n.left
		flip(n.left)
		flip(n.right)
	}
	flip(t.root)
	T().Debugf("bintree: flipped tree %q", t.name)
}

// NodesInLevel counts the nodes at a given depth, where the root has depth 0.
// Levels below the tree's height (or negative ones) hold no nodes.
func (t *Tree[V]) NodesInLevel(level int) int {
	if level < 0 {
		return 0
	}
	var count func(n *Node[V], depth int) int
	count = func(n *Node[V], depth int) int {
		if n == nil {
			return 0
		}
		if depth == level {
			return 1
		}
		return count(n.left, depth+1) + count(n.right, depth+1)
	}
	return count(t.Root(), 0)
}

// AllPaths returns every root-to-leaf path, left paths first. Each path lists
// its elements from the root down to the leaf.
func (t *Tree[V]) AllPaths() [][]V {
	var paths [][]V
	var path []V
	var walk func(n *Node[V])
	walk = func(n *Node[V]) {
		if n == nil {
			return
		}
		path = append(path, n.value)
		if n.IsLeaf() {
			paths = append(paths, append([]V(nil), path...))
		} else {
			walk(n.left)
			walk(n.right)
		}
		path = path[:len(path)-1]
	}
	walk(t.Root())
	return paths
}

// PrintAllPaths writes every root-to-leaf path to w, one line per leaf, with
// elements separated by a single space.
func (t *Tree[V]) PrintAllPaths(w io.Writer) error {
	for _, path := range t.AllPaths() {
		labels := make([]string, len(path))
		for i, v := range path {
			labels[i] = label(v)
		}
		if _, err := fmt.Fprintln(w, strings.Join(labels, " ")); err != nil {
			return err
		}
	}
	return nil
}
