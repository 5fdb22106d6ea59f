package bintree

import (
	"fmt"
	"strings"
)

func label[V any](v V) string {
	return fmt.Sprint(v)
}

// String returns the tree's label followed by a sideways listing of the
// tree: one element per line, right subtree on top, indented by two spaces
// per level of depth. Turned counter-clockwise, the listing shows the tree's
// shape.
func (t *Tree[V]) String() string {
	if t.IsEmpty() {
		return t.emptyString()
	}
	var sb strings.Builder
	sb.WriteString(t.name)
	sb.WriteByte('\n')
	var list func(n *Node[V], indent string)
	list = func(n *Node[V], indent string) {
		if n == nil {
			return
		}
		list(n.right, indent+"  ")
		sb.WriteString(indent)
		sb.WriteString(label(n.value))
		sb.WriteByte('\n')
		list(n.left, indent+"  ")
	}
	list(t.root, "")
	return sb.String()
}

// Flat returns the tree's label followed by all elements in-order, on a
// single line and separated by spaces.
func (t *Tree[V]) Flat() string {
	if t.IsEmpty() {
		return t.emptyString()
	}
	var sb strings.Builder
	sb.WriteString(t.name)
	for v := range t.InOrder() {
		sb.WriteByte(' ')
		sb.WriteString(label(v))
	}
	return sb.String()
}

func (t *Tree[V]) emptyString() string {
	if t == nil {
		return "<nil> Empty tree"
	}
	return t.name + " Empty tree"
}
