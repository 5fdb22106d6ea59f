package bintree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[V any] struct {
	idTable map[*Node[V]]int
	max     int
}

func newtable[V any]() nodeids[V] {
	return nodeids[V]{
		idTable: make(map[*Node[V]]int),
		max:     1,
	}
}

func (ids nodeids[V]) find(node *Node[V]) int {
	return ids.idTable[node]
}

func (ids *nodeids[V]) alloc(node *Node[V]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	id := ids.next()
	ids.idTable[node] = id
	return id
}

// next hands out a fresh id not bound to any node.
func (ids *nodeids[V]) next() int {
	ids.max++
	return ids.max - 1
}

// ToDot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes). Missing children of inner nodes are drawn as
// small empty circles to preserve the left/right distinction.
func (t *Tree[V]) ToDot(w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable[V]()
	var walk func(n *Node[V]) int
	walk = func(n *Node[V]) int {
		ID := ids.alloc(n)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, dotEscape(label(n.value)),
			nodeDotStyles(n.IsLeaf()))
		if n.IsLeaf() {
			return ID
		}
		for _, child := range []*Node[V]{n.left, n.right} {
			if child == nil {
				nilid := ids.next()
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, walk(child))
		}
		return ID
	}
	if !t.IsEmpty() {
		walk(t.root)
	}
	var out strings.Builder
	out.WriteString("strict digraph {\n")
	fmt.Fprintf(&out, "\tlabel=\"%s\";\n", dotEscape(t.Label()))
	out.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	out.WriteString(nodelist.String())
	out.WriteString(edgelist.String())
	out.WriteString("}\n")
	_, err := io.WriteString(w, out.String())
	return err
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r", "", "\n", `\n`)

func dotEscape(s string) string {
	return dotEscaper.Replace(s)
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",fillcolor=\"#a3d7e4\""
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
