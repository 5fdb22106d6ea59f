package bintree

import (
	"bytes"
	"slices"
	"testing"
)

func TestDeepestNode(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	for _, c := range []struct {
		tb   TieBreak
		want int
	}{
		{TieGreatest, 4},
		{TieLeftmost, 1},
		{TieRightmost, 4},
	} {
		tree, err := NewWithConfig[int]("deep", Config{TieBreak: c.tb})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, x := range []int{5, 3, 8, 1, 4} {
			tree.Insert(x)
		}
		got, ok := tree.DeepestNode()
		if !ok || got != c.want {
			t.Errorf("policy %s: expected deepest node %d, got %d", c.tb, c.want, got)
		}
	}
	if _, ok := New[int]("empty").DeepestNode(); ok {
		t.Errorf("expected no deepest node in empty tree")
	}
}

func TestDeepestNodePrefersDepth(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	// 9 is greater, but 2 is deeper
	tree := FromRoot(NewNode(5, NewNode(3, Leaf(2), nil), Leaf(9)), "deep")
	if got, _ := tree.DeepestNode(); got != 2 {
		t.Errorf("expected deepest node 2, got %d", got)
	}
	tree = FromRoot(NewNode(5, Leaf(7), Leaf(7)), "ties")
	if got, _ := tree.DeepestNode(); got != 7 {
		t.Errorf("expected deepest node 7, got %d", got)
	}
	if got, _ := FromSlice([]int{42}, "single", true).DeepestNode(); got != 42 {
		t.Errorf("expected lone root to be deepest, got %d", got)
	}
}

func TestFlip(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	tree := FromSlice([]int{5, 3, 8, 1, 4}, "flip", true)
	pre, in := collect(tree.PreOrder()), tree.Values()
	tree.Flip()
	if got := tree.Values(); !slices.Equal(got, []int{8, 5, 4, 3, 1}) {
		t.Errorf("expected mirrored in-order 8 5 4 3 1, got %v", got)
	}
	if got := collect(tree.PreOrder()); !slices.Equal(got, []int{5, 8, 3, 4, 1}) {
		t.Errorf("expected mirrored pre-order 5 8 3 4 1, got %v", got)
	}
	tree.Flip()
	if !slices.Equal(collect(tree.PreOrder()), pre) || !slices.Equal(tree.Values(), in) {
		t.Errorf("expected flip to be its own inverse, got\n%s", tree)
	}
	empty := New[int]("empty")
	empty.Flip()
	if !empty.IsEmpty() {
		t.Errorf("expected flipped empty tree to stay empty")
	}
}

func TestNodesInLevel(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	tree := FromSlice([]int{5, 3, 8, 1, 4}, "levels", true)
	for level, want := range []int{1, 2, 2, 0, 0} {
		if got := tree.NodesInLevel(level); got != want {
			t.Errorf("expected %d nodes in level %d, got %d", want, level, got)
		}
	}
	if tree.NodesInLevel(-1) != 0 {
		t.Errorf("expected no nodes in negative level")
	}
	if New[int]("empty").NodesInLevel(0) != 0 {
		t.Errorf("expected no nodes in empty tree")
	}
}

func TestAllPaths(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	tree := FromSlice([]int{5, 3, 8, 1, 4}, "paths", true)
	paths := tree.AllPaths()
	want := [][]int{{5, 3, 1}, {5, 3, 4}, {5, 8}}
	if len(paths) != len(want) {
		t.Fatalf("expected %d paths, got %v", len(want), paths)
	}
	for i := range want {
		if !slices.Equal(paths[i], want[i]) {
			t.Errorf("expected path %v, got %v", want[i], paths[i])
		}
	}
	var out bytes.Buffer
	if err := tree.PrintAllPaths(&out); err != nil {
		t.Fatalf("PrintAllPaths failed: %v", err)
	}
	if out.String() != "5 3 1\n5 3 4\n5 8\n" {
		t.Errorf("unexpected paths output %q", out.String())
	}
	out.Reset()
	if err := New[int]("empty").PrintAllPaths(&out); err != nil || out.Len() != 0 {
		t.Errorf("expected no output for empty tree, got %q", out.String())
	}
}
