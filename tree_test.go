package bintree

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
)

// redirectTracing routes the core tracer to t's log. The returned teardown
// puts the previous tracer back, so nothing logs into a finished test.
func redirectTracing(t *testing.T) func() {
	prev := gtrace.CoreTracer
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	teardown := gotestingadapter.RedirectTracing(t)
	return func() {
		teardown()
		gtrace.CoreTracer = prev
	}
}

func collect[V any](seq iter.Seq[V]) []V {
	var out []V
	for v := range seq {
		out = append(out, v)
	}
	return out
}

func TestEmptyTree(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	tree := New[int]("empty")
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
		t.Fatalf("unexpected empty tree state len=%d height=%d", tree.Len(), tree.Height())
	}
	if tree.Root() != nil {
		t.Errorf("expected nil root for empty tree")
	}
	if tree.Label() != "empty" {
		t.Errorf("expected label 'empty', got %q", tree.Label())
	}
	if err := tree.Check(); err != nil {
		t.Errorf("expected empty tree to be valid, got %v", err)
	}
}

func TestZeroValueTree(t *testing.T) {
	var tree Tree[int]
	tree.Insert(2)
	tree.Insert(1)
	if tree.Len() != 2 || !tree.Contains(1) {
		t.Fatalf("expected zero-value tree to accept inserts, has %v", tree.Values())
	}
	if tree.Config().Context == nil {
		t.Errorf("expected normalized config to carry a width context")
	}
}

func TestFromSliceOrdered(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	tree := FromSlice([]int{5, 3, 8, 1, 4}, "bst", true)
	if tree.root.value != 5 || tree.root.left.value != 3 || tree.root.right.value != 8 {
		t.Fatalf("unexpected tree shape:\n%s", tree)
	}
	if got := tree.Values(); !slices.Equal(got, []int{1, 3, 4, 5, 8}) {
		t.Errorf("expected in-order 1 3 4 5 8, got %v", got)
	}
	if tree.Len() != 5 || tree.Height() != 3 {
		t.Errorf("expected len=5 and height=3, got len=%d height=%d", tree.Len(), tree.Height())
	}
	if err := tree.CheckOrdered(); err != nil {
		t.Errorf("expected BST invariant to hold, got %v", err)
	}
}

func TestFromSliceUnordered(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	tree := FromSlice([]int{1, 2, 3, 4, 5}, "mid", false)
	root := tree.Root()
	if root.Value() != 3 {
		t.Fatalf("expected root 3, got %d", root.Value())
	}
	if root.Left().Value() != 1 || root.Left().Right().Value() != 2 || root.Left().Left() != nil {
		t.Errorf("expected left subtree 1 -> right 2, got\n%s", tree)
	}
	if root.Right().Value() != 4 || root.Right().Right().Value() != 5 {
		t.Errorf("expected right subtree 4 -> right 5, got\n%s", tree)
	}
	if got := collect(tree.PreOrder()); !slices.Equal(got, []int{3, 1, 2, 4, 5}) {
		t.Errorf("unexpected pre-order %v", got)
	}
	// unordered layout keeps the input order in-order
	shuffled := FromSlice([]int{9, 1, 7}, "shuffled", false)
	if got := shuffled.Values(); !slices.Equal(got, []int{9, 1, 7}) {
		t.Errorf("expected in-order 9 1 7, got %v", got)
	}
	if shuffled.CheckOrdered() == nil {
		t.Errorf("expected unordered layout of 9 1 7 to violate BST invariant")
	}
}

func TestUnorderedLayoutIsBalanced(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	for n := 0; n <= 40; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = n - i
		}
		tree := FromSlice(items, "balanced", false)
		if tree.Len() != n {
			t.Fatalf("n=%d: expected %d nodes, got %d", n, n, tree.Len())
		}
		if h, want := tree.Height(), minHeight(n); h != want {
			t.Errorf("n=%d: expected height %d, got %d", n, want, h)
		}
	}
}

func TestFromRootAndRename(t *testing.T) {
	root := NewNode(2, Leaf(1), Leaf(3))
	tree := FromRoot(root, "hand-built")
	if tree.Root() != root || tree.Len() != 3 {
		t.Fatalf("expected tree to adopt root, got %v", tree.Values())
	}
	tree.Rename("renamed")
	if tree.Label() != "renamed" {
		t.Errorf("expected label 'renamed', got %q", tree.Label())
	}
	if !root.Left().IsLeaf() || root.IsLeaf() {
		t.Errorf("unexpected leaf predicates")
	}
	if s := root.String(); s != "Node:2" {
		t.Errorf("expected 'Node:2', got %q", s)
	}
}

func TestNewWithConfig(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	tree, err := NewWithConfig[int]("cfg", Config{TieBreak: TieRightmost, Prune: PruneAtOrBelow})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := tree.Config()
	if cfg.TieBreak != TieRightmost || cfg.Prune != PruneAtOrBelow {
		t.Errorf("expected config to be stored, got %+v", cfg)
	}
	if cfg.Context != uax11.LatinContext {
		t.Errorf("expected default width context")
	}
	for _, bad := range []Config{
		{TieBreak: TieBreak(7)},
		{Prune: PruneBoundary(-1)},
		{Color: ColorMode(3)},
	} {
		if _, err := NewWithConfig[int]("bad", bad); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig for %+v, got %v", bad, err)
		}
	}
}

func TestPolicyNames(t *testing.T) {
	if TieGreatest.String() != "greatest" || TieBreak(9).String() != "TieBreak(9)" {
		t.Errorf("unexpected tie-break names")
	}
	if PruneAtOrBelow.String() != "at-or-below" || PruneBoundary(5).String() != "PruneBoundary(5)" {
		t.Errorf("unexpected prune boundary names")
	}
}

func TestRedirectTracingRestoresTracer(t *testing.T) {
	before := gtrace.CoreTracer
	t.Run("inner", func(t *testing.T) {
		teardown := redirectTracing(t)
		defer teardown()
		FromSlice([]int{1, 2}, "inner", true)
		if gtrace.CoreTracer == before {
			t.Errorf("expected core tracer to log to the running test")
		}
	})
	if gtrace.CoreTracer != before {
		t.Fatalf("expected previous core tracer after teardown")
	}
	FromSlice([]int{3, 4}, "after", true) // must not log into the finished subtest
}
