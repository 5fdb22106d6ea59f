package bintree

import "golang.org/x/exp/constraints"

// Number is the capability required from elements which are summed up along
// paths. It is distinct from (and stricter than) the ordering required for
// all other tree operations.
type Number interface {
	constraints.Integer | constraints.Float
}

// PruneK removes all root-to-leaf paths of t whose element sum falls short of
// sum, according to the tree's PruneBoundary policy.
//
// Only leaves are removed. Removing leaves may turn their parent into a leaf,
// which then is subject to the same test with its own (shorter) path sum.
// Inner nodes with at least one surviving child are always kept.
func PruneK[N Number](t *Tree[N], sum N) {
	if t.IsEmpty() {
		return
	}
	inclusive := t.cfg.Prune == PruneAtOrBelow
	short := func(pathSum N) bool {
		if inclusive {
			return pathSum <= sum
		}
		return pathSum < sum
	}
	// the running sum is carried downwards rather than the remaining amount,
	// which would wrap around for unsigned element types
	var prune func(n *Node[N], pathSum N) *Node[N]
	prune = func(n *Node[N], pathSum N) *Node[N] {
		if n == nil {
			return nil
		}
		pathSum += n.value
		n.left = prune(n.left, pathSum)
		n.right = prune(n.right, pathSum)
		if n.IsLeaf() && short(pathSum) {
			return nil
		}
		return n
	}
	t.root = prune(t.root, 0)
	T().Debugf("bintree: pruned paths with sum %s %v from tree %q", t.cfg.Prune, sum, t.name)
}

// Sum returns the sum of all elements of t, or 0 for an empty tree.
func Sum[N Number](t *Tree[N]) N {
	var total N
	for v := range t.InOrder() {
		total += v
	}
	return total
}
