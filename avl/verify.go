package avl

import (
	"cmp"
	"fmt"
)

// Verify checks the structural invariants of the tree:
//  1. the root has no parent and every child points back at its parent
//  2. keys are strictly increasing in order
//  3. cached heights equal 1 + max(height(left), height(right))
//  4. every balance factor is within [-1, 1]
//  5. the number of reachable nodes equals Size
//
// The first violation found is returned wrapped in ErrCorrupt.
func (t *Tree[K, V]) Verify() error {
	if t.root == nil {
		if t.count != 0 {
			return fmt.Errorf("%w: empty tree with size %d", ErrCorrupt, t.count)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root %v has parent %v", ErrCorrupt, t.root.key, t.root.parent.key)
	}

	v := &verifier[K, V]{}
	if _, err := v.check(t.root); err != nil {
		return err
	}
	if v.nodes != t.count {
		return fmt.Errorf("%w: %d reachable nodes, size %d", ErrCorrupt, v.nodes, t.count)
	}
	return nil
}

type verifier[K cmp.Ordered, V any] struct {
	nodes   int
	prev    K
	hasPrev bool
}

// check walks the subtree in order and returns its recomputed height.
func (v *verifier[K, V]) check(node *Node[K, V]) (int, error) {
	if node == nil {
		return -1, nil
	}

	if node.left != nil && node.left.parent != node {
		return 0, fmt.Errorf("%w: left child %v of %v does not point back", ErrCorrupt, node.left.key, node.key)
	}
	lh, err := v.check(node.left)
	if err != nil {
		return 0, err
	}

	if v.hasPrev && cmp.Compare(v.prev, node.key) >= 0 {
		return 0, fmt.Errorf("%w: key %v follows %v", ErrCorrupt, node.key, v.prev)
	}
	v.prev, v.hasPrev = node.key, true
	v.nodes++

	if node.right != nil && node.right.parent != node {
		return 0, fmt.Errorf("%w: right child %v of %v does not point back", ErrCorrupt, node.right.key, node.key)
	}
	rh, err := v.check(node.right)
	if err != nil {
		return 0, err
	}

	h := 1 + max(lh, rh)
	if node.height != h {
		return 0, fmt.Errorf("%w: node %v caches height %d, actual %d", ErrCorrupt, node.key, node.height, h)
	}
	if b := lh - rh; b < -1 || b > 1 {
		return 0, fmt.Errorf("%w: node %v has balance factor %d", ErrCorrupt, node.key, b)
	}
	return h, nil
}
