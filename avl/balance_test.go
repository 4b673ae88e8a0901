package avl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// chain builds an unbalanced right spine 1 -> 2 -> 3 without rebalancing.
func chain(keys ...int) *Tree[int, int] {
	tree := New[int, int]()
	var prev *Node[int, int]
	for _, k := range keys {
		n := newNode(k, k)
		if prev == nil {
			tree.root = n
		} else {
			prev.setRight(n)
		}
		prev = n
		tree.count++
	}
	for n := prev; n != nil; n = n.parent {
		tree.updateHeight(n)
	}
	return tree
}

func TestRotateLeft(t *testing.T) {
	tree := chain(1, 2, 3)
	require.Equal(t, 2, tree.Height())
	require.Equal(t, -2, balance(tree.root))

	z := tree.rotateLeft(tree.root)
	require.Same(t, z, tree.root)
	require.Equal(t, 2, z.key)
	require.Nil(t, z.parent)
	require.Equal(t, 1, z.left.key)
	require.Equal(t, 3, z.right.key)
	require.Equal(t, 1, z.height)
	require.Equal(t, 0, z.left.height)
	require.NoError(t, tree.Verify())
}

func TestRotateRightInsideSubtree(t *testing.T) {
	tree := New[int, int]()
	for _, k := range []int{4, 2, 6, 1, 3} {
		tree.Insert(k, k)
	}
	pivot := tree.root.left
	z := tree.rotateRight(pivot)
	require.Equal(t, 1, z.key)
	require.Same(t, tree.root, z.parent)
	require.Same(t, z, tree.root.left)
	require.Equal(t, 2, z.right.key)
	require.Equal(t, 3, z.right.right.key)

	// subtree is now out of balance, the rest of the bookkeeping holds
	require.Equal(t, 2, z.height)
	tree.rebalance(z)
	require.NoError(t, tree.Verify())
}

func TestBalanceNodePicksRotation(t *testing.T) {
	cases := []struct {
		name string
		keys []int
		root int
	}{
		{"right right", []int{1, 2, 3}, 2},
		{"right left", []int{1, 3, 2}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tree := New[int, int]()
			root := newNode(tc.keys[0], 0)
			mid := newNode(tc.keys[1], 0)
			last := newNode(tc.keys[2], 0)
			tree.root = root
			tree.count = 3
			root.setRight(mid)
			if tc.keys[2] > tc.keys[1] {
				mid.setRight(last)
			} else {
				mid.setLeft(last)
			}
			tree.updateHeight(last)
			tree.updateHeight(mid)
			tree.updateHeight(root)

			newRoot := tree.balanceNode(root)
			require.Equal(t, tc.root, newRoot.key)
			require.Same(t, newRoot, tree.root)
			require.NoError(t, tree.Verify())
		})
	}
}

func TestVerifyDetectsCorruption(t *testing.T) {
	build := func() *Tree[int, int] {
		tree := New[int, int]()
		for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
			tree.Insert(k, k)
		}
		return tree
	}

	cases := []struct {
		name    string
		corrupt func(tree *Tree[int, int])
	}{
		{"stale height", func(tree *Tree[int, int]) { tree.root.left.height = 5 }},
		{"broken parent", func(tree *Tree[int, int]) { tree.root.right.parent = tree.root.left }},
		{"bad order", func(tree *Tree[int, int]) { tree.root.left.right.key = 9 }},
		{"wrong size", func(tree *Tree[int, int]) { tree.count++ }},
		{"root with parent", func(tree *Tree[int, int]) { tree.root.parent = tree.root.left }},
		{"unbalanced", func(tree *Tree[int, int]) {
			leaf := tree.root.left.left
			for i := 0; i < 2; i++ {
				n := newNode(-i-1, 0)
				leaf.setLeft(n)
				leaf = n
				tree.count++
			}
			for n := leaf; n != nil; n = n.parent {
				tree.updateHeight(n)
			}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tree := build()
			require.NoError(t, tree.Verify())
			tc.corrupt(tree)
			require.ErrorIs(t, tree.Verify(), ErrCorrupt)
		})
	}

	empty := New[int, int]()
	empty.count = 1
	require.ErrorIs(t, empty.Verify(), ErrCorrupt)
}
