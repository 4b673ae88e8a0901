package avl

import "cmp"

// Node is a single cell of a Tree. Only the tree mutates nodes; callers may
// inspect them through the read accessors.
type Node[K cmp.Ordered, V any] struct {
	key    K
	value  V
	height int

	parent *Node[K, V] // not owning, nil for the root
	left   *Node[K, V]
	right  *Node[K, V]
}

func newNode[K cmp.Ordered, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{key: key, value: value}
}

func (node *Node[K, V]) Key() K {
	return node.key
}

func (node *Node[K, V]) Value() V {
	return node.value
}

// Height is the cached height of the subtree rooted at node; a leaf has height 0.
func (node *Node[K, V]) Height() int {
	return node.height
}

func (node *Node[K, V]) Parent() *Node[K, V] {
	return node.parent
}

func (node *Node[K, V]) Left() *Node[K, V] {
	return node.left
}

func (node *Node[K, V]) Right() *Node[K, V] {
	return node.right
}

func (node *Node[K, V]) HasLeft() bool {
	return node.left != nil
}

func (node *Node[K, V]) HasRight() bool {
	return node.right != nil
}

func (node *Node[K, V]) IsRoot() bool {
	return node.parent == nil
}

func (node *Node[K, V]) isLeaf() bool {
	return node.left == nil && node.right == nil
}

// setLeft links child as the left subtree and points it back at node.
// Use clearLeft to remove the left subtree.
func (node *Node[K, V]) setLeft(child *Node[K, V]) {
	if child == nil {
		panic(ErrNilChild)
	}
	node.left = child
	child.parent = node
}

// setRight links child as the right subtree and points it back at node.
// Use clearRight to remove the right subtree.
func (node *Node[K, V]) setRight(child *Node[K, V]) {
	if child == nil {
		panic(ErrNilChild)
	}
	node.right = child
	child.parent = node
}

func (node *Node[K, V]) clearLeft() {
	node.left = nil
}

func (node *Node[K, V]) clearRight() {
	node.right = nil
}

// detach drops every link of a removed node so that it does not keep the
// rest of the tree reachable.
func (node *Node[K, V]) detach() {
	node.parent = nil
	node.left = nil
	node.right = nil
}

func (node *Node[K, V]) min() *Node[K, V] {
	for node.left != nil {
		node = node.left
	}
	return node
}

func (node *Node[K, V]) max() *Node[K, V] {
	for node.right != nil {
		node = node.right
	}
	return node
}

func height[K cmp.Ordered, V any](node *Node[K, V]) int {
	if node == nil {
		return -1
	}
	return node.height
}
