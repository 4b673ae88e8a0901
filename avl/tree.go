package avl

import "cmp"

// Tree is an ordered map from K to V kept height balanced after every
// insertion and deletion.
type Tree[K cmp.Ordered, V any] struct {
	root  *Node[K, V]
	count int
}

// New returns an empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.root
}

func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Size is the number of distinct keys stored.
func (t *Tree[K, V]) Size() int {
	return t.count
}

// Height of the tree; -1 when empty, 0 for a single node.
func (t *Tree[K, V]) Height() int {
	return height(t.root)
}

func (t *Tree[K, V]) find(key K) *Node[K, V] {
	node := t.root
	for node != nil {
		switch c := cmp.Compare(key, node.key); {
		case c < 0:
			node = node.left
		case c > 0:
			node = node.right
		default:
			return node
		}
	}
	return nil
}

func (t *Tree[K, V]) Contains(key K) bool {
	return t.find(key) != nil
}

// Get returns the value stored under key and whether it was present.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	node := t.find(key)
	if node == nil {
		var zero V
		return zero, false
	}
	return node.value, true
}

// Update replaces the value of an existing key. It never inserts; the
// return value reports whether key was present.
func (t *Tree[K, V]) Update(key K, value V) bool {
	node := t.find(key)
	if node == nil {
		return false
	}
	node.value = value
	return true
}

// Min returns the value of the smallest key.
func (t *Tree[K, V]) Min() (V, error) {
	if t.root == nil {
		var zero V
		return zero, ErrEmptyTree
	}
	return t.root.min().value, nil
}

// Max returns the value of the largest key.
func (t *Tree[K, V]) Max() (V, error) {
	if t.root == nil {
		var zero V
		return zero, ErrEmptyTree
	}
	return t.root.max().value, nil
}

func (t *Tree[K, V]) MinKey() (K, error) {
	if t.root == nil {
		var zero K
		return zero, ErrEmptyTree
	}
	return t.root.min().key, nil
}

func (t *Tree[K, V]) MaxKey() (K, error) {
	if t.root == nil {
		var zero K
		return zero, ErrEmptyTree
	}
	return t.root.max().key, nil
}

// Insert stores value under key. If key is already present only its value
// is replaced and the shape of the tree is left untouched. Returns true when
// a new node was added.
func (t *Tree[K, V]) Insert(key K, value V) bool {
	if t.root == nil {
		t.root = newNode(key, value)
		t.count++
		return true
	}

	parent := t.root
	for {
		c := cmp.Compare(key, parent.key)
		if c == 0 {
			parent.value = value
			return false
		}
		var next *Node[K, V]
		if c < 0 {
			next = parent.left
		} else {
			next = parent.right
		}
		if next == nil {
			leaf := newNode(key, value)
			if c < 0 {
				parent.setLeft(leaf)
			} else {
				parent.setRight(leaf)
			}
			break
		}
		parent = next
	}

	t.count++
	t.rebalance(parent)
	return true
}

// Delete removes key and returns its value. Deleting an absent key is a
// no-op that returns false.
func (t *Tree[K, V]) Delete(key K) (V, bool) {
	node := t.find(key)
	if node == nil {
		var zero V
		return zero, false
	}

	// lowest node whose subtree lost a level
	var changed *Node[K, V]
	switch {
	case node.left == nil:
		changed = node.parent
		t.replace(node, node.right)
	case node.right == nil:
		changed = node.parent
		t.replace(node, node.left)
	default:
		successor := node.right.min()
		if successor.parent != node {
			changed = successor.parent
			t.replace(successor, successor.right)
			successor.setRight(node.right)
		} else {
			changed = successor
		}
		t.replace(node, successor)
		successor.setLeft(node.left)
	}

	value := node.value
	node.detach()
	t.count--
	t.rebalance(changed)
	return value, true
}

// replace puts with (possibly nil) in the position occupied by node.
func (t *Tree[K, V]) replace(node, with *Node[K, V]) {
	parent := node.parent
	switch {
	case parent == nil:
		t.root = with
		if with != nil {
			with.parent = nil
		}
		return
	case parent.left == node:
		if with == nil {
			parent.clearLeft()
		} else {
			parent.setLeft(with)
		}
	default:
		if with == nil {
			parent.clearRight()
		} else {
			parent.setRight(with)
		}
	}
}
