package avl

import "cmp"

// updateHeight recomputes the cached height from the children, which must
// already be correct.
func (t *Tree[K, V]) updateHeight(node *Node[K, V]) {
	node.height = 1 + max(height(node.left), height(node.right))
}

func balance[K cmp.Ordered, V any](node *Node[K, V]) int {
	return height(node.left) - height(node.right)
}

// rebalance walks from node up to the root, recomputing heights and
// rotating every ancestor whose balance factor left [-1, 1].
func (t *Tree[K, V]) rebalance(node *Node[K, V]) {
	for node != nil {
		t.updateHeight(node)
		node = t.balanceNode(node)
		node = node.parent
	}
}

// balanceNode restores the balance of node, assuming both of its subtrees
// are balanced, and returns the root of the resulting subtree.
func (t *Tree[K, V]) balanceNode(node *Node[K, V]) *Node[K, V] {
	switch b := balance(node); {
	case b > 1:
		if balance(node.left) < 0 {
			// left right
			t.rotateLeft(node.left)
		}
		// left left
		return t.rotateRight(node)
	case b < -1:
		if balance(node.right) > 0 {
			// right left
			t.rotateRight(node.right)
		}
		// right right
		return t.rotateLeft(node)
	default:
		return node
	}
}

/*
	rotateLeft around pivot:

	     P                 P
	     |                 |
	   pivot               z
	   /   \              / \
	  A     z     →   pivot  C
	       / \        /  \
	      B   C      A    B
*/
func (t *Tree[K, V]) rotateLeft(pivot *Node[K, V]) *Node[K, V] {
	z := pivot.right
	t.replace(pivot, z)
	if z.left != nil {
		pivot.setRight(z.left)
	} else {
		pivot.clearRight()
	}
	z.setLeft(pivot)

	t.updateHeight(pivot)
	t.updateHeight(z)
	return z
}

/*
	rotateRight around pivot:

	       P             P
	       |             |
	     pivot           z
	     /   \          / \
	    z     C   →    A  pivot
	   / \                /  \
	  A   B              B    C
*/
func (t *Tree[K, V]) rotateRight(pivot *Node[K, V]) *Node[K, V] {
	z := pivot.left
	t.replace(pivot, z)
	if z.right != nil {
		pivot.setLeft(z.right)
	} else {
		pivot.clearLeft()
	}
	z.setRight(pivot)

	t.updateHeight(pivot)
	t.updateHeight(z)
	return z
}
