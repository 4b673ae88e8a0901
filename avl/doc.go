// Package avl implements a generic ordered map on top of an AVL balanced
// binary search tree. Nodes keep a pointer to their parent so that
// rebalancing can walk from a changed node back up to the root without
// recursion.
//
// Keys are ordered by their natural order (cmp.Ordered). Inserting a key
// that is already present overwrites its value.
//
// A Tree is not safe for concurrent use; serialize access externally, for
// example with one mutex per tree.
package avl
