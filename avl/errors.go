package avl

import "errors"

var (
	// ErrEmptyTree is returned by Min, Max, MinKey and MaxKey on a tree without nodes.
	ErrEmptyTree = errors.New("avl: empty tree")

	// ErrNilChild is the panic value of the internal child setters when given nil.
	ErrNilChild = errors.New("avl: nil child")

	// ErrCorrupt is wrapped by every error returned from Tree.Verify.
	ErrCorrupt = errors.New("avl: tree invariant violated")
)
