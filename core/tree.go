package core

import (
	"errors"
	"fmt"
	"math"

	"github.com/cosmos/avl-bench/avl"
)

// Tree is the byte-keyed map the benchmark replays changesets into.
type Tree interface {
	// Set returns true if key was already present and only its value changed.
	Set(key, value []byte) (bool, error)
	Get(key []byte) ([]byte, error)
	Remove(key []byte) ([]byte, bool, error)
	Size() int64
	Height() int8
	Verify() error
}

type MultiTree interface {
	GetTree(key string) (Tree, error)
	// Size is the total number of keys over all trees.
	Size() int64
	Height() int8
	Verify() error
}

type NaiveMultiTree struct {
	Trees map[string]Tree
}

func (nmt *NaiveMultiTree) GetTree(key string) (Tree, error) {
	tree, ok := nmt.Trees[key]
	if !ok {
		return nil, fmt.Errorf("tree with key %s not found", key)
	}
	return tree, nil
}

func (nmt *NaiveMultiTree) Verify() error {
	for storeKey, tree := range nmt.Trees {
		if err := tree.Verify(); err != nil {
			return fmt.Errorf("store %s: %w", storeKey, err)
		}
	}
	return nil
}

func (nmt *NaiveMultiTree) Size() int64 {
	var size int64
	for _, tree := range nmt.Trees {
		size += tree.Size()
	}
	return size
}

// Height is the height of the tallest tree.
func (nmt *NaiveMultiTree) Height() int8 {
	h := int8(-1)
	for _, tree := range nmt.Trees {
		h = max(h, tree.Height())
	}
	return h
}

func NewMultiTree() *NaiveMultiTree {
	return &NaiveMultiTree{
		Trees: make(map[string]Tree),
	}
}

// NewAVLMultiTree creates one AVLTree per store key.
func NewAVLMultiTree(storeKeys ...string) *NaiveMultiTree {
	multiTree := NewMultiTree()
	for _, storeKey := range storeKeys {
		multiTree.Trees[storeKey] = NewAVLTree()
	}
	return multiTree
}

var errNilValue = errors.New("nil value is not allowed")

// AVLTree adapts avl.Tree to the Tree interface. Keys are copied into
// strings so callers may reuse their buffers; values are stored as given.
type AVLTree struct {
	tree *avl.Tree[string, []byte]
}

func NewAVLTree() *AVLTree {
	return &AVLTree{tree: avl.New[string, []byte]()}
}

func (a *AVLTree) Set(key, value []byte) (bool, error) {
	if value == nil {
		return false, errNilValue
	}
	added := a.tree.Insert(string(key), value)
	return !added, nil
}

func (a *AVLTree) Get(key []byte) ([]byte, error) {
	value, _ := a.tree.Get(string(key))
	return value, nil
}

func (a *AVLTree) Remove(key []byte) ([]byte, bool, error) {
	value, removed := a.tree.Delete(string(key))
	return value, removed, nil
}

func (a *AVLTree) Size() int64 {
	return int64(a.tree.Size())
}

func (a *AVLTree) Height() int8 {
	h := a.tree.Height()
	if h > math.MaxInt8 {
		return math.MaxInt8
	}
	return int8(h)
}

func (a *AVLTree) Verify() error {
	return a.tree.Verify()
}

var _ Tree = (*AVLTree)(nil)
