package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosmos/avl-bench/core"
)

func TestAVLTree(t *testing.T) {
	tree := core.NewAVLTree()
	require.Equal(t, int8(-1), tree.Height())

	key := []byte("key1")
	updated, err := tree.Set(key, []byte("value1"))
	require.NoError(t, err)
	require.False(t, updated)

	// the tree must not alias the caller's key buffer
	key[3] = '9'
	val, err := tree.Get([]byte("key1"))
	require.NoError(t, err)
	require.Equal(t, []byte("value1"), val)

	updated, err = tree.Set([]byte("key1"), []byte("value2"))
	require.NoError(t, err)
	require.True(t, updated)
	require.Equal(t, int64(1), tree.Size())

	val, err = tree.Get([]byte("missing"))
	require.NoError(t, err)
	require.Nil(t, val)

	_, err = tree.Set([]byte("key2"), nil)
	require.Error(t, err)

	val, removed, err := tree.Remove([]byte("key1"))
	require.NoError(t, err)
	require.True(t, removed)
	require.Equal(t, []byte("value2"), val)

	_, removed, err = tree.Remove([]byte("key1"))
	require.NoError(t, err)
	require.False(t, removed)
	require.Equal(t, int64(0), tree.Size())
	require.NoError(t, tree.Verify())
}

func TestAVLTreeHeight(t *testing.T) {
	tree := core.NewAVLTree()
	for i := 0; i < 1023; i++ {
		_, err := tree.Set([]byte(fmt.Sprintf("%08d", i)), []byte{1})
		require.NoError(t, err)
	}
	// sequential keys fill a perfect tree
	require.Equal(t, int8(9), tree.Height())
	require.NoError(t, tree.Verify())
}

func TestNaiveMultiTree(t *testing.T) {
	multiTree := core.NewAVLMultiTree("a", "b")
	require.Equal(t, int64(0), multiTree.Size())
	require.Equal(t, int8(-1), multiTree.Height())

	a, err := multiTree.GetTree("a")
	require.NoError(t, err)
	b, err := multiTree.GetTree("b")
	require.NoError(t, err)
	_, err = multiTree.GetTree("c")
	require.Error(t, err)

	for i := 0; i < 3; i++ {
		_, err = a.Set([]byte{byte(i)}, []byte{byte(i)})
		require.NoError(t, err)
	}
	_, err = b.Set([]byte{1}, []byte{1})
	require.NoError(t, err)

	require.Equal(t, int64(4), multiTree.Size())
	require.Equal(t, int8(1), multiTree.Height())
	require.NoError(t, multiTree.Verify())
}
