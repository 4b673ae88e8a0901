package avl_test

import (
	"math/rand"
	"testing"

	"github.com/cosmos/avl-bench/avl"
)

const benchSize = 100_000

func BenchmarkInsertRandom(b *testing.B) {
	keys := rand.New(rand.NewSource(1)).Perm(benchSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := avl.New[int, int]()
		for _, k := range keys {
			tree.Insert(k, k)
		}
	}
}

func BenchmarkInsertSequential(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tree := avl.New[int, int]()
		for k := 0; k < benchSize; k++ {
			tree.Insert(k, k)
		}
	}
}

func BenchmarkGet(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	tree := avl.New[int, int]()
	for _, k := range r.Perm(benchSize) {
		tree.Insert(k, k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Get(i % benchSize)
	}
}

func BenchmarkInsertDelete(b *testing.B) {
	keys := rand.New(rand.NewSource(1)).Perm(benchSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := avl.New[int, int]()
		for _, k := range keys {
			tree.Insert(k, k)
		}
		for _, k := range keys {
			tree.Delete(k)
		}
	}
}
