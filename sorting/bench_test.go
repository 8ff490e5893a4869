package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/algokit/order"
	"github.com/katalvlaran/algokit/sorting"
)

// benchInput is regenerated per size from a fixed seed so runs are comparable.
func benchInput(n int) []int {
	rng := rand.New(rand.NewSource(42))
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(n)
	}

	return out
}

// BenchmarkQuick_Random measures quick sort on uniformly random input.
func BenchmarkQuick_Random(b *testing.B) {
	input := benchInput(10000)
	less := order.Natural[int]()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sorting.Quick(input, less)
	}
}

// BenchmarkQuick_Sorted measures the adversarial already-sorted case the
// middle pivot is meant to survive.
func BenchmarkQuick_Sorted(b *testing.B) {
	input := ascending(10000)
	less := order.Natural[int]()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sorting.Quick(input, less)
	}
}

// BenchmarkMerge_Random measures merge sort on uniformly random input.
func BenchmarkMerge_Random(b *testing.B) {
	input := benchInput(10000)
	less := order.Natural[int]()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sorting.Merge(input, less)
	}
}

// BenchmarkHeap_Random measures heap sort on uniformly random input.
func BenchmarkHeap_Random(b *testing.B) {
	input := benchInput(10000)
	less := order.Natural[int]()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sorting.Heap(input, less)
	}
}

// BenchmarkInsertion_NearlySorted measures insertion sort on its best shape.
func BenchmarkInsertion_NearlySorted(b *testing.B) {
	input := ascending(5000)
	input[0], input[len(input)-1] = input[len(input)-1], input[0]
	less := order.Natural[int]()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sorting.Insertion(input, less)
	}
}

// BenchmarkCounting_DenseKeys measures counting sort on a dense key range.
func BenchmarkCounting_DenseKeys(b *testing.B) {
	input := benchInput(10000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sorting.Counting(input)
	}
}
