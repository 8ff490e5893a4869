// Package sorting_test validates the shared sorting contract across all six
// algorithms: output is a sorted permutation of the input, the input is never
// mutated, stable sorts preserve equal-element order, and sorting is
// idempotent under re-sorting.
package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/order"
	"github.com/katalvlaran/algokit/sorting"
)

// comparisonSorts enumerates every algorithm honoring the (seq, less) signature.
var comparisonSorts = []struct {
	name   string
	fn     func([]int, order.Less[int]) ([]int, error)
	stable bool
}{
	{"bubble", sorting.Bubble[int], true},
	{"insertion", sorting.Insertion[int], true},
	{"quick", sorting.Quick[int], false},
	{"merge", sorting.Merge[int], true},
	{"heap", sorting.Heap[int], false},
}

// TestSorts_Scenario pins the canonical example sequence.
func TestSorts_Scenario(t *testing.T) {
	input := []int{64, 34, 25, 12, 22, 11, 90}
	want := []int{11, 12, 22, 25, 34, 64, 90}
	for _, tc := range comparisonSorts {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn(input, order.Natural[int]())
			require.NoError(t, err)
			require.Equal(t, want, got)
			// input borrowed read-only
			require.Equal(t, []int{64, 34, 25, 12, 22, 11, 90}, input)
		})
	}
}

// TestSorts_Trivial covers nil, empty, and single-element inputs.
func TestSorts_Trivial(t *testing.T) {
	for _, tc := range comparisonSorts {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn(nil, order.Natural[int]())
			require.NoError(t, err)
			require.Empty(t, got)

			got, err = tc.fn([]int{}, order.Natural[int]())
			require.NoError(t, err)
			require.Empty(t, got)

			got, err = tc.fn([]int{42}, order.Natural[int]())
			require.NoError(t, err)
			require.Equal(t, []int{42}, got)
		})
	}
}

// TestSorts_NilComparator rejects a nil comparator on non-trivial input.
func TestSorts_NilComparator(t *testing.T) {
	for _, tc := range comparisonSorts {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.fn([]int{2, 1}, nil)
			require.ErrorIs(t, err, sorting.ErrInvalidInput)
		})
	}
}

// TestSorts_PermutationAndOrder fuzzes adversarial shapes: random, sorted,
// reversed, all-equal, many-duplicate. Output must be a non-decreasing
// permutation of the input, and re-sorting must be a no-op.
func TestSorts_PermutationAndOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	shapes := map[string][]int{
		"random":   randomInts(rng, 500, 1000),
		"sorted":   ascending(400),
		"reversed": descending(400),
		"equal":    repeated(7, 300),
		"dupes":    randomInts(rng, 600, 5),
	}
	less := order.Natural[int]()
	for _, tc := range comparisonSorts {
		for shape, input := range shapes {
			t.Run(tc.name+"/"+shape, func(t *testing.T) {
				got, err := tc.fn(input, less)
				require.NoError(t, err)
				require.True(t, sorting.IsSorted(got, less), "output not non-decreasing")
				require.Equal(t, histogram(input), histogram(got), "output not a permutation")

				again, err := tc.fn(got, less)
				require.NoError(t, err)
				require.Equal(t, got, again, "re-sorting changed a sorted sequence")
			})
		}
	}
}

// TestSorts_Stability checks that stable sorts keep equal-keyed elements in
// input order, under a comparator that only inspects the key.
func TestSorts_Stability(t *testing.T) {
	type rec struct{ key, seq int }
	input := []rec{{2, 0}, {1, 1}, {2, 2}, {1, 3}, {2, 4}, {1, 5}}
	byKey := order.Less[rec](func(a, b rec) bool { return a.key < b.key })

	stableSorts := map[string]func([]rec, order.Less[rec]) ([]rec, error){
		"bubble":    sorting.Bubble[rec],
		"insertion": sorting.Insertion[rec],
		"merge":     sorting.Merge[rec],
	}
	for name, fn := range stableSorts {
		t.Run(name, func(t *testing.T) {
			got, err := fn(input, byKey)
			require.NoError(t, err)
			want := []rec{{1, 1}, {1, 3}, {1, 5}, {2, 0}, {2, 2}, {2, 4}}
			require.Equal(t, want, got)
		})
	}
}

// TestCounting covers the happy path, derived and supplied ranges, and the
// two failure modes.
func TestCounting(t *testing.T) {
	t.Run("derived range", func(t *testing.T) {
		got, err := sorting.Counting([]int{64, 34, 25, 12, 22, 11, 90})
		require.NoError(t, err)
		require.Equal(t, []int{11, 12, 22, 25, 34, 64, 90}, got)
	})

	t.Run("negative keys", func(t *testing.T) {
		got, err := sorting.Counting([]int{3, -1, 0, -5, 3})
		require.NoError(t, err)
		require.Equal(t, []int{-5, -1, 0, 3, 3}, got)
	})

	t.Run("supplied range", func(t *testing.T) {
		got, err := sorting.Counting([]int{5, 3, 1, 4, 2}, sorting.WithRange(0, 10))
		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 3, 4, 5}, got)
	})

	t.Run("element outside supplied range", func(t *testing.T) {
		_, err := sorting.Counting([]int{5, 11}, sorting.WithRange(0, 10))
		require.ErrorIs(t, err, sorting.ErrInvalidInput)
	})

	t.Run("inverted supplied range", func(t *testing.T) {
		_, err := sorting.Counting([]int{1, 2}, sorting.WithRange(10, 0))
		require.ErrorIs(t, err, sorting.ErrUnsupportedKeyRange)
	})

	t.Run("underivable range", func(t *testing.T) {
		_, err := sorting.Counting([]int{0, sorting.MaxDerivedRange + 1})
		require.ErrorIs(t, err, sorting.ErrUnsupportedKeyRange)
	})

	t.Run("empty input always succeeds", func(t *testing.T) {
		got, err := sorting.Counting[int](nil)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("unsigned keys", func(t *testing.T) {
		got, err := sorting.Counting([]uint8{200, 3, 255, 0})
		require.NoError(t, err)
		require.Equal(t, []uint8{0, 3, 200, 255}, got)
	})
}

// TestIsSorted pins the predicate the rest of the suite asserts with.
func TestIsSorted(t *testing.T) {
	less := order.Natural[int]()
	require.True(t, sorting.IsSorted(nil, less))
	require.True(t, sorting.IsSorted([]int{1}, less))
	require.True(t, sorting.IsSorted([]int{1, 1, 2}, less))
	require.False(t, sorting.IsSorted([]int{2, 1}, less))
}

func randomInts(rng *rand.Rand, n, span int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(span)
	}

	return out
}

func ascending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

func descending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - i
	}

	return out
}

func repeated(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}

	return out
}

func histogram(seq []int) map[int]int {
	h := make(map[int]int, len(seq))
	for _, v := range seq {
		h[v]++
	}

	return h
}
