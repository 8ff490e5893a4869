// Package sorting provides six interchangeable sorting algorithms behind one
// signature, each with an explicit stability, complexity, and failure contract.
//
// What
//
//   - Bubble, Insertion, Quick, Merge, Heap: Xxx(seq, less) ([]T, error)
//   - Counting: bucketed integer-key sort with an optional explicit key range
//   - IsSorted: non-decreasing check under the same comparator
//
// Every sort returns a freshly allocated permutation of its input in
// non-decreasing order under less; the caller's slice is never mutated.
// Nil, empty, and single-element inputs return a trivially sorted copy in O(1)
// without consulting the comparator.
//
// Contracts (n = len(seq), k = key range width)
//
//	Algorithm  Stable  Average     Worst       Extra    Notes
//	Bubble     yes     O(n²)       O(n²)       O(1)     early exit on swap-free pass
//	Insertion  yes     O(n²)       O(n²)       O(1)     efficient on nearly-sorted input
//	Quick      no      O(n log n)  O(n²)       O(log n) middle pivot, three-way partition
//	Merge      yes     O(n log n)  O(n log n)  O(n)     left wins ties in the merge
//	Heap       no      O(n log n)  O(n log n)  O(1)     max-heap, extract to tail
//	Counting   n/a     O(n + k)    O(n + k)    O(k)     integer keys only
//
// "Extra" space excludes the returned copy, which every algorithm allocates.
//
// Errors
//
//   - ErrInvalidInput: nil comparator, or an element outside an explicitly
//     supplied counting range.
//   - ErrUnsupportedKeyRange: counting sort without a usable key range
//     (supplied min > max, or a derived range too wide to bucket).
//
// A comparator that violates the strict-total-order contract is undefined
// behavior: every loop here is index-bounded, so the sorts still terminate and
// return some permutation, but its order is unspecified.
package sorting
