package sorting

import "github.com/katalvlaran/algokit/order"

// Merge sorts seq by recursively splitting at floor(n/2) and merging the
// sorted halves, taking the left element on ties.
//
// Stable: left-on-tie merging preserves input order among equal elements.
// O(n log n) time in every case, O(n) extra space for the merge buffer.
// Recursion depth is ceil(log₂ n), safe for any slice that fits in memory.
// Returns a new slice; seq is untouched.
func Merge[T any](seq []T, less order.Less[T]) ([]T, error) {
	if len(seq) < 2 {
		return clone(seq), nil
	}
	if less == nil {
		return nil, ErrInvalidInput
	}

	src := clone(seq)
	buf := make([]T, len(src))
	mergeSort(src, buf, 0, len(src), less)

	return src, nil
}

// mergeSort sorts src[lo:hi) using buf[lo:hi) as scratch.
func mergeSort[T any](src, buf []T, lo, hi int, less order.Less[T]) {
	if hi-lo < 2 {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(src, buf, lo, mid, less)
	mergeSort(src, buf, mid, hi, less)
	merge(src, buf, lo, mid, hi, less)
}

// merge combines the sorted runs src[lo:mid) and src[mid:hi) back into src.
// The left run wins ties, which is what makes the sort stable.
func merge[T any](src, buf []T, lo, mid, hi int, less order.Less[T]) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if less(src[j], src[i]) {
			buf[k] = src[j]
			j++
		} else {
			buf[k] = src[i]
			i++
		}
		k++
	}
	for i < mid {
		buf[k] = src[i]
		i++
		k++
	}
	for j < hi {
		buf[k] = src[j]
		j++
		k++
	}
	copy(src[lo:hi], buf[lo:hi])
}
