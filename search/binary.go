package search

import "github.com/katalvlaran/algokit/order"

// Binary searches seq, sorted under less, by halving the candidate range and
// returns the index of some element equal to target, or NotFound. When target
// occurs more than once, any matching index may be returned; use
// BinaryLeftmost / BinaryRightmost to pin a specific one. O(log n).
func Binary[T any](seq []T, target T, less order.Less[T]) int {
	lo, hi := 0, len(seq)
	for lo < hi {
		mid := lo + (hi-lo)/2 // overflow-safe midpoint
		switch {
		case less(seq[mid], target):
			lo = mid + 1
		case less(target, seq[mid]):
			hi = mid
		default:
			return mid
		}
	}

	return NotFound
}

// BinaryLeftmost returns the smallest index whose element equals target,
// or NotFound. Together with BinaryRightmost it bounds the run of duplicates
// [leftmost, rightmost]. O(log n).
func BinaryLeftmost[T any](seq []T, target T, less order.Less[T]) int {
	// Lower bound: first index not less than target.
	lo, hi := 0, len(seq)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if less(seq[mid], target) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(seq) && less.Equal(seq[lo], target) {
		return lo
	}

	return NotFound
}

// BinaryRightmost returns the largest index whose element equals target,
// or NotFound. O(log n).
func BinaryRightmost[T any](seq []T, target T, less order.Less[T]) int {
	// Upper bound: first index greater than target.
	lo, hi := 0, len(seq)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if less(target, seq[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	if lo > 0 && less.Equal(seq[lo-1], target) {
		return lo - 1
	}

	return NotFound
}
