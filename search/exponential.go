package search

import "github.com/katalvlaran/algokit/order"

// Exponential searches seq, sorted under less, by probing at exponentially
// increasing bounds (1, 2, 4, …) until the target is bracketed, then running
// Binary inside the bracket. O(log i) where i is the position of the match,
// which beats plain Binary when matches cluster near the front — the shape of
// a prefix of an unbounded or streamed sorted sequence. Returns the index of
// some element equal to target, or NotFound.
func Exponential[T any](seq []T, target T, less order.Less[T]) int {
	n := len(seq)
	if n == 0 {
		return NotFound
	}
	if less.Equal(seq[0], target) {
		return 0
	}

	// Double the bound while the element there still sorts before target.
	bound := 1
	for bound < n && less(seq[bound], target) {
		bound *= 2
	}

	lo := bound / 2
	hi := bound + 1
	if hi > n {
		hi = n
	}
	if i := Binary(seq[lo:hi], target, less); i != NotFound {
		return lo + i
	}

	return NotFound
}
