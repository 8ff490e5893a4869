// Package sorting sentinel errors, counting-sort options, and shared helpers.
package sorting

import (
	"errors"

	"github.com/katalvlaran/algokit/order"
)

// Sentinel errors for sorting operations.
var (
	// ErrInvalidInput indicates a precondition violation the algorithm could
	// detect: a nil comparator, or an element outside a supplied counting range.
	ErrInvalidInput = errors.New("sorting: invalid input")

	// ErrUnsupportedKeyRange indicates counting sort could not obtain a usable
	// bounded key range for a non-empty input.
	ErrUnsupportedKeyRange = errors.New("sorting: unsupported key range")
)

// MaxDerivedRange caps the bucket count Counting will allocate. A wider
// derived range counts as "not derivable"; a wider supplied range is rejected
// the same way rather than allocating gigabytes of counters.
const MaxDerivedRange = 1 << 26

// CountingOption configures Counting via functional arguments.
type CountingOption func(*countingOptions)

type countingOptions struct {
	hasRange bool
	min, max int64
}

// WithRange supplies the inclusive key range [min, max] for Counting,
// bypassing the derivation scan.
func WithRange(min, max int64) CountingOption {
	return func(o *countingOptions) {
		o.hasRange = true
		o.min, o.max = min, max
	}
}

// IsSorted reports whether seq is in non-decreasing order under less.
func IsSorted[T any](seq []T, less order.Less[T]) bool {
	for i := 1; i < len(seq); i++ {
		if less(seq[i], seq[i-1]) {
			return false
		}
	}

	return true
}

// clone returns a fresh copy of seq; the sorts mutate only their copy.
func clone[T any](seq []T) []T {
	out := make([]T, len(seq))
	copy(out, seq)

	return out
}
