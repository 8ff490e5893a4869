package sorting

import "github.com/katalvlaran/algokit/order"

// Counting sorts integer keys by tallying occurrences per key and rewriting
// them in key order. Only usable when the key range [min, max] is bounded:
// supply it via WithRange, or let Counting derive it with a min/max scan.
//
// O(n + k) time and O(k) extra space, k = max - min + 1. A range wider than
// MaxDerivedRange buckets fails with ErrUnsupportedKeyRange whether derived
// or supplied; so does a supplied range with min > max. An element
// outside a supplied range fails with ErrInvalidInput. Keys must fit in int64
// when a range is supplied. Returns a new slice; seq is untouched.
func Counting[T order.Integer](seq []T, opts ...CountingOption) ([]T, error) {
	if len(seq) == 0 {
		return []T{}, nil
	}

	var o countingOptions
	for _, opt := range opts {
		opt(&o)
	}

	var base T
	var width uint64
	if o.hasRange {
		if o.min > o.max {
			return nil, ErrUnsupportedKeyRange
		}
		for _, v := range seq {
			if int64(v) < o.min || int64(v) > o.max {
				return nil, ErrInvalidInput
			}
		}
		base = T(o.min)
		width = uint64(o.max - o.min)
	} else {
		min, max := seq[0], seq[0]
		for _, v := range seq[1:] {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		base = min
		// Unsigned subtraction yields the true width for every integer kind.
		width = uint64(max) - uint64(min)
	}
	if width >= MaxDerivedRange {
		return nil, ErrUnsupportedKeyRange
	}

	counts := make([]int, width+1)
	for _, v := range seq {
		counts[uint64(v)-uint64(base)]++
	}

	out := make([]T, 0, len(seq))
	for i, c := range counts {
		key := base + T(i)
		for ; c > 0; c-- {
			out = append(out, key)
		}
	}

	return out, nil
}
