package order

import "cmp"

// Less reports whether a must sort before b.
//
// Less must describe a transitive ordering: if Less(a, b) and Less(b, c) then
// Less(a, c). If both Less(a, b) and Less(b, a) are false, a and b are
// considered equal; stable sorts preserve the original input order of equal
// elements, unstable sorts may place them in any order.
type Less[T any] func(a, b T) bool

// Equal reports whether a and b are equivalent under the order:
// neither sorts before the other.
func (less Less[T]) Equal(a, b T) bool {
	return !less(a, b) && !less(b, a)
}

// Reverse returns the inverted order: b before a wherever less put a before b.
func (less Less[T]) Reverse() Less[T] {
	return func(a, b T) bool { return less(b, a) }
}

// Natural returns the natural ascending order for built-in ordered types.
func Natural[T cmp.Ordered]() Less[T] {
	return func(a, b T) bool { return a < b }
}

// Integer constrains counting-sort keys to the built-in integer kinds.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number constrains interpolation-search keys to types whose values can be
// linearly interpolated between two bounds.
type Number interface {
	Integer | ~float32 | ~float64
}
