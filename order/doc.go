// Package order defines the comparison contract every algorithm in algokit
// operates over: a Less function expressing a strict weak order, with equality
// derived from it.
//
// What
//
//   - Less[T]: reports whether a orders before b.
//   - (Less).Equal: derived equality, !less(a,b) && !less(b,a).
//   - Natural[T cmp.Ordered]: the natural order of built-in numerics and strings.
//   - (Less).Reverse: descending adapter.
//   - Integer, Number: key constraints for counting and interpolation search.
//
// Why
//
//	Sorting and ordered searching are generic over this contract and assume no
//	concrete type. A single shared Less keeps "sorted under the comparator" and
//	"equal under the comparator" consistent between the algorithm that produced
//	a sequence and the one querying it.
//
// Contract
//
//	Less must describe a strict total order: irreflexive, transitive,
//	antisymmetric. Supplying an inconsistent comparator (for example a float
//	order over NaN values) is undefined behavior for the caller to avoid: the
//	algorithms still terminate and do not crash, but their output order is
//	unspecified.
package order
