// Package harness result types, named-algorithm bindings, and the Registry.
package harness

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/algokit/order"
)

// Sentinel errors for harness operations.
var (
	// ErrDuplicateAlgorithm is returned by Registry.Register for a name
	// already taken.
	ErrDuplicateAlgorithm = errors.New("harness: duplicate algorithm name")
)

// Result records one benchmarked run. Built fresh per run, never mutated
// after construction.
type Result struct {
	// Name of the algorithm, as supplied by the caller.
	Name string

	// Elapsed wall-clock duration of the single run.
	Elapsed time.Duration

	// Correct reports whether the output matched the trusted reference.
	Correct bool

	// Err holds the returned error or recovered panic, if any.
	Err error
}

// SortFunc is the signature every benchmarked sort must honor: a fresh sorted
// permutation of seq under less, or an error.
type SortFunc[T any] func(seq []T, less order.Less[T]) ([]T, error)

// NamedSort binds a display name to a sort implementation.
type NamedSort[T any] struct {
	Name string
	Fn   SortFunc[T]
}

// SearchFunc is the signature every benchmarked search must honor: an index
// into seq, or search.NotFound.
type SearchFunc[T comparable] func(seq []T, target T) int

// NamedSearch binds a display name to a search implementation.
type NamedSearch[T comparable] struct {
	Name string
	Fn   SearchFunc[T]
}

// Registry is an insertion-ordered table from algorithm name to
// implementation — the static registration point that replaces dynamic
// discovery. The zero value is not usable; construct with NewRegistry.
type Registry[F any] struct {
	names []string
	fns   map[string]F
}

// NewRegistry returns an empty Registry.
func NewRegistry[F any]() *Registry[F] {
	return &Registry[F]{fns: make(map[string]F)}
}

// Register binds name to fn. Returns ErrDuplicateAlgorithm if name is taken.
func (r *Registry[F]) Register(name string, fn F) error {
	if _, ok := r.fns[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateAlgorithm, name)
	}
	r.names = append(r.names, name)
	r.fns[name] = fn

	return nil
}

// Lookup returns the implementation bound to name.
func (r *Registry[F]) Lookup(name string) (F, bool) {
	fn, ok := r.fns[name]

	return fn, ok
}

// Names returns all registered names in registration order.
func (r *Registry[F]) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)

	return out
}
