package harness

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/katalvlaran/algokit/order"
	"github.com/katalvlaran/algokit/search"
)

// Option configures a benchmark run via functional arguments.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger emits structured start/finish logs per entry.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// RunSorts benchmarks each named sort against one input sequence.
//
// Every entry runs sequentially on its own copy of input, is timed by wall
// clock, and is validated element-by-element against the stdlib stable sort
// of the same input under the same comparator. A returned error or a
// recovered panic marks the entry Correct=false with the error captured; the
// remaining entries still run. Results preserve the order of algos.
func RunSorts[T any](input []T, less order.Less[T], algos []NamedSort[T], opts ...Option) []Result {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Trusted reference: the platform's own verified stable sort.
	want := make([]T, len(input))
	copy(want, input)
	sort.SliceStable(want, func(i, j int) bool { return less(want[i], want[j]) })

	results := make([]Result, 0, len(algos))
	for _, algo := range algos {
		o.logger.Info("running sort",
			slog.String("algorithm", algo.Name),
			slog.Int("input_len", len(input)),
		)

		got, elapsed, err := runSort(algo, input, less)

		res := Result{Name: algo.Name, Elapsed: elapsed, Err: err}
		if err == nil {
			res.Correct = equalUnder(got, want, less)
		}

		o.logger.Info("sort finished",
			slog.String("algorithm", algo.Name),
			slog.Duration("elapsed", res.Elapsed),
			slog.Bool("correct", res.Correct),
		)
		results = append(results, res)
	}

	return results
}

// runSort executes one timed sort call, converting a panic into an error so
// one broken implementation cannot abort the harness.
func runSort[T any](algo NamedSort[T], input []T, less order.Less[T]) (got []T, elapsed time.Duration, err error) {
	in := make([]T, len(input))
	copy(in, input)

	start := time.Now()
	defer func() {
		elapsed = time.Since(start)
		if r := recover(); r != nil {
			err = fmt.Errorf("harness: %s panicked: %v", algo.Name, r)
		}
	}()

	got, err = algo.Fn(in, less)

	return got, elapsed, err
}

// RunSearches benchmarks each named search for one target in one sequence.
//
// The trusted reference is an exhaustive scan: an entry is correct when it
// returns any index holding target, or search.NotFound when target is absent.
// Isolation and ordering match RunSorts.
func RunSearches[T comparable](input []T, target T, algos []NamedSearch[T], opts ...Option) []Result {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Trusted reference: every index holding target.
	valid := make(map[int]bool, 2)
	for i, v := range input {
		if v == target {
			valid[i] = true
		}
	}

	results := make([]Result, 0, len(algos))
	for _, algo := range algos {
		o.logger.Info("running search",
			slog.String("algorithm", algo.Name),
			slog.Int("input_len", len(input)),
		)

		idx, elapsed, err := runSearch(algo, input, target)

		res := Result{Name: algo.Name, Elapsed: elapsed, Err: err}
		if err == nil {
			if len(valid) == 0 {
				res.Correct = idx == search.NotFound
			} else {
				res.Correct = valid[idx]
			}
		}

		o.logger.Info("search finished",
			slog.String("algorithm", algo.Name),
			slog.Duration("elapsed", res.Elapsed),
			slog.Bool("correct", res.Correct),
		)
		results = append(results, res)
	}

	return results
}

// runSearch executes one timed search call with the same panic isolation as
// runSort.
func runSearch[T comparable](algo NamedSearch[T], input []T, target T) (idx int, elapsed time.Duration, err error) {
	in := make([]T, len(input))
	copy(in, input)

	start := time.Now()
	defer func() {
		elapsed = time.Since(start)
		if r := recover(); r != nil {
			err = fmt.Errorf("harness: %s panicked: %v", algo.Name, r)
		}
	}()

	idx = algo.Fn(in, target)

	return idx, elapsed, nil
}

// equalUnder reports element-wise equivalence of a and b under less.
func equalUnder[T any](a, b []T, less order.Less[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !less.Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}
