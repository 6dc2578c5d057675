package gridsearch

import "golang.org/x/sync/errgroup"

// WithWorkers sets the maximum number of goroutines used to scan row bands.
// Panics on n < 1 to surface programmer error early.
// Complexity: O(1).
func WithWorkers(n int) Option {
	if n < 1 {
		panic("gridsearch: WithWorkers(n < 1)")
	}
	return func(o *Options) {
		o.Workers = n
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// runBands splits rows [lo, hi) into at most workers contiguous bands and
// calls fn on each. Results come back in band order regardless of which
// goroutine finished first, so callers can fold them deterministically.
func runBands[T any](lo, hi, workers int, fn func(y0, y1 int) T) []T {
	if hi <= lo {
		return nil
	}
	n := workers
	if n > hi-lo {
		n = hi - lo
	}
	if n <= 1 {
		return []T{fn(lo, hi)}
	}

	out := make([]T, n)
	size := (hi - lo + n - 1) / n
	var eg errgroup.Group
	eg.SetLimit(workers)
	for i := 0; i < n; i++ {
		y0 := lo + i*size
		y1 := min(y0+size, hi)
		if y0 >= y1 {
			continue
		}
		i := i
		eg.Go(func() error {
			out[i] = fn(y0, y1)
			return nil
		})
	}
	_ = eg.Wait() // band functions never fail

	return out
}

func sum(parts []int) int {
	total := 0
	for _, p := range parts {
		total += p
	}

	return total
}

func concat[T any](parts [][]T) []T {
	var out []T
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}
