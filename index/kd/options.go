package kd

import "runtime"

// Option configures an Index at construction time.
type Option func(*Index)

// WithParallelism fixes the worker count used when a query is invoked with
// parallel=true. Values below 1 restore the default, runtime.GOMAXPROCS(0)
// resolved at call time. Pinning the count makes parallel runs reproducible
// in tests and lets callers subordinate the index to their own scheduler.
func WithParallelism(workers int) Option {
	return func(ix *Index) {
		if workers < 1 {
			workers = 0
		}
		ix.workers = workers
	}
}

// effectiveWorkers resolves how many workers a call may use. Serial calls
// always run single-worker; worker counts are not remembered across calls
// beyond the configured option.
func (ix *Index) effectiveWorkers(parallel bool) int {
	if !parallel {
		return 1
	}
	if ix.workers > 0 {
		return ix.workers
	}
	return runtime.GOMAXPROCS(0)
}
