package md2office

import "runtime"

// Worker pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps batch workers; exports are CPU-bound and short.
	MaxPoolSize = 16
)

// ResolvePoolSize determines the worker count for batch exports.
// Priority: explicit workers > GOMAXPROCS (adjusted by automaxprocs in
// containers), capped at MaxPoolSize.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0)
	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
