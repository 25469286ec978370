package posterior

import "math"

// Defaults.
const (
	// DefaultTolerance is the tolerance for the unit-sum invariant of a Mass.
	DefaultTolerance = 1e-9

	// DefaultWorkers evaluates cells sequentially.
	DefaultWorkers = 1

	// chunkSize is the number of cells evaluated per task. Fixed so that the
	// partitioning does not depend on the worker count.
	chunkSize = 4096
)

const panicToleranceInvalid = "posterior: WithTolerance: eps must be finite and in (0, 1)"

// Options holds the engine configuration. Use Option constructors to change it.
type Options struct {
	workers   int
	tolerance float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{workers: DefaultWorkers, tolerance: DefaultTolerance}
}

// WithWorkers evaluates cells with up to n goroutines. n <= 1 means sequential.
// The result is identical for every n.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithTolerance sets the unit-sum tolerance used by Validate and the
// zero-mass check. It panics on values outside (0, 1) (programmer error).
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || eps <= 0 || eps >= 1 {
		panic(panicToleranceInvalid)
	}
	return func(o *Options) { o.tolerance = eps }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
