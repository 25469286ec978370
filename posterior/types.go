package posterior

import (
	"errors"

	"github.com/katalvlaran/bayesgrid/grid"
)

// Sentinel errors for posterior computation.
var (
	// ErrDegeneratePosterior indicates that every cell has zero weight, so no
	// probability distribution can be formed. Recover by widening the prior,
	// changing the grid, or using a continuous-space sampler.
	ErrDegeneratePosterior = errors.New("posterior: degenerate posterior (zero total mass)")

	// ErrNilGrid indicates a nil *grid.Grid.
	ErrNilGrid = errors.New("posterior: grid is nil")

	// ErrNilDensity indicates a nil prior or likelihood function.
	ErrNilDensity = errors.New("posterior: prior and likelihood must be non-nil")

	// ErrNotNormalized indicates a mass that does not sum to 1 within tolerance
	// or has negative or non-finite entries.
	ErrNotNormalized = errors.New("posterior: mass is not normalized")

	// ErrOutOfRange indicates a cell or axis index outside the grid.
	ErrOutOfRange = errors.New("posterior: index out of range")

	// ErrInvalidProbability indicates a probability level outside [0,1].
	ErrInvalidProbability = errors.New("posterior: probability must be in [0,1]")
)

// Mass is a normalized posterior over the cells of a grid. Immutable.
type Mass struct {
	grid    *grid.Grid
	probs   []float64
	logNorm float64
	tol     float64
}

// Likelihood is a likelihood that takes the observed data explicitly.
type Likelihood[D any] func(params []float64, data D) float64
