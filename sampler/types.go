package sampler

import (
	"errors"
	"fmt"
)

// Sentinel errors for sampling.
var (
	// ErrInvalidSampleCount indicates a negative number of draws.
	ErrInvalidSampleCount = errors.New("sampler: sample count must be >= 0")

	// ErrMassMismatch indicates a mass vector whose length differs from the grid size.
	ErrMassMismatch = errors.New("sampler: mass length does not match grid size")

	// ErrInvalidMass indicates negative or non-finite entries, or a sum that
	// differs from 1 by more than MassTolerance.
	ErrInvalidMass = errors.New("sampler: mass is not a probability distribution")

	// ErrNilGrid indicates a nil *grid.Grid or *posterior.Mass.
	ErrNilGrid = errors.New("sampler: grid is nil")

	// ErrUnknownParameter indicates a parameter name or index not in the set.
	ErrUnknownParameter = errors.New("sampler: unknown parameter")

	// ErrInvalidTrials indicates a simulator with a negative number of trials.
	ErrInvalidTrials = errors.New("sampler: trials must be >= 0")

	// ErrNilSimulator indicates Predict was called without a simulator.
	ErrNilSimulator = errors.New("sampler: simulator is nil")
)

// MassTolerance is the allowed deviation of the mass sum from 1.
const MassTolerance = 1e-9

// SampleSet holds n draws of a dim-dimensional parameter tuple in draw order.
// Values are stored row-major: draw i occupies values[i*dim : (i+1)*dim].
// Immutable after construction.
type SampleSet struct {
	names  []string
	cells  []int
	values []float64
	dim    int
}

// Len returns the number of draws.
func (s *SampleSet) Len() int { return len(s.cells) }

// Dim returns the number of parameters per draw.
func (s *SampleSet) Dim() int { return s.dim }

// Names returns a copy of the parameter names in axis order.
func (s *SampleSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Cells returns a copy of the drawn grid cell indices in draw order.
func (s *SampleSet) Cells() []int {
	out := make([]int, len(s.cells))
	copy(out, s.cells)
	return out
}

// At returns a copy of the parameter tuple of draw i.
func (s *SampleSet) At(i int) ([]float64, error) {
	if i < 0 || i >= len(s.cells) {
		return nil, fmt.Errorf("sampler: draw %d of %d out of range", i, len(s.cells))
	}
	out := make([]float64, s.dim)
	copy(out, s.values[i*s.dim:(i+1)*s.dim])
	return out, nil
}

// Param returns the draws of parameter k in draw order.
func (s *SampleSet) Param(k int) ([]float64, error) {
	if k < 0 || k >= s.dim {
		return nil, fmt.Errorf("%w: index %d of %d", ErrUnknownParameter, k, s.dim)
	}
	out := make([]float64, len(s.cells))
	for i := range out {
		out[i] = s.values[i*s.dim+k]
	}
	return out, nil
}

// ParamByName returns the draws of the named parameter in draw order.
func (s *SampleSet) ParamByName(name string) ([]float64, error) {
	for k, n := range s.names {
		if n == name {
			return s.Param(k)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
}
