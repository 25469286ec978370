package grid

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Build constructs an unnamed axis of count evenly spaced points spanning
// [low, high]. See BuildNamed.
func Build(low, high float64, count int) (Axis, error) {
	return BuildNamed("", low, high, count)
}

// BuildNamed constructs an axis of count evenly spaced points spanning
// [low, high], with step = (high-low)/(count-1). The first point is exactly
// low and the last exactly high.
// Returns ErrInvalidGridSpec if count < 2, low >= high, or a bound is not
// finite, and ErrTooManyCells if count exceeds MaxCells.
// Complexity: O(count) time and memory.
func BuildNamed(name string, low, high float64, count int) (Axis, error) {
	if count < 2 {
		return Axis{}, fmt.Errorf("%w: count must be >= 2, got %d", ErrInvalidGridSpec, count)
	}
	if count > MaxCells {
		return Axis{}, fmt.Errorf("%w: axis count %d exceeds %d", ErrTooManyCells, count, MaxCells)
	}
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) {
		return Axis{}, fmt.Errorf("%w: bounds must be finite, got [%v, %v]", ErrInvalidGridSpec, low, high)
	}
	if low >= high {
		return Axis{}, fmt.Errorf("%w: need low < high, got [%v, %v]", ErrInvalidGridSpec, low, high)
	}
	pts := floats.Span(make([]float64, count), low, high)
	pts[count-1] = high // low + step*(count-1) can miss high by an ulp

	return Axis{
		name:   name,
		low:    low,
		high:   high,
		step:   (high - low) / float64(count-1),
		points: pts,
	}, nil
}

// MustBuild is BuildNamed that panics on error, for fixed axes in tests and examples.
func MustBuild(name string, low, high float64, count int) Axis {
	a, err := BuildNamed(name, low, high, count)
	if err != nil {
		panic(err)
	}
	return a
}

// Name returns the axis name ("" for unnamed axes).
func (a Axis) Name() string { return a.name }

// Low returns the first grid point.
func (a Axis) Low() float64 { return a.low }

// High returns the last grid point.
func (a Axis) High() float64 { return a.high }

// Count returns the number of points.
func (a Axis) Count() int { return len(a.points) }

// Step returns the spacing between consecutive points.
func (a Axis) Step() float64 { return a.step }

// At returns the i-th point. It panics if i is out of range, like a slice index.
func (a Axis) At(i int) float64 { return a.points[i] }

// Points returns a copy of the grid points.
func (a Axis) Points() []float64 {
	out := make([]float64, len(a.points))
	copy(out, a.points)
	return out
}

// Nearest returns the index of the point closest to x; ties go to the lower index.
// Values outside [Low, High] clamp to the end points.
// Complexity: O(log count).
func (a Axis) Nearest(x float64) int {
	n := len(a.points)
	i := sort.SearchFloat64s(a.points, x)
	if i == 0 {
		return 0
	}
	if i == n {
		return n - 1
	}
	if x-a.points[i-1] <= a.points[i]-x {
		return i - 1
	}
	return i
}
