package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidGridSpec indicates malformed axis bounds or count (count < 2,
	// low >= high, non-finite bounds), an empty product or duplicate axis names.
	ErrInvalidGridSpec = errors.New("grid: invalid grid spec")
	// ErrTooManyCells indicates the product of axis counts exceeds MaxCells.
	ErrTooManyCells = errors.New("grid: too many cells")
	// ErrOutOfRange indicates a cell, axis or coordinate index is out of range.
	ErrOutOfRange = errors.New("grid: index out of range")
)

// MaxCells bounds the size of a product grid. The cell count grows
// combinatorially with the number of axes; models beyond this size belong to
// a continuous-space sampler rather than a grid.
const MaxCells = 1 << 26

// Axis is an ordered, evenly spaced discretization of [Low, High].
// It is immutable once built.
type Axis struct {
	name   string
	low    float64
	high   float64
	step   float64
	points []float64
}

// Grid is the Cartesian product of one or more axes. Cells are numbered in
// row-major order: the last axis varies fastest. Immutable once built.
type Grid struct {
	axes    []Axis
	strides []int
	size    int
}
