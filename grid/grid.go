package grid

import (
	"fmt"
	"math"
)

// New is an alias for Product.
func New(axes ...Axis) (*Grid, error) {
	return Product(axes...)
}

// Product forms the full combinatorial grid of the given axes. The axes are
// copied; later changes to the caller's slice do not affect the grid.
// Returns ErrInvalidGridSpec if no axes are given, an axis is uninitialized
// (zero Axis), or two non-empty names collide; ErrTooManyCells if the cell
// count exceeds MaxCells.
// Complexity: O(k) for k axes.
func Product(axes ...Axis) (*Grid, error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("%w: at least one axis is required", ErrInvalidGridSpec)
	}
	seen := make(map[string]int, len(axes))
	counts := make([]int, len(axes))
	for k, a := range axes {
		if a.Count() < 2 {
			return nil, fmt.Errorf("%w: axis %d is not built", ErrInvalidGridSpec, k)
		}
		if a.name != "" {
			if prev, dup := seen[a.name]; dup {
				return nil, fmt.Errorf("%w: axes %d and %d are both named %q", ErrInvalidGridSpec, prev, k, a.name)
			}
			seen[a.name] = k
		}
		counts[k] = a.Count()
	}
	size, err := CellCount(counts...)
	if err != nil {
		return nil, err
	}

	cp := make([]Axis, len(axes))
	copy(cp, axes)
	// Precompute row-major strides: last axis fastest.
	strides := make([]int, len(cp))
	stride := 1
	for k := len(cp) - 1; k >= 0; k-- {
		strides[k] = stride
		stride *= cp[k].Count()
	}

	return &Grid{axes: cp, strides: strides, size: size}, nil
}

// CellCount returns the number of cells of a grid with the given axis
// counts without building it. Returns ErrInvalidGridSpec for an empty list or
// a count below 1 and ErrTooManyCells past MaxCells.
func CellCount(counts ...int) (int, error) {
	if len(counts) == 0 {
		return 0, fmt.Errorf("%w: at least one axis is required", ErrInvalidGridSpec)
	}
	size := 1
	for k, c := range counts {
		if c < 1 {
			return 0, fmt.Errorf("%w: axis %d has count %d", ErrInvalidGridSpec, k, c)
		}
		if size > MaxCells/c {
			return 0, fmt.Errorf("%w: more than %d cells", ErrTooManyCells, MaxCells)
		}
		size *= c
	}
	return size, nil
}

// Size returns the number of cells.
func (g *Grid) Size() int { return g.size }

// Dim returns the number of axes (parameters).
func (g *Grid) Dim() int { return len(g.axes) }

// Axis returns the k-th axis, or ErrOutOfRange.
func (g *Grid) Axis(k int) (Axis, error) {
	if k < 0 || k >= len(g.axes) {
		return Axis{}, fmt.Errorf("%w: axis %d of %d", ErrOutOfRange, k, len(g.axes))
	}
	return g.axes[k], nil
}

// Axes returns a copy of the axes in order.
func (g *Grid) Axes() []Axis {
	out := make([]Axis, len(g.axes))
	copy(out, g.axes)
	return out
}

// Names returns the axis names in order.
func (g *Grid) Names() []string {
	out := make([]string, len(g.axes))
	for k, a := range g.axes {
		out[k] = a.name
	}
	return out
}

// AxisIndex returns the position of the axis called name.
func (g *Grid) AxisIndex(name string) (int, bool) {
	for k, a := range g.axes {
		if a.name == name {
			return k, true
		}
	}
	return -1, false
}

// InBounds reports whether cell is a valid cell index.
// Complexity: O(1).
func (g *Grid) InBounds(cell int) bool {
	return cell >= 0 && cell < g.size
}

// Index maps per-axis coordinates to the row-major cell index.
// Returns ErrOutOfRange for a wrong coordinate count or an out-of-range coordinate.
// Complexity: O(k).
func (g *Grid) Index(coords ...int) (int, error) {
	if len(coords) != len(g.axes) {
		return 0, fmt.Errorf("%w: want %d coordinates, got %d", ErrOutOfRange, len(g.axes), len(coords))
	}
	cell := 0
	for k, c := range coords {
		if c < 0 || c >= g.axes[k].Count() {
			return 0, fmt.Errorf("%w: coordinate %d on axis %d", ErrOutOfRange, c, k)
		}
		cell += c * g.strides[k]
	}
	return cell, nil
}

// Coordinate maps a cell index back to per-axis coordinates.
// Complexity: O(k).
func (g *Grid) Coordinate(cell int) ([]int, error) {
	if !g.InBounds(cell) {
		return nil, fmt.Errorf("%w: cell %d of %d", ErrOutOfRange, cell, g.size)
	}
	coords := make([]int, len(g.axes))
	for k := range g.axes {
		coords[k] = cell / g.strides[k]
		cell %= g.strides[k]
	}
	return coords, nil
}

// Values returns the parameter tuple carried by cell.
// Complexity: O(k).
func (g *Grid) Values(cell int) ([]float64, error) {
	if !g.InBounds(cell) {
		return nil, fmt.Errorf("%w: cell %d of %d", ErrOutOfRange, cell, g.size)
	}
	dst := make([]float64, len(g.axes))
	g.ValuesInto(cell, dst)
	return dst, nil
}

// ValuesInto writes the parameter tuple of cell into dst without allocating.
// It is the hot-path variant of Values: cell must be in bounds and
// len(dst) >= Dim(), otherwise it panics.
func (g *Grid) ValuesInto(cell int, dst []float64) {
	for k, a := range g.axes {
		dst[k] = a.points[cell/g.strides[k]]
		cell %= g.strides[k]
	}
}

// AxisCoordinate returns the coordinate of cell along axis k without
// allocating. cell and k must be in range.
func (g *Grid) AxisCoordinate(cell, k int) int {
	return (cell / g.strides[k]) % g.axes[k].Count()
}

// Nearest returns the cell whose parameter tuple is closest, axis by axis,
// to the given values.
func (g *Grid) Nearest(values ...float64) (int, error) {
	if len(values) != len(g.axes) {
		return 0, fmt.Errorf("%w: want %d values, got %d", ErrOutOfRange, len(g.axes), len(values))
	}
	cell := 0
	for k, v := range values {
		if math.IsNaN(v) {
			return 0, fmt.Errorf("%w: NaN value on axis %d", ErrOutOfRange, k)
		}
		cell += g.axes[k].Nearest(v) * g.strides[k]
	}
	return cell, nil
}
