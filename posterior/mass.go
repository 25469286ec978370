package posterior

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bayesgrid/grid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Grid returns the grid the mass is defined on.
func (m *Mass) Grid() *grid.Grid { return m.grid }

// Len returns the number of cells.
func (m *Mass) Len() int { return len(m.probs) }

// At returns the mass of cell, or ErrOutOfRange.
func (m *Mass) At(cell int) (float64, error) {
	if cell < 0 || cell >= len(m.probs) {
		return 0, fmt.Errorf("%w: cell %d of %d", ErrOutOfRange, cell, len(m.probs))
	}
	return m.probs[cell], nil
}

// Probs returns a copy of the per-cell masses in cell order.
func (m *Mass) Probs() []float64 {
	out := make([]float64, len(m.probs))
	copy(out, m.probs)
	return out
}

// Sum returns the total mass (1 within tolerance).
func (m *Mass) Sum() float64 {
	return floats.SumCompensated(m.probs)
}

// LogNormalizer returns log Σ prior·likelihood over the grid, i.e. the log of
// the constant the weights were divided by.
func (m *Mass) LogNormalizer() float64 { return m.logNorm }

// Validate re-checks the Mass invariants: entries finite and non-negative,
// sum equal to 1 within the configured tolerance.
func (m *Mass) Validate() error {
	for c, p := range m.probs {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("%w: cell %d has mass %v", ErrNotNormalized, c, p)
		}
	}
	if s := m.Sum(); math.Abs(s-1) > m.tol {
		return fmt.Errorf("%w: sum is %v", ErrNotNormalized, s)
	}
	return nil
}

// Probability returns the total mass of the cells whose parameter tuple
// satisfies pred, e.g. P(p < 0.5). The tuple passed to pred is reused.
// Complexity: O(M·k).
func (m *Mass) Probability(pred func(params []float64) bool) float64 {
	params := make([]float64, m.grid.Dim())
	var sum, c float64 // Kahan compensation
	for cell, p := range m.probs {
		m.grid.ValuesInto(cell, params)
		if !pred(params) {
			continue
		}
		y := p - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum
}

// Marginal returns the mass of each point of axis k, summed over all other axes.
// Complexity: O(M).
func (m *Mass) Marginal(k int) ([]float64, error) {
	ax, err := m.grid.Axis(k)
	if err != nil {
		return nil, fmt.Errorf("%w: axis %d", ErrOutOfRange, k)
	}
	out := make([]float64, ax.Count())
	for cell, p := range m.probs {
		out[m.grid.AxisCoordinate(cell, k)] += p
	}
	return out, nil
}

// MAP returns the cell with the largest mass and its parameter tuple.
// Ties go to the lowest cell index.
func (m *Mass) MAP() (int, []float64) {
	cell := floats.MaxIdx(m.probs)
	params, _ := m.grid.Values(cell)
	return cell, params
}

// Mean returns the posterior mean of axis k computed exactly from the grid.
func (m *Mass) Mean(k int) (float64, error) {
	pts, marg, err := m.axisMarginal(k)
	if err != nil {
		return 0, err
	}
	return stat.Mean(pts, marg), nil
}

// StdDev returns the posterior standard deviation of axis k from the grid.
func (m *Mass) StdDev(k int) (float64, error) {
	pts, marg, err := m.axisMarginal(k)
	if err != nil {
		return 0, err
	}
	return stat.PopStdDev(pts, marg), nil
}

// Quantile returns the smallest grid point of axis k whose cumulative
// marginal mass reaches q.
func (m *Mass) Quantile(k int, q float64) (float64, error) {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidProbability, q)
	}
	pts, marg, err := m.axisMarginal(k)
	if err != nil {
		return 0, err
	}
	var cum float64
	for i, p := range marg {
		cum += p
		if cum >= q-m.tol {
			return pts[i], nil
		}
	}
	return pts[len(pts)-1], nil
}

func (m *Mass) axisMarginal(k int) ([]float64, []float64, error) {
	marg, err := m.Marginal(k)
	if err != nil {
		return nil, nil, err
	}
	ax, _ := m.grid.Axis(k)
	return ax.Points(), marg, nil
}
