package sampler

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/bayesgrid/grid"
	"github.com/katalvlaran/bayesgrid/posterior"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// blockSize is the number of draws per derived stream in SampleParallel.
// Fixed so that the output does not depend on the worker count.
const blockSize = 4096

// Sample draws n grid cells with replacement, cell c with probability
// mass[c], and returns their parameter tuples in draw order.
// A nil src uses NewSource(0).
//
// Errors:
//   - ErrNilGrid if g is nil.
//   - ErrInvalidSampleCount if n < 0.
//   - ErrMassMismatch if len(mass) != g.Size().
//   - ErrInvalidMass for negative or non-finite entries or a sum away from 1.
//
// n == 0 returns an empty set without error.
func Sample(g *grid.Grid, mass []float64, n int, src rand.Source) (*SampleSet, error) {
	if err := validate(g, mass, n); err != nil {
		return nil, fmt.Errorf("Sample: %w", err)
	}
	ss := newSampleSet(g, n)
	if n == 0 {
		return ss, nil
	}
	draw(distuv.NewCategorical(mass, orDefault(src)), mass, ss.cells)
	ss.fill(g)
	return ss, nil
}

// FromPosterior is Sample over the cells and masses of m.
func FromPosterior(m *posterior.Mass, n int, src rand.Source) (*SampleSet, error) {
	if m == nil {
		return nil, fmt.Errorf("FromPosterior: %w", ErrNilGrid)
	}
	return Sample(m.Grid(), m.Probs(), n, src)
}

// SampleParallel is Sample split into fixed blocks of draws. Block b uses
// DeriveSource(seed, b), and up to workers blocks run concurrently. The
// result depends only on (g, mass, n, seed), never on workers.
func SampleParallel(ctx context.Context, g *grid.Grid, mass []float64, n int, seed uint64, workers int) (*SampleSet, error) {
	if err := validate(g, mass, n); err != nil {
		return nil, fmt.Errorf("SampleParallel: %w", err)
	}
	ss := newSampleSet(g, n)
	if n == 0 {
		return ss, nil
	}
	if workers < 1 {
		workers = 1
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for b, lo := 0, 0; lo < n; b, lo = b+1, lo+blockSize {
		hi := min(lo+blockSize, n)
		stream := uint64(b)
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			cat := distuv.NewCategorical(mass, DeriveSource(seed, stream))
			draw(cat, mass, ss.cells[lo:hi])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("SampleParallel: %w", err)
	}
	ss.fill(g)
	return ss, nil
}

// draw fills dst with category indices. A zero-mass cell can be returned by
// the heap walk only when the uniform variate is exactly 0; redraw then.
func draw(cat distuv.Categorical, mass []float64, dst []int) {
	for i := range dst {
		c := int(cat.Rand())
		for mass[c] == 0 {
			c = int(cat.Rand())
		}
		dst[i] = c
	}
}

func validate(g *grid.Grid, mass []float64, n int) error {
	if g == nil {
		return ErrNilGrid
	}
	if n < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleCount, n)
	}
	if len(mass) != g.Size() {
		return fmt.Errorf("%w: %d entries for %d cells", ErrMassMismatch, len(mass), g.Size())
	}
	for c, p := range mass {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("%w: cell %d has mass %v", ErrInvalidMass, c, p)
		}
	}
	if s := floats.SumCompensated(mass); math.Abs(s-1) > MassTolerance {
		return fmt.Errorf("%w: sum is %v", ErrInvalidMass, s)
	}
	return nil
}

func newSampleSet(g *grid.Grid, n int) *SampleSet {
	return &SampleSet{
		names:  g.Names(),
		cells:  make([]int, n),
		values: make([]float64, n*g.Dim()),
		dim:    g.Dim(),
	}
}

// fill resolves the drawn cells to parameter tuples.
func (s *SampleSet) fill(g *grid.Grid) {
	for i, c := range s.cells {
		g.ValuesInto(c, s.values[i*s.dim:(i+1)*s.dim])
	}
}
