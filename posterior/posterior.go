package posterior

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/bayesgrid/density"
	"github.com/katalvlaran/bayesgrid/grid"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Operation names for error wrapping.
const (
	opCompute    = "Compute"
	opComputeLog = "ComputeLog"
)

func posteriorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Compute evaluates prior(params) · likelihood(params) at every cell of g and
// normalizes the weights to sum to 1. The likelihood closes over the observed
// data; see ComputeObserved for the explicit form.
//
// Errors:
//   - ErrNilGrid, ErrNilDensity for missing inputs.
//   - ErrDegeneratePosterior if every cell has zero weight.
func Compute(g *grid.Grid, prior, likelihood density.Func, opts ...Option) (*Mass, error) {
	return ComputeContext(context.Background(), g, prior, likelihood, opts...)
}

// ComputeContext is Compute with cancellation. A cancelled ctx aborts between chunks.
func ComputeContext(ctx context.Context, g *grid.Grid, prior, likelihood density.Func, opts ...Option) (*Mass, error) {
	if prior == nil || likelihood == nil {
		return nil, posteriorErrorf(opCompute, ErrNilDensity)
	}
	m, err := computeLog(ctx, g, density.Log(prior), density.Log(likelihood), gatherOptions(opts))
	if err != nil {
		return nil, posteriorErrorf(opCompute, err)
	}
	return m, nil
}

// ComputeObserved is Compute with the observed data passed explicitly.
func ComputeObserved[D any](g *grid.Grid, prior density.Func, likelihood Likelihood[D], data D, opts ...Option) (*Mass, error) {
	if likelihood == nil {
		return nil, posteriorErrorf(opCompute, ErrNilDensity)
	}
	bound := func(params []float64) float64 { return likelihood(params, data) }
	return Compute(g, prior, bound, opts...)
}

// ComputeLog is Compute for log-scale inputs: the unnormalized log weight of
// a cell is logPrior(params) + logLikelihood(params). Use it when the
// likelihood is a product over many observations.
func ComputeLog(g *grid.Grid, logPrior, logLikelihood density.Func, opts ...Option) (*Mass, error) {
	return ComputeLogContext(context.Background(), g, logPrior, logLikelihood, opts...)
}

// ComputeLogContext is ComputeLog with cancellation.
func ComputeLogContext(ctx context.Context, g *grid.Grid, logPrior, logLikelihood density.Func, opts ...Option) (*Mass, error) {
	if logPrior == nil || logLikelihood == nil {
		return nil, posteriorErrorf(opComputeLog, ErrNilDensity)
	}
	m, err := computeLog(ctx, g, logPrior, logLikelihood, gatherOptions(opts))
	if err != nil {
		return nil, posteriorErrorf(opComputeLog, err)
	}
	return m, nil
}

// computeLog runs the three stages shared by every entry point.
//
// Implementation:
//   - Stage 1: evaluate log weights per cell (sequential or chunked-parallel).
//   - Stage 2: find the maximum; all -Inf means zero total mass.
//   - Stage 3: exponentiate shifted weights, sum with compensation, divide.
func computeLog(ctx context.Context, g *grid.Grid, logPrior, logLik density.Func, o Options) (*Mass, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	n := g.Size()
	logw := make([]float64, n)

	// Stage 1: per-cell evaluation. Each chunk owns a disjoint range of logw.
	eval := func(lo, hi int) {
		params := make([]float64, g.Dim())
		for c := lo; c < hi; c++ {
			g.ValuesInto(c, params)
			lp := sanitize(logPrior(params))
			if math.IsInf(lp, -1) {
				logw[c] = lp
				continue
			}
			logw[c] = sanitize(lp + sanitize(logLik(params)))
		}
	}
	if err := evaluate(ctx, n, o.workers, eval); err != nil {
		return nil, err
	}

	// Stage 2: explicit zero-mass check before any division.
	peak := floats.Max(logw)
	if math.IsInf(peak, -1) {
		return nil, ErrDegeneratePosterior
	}

	// Stage 3: shift by the peak so the largest weight is exactly 1.
	probs := make([]float64, n)
	for c, lw := range logw {
		probs[c] = math.Exp(lw - peak)
	}
	total := floats.SumCompensated(probs)
	if !(total > o.tolerance) || math.IsInf(total, 1) {
		return nil, ErrDegeneratePosterior
	}
	floats.Scale(1/total, probs)

	return &Mass{
		grid:    g,
		probs:   probs,
		logNorm: peak + math.Log(total),
		tol:     o.tolerance,
	}, nil
}

// sanitize maps values that cannot be a log weight (NaN, +Inf) to -Inf.
func sanitize(lw float64) float64 {
	if math.IsNaN(lw) || math.IsInf(lw, 1) {
		return math.Inf(-1)
	}
	return lw
}

// evaluate runs fn over [0, n) in chunkSize pieces. With workers > 1 the
// chunks run on an errgroup limited to workers goroutines.
func evaluate(ctx context.Context, n, workers int, fn func(lo, hi int)) error {
	if workers <= 1 {
		for lo := 0; lo < n; lo += chunkSize {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(lo, min(lo+chunkSize, n))
		}
		return nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for lo := 0; lo < n; lo += chunkSize {
		hi := min(lo+chunkSize, n)
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			fn(lo, hi)
			return nil
		})
	}
	return eg.Wait()
}
