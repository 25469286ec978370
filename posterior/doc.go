// Package posterior computes normalized posterior mass over a parameter grid.
//
// 🚀 What is grid approximation?
//
//	Discretize each parameter on a finite grid, evaluate prior × likelihood
//	at every cell, and divide by the total. The result is a discrete
//	distribution that approximates the continuous posterior and can be
//	queried directly or sampled.
//
// ✨ Key features:
//   - Compute / ComputeObserved for densities, ComputeLog for log-densities
//   - Numerically stable: weights are combined on the log scale and shifted
//     by their maximum before exponentiating, so a likelihood over hundreds
//     of observations does not underflow
//   - Cells whose weight is NaN, negative or infinite count as zero weight
//   - ErrDegeneratePosterior when no cell carries weight
//   - Optional parallel evaluation (WithWorkers) with results identical to
//     the sequential path
//
// ⚙️ Usage:
//
//	g, _ := grid.New(grid.MustBuild("p", 0, 1, 1000))
//	prior := density.Constant(1)
//	lik := func(params []float64) float64 { return density.Binomial(6, 9, params[0]) }
//	m, err := posterior.Compute(g, prior, lik)
//	if err != nil {
//	  // ErrDegeneratePosterior, ErrNilGrid, ErrNilDensity
//	}
//	below := m.Probability(func(v []float64) bool { return v[0] < 0.5 })
//
// Density functions receive a parameter slice that is reused between cells
// and must not retain it.
//
// Complexity: O(M) density evaluations for M cells, O(M) memory.
package posterior
