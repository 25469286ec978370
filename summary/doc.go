// Package summary reduces a vector of posterior draws to point estimates
// and credible intervals.
//
// 🚀 What is it for?
//
//	Draws may come from a grid posterior (package sampler) or from any
//	external sampler (package bridge). Both are plain []float64 here, so
//	a summary never depends on where the draws came from.
//
// ✨ Key features:
//   - Quantile: linear interpolation between order statistics (type 7)
//   - QuantileInterval: equal-tailed interval of a given width
//   - HDI: narrowest interval holding ceil(w·N) draws; ties go to the
//     window with the lowest lower bound
//   - Point estimates: mean, median, mode (deterministic)
//   - Describe: the usual one-line-per-parameter summary
//   - Loss functions: expected loss of a decision and loss minimization
//
// ⚙️ Usage:
//
//	hdi, err := summary.HDI(draws, 0.89)
//	if err != nil {
//	  // ErrInsufficientSamples, ErrInvalidWidth or ErrNonFiniteSample
//	}
//	fmt.Println(hdi) // 89% highest-density [lower, upper]
//
// Inputs are never mutated: every function that needs order statistics
// sorts a private copy. NaN or ±Inf draws are rejected with
// ErrNonFiniteSample instead of propagating into the result.
//
// Complexity: O(N log N) for anything that sorts, O(N) otherwise.
package summary
