// Package density evaluates probability densities and masses for the
// distribution families used by grid models: binomial, normal (Gaussian),
// uniform, Cauchy and beta.
//
// 🚀 What is it for?
//
//	A grid posterior needs two things at every grid cell: a prior weight and
//	a likelihood. Both are plain density evaluations with fixed parameters,
//	so this package is stateless: every Distribution is a small value type
//	and every helper is a pure function.
//
// ✨ Key features:
//   - New(family, params...) builds a Distribution by name, so model files
//     can refer to families as strings ("binomial", "normal", ...)
//   - Prob and LogProb never return NaN at the edges of their support; a
//     binomial with p=0 or p=1 yields exactly 0 (or 1) mass
//   - LogLikelihood sums log-densities over an observation vector without
//     underflowing the product
//   - Func adapters (OnAxis, LogOnAxis, Product) lift 1-D distributions to
//     functions of a parameter tuple
//
// ⚙️ Usage:
//
//	d, err := density.New(density.FamilyBinomial, 9, 0.6)
//	if err != nil {
//	  // ErrUnsupportedDistribution or ErrInvalidParameter
//	}
//	fmt.Println(d.Prob(6)) // Pr[6 successes in 9 trials | p=0.6]
//
// Evaluation is delegated to gonum.org/v1/gonum/stat/distuv; this package
// adds parameter validation and the boundary policy.
package density
