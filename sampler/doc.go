// Package sampler draws parameter samples from a discrete grid posterior
// and simulates posterior predictive observations.
//
// 🚀 What is it for?
//
//	Summaries such as intervals and point estimates are computed from
//	samples rather than from the grid directly, so the same summary code
//	also serves draws produced by external samplers. Sample draws grid
//	cells with replacement, each with probability equal to its posterior
//	mass, and returns the parameter tuples of the drawn cells.
//
// ✨ Key features:
//   - Deterministic: the same seed and inputs give the same SampleSet
//   - NewSource(0) maps to a fixed default seed; no time-based seeding
//   - SampleParallel splits the draws into fixed blocks, each with its own
//     derived stream, so results do not depend on the worker count
//   - Predict pushes draws through a simulator (e.g. BinomialSimulator) to
//     produce a posterior predictive distribution
//
// ⚙️ Usage:
//
//	m, _ := posterior.Compute(g, prior, lik)
//	ss, err := sampler.FromPosterior(m, 10_000, sampler.NewSource(100))
//	if err != nil {
//	  // ErrInvalidSampleCount, ErrMassMismatch or ErrInvalidMass
//	}
//	p, _ := ss.ParamByName("p")
//
// Concurrency:
//   - A rand.Source is not goroutine-safe. Never share one between
//     goroutines; use DeriveSource to obtain independent streams.
//   - A SampleSet is immutable and safe for concurrent reads.
//
// Complexity: O(M) to prepare the weights plus O(n·log M) per draw set,
// where M is the number of cells.
package sampler
