// Package bayesgrid is a small toolkit for grid-approximation Bayesian
// inference: lay a grid over the parameters, weigh every point by prior and
// likelihood, normalize, then draw from and summarize the posterior.
//
// 🚀 What is bayesgrid?
//
//	A pure-Go library and CLI that brings together:
//		• Grids: evenly spaced axes and their Cartesian products
//		• Densities: binomial, normal, uniform, Cauchy and Beta families
//		• Posteriors: normalized mass on the grid, computed in log space
//		• Sampling: reproducible, worker-independent draws from the mass
//		• Summaries: quantile and highest-density intervals, point estimates, loss
//		• Bridges: the same summaries for CSV traces from external samplers
//
// ✨ Why grid approximation?
//
//   - Exact on the grid – no tuning, no convergence diagnostics
//   - Easy to check – every posterior sums to one and can be plotted directly
//   - Practical up to a few parameters – beyond that, bring an MCMC trace
//
// Everything is organized under these packages:
//
//	grid/      — Axis, Grid and cell ↔ coordinate ↔ value mapping
//	density/   — distribution families and density-function adapters
//	posterior/ — Compute, ComputeLog and the normalized Mass
//	sampler/   — Sample, SampleParallel, seeded sources and predictive draws
//	summary/   — Quantile, QuantileInterval, HDI, Mode, Describe, MinimizeLoss
//	bridge/    — Trace, ReadCSV/WriteCSV and external sampler commands
//	model/     — YAML model files compiled into grids and log densities
//	report/    — text tables, JSON and PNG plots
//	cmd/bayesgrid — the command-line front end
//
// Quick ASCII example (globe tossing, 6 water in 9 tosses):
//
//	posterior
//	   │            ▂▄▆██▆▄
//	   │         ▂▄████████▄▂
//	   │      ▂▄████████████████▄
//	   └──────────────────────────── p
//	   0          0.5   0.67       1
//
// Run it with:
//
//	bayesgrid run examples/models/globe-tossing.yaml
//
// See examples/ for runnable scenarios.
package bayesgrid
