// Package model reads declarative grid models from YAML and runs them end
// to end: grid, posterior, draws and summaries.
//
// A model file names each parameter with its grid bounds and prior, and a
// likelihood family whose parameters are constants or references to grid
// parameters:
//
//	name: globe-tossing
//	parameters:
//	  - {name: p, low: 0, high: 1, count: 1000, prior: {family: uniform, params: [0, 1]}}
//	likelihood:
//	  family: binomial
//	  params: [9, p]
//	  observations: [6]
//	draws: 10000
//	seed: 100
//	widths: [0.5, 0.89]
//
// Priors of different parameters are independent; the joint prior is their
// product. The log likelihood of a cell is the sum of the log densities of
// all observations. An omitted prior is flat over the axis.
package model
