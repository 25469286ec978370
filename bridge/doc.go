// Package bridge connects external samplers to the summary code.
//
// An external sampler (MCMC, Hamiltonian Monte Carlo, anything that
// produces draws) is an opaque collaborator: the only contract is a Source
// that yields the draws of one named parameter. Draws obtained this way are
// summarized exactly like grid draws, because package summary only ever
// sees a []float64.
//
// Sources provided here:
//   - Trace: in-memory draws per parameter and chain
//   - ReadCSV: a Trace from CSV with one column per parameter and an
//     optional "chain" column; '#' lines are comments
//   - Command: runs an external sampler process and parses its CSV output
//   - FromSampleSet: grid draws from package sampler
package bridge
