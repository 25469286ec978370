// Package grid builds discretized parameter spaces for grid approximation:
//
//   - Axis: count evenly spaced points spanning [low, high]
//   - Grid: the Cartesian product of independent axes
//   - Row-major cell numbering with index/coordinate conversion
//
// Grid size is the product of the axis counts, so it grows combinatorially
// with the number of parameters. Build, Product and CellCount reject
// anything past MaxCells before allocating.
package grid
