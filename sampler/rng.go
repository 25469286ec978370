package sampler

import "math/rand/v2"

// defaultSeed is used when callers pass seed == 0.
const defaultSeed uint64 = 1

// NewSource returns a deterministic PCG source. seed == 0 maps to a fixed
// default seed, so the zero value still gives reproducible draws.
//
// Complexity: O(1).
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.NewPCG(seed, deriveSeed(seed, 0))
}

// DeriveSource returns an independent deterministic stream identified by
// (seed, stream). Distinct stream ids give decorrelated sources.
//
// Complexity: O(1).
func DeriveSource(seed, stream uint64) rand.Source {
	if seed == 0 {
		seed = defaultSeed
	}
	return NewSource(deriveSeed(seed, stream+1))
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64 finalizer.
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// orDefault substitutes the default stream for a nil source.
func orDefault(src rand.Source) rand.Source {
	if src == nil {
		return NewSource(0)
	}
	return src
}
