package rig

import "math"

// NoiseFunc samples a continuous noise signal in [-1,1] at time t. Pattern
// generators take one at construction instead of reaching for a global
// random source, so tests can inject a known signal.
type NoiseFunc func(t float64) float64

// defaultNoise backs the built-in pattern generators.
var defaultNoise = ValueNoise(1)

// ValueNoise returns a deterministic smooth value-noise function seeded by
// seed: random lattice values joined by smoothstep interpolation.
func ValueNoise(seed uint64) NoiseFunc {
	return func(t float64) float64 {
		i := math.Floor(t)
		f := t - i
		a := latticeValue(seed, int64(i))
		b := latticeValue(seed, int64(i)+1)
		u := f * f * (3 - 2*f)
		return Lerp(a, b, u)
	}
}

// latticeValue hashes a lattice point to [-1,1] (splitmix64 finalizer).
func latticeValue(seed uint64, x int64) float64 {
	z := seed + uint64(x)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	return float64(z>>11)/float64(1<<52) - 1
}
