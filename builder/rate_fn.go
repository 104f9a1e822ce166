package builder

import (
	"fmt"
	"math/rand"
)

// RateFn produces a valve rate from an optional RNG. It must be
// deterministic for a given RNG state.
type RateFn func(rng *rand.Rand) int

// ConstantRateFn always yields value. Panics if value < 0.
func ConstantRateFn(value int) RateFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantRateFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int {
		return value
	}
}

// UniformRateFn samples uniformly in [lo, hi]. With a nil rng it yields lo.
// Panics unless 0 ≤ lo ≤ hi.
func UniformRateFn(lo, hi int) RateFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformRateFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) int {
		if rng == nil || lo == hi {
			return lo
		}
		return lo + rng.Intn(hi-lo+1)
	}
}

// SparseRateFn yields 0 with probability 1-p and otherwise defers to fn,
// giving networks where most valves are pass-through rooms. With a nil rng
// it always defers. Panics if p is outside [0,1] or fn is nil.
func SparseRateFn(p float64, fn RateFn) RateFn {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("SparseRateFn: p must be in [0,1], got %g", p))
	}
	if fn == nil {
		panic("SparseRateFn: nil RateFn")
	}

	return func(rng *rand.Rand) int {
		if rng != nil && rng.Float64() >= p {
			return 0
		}
		return fn(rng)
	}
}
