package search

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"
)

// Bipartition splits the value-bearing valves between two agents.
// Bit i of a mask stands for matrix index i.
type Bipartition struct {
	Left  uint64
	Right uint64
}

// Partitions enumerates the bipartitions of k valves scored under mode.
//
//   - Balanced: every choice of ⌊k/2⌋ valves for Left, the rest for Right;
//     combin.Binomial(k, k/2) entries.
//   - AllSizes: every unordered split with Left ≤ Right numerically;
//     2^(k-1) entries for k ≥ 1.
//
// Left and Right are always disjoint and their union is the full k-bit set.
func Partitions(k int, mode PartitionMode) ([]Bipartition, error) {
	if k < 0 || k > MaxTableValves {
		return nil, fmt.Errorf("%w: %d", ErrTooManyValves, k)
	}
	full := uint64(1)<<uint(k) - 1

	switch mode {
	case Balanced:
		half := k / 2
		out := make([]Bipartition, 0, combin.Binomial(k, half))
		gen := combin.NewCombinationGenerator(k, half)
		comb := make([]int, half)
		for gen.Next() {
			gen.Combination(comb)
			var left uint64
			for _, i := range comb {
				left |= 1 << uint(i)
			}
			out = append(out, Bipartition{Left: left, Right: full ^ left})
		}
		return out, nil

	case AllSizes:
		out := make([]Bipartition, 0, 1<<uint(max(k-1, 0)))
		for left := uint64(0); left <= full; left++ {
			right := full ^ left
			if left > right {
				continue
			}
			out = append(out, Bipartition{Left: left, Right: right})
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrOptionViolation, mode)
	}
}
