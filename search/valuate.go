package search

import (
	"fmt"

	"github.com/katalvlaran/valvenet/matrix"
)

// Valuate returns the pressure released by opening the valves of seq in
// order, starting at d.Start() with budget time units.
//
// For each valve the travel time plus one unit to open it is paid first;
// if the valve is unreachable or that leaves no time for it to release
// anything, the walk stops and the remaining valves of seq are ignored.
// Otherwise the valve adds rate × remaining time.
//
// seq holds matrix indices in [0, d.Valves()); out-of-range indices panic.
// An empty seq yields 0.
//
// Complexity: O(len(seq)).
func Valuate(d *matrix.Distances, seq []int, budget int) int {
	var (
		left  = budget
		at    = d.Start()
		total int
	)
	for _, next := range seq {
		dist := d.At(at, next)
		if dist == matrix.Unreachable || dist >= left-1 {
			break
		}
		left -= dist + 1
		total += d.Rate(next) * left
		at = next
	}

	return total
}

// ValuateIDs is Valuate over valve IDs.
//
// Errors: ErrNilMatrix, ErrUnknownValve for IDs that are not value-bearing
// valves of d, ErrRepeatedValve when an ID appears twice.
func ValuateIDs(d *matrix.Distances, ids []string, budget int) (int, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	seq := make([]int, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for i, id := range ids {
		idx, err := d.Index(id)
		if err != nil || idx >= d.Valves() {
			return 0, fmt.Errorf("%w: %q", ErrUnknownValve, id)
		}
		if _, dup := seen[idx]; dup {
			return 0, fmt.Errorf("%w: %q", ErrRepeatedValve, id)
		}
		seen[idx] = struct{}{}
		seq[i] = idx
	}

	return Valuate(d, seq, budget), nil
}
