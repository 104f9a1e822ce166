package search

import (
	"fmt"

	"github.com/katalvlaran/valvenet/matrix"
)

// validate checks Options against each other and against d.
//
// Complexity: O(1).
func validate(d *matrix.Distances, opts Options) error {
	if d == nil {
		return ErrNilMatrix
	}
	if opts.Budget < 0 || opts.Budget > MaxBudget {
		return fmt.Errorf("%w: budget %d outside [0, %d]", ErrOptionViolation, opts.Budget, MaxBudget)
	}
	if opts.Overhead < 0 || opts.Overhead > opts.Budget {
		return fmt.Errorf("%w: overhead %d outside [0, %d]", ErrOptionViolation, opts.Overhead, opts.Budget)
	}
	if opts.MaxVisits < 0 {
		return fmt.Errorf("%w: max visits %d is negative", ErrOptionViolation, opts.MaxVisits)
	}
	if opts.Workers < 0 {
		return fmt.Errorf("%w: workers %d is negative", ErrOptionViolation, opts.Workers)
	}
	switch opts.Partition {
	case Balanced, AllSizes:
	default:
		return fmt.Errorf("%w: %s", ErrOptionViolation, opts.Partition)
	}
	// A capped matrix holds Unreachable for pairs further apart than its
	// cap; a larger search budget would treat reachable pairs as unreachable.
	if d.Budget() > 0 && opts.Budget > d.Budget() {
		return fmt.Errorf("%w: %d > %d", ErrBudgetExceedsMatrix, opts.Budget, d.Budget())
	}
	if d.Valves() > MaxValves {
		return fmt.Errorf("%w: %d > %d", ErrTooManyValves, d.Valves(), MaxValves)
	}

	return nil
}

// empty is the outcome of a search with nothing to open.
func empty(opts Options) (int, error) {
	if opts.Strict {
		return 0, ErrNoValueValves
	}

	return 0, nil
}
