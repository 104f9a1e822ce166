package search

import (
	"context"
	"time"

	"github.com/katalvlaran/valvenet/matrix"
	"github.com/katalvlaran/valvenet/metrics"
)

// Single returns the most pressure one agent releases within opts.Budget,
// starting at d.Start().
//
// The result equals the maximum of Valuate over every ordering of the
// value-bearing valves (or over every ordering of at most opts.MaxVisits of
// them when MaxVisits > 0). Only feasible prefixes are walked: once a valve
// cannot be reached and opened in time, no ordering continuing from there
// can add to it.
//
// With no value-bearing valves the result is 0, or ErrNoValueValves when
// opts.Strict is set.
//
// Complexity: O(k!) states in the worst case, k = d.Valves(); in practice
// bounded by the budget.
func Single(ctx context.Context, d *matrix.Distances, opts Options) (int, error) {
	if err := validate(d, opts); err != nil {
		return 0, err
	}
	if d.Valves() == 0 {
		return empty(opts)
	}

	began := time.Now()
	out, err := explore(ctx, d, opts, opts.Budget, false)
	if err != nil {
		return 0, err
	}
	elapsed := time.Since(began)

	opts.Metrics.AddStates(metrics.VariantSingle, out.states)
	opts.Metrics.ObserveSearch(metrics.VariantSingle, elapsed, out.best)
	opts.logger().Debug("single-agent search finished",
		"valves", d.Valves(), "budget", opts.Budget,
		"states", out.states, "best", out.best, "elapsed", elapsed)

	return out.best, nil
}
