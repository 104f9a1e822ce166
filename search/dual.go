package search

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/valvenet/matrix"
	"github.com/katalvlaran/valvenet/metrics"
	"golang.org/x/sync/errgroup"
)

// Dual returns the most pressure two agents release together when each has
// opts.Budget-opts.Overhead time units and the value-bearing valves are
// split between them by a Bipartition from Partitions(k, opts.Partition).
//
// Each side of a split is scored with the single-agent optimum restricted
// to that side. Those optima come from one walk that records the best total
// per opened set, closed over subsets; the splits are then scored in
// parallel chunks and reduced with max.
//
// Balanced (the default) only tries ⌊k/2⌋-versus-rest splits and is not
// guaranteed optimal; AllSizes is exact.
//
// With no value-bearing valves the result is 0, or ErrNoValueValves when
// opts.Strict is set. More than MaxTableValves valves fail with
// ErrTooManyValves.
//
// Complexity: walk as in Single, plus O(k·2^k) for the subset closure and
// O(|partitions|) for scoring.
func Dual(ctx context.Context, d *matrix.Distances, opts Options) (int, error) {
	if err := validate(d, opts); err != nil {
		return 0, err
	}
	k := d.Valves()
	if k == 0 {
		return empty(opts)
	}
	if k > MaxTableValves {
		return 0, fmt.Errorf("%w: %d > %d", ErrTooManyValves, k, MaxTableValves)
	}

	began := time.Now()
	out, err := explore(ctx, d, opts, opts.Budget-opts.Overhead, true)
	if err != nil {
		return 0, err
	}
	closeOverSubsets(out.table, k)

	parts, err := Partitions(k, opts.Partition)
	if err != nil {
		return 0, err
	}
	best, err := scorePartitions(ctx, out.table, parts, opts.workers())
	if err != nil {
		return 0, err
	}
	elapsed := time.Since(began)

	opts.Metrics.AddStates(metrics.VariantDual, out.states)
	opts.Metrics.AddPartitions(len(parts))
	opts.Metrics.ObserveSearch(metrics.VariantDual, elapsed, best)
	opts.logger().Debug("dual-agent search finished",
		"valves", k, "budget", opts.Budget-opts.Overhead, "partition", opts.Partition,
		"partitions", len(parts), "states", out.states, "best", best, "elapsed", elapsed)

	return best, nil
}

// scorePartitions returns max(table[p.Left] + table[p.Right]) over parts.
// parts is cut into one contiguous chunk per worker; each worker keeps a
// local maximum.
func scorePartitions(ctx context.Context, table []int, parts []Bipartition, workers int) (int, error) {
	if workers > len(parts) {
		workers = len(parts)
	}
	if workers < 1 {
		return 0, nil
	}
	chunk := (len(parts) + workers - 1) / workers

	local := make([]int, workers)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		i := i
		lo := min(i*chunk, len(parts))
		hi := min(lo+chunk, len(parts))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			best := 0
			for _, p := range parts[lo:hi] {
				if v := table[p.Left] + table[p.Right]; v > best {
					best = v
				}
			}
			local[i] = best
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	best := 0
	for _, v := range local {
		best = max(best, v)
	}

	return best, nil
}
