package search

import (
	"context"

	"github.com/katalvlaran/valvenet/matrix"
	"golang.org/x/sync/errgroup"
)

// state is one node of the search: where the agent stands, which valves it
// has opened, how much time is left and what it has released so far.
type state struct {
	at    int
	open  uint64
	left  int
	total int
	depth int
}

// walker runs an explicit-stack walk over states. Every state it pops is a
// feasible visiting sequence, so best is the maximum of Valuate over every
// ordering, and table[mask] the best total whose opened set is exactly mask.
type walker struct {
	d        *matrix.Distances
	maxDepth int
	stack    []state

	best   int
	table  []int // nil unless requested
	states int
}

func newWalker(d *matrix.Distances, maxDepth int, withTable bool) *walker {
	w := &walker{
		d:        d,
		maxDepth: maxDepth,
		stack:    make([]state, 0, d.Valves()*d.Valves()+1),
	}
	if withTable {
		w.table = make([]int, 1<<uint(d.Valves()))
	}

	return w
}

// children appends every feasible successor of s to dst.
// A valve is feasible when, after travelling and opening it, at least one
// time unit remains for it to release pressure.
func (w *walker) children(dst []state, s state) []state {
	if w.maxDepth > 0 && s.depth >= w.maxDepth {
		return dst
	}
	for j := 0; j < w.d.Valves(); j++ {
		bit := uint64(1) << uint(j)
		if s.open&bit != 0 {
			continue
		}
		dist := w.d.At(s.at, j)
		if dist == matrix.Unreachable || dist >= s.left-1 {
			continue
		}
		left := s.left - dist - 1
		dst = append(dst, state{
			at:    j,
			open:  s.open | bit,
			left:  left,
			total: s.total + w.d.Rate(j)*left,
			depth: s.depth + 1,
		})
	}

	return dst
}

// record folds s into best and table.
func (w *walker) record(s state) {
	w.states++
	if s.total > w.best {
		w.best = s.total
	}
	if w.table != nil && s.total > w.table[s.open] {
		w.table[s.open] = s.total
	}
}

// run exhausts the subtree rooted at root.
func (w *walker) run(root state) {
	w.stack = append(w.stack[:0], root)
	for len(w.stack) > 0 {
		s := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.record(s)
		w.stack = w.children(w.stack, s)
	}
}

// outcome is the reduced result of a fan-out walk.
type outcome struct {
	best   int
	table  []int
	states int
}

// explore walks every sequence reachable from the start valve with budget
// time units. The first moves are fanned out over opts.workers() goroutines;
// each owns a walker and the results are reduced with max once all are done.
func explore(ctx context.Context, d *matrix.Distances, opts Options, budget int, withTable bool) (outcome, error) {
	root := state{at: d.Start(), left: budget}
	head := newWalker(d, opts.MaxVisits, withTable)
	head.record(root)
	first := head.children(nil, root)

	workers := opts.workers()
	if workers > len(first) {
		workers = len(first)
	}

	jobs := make(chan state, len(first))
	for _, s := range first {
		jobs <- s
	}
	close(jobs)

	partial := make([]*walker, workers)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		i := i
		g.Go(func() error {
			w := newWalker(d, opts.MaxVisits, withTable)
			for s := range jobs {
				if err := gctx.Err(); err != nil {
					return err
				}
				w.run(s)
			}
			partial[i] = w
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return outcome{}, err
	}
	// errgroup's derived context is only cancelled on error, so a parent
	// cancelled after the last job was taken still has to surface here.
	if err := ctx.Err(); err != nil {
		return outcome{}, err
	}

	out := outcome{best: head.best, table: head.table, states: head.states}
	for _, w := range partial {
		out.states += w.states
		if w.best > out.best {
			out.best = w.best
		}
		for mask, v := range w.table {
			if v > out.table[mask] {
				out.table[mask] = v
			}
		}
	}

	return out, nil
}

// closeOverSubsets rewrites table so that table[mask] is the best total
// over every subset of mask, i.e. the best an agent restricted to the valves
// of mask can do.
//
// Complexity: O(k·2^k).
func closeOverSubsets(table []int, k int) {
	for b := 0; b < k; b++ {
		bit := 1 << uint(b)
		for mask := range table {
			if mask&bit != 0 && table[mask^bit] > table[mask] {
				table[mask] = table[mask^bit]
			}
		}
	}
}
