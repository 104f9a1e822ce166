package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/valvenet/core"
)

// queued is a discovered valve waiting to be visited.
type queued struct {
	id    string
	depth int
}

// BFS walks n from start in order of travel time, following tunnels in
// declaration order.
//
// Errors: ErrNilNetwork, ErrStartNotFound, ErrOptionViolation, the context
// error on cancellation, or an OnVisit error wrapped with the valve ID.
//
// Complexity: O(V + E).
func BFS(n *core.Network, start string, opts ...Option) (*Result, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !n.HasValve(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	res := &Result{Depth: make(map[string]int, n.Len())}
	res.Depth[start] = 0
	queue := make([]queued, 1, n.Len())
	queue[0] = queued{id: start}

	for head := 0; head < len(queue); head++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		cur := queue[head]
		res.Visited++
		if err := o.OnVisit(cur.id, cur.depth); err != nil {
			if errors.Is(err, ErrStop) {
				return res, nil
			}
			return nil, fmt.Errorf("bfs: visit %q: %w", cur.id, err)
		}
		if o.MaxDepth > 0 && cur.depth >= o.MaxDepth {
			continue
		}
		// cur.id was discovered through the network, so the lookup holds.
		next, _ := n.NeighborIDs(cur.id)
		for _, to := range next {
			if _, seen := res.Depth[to]; seen || !o.Follow(cur.id, to) {
				continue
			}
			res.Depth[to] = cur.depth + 1
			queue = append(queue, queued{id: to, depth: cur.depth + 1})
		}
	}

	return res, nil
}
