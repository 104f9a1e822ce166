package matrix

import (
	"github.com/katalvlaran/valvenet/bfs"
	"github.com/katalvlaran/valvenet/core"
)

// Build runs one depth-capped BFS per interesting valve over the whole
// network and keeps only the distances between interesting valves.
//
// Interesting valves are the value-bearing ones plus the start. An isolated
// interesting valve simply ends up with Unreachable towards every other one.
// Each walk stops as soon as every interesting valve has been reached and
// never enters zero-rate dead ends from their only exit.
//
// Errors: ErrNilNetwork, ErrBadBudget, or whatever bfs.BFS returns
// (including context cancellation).
//
// Complexity: O(k·(V + E)) time, O(k²) memory, k = interesting valves.
func Build(n *core.Network, opts ...Option) (*Distances, error) {
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

	ids := n.ValueBearing()
	valves := len(ids)
	start := -1
	for i, id := range ids {
		if id == n.Start() {
			start = i
			break
		}
	}
	if start < 0 {
		start = len(ids)
		ids = append(ids, n.Start())
	}

	size := len(ids)
	d := &Distances{
		ids:    ids,
		index:  make(map[string]int, size),
		rates:  make([]int, size),
		valves: valves,
		start:  start,
		budget: o.Budget,
		data:   make([]int, size*size),
	}
	for i, id := range ids {
		d.index[id] = i
		// ids come from the network itself, Rate cannot fail here.
		d.rates[i], _ = n.Rate(id)
	}

	rooms := deadEnds(n, d.index)
	follow := func(from, to string) bool {
		back, dead := rooms[to]
		return !dead || (back != "" && back != from)
	}

	for i, from := range ids {
		pending := size
		res, err := bfs.BFS(n, from,
			bfs.WithContext(o.Ctx),
			bfs.WithMaxDepth(o.Budget),
			bfs.WithFollow(follow),
			bfs.WithOnVisit(func(id string, _ int) error {
				if _, ok := d.index[id]; ok {
					if pending--; pending == 0 {
						return bfs.ErrStop
					}
				}
				return nil
			}),
		)
		if err != nil {
			return nil, err
		}
		d.visits += res.Visited
		row := d.data[i*size : (i+1)*size]
		for j, to := range ids {
			if depth, ok := res.Depth[to]; ok {
				row[j] = depth
			} else {
				row[j] = Unreachable
			}
		}
	}

	return d, nil
}

// deadEnds maps every zero-rate room that can only lead back where it came
// from to that single way out ("" when it has no tunnels at all). Walking
// into such a room from its way out never shortens a path.
func deadEnds(n *core.Network, interesting map[string]int) map[string]string {
	out := make(map[string]string)
	for _, v := range n.Valves() {
		if _, ok := interesting[v.ID]; ok {
			continue
		}
		back, single := "", true
		for _, to := range v.Tunnels {
			if back != "" && to != back {
				single = false
				break
			}
			back = to
		}
		if single {
			out[v.ID] = back
		}
	}

	return out
}
