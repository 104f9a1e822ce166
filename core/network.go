// File: network.go
// Role: Network construction and read-only queries.
//
// Determinism:
//   - Valves() and ValueBearing() follow declaration order.
//   - NeighborIDs() follows the tunnel order given at construction.
package core

import "fmt"

// NewNetwork validates valves and start, then returns an immutable Network.
//
// Validation stages:
//  1. Every ID is non-empty and unique, every rate is non-negative.
//  2. Every tunnel resolves to a declared valve.
//  3. The start valve is declared.
//
// Every failure wraps ErrMalformedGraph and a more specific sentinel, so both
// errors.Is(err, ErrMalformedGraph) and errors.Is(err, ErrUnknownTunnel) hold
// for a dangling tunnel.
//
// The input slices are copied; later mutation by the caller has no effect.
//
// Complexity: O(V + E).
func NewNetwork(valves []Valve, start string) (*Network, error) {
	n := &Network{
		valves: make([]Valve, len(valves)),
		index:  make(map[string]int, len(valves)),
		start:  start,
	}

	// Stage 1: identity and rates.
	for i, v := range valves {
		if v.ID == "" {
			return nil, fmt.Errorf("%w: %w (position %d)", ErrMalformedGraph, ErrEmptyValveID, i)
		}
		if _, dup := n.index[v.ID]; dup {
			return nil, fmt.Errorf("%w: %w %q", ErrMalformedGraph, ErrDuplicateValve, v.ID)
		}
		if v.Rate < 0 {
			return nil, fmt.Errorf("%w: %w %d on %q", ErrMalformedGraph, ErrNegativeRate, v.Rate, v.ID)
		}
		n.index[v.ID] = i
		n.valves[i] = Valve{ID: v.ID, Rate: v.Rate, Tunnels: append([]string(nil), v.Tunnels...)}
	}

	// Stage 2: tunnels.
	for _, v := range n.valves {
		for _, to := range v.Tunnels {
			if _, ok := n.index[to]; !ok {
				return nil, fmt.Errorf("%w: %w %q -> %q", ErrMalformedGraph, ErrUnknownTunnel, v.ID, to)
			}
		}
	}

	// Stage 3: start.
	if _, ok := n.index[start]; !ok {
		return nil, fmt.Errorf("%w: %w %q", ErrMalformedGraph, ErrStartNotFound, start)
	}

	return n, nil
}

// Start returns the ID of the start valve.
func (n *Network) Start() string { return n.start }

// Len returns the number of valves.
func (n *Network) Len() int { return len(n.valves) }

// HasValve reports whether id is declared.
func (n *Network) HasValve(id string) bool {
	_, ok := n.index[id]
	return ok
}

// Valve returns a copy of the valve with the given id.
func (n *Network) Valve(id string) (Valve, error) {
	i, ok := n.index[id]
	if !ok {
		return Valve{}, fmt.Errorf("%w: %q", ErrValveNotFound, id)
	}
	v := n.valves[i]
	v.Tunnels = append([]string(nil), v.Tunnels...)

	return v, nil
}

// Valves returns copies of all valves in declaration order.
func (n *Network) Valves() []Valve {
	out := make([]Valve, len(n.valves))
	for i, v := range n.valves {
		out[i] = Valve{ID: v.ID, Rate: v.Rate, Tunnels: append([]string(nil), v.Tunnels...)}
	}

	return out
}

// NeighborIDs returns the tunnel targets of id.
// The returned slice is a copy.
func (n *Network) NeighborIDs(id string) ([]string, error) {
	i, ok := n.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrValveNotFound, id)
	}

	return append([]string(nil), n.valves[i].Tunnels...), nil
}

// Rate returns the flow rate of id.
func (n *Network) Rate(id string) (int, error) {
	i, ok := n.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrValveNotFound, id)
	}

	return n.valves[i].Rate, nil
}

// ValueBearing returns the IDs of valves with a positive rate, in
// declaration order.
func (n *Network) ValueBearing() []string {
	out := make([]string, 0, len(n.valves))
	for _, v := range n.valves {
		if v.Rate > 0 {
			out = append(out, v.ID)
		}
	}

	return out
}

// Bidirectional reports whether every tunnel a→b has a matching b→a.
//
// Complexity: O(V + E·d) where d is the maximum out-degree.
func (n *Network) Bidirectional() bool {
	for _, v := range n.valves {
		for _, to := range v.Tunnels {
			back := n.valves[n.index[to]].Tunnels
			found := false
			for _, id := range back {
				if id == v.ID {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}

	return true
}
