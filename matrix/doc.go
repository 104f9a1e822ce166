// Package matrix builds the travel-time matrix the optimizers work on.
//
// Only valves that can contribute pressure matter to the search, so the
// matrix is restricted to the value-bearing valves plus the start valve.
// Distances are computed by one breadth-first search per matrix valve over
// the full network (package bfs), so zero-rate corridors are folded into the
// travel times.
//
// Invariants
//
//   - At(i, i) == 0.
//   - Every entry is non-negative; pairs with no path within the build budget
//     hold Unreachable.
//   - The matrix is symmetric only when the tunnels are (see Symmetric and
//     core.Network.Bidirectional).
//
// Usage
//
//	d, err := matrix.Build(network, matrix.WithBudget(30))
//	if err != nil {
//	    // ErrNilNetwork, ErrBadBudget, bfs errors
//	}
//	minutes, _ := d.Lookup("AA", "JJ")
package matrix
