// Package bfs measures travel times through a core.Network.
//
// Every tunnel costs one time unit, so the depth at which BFS first meets a
// valve is the time needed to walk there. Tunnels are directed: a→b is
// only followed from a.
//
// The walk can be shaped by three options:
//
//   - WithMaxDepth stops expanding past a number of tunnels. The matrix
//     package sets it to the time budget.
//   - WithFollow skips tunnels. The matrix package uses it to avoid
//     zero-rate rooms that lead nowhere.
//   - WithOnVisit sees each valve as it is dequeued and may return ErrStop
//     once the caller has what it needs.
//
// Usage
//
//	res, err := bfs.BFS(network, "AA", bfs.WithMaxDepth(30))
//	if err != nil {
//		return err
//	}
//	minutes := res.Depth["JJ"]
package bfs
