// Package search finds how much pressure one or two agents can release
// from a valve network within a time budget.
//
// It includes three entry points on a matrix.Distances:
//
//   - Valuate / ValuateIDs: score one visiting sequence.
//
//   - Single: best pressure for one agent.
//
//   - Complexity: bounded by the number of feasible sequences, ≤ k!
//
//   - Memory:     O(k²) stack per worker
//
//   - Dual: best combined pressure for two agents that each lose a setup
//     overhead and split the valves.
//
//   - Complexity: walk as Single, plus O(k·2ᵏ) subset closure
//
//   - Memory:     O(2ᵏ) per worker
//
// Cost model
//
//	Travelling one tunnel costs one time unit, opening a valve costs one more.
//	A valve opened with t units left releases rate × t. Valves that cannot
//	be opened with at least one unit left are never worth visiting.
//
// Search state
//
//	The walk keeps an explicit stack of (current valve, opened-set bitmask,
//	time left, total) states instead of recursing per time case. Dual reuses
//	the same walk and records the best total per opened set; after a subset
//	closure, table[mask] is the single-agent optimum restricted to mask, so a
//	bipartition scores as table[left] + table[right].
//
// Concurrency
//
//	First moves of the walk and chunks of the bipartition list are fanned out
//	over Options.Workers goroutines (errgroup); each keeps local maxima that
//	are reduced after Wait. The matrix is read-only throughout.
//
// Partitions
//
//	Balanced (default) scores ⌊k/2⌋-versus-rest splits only. It is a
//	heuristic: an uneven split can win on some networks. AllSizes scores every
//	split and is exact.
package search
