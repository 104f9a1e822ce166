// SPDX-License-Identifier: MIT
// Package: valvenet/builder
//
// topology.go: Path, Cycle, Star, Grid, Complete and RandomSparse.
//
// Determinism:
//   • Valves are added in ascending index order via cfg.idFn.
//   • Tunnels are emitted in ascending (i, j) order.
//   • RandomSparse draws one Bernoulli trial per pair in that order.

package builder

import "fmt"

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodGrid         = "Grid"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minPathNodes  = 1
	minCycleNodes = 3
	minStarNodes  = 2
	minGridDim    = 1
	probMin       = 0.0
	probMax       = 1.0
)

// addValves adds valves 0..n-1 and returns their IDs.
func addValves(d *draft, cfg builderConfig, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		d.addValve(ids[i], cfg)
	}

	return ids
}

// Path returns a Constructor for the chain 0 - 1 - ... - n-1.
func Path(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := addValves(d, cfg, n)
		for i := 0; i+1 < n; i++ {
			d.addTunnel(ids[i], ids[i+1], cfg)
		}
		return nil
	}
}

// Cycle returns a Constructor for the ring i -> (i+1)%n.
func Cycle(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := addValves(d, cfg, n)
		for i := 0; i < n; i++ {
			d.addTunnel(ids[i], ids[(i+1)%n], cfg)
		}
		return nil
	}
}

// Star returns a Constructor linking hub 0 to leaves 1..n-1.
func Star(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ids := addValves(d, cfg, n)
		for i := 1; i < n; i++ {
			d.addTunnel(ids[0], ids[i], cfg)
		}
		return nil
	}
}

// Grid returns a Constructor for a rows×cols 4-neighbourhood grid in
// row-major order; cell (r, c) has index r*cols+c.
func Grid(rows, cols int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		ids := addValves(d, cfg, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					d.addTunnel(u, ids[r*cols+c+1], cfg)
				}
				if r+1 < rows {
					d.addTunnel(u, ids[(r+1)*cols+c], cfg)
				}
			}
		}
		return nil
	}
}

// Complete returns a Constructor linking every pair of valves 0..n-1.
func Complete(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minPathNodes, ErrTooFewVertices)
		}
		ids := addValves(d, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.addTunnel(ids[i], ids[j], cfg)
			}
		}
		return nil
	}
}

// RandomSparse returns a Constructor that links each pair i<j of valves
// 0..n-1 independently with probability p. With WithOneWay the direction
// of each drawn tunnel is chosen by a second trial.
//
// An RNG is required unless p is 0 or 1.
func RandomSparse(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minPathNodes, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := addValves(d, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var hit bool
				if rng == nil {
					hit = p == probMax
				} else {
					hit = rng.Float64() < p
				}
				if !hit {
					continue
				}
				u, v := ids[i], ids[j]
				if cfg.oneWay && rng != nil && rng.Intn(2) == 1 {
					u, v = v, u
				}
				d.addTunnel(u, v, cfg)
			}
		}
		return nil
	}
}
